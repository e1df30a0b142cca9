//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestPathfinderWithMySQL tests the pathfinder CLI with a MySQL run backend.
func TestPathfinderWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "pathfinder",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/pathfinder?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("PATHFINDER_RUN_BACKEND", "mysql")
	_ = os.Setenv("PATHFINDER_RUN_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("PATHFINDER_RUN_BACKEND") }()
	defer func() { _ = os.Unsetenv("PATHFINDER_RUN_DB_CONNECT") }()

	runStoreRoundTrip(t)
}

// TestPathfinderWithPostgres tests the pathfinder CLI with a PostgreSQL run backend.
func TestPathfinderWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("PATHFINDER_RUN_BACKEND", "postgresql")
	_ = os.Setenv("PATHFINDER_RUN_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("PATHFINDER_RUN_BACKEND") }()
	defer func() { _ = os.Unsetenv("PATHFINDER_RUN_DB_CONNECT") }()

	runStoreRoundTrip(t)
}

// runStoreRoundTrip exercises the run store end to end against whatever
// backend the environment selects.
func runStoreRoundTrip(t *testing.T) {
	t.Helper()

	// Start from a clean slate
	_, err := runPathfinderCommand(t, "runs", "clear")
	require.NoError(t, err)

	// One recommend pass records one run
	_, err = runPathfinderCommand(t, "recommend", "I love programming computers and building software", "--top-n", "3")
	require.NoError(t, err)

	// Status reflects the stored run
	output, err := runPathfinderCommand(t, "runs", "status")
	require.NoError(t, err)
	require.Contains(t, output, "Total Runs: 1")

	// Export produces both Parquet files
	exportPrefix := t.TempDir() + "/export"
	_, err = runPathfinderCommand(t, "runs", "export", "--output-file", exportPrefix)
	require.NoError(t, err)
	require.FileExists(t, exportPrefix+".runs.parquet")
	require.FileExists(t, exportPrefix+".recommendations.parquet")

	// Clear removes everything again
	_, err = runPathfinderCommand(t, "runs", "clear")
	require.NoError(t, err)
	output, err = runPathfinderCommand(t, "runs", "status")
	require.NoError(t, err)
	require.Contains(t, output, "Total Runs: 0")
}

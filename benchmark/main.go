// Package main provides a performance benchmarking tool for the Pathfinder CLI.
// It measures recommend latency across a set of representative interest texts,
// running each one multiple times, treating the first run as cold and averaging
// the rest as warm, generating CSV output for performance documentation.
//
// Prerequisites:
// - pathfinder binary installed and available in PATH
//
// Usage: go run benchmark/main.go [output-csv]
//
//	output-csv: Path for the CSV results file
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Scenario string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout   time.Duration
	Runs      int
	Scenarios map[string]string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [output-csv]\n", os.Args[0])
		os.Exit(1)
	}
	outputPath := os.Args[1]

	config := BenchmarkConfig{
		Timeout: time.Minute,
		Runs:    5,
		Scenarios: map[string]string{
			"focused-tech":   "I love programming computers and building software applications",
			"focused-health": "caring for patients and studying medicine in a hospital",
			"mixed-signals":  "I enjoy painting, accounting, farming and teaching children",
			"low-signal":     "hanging out with my friends on weekends",
		},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := writeResults(outputPath, results); err != nil {
		fmt.Printf("Failed to write results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d results to %s\n", len(results), outputPath)
}

// checkPrerequisites verifies the pathfinder binary is reachable.
func checkPrerequisites() error {
	if _, err := exec.LookPath("pathfinder"); err != nil {
		return fmt.Errorf("pathfinder binary not found in PATH: %w", err)
	}
	return nil
}

// runBenchmarks measures each scenario. The first run is cold; the remaining
// runs average into the warm figure.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	for name, text := range config.Scenarios {
		args := []string{"recommend", text, "--run-backend", "none", "--output", "json"}

		var cold time.Duration
		var warmTotal time.Duration
		warmRuns := 0

		for i := 0; i < config.Runs; i++ {
			elapsed, err := timeCommand(config.Timeout, args)
			if err != nil {
				fmt.Printf("Scenario %s run %d failed: %v\n", name, i+1, err)
				break
			}
			if i == 0 {
				cold = elapsed
			} else {
				warmTotal += elapsed
				warmRuns++
			}
		}

		warm := time.Duration(0)
		if warmRuns > 0 {
			warm = warmTotal / time.Duration(warmRuns)
		}
		results = append(results, BenchmarkResult{
			Scenario: name,
			Command:  fmt.Sprintf("pathfinder recommend %q", text),
			ColdTime: cold.String(),
			WarmTime: warm.String(),
		})
		fmt.Printf("Scenario %s: cold=%s warm=%s\n", name, cold, warm)
	}

	return results
}

// timeCommand runs one pathfinder invocation and reports its wall time.
func timeCommand(timeout time.Duration, args []string) (time.Duration, error) {
	cmd := exec.Command("pathfinder", args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return 0, err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		return time.Since(start), err
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		return 0, fmt.Errorf("timed out after %s", timeout)
	}
}

// writeResults writes the benchmark results as CSV.
func writeResults(path string, results []BenchmarkResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"scenario", "command", "cold_time", "warm_time"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{r.Scenario, r.Command, r.ColdTime, r.WarmTime}); err != nil {
			return err
		}
	}
	return nil
}

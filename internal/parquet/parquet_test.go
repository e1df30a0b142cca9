package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	s := parquet.SchemaOf(new(Run))
	require.NotNil(t, s)

	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"duration_ms",
		"total_records",
		"params",
	}
	for _, colName := range expectedColumns {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestRunRecommendationStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(RunRecommendation))
	require.NotNil(t, s)

	expectedColumns := []string{
		"run_id",
		"field",
		"rank",
		"final_score",
		"interest_score",
		"demand_score",
		"interest_contribution",
		"market_contribution",
		"confidence",
		"dept_status",
		"job_count",
		"recorded_at",
	}
	for _, colName := range expectedColumns {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestConvertRunRecords(t *testing.T) {
	now := time.Now()
	end := now.Add(time.Second)
	dur := int32(1000)
	params := `{"top_n":5}`

	records := []schema.RunRecord{
		{RunID: 1, StartTime: now, EndTime: &end, DurationMs: &dur, TotalRecords: 3, Params: &params},
		{RunID: 2, StartTime: now},
	}
	runs := ConvertRunRecords(records)
	require.Len(t, runs, 2)
	assert.Equal(t, int64(1), runs[0].RunID)
	assert.Equal(t, &dur, runs[0].DurationMs)
	assert.Nil(t, runs[1].EndTime)
}

func TestConvertRunRecommendationRecords(t *testing.T) {
	now := time.Now()
	records := []schema.RunRecommendationRecord{
		{
			RunID: 1, Field: "Information Technology", Rank: 1,
			FinalScore: 0.65, InterestScore: 0.5, DemandScore: 1.0,
			InterestContribution: 0.35, MarketContribution: 0.3,
			Confidence: "High", DeptStatus: "ELIGIBLE", JobCount: 100, RecordedAt: now,
		},
	}
	rows := ConvertRunRecommendationRecords(records)
	require.Len(t, rows, 1)
	assert.Equal(t, "Information Technology", rows[0].Field)
	assert.Equal(t, int32(1), rows[0].Rank)
	assert.InDelta(t, 0.65, rows[0].FinalScore, 1e-9)
}

func TestWriteAndReadBack(t *testing.T) {
	dir := t.TempDir()
	now := time.Now().Truncate(time.Millisecond)

	t.Run("runs", func(t *testing.T) {
		path := filepath.Join(dir, "runs.parquet")
		data := []Run{{RunID: 7, StartTime: now, TotalRecords: 2}}
		require.NoError(t, WriteRunsParquet(data, path))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		reader := parquet.NewGenericReader[Run](f)
		defer func() { _ = reader.Close() }()
		assert.EqualValues(t, 1, reader.NumRows())
	})

	t.Run("recommendations", func(t *testing.T) {
		path := filepath.Join(dir, "recs.parquet")
		data := []RunRecommendation{
			{RunID: 7, Field: "Law", Rank: 1, FinalScore: 0.4, Confidence: "Medium", DeptStatus: "ASPIRATIONAL", RecordedAt: now},
		}
		require.NoError(t, WriteRunRecommendationsParquet(data, path))

		f, err := os.Open(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		reader := parquet.NewGenericReader[RunRecommendation](f)
		defer func() { _ = reader.Close() }()
		rows := make([]RunRecommendation, 1)
		n, _ := reader.Read(rows)
		require.Equal(t, 1, n)
		assert.Equal(t, "Law", rows[0].Field)
	})
}

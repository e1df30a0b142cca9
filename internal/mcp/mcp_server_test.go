package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pathfinder-ke/pathfinder/core"
	mcp_internal "github.com/pathfinder-ke/pathfinder/internal/mcp"
	"github.com/pathfinder-ke/pathfinder/internal/refdata"
	"github.com/pathfinder-ke/pathfinder/internal/scorer"
	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMCPServer(t *testing.T) *server.MCPServer {
	t.Helper()

	sc, err := scorer.Load("")
	require.NoError(t, err)
	demand, err := refdata.LoadDemand("")
	require.NoError(t, err)
	catalog, err := refdata.LoadCatalog("")
	require.NoError(t, err)
	reqs, err := refdata.LoadRequirements("")
	require.NoError(t, err)

	engine := core.NewEngine(sc, demand, catalog, reqs, nil, nil)
	return mcp_internal.NewMCPServer(engine, sc, demand, reqs)
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	return res.Content[0].(mcp.TextContent).Text
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	s := newTestMCPServer(t)

	t.Run("recommend_careers blank text", func(t *testing.T) {
		res := callTool(t, s, "recommend_careers", map[string]any{"text": "   "})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, resultText(t, res), "text is required")
	})

	t.Run("recommend_careers bad weights", func(t *testing.T) {
		res := callTool(t, s, "recommend_careers", map[string]any{
			"text":  "teaching children",
			"alpha": 0.9,
			"beta":  0.9,
		})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "must sum to 1")
	})

	t.Run("check_eligibility missing transcript", func(t *testing.T) {
		res := callTool(t, s, "check_eligibility", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "transcript_json is required")
	})

	t.Run("check_eligibility malformed transcript", func(t *testing.T) {
		res := callTool(t, s, "check_eligibility", map[string]any{"transcript_json": "{not json"})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "invalid transcript_json")
	})
}

func TestMCPServerHandlers_RecommendCareers(t *testing.T) {
	s := newTestMCPServer(t)

	res := callTool(t, s, "recommend_careers", map[string]any{
		"text":  "I love programming computers and building software applications",
		"top_n": 3.0,
	})
	require.False(t, res.IsError)

	var recs []schema.Recommendation
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &recs))
	require.NotEmpty(t, recs)
	assert.Equal(t, "Information Technology", recs[0].Field)
	assert.LessOrEqual(t, len(recs), 3)
}

func TestMCPServerHandlers_CheckEligibility(t *testing.T) {
	s := newTestMCPServer(t)

	res := callTool(t, s, "check_eligibility", map[string]any{
		"transcript_json": `{"mean_grade":"A","subjects":{"Mathematics":"A","English":"A","Physics":"A"}}`,
		"program":         "Computer Science",
	})
	require.False(t, res.IsError)

	var results []schema.ProgramEligibility
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &results))
	require.Len(t, results, 1)
	assert.Equal(t, schema.Eligible, results[0].Status)
}

func TestMCPServerHandlers_GetJobDemand(t *testing.T) {
	s := newTestMCPServer(t)

	res := callTool(t, s, "get_job_demand", map[string]any{"limit": 5.0})
	require.False(t, res.IsError)

	var entries []schema.DemandEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entries))
	require.Len(t, entries, 5)
	assert.Equal(t, "Information Technology", entries[0].Field)
}

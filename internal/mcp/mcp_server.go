// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pathfinder-ke/pathfinder/core"
	"github.com/pathfinder-ke/pathfinder/internal/contract"
)

// NewMCPServer initializes and configures the Pathfinder MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(engine *core.Engine, scorer contract.InterestScorer, demand contract.DemandTable, reqs contract.RequirementsTable) *server.MCPServer {
	s := server.NewMCPServer(
		"Pathfinder Recommendation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		engine: engine,
		eval:   core.NewEvaluator(reqs),
		scorer: scorer,
		demand: demand,
		reqs:   reqs,
	}

	// --- 1. Tool: recommend_careers ---
	s.AddTool(mcp.NewTool("recommend_careers",
		mcp.WithDescription("Rank career fields for a student by blending interest analysis with job-market demand."),
		mcp.WithString("text", mcp.Description("Free-text description of the student's interests."), mcp.Required()),
		mcp.WithNumber("top_n", mcp.Description("Limit the number of recommendations returned.")),
		mcp.WithNumber("alpha", mcp.Description("Weight on the interest signal, in [0,1]. Defaults to the balanced preset.")),
		mcp.WithNumber("beta", mcp.Description("Weight on the market signal, in [0,1]. Must sum to 1 with alpha.")),
		mcp.WithString("transcript_json", mcp.Description("Transcript as JSON with mean_grade and subjects, used for eligibility checks.")),
	), h.handleRecommendCareers)

	// --- 2. Tool: check_eligibility ---
	s.AddTool(mcp.NewTool("check_eligibility",
		mcp.WithDescription("Evaluate a student transcript against university program admission requirements."),
		mcp.WithString("transcript_json", mcp.Description("Transcript as JSON with mean_grade and subjects."), mcp.Required()),
		mcp.WithString("program", mcp.Description("Program name to check (substring match). Checks every known program when omitted.")),
	), h.handleCheckEligibility)

	// --- 3. Tool: get_job_demand ---
	s.AddTool(mcp.NewTool("get_job_demand",
		mcp.WithDescription("List career fields ranked by current job-posting counts."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of fields returned.")),
	), h.handleGetJobDemand)

	return s
}

// StartMCPServer starts the Pathfinder MCP server.
func StartMCPServer(_ context.Context, engine *core.Engine, scorer contract.InterestScorer, demand contract.DemandTable, reqs contract.RequirementsTable) error {
	s := NewMCPServer(engine, scorer, demand, reqs)
	return server.ServeStdio(s)
}

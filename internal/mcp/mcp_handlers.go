package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pathfinder-ke/pathfinder/core"
	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	engine *core.Engine
	eval   *core.Evaluator
	scorer contract.InterestScorer
	demand contract.DemandTable
	reqs   contract.RequirementsTable
}

func (h *toolHandler) handleRecommendCareers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	alpha := request.GetFloat("alpha", 0)
	beta := request.GetFloat("beta", 0)
	if (alpha != 0 || beta != 0) && math.Abs(alpha+beta-1.0) > 0.01 {
		return mcp.NewToolResultError(fmt.Sprintf("alpha and beta must sum to 1, got %.3f", alpha+beta)), nil
	}

	transcript, err := parseTranscript(request.GetString("transcript_json", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid transcript_json: %v", err)), nil
	}

	recs, err := h.engine.Recommend(core.Request{
		Text:       text,
		TopN:       request.GetInt("top_n", 0),
		Alpha:      alpha,
		Beta:       beta,
		Transcript: transcript,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(recs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCheckEligibility(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("transcript_json", "")
	if raw == "" {
		return mcp.NewToolResultError("transcript_json is required"), nil
	}
	transcript, err := parseTranscript(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid transcript_json: %v", err)), nil
	}

	var programs []string
	if program := request.GetString("program", ""); program != "" {
		programs = []string{program}
	} else {
		for _, entry := range h.reqs.All() {
			programs = append(programs, entry.Name)
		}
		sort.Strings(programs)
	}

	results := make([]schema.ProgramEligibility, 0, len(programs))
	for _, program := range programs {
		res := h.eval.CheckProgram(program, transcript)
		results = append(results, schema.ProgramEligibility{
			Program: program,
			Status:  res.Status,
			Reason:  res.Reason,
		})
	}

	jsonData, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetJobDemand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 0)
	if limit <= 0 {
		limit = len(h.scorer.Fields()) + 10
	}

	fields := h.demand.TopFields(limit)
	entries := make([]schema.DemandEntry, 0, len(fields))
	for _, field := range fields {
		entries = append(entries, schema.DemandEntry{Field: field, JobCount: h.demand.Lookup(field)})
	}

	jsonData, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// parseTranscript decodes an optional transcript argument. Empty input means
// eligibility is skipped downstream.
func parseTranscript(raw string) (*schema.Transcript, error) {
	if raw == "" {
		return nil, nil
	}
	var t schema.Transcript
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, err
	}
	if t.MeanGrade == "" {
		return nil, fmt.Errorf("mean_grade is required")
	}
	return &t, nil
}

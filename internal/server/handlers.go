package server

import (
	"errors"
	"math"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pathfinder-ke/pathfinder/core"
	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"github.com/pathfinder-ke/pathfinder/schema"
	"go.uber.org/zap"
)

// recommendRequest is the JSON body of POST /api/v1/recommend.
type recommendRequest struct {
	Text       string             `json:"text" binding:"required"`
	TopN       int                `json:"top_n"`
	Alpha      float64            `json:"alpha"`
	Beta       float64            `json:"beta"`
	SampleJobs int                `json:"sample_jobs"`
	Transcript *schema.Transcript `json:"transcript"`
}

// eligibilityRequest is the JSON body of POST /api/v1/eligibility.
// An empty program list evaluates the transcript against every known program.
type eligibilityRequest struct {
	Transcript *schema.Transcript `json:"transcript" binding:"required"`
	Programs   []string           `json:"programs"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRecommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text must not be blank"})
		return
	}
	if (req.Alpha != 0 || req.Beta != 0) && math.Abs(req.Alpha+req.Beta-1.0) > 0.01 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alpha and beta must sum to 1"})
		return
	}
	if req.TopN > contract.MaxTopN {
		req.TopN = contract.MaxTopN
	}

	recs, err := s.engine.Recommend(core.Request{
		Text:       req.Text,
		TopN:       req.TopN,
		Alpha:      req.Alpha,
		Beta:       req.Beta,
		Transcript: req.Transcript,
		SampleJobs: req.SampleJobs,
	})
	if err != nil {
		if errors.Is(err, core.ErrNoRecommendations) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("recommend failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs, "count": len(recs)})
}

func (s *Server) handleEligibility(c *gin.Context) {
	var req eligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Transcript.MeanGrade == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcript mean_grade is required"})
		return
	}

	programs := req.Programs
	if len(programs) == 0 {
		for _, entry := range s.reqs.All() {
			programs = append(programs, entry.Name)
		}
		sort.Strings(programs)
	}

	results := make([]schema.ProgramEligibility, 0, len(programs))
	for _, program := range programs {
		res := s.eval.CheckProgram(program, req.Transcript)
		results = append(results, schema.ProgramEligibility{
			Program: program,
			Status:  res.Status,
			Reason:  res.Reason,
		})
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "count": len(results)})
}

func (s *Server) handleDemand(c *gin.Context) {
	fields := s.demand.TopFields(len(s.scorer.Fields()) + demandFieldHeadroom)
	entries := make([]schema.DemandEntry, 0, len(fields))
	for _, field := range fields {
		entries = append(entries, schema.DemandEntry{Field: field, JobCount: s.demand.Lookup(field)})
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

func (s *Server) handleFields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": s.scorer.Fields()})
}

// demandFieldHeadroom covers demand rows whose label has no scorer field.
const demandFieldHeadroom = 10

// Package server exposes the recommendation engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pathfinder-ke/pathfinder/core"
	"github.com/pathfinder-ke/pathfinder/internal/contract"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the engine and its reference tables behind a gin router.
type Server struct {
	engine *core.Engine
	eval   *core.Evaluator
	scorer contract.InterestScorer
	demand contract.DemandTable
	reqs   contract.RequirementsTable
	cfg    *contract.Config
	logger *zap.Logger
	router *gin.Engine
}

// New builds a server with all routes registered.
func New(engine *core.Engine, scorer contract.InterestScorer, demand contract.DemandTable, reqs contract.RequirementsTable, cfg *contract.Config, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	s := &Server{
		engine: engine,
		eval:   core.NewEvaluator(reqs),
		scorer: scorer,
		demand: demand,
		reqs:   reqs,
		cfg:    cfg,
		logger: logger,
		router: router,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/recommend", s.handleRecommend)
		v1.POST("/eligibility", s.handleEligibility)
		v1.GET("/demand", s.handleDemand)
		v1.GET("/fields", s.handleFields)
	}
}

// Handler returns the underlying HTTP handler, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package cmd

import (
	"os/signal"
	"syscall"

	"github.com/pathfinder-ke/pathfinder/internal/server"
	"github.com/pathfinder-ke/pathfinder/schema"
	"github.com/spf13/cobra"
)

// serveCmd starts the HTTP API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pathfinder HTTP API server.",
	Long: `Serve the recommendation engine over HTTP.

Routes:
  GET  /health               - liveness probe
  POST /api/v1/recommend     - ranked recommendations for interest text
  POST /api/v1/eligibility   - transcript checks against admission programs
  GET  /api/v1/demand        - the job-market demand table
  GET  /api/v1/fields        - career fields the scorer knows

The server drains in-flight requests on SIGINT/SIGTERM.

Examples:
  # Serve on the default address
  pathfinder serve

  # Custom listen address with JSON logs
  pathfinder serve --listen :9000 --output json`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		deps, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		logger, err := server.NewLogger(cfg.Output == schema.JSONOut, false)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(deps.engine, deps.scorer, deps.demand, deps.reqs, cfg, logger)
		return srv.Run(ctx)
	},
}

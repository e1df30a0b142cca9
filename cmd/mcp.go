package cmd

import (
	"github.com/pathfinder-ke/pathfinder/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Pathfinder MCP server",
	Long:  `Launch an MCP server that allows AI agents to generate career recommendations and eligibility checks via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean when running in MCP mode since stdio
		// carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		deps, err := buildEngine(cfg)
		if err != nil {
			return err
		}
		return mcp.StartMCPServer(rootCtx, deps.engine, deps.scorer, deps.demand, deps.reqs)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

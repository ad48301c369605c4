package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/valemcp/valemcp/internal/adapters/inbound/mcp"
	"github.com/valemcp/valemcp/internal/application"
	"github.com/valemcp/valemcp/internal/logging"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the valemcp MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the vale MCP server (stdio)",
		Long:  "Start the MCP server using stdio transport. AI assistants can then check prose files, sync style packages, and query Vale's installation status.",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, resolver := newRunnerAndResolver()

			// One probe at startup so an absent vale shows up in the logs
			// immediately. The server still starts: every gated tool
			// re-checks and reports the condition per request.
			st := application.NewInstallCache(runner).Probe()
			if st.Installed {
				logging.Info("vale found", "version", st.Version)
			} else {
				logging.Warn("vale not found, gated tools will report it as missing", "error", st.Error)
			}

			s := mcpadapter.NewValeMCPServer(runner, resolver)
			return server.ServeStdio(s)
		},
	}
}

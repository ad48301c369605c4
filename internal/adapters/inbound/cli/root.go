package cli

import (
	"github.com/spf13/cobra"

	appconfig "github.com/valemcp/valemcp/internal/adapters/outbound/config"
	"github.com/valemcp/valemcp/internal/adapters/outbound/vale"
	"github.com/valemcp/valemcp/internal/domain"
	"github.com/valemcp/valemcp/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "valemcp",
		Short:         "Vale prose linting for AI assistants",
		Long:          "valemcp wraps the Vale prose linter in an MCP server so AI assistants can check prose, and exposes the same pipeline as plain CLI commands.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newCheckCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// newRunnerAndResolver wires the effect boundaries from the startup
// configuration. The server config file and environment are read once here.
func newRunnerAndResolver() (domain.ToolRunner, domain.ConfigResolver) {
	cfg, err := appconfig.Load(".")
	if err != nil {
		logging.Warn("could not load server config, using defaults", "error", err)
		cfg = appconfig.DefaultServerConfig()
	}
	return vale.New(cfg.ValePath), appconfig.NewResolver(cfg.ConfigPath)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valemcp/valemcp/internal/adapters/outbound/tui"
	"github.com/valemcp/valemcp/internal/application"
)

func newCheckCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Lint a prose file with vale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, resolver := newRunnerAndResolver()

			result, err := application.NewCheckService(runner, resolver).CheckFile(args[0], configPath)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCheckResult(result))

			// Mirror vale's own convention: issues mean a non-zero exit.
			if result.Summary.Errors > 0 {
				return fmt.Errorf("%d errors found", result.Summary.Errors)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a .vale.ini file (defaults to discovery)")

	return cmd
}

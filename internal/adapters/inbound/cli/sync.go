package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valemcp/valemcp/internal/application"
)

func newSyncCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Download the style packages referenced by the vale config",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, resolver := newRunnerAndResolver()

			result := application.NewSyncService(runner, resolver).Sync(configPath)
			if result.Output != "" {
				fmt.Fprintln(cmd.OutOrStdout(), result.Output)
			}
			if !result.Success {
				return errors.New(result.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a .vale.ini file (defaults to discovery)")

	return cmd
}

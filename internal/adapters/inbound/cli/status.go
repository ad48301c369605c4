package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valemcp/valemcp/internal/application"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether vale is installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _ := newRunnerAndResolver()
			st := application.NewInstallCache(runner).Probe()

			if st.Installed {
				fmt.Fprintf(cmd.OutOrStdout(), "vale installed: %s\n", st.Version)
				return nil
			}
			return fmt.Errorf("vale not installed: %s", st.Error)
		},
	}
}

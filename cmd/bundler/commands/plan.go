package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bundler/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the bundling command without running it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, _ := cmd.Flags().GetString("target")

			_, err := c.app.Plan(cmd.Context(), app.PlanOptions{
				ConfigPath: configPath(cmd),
				Target:     target,
				OutputMode: outputMode(cmd),
			})
			return err
		},
	}
	cmd.Flags().StringP("target", "t", "", "Target to plan for: windows, macos, or linux (default: host)")
	return cmd
}

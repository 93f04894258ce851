package commands

import "github.com/spf13/cobra"

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Confirm and run the bundling tool for the host platform (default)",
		Args:  cobra.NoArgs,
		RunE:  c.runBuild,
	}
}

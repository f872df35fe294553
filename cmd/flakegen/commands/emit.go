package commands

import (
	"github.com/category-lecture-notes/typst-tikz/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newEmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Evaluate the blueprint and write the build descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := c.rootCmd.PersistentFlags().GetString("config")
			format, _ := cmd.Flags().GetString("format")
			outPath, _ := cmd.Flags().GetString("out")
			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: configPath,
				Format:     format,
				OutPath:    outPath,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "nix", "Output format (nix or json)")
	cmd.Flags().StringP("out", "o", app.StdoutPath, "Destination path, or - for stdout")
	return cmd
}

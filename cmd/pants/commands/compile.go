package commands

import (
	"github.com/0xg0nz0/pants/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <analysis-manifest>",
		Short: "Compile one cgo package into a static archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			root, _ := cmd.Flags().GetString("root")
			outDir, _ := cmd.Flags().GetString("out")
			_, err := c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath:   configPath,
				AnalysisPath: args[0],
				Root:         root,
				OutDir:       outDir,
			})
			return err
		},
	}
	cmd.Flags().StringP("root", "r", ".", "Source root the analysis paths are relative to")
	cmd.Flags().StringP("out", "o", "", "Directory to materialize the result tree into")
	return cmd
}

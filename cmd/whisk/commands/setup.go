package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/whisk/internal/engine/setup"
)

func (c *CLI) newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Bring the project's Python environment up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			manifest, _ := cmd.Flags().GetString("manifest")
			envDir, _ := cmd.Flags().GetString("env-dir")

			path, err := c.app.Setup(cmd.Context(), setup.Config{
				Root:     root,
				Manifest: manifest,
				EnvDir:   envDir,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().String("manifest", "", "Dependency manifest to install (default <root>/requirements.txt)")
	cmd.Flags().String("env-dir", "", "Virtual environment directory (default <root>/.whisk/venv)")
	return cmd
}

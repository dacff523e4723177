package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/whisk/internal/engine/configure"
)

func (c *CLI) newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Resolve the build selection and generate configuration files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			conf, _ := cmd.Flags().GetString("conf")
			if conf == "" {
				conf = filepath.Join(root, "whisk.yaml")
			}

			products, _ := cmd.Flags().GetStringArray("product")
			mode, _ := cmd.Flags().GetString("mode")
			site, _ := cmd.Flags().GetString("site")
			version, _ := cmd.Flags().GetString("version")
			buildDir, _ := cmd.Flags().GetString("build-dir")
			envFile, _ := cmd.Flags().GetString("env")
			initEnv, _ := cmd.Flags().GetBool("init")
			list, _ := cmd.Flags().GetBool("list")
			write, _ := cmd.Flags().GetBool("write")
			noConfig, _ := cmd.Flags().GetBool("no-config")
			quiet, _ := cmd.Flags().GetBool("quiet")

			return c.app.Configure(cmd.Context(), root, conf, configure.Options{
				Init:     initEnv,
				Products: products,
				Mode:     mode,
				Site:     site,
				Version:  version,
				BuildDir: buildDir,
				List:     list,
				Write:    write,
				NoConfig: noConfig,
				Quiet:    quiet,
				EnvFile:  envFile,
			})
		},
	}
	cmd.Flags().String("conf", "", "Project configuration file (default <root>/whisk.yaml)")
	cmd.Flags().String("env", "", "Environment file to generate for the calling shell")
	cmd.Flags().Bool("init", false, "Initialize a new environment")
	cmd.Flags().StringArray("product", nil, "Product to build (may be repeated or space separated)")
	cmd.Flags().String("mode", "", "Build mode")
	cmd.Flags().String("site", "", "Build site")
	cmd.Flags().String("version", "", "Yocto version to build against")
	cmd.Flags().String("build-dir", "", "Build directory (only valid with --init)")
	cmd.Flags().Bool("list", false, "List available products, modes, sites, and versions")
	cmd.Flags().Bool("write", false, "Rewrite the build configuration files")
	cmd.Flags().Bool("no-config", false, "Ignore the cached user configuration")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress the selection summary")
	return cmd
}

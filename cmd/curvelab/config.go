package main

import (
	"fmt"
	"os"
	"strings"

	"curvelab/internal/config"
	"curvelab/internal/scene"
	"curvelab/pkg/preset"

	"github.com/spf13/cobra"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the curvelab config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to --config",
	Args:  cobra.NoArgs,
	// the file may not exist or may be invalid, so skip the root loader
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		if !forceInit {
			if fileExists(configPath) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
			}
		}
		if err := config.DefaultConfig().Save(configPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
		return nil
	},
}

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List scenes and available presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range scene.Names() {
			id, _ := scene.ParseID(name)
			space := "2d"
			if id.Space() == scene.Space3D {
				space = "3d"
			}
			fmt.Fprintf(out, "%-12s %s\n", name, space)
		}

		names, err := preset.NewLoader(cfg.Assets.Dir).List()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\npresets: %s\n", strings.Join(names, ", "))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

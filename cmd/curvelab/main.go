package main

import (
	"fmt"
	"os"
	"runtime"

	"curvelab/internal/config"
	"curvelab/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "curvelab",
	Short: "Interactive viewer for fractals, curves and surfaces",
	Long: `curvelab draws recursive fractals (Sierpinski, Koch, dragon, Pythagoras),
Bezier and Chaikin curves over an editable control polygon, surfaces of
revolution, tensor-product surfaces and a small textured solar system.

Run without a subcommand to open the viewer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		config.SetFPSLimit(cfg.FPS)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runViewer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "curvelab.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(exportCmd, scenesCmd, configCmd)
	configCmd.AddCommand(configInitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

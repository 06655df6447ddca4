package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jssohel603-bot/football-game/internal/config"
	"github.com/jssohel603-bot/football-game/internal/shared/logger"
)

var (
	// Global flags
	configPath string
	logLevel   string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "football",
		Short: "11-a-side football against the computer",
		Long: `Play an 11-vs-11 football match against AI opponents, host matches over
websockets, or run headless AI-only simulations.

Examples:
  football play
  football serve --config configs/config.yaml
  football simulate --ticks 3600 --seed 42`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml or ./configs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override logging.level (debug, info, warn, error)")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewSimulateCommand())

	return rootCmd
}

// setup loads configuration and builds the service logger.
func setup(service string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log := logger.New(service)
	if err := logger.Configure(log, cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

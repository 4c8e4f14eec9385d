package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/settlement-solver/internal/config"
	"github.com/napolitain/settlement-solver/internal/gamedata"
	"github.com/napolitain/settlement-solver/internal/solver/settlement"
)

var (
	configFile     string
	horizon        int
	slots          int
	celebrations   bool
	trainingBuffer bool
	tablesPath     string
	outputFormat   string
	noColor        bool
	verbose        bool

	// set by loadEnvironment before any command runs
	cfg    *config.Config
	tables *gamedata.Tables
	logger *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "settle",
		Short: "Second village settlement predictor",
		Long: `Simulates a village hour by hour from a game state snapshot and
predicts when culture points, settler resources and the residence
all line up for a second village.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadEnvironment,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to settle.yaml")
	flags.IntVar(&horizon, "horizon", 0, "Simulated hours (default from config, 720)")
	flags.IntVar(&slots, "slots", 0, "Concurrent constructions, 0 for unlimited")
	flags.BoolVar(&celebrations, "celebrations", false, "Hold small celebrations while culture points are short")
	flags.BoolVar(&trainingBuffer, "training-buffer", false, "Add settler training time to the estimate")
	flags.StringVar(&tablesPath, "tables", "", "YAML file overriding the game tables")
	flags.StringVarP(&outputFormat, "output", "o", "", "Output format: table or json")
	flags.BoolVar(&noColor, "no-color", false, "Disable coloured output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(newPredictCmd(), newTimelineCmd(), newCompareCmd(), newConvertCmd())
	return rootCmd
}

// loadEnvironment reads the config file and lets explicitly set flags
// override it.
func loadEnvironment(cmd *cobra.Command, _ []string) error {
	loaded, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("horizon") {
		loaded.Engine.HorizonHours = horizon
	}
	if flags.Changed("slots") {
		loaded.Engine.ParallelSlots = slots
	}
	if flags.Changed("celebrations") {
		loaded.Engine.Celebrations = celebrations
	}
	if flags.Changed("training-buffer") {
		loaded.Engine.TrainingBuffer = trainingBuffer
	}
	if flags.Changed("tables") {
		loaded.Engine.TablesPath = tablesPath
	}
	if flags.Changed("output") {
		loaded.Output.Format = outputFormat
	}
	if noColor {
		loaded.Output.NoColor = true
	}
	if verbose {
		loaded.Logging.Level = "debug"
	}
	if err := config.ValidateConfig(loaded); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if loaded.Output.NoColor {
		color.NoColor = true
	}

	logger = loaded.Logging.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(logger)

	tables, err = gamedata.LoadTables(loaded.Engine.TablesPath)
	if err != nil {
		return err
	}

	cfg = loaded
	return nil
}

func engineOptions() settlement.Options {
	return settlement.Options{
		Horizon:        cfg.Engine.HorizonHours,
		ParallelSlots:  cfg.Engine.ParallelSlots,
		Celebrations:   cfg.Engine.Celebrations,
		TrainingBuffer: cfg.Engine.TrainingBuffer,
		Tables:         tables,
		Logger:         logger,
	}
}

func jsonOutput() bool {
	return cfg.Output.Format == "json"
}

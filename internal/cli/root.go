package cli

import (
	"fmt"
	"os"

	"twa-synth/internal/config"
	"twa-synth/internal/generator"
	"twa-synth/internal/logging"
	"twa-synth/internal/outcome"
	"twa-synth/internal/synth"
	"twa-synth/internal/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:   "twa-synth",
		Short: "Synthetic longitudinal TWA wellness dataset generator",
		Long: `twa-synth synthesizes longitudinal per-subject wellness records by chaining
three causally-ordered stochastic models (demographic profile, monthly
lifestyle behaviors, monthly wellness/aging outcomes), then scores the
dataset against statistical benchmarks drawn from published effect sizes.

Generate a dataset:
  twa-synth generate --subjects 1000 --months 12 --seed 42 --format csv --out dataset.csv

Validate an exported dataset:
  twa-synth validate --in dataset.json

Run the HTTP API for the dashboard:
  twa-synth serve --addr :8080`,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

func initConfig() {
	cfg = config.Load()
}

func newLogger() *zap.Logger {
	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format, "twa-synth")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// buildTables 加载默认数值表并套用可选的 YAML 校准覆盖
func buildTables() (synth.DemographicTables, synth.BehaviorTables, outcome.Tables, error) {
	demo := synth.DefaultDemographicTables()
	behavior := synth.DefaultBehaviorTables()
	out := outcome.DefaultTables()

	cal, err := config.LoadCalibration(cfg.CalibrationPath)
	if err != nil {
		return demo, behavior, out, err
	}
	return cal.ApplyDemographics(demo), cal.ApplyBehavior(behavior), cal.ApplyOutcome(out), nil
}

func buildPipeline(logger *zap.Logger) (*generator.Generator, *validation.Engine, error) {
	demo, behavior, out, err := buildTables()
	if err != nil {
		return nil, nil, err
	}
	gen := generator.NewGenerator(demo, behavior, out, logger)
	engine := validation.NewEngine(demo.ExpectedAgeDistribution(), logger)
	return gen, engine, nil
}

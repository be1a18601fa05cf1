package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvbgo/rentvsbuy-calculator/internal/calculation"
	"github.com/rvbgo/rentvsbuy-calculator/internal/config"
	"github.com/rvbgo/rentvsbuy-calculator/internal/domain"
	"github.com/rvbgo/rentvsbuy-calculator/internal/logging"
	"github.com/rvbgo/rentvsbuy-calculator/internal/output"
)

var (
	flagFormat string
	flagOutput string
	flagDebug  bool
	flagSims   int
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rvb",
	Short: "Project the cost and wealth outcome of buying versus renting a home",
	Long: `rvb simulates buying versus renting year by year: loan amortization,
carrying costs, home appreciation, and the renter's reinvested savings.
It reports legacy cash totals, true-cost wealth comparisons, break-even
timing, and a Monte Carlo estimate of how often buying wins.`,
	SilenceUsage: true,
}

var calculateCmd = &cobra.Command{
	Use:   "calculate <scenarios.yaml>",
	Short: "Run every scenario in a YAML file and render a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		set, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		comparison, err := runScenarios(engine, set)
		if err != nil {
			return err
		}

		formatter := output.GetFormatterByName(flagFormat)
		if formatter == nil {
			return fmt.Errorf("unknown format %q (want console, json, or csv)", flagFormat)
		}
		if flagOutput != "" {
			path, err := output.WriteFormatted(formatter, comparison, flagOutput)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", path)
			return nil
		}
		data, err := formatter.Format(comparison)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var montecarloCmd = &cobra.Command{
	Use:   "montecarlo <scenarios.yaml>",
	Short: "Estimate the probability that buying wins under uncertain rates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cleanup, err := newEngine()
		if err != nil {
			return err
		}
		defer cleanup()

		set, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, sc := range set.Scenarios {
			result, err := engine.EstimateMonteCarlo(&sc.Parameters, flagSims, flagSeed)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			fmt.Fprintf(out, "%s: P(buying cheaper)=%s over %d trials (seed %d)\n",
				sc.Name, result.BuyCheaperProbability.StringFixed(3), result.NumSimulations, result.Seed)
			if result.MedianBreakEvenYear != nil {
				fmt.Fprintf(out, "  median break-even year: %s\n", result.MedianBreakEvenYear.StringFixed(1))
			} else {
				fmt.Fprintln(out, "  no trial broke even")
			}
		}
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example [path]",
	Short: "Write a starter scenario file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "rentvsbuy_example.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.NewInputParser().WriteExampleFile(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "example scenario file written to %s\n", path)
		return nil
	},
}

// newEngine wires a calculation engine with the zap-backed logger.
func newEngine() (*calculation.CalculationEngine, func(), error) {
	engine := calculation.NewCalculationEngine()
	logger, err := logging.New(flagDebug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	engine.SetLogger(logger)
	return engine, func() { _ = logger.Sync() }, nil
}

// runScenarios computes every scenario and attaches its summary verdict.
func runScenarios(engine *calculation.CalculationEngine, set *domain.ScenarioSet) (*domain.ScenarioComparison, error) {
	comparison := &domain.ScenarioComparison{
		Assumptions: set.Assumptions,
		Scenarios:   make([]domain.ScenarioSummary, len(set.Scenarios)),
	}
	for i, sc := range set.Scenarios {
		result, err := engine.ComputeScenario(&sc.Parameters)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		comparison.Scenarios[i] = domain.ScenarioSummary{
			Name:       sc.Name,
			Parameters: sc.Parameters,
			Result:     result,
			Verdict:    output.SummarizeScenario(&sc.Parameters, result),
		}
	}
	return comparison, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	calculateCmd.Flags().StringVar(&flagFormat, "format", "console", "report format: console, json, or csv")
	calculateCmd.Flags().StringVar(&flagOutput, "output", "", "directory to write the report to (default: stdout)")

	montecarloCmd.Flags().IntVar(&flagSims, "sims", 1000, "number of Monte Carlo trials")
	montecarloCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (0 derives one from the clock)")

	rootCmd.AddCommand(calculateCmd, montecarloCmd, exampleCmd)
}

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"evokit/internal/config"
	"evokit/internal/logging"
)

// options holds flag values that override the config file
type options struct {
	configPath      string
	seed            int64
	generations     int
	population      int
	elitism         float64
	outputFrequency int
	runs            int
	workers         int
	logLevel        string
	metricsAddr     string
	championDir     string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "evolve",
		Short:         "Run evolutionary algorithms on benchmark problems",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	f := root.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to YAML config file")
	f.Int64Var(&opts.seed, "seed", 0, "random seed (overrides config)")
	f.IntVarP(&opts.generations, "generations", "g", 0, "generations per run (overrides config)")
	f.IntVarP(&opts.population, "population", "p", 0, "population size (overrides config)")
	f.Float64Var(&opts.elitism, "elitism", -1, "elite fraction in [0,1] (overrides config)")
	f.IntVar(&opts.outputFrequency, "output-frequency", -1, "report progress every n generations, 0 disables (overrides config)")
	f.IntVarP(&opts.runs, "runs", "r", 0, "number of independent runs (overrides config)")
	f.IntVarP(&opts.workers, "workers", "w", 0, "runs executed in parallel (overrides config)")
	f.StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (overrides config)")
	f.StringVar(&opts.championDir, "champion-dir", "", "save every run's best individual here (overrides config)")

	root.AddCommand(newOneMaxCmd(opts))
	root.AddCommand(newBinPackCmd(opts))
	root.AddCommand(newShowCmd())
	return root
}

// load reads the config file and applies flag overrides
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("generations") {
		cfg.Run.Generations = o.generations
	}
	if flags.Changed("population") {
		cfg.Run.Population = o.population
	}
	if flags.Changed("elitism") {
		cfg.Run.Elitism = o.elitism
	}
	if flags.Changed("output-frequency") {
		cfg.Run.OutputFrequency = o.outputFrequency
	}
	if flags.Changed("runs") {
		cfg.Run.Runs = o.runs
	}
	if flags.Changed("workers") {
		cfg.Run.Workers = o.workers
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = o.metricsAddr
	}
	if flags.Changed("champion-dir") {
		cfg.Logging.ChampionDir = o.championDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
}

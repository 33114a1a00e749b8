package main

import (
	"errors"

	"github.com/spf13/cobra"

	"evokit/internal/problem/binpack"
	"evokit/internal/problem/onemax"
)

func newOneMaxCmd(opts *options) *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "onemax",
		Short: "Evolve a bit string of all ones",
		Long: `Simple genetic algorithm: bit-flip mutation, one-point crossover and
roulette-wheel selection. The objective is the number of bits still zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("length") {
				cfg.OneMax.Length = length
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			reporter, closeReporters, err := reporters(cmd, cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeReporters(); err == nil {
					err = cerr
				}
			}()

			engine, err := onemax.NewEngine(cfg, reporter)
			if err != nil {
				return err
			}
			_, err = execute(cmd.Context(), cfg, logger, engine, onemax.Factory(cfg))
			return err
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", 0, "bit string length (overrides config)")
	return cmd
}

func newBinPackCmd(opts *options) *cobra.Command {
	var bins int

	cmd := &cobra.Command{
		Use:   "binpack [weights-file]",
		Short: "Balance weighted items across bins",
		Long: `Assigns items to bins minimising the difference between the heaviest
and the lightest bin. The weights file holds one integer per line; it can
also be set with binpack.weights_path in the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.BinPack.WeightsPath = args[0]
			}
			if cmd.Flags().Changed("bins") {
				cfg.BinPack.Bins = bins
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.BinPack.WeightsPath == "" {
				return errors.New("no weights file: pass one as argument or set binpack.weights_path")
			}
			weights, err := binpack.LoadWeights(cfg.BinPack.WeightsPath)
			if err != nil {
				return err
			}
			problem, err := binpack.New(weights, cfg.BinPack.Bins)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			logger.Info("loaded items", "items", problem.Items(), "bins", problem.Bins(), "weights", binpack.FormatWeights(weights))

			reporter, closeReporters, err := reporters(cmd, cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeReporters(); err == nil {
					err = cerr
				}
			}()

			engine, err := problem.NewEngine(cfg, reporter)
			if err != nil {
				return err
			}
			_, err = execute(cmd.Context(), cfg, logger, engine, problem.Factory(cfg.Run.Population))
			return err
		},
	}
	cmd.Flags().IntVarP(&bins, "bins", "b", 0, "number of bins (overrides config)")
	return cmd
}

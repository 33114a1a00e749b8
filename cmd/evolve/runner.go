package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"evokit/internal/config"
	"evokit/internal/ga"
	"evokit/internal/report"
)

// reporters builds the reporter chain for a command. The returned closer
// flushes files and stops the metrics server.
func reporters(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (ga.Reporter, func() error, error) {
	chain := report.Multi{report.NewConsole(cmd.OutOrStdout()), report.NewLog(logger)}
	var closers []func() error

	if cfg.Logging.CSVPath != "" || cfg.Logging.JSONPath != "" {
		files, err := report.NewFiles(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open run logs: %w", err)
		}
		chain = append(chain, files)
		closers = append(closers, files.Close)
	}

	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		metrics, err := report.NewMetrics(reg)
		if err != nil {
			return nil, nil, err
		}
		chain = append(chain, metrics)

		srv := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", slog.String("addr", cfg.Metrics.Addr), slog.Any("error", err))
			}
		}()
		logger.Info("serving metrics", slog.String("addr", cfg.Metrics.Addr))
		closers = append(closers, func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		})
	}

	closeAll := func() error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}
	return chain, closeAll, nil
}

// execute runs the configured batch, sequentially or across workers, then
// logs cross-run statistics and saves champions when asked to.
func execute[G any, F ga.Numeric](ctx context.Context, cfg *config.Config, logger *slog.Logger, engine *ga.Engine[G, F], factory ga.PopulationFactory[G, F]) ([]*ga.Individual[G, F], error) {
	logger.Info("starting batch",
		slog.Int64("seed", cfg.Seed),
		slog.Int("generations", cfg.Run.Generations),
		slog.Int("population", cfg.Run.Population),
		slog.Float64("elitism", cfg.Run.Elitism),
		slog.Int("runs", cfg.Run.Runs),
		slog.Int("workers", cfg.Run.Workers),
	)

	var (
		bests []*ga.Individual[G, F]
		err   error
	)
	if cfg.Run.Workers > 1 {
		bests, err = engine.RunBatchParallel(ctx, cfg.Run.Generations, cfg.Run.Runs, cfg.Run.Workers, factory)
	} else {
		bests, err = engine.RunBatch(cfg.Run.Generations, cfg.Run.Runs, factory)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]ga.Summary, len(bests))
	for i, best := range bests {
		summaries[i] = engine.Summarize(i, best)
		summaries[i].Generations = cfg.Run.Generations
	}
	stats := report.Aggregate(summaries)
	logger.Info("objective across runs",
		slog.Float64("mean", stats.ObjectiveMean),
		slog.Float64("std", stats.ObjectiveStd),
		slog.Float64("min", stats.ObjectiveMin),
		slog.Float64("max", stats.ObjectiveMax),
	)

	if dir := cfg.Logging.ChampionDir; dir != "" {
		for i, best := range bests {
			path := filepath.Join(dir, fmt.Sprintf("champion_run%d.json", i))
			if err := report.SaveChampion(path, summaries[i], best); err != nil {
				logger.Warn("failed to save champion", slog.String("path", path), slog.Any("error", err))
			}
		}
	}
	return bests, nil
}

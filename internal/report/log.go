package report

import (
	"log/slog"

	"evokit/internal/ga"
)

// Log writes observations as structured slog records. Progress is logged at
// debug level so long runs stay quiet at the default level.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a log reporter; a nil logger falls back to slog.Default()
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Progress(p ga.Progress) {
	l.logger.Debug("generation",
		slog.Int("run", p.Run),
		slog.Int("generation", p.Generation),
		slog.Float64("objective", p.Objective),
		slog.Float64("fitness", p.Fitness),
		slog.String("best", p.Individual),
	)
}

func (l *Log) RunFinished(s ga.Summary) {
	l.logger.Info("run finished",
		slog.Int("run", s.Run),
		slog.Int("generations", s.Generations),
		slog.Float64("objective", s.Objective),
		slog.Float64("fitness", s.Fitness),
		slog.Duration("elapsed", s.Elapsed),
		slog.Duration("per_generation", s.PerGeneration()),
	)
}

func (l *Log) BatchFinished(results []ga.Summary) {
	stats := Aggregate(results)
	l.logger.Info("batch finished",
		slog.Int("runs", stats.Runs),
		slog.Float64("objective_mean", stats.ObjectiveMean),
		slog.Float64("objective_std", stats.ObjectiveStd),
		slog.Float64("objective_min", stats.ObjectiveMin),
		slog.Float64("objective_max", stats.ObjectiveMax),
	)
}

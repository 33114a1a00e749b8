package report

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"evokit/internal/ga"
)

const metricsNamespace = "evokit"

// Metrics exports observations as Prometheus metrics
type Metrics struct {
	// BestObjective is the objective of the latest reported best individual.
	// Labels: run
	BestObjective *prometheus.GaugeVec

	// BestFitness is the fitness of the latest reported best individual.
	// Labels: run
	BestFitness *prometheus.GaugeVec

	// Generation is the index of the latest reported generation.
	// Labels: run
	Generation *prometheus.GaugeVec

	// RunsTotal counts finished runs
	RunsTotal prometheus.Counter

	// BatchesTotal counts finished batches
	BatchesTotal prometheus.Counter

	// RunDurationSeconds measures wall-clock time per run
	RunDurationSeconds prometheus.Histogram

	// FinalObjective records the objective each run finished with
	FinalObjective prometheus.Histogram
}

// NewMetrics creates the metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		BestObjective: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "best_objective",
			Help:      "Objective of the best individual at the latest reported generation",
		}, []string{"run"}),
		BestFitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "best_fitness",
			Help:      "Fitness of the best individual at the latest reported generation",
		}, []string{"run"}),
		Generation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "generation",
			Help:      "Latest reported generation",
		}, []string{"run"}),
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Total finished runs",
		}),
		BatchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "batches_total",
			Help:      "Total finished batches",
		}),
		RunDurationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of a run",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
		}),
		FinalObjective: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "final_objective",
			Help:      "Objective of the best individual at the end of a run",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}

	collectors := []prometheus.Collector{
		m.BestObjective, m.BestFitness, m.Generation,
		m.RunsTotal, m.BatchesTotal, m.RunDurationSeconds, m.FinalObjective,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) Progress(p ga.Progress) {
	run := strconv.Itoa(p.Run)
	m.BestObjective.WithLabelValues(run).Set(p.Objective)
	m.BestFitness.WithLabelValues(run).Set(p.Fitness)
	m.Generation.WithLabelValues(run).Set(float64(p.Generation))
}

func (m *Metrics) RunFinished(s ga.Summary) {
	run := strconv.Itoa(s.Run)
	m.BestObjective.WithLabelValues(run).Set(s.Objective)
	m.BestFitness.WithLabelValues(run).Set(s.Fitness)
	m.RunsTotal.Inc()
	m.RunDurationSeconds.Observe(s.Elapsed.Seconds())
	m.FinalObjective.Observe(s.Objective)
}

func (m *Metrics) BatchFinished([]ga.Summary) {
	m.BatchesTotal.Inc()
}

package ga

import "time"

// Progress is one periodic observation of a running evolution
type Progress struct {
	Run        int
	Generation int
	Objective  float64
	Fitness    float64
	Individual string // empty unless a renderer is configured
}

// Summary describes the best individual found by one run
type Summary struct {
	Run         int
	Generations int
	Objective   float64
	Fitness     float64
	Individual  string
	Elapsed     time.Duration
}

// PerGeneration returns the mean wall-clock time spent on one generation
func (s Summary) PerGeneration() time.Duration {
	if s.Generations == 0 {
		return 0
	}
	return s.Elapsed / time.Duration(s.Generations)
}

// Reporter receives the engine's observations. Where they end up (console,
// log, files, metrics) is up to the implementation.
type Reporter interface {
	Progress(p Progress)
	RunFinished(s Summary)
	BatchFinished(results []Summary)
}

type nopReporter struct{}

func (nopReporter) Progress(Progress) {}
func (nopReporter) RunFinished(Summary) {}
func (nopReporter) BatchFinished([]Summary) {}

package report

import "evokit/internal/ga"

// Multi forwards every observation to each reporter in order
type Multi []ga.Reporter

func (m Multi) Progress(p ga.Progress) {
	for _, r := range m {
		r.Progress(p)
	}
}

func (m Multi) RunFinished(s ga.Summary) {
	for _, r := range m {
		r.RunFinished(s)
	}
}

func (m Multi) BatchFinished(results []ga.Summary) {
	for _, r := range m {
		r.BatchFinished(results)
	}
}

// Nop discards everything
type Nop struct{}

func (Nop) Progress(ga.Progress) {}
func (Nop) RunFinished(ga.Summary) {}
func (Nop) BatchFinished([]ga.Summary) {}

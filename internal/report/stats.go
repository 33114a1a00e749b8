package report

import (
	"math"

	"evokit/internal/ga"
)

// Stats holds objective statistics across the runs of a batch
type Stats struct {
	Runs          int
	ObjectiveMean float64
	ObjectiveStd  float64
	ObjectiveMin  float64
	ObjectiveMax  float64
	ElapsedMean   float64 // seconds
}

// Aggregate computes statistics from run summaries
func Aggregate(results []ga.Summary) Stats {
	n := len(results)
	if n == 0 {
		return Stats{}
	}

	stats := Stats{
		Runs:         n,
		ObjectiveMin: math.Inf(1),
		ObjectiveMax: math.Inf(-1),
	}
	var objSum, elapsedSum float64
	for _, s := range results {
		objSum += s.Objective
		elapsedSum += s.Elapsed.Seconds()
		stats.ObjectiveMin = math.Min(stats.ObjectiveMin, s.Objective)
		stats.ObjectiveMax = math.Max(stats.ObjectiveMax, s.Objective)
	}

	nf := float64(n)
	stats.ObjectiveMean = objSum / nf
	stats.ElapsedMean = elapsedSum / nf

	// Population standard deviation
	var variance float64
	for _, s := range results {
		diff := s.Objective - stats.ObjectiveMean
		variance += diff * diff
	}
	stats.ObjectiveStd = math.Sqrt(variance / nf)

	return stats
}

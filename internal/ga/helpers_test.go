package ga

import (
	"math/rand"
)

// pop builds single-gene individuals whose fitness equals their gene
func pop(fits ...int) Population[int, int] {
	p := make(Population[int, int], len(fits))
	for i, f := range fits {
		p[i] = NewIndividual[int, int]([]int{f})
		p[i].Fitness = f
	}
	return p
}

func genes(p Population[int, int]) []int {
	out := make([]int, len(p))
	for i, ind := range p {
		out[i] = ind.Gene(0)
	}
	return out
}

func fitnesses(p Population[int, int]) []int {
	out := make([]int, len(p))
	for i, ind := range p {
		out[i] = ind.Fitness
	}
	return out
}

// geneFitness scores an individual by its first gene
var geneFitness = ScoreEach[int, int](func(ind *Individual[int, int]) int {
	return ind.Gene(0)
})

// copyInOrder clones the first count individuals of the source, wrapping around
var copyInOrder = SelectorFunc[int, int](func(_ *rand.Rand, from Population[int, int], count int) (Population[int, int], error) {
	out := make(Population[int, int], 0, count)
	for i := 0; i < count; i++ {
		out = append(out, from[i%len(from)].Clone())
	}
	return out, nil
})

var identity = OperatorFunc[int, int](func(*rand.Rand, Population[int, int]) error { return nil })

// recordingSelector remembers every count it was asked for
type recordingSelector struct {
	counts []int
}

func (r *recordingSelector) Select(rng *rand.Rand, from Population[int, int], count int) (Population[int, int], error) {
	r.counts = append(r.counts, count)
	return copyInOrder(rng, from, count)
}

// recordingReporter keeps every observation
type recordingReporter struct {
	progress []Progress
	runs     []Summary
	batches  [][]Summary
}

func (r *recordingReporter) Progress(p Progress) { r.progress = append(r.progress, p) }
func (r *recordingReporter) RunFinished(s Summary) { r.runs = append(r.runs, s) }
func (r *recordingReporter) BatchFinished(res []Summary) { r.batches = append(r.batches, res) }

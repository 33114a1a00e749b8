package ga

import (
	"fmt"
	"math/rand"
)

// Tournament draws Size individuals uniformly with replacement. The fittest
// of them wins with probability WinProbability, otherwise the last drawn one
// is taken. Size 2 with 0.8 is the classic binary tournament.
type Tournament[G any, F Numeric] struct {
	size    int
	winProb float64
}

// NewTournament creates a tournament selector
func NewTournament[G any, F Numeric](size int, winProb float64) (*Tournament[G, F], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: tournament size %d must be positive", ErrInvalidConfiguration, size)
	}
	if err := checkProbability("tournament win probability", winProb); err != nil {
		return nil, err
	}
	return &Tournament[G, F]{size: size, winProb: winProb}, nil
}

// Select picks count clones by repeated tournaments
func (t *Tournament[G, F]) Select(rng *rand.Rand, from Population[G, F], count int) (Population[G, F], error) {
	if count == 0 {
		return Population[G, F]{}, nil
	}
	if len(from) == 0 {
		return nil, fmt.Errorf("%w: tournament over an empty population", ErrInsufficientSelection)
	}

	out := make(Population[G, F], 0, count)
	for i := 0; i < count; i++ {
		out = append(out, t.pick(rng, from).Clone())
	}
	return out, nil
}

func (t *Tournament[G, F]) pick(rng *rand.Rand, from Population[G, F]) *Individual[G, F] {
	best := from[rng.Intn(len(from))]
	last := best
	for i := 1; i < t.size; i++ {
		last = from[rng.Intn(len(from))]
		if last.Fitness >= best.Fitness {
			best = last
		}
	}
	if best == last || rng.Float64() < t.winProb {
		return best
	}
	return last
}

// RouletteWheel selects individuals with probability proportional to their
// fitness. Every fitness must be non-negative and at least one positive.
type RouletteWheel[G any, F Numeric] struct{}

// NewRouletteWheel creates a fitness-proportional selector
func NewRouletteWheel[G any, F Numeric]() *RouletteWheel[G, F] {
	return &RouletteWheel[G, F]{}
}

// Select picks count clones by spinning the wheel
func (RouletteWheel[G, F]) Select(rng *rand.Rand, from Population[G, F], count int) (Population[G, F], error) {
	if count == 0 {
		return Population[G, F]{}, nil
	}

	var total float64
	last := -1
	for i, ind := range from {
		f := float64(ind.Fitness)
		if f < 0 {
			return nil, fmt.Errorf("%w: individual %d has fitness %v", ErrNegativeFitness, i, f)
		}
		if f > 0 {
			last = i
		}
		total += f
	}
	if last < 0 {
		return nil, fmt.Errorf("%w: no individual with positive fitness among %d", ErrInsufficientSelection, len(from))
	}

	out := make(Population[G, F], 0, count)
	for len(out) < count {
		target := rng.Float64() * total
		picked := last // float rounding can leave target just past the final sum
		var sum float64
		for i, ind := range from {
			sum += float64(ind.Fitness)
			if target <= sum && ind.Fitness > 0 {
				picked = i
				break
			}
		}
		out = append(out, from[picked].Clone())
	}
	return out, nil
}

// Truncation deterministically selects the count fittest individuals. Ties
// keep population order.
type Truncation[G any, F Numeric] struct{}

// NewTruncation creates a truncation selector
func NewTruncation[G any, F Numeric]() *Truncation[G, F] {
	return &Truncation[G, F]{}
}

// Select returns clones of the count fittest individuals
func (Truncation[G, F]) Select(_ *rand.Rand, from Population[G, F], count int) (Population[G, F], error) {
	if count > len(from) {
		return nil, fmt.Errorf("%w: asked for %d of %d individuals", ErrInsufficientSelection, count, len(from))
	}
	return from.TopK(count), nil
}

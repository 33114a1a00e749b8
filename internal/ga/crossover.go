package ga

import (
	"math/rand"
)

// OnePointCrossover recombines consecutive pairs (0,1), (2,3), ... With the
// configured probability a pair swaps every gene from a random cut point to
// the end. An odd last individual is left alone.
type OnePointCrossover[G any, F Numeric] struct {
	rate float64
}

// NewOnePointCrossover creates a one-point crossover with the per-pair probability
func NewOnePointCrossover[G any, F Numeric](rate float64) (*OnePointCrossover[G, F], error) {
	if err := checkProbability("crossover probability", rate); err != nil {
		return nil, err
	}
	return &OnePointCrossover[G, F]{rate: rate}, nil
}

// Apply recombines the population in place
func (c *OnePointCrossover[G, F]) Apply(rng *rand.Rand, pop Population[G, F]) error {
	for i := 0; i+1 < len(pop); i += 2 {
		p1, p2 := pop[i].Genome(), pop[i+1].Genome()
		size := min(len(p1), len(p2))
		if size == 0 || rng.Float64() >= c.rate {
			continue
		}
		point := rng.Intn(size)
		for pos := point; pos < size; pos++ {
			p1[pos], p2[pos] = p2[pos], p1[pos]
		}
	}
	return nil
}

// UniformCrossover recombines consecutive pairs gene by gene: with the
// configured probability a pair takes part, and then every position is
// swapped with probability SwapRate.
type UniformCrossover[G any, F Numeric] struct {
	rate     float64
	swapRate float64
}

// NewUniformCrossover creates a uniform crossover
func NewUniformCrossover[G any, F Numeric](rate, swapRate float64) (*UniformCrossover[G, F], error) {
	if err := checkProbability("crossover probability", rate); err != nil {
		return nil, err
	}
	if err := checkProbability("swap probability", swapRate); err != nil {
		return nil, err
	}
	return &UniformCrossover[G, F]{rate: rate, swapRate: swapRate}, nil
}

// Apply recombines the population in place
func (c *UniformCrossover[G, F]) Apply(rng *rand.Rand, pop Population[G, F]) error {
	for i := 0; i+1 < len(pop); i += 2 {
		if rng.Float64() >= c.rate {
			continue
		}
		p1, p2 := pop[i].Genome(), pop[i+1].Genome()
		size := min(len(p1), len(p2))
		for pos := 0; pos < size; pos++ {
			if rng.Float64() < c.swapRate {
				// Swap genes
				p1[pos], p2[pos] = p2[pos], p1[pos]
			}
		}
	}
	return nil
}

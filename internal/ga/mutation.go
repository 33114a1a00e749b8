package ga

import (
	"fmt"
	"math/rand"
)

// BitFlip flips every boolean gene with a fixed probability
type BitFlip[F Numeric] struct {
	rate float64
}

// NewBitFlip creates a bit-flip mutation with the per-gene flip probability
func NewBitFlip[F Numeric](rate float64) (*BitFlip[F], error) {
	if err := checkProbability("bit mutation probability", rate); err != nil {
		return nil, err
	}
	return &BitFlip[F]{rate: rate}, nil
}

// Apply mutates the population in place
func (m *BitFlip[F]) Apply(rng *rand.Rand, pop Population[bool, F]) error {
	for _, ind := range pop {
		genome := ind.Genome()
		for i := range genome {
			if rng.Float64() < m.rate {
				genome[i] = !genome[i]
			}
		}
	}
	return nil
}

// IntegerMutation picks individuals with one probability and then resets
// each of their genes, with a second probability, to a uniform integer from
// [Min, Max].
type IntegerMutation[F Numeric] struct {
	min, max   int
	rate       float64
	geneChange float64
}

// NewIntegerMutation creates an integer mutation. Bounds are inclusive.
func NewIntegerMutation[F Numeric](min, max int, rate, geneChange float64) (*IntegerMutation[F], error) {
	if min > max {
		return nil, fmt.Errorf("%w: lower bound %d exceeds upper bound %d", ErrInvalidConfiguration, min, max)
	}
	if err := checkProbability("mutation probability", rate); err != nil {
		return nil, err
	}
	if err := checkProbability("gene change probability", geneChange); err != nil {
		return nil, err
	}
	return &IntegerMutation[F]{min: min, max: max, rate: rate, geneChange: geneChange}, nil
}

// Apply mutates the population in place
func (m *IntegerMutation[F]) Apply(rng *rand.Rand, pop Population[int, F]) error {
	span := m.max - m.min + 1
	for _, ind := range pop {
		if rng.Float64() >= m.rate {
			continue
		}
		genome := ind.Genome()
		for i := range genome {
			if rng.Float64() < m.geneChange {
				genome[i] = m.min + rng.Intn(span)
			}
		}
	}
	return nil
}

// GaussianMutation perturbs float genes with N(0, sigma) noise and
// occasionally resets a gene outright
type GaussianMutation[F Numeric] struct {
	rate   float64
	sigma  float64
	resetP float64
}

// NewGaussianMutation creates a Gaussian mutation. resetP may be 0.
func NewGaussianMutation[F Numeric](rate, sigma, resetP float64) (*GaussianMutation[F], error) {
	if err := checkProbability("mutation probability", rate); err != nil {
		return nil, err
	}
	if err := checkProbability("reset probability", resetP); err != nil {
		return nil, err
	}
	if sigma < 0 {
		return nil, fmt.Errorf("%w: sigma %v is negative", ErrInvalidConfiguration, sigma)
	}
	return &GaussianMutation[F]{rate: rate, sigma: sigma, resetP: resetP}, nil
}

// Apply mutates the population in place
func (m *GaussianMutation[F]) Apply(rng *rand.Rand, pop Population[float64, F]) error {
	for _, ind := range pop {
		genome := ind.Genome()
		for i := range genome {
			if rng.Float64() < m.resetP {
				// Random reset
				genome[i] = rng.NormFloat64() * 0.5
			} else if rng.Float64() < m.rate {
				genome[i] += rng.NormFloat64() * m.sigma
			}
		}
	}
	return nil
}

func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: %s %v must be within [0, 1]", ErrInvalidConfiguration, name, p)
	}
	return nil
}

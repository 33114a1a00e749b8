package ga

import (
	"fmt"
	"math/rand"
)

// UniformInts creates count individuals of the given length whose genes are
// uniform integers from [min, max].
func UniformInts[F Numeric](rng *rand.Rand, min, max, count, length int) (Population[int, F], error) {
	if min > max {
		return nil, fmt.Errorf("%w: lower bound %d exceeds upper bound %d", ErrInvalidConfiguration, min, max)
	}
	if count < 0 || length < 0 {
		return nil, fmt.Errorf("%w: %d individuals of length %d", ErrInvalidConfiguration, count, length)
	}

	span := max - min + 1
	pop := make(Population[int, F], count)
	for i := range pop {
		genome := make([]int, length)
		for j := range genome {
			genome[j] = min + rng.Intn(span)
		}
		pop[i] = NewIndividual[int, F](genome)
	}
	return pop, nil
}

// UniformBools creates count individuals of random bits
func UniformBools[F Numeric](rng *rand.Rand, count, length int) (Population[bool, F], error) {
	ints, err := UniformInts[F](rng, 0, 1, count, length)
	if err != nil {
		return nil, err
	}
	pop := make(Population[bool, F], len(ints))
	for i, ind := range ints {
		genome := make([]bool, ind.Len())
		for j, v := range ind.Genome() {
			genome[j] = v == 1
		}
		pop[i] = NewIndividual[bool, F](genome)
	}
	return pop, nil
}

// GaussianFloats creates count individuals with N(0, sigma) genes
func GaussianFloats[F Numeric](rng *rand.Rand, count, length int, sigma float64) (Population[float64, F], error) {
	if count < 0 || length < 0 || sigma < 0 {
		return nil, fmt.Errorf("%w: %d individuals of length %d, sigma %v", ErrInvalidConfiguration, count, length, sigma)
	}
	pop := make(Population[float64, F], count)
	for i := range pop {
		genome := make([]float64, length)
		for j := range genome {
			genome[j] = rng.NormFloat64() * sigma
		}
		pop[i] = NewIndividual[float64, F](genome)
	}
	return pop, nil
}

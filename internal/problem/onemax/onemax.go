// Package onemax is the simple genetic algorithm benchmark: evolve a bit
// string of all ones. The objective is the number of bits still zero, so a
// perfect individual has objective 0.
package onemax

import (
	"math/rand"
	"strings"

	"evokit/internal/config"
	"evokit/internal/ga"
)

// Fitness counts the set bits of an individual
func Fitness(ind *ga.Individual[bool, int]) int {
	sum := 0
	for _, bit := range ind.Genome() {
		if bit {
			sum++
		}
	}
	return sum
}

// Objective returns the number of bits missing from a perfect individual
func Objective(length int) ga.ObjectiveFunc[bool, int] {
	return func(ind *ga.Individual[bool, int]) float64 {
		return float64(length - ind.Fitness)
	}
}

// Render prints an individual as <0110...>
func Render(ind *ga.Individual[bool, int]) string {
	var b strings.Builder
	b.Grow(ind.Len() + 2)
	b.WriteByte('<')
	for _, bit := range ind.Genome() {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte('>')
	return b.String()
}

// NewEngine wires bit-flip mutation, one-point crossover and roulette-wheel
// mating selection. There is no natural selector: survivors are the leading
// individuals of the evaluated mating pool.
func NewEngine(cfg *config.Config, reporter ga.Reporter) (*ga.Engine[bool, int], error) {
	mutation, err := ga.NewBitFlip[int](cfg.OneMax.BitMutationP)
	if err != nil {
		return nil, err
	}
	crossover, err := ga.NewOnePointCrossover[bool, int](cfg.OneMax.CrossoverP)
	if err != nil {
		return nil, err
	}

	return ga.NewEngine(ga.Config[bool, int]{
		Operators:       []ga.Operator[bool, int]{mutation, crossover},
		MatingSelectors: []ga.Selector[bool, int]{ga.NewRouletteWheel[bool, int]()},
		Evaluator:       ga.ScoreEach[bool, int](Fitness),
		Elitism:         cfg.Run.Elitism,
		OutputFrequency: cfg.Run.OutputFrequency,
		Objective:       Objective(cfg.OneMax.Length),
		Render:          Render,
		Reporter:        reporter,
		Seed:            cfg.Seed,
	})
}

// Factory creates random, already evaluated initial populations
func Factory(cfg *config.Config) ga.PopulationFactory[bool, int] {
	return func(rng *rand.Rand) (ga.Population[bool, int], error) {
		pop, err := ga.UniformBools[int](rng, cfg.Run.Population, cfg.OneMax.Length)
		if err != nil {
			return nil, err
		}
		for _, ind := range pop {
			ind.Fitness = Fitness(ind)
		}
		return pop, nil
	}
}

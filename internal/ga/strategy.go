package ga

import (
	"math/rand"
)

// Operator transforms a population in place (mutation, crossover). It must
// keep both the population size and every genome length unchanged.
type Operator[G any, F Numeric] interface {
	Apply(rng *rand.Rand, pop Population[G, F]) error
}

// Selector picks count individuals from a source population. The returned
// individuals must be clones so the caller owns them exclusively. A selector
// that cannot produce count individuals returns ErrInsufficientSelection.
type Selector[G any, F Numeric] interface {
	Select(rng *rand.Rand, from Population[G, F], count int) (Population[G, F], error)
}

// Evaluator assigns a fitness to every individual of a population
type Evaluator[G any, F Numeric] interface {
	Evaluate(pop Population[G, F]) error
}

// ObjectiveFunc maps an individual to a human-facing objective value used for
// reporting only.
type ObjectiveFunc[G any, F Numeric] func(ind *Individual[G, F]) float64

// RenderFunc renders an individual for reporting
type RenderFunc[G any, F Numeric] func(ind *Individual[G, F]) string

// PopulationFactory produces the initial population of one run. It receives
// the run's own random stream.
type PopulationFactory[G any, F Numeric] func(rng *rand.Rand) (Population[G, F], error)

// OperatorFunc adapts a function to the Operator interface
type OperatorFunc[G any, F Numeric] func(rng *rand.Rand, pop Population[G, F]) error

func (f OperatorFunc[G, F]) Apply(rng *rand.Rand, pop Population[G, F]) error {
	return f(rng, pop)
}

// SelectorFunc adapts a function to the Selector interface
type SelectorFunc[G any, F Numeric] func(rng *rand.Rand, from Population[G, F], count int) (Population[G, F], error)

func (f SelectorFunc[G, F]) Select(rng *rand.Rand, from Population[G, F], count int) (Population[G, F], error) {
	return f(rng, from, count)
}

// EvaluatorFunc adapts a function to the Evaluator interface
type EvaluatorFunc[G any, F Numeric] func(pop Population[G, F]) error

func (f EvaluatorFunc[G, F]) Evaluate(pop Population[G, F]) error {
	return f(pop)
}

// ScoreFunc computes the fitness of a single individual
type ScoreFunc[G any, F Numeric] func(ind *Individual[G, F]) F

// ScoreEach builds an evaluator that scores individuals one at a time
func ScoreEach[G any, F Numeric](score ScoreFunc[G, F]) Evaluator[G, F] {
	return EvaluatorFunc[G, F](func(pop Population[G, F]) error {
		for _, ind := range pop {
			ind.Fitness = score(ind)
		}
		return nil
	})
}

// Package binpack distributes weighted items over a fixed number of bins so
// that the heaviest and lightest bins differ as little as possible.
//
// Gene i of an individual is the bin of item i. Fitness is
// 1 / ((max - min) + 1) over the bin loads, the objective is max - min.
package binpack

import (
	"fmt"
	"math"
	"math/rand"

	"evokit/internal/config"
	"evokit/internal/ga"
)

// Problem is one bin packing instance
type Problem struct {
	weights []int
	bins    int
}

// New creates a problem instance. At least two bins and one item are required.
func New(weights []int, bins int) (*Problem, error) {
	if bins < 2 {
		return nil, fmt.Errorf("%w: the number of bins should be at least two, got %d", ga.ErrInvalidConfiguration, bins)
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no items to pack", ga.ErrInvalidConfiguration)
	}
	return &Problem{weights: weights, bins: bins}, nil
}

// Items returns the number of items, which is also the genome length
func (p *Problem) Items() int {
	return len(p.weights)
}

// Bins returns the number of bins
func (p *Problem) Bins() int {
	return p.bins
}

// BinWeights computes the load of every bin
func (p *Problem) BinWeights(ind *ga.Individual[int, float64]) ([]int, error) {
	if ind.Len() != len(p.weights) {
		return nil, fmt.Errorf("genome length %d does not match %d items", ind.Len(), len(p.weights))
	}
	loads := make([]int, p.bins)
	for i, bin := range ind.Genome() {
		if bin < 0 || bin >= p.bins {
			return nil, fmt.Errorf("item %d assigned to bin %d outside [0, %d)", i, bin, p.bins)
		}
		loads[bin] += p.weights[i]
	}
	return loads, nil
}

// Fitness returns 1 / ((max - min) + 1) of the bin loads
func (p *Problem) Fitness(ind *ga.Individual[int, float64]) (float64, error) {
	loads, err := p.BinWeights(ind)
	if err != nil {
		return 0, err
	}
	return 1.0 / float64(spread(loads)+1), nil
}

// Evaluate sets the fitness of every individual
func (p *Problem) Evaluate(pop ga.Population[int, float64]) error {
	for i, ind := range pop {
		f, err := p.Fitness(ind)
		if err != nil {
			return fmt.Errorf("individual %d: %w", i, err)
		}
		ind.Fitness = f
	}
	return nil
}

// Objective returns the difference between the heaviest and lightest bin
func (p *Problem) Objective(ind *ga.Individual[int, float64]) float64 {
	loads, err := p.BinWeights(ind)
	if err != nil {
		return math.NaN()
	}
	return float64(spread(loads))
}

// Render prints the bin loads of an individual
func (p *Problem) Render(ind *ga.Individual[int, float64]) string {
	loads, err := p.BinWeights(ind)
	if err != nil {
		return "<invalid: " + err.Error() + ">"
	}
	return FormatWeights(loads)
}

// NewEngine wires one-point crossover followed by integer mutation, with
// tournament selection for both the mating pool and the survivors.
func (p *Problem) NewEngine(cfg *config.Config, reporter ga.Reporter) (*ga.Engine[int, float64], error) {
	bp := cfg.BinPack
	crossover, err := ga.NewOnePointCrossover[int, float64](bp.CrossoverP)
	if err != nil {
		return nil, err
	}
	mutation, err := ga.NewIntegerMutation[float64](0, p.bins-1, bp.MutationP, bp.GeneChangeP)
	if err != nil {
		return nil, err
	}
	mating, err := ga.NewTournament[int, float64](bp.TournamentSize, bp.TournamentWinP)
	if err != nil {
		return nil, err
	}
	natural, err := ga.NewTournament[int, float64](bp.TournamentSize, bp.TournamentWinP)
	if err != nil {
		return nil, err
	}

	return ga.NewEngine(ga.Config[int, float64]{
		Operators:        []ga.Operator[int, float64]{crossover, mutation},
		MatingSelectors:  []ga.Selector[int, float64]{mating},
		NaturalSelectors: []ga.Selector[int, float64]{natural},
		Evaluator:        p,
		Elitism:          cfg.Run.Elitism,
		OutputFrequency:  cfg.Run.OutputFrequency,
		Objective:        p.Objective,
		Render:           p.Render,
		Reporter:         reporter,
		Seed:             cfg.Seed,
	})
}

// Factory creates random, already evaluated initial populations
func (p *Problem) Factory(size int) ga.PopulationFactory[int, float64] {
	return func(rng *rand.Rand) (ga.Population[int, float64], error) {
		pop, err := ga.UniformInts[float64](rng, 0, p.bins-1, size, len(p.weights))
		if err != nil {
			return nil, err
		}
		if err := p.Evaluate(pop); err != nil {
			return nil, err
		}
		return pop, nil
	}
}

func spread(loads []int) int {
	lo, hi := math.MaxInt, math.MinInt
	for _, w := range loads {
		lo = min(lo, w)
		hi = max(hi, w)
	}
	return hi - lo
}

package ga

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
)

// Config holds everything an Engine is built from
type Config[G any, F Numeric] struct {
	// Operators are applied to the mating pool in this order
	Operators []Operator[G, F]
	// MatingSelectors jointly fill the mating pool; at least one is required
	MatingSelectors []Selector[G, F]
	// NaturalSelectors jointly fill the survivor slots. When empty, survivors
	// are the leading individuals of the evaluated mating pool.
	NaturalSelectors []Selector[G, F]
	Evaluator        Evaluator[G, F]

	// Elitism is the fraction of the previous generation copied unchanged
	// into the next one. 0 disables elitism.
	Elitism float64
	// OutputFrequency reports progress every n generations; 0 disables it
	OutputFrequency int

	Objective ObjectiveFunc[G, F] // defaults to the fitness itself
	Render    RenderFunc[G, F]
	Reporter  Reporter

	// Seed drives the engine's random stream. Batch run r uses Seed+r.
	Seed int64
}

// Engine is a configurable evolutionary algorithm
type Engine[G any, F Numeric] struct {
	operators        []Operator[G, F]
	matingSelectors  []Selector[G, F]
	naturalSelectors []Selector[G, F]
	evaluator        Evaluator[G, F]

	elitism         float64
	outputFrequency int

	objective ObjectiveFunc[G, F]
	render    RenderFunc[G, F]
	reporter  Reporter

	seed int64
	rng  *rand.Rand
}

// NewEngine validates cfg and creates an engine
func NewEngine[G any, F Numeric](cfg Config[G, F]) (*Engine[G, F], error) {
	if cfg.Evaluator == nil {
		return nil, fmt.Errorf("%w: no fitness evaluator", ErrInvalidConfiguration)
	}
	if len(cfg.MatingSelectors) == 0 {
		return nil, fmt.Errorf("%w: at least one mating selector is required", ErrInvalidConfiguration)
	}
	if cfg.OutputFrequency < 0 {
		return nil, fmt.Errorf("%w: output frequency %d is negative", ErrInvalidConfiguration, cfg.OutputFrequency)
	}

	e := &Engine[G, F]{
		operators:        append([]Operator[G, F](nil), cfg.Operators...),
		matingSelectors:  append([]Selector[G, F](nil), cfg.MatingSelectors...),
		naturalSelectors: append([]Selector[G, F](nil), cfg.NaturalSelectors...),
		evaluator:        cfg.Evaluator,
		outputFrequency:  cfg.OutputFrequency,
		objective:        cfg.Objective,
		render:           cfg.Render,
		reporter:         cfg.Reporter,
		seed:             cfg.Seed,
		rng:              rand.New(rand.NewSource(cfg.Seed)),
	}
	if e.reporter == nil {
		e.reporter = nopReporter{}
	}
	if err := e.SetElitism(cfg.Elitism); err != nil {
		return nil, err
	}
	return e, nil
}

// AddOperator registers an operator after the ones already registered
func (e *Engine[G, F]) AddOperator(op Operator[G, F]) {
	e.operators = append(e.operators, op)
}

// AddMatingSelector registers a selector that fills part of the mating pool
func (e *Engine[G, F]) AddMatingSelector(s Selector[G, F]) {
	e.matingSelectors = append(e.matingSelectors, s)
}

// AddNaturalSelector registers a selector that fills part of the survivors
func (e *Engine[G, F]) AddNaturalSelector(s Selector[G, F]) {
	e.naturalSelectors = append(e.naturalSelectors, s)
}

// SetElitism configures the fraction of elites kept per generation
func (e *Engine[G, F]) SetElitism(fraction float64) error {
	if fraction < 0 || fraction > 1 {
		return fmt.Errorf("%w: elitism %v must be within [0, 1]", ErrInvalidConfiguration, fraction)
	}
	e.elitism = fraction
	return nil
}

// Elitism returns the configured elite fraction
func (e *Engine[G, F]) Elitism() float64 {
	return e.elitism
}

// SetOutputFrequency configures how often progress is reported
func (e *Engine[G, F]) SetOutputFrequency(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: output frequency %d is negative", ErrInvalidConfiguration, n)
	}
	e.outputFrequency = n
	return nil
}

// SetObjective sets the reporting objective
func (e *Engine[G, F]) SetObjective(fn ObjectiveFunc[G, F]) {
	e.objective = fn
}

// SetRenderer sets the function used to render the best individual
func (e *Engine[G, F]) SetRenderer(fn RenderFunc[G, F]) {
	e.render = fn
}

// SetReporter replaces the reporter; nil silences the engine
func (e *Engine[G, F]) SetReporter(r Reporter) {
	if r == nil {
		r = nopReporter{}
	}
	e.reporter = r
}

// Evolve performs one generation using the engine's random stream
func (e *Engine[G, F]) Evolve(pop Population[G, F]) (Population[G, F], error) {
	return e.evolve(e.rng, pop)
}

func (e *Engine[G, F]) evolve(rng *rand.Rand, pop Population[G, F]) (Population[G, F], error) {
	size := len(pop)

	// 1. Mating pool
	pool, err := fill(rng, e.matingSelectors, pop, make(Population[G, F], 0, size), size)
	if err != nil {
		return nil, fmt.Errorf("mating selection: %w", err)
	}

	// 2. Variation
	for i, op := range e.operators {
		if err := op.Apply(rng, pool); err != nil {
			return nil, fmt.Errorf("operator %d: %w", i, err)
		}
	}

	// 3. Fitness
	if err := e.evaluator.Evaluate(pool); err != nil {
		return nil, fmt.Errorf("fitness evaluation: %w", err)
	}

	next := make(Population[G, F], 0, size)
	remaining := size

	// 4. Elites come from the previous generation and skip variation
	if e.elitism > 0 {
		elites := pop.TopK(EliteCount(size, e.elitism))
		next = append(next, elites...)
		remaining -= len(elites)
	}

	// 5. Survivors
	if len(e.naturalSelectors) > 0 {
		next, err = fill(rng, e.naturalSelectors, pool, next, remaining)
		if err != nil {
			return nil, fmt.Errorf("natural selection: %w", err)
		}
	} else {
		next = append(next, pool[:remaining]...)
	}

	return next, nil
}

// fill appends total individuals drawn from source by the selectors, split
// according to SelectionShare.
func fill[G any, F Numeric](rng *rand.Rand, selectors []Selector[G, F], from, to Population[G, F], total int) (Population[G, F], error) {
	for i, sel := range selectors {
		share := SelectionShare(i, len(selectors), total)
		picked, err := sel.Select(rng, from, share)
		if err != nil {
			return nil, fmt.Errorf("selector %d: %w", i, err)
		}
		if len(picked) != share {
			return nil, fmt.Errorf("%w: selector %d returned %d of %d individuals",
				ErrInsufficientSelection, i, len(picked), share)
		}
		to = append(to, picked...)
	}
	return to, nil
}

// Run evolves pop for the given number of generations and returns the best
// individual of the last generation.
func (e *Engine[G, F]) Run(pop Population[G, F], generations int) (*Individual[G, F], error) {
	best, _, err := e.run(e.rng, 0, pop, generations)
	return best, err
}

func (e *Engine[G, F]) run(rng *rand.Rand, run int, pop Population[G, F], generations int) (*Individual[G, F], Summary, error) {
	if len(pop) == 0 {
		return nil, Summary{}, fmt.Errorf("run %d: %w", run, ErrEmptyPopulation)
	}
	if generations < 0 {
		return nil, Summary{}, fmt.Errorf("%w: %d generations", ErrInvalidConfiguration, generations)
	}

	start := time.Now()
	for gen := 0; gen < generations; gen++ {
		var err error
		pop, err = e.evolve(rng, pop)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("run %d, generation %d: %w", run, gen, err)
		}

		if e.outputFrequency != 0 && gen%e.outputFrequency == 0 {
			best := pop.Best()
			e.reporter.Progress(Progress{
				Run:        run,
				Generation: gen,
				Objective:  e.objectiveOf(best),
				Fitness:    float64(best.Fitness),
				Individual: e.renderOf(best),
			})
		}
	}

	best := pop.Best()
	summary := e.summarize(run, generations, best, time.Since(start))
	e.reporter.RunFinished(summary)
	return best, summary, nil
}

// RunBatch performs runs independent runs. Run r draws from its own stream
// seeded with Seed+r, which is also handed to factory, so any single run can
// be reproduced on its own.
func (e *Engine[G, F]) RunBatch(generations, runs int, factory PopulationFactory[G, F]) ([]*Individual[G, F], error) {
	if runs < 0 {
		return nil, fmt.Errorf("%w: %d runs", ErrInvalidConfiguration, runs)
	}

	bests := make([]*Individual[G, F], 0, runs)
	summaries := make([]Summary, 0, runs)
	for r := 0; r < runs; r++ {
		best, summary, err := e.runOne(r, generations, factory)
		if err != nil {
			return nil, err
		}
		bests = append(bests, best)
		summaries = append(summaries, summary)
	}

	e.reporter.BatchFinished(summaries)
	return bests, nil
}

// RunBatchParallel is RunBatch with up to workers runs in flight (workers <= 0
// means unbounded). Results are identical to RunBatch because every run owns
// its stream. Operators, selectors, evaluator and reporter must be safe for
// concurrent use. The first failure stops runs that have not started yet.
func (e *Engine[G, F]) RunBatchParallel(ctx context.Context, generations, runs, workers int, factory PopulationFactory[G, F]) ([]*Individual[G, F], error) {
	if runs < 0 {
		return nil, fmt.Errorf("%w: %d runs", ErrInvalidConfiguration, runs)
	}

	bests := make([]*Individual[G, F], runs)
	summaries := make([]Summary, runs)

	g, gCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for r := 0; r < runs; r++ {
		r := r
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			best, summary, err := e.runOne(r, generations, factory)
			if err != nil {
				return err
			}
			bests[r] = best
			summaries[r] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.reporter.BatchFinished(summaries)
	return bests, nil
}

func (e *Engine[G, F]) runOne(r, generations int, factory PopulationFactory[G, F]) (*Individual[G, F], Summary, error) {
	rng := rand.New(rand.NewSource(e.seed + int64(r)))
	pop, err := factory(rng)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("run %d: initial population: %w", r, err)
	}
	return e.run(rng, r, pop, generations)
}

func (e *Engine[G, F]) objectiveOf(ind *Individual[G, F]) float64 {
	if e.objective != nil {
		return e.objective(ind)
	}
	return float64(ind.Fitness)
}

func (e *Engine[G, F]) renderOf(ind *Individual[G, F]) string {
	if e.render != nil {
		return e.render(ind)
	}
	return ""
}

func (e *Engine[G, F]) summarize(run, generations int, best *Individual[G, F], elapsed time.Duration) Summary {
	return Summary{
		Run:         run,
		Generations: generations,
		Objective:   e.objectiveOf(best),
		Fitness:     float64(best.Fitness),
		Individual:  e.renderOf(best),
		Elapsed:     elapsed,
	}
}

// Summarize describes an individual the way the engine reports it
func (e *Engine[G, F]) Summarize(run int, ind *Individual[G, F]) Summary {
	return e.summarize(run, 0, ind, 0)
}

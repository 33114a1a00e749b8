package ga

import "errors"

var (
	// ErrInvalidConfiguration is returned when an engine, operator or selector
	// is set up with out-of-range parameters. It is always raised at setup
	// time, never from Evolve.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInsufficientSelection is returned when a selector cannot produce the
	// number of individuals it was asked for.
	ErrInsufficientSelection = errors.New("insufficient selection")

	// ErrNegativeFitness is returned by fitness-proportional selectors when a
	// source individual has a negative fitness.
	ErrNegativeFitness = errors.New("negative fitness")

	// ErrEmptyPopulation is returned when a run is started without individuals.
	ErrEmptyPopulation = errors.New("empty population")
)

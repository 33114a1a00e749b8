package ga

import (
	"sort"
)

// Population is an ordered collection of individuals. Duplicates are normal:
// selectors append clones, so two entries may carry identical genomes but
// never share storage.
type Population[G any, F Numeric] []*Individual[G, F]

// Size returns the population size
func (p Population[G, F]) Size() int {
	return len(p)
}

// SortByFitness sorts individuals by fitness (descending). Equal fitness keeps
// the original order.
func (p Population[G, F]) SortByFitness() {
	sort.SliceStable(p, func(i, j int) bool {
		return p[i].Fitness > p[j].Fitness
	})
}

// Sorted returns a fitness-sorted copy of the population without touching p.
// Individuals are shared with p, not cloned.
func (p Population[G, F]) Sorted() Population[G, F] {
	sorted := make(Population[G, F], len(p))
	copy(sorted, p)
	sorted.SortByFitness()
	return sorted
}

// TopK returns clones of the k fittest individuals, best first
func (p Population[G, F]) TopK(k int) Population[G, F] {
	if k > len(p) {
		k = len(p)
	}
	if k <= 0 {
		return Population[G, F]{}
	}
	sorted := p.Sorted()
	top := make(Population[G, F], k)
	for i := 0; i < k; i++ {
		top[i] = sorted[i].Clone()
	}
	return top
}

// BestIndex returns the position of the fittest individual, or -1 when the
// population is empty. Ties go to the first occurrence.
func (p Population[G, F]) BestIndex() int {
	if len(p) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(p); i++ {
		if p[i].Fitness > p[best].Fitness {
			best = i
		}
	}
	return best
}

// Best returns the individual with highest fitness
func (p Population[G, F]) Best() *Individual[G, F] {
	idx := p.BestIndex()
	if idx < 0 {
		return nil
	}
	return p[idx]
}

// Clone creates a deep copy of the population
func (p Population[G, F]) Clone() Population[G, F] {
	out := make(Population[G, F], len(p))
	for i, ind := range p {
		out[i] = ind.Clone()
	}
	return out
}

// ResetFitness resets all individuals' fitness to the zero value
func (p Population[G, F]) ResetFitness() {
	var zero F
	for _, ind := range p {
		ind.Fitness = zero
	}
}

package ga

// Numeric constrains fitness values to ordered numeric types
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Individual is one candidate solution: a fixed-length genome plus fitness.
// Fitness holds the zero value until an evaluator has scored the genome.
type Individual[G any, F Numeric] struct {
	genome  []G
	Fitness F
}

// NewIndividual creates an individual that takes ownership of genome
func NewIndividual[G any, F Numeric](genome []G) *Individual[G, F] {
	return &Individual[G, F]{genome: genome}
}

// Len returns the genome length
func (i *Individual[G, F]) Len() int {
	return len(i.genome)
}

// Gene returns the gene at position idx
func (i *Individual[G, F]) Gene(idx int) G {
	return i.genome[idx]
}

// SetGene replaces the gene at position idx
func (i *Individual[G, F]) SetGene(idx int, v G) {
	i.genome[idx] = v
}

// Genome exposes the genes for in-place modification. The slice is capped at
// its length so appending to it never grows the individual.
func (i *Individual[G, F]) Genome() []G {
	return i.genome[:len(i.genome):len(i.genome)]
}

// Clone creates a deep copy of an individual
func (i *Individual[G, F]) Clone() *Individual[G, F] {
	genome := make([]G, len(i.genome))
	copy(genome, i.genome)
	return &Individual[G, F]{
		genome:  genome,
		Fitness: i.Fitness,
	}
}

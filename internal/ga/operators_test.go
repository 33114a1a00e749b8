package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bits(values ...bool) *Individual[bool, int] {
	return NewIndividual[bool, int](values)
}

func TestBitFlip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	always, err := NewBitFlip[int](1)
	require.NoError(t, err)
	p := Population[bool, int]{bits(true, false, true)}
	require.NoError(t, always.Apply(rng, p))
	assert.Equal(t, []bool{false, true, false}, p[0].Genome())

	never, err := NewBitFlip[int](0)
	require.NoError(t, err)
	require.NoError(t, never.Apply(rng, p))
	assert.Equal(t, []bool{false, true, false}, p[0].Genome())

	_, err = NewBitFlip[int](1.2)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestIntegerMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	m, err := NewIntegerMutation[int](3, 5, 1, 1)
	require.NoError(t, err)

	p := Population[int, int]{
		NewIndividual[int, int](make([]int, 50)),
		NewIndividual[int, int](make([]int, 50)),
	}
	require.NoError(t, m.Apply(rng, p))
	seen := map[int]bool{}
	for _, ind := range p {
		assert.Equal(t, 50, ind.Len())
		for _, g := range ind.Genome() {
			assert.GreaterOrEqual(t, g, 3)
			assert.LessOrEqual(t, g, 5)
			seen[g] = true
		}
	}
	assert.Len(t, seen, 3, "both bounds are inclusive")

	off, err := NewIntegerMutation[int](3, 5, 0, 1)
	require.NoError(t, err)
	untouched := Population[int, int]{NewIndividual[int, int]([]int{0, 0})}
	require.NoError(t, off.Apply(rng, untouched))
	assert.Equal(t, []int{0, 0}, untouched[0].Genome())

	_, err = NewIntegerMutation[int](5, 3, 0.5, 0.5)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewIntegerMutation[int](0, 3, -0.1, 0.5)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = NewIntegerMutation[int](0, 3, 0.5, 1.1)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestGaussianMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	still, err := NewGaussianMutation[float64](0, 1, 0)
	require.NoError(t, err)
	p := Population[float64, float64]{NewIndividual[float64, float64]([]float64{1, 2, 3})}
	require.NoError(t, still.Apply(rng, p))
	assert.Equal(t, []float64{1, 2, 3}, p[0].Genome())

	noisy, err := NewGaussianMutation[float64](1, 0.5, 0)
	require.NoError(t, err)
	require.NoError(t, noisy.Apply(rng, p))
	assert.NotEqual(t, []float64{1, 2, 3}, p[0].Genome())

	_, err = NewGaussianMutation[float64](0.5, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestOnePointCrossover_SwapsTails(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	x, err := NewOnePointCrossover[bool, int](1)
	require.NoError(t, err)

	const size = 8
	p := Population[bool, int]{
		bits(make([]bool, size)...),
		bits(true, true, true, true, true, true, true, true),
		bits(false, true),
	}
	require.NoError(t, x.Apply(rng, p))

	a, b := p[0].Genome(), p[1].Genome()
	cut := -1
	for i := 0; i < size; i++ {
		assert.NotEqual(t, a[i], b[i], "each position keeps one gene from each parent")
		if a[i] && cut < 0 {
			cut = i
		}
	}
	require.GreaterOrEqual(t, cut, 0, "the last position is always inside the swapped tail")
	for i := cut; i < size; i++ {
		assert.True(t, a[i], "tail from position %d belongs to the other parent", cut)
	}
	assert.Equal(t, []bool{false, true}, p[2].Genome(), "odd individual is untouched")
}

func TestOnePointCrossover_ZeroRate(t *testing.T) {
	x, err := NewOnePointCrossover[int, int](0)
	require.NoError(t, err)
	p := pop(1, 2, 3, 4)
	require.NoError(t, x.Apply(rand.New(rand.NewSource(5)), p))
	assert.Equal(t, []int{1, 2, 3, 4}, genes(p))

	_, err = NewOnePointCrossover[int, int](2)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestUniformCrossover_FullSwap(t *testing.T) {
	x, err := NewUniformCrossover[int, int](1, 1)
	require.NoError(t, err)
	p := Population[int, int]{
		NewIndividual[int, int]([]int{1, 1, 1}),
		NewIndividual[int, int]([]int{2, 2, 2}),
	}
	require.NoError(t, x.Apply(rand.New(rand.NewSource(6)), p))
	assert.Equal(t, []int{2, 2, 2}, p[0].Genome())
	assert.Equal(t, []int{1, 1, 1}, p[1].Genome())
}

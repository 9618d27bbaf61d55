package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamtour/builder"
)

// recorder collects emitted edges in order.
type recorder struct {
	edges [][2]int
}

func (r *recorder) AddEdge(v1, v2 int) error {
	r.edges = append(r.edges, [2]int{v1, v2})

	return nil
}

// failingAdder rejects every edge with a fixed error.
type failingAdder struct{ err error }

func (f failingAdder) AddEdge(int, int) error { return f.err }

func TestConstructors_Errors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
	}{
		{"CycleTooSmall", builder.Cycle(2)},
		{"CompleteTooSmall", builder.Complete(0)},
		{"GridZeroRows", builder.Grid(0, 3)},
		{"GridZeroCols", builder.Grid(3, 0)},
		{"KnightZeroRows", builder.Knight(0, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := builder.Build(&recorder{}, tc.con)
			assert.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}
}

func TestBuild_NilAdder(t *testing.T) {
	err := builder.Build(nil, builder.Cycle(3))
	assert.ErrorIs(t, err, builder.ErrNilAdder)
}

func TestBuild_NilConstructor(t *testing.T) {
	err := builder.Build(&recorder{}, builder.Cycle(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuild_PropagatesAdderError(t *testing.T) {
	sentinel := errors.New("full")
	err := builder.Build(failingAdder{err: sentinel}, builder.Cycle(3))
	assert.ErrorIs(t, err, sentinel)
}

// TestCycle_EmissionOrder pins the documented stable order i—(i+1)%n.
func TestCycle_EmissionOrder(t *testing.T) {
	r := &recorder{}
	require.NoError(t, builder.Build(r, builder.Cycle(4)))
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, r.edges)
}

// TestGrid_EmissionOrder pins the row-major right-then-down order.
func TestGrid_EmissionOrder(t *testing.T) {
	r := &recorder{}
	require.NoError(t, builder.Build(r, builder.Grid(2, 2)))
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, r.edges)
}

func TestEdgeCounts(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want int
	}{
		{"Cycle5", builder.Cycle(5), 5},
		{"Complete4", builder.Complete(4), 6},
		{"Complete1", builder.Complete(1), 0},
		{"Grid2x3", builder.Grid(2, 3), 7},
		{"Knight3x3", builder.Knight(3, 3), 8},
		{"Knight1x1", builder.Knight(1, 1), 0},
		{"Knight8x8", builder.Knight(8, 8), 168},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recorder{}
			require.NoError(t, builder.Build(r, tc.con))
			assert.Len(t, r.edges, tc.want)
		})
	}
}

// TestKnight3x3_Topology: on a 3×3 board the centre is unreachable and
// the remaining eight cells form a single 8-cycle.
func TestKnight3x3_Topology(t *testing.T) {
	r := &recorder{}
	require.NoError(t, builder.Build(r, builder.Knight(3, 3)))

	deg := make(map[int]int)
	for _, e := range r.edges {
		assert.NotEqual(t, 4, e[0], "centre cell must have no knight moves")
		assert.NotEqual(t, 4, e[1], "centre cell must have no knight moves")
		deg[e[0]]++
		deg[e[1]]++
	}
	require.Len(t, deg, 8)
	for v, d := range deg {
		assert.Equal(t, 2, d, "cell %d", v)
	}
}

// TestBuild_ComposesConstructors: constructors apply in order and their
// emissions concatenate.
func TestBuild_ComposesConstructors(t *testing.T) {
	r := &recorder{}
	require.NoError(t, builder.Build(r, builder.Cycle(3), builder.Complete(3)))
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 1}, {0, 2}, {1, 2}}, r.edges)
}

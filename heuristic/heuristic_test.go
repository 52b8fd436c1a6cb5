package heuristic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamnemecek/TuttePolynomial/heuristic"
	"github.com/adamnemecek/TuttePolynomial/mgraph"
)

func star() *mgraph.Multigraph {
	// vertex 0 is the hub, connected to 1,2,3; vertex 1 also carries a
	// double edge to 2, giving every heuristic something to disagree on.
	g := mgraph.NewMultigraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)
	return g
}

// TestSelect_VertexOrderPicksFirst checks VertexOrder returns the
// lexicographically first edge regardless of degree.
func TestSelect_VertexOrderPicksFirst(t *testing.T) {
	g := star()
	e, ok := heuristic.Select(g, heuristic.VertexOrder, nil)
	require.True(t, ok)
	assert.Equal(t, heuristic.Edge{U: 0, V: 1, Count: 1}, e)
}

// TestSelect_MaximiseDegreePicksHub checks that the hub's edge to
// vertex 1 (degrees 3 and 2, the highest sum available) wins under
// MaximiseDegree.
func TestSelect_MaximiseDegreePicksHub(t *testing.T) {
	g := star()
	e, ok := heuristic.Select(g, heuristic.MaximiseDegree, nil)
	require.True(t, ok)
	assert.Equal(t, 0, e.U)
	assert.Equal(t, 1, e.V)
}

// TestSelect_MinimiseDegreePicksLeaf checks that a leaf edge (hub to a
// degree-1 vertex) wins under MinimiseDegree.
func TestSelect_MinimiseDegreePicksLeaf(t *testing.T) {
	g := star()
	e, ok := heuristic.Select(g, heuristic.MinimiseDegree, nil)
	require.True(t, ok)
	assert.Equal(t, 3, e.V)
}

// TestSelect_RandomEdgeIsDeterministicUnderSeed checks that seeding the
// RNG makes RandomEdge reproducible across repeated calls.
func TestSelect_RandomEdgeIsDeterministicUnderSeed(t *testing.T) {
	g := star()
	e1, _ := heuristic.Select(g, heuristic.RandomEdge, rand.New(rand.NewSource(7)))
	e2, _ := heuristic.Select(g, heuristic.RandomEdge, rand.New(rand.NewSource(7)))
	assert.Equal(t, e1, e2)
}

// TestSelect_NoEdges reports false on an edgeless graph.
func TestSelect_NoEdges(t *testing.T) {
	g := mgraph.NewMultigraph(3)
	_, ok := heuristic.Select(g, heuristic.VertexOrder, nil)
	assert.False(t, ok)
}

// TestOrder_MinDegreeAscending checks the min-degree vertex ordering
// sorts the hub last.
func TestOrder_MinDegreeAscending(t *testing.T) {
	g := star()
	order := heuristic.Order(g, heuristic.VertexMinDegree, nil)
	assert.Equal(t, 0, order[len(order)-1])
}

// TestOrder_Identity returns vertices unchanged.
func TestOrder_Identity(t *testing.T) {
	g := star()
	order := heuristic.Order(g, heuristic.VertexIdentity, nil)
	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

// TestOrder_RandomIsAPermutation checks VertexRandom returns every
// vertex exactly once.
func TestOrder_RandomIsAPermutation(t *testing.T) {
	g := star()
	order := heuristic.Order(g, heuristic.VertexRandom, rand.New(rand.NewSource(3)))
	seen := make(map[int]bool)
	for _, v := range order {
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

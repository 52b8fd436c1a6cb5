package engine_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamnemecek/TuttePolynomial/engine"
	"github.com/adamnemecek/TuttePolynomial/mgraph"
	"github.com/adamnemecek/TuttePolynomial/poly"
)

func triangle() *mgraph.Multigraph {
	g := mgraph.NewMultigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)
	return g
}

// doubledTriangle repeats every triangle edge, giving a multicycle with no
// multiplicity-one edges anywhere — the case flow's zero guard lets through.
func doubledTriangle() *mgraph.Multigraph {
	g := mgraph.NewMultigraph(3)
	for i := 0; i < 2; i++ {
		g.AddEdge(0, 1)
		g.AddEdge(1, 2)
		g.AddEdge(0, 2)
	}
	return g
}

func bridgePath() *mgraph.Multigraph {
	g := mgraph.NewMultigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	return g
}

// k4 returns the complete graph on 4 vertices, 6 edges.
func k4() *mgraph.Multigraph {
	g := mgraph.NewMultigraph(4)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

// k4DoubledEdge is K4 with edge (0,1) doubled, 7 edges, the general
// biconnected branch's multiplicity-k>1 pivot case: neither a dipole
// (more than 2 vertices), nor a multicycle (K4 isn't one).
func k4DoubledEdge() *mgraph.Multigraph {
	g := k4()
	g.AddEdge(0, 1)
	return g
}

// TestTutte_Triangle checks the textbook T(K3;x,y) = x^2+x+y.
func TestTutte_Triangle(t *testing.T) {
	e := engine.New()
	got, err := e.Tutte(triangle())
	require.NoError(t, err)

	want := poly.X(2).Add(poly.X(1)).Add(poly.Y(1))
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

// TestTutte_BridgePath checks that two bridges in series multiply to x^2,
// falling out of recursing into each extracted bridge block's dipole case.
func TestTutte_BridgePath(t *testing.T) {
	e := engine.New()
	got, err := e.Tutte(bridgePath())
	require.NoError(t, err)

	want := poly.X(2)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

// TestTutte_K4 checks the textbook
// T(K4;x,y) = x^3+3x^2+2x+4xy+2y+3y^2+y^3, one of the required end-to-end
// scenarios: this graph is biconnected, has no multiplicity>1 bundle and
// is not a multicycle, so its top-level step takes the general
// delete/contract branch rather than one of the closed-form shortcuts.
func TestTutte_K4(t *testing.T) {
	e := engine.New()
	got, err := e.Tutte(k4())
	require.NoError(t, err)

	want := poly.X(3).
		Add(poly.X(2).Scale(big.NewInt(3))).
		Add(poly.X(1).Scale(big.NewInt(2))).
		Add(poly.X(1).MulPoly(poly.Y(1)).Scale(big.NewInt(4))).
		Add(poly.Y(1).Scale(big.NewInt(2))).
		Add(poly.Y(2).Scale(big.NewInt(3))).
		Add(poly.Y(3))
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

// TestTutte_K4DoubledEdgeSatisfiesEdgeCountInvariant exercises the general
// branch's multiplicity>1 pivot directly (K4 with edge (0,1) doubled is
// biconnected, not a dipole, not a multicycle), checking T(2,2) = 2^|E| —
// this is the invariant that would have caught a contracted pivot bundle
// retaining loops instead of being dropped outright.
func TestTutte_K4DoubledEdgeSatisfiesEdgeCountInvariant(t *testing.T) {
	g := k4DoubledEdge()
	e := engine.New()
	got, err := e.Tutte(g)
	require.NoError(t, err)

	want := new(big.Int).Lsh(big.NewInt(1), uint(g.NumEdges()))
	assert.Equal(t, 0, got.Substitute(big.NewInt(2), big.NewInt(2)).Cmp(want),
		"T(2,2) = %s, want 2^%d = %s", got.Substitute(big.NewInt(2), big.NewInt(2)), g.NumEdges(), want)
}

// TestChromatic_Triangle checks the textbook P(K3;k) = k^3-3k^2+2k.
func TestChromatic_Triangle(t *testing.T) {
	e := engine.New()
	got, err := e.Chromatic(triangle())
	require.NoError(t, err)

	want := poly.X(3).
		Add(poly.X(2).Scale(big.NewInt(-3))).
		Add(poly.X(1).Scale(big.NewInt(2)))
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

// TestChromatic_SelfLoopIsZero checks the global loop pre-check: a
// self-loop anywhere makes a graph uncolorable.
func TestChromatic_SelfLoopIsZero(t *testing.T) {
	g := mgraph.NewMultigraph(2)
	g.AddEdge(0, 1)
	g.AddEdge(0, 0)

	e := engine.New()
	got, err := e.Chromatic(g)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

// TestChromatic_MatchesTutteIdentity cross-checks the native chromatic
// recursion against the allowed substitution identity derived from an
// independently computed Tutte polynomial.
func TestChromatic_MatchesTutteIdentity(t *testing.T) {
	g := triangle()
	e := engine.New()

	native, err := e.Chromatic(g)
	require.NoError(t, err)

	t2, err := e.Tutte(triangle())
	require.NoError(t, err)
	derived := engine.ChromaticFromTutte(t2, g.NumVertices(), g.NumComponents())

	assert.True(t, native.Equal(derived), "native %s, derived %s", native, derived)
}

// TestFlow_TriangleIsZero checks the zero guard: a triangle's edges are
// all multiplicity one, so its single biconnected block contributes zero.
func TestFlow_TriangleIsZero(t *testing.T) {
	e := engine.New()
	got, err := e.FlowPoly(triangle())
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

// TestFlow_AllMultiMatchesTutte checks that when every edge has
// multiplicity >= 2, flow's zero guard never trips and its recursion
// reduces to exactly the same computation as Tutte's.
func TestFlow_AllMultiMatchesTutte(t *testing.T) {
	e := engine.New()

	tt, err := e.Tutte(doubledTriangle())
	require.NoError(t, err)

	ff, err := e.FlowPoly(doubledTriangle())
	require.NoError(t, err)

	assert.True(t, tt.Equal(ff), "tutte %s, flow %s", tt, ff)
}

// TestTutte_Deterministic checks repeated evaluation on fresh clones of
// the same graph agrees, exercising the cache's read path.
func TestTutte_Deterministic(t *testing.T) {
	e := engine.New()
	a, err := e.Tutte(triangle())
	require.NoError(t, err)
	b, err := e.Tutte(triangle())
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

// TestWithTimeout_RejectsNegativeDuration checks the option constructor's
// fail-fast validation.
func TestWithTimeout_RejectsNegativeDuration(t *testing.T) {
	assert.Panics(t, func() {
		engine.New(engine.WithTimeout(-1))
	})
}

// TestWithCache_RejectsNil checks the option constructor's fail-fast
// validation.
func TestWithCache_RejectsNil(t *testing.T) {
	assert.Panics(t, func() {
		engine.New(engine.WithCache(nil))
	})
}

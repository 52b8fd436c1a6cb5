package engine

import (
	"math/big"

	"github.com/adamnemecek/TuttePolynomial/mgraph"
	"github.com/adamnemecek/TuttePolynomial/poly"
)

// ChromaticFromTutte and FlowFromTutte implement spec.md's "allowed
// identities, not implementation mandates": deriving P(G;k) and F(G;k)
// from an already-computed Tutte polynomial by the substitutions
// P(G;k) = (-1)^(V-C)·k·T(G;1-k,0) and F(G;k) = (-1)^(E-V+C)·T(G;0,1-k).
// Chromatic computes P(G;k) by its own recursion, so ChromaticFromTutte is
// a cross-check; FlowFromTutte is the final step of Flow, applied to the
// FlowPoly recursion's result.

// ChromaticFromTutte derives P(G;k) from t = T(G;x,y), given g's vertex
// and component counts.
func ChromaticFromTutte(t *poly.Polynomial, numVertices, numComponents int) *poly.Polynomial {
	core := t.ProjectY0().ComposeX(oneMinusK()).MulMonomial(1, 0)
	return core.Scale(signPow(numVertices - numComponents))
}

// FlowFromTutte derives F(G;k) from t = T(G;x,y), given g's edge, vertex,
// and component counts.
func FlowFromTutte(t *poly.Polynomial, numEdges, numVertices, numComponents int) *poly.Polynomial {
	core := t.SwapXY().ProjectY0().ComposeX(oneMinusK())
	return core.Scale(signPow(numEdges - numVertices + numComponents))
}

// Flow computes F(G;k) end to end: the engine's own flow recursion
// followed by the substitution above, using g's own edge/vertex/component
// counts (taken before the vertex-ordering heuristic permutes it, since
// permutation preserves all three).
func (e *Engine) Flow(g *mgraph.Multigraph) (*poly.Polynomial, error) {
	t, err := e.FlowPoly(g)
	if err != nil {
		return nil, err
	}
	return FlowFromTutte(t, g.NumEdges(), g.NumVertices(), g.NumComponents()), nil
}

func oneMinusK() *poly.Polynomial {
	return poly.One().Add(poly.X(1).Scale(negOne))
}

func signPow(n int) *big.Int {
	if (n%2+2)%2 == 0 {
		return big.NewInt(1)
	}
	return big.NewInt(-1)
}

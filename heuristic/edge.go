package heuristic

import (
	"math/rand"

	"github.com/adamnemecek/TuttePolynomial/mgraph"
)

// EdgeHeuristic selects which underlying edge the evaluator branches on
// next during deletion-contraction.
type EdgeHeuristic int

const (
	// VertexOrder picks the first edge encountered in vertex-index order.
	VertexOrder EdgeHeuristic = iota
	// MinimiseDegree picks the edge minimizing the sum of its endpoints'
	// underlying degrees.
	MinimiseDegree
	// MaximiseDegree picks the edge maximizing that same sum.
	MaximiseDegree
	// MinimiseSDegree picks the edge minimizing the smaller of its two
	// endpoints' underlying degrees.
	MinimiseSDegree
	// MinimiseMDegree picks the edge minimizing the product of its
	// endpoints' underlying degrees.
	MinimiseMDegree
	// MaximiseMDegree picks the edge maximizing that same product.
	MaximiseMDegree
	// RandomEdge picks uniformly among edges, weighted by multiplicity,
	// using a single pre-sampled target index.
	RandomEdge
)

// Edge names one underlying edge and its full bundle multiplicity, the
// unit the Tutte/chromatic/flow recurrences branch on.
type Edge struct {
	U, V  int
	Count int
}

// Select returns the edge h chooses from g, and false if g has no edges
// at all. Ties are broken by first-encountered-in-vertex-index-order for
// every variant, including the MAXIMISE_* ones: best is only replaced on
// a strict improvement, so the earliest candidate with the winning score
// survives a tie.
func Select(g *mgraph.Multigraph, h EdgeHeuristic, rng *rand.Rand) (Edge, bool) {
	edges := enumerate(g)
	if len(edges) == 0 {
		return Edge{}, false
	}
	if h == VertexOrder {
		return edges[0], true
	}
	if h == RandomEdge {
		return selectRandom(edges, rng), true
	}

	deg := make(map[int]int, len(edges)*2)
	for _, v := range g.Vertices() {
		deg[v] = g.NumUnderlyingEdges(v)
	}

	best := edges[0]
	bestScore := score(h, deg, best)
	for _, e := range edges[1:] {
		s := score(h, deg, e)
		if better(h, s, bestScore) {
			best, bestScore = e, s
		}
	}
	return best, true
}

func score(h EdgeHeuristic, deg map[int]int, e Edge) int {
	du, dv := deg[e.U], deg[e.V]
	switch h {
	case MinimiseDegree, MaximiseDegree:
		return du + dv
	case MinimiseSDegree:
		if du < dv {
			return du
		}
		return dv
	case MinimiseMDegree, MaximiseMDegree:
		return du * dv
	default:
		return 0
	}
}

func better(h EdgeHeuristic, candidate, current int) bool {
	switch h {
	case MaximiseDegree, MaximiseMDegree:
		return candidate > current
	default: // MinimiseDegree, MinimiseSDegree, MinimiseMDegree
		return candidate < current
	}
}

func selectRandom(edges []Edge, rng *rand.Rand) Edge {
	total := 0
	for _, e := range edges {
		total += e.Count
	}
	target := rng.Intn(total)
	for _, e := range edges {
		if target < e.Count {
			return e
		}
		target -= e.Count
	}
	return edges[len(edges)-1]
}

// enumerate lists every underlying edge in ascending (u, then v) order.
func enumerate(g *mgraph.Multigraph) []Edge {
	var out []Edge
	for _, u := range g.Vertices() {
		for _, inc := range g.Neighbors(u) {
			if inc.To < u {
				continue
			}
			out = append(out, Edge{U: u, V: inc.To, Count: inc.Count})
		}
	}
	return out
}

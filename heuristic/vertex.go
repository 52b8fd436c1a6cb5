package heuristic

import (
	"math/rand"
	"sort"

	"github.com/adamnemecek/TuttePolynomial/mgraph"
)

// VertexHeuristic selects how the input graph's vertices are relabelled
// before evaluation begins. The resulting permutation changes cache hit
// rates only — the polynomial itself is a graph invariant, per spec.md
// §4.6.
type VertexHeuristic int

const (
	// VertexIdentity leaves the existing vertex order untouched.
	VertexIdentity VertexHeuristic = iota
	// VertexRandom produces a uniformly random permutation.
	VertexRandom
	// VertexMinDegree sorts ascending by underlying degree (multiplicity
	// ignored).
	VertexMinDegree
	// VertexMaxDegree sorts descending by underlying degree.
	VertexMaxDegree
	// VertexMinDegreeMult sorts ascending by degree counting
	// multiplicity.
	VertexMinDegreeMult
	// VertexMaxDegreeMult sorts descending by degree counting
	// multiplicity.
	VertexMaxDegreeMult
)

// Order returns the vertex permutation h selects for g, suitable as the
// order argument to (*mgraph.Multigraph).Permute. Ties break by
// ascending original vertex index, keeping the ordering deterministic
// for every variant but VertexRandom.
func Order(g *mgraph.Multigraph, h VertexHeuristic, rng *rand.Rand) []int {
	verts := g.Vertices()
	order := make([]int, len(verts))
	copy(order, verts)

	switch h {
	case VertexIdentity:
		return order
	case VertexRandom:
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		return order
	case VertexMinDegree, VertexMaxDegree:
		key := func(v int) int { return g.NumUnderlyingEdges(v) }
		sortByKey(order, key, h == VertexMaxDegree)
	case VertexMinDegreeMult, VertexMaxDegreeMult:
		key := func(v int) int { return g.NumEdgesAt(v) }
		sortByKey(order, key, h == VertexMaxDegreeMult)
	}
	return order
}

func sortByKey(order []int, key func(int) int, descending bool) {
	sort.SliceStable(order, func(i, j int) bool {
		ki, kj := key(order[i]), key(order[j])
		if ki == kj {
			return order[i] < order[j]
		}
		if descending {
			return ki > kj
		}
		return ki < kj
	})
}

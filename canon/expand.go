package canon

import "github.com/adamnemecek/TuttePolynomial/mgraph"

// expanded is a plain adjacency-list simple graph: parallel edges and
// self-loops have already been folded away by construction.
type expanded struct {
	nn  int
	adj [][]int
}

// buildExpanded compacts g (dropping dead vertices) and subdivides every
// multiplicity-k edge into one direct edge plus k-1 fresh degree-two
// vertices, so the resulting simple graph is a faithful encoding of g's
// full structure including edge multiplicity. g must already be
// loop-free; ReduceLoops always runs before a key is built, so self-loops
// are never present here.
func buildExpanded(g *mgraph.Multigraph) (*expanded, map[int]int) {
	compacted, mapping := g.Compact()
	n := compacted.NumVertices()

	e := &expanded{adj: make([][]int, n)}
	e.nn = n

	addEdge := func(u, v int) {
		e.adj[u] = append(e.adj[u], v)
		e.adj[v] = append(e.adj[v], u)
	}
	newVertex := func() int {
		id := len(e.adj)
		e.adj = append(e.adj, nil)
		e.nn++
		return id
	}

	for _, u := range compacted.Vertices() {
		for _, inc := range compacted.Neighbors(u) {
			if inc.To < u {
				continue // each unordered pair handled once, from its lower endpoint
			}
			addEdge(u, inc.To)
			for i := 1; i < inc.Count; i++ {
				w := newVertex()
				addEdge(u, w)
				addEdge(w, inc.To)
			}
		}
	}
	return e, mapping
}

func (e *expanded) matrix() [][]bool {
	m := make([][]bool, e.nn)
	for i := range m {
		m[i] = make([]bool, e.nn)
	}
	for u, nbrs := range e.adj {
		for _, w := range nbrs {
			m[u][w] = true
			m[w][u] = true
		}
	}
	return m
}

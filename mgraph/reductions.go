package mgraph

import "sort"

// ReduceLoops strips every self-loop from the graph in place and returns
// the total loop multiplicity removed (each loop copy contributes one to
// the count). Callers fold the result into a y^L factor before recursing
// further — by spec, no structural case below this needs to think about
// loops again.
func (g *Multigraph) ReduceLoops() int {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	total := 0
	for v, nbrs := range g.adj {
		if m, ok := nbrs[v]; ok {
			total += m
			delete(nbrs, v)
		}
	}
	return total
}

// blockToGraph builds a standalone Multigraph for one biconnected block:
// every vertex outside the block's vertex set is marked dead, and edges
// carry their real multiplicity from the source graph.
func (g *Multigraph) blockToGraph(edges []pair) *Multigraph {
	out := &Multigraph{
		alive: make([]bool, len(g.alive)),
		adj:   make([]map[int]int, len(g.adj)),
	}
	for v := range out.adj {
		out.adj[v] = make(map[int]int)
	}
	for _, e := range edges {
		out.alive[e.u] = true
		out.alive[e.v] = true
		m := g.adj[e.u][e.v]
		out.adj[e.u][e.v] = m
		out.adj[e.v][e.u] = m
	}
	return out
}

// ExtractBiconnectedComponents partitions the graph into its biconnected
// blocks, each returned as a standalone Multigraph sharing cut vertices
// (by original vertex index) with its neighbouring blocks. A lone bridge
// is returned as a two-vertex, one-edge block exactly like any other —
// the Tutte polynomial of the whole graph is the product of its blocks'
// polynomials evaluated independently, so bridges need no separate
// residual-tree bookkeeping; recursing into a bridge block hits the
// two-vertex dipole fast path directly.
//
// Ported from the cc_visit/cc_extract articulation-point walk in
// original_source/tuttex/main.cpp, adapted to operate on Multigraph's
// underlying simple-graph view and to hand back fully materialized
// sub-Multigraphs instead of index lists.
func (g *Multigraph) ExtractBiconnectedComponents() []*Multigraph {
	blocks, _ := g.tarjan()
	out := make([]*Multigraph, 0, len(blocks))
	for _, edges := range blocks {
		out = append(out, g.blockToGraph(edges))
	}
	return out
}

// Compact renumbers the live vertices contiguously starting at 0,
// preserving relative order, and returns the new graph along with the
// old-id -> new-id map. Dead vertices vanish entirely. Ported from
// compact_graph in original_source/tutte/tutte.cpp.
func (g *Multigraph) Compact() (*Multigraph, map[int]int) {
	g.muVert.RLock()
	g.muEdge.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdge.RUnlock()

	oldIDs := make([]int, 0, len(g.alive))
	for v, a := range g.alive {
		if a {
			oldIDs = append(oldIDs, v)
		}
	}
	sort.Ints(oldIDs)

	mapping := make(map[int]int, len(oldIDs))
	for newID, oldID := range oldIDs {
		mapping[oldID] = newID
	}

	out := NewMultigraph(len(oldIDs))
	for _, oldID := range oldIDs {
		newU := mapping[oldID]
		for w, m := range g.adj[oldID] {
			newV := mapping[w]
			if newV >= newU {
				out.adj[newU][newV] = m
				out.adj[newV][newU] = m
			}
		}
	}
	return out, mapping
}

// Permute returns a graph isomorphic to the receiver under the given
// vertex relabelling: order[i] names the old vertex id that should occupy
// new position i. order must list exactly the live vertices, each once.
// Ported from permute_graph in original_source/tutte/tutte.cpp; used by
// the vertex pre-ordering heuristics before evaluation begins.
func (g *Multigraph) Permute(order []int) *Multigraph {
	g.muVert.RLock()
	g.muEdge.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdge.RUnlock()

	mapping := make(map[int]int, len(order))
	for newID, oldID := range order {
		mapping[oldID] = newID
	}

	out := NewMultigraph(len(order))
	for _, oldID := range order {
		newU := mapping[oldID]
		for w, m := range g.adj[oldID] {
			newV, ok := mapping[w]
			if !ok || newV < newU {
				continue
			}
			out.adj[newU][newV] = m
			out.adj[newV][newU] = m
		}
	}
	return out
}

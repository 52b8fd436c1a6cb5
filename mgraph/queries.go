package mgraph

import "sort"

// NumVertices returns the number of live vertices. Vertices absorbed by a
// prior ContractEdge/SimpleContractEdge no longer count, even though the
// underlying index range they once occupied is never reused.
func (g *Multigraph) NumVertices() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	n := 0
	for _, a := range g.alive {
		if a {
			n++
		}
	}
	return n
}

// Vertices returns the live vertex indices in ascending order.
func (g *Multigraph) Vertices() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int, 0, len(g.alive))
	for v, a := range g.alive {
		if a {
			out = append(out, v)
		}
	}
	return out
}

// IsAlive reports whether v is still part of the graph.
func (g *Multigraph) IsAlive(v int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.inRange(v) && g.alive[v]
}

// NumEdges returns the total edge count with multiplicity: every parallel
// copy and every self-loop copy counts once.
func (g *Multigraph) NumEdges() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	total := 0
	for u, nbrs := range g.adj {
		for w, m := range nbrs {
			if w >= u {
				total += m
			}
		}
	}
	return total
}

// NumUnderlyingEdges returns the number of distinct neighbours of v,
// ignoring multiplicity; a self-loop counts as one regardless of how many
// parallel loop copies v carries.
func (g *Multigraph) NumUnderlyingEdges(v int) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	if !g.inRange(v) {
		return 0
	}
	return len(g.adj[v])
}

// NumEdgesAt returns the degree of v counting multiplicity: the sum of
// μ({v,w}) over every neighbour w, including v's own self-loops.
func (g *Multigraph) NumEdgesAt(v int) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	if !g.inRange(v) {
		return 0
	}
	total := 0
	for _, m := range g.adj[v] {
		total += m
	}
	return total
}

// Neighbors returns v's incidences in ascending neighbour order.
func (g *Multigraph) Neighbors(v int) []Incidence {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	if !g.inRange(v) {
		return nil
	}
	out := make([]Incidence, 0, len(g.adj[v]))
	for w, m := range g.adj[v] {
		out = append(out, Incidence{To: w, Count: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })
	return out
}

// numUnderlyingEdgesTotal counts distinct (unordered) neighbour pairs over
// the whole graph, i.e. the edge count of the underlying simple graph.
func (g *Multigraph) numUnderlyingEdgesTotal() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	total := 0
	for u, nbrs := range g.adj {
		for w := range nbrs {
			if w >= u {
				total++
			}
		}
	}
	return total
}

// connectedComponents groups live vertices into connected components of
// the underlying simple graph, ignoring multiplicity.
func (g *Multigraph) connectedComponents() [][]int {
	g.muVert.RLock()
	g.muEdge.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdge.RUnlock()

	seen := make([]bool, len(g.alive))
	var comps [][]int
	for start, a := range g.alive {
		if !a || seen[start] {
			continue
		}
		stack := []int{start}
		seen[start] = true
		var comp []int
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, cur)
			for w := range g.adj[cur] {
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// NumComponents returns the number of connected components of the
// underlying simple graph, ignoring multiplicity.
func (g *Multigraph) NumComponents() int {
	return len(g.connectedComponents())
}

// IsConnected reports whether the underlying simple graph has at most one
// connected component (an edgeless graph of any size counts as
// disconnected once it has more than one vertex, matching the usual graph
// theory convention).
func (g *Multigraph) IsConnected() bool {
	return len(g.connectedComponents()) <= 1
}

// IsLoop reports whether the graph has collapsed to a single live vertex —
// the terminal case left once ReduceLoops has stripped every self-loop.
func (g *Multigraph) IsLoop() bool {
	return g.NumVertices() == 1
}

// IsMultitree reports whether the underlying simple graph (multiplicities
// ignored) is a tree: connected with exactly n-1 edges. Parallel edges and
// self-loops on its vertices are permitted.
func (g *Multigraph) IsMultitree() bool {
	n := g.NumVertices()
	if n == 0 {
		return false
	}
	if n == 1 {
		return true
	}
	return g.IsConnected() && g.numUnderlyingEdgesTotal() == n-1
}

// IsTree reports whether the graph is a strictly simple tree: IsMultitree
// holds and no pair of vertices carries more than one parallel edge.
func (g *Multigraph) IsTree() bool {
	if !g.IsMultitree() {
		return false
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	for _, nbrs := range g.adj {
		for _, m := range nbrs {
			if m > 1 {
				return false
			}
		}
	}
	return true
}

// IsMulticycle reports whether the underlying simple graph is a single
// cycle: connected, every live vertex has underlying degree exactly two.
// Multiplicities on each cycle edge are unconstrained.
func (g *Multigraph) IsMulticycle() bool {
	n := g.NumVertices()
	if n < 3 {
		return false
	}
	if !g.IsConnected() {
		return false
	}
	for _, v := range g.Vertices() {
		if g.NumUnderlyingEdges(v) != 2 {
			return false
		}
	}
	return true
}

// IsBiconnected reports whether the graph has no articulation point: for
// two or fewer live vertices it is biconnected whenever it is connected
// (there is no third vertex whose removal could matter); otherwise it
// delegates to Tarjan's articulation-point search.
func (g *Multigraph) IsBiconnected() bool {
	n := g.NumVertices()
	if n == 0 {
		return false
	}
	if !g.IsConnected() {
		return false
	}
	if n <= 2 {
		return true
	}
	_, articulation := g.tarjan()
	return len(articulation) == 0
}

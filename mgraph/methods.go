package mgraph

// AddEdge adds one edge between u and v, incrementing μ({u,v}) by one. u
// may equal v, adding a self-loop.
func (g *Multigraph) AddEdge(u, v int) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexOutOfRange
	}
	g.adj[u][v]++
	if u != v {
		g.adj[v][u]++
	}
	return nil
}

// RemoveEdge decrements μ({u,v}) by one. It returns ErrNoSuchEdge if the
// pair currently has zero multiplicity.
func (g *Multigraph) RemoveEdge(u, v int) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexOutOfRange
	}
	if g.adj[u][v] <= 0 {
		return ErrNoSuchEdge
	}
	g.adj[u][v]--
	if g.adj[u][v] == 0 {
		delete(g.adj[u], v)
	}
	if u != v {
		g.adj[v][u]--
		if g.adj[v][u] == 0 {
			delete(g.adj[v], u)
		}
	}
	return nil
}

// RemoveAllEdges zeroes μ({u,v}), removing every parallel copy at once. It
// is a no-op, not an error, when the pair already has zero multiplicity.
func (g *Multigraph) RemoveAllEdges(u, v int) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexOutOfRange
	}
	delete(g.adj[u], v)
	if u != v {
		delete(g.adj[v], u)
	}
	return nil
}

// Multiplicity returns μ({u,v}), zero if there is no such edge.
func (g *Multigraph) Multiplicity(u, v int) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	if !g.inRange(u) || !g.inRange(v) {
		return 0
	}
	return g.adj[u][v]
}

// ContractEdge merges v into u using Tutte/Flow semantics: every edge from
// v to a vertex w other than u is re-homed onto u (multiplicities sum with
// any edge u already had to w); v's own self-loops move onto u unchanged;
// and the u–v edges themselves, minus one, become self-loops on u (the one
// contracted copy simply disappears, the rest can no longer avoid
// coinciding since u and v are now the same vertex). v is marked dead.
func (g *Multigraph) ContractEdge(u, v int) error {
	return g.contract(u, v, true)
}

// SimpleContractEdge merges v into u using chromatic semantics: the u–v
// edges are discarded entirely (no self-loops are created from them) while
// every other edge incident to v is re-homed onto u exactly as
// ContractEdge does. v is marked dead.
func (g *Multigraph) SimpleContractEdge(u, v int) error {
	return g.contract(u, v, false)
}

func (g *Multigraph) contract(u, v int, retainLoop bool) error {
	g.muVert.Lock()
	g.muEdge.Lock()
	defer g.muVert.Unlock()
	defer g.muEdge.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexOutOfRange
	}
	if u == v {
		return ErrSelfContract
	}
	if !g.alive[u] || !g.alive[v] {
		return ErrDeadVertex
	}

	if k := g.adj[u][v]; k > 0 {
		delete(g.adj[u], v)
		delete(g.adj[v], u)
		if retainLoop && k > 1 {
			g.adj[u][u] += k - 1
		}
	}

	if loops := g.adj[v][v]; loops > 0 {
		g.adj[u][u] += loops
	}

	for w, m := range g.adj[v] {
		if w == u || w == v {
			continue
		}
		g.adj[u][w] += m
		g.adj[w][u] += m
		delete(g.adj[w], v)
	}

	g.adj[v] = make(map[int]int)
	g.alive[v] = false
	return nil
}

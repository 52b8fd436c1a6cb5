package engine

import (
	"github.com/adamnemecek/TuttePolynomial/canon"
	"github.com/adamnemecek/TuttePolynomial/heuristic"
	"github.com/adamnemecek/TuttePolynomial/mgraph"
	"github.com/adamnemecek/TuttePolynomial/poly"
)

// Tutte computes T(G;x,y) for g, applying the configured vertex-ordering
// heuristic first. g itself is never mutated.
func (e *Engine) Tutte(g *mgraph.Multigraph) (*poly.Polynomial, error) {
	return e.runTutteLike(g, Tutte)
}

// FlowPoly computes the flow recurrence's result for g: zero if any
// biconnected block contains a non-multi (multiplicity-one) edge,
// otherwise a Tutte-shaped polynomial a caller can substitute into
// F(G;k) = (-1)^(E-V+C) · result(0, 1-k) — see identity.go.
func (e *Engine) FlowPoly(g *mgraph.Multigraph) (*poly.Polynomial, error) {
	return e.runTutteLike(g, Flow)
}

func (e *Engine) runTutteLike(g *mgraph.Multigraph, mode Mode) (*poly.Polynomial, error) {
	disarm := e.armTimeout()
	defer disarm()

	gg := e.prepare(g)
	e.treeID++
	result := e.eval(gg, mode, e.treeID)
	if e.cancelled.Load() {
		return nil, e.cancelReason()
	}
	return result, nil
}

// eval is the shared Tutte/Flow skeleton: timeout check, step counter,
// loop reduction folded into a y^L factor, cache lookup/store keyed by
// canonical form, and structural-case dispatch. id is this call's
// recursion-tree id, preallocated by the caller (the root call allocates
// its own; every other call receives an id its parent reserved before
// recursing) so a trace writer can report parent/child links without a
// second pass.
func (e *Engine) eval(g *mgraph.Multigraph, mode Mode, id uint64) *poly.Polynomial {
	if e.cancelled.Load() {
		return poly.Zero()
	}
	e.steps++

	rf := poly.One()
	if loops := g.ReduceLoops(); loops > 0 {
		rf = poly.Y(loops)
	}

	if g.NumVertices() <= 1 {
		e.emitLeaf(id, g)
		return rf
	}

	c := e.cacheFor(mode)
	if c != nil && !e.cacheable(g) {
		c = nil
	}
	var key *canon.Key
	if c != nil {
		key = canon.Build(g)
		if cached, producer, ok := c.LookupWithProducer(key); ok {
			e.emitMatch(id, uint64(producer))
			return rf.MulPoly(cached)
		}
	}

	body := e.tutteLikeStructuralCase(g, mode, id)

	if c != nil {
		if err := c.Store(key, uint32(id), body); err != nil {
			e.storeErr = err
			e.cancelled.Store(true)
			return poly.Zero()
		}
	}
	return rf.MulPoly(body)
}

func (e *Engine) tutteLikeStructuralCase(g *mgraph.Multigraph, mode Mode, id uint64) *poly.Polynomial {
	if !g.IsConnected() || !g.IsBiconnected() {
		blocks := g.ExtractBiconnectedComponents()
		e.bicomps += uint64(len(blocks))
		if len(blocks) == 0 {
			e.emitLeaf(id, g)
			return poly.One()
		}
		childStart := e.treeID + 1
		e.treeID += uint64(len(blocks))
		e.emitNonLeaf(id, childStart, len(blocks), g)
		product := poly.One()
		for i, b := range blocks {
			product = product.MulPoly(e.eval(b, mode, childStart+uint64(i)))
			if product.IsZero() {
				return poly.Zero()
			}
		}
		return product
	}

	if mode == Flow && hasNonMultiEdge(g) {
		e.emitLeaf(id, g)
		return poly.Zero()
	}

	if g.NumVertices() == 2 {
		verts := g.Vertices()
		e.emitLeaf(id, g)
		return dipoleTutte(g.Multiplicity(verts[0], verts[1]))
	}

	if g.IsMulticycle() {
		e.emitLeaf(id, g)
		return reduceCycle(cycleBundle(g))
	}

	edge, ok := heuristic.Select(g, e.edgeHeuristic, e.rng)
	if !ok {
		e.emitLeaf(id, g)
		return poly.One()
	}

	deleteG := g.Clone()
	deleteG.RemoveAllEdges(edge.U, edge.V)

	contractG := g.Clone()
	contractG.SimpleContractEdge(edge.U, edge.V)

	lid, rid := e.treeID+1, e.treeID+2
	e.treeID += 2
	e.emitNonLeaf(id, lid, 2, g)

	return e.eval(deleteG, mode, lid).Add(yshift(edge.Count).MulPoly(e.eval(contractG, mode, rid)))
}

// yshift collapses k parallel copies of an edge into the combination
// factor 1+y+...+y^(k-1) the delete/contract recurrence multiplies the
// contracted branch by.
func yshift(k int) *poly.Polynomial {
	return poly.YShift(0, k-1)
}

// dipoleTutte is the Tutte polynomial of two vertices joined by k
// parallel edges, derived from the known cycle-polynomial closed form
// T(cycle_n;x,y) = x^(n-1)+...+x+y via the dipole/cycle duality
// T(dipole_k;x,y) = T(cycle_k;y,x): k=1 is a single edge (x); k>=2 is
// x+y+y^2+...+y^(k-1).
func dipoleTutte(k int) *poly.Polynomial {
	if k <= 1 {
		return poly.X(1)
	}
	return poly.X(1).Add(poly.YShift(1, k-2))
}

// reduceCycle closes the Tutte polynomial of a cycle of n multiplicity
// bundles m[0..n-1] without recursing through each copy individually.
// Peeling the last bundle and telescoping the delete/contract recurrence
// gives T(C_n) = P_n + yshift(m[n-1])·T(C_{n-1}), where P_n is the
// product of DipoleTutte over the remaining n-1 bundles (deleting the
// last bundle leaves a path of bundles, whose Tutte polynomial is that
// product by the block-decomposition theorem applied to a tree of
// bundles); the base case T(C_2) is a single dipole of the two bundles'
// combined multiplicity, since contracting down to two vertices leaves
// both remaining bundles in parallel between the same pair.
func reduceCycle(mults []int) *poly.Polynomial {
	n := len(mults)
	if n == 2 {
		return dipoleTutte(mults[0] + mults[1])
	}
	last := mults[n-1]
	rest := mults[:n-1]

	p := poly.One()
	for _, m := range rest {
		p = p.MulPoly(dipoleTutte(m))
	}
	return p.Add(yshift(last).MulPoly(reduceCycle(rest)))
}

// cycleBundle walks a graph known to satisfy IsMulticycle and returns its
// bundle multiplicities in cyclic order, starting arbitrarily: reduceCycle
// is a symmetric function of its input (products and sums commute), so
// neither the starting vertex nor the traversal direction matters.
func cycleBundle(g *mgraph.Multigraph) []int {
	verts := g.Vertices()
	start := verts[0]
	prev, cur := -1, start
	var mults []int
	for {
		next := -1
		for _, inc := range g.Neighbors(cur) {
			if inc.To != prev {
				next = inc.To
				break
			}
		}
		if next == -1 {
			next = g.Neighbors(cur)[0].To
		}
		mults = append(mults, g.Multiplicity(cur, next))
		if next == start {
			return mults
		}
		prev, cur = cur, next
	}
}

// hasNonMultiEdge reports whether any underlying edge of g carries
// multiplicity exactly one — the flow recurrence's zero guard.
func hasNonMultiEdge(g *mgraph.Multigraph) bool {
	for _, u := range g.Vertices() {
		for _, inc := range g.Neighbors(u) {
			if inc.To < u {
				continue
			}
			if inc.Count == 1 {
				return true
			}
		}
	}
	return false
}

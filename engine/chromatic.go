package engine

import (
	"math/big"

	"github.com/adamnemecek/TuttePolynomial/canon"
	"github.com/adamnemecek/TuttePolynomial/heuristic"
	"github.com/adamnemecek/TuttePolynomial/mgraph"
	"github.com/adamnemecek/TuttePolynomial/poly"
)

var negOne = big.NewInt(-1)

// Chromatic computes the chromatic polynomial P(G;k) as a univariate
// polynomial in k, represented with poly's x-slot standing for k (y stays
// at zero throughout — chromatic has no second variable). Any self-loop
// anywhere makes a graph uncolorable, so that check runs once here rather
// than at every recursive step: neither RemoveAllEdges nor
// SimpleContractEdge can introduce a *new* loop during the recursion
// below, so one check at the top suffices.
func (e *Engine) Chromatic(g *mgraph.Multigraph) (*poly.Polynomial, error) {
	disarm := e.armTimeout()
	defer disarm()

	gg := e.prepare(g)
	if hasAnyLoop(gg) {
		return poly.Zero(), nil
	}
	e.treeID++
	result := e.evalChromatic(gg, e.treeID)
	if e.cancelled.Load() {
		return nil, e.cancelReason()
	}
	return result, nil
}

// evalChromatic mirrors eval's skeleton (timeout check, step counter,
// cache lookup/store by canonical key) but with chromatic's own
// structural cases: no loop term, the loop-coalescing SimpleContractEdge,
// and delete-minus-contract instead of a y-shifted sum. id is this call's
// preallocated recursion-tree id; see eval's doc comment for why.
func (e *Engine) evalChromatic(g *mgraph.Multigraph, id uint64) *poly.Polynomial {
	if e.cancelled.Load() {
		return poly.Zero()
	}
	e.steps++

	if g.NumEdges() == 0 {
		// k^n: every vertex colors independently once no edge constrains it.
		e.emitLeaf(id, g)
		return poly.X(g.NumVertices())
	}

	c := e.cacheChrom
	if c != nil && !e.cacheable(g) {
		c = nil
	}
	var key *canon.Key
	if c != nil {
		key = canon.Build(g)
		if cached, producer, ok := c.LookupWithProducer(key); ok {
			e.emitMatch(id, uint64(producer))
			return cached
		}
	}

	body := e.chromaticStructuralCase(g, id)

	if c != nil {
		if err := c.Store(key, uint32(id), body); err != nil {
			e.storeErr = err
			e.cancelled.Store(true)
			return poly.Zero()
		}
	}
	return body
}

// chromaticStructuralCase picks one edge bundle and recurses on the whole
// delete/contract pair. Unlike Tutte, chromatic deliberately skips
// biconnected-block decomposition: T's block-product theorem is exact,
// but P's analogous decomposition needs a k^(blocks-1) correction per
// connected component to avoid re-counting each shared cut vertex's color
// choice once per incident block — direct recursion avoids that
// bookkeeping entirely and is no less correct, only potentially deeper.
func (e *Engine) chromaticStructuralCase(g *mgraph.Multigraph, id uint64) *poly.Polynomial {
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

	return e.evalChromatic(deleteG, lid).Add(e.evalChromatic(contractG, rid).Scale(negOne))
}

// hasAnyLoop reports whether any vertex of g carries a self-loop.
func hasAnyLoop(g *mgraph.Multigraph) bool {
	for _, v := range g.Vertices() {
		if g.Multiplicity(v, v) > 0 {
			return true
		}
	}
	return false
}

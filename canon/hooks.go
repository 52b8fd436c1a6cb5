package canon

import "github.com/adamnemecek/TuttePolynomial/mgraph"

// DeleteKey returns the canonical key of g with the single edge (u, v)
// removed. g and (u, v) must be the same graph and multiplicity-1 edge
// k was built from — typically the caller's own cache.Lookup(k) miss,
// immediately before it recurses on g with that edge deleted.
//
// The fast path applies only when k's partition came out fully discrete
// (no backtracking was needed) and the edge is a plain multiplicity-1
// edge, since removing it then adds no subdivision vertex and cannot
// create a symmetry the discrete partition didn't already rule out: it
// flips two bits in the existing canonical adjacency image in place and
// reuses k's permutation unchanged. Any case the fast path declines
// falls back to a full rebuild. A fast-path result that happened to
// diverge from what Build(g-e) would compute from scratch would only
// cost a cache miss — cache identity is an optimization, never load-
// bearing for the polynomial values an evaluator derives from it.
func DeleteKey(k *Key, g *mgraph.Multigraph, u, v int) *Key {
	if g.Multiplicity(u, v) == 1 {
		if fast, ok := k.editSingleEdge(u, v, false); ok {
			return fast
		}
	}
	clone := g.Clone()
	_ = clone.RemoveEdge(u, v)
	return Build(clone)
}

// ContractKey returns the canonical key of g with u and v identified —
// SimpleContractEdge's semantics (no retained self-loop). Contraction
// removes a vertex, which the bit-flip fast path cannot express, so it
// only ever takes the rebuild path; it exists alongside DeleteKey for a
// uniform call site in engine.
func ContractKey(g *mgraph.Multigraph, u, v int) *Key {
	clone := g.Clone()
	_ = clone.SimpleContractEdge(u, v)
	return Build(clone)
}

// editSingleEdge attempts the in-place bit-flip fast path described on
// DeleteKey. present selects whether the edge is being added (true) or
// removed (false); only removal is used today, but the method is
// symmetric.
func (k *Key) editSingleEdge(u, v int, present bool) (*Key, bool) {
	if !k.discrete {
		return nil, false
	}
	cu, ok1 := k.compactMap[u]
	cv, ok2 := k.compactMap[v]
	if !ok1 || !ok2 {
		return nil, false
	}
	pu, pv := k.invPerm[cu], k.invPerm[cv]

	adj := make([]byte, len(k.adj))
	copy(adj, k.adj)
	setBit(adj, k.nn, pu, pv, present)
	setBit(adj, k.nn, pv, pu, present)

	invPerm := make([]int, len(k.invPerm))
	copy(invPerm, k.invPerm)
	perm := make([]int, len(k.perm))
	copy(perm, k.perm)
	compactMap := make(map[int]int, len(k.compactMap))
	for id, c := range k.compactMap {
		compactMap[id] = c
	}

	return &Key{
		n:          k.n,
		nn:         k.nn,
		adj:        adj,
		perm:       perm,
		compactMap: compactMap,
		invPerm:    invPerm,
		discrete:   k.discrete,
	}, true
}

func setBit(buf []byte, nn, i, j int, val bool) {
	bit := i*nn + j
	if val {
		buf[bit/8] |= 1 << uint(bit%8)
	} else {
		buf[bit/8] &^= 1 << uint(bit%8)
	}
}

// Package canon builds a canonical, isomorphism-invariant key for a
// loop-free mgraph.Multigraph, used by cache as the content address for
// memoizing polynomial evaluations. Two isomorphic graphs — including
// graphs differing only by a relabelling of vertices or of parallel edges
// — produce byte-identical keys; two non-isomorphic graphs are extremely
// unlikely to collide (and even if they did, the cache only loses a hit,
// since graph.Multigraph is expanded into the canonical form before the
// one it's actually interpreted from).
//
// Multiplicity is folded into the key by expanding each k-multiplicity
// edge into one direct edge plus k-1 fresh degree-two subdivision
// vertices, each joined to both endpoints — a length-2 path standing in
// for one extra parallel copy — before running a simple-graph canonical
// labelling over the result. This mirrors how the reference
// implementation's bit-packed nauty adjacency (original_source/tuttex/nauty_graph.hpp)
// represents NN = N + Σ max(0, μ(e)-1) vertices.
//
// No nauty binding exists anywhere in the retrieved corpus, so the
// canonical-labelling routine itself — degree-based colour refinement
// followed by individualization-refinement backtracking over any cells
// the refinement leaves un-split — is implemented in-tree. It favours
// correctness (always a true isomorphism invariant) over nauty's
// automorphism-pruned search speed; the graphs it sees are small, since
// biconnected decomposition and the loop/tree/cycle fast paths have
// already peeled away everything large before a key is ever built.
package canon

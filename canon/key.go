package canon

import (
	"hash/fnv"

	"github.com/adamnemecek/TuttePolynomial/mgraph"
)

// Key is the canonical, content-addressed identity of a loop-free
// Multigraph: byte-identical for any two isomorphic graphs (including
// isomorphisms that only permute parallel-edge multiplicity), and used
// directly as the cache's lookup key.
type Key struct {
	n    int // live vertex count in the original (un-expanded) graph
	nn   int // expanded simple-graph vertex count
	adj  []byte
	perm []int // canonical position -> expanded-graph vertex id

	// compactMap and discrete exist only to support DeleteKey's fast
	// path; Equal and Hash never look at them.
	compactMap map[int]int // g's vertex id -> compacted id used to build this key
	invPerm    []int       // expanded-graph vertex id -> canonical position
	discrete   bool        // true if colour refinement alone separated every vertex
}

// Build computes the canonical key of g. g must be loop-free; callers
// always run ReduceLoops before reaching a cache lookup, per
// SPEC_FULL.md's evaluation order, so Build does not re-check for loops.
func Build(g *mgraph.Multigraph) *Key {
	e, mapping := buildExpanded(g)
	m := e.matrix()
	perm, bytes, discrete := canonicalLabel(m)

	invPerm := make([]int, e.nn)
	for pos, id := range perm {
		invPerm[id] = pos
	}

	return &Key{
		n:          g.NumVertices(),
		nn:         e.nn,
		adj:        bytes,
		perm:       perm,
		compactMap: mapping,
		invPerm:    invPerm,
		discrete:   discrete,
	}
}

// Equal reports whether two keys describe isomorphic graphs. Comparing
// only n, nn and the packed adjacency bytes is deliberate: perm is the
// witness permutation, not part of the identity, and two isomorphic
// graphs always canonicalize to the same adjacency bytes regardless of
// which permutation happened to realize it.
func (k *Key) Equal(other *Key) bool {
	if k.n != other.n || k.nn != other.nn || len(k.adj) != len(other.adj) {
		return false
	}
	for i := range k.adj {
		if k.adj[i] != other.adj[i] {
			return false
		}
	}
	return true
}

// Hash returns a 64-bit FNV-1a digest over the key's identity bytes, for
// use as a cache bucket index. Collisions are resolved by Equal, not by
// assuming the hash is injective.
func (k *Key) Hash() uint64 {
	h := fnv.New64a()
	h.Write(k.Bytes())
	return h.Sum64()
}

// Bytes returns the canonical byte encoding used both for hashing and for
// the cache's in-arena node payload: a small header (n, nn) followed by
// the packed adjacency.
func (k *Key) Bytes() []byte {
	out := make([]byte, 0, 8+len(k.adj))
	out = appendUint32(out, uint32(k.n))
	out = appendUint32(out, uint32(k.nn))
	out = append(out, k.adj...)
	return out
}

func appendUint32(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

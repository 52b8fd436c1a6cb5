// Package cache is a content-addressed memoization table keyed by
// canon.Key, mapping a canonicalized graph to its already-computed
// polynomial. It exists because deletion-contraction revisits the same
// graph, up to isomorphism, many times over the course of one evaluation
// — memoizing collapses that blowup from exponential to merely large.
//
// Storage is a single contiguous byte arena rather than a Go map of
// pointers: nodes link to their bucket neighbours by arena offset, not by
// pointer, and a bump allocator hands out new node space linearly. This
// mirrors the reference implementation's hand-rolled arena allocator
// (spec.md §3/§4.4) rather than leaning on the garbage collector, so that
// eviction and compaction have an explicit, inspectable memory layout:
// Lookup/Store are the hot path, eviction/Compact/Rebucket/Resize are the
// maintenance operations a long-running batch invokes as the arena fills.
package cache

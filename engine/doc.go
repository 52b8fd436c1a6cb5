// Package engine drives deletion-contraction evaluation of the Tutte,
// chromatic, and flow polynomials of a multigraph.
//
// All mutable state a single-threaded evaluator would otherwise keep as
// package-level globals — the memoization cache(s), step/tree-id counters,
// the edge/vertex heuristic choice, the RNG, and the cancellation flag —
// lives on an explicit Engine value instead, constructed once via New and
// reused across a batch of graphs, mirroring builder/options.go's
// functional-options construction.
//
// Tutte and Flow share one recursive core: Flow's polynomial is, per
// graph, either zero (any biconnected block contains a non-multi edge) or
// identical in shape to Tutte's, so the two are computed by the same
// eval, distinguished only by an extra guard Flow checks before every
// biconnected case. Chromatic's recursion lives apart: it has no loop
// term, uses the loop-coalescing contract, and combines delete/contract
// by subtraction rather than a y-shifted sum, so forcing it through the
// same code as Tutte/Flow would cost more in mode-branches than it saves.
//
// Cancellation is an atomic.Bool flipped by a time.AfterFunc standing in
// for the external periodic timer/SIGALRM the reference evaluator relies
// on; every recursive step checks it first and, once tripped, every
// pending frame returns poly.Zero() so the partial result unwinds
// cheaply. That zero is never handed to callers as a result — engine
// reports ErrTimeout rather than a plausible but wrong polynomial. A cache.Store failure trips the same flag (via
// storeErr) and unwinds the same way, reported as that error instead of
// ErrTimeout once the recursion exits.
package engine

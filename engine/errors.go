package engine

import "errors"

// ErrTimeout is returned when a graph's evaluation was cancelled by an
// armed timeout before it completed; the caller must discard any partial
// result rather than trust it.
var ErrTimeout = errors.New("engine: evaluation cancelled by timeout")

// ErrInternalInvariant marks a structural assumption the evaluator relies
// on (e.g. a biconnected block collapsing to a consistent vertex count)
// that did not hold — per spec.md §7 this is the one error class that
// should abort a batch rather than just that graph.
var ErrInternalInvariant = errors.New("engine: internal invariant violated")

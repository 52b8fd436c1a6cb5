// Package tuttepolynomial computes the Tutte polynomial of a multigraph,
// and the chromatic and flow polynomials derived from it, via recursive
// deletion-contraction with canonical-form-keyed memoization.
//
// 🚀 What is this?
//
//	A graph-polynomial evaluator built from a handful of small, composable
//	packages:
//		• mgraph    — a fixed-range multigraph with contraction and
//		              biconnected-component decomposition
//		• canon     — a canonical form used as a memoization key, so
//		              isomorphic subgraphs reached by different recursion
//		              paths share one cached result
//		• poly      — a sparse bivariate polynomial in x and y
//		• cache     — a fixed-arena, bucket-chained memoization cache with
//		              pluggable eviction
//		• heuristic — edge-selection and vertex-ordering strategies that
//		              shape the recursion without changing its result
//		• engine    — the deletion-contraction recurrence itself, threading
//		              the above through Tutte/Chromatic/Flow evaluation
//		• ioformat  — graph-batch parsing, Maple-style polynomial output,
//		              and recursion-tree tracing
//
// ✨ Why this shape?
//
//   - No global mutable state — every recursion's cache, RNG and
//     cancellation flag live on one Engine value
//   - Pure Go — no cgo, no hidden deps beyond what each package names
//   - Memoization keyed on canonical form, not on the input graph's own
//     vertex labelling, so isomorphic branches collapse regardless of
//     which order deletion-contraction happened to visit them in
//
// The command-line batch evaluator lives at cmd/tuttepoly; see its
// internal/cli package for flags.
package tuttepolynomial

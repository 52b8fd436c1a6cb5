// Package mgraph implements the multigraph data model the evaluator
// recurses over: a fixed vertex index range 0..n-1, undirected edges with
// integer multiplicities, and the structural predicates and reductions
// (loops, trees, multicycles, biconnected components) deletion-contraction
// depends on.
//
// It is a standalone package: the evaluator's recursion needs a dense
// integer vertex space and multiplicity-aware contraction.
//
// Vertices are never physically removed once created; ContractEdge and
// SimpleContractEdge instead mark the absorbed endpoint dead and migrate
// its incident edges onto the surviving endpoint, mirroring how the
// reference implementation keeps a fixed vertex space and lets contraction
// create isolated vertices rather than renumber anything mid-recursion.
// Compact produces a dense relabelling when a caller (the canonical-key
// builder, the CLI's input pipeline) needs one.
package mgraph

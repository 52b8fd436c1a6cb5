// Package heuristic selects which edge the evaluator contracts/deletes
// next, and optionally relabels a graph's vertices before evaluation
// begins. Neither choice changes the polynomial value — it is a graph
// invariant — only how quickly structure collapses and how often the
// cache hits, per spec.md §4.5/§4.6.
//
// Every RANDOM variant takes an explicit *rand.Rand rather than reaching
// for the package-level generator, following builder/options.go's
// WithRand/WithSeed convention: engine.Engine owns one *rand.Rand field
// and threads it through here, so a test can pin it and two runs with
// the same seed retrace the same recursion.
package heuristic

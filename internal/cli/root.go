// Package cli wires the tuttepoly command surface described in
// SPEC_FULL.md §8, following roach88-nysm's brutalist/internal/cli
// pattern of a cobra root command holding shared options. There are no
// subcommands; the operation mode is chosen by flags.
package cli

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/adamnemecek/TuttePolynomial/cache"
	"github.com/adamnemecek/TuttePolynomial/engine"
	"github.com/adamnemecek/TuttePolynomial/heuristic"
)

// version is reported by --version.
const version = "0.1.0"

// Options holds every flag tuttepoly accepts, shared across the single
// run it performs — there is deliberately one command, not cobra
// subcommands per recurrence, since --chromatic/--flow are switches on
// one pipeline rather than distinct operations with distinct argument
// shapes.
type Options struct {
	InfoMode  bool
	Quiet     bool
	Timeout   time.Duration
	EvalPairs []evalPoint
	NGraphs   int

	SmallGraphs int

	CacheSizeFlag    string
	CacheBuckets     int
	CacheReplacement float64
	CacheRandom      bool
	CacheStatsPath   string
	NoCaching        bool
	NoReset          bool

	Chromatic bool
	Flow      bool

	Tree     bool
	FullTree bool
	XMLTree  bool
}

type evalPoint struct{ X, Y int }

// NewRootCommand builds the tuttepoly command.
func NewRootCommand() *cobra.Command {
	opts := &Options{CacheReplacement: 0.25}
	var evalFlags []string

	cmd := &cobra.Command{
		Use:           "tuttepoly [input-file]",
		Short:         "Compute the Tutte polynomial (and derived chromatic/flow polynomials) of a graph batch",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parseEvalFlags(evalFlags)
			if err != nil {
				return err
			}
			opts.EvalPairs = points
			return runFile(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.InfoMode, "info", "i", false, "print per-graph summary (vertex/edge/step counts, cache stats, timing)")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress the polynomial line; no summary line replaces it (--eval and --info lines still print)")
	f.DurationVarP(&opts.Timeout, "timeout", "t", 0, "wall-clock timeout per graph, e.g. 30s (0 disables)")
	f.StringArrayVarP(&evalFlags, "eval", "T", nil, "evaluate at x,y (repeatable)")
	f.IntVarP(&opts.NGraphs, "ngraphs", "n", 0, "process only the first N graphs (0 means all)")
	f.IntVar(&opts.SmallGraphs, "small-graphs", 0, "below this vertex count, skip cache lookup/store")

	f.StringVar(&opts.CacheSizeFlag, "cache-size", "1M", "cache arena size in bytes (accepts K/M/G suffixes)")
	f.IntVar(&opts.CacheBuckets, "cache-buckets", 1024, "cache bucket-head array size")
	f.Float64Var(&opts.CacheReplacement, "cache-replacement", 0.25, "fraction of capacity the min-replace-size guard protects")
	f.BoolVar(&opts.CacheRandom, "cache-random", false, "evict a uniformly random live entry instead of the least-used one")
	f.StringVar(&opts.CacheStatsPath, "cache-stats", "", "write cache statistics to this file (stdout if given with no value)")
	f.Lookup("cache-stats").NoOptDefVal = "-"
	f.BoolVar(&opts.NoCaching, "no-caching", false, "disable memoization entirely")
	f.BoolVar(&opts.NoReset, "no-reset", false, "persist the cache across graphs in this batch instead of clearing it each time")

	f.BoolVar(&opts.Chromatic, "chromatic", false, "compute the chromatic polynomial instead of Tutte")
	f.BoolVar(&opts.Flow, "flow", false, "compute the flow polynomial instead of Tutte")

	f.BoolVar(new(bool), "minimise-degree", false, "select edges minimizing endpoint degree sum")
	f.BoolVar(new(bool), "maximise-degree", false, "select edges maximizing endpoint degree sum")
	f.BoolVar(new(bool), "minimise-mdegree", false, "select edges minimizing endpoint degree product")
	f.BoolVar(new(bool), "maximise-mdegree", false, "select edges maximizing endpoint degree product")
	f.BoolVar(new(bool), "minimise-sdegree", false, "select edges minimizing the smaller endpoint degree")
	f.BoolVar(new(bool), "vertex-order", true, "select the first edge encountered in vertex order (default)")
	f.BoolVar(new(bool), "random", false, "select edges uniformly at random")

	f.BoolVar(new(bool), "random-ordering", false, "permute vertices uniformly at random before evaluation")
	f.BoolVar(new(bool), "mindeg-ordering", false, "order vertices ascending by underlying degree")
	f.BoolVar(new(bool), "maxdeg-ordering", false, "order vertices descending by underlying degree")
	f.BoolVar(new(bool), "minudeg-ordering", false, "order vertices ascending by degree counting multiplicity")
	f.BoolVar(new(bool), "maxudeg-ordering", false, "order vertices descending by degree counting multiplicity")

	f.BoolVar(&opts.Tree, "tree", false, "print a recursion-tree trace")
	f.BoolVar(&opts.FullTree, "full-tree", false, "print a recursion-tree trace including each node's edge list")
	f.BoolVar(&opts.XMLTree, "xml-tree", false, "print the recursion-tree trace in XML form")

	return cmd
}

// edgeHeuristicFromFlags resolves cobra's parsed flag set to one
// EdgeHeuristic. When several flags of the family are set, the one that
// comes last in the fixed list below wins; their order on the command
// line is not considered.
func edgeHeuristicFromFlags(f *cobra.Command) heuristic.EdgeHeuristic {
	h := heuristic.VertexOrder
	order := []struct {
		name string
		val  heuristic.EdgeHeuristic
	}{
		{"minimise-degree", heuristic.MinimiseDegree},
		{"maximise-degree", heuristic.MaximiseDegree},
		{"minimise-mdegree", heuristic.MinimiseMDegree},
		{"maximise-mdegree", heuristic.MaximiseMDegree},
		{"minimise-sdegree", heuristic.MinimiseSDegree},
		{"random", heuristic.RandomEdge},
		{"vertex-order", heuristic.VertexOrder},
	}
	for _, o := range order {
		if v, err := f.Flags().GetBool(o.name); err == nil && v && f.Flags().Changed(o.name) {
			h = o.val
		}
	}
	return h
}

func vertexHeuristicFromFlags(f *cobra.Command) heuristic.VertexHeuristic {
	h := heuristic.VertexIdentity
	order := []struct {
		name string
		val  heuristic.VertexHeuristic
	}{
		{"random-ordering", heuristic.VertexRandom},
		{"mindeg-ordering", heuristic.VertexMinDegree},
		{"maxdeg-ordering", heuristic.VertexMaxDegree},
		{"minudeg-ordering", heuristic.VertexMinDegreeMult},
		{"maxudeg-ordering", heuristic.VertexMaxDegreeMult},
	}
	for _, o := range order {
		if v, err := f.Flags().GetBool(o.name); err == nil && v && f.Flags().Changed(o.name) {
			h = o.val
		}
	}
	return h
}

// buildEngine assembles an Engine from Options, following builder/
// options.go's functional-options composition style one level up.
func buildEngine(cmd *cobra.Command, opts *Options) (*engine.Engine, error) {
	engOpts := []engine.Option{
		engine.WithEdgeHeuristic(edgeHeuristicFromFlags(cmd)),
		engine.WithVertexHeuristic(vertexHeuristicFromFlags(cmd)),
	}
	if opts.Timeout > 0 {
		engOpts = append(engOpts, engine.WithTimeout(opts.Timeout))
	}
	if opts.SmallGraphs > 0 {
		engOpts = append(engOpts, engine.WithSmallGraphThreshold(opts.SmallGraphs))
	}
	if opts.NoCaching {
		engOpts = append(engOpts, engine.WithNoCaching())
		return engine.New(engOpts...), nil
	}

	size, err := parseAmount(opts.CacheSizeFlag)
	if err != nil || size <= 0 {
		return nil, fmt.Errorf("invalid --cache-size %q", opts.CacheSizeFlag)
	}
	if opts.CacheBuckets <= 0 {
		return nil, fmt.Errorf("invalid --cache-buckets %d", opts.CacheBuckets)
	}
	cacheOpts := []cache.Option{
		cache.WithCapacity(size),
		cache.WithBuckets(opts.CacheBuckets),
		cache.WithMinReplaceSize(int(opts.CacheReplacement * float64(size))),
	}
	if opts.CacheRandom {
		cacheOpts = append(cacheOpts, cache.WithPolicy(cache.EvictRandom), cache.WithRand(rand.New(rand.NewSource(1))))
	}
	engOpts = append(engOpts, engine.WithCache(cache.New(cacheOpts...)))
	return engine.New(engOpts...), nil
}

// parseAmount parses a byte size with an optional K/M/G suffix, ported
// from tutte.cpp's parse_amount.
func parseAmount(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	mult := 1
	switch s[len(s)-1] {
	case 'K', 'k':
		mult, s = 1024, s[:len(s)-1]
	case 'M', 'm':
		mult, s = 1024*1024, s[:len(s)-1]
	case 'G', 'g':
		mult, s = 1024*1024*1024, s[:len(s)-1]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return n * mult, nil
}

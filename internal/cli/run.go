package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/adamnemecek/TuttePolynomial/cache"
	"github.com/adamnemecek/TuttePolynomial/engine"
	"github.com/adamnemecek/TuttePolynomial/ioformat"
	"github.com/adamnemecek/TuttePolynomial/mgraph"
	"github.com/adamnemecek/TuttePolynomial/poly"
)

// parseEvalFlags parses each --eval/-T value as "x,y".
func parseEvalFlags(raw []string) ([]evalPoint, error) {
	var points []evalPoint
	for _, r := range raw {
		parts := strings.SplitN(r, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --eval value %q: expected x,y", r)
		}
		x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid --eval value %q: %w", r, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid --eval value %q: %w", r, err)
		}
		points = append(points, evalPoint{X: x, Y: y})
	}
	return points, nil
}

// runFile reads path, computes the configured polynomial for each graph
// it contains, and prints results per Options — the Go counterpart of
// tutte.cpp's run().
func runFile(cmd *cobra.Command, path string, opts *Options) error {
	f, err := os.Open(path)
	if err != nil {
		return err // I/O error: cobra's default error handling sets a non-zero exit code
	}
	defer f.Close()

	graphs, parseErr := ioformat.ParseGraphs(f)
	if parseErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), parseErr)
	}

	if opts.NGraphs > 0 && opts.NGraphs < len(graphs) {
		graphs = graphs[:opts.NGraphs]
	}

	label := ioformat.LabelTutte
	switch {
	case opts.Chromatic:
		label = ioformat.LabelChromatic
	case opts.Flow:
		label = ioformat.LabelFlow
	}

	eng, err := buildEngine(cmd, opts)
	if err != nil {
		return err
	}

	wantTrace := opts.Tree || opts.FullTree || opts.XMLTree
	out := cmd.OutOrStdout()

	for i, g := range graphs {
		compacted, _ := g.Compact()

		var events []engine.Event
		if wantTrace {
			eng.SetTrace(func(ev engine.Event) { events = append(events, ev) }, opts.FullTree)
		}

		start := time.Now()
		p, computeErr := compute(eng, compacted, opts)
		elapsed := time.Since(start)

		switch {
		case computeErr == engine.ErrTimeout:
			fmt.Fprintf(cmd.ErrOrStderr(), "graph %d: timed out, reporting zero\n", i+1)
			p = poly.Zero()
		case errors.Is(computeErr, cache.ErrOutOfMemory):
			fmt.Fprintf(cmd.ErrOrStderr(), "graph %d: cache exhausted, abandoning graph\n", i+1)
			p = poly.Zero()
		case computeErr != nil:
			return computeErr
		}

		if opts.Tree || opts.FullTree {
			ioformat.WriteTextTree(out, i+1, events, opts.FullTree)
		}
		if opts.XMLTree {
			ioformat.WriteXMLTree(out, events)
		}

		writeResult(out, label, i+1, p, opts, compacted, eng, elapsed)

		if !opts.NoReset {
			eng = buildEngineReset(eng, cmd, opts)
		}
	}

	if opts.CacheStatsPath != "" {
		if err := writeCacheStats(opts, activeCache(eng, opts)); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}
	return nil
}

// buildEngineReset rebuilds a fresh engine sharing the same configuration,
// for the default (--no-reset not given) behaviour of clearing cache and
// counters between graphs in a batch, matching tutte.cpp's
// "if(reset_mode) cache.clear()" plus its unconditional per-graph counter
// reset in run().
func buildEngineReset(prev *engine.Engine, cmd *cobra.Command, opts *Options) *engine.Engine {
	fresh, err := buildEngine(cmd, opts)
	if err != nil {
		// Options were already validated by the first buildEngine call
		// this run; a later failure here would be an internal invariant
		// break, not a new user input error, so keep the prior engine
		// running rather than abort a batch mid-way.
		return prev
	}
	return fresh
}

func compute(eng *engine.Engine, g *mgraph.Multigraph, opts *Options) (*poly.Polynomial, error) {
	switch {
	case opts.Chromatic:
		return eng.Chromatic(g)
	case opts.Flow:
		return eng.Flow(g)
	default:
		return eng.Tutte(g)
	}
}

func writeResult(out io.Writer, label ioformat.Label, idx int, p *poly.Polynomial, opts *Options, g *mgraph.Multigraph, eng *engine.Engine, elapsed time.Duration) {
	if !opts.Quiet {
		fmt.Fprintln(out, ioformat.FormatPolynomial(label, idx, p))
	}
	for _, pt := range opts.EvalPairs {
		v := p.SubstituteInt64(int64(pt.X), int64(pt.Y))
		fmt.Fprintln(out, ioformat.FormatEvalPoint(label, idx, pt.X, pt.Y, v))
	}
	if opts.InfoMode {
		st := eng.Stats()
		var cs cache.Stats
		if c := activeCache(eng, opts); c != nil {
			cs = c.Stats()
		}
		fmt.Fprintf(out, "%d\t%d\t%s\t%d\t%d\t%d\t%d\t%d\n", g.NumVertices(), g.NumEdges(), elapsed, st.Steps, st.Bicomps, cs.Entries, cs.Hits, cs.Misses)
	}
}

// activeCache returns the cache backing whichever recurrence this run
// computed, for --cache-stats reporting.
func activeCache(eng *engine.Engine, opts *Options) *cache.Cache {
	switch {
	case opts.Chromatic:
		return eng.CacheChromatic()
	case opts.Flow:
		return eng.CacheFlow()
	default:
		return eng.CacheTutte()
	}
}

func writeCacheStats(opts *Options, c *cache.Cache) error {
	if c == nil {
		return fmt.Errorf("--cache-stats requested but caching is disabled (--no-caching)")
	}
	w := os.Stdout
	if opts.CacheStatsPath != "-" {
		f, err := os.Create(opts.CacheStatsPath)
		if err != nil {
			return err
		}
		defer f.Close()
		ioformat.WriteCacheStats(f, c)
		return nil
	}
	ioformat.WriteCacheStats(w, c)
	return nil
}

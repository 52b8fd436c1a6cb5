package engine

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/adamnemecek/TuttePolynomial/cache"
	"github.com/adamnemecek/TuttePolynomial/heuristic"
	"github.com/adamnemecek/TuttePolynomial/mgraph"
)

// Mode names which polynomial a recursive call is building.
type Mode int

const (
	// Tutte computes T(G;x,y).
	Tutte Mode = iota
	// Flow computes the flow-polynomial recursion, sharing Tutte's
	// structural cases plus a non-multi-edge zero guard.
	Flow
)

// Engine threads the memoization cache(s), edge/vertex heuristics, RNG,
// and cancellation flag through evaluation, replacing the package-level
// globals a single-threaded C-style evaluator would otherwise keep.
// Construct with New; the zero value is not usable.
type Engine struct {
	cacheTutte *cache.Cache
	cacheFlow  *cache.Cache
	cacheChrom *cache.Cache

	edgeHeuristic   heuristic.EdgeHeuristic
	vertexHeuristic heuristic.VertexHeuristic
	rng             *rand.Rand

	timeout   time.Duration
	cancelled atomic.Bool
	storeErr  error // set when a Store call fails; cancelled unwinds the recursion to report it

	smallGraphThreshold int

	steps   uint64
	bicomps uint64
	treeID  uint64

	trace       Tracer
	traceDetail bool
}

// Option configures an Engine at construction time. Following
// builder/options.go's contract, constructors validate their argument and
// panic on a meaningless one; Engine's own methods never panic.
type Option func(*Engine)

// WithCache installs c as the Tutte memoization cache. Chromatic and flow
// results are never stored alongside Tutte's: the same canonical key
// would otherwise collide across three incompatible polynomial values, so
// engine keeps two further internal caches of its own sizing that are not
// exposed through the option surface. Panics on a nil cache.
func WithCache(c *cache.Cache) Option {
	if c == nil {
		panic("engine: WithCache(nil)")
	}
	return func(e *Engine) { e.cacheTutte = c }
}

// WithNoCaching disables memoization for all three recurrences.
func WithNoCaching() Option {
	return func(e *Engine) {
		e.cacheTutte = nil
		e.cacheFlow = nil
		e.cacheChrom = nil
	}
}

// WithEdgeHeuristic selects which edge deletion-contraction branches on at
// each biconnected step.
func WithEdgeHeuristic(h heuristic.EdgeHeuristic) Option {
	return func(e *Engine) { e.edgeHeuristic = h }
}

// WithVertexHeuristic selects the permutation applied to a graph's
// vertices before evaluation begins.
func WithVertexHeuristic(h heuristic.VertexHeuristic) Option {
	return func(e *Engine) { e.vertexHeuristic = h }
}

// WithRand installs an explicit RNG, shared by RandomEdge/VertexRandom
// selection and by nothing else. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("engine: WithRand(nil)")
	}
	return func(e *Engine) { e.rng = r }
}

// WithSeed creates a deterministic RNG from seed. Use this in tests to
// pin RandomEdge/VertexRandom outcomes.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithTimeout arms a timeout automatically around every Tutte/Chromatic/
// Flow call: once it elapses, the cancellation flag trips and the
// in-flight evaluation unwinds to ErrTimeout. Zero (the default) means no
// timeout. Panics on a negative duration.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("engine: WithTimeout(negative)")
	}
	return func(e *Engine) { e.timeout = d }
}

// WithSmallGraphThreshold skips cache lookup and storage for any graph
// with fewer vertices than n, or that is a multitree (a graph whose
// underlying simple graph is a tree, ignoring edge multiplicity) — such
// graphs are cheap enough to re-derive that caching them only spends
// arena space and bucket-chain length on entries no recursion below them
// will ever hit twice. Mirrors tutte.cpp's
// "num_vertices() >= small_graph_threshold && !is_multitree()" cache
// gate. The default (0) never skips.
func WithSmallGraphThreshold(n int) Option {
	return func(e *Engine) { e.smallGraphThreshold = n }
}

// cacheable reports whether g is large enough, and structurally complex
// enough, to be worth a cache lookup/store under the configured
// small-graph threshold.
func (e *Engine) cacheable(g *mgraph.Multigraph) bool {
	if e.smallGraphThreshold <= 0 {
		return true
	}
	if g.NumVertices() < e.smallGraphThreshold {
		return false
	}
	return !g.IsMultitree()
}

// New constructs an Engine. Defaults: a fresh 1MiB Tutte cache and two
// equally-sized internal chromatic/flow caches, VertexOrder/VertexIdentity
// heuristics, a seed-1 RNG, and no timeout.
func New(opts ...Option) *Engine {
	e := &Engine{
		cacheTutte:      cache.New(),
		cacheFlow:       cache.New(),
		cacheChrom:      cache.New(),
		edgeHeuristic:   heuristic.VertexOrder,
		vertexHeuristic: heuristic.VertexIdentity,
		rng:             rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stats reports the evaluator's running counters, the Engine-scoped
// replacement for the reference's global num_steps/num_bicomps/tree_id.
type Stats struct {
	Steps   uint64
	Bicomps uint64
	TreeID  uint64
}

// Stats returns a snapshot of the evaluator's counters.
func (e *Engine) Stats() Stats {
	return Stats{Steps: e.steps, Bicomps: e.bicomps, TreeID: e.treeID}
}

func (e *Engine) cacheFor(mode Mode) *cache.Cache {
	if mode == Flow {
		return e.cacheFlow
	}
	return e.cacheTutte
}

// CacheTutte, CacheFlow and CacheChromatic expose the three internal
// caches read-only, for ioformat.WriteCacheStats. Any of them is nil if
// WithNoCaching was used.
func (e *Engine) CacheTutte() *cache.Cache     { return e.cacheTutte }
func (e *Engine) CacheFlow() *cache.Cache      { return e.cacheFlow }
func (e *Engine) CacheChromatic() *cache.Cache { return e.cacheChrom }

// armTimeout resets the cancellation flag and, if a timeout is
// configured, starts a timer that trips it. The returned func disarms the
// timer; callers defer it immediately.
func (e *Engine) armTimeout() func() {
	e.cancelled.Store(false)
	e.storeErr = nil
	if e.timeout <= 0 {
		return func() {}
	}
	timer := time.AfterFunc(e.timeout, func() { e.cancelled.Store(true) })
	return func() { timer.Stop() }
}

// cancelReason reports why e.cancelled tripped: a recorded Store failure
// takes precedence over the generic timeout, since it is the more
// specific cause when both could apply.
func (e *Engine) cancelReason() error {
	if e.storeErr != nil {
		return e.storeErr
	}
	return ErrTimeout
}

// prepare applies the configured vertex-ordering heuristic, returning a
// fresh graph so the caller's own graph is never mutated by evaluation.
func (e *Engine) prepare(g *mgraph.Multigraph) *mgraph.Multigraph {
	order := heuristic.Order(g, e.vertexHeuristic, e.rng)
	return g.Permute(order)
}

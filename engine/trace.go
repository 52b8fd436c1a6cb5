package engine

import "github.com/adamnemecek/TuttePolynomial/mgraph"

// EventKind classifies one recorded recursion-tree node, modelled on
// tutte.cpp's write_tree_leaf/write_tree_match/write_tree_nonleaf triad.
// The id assigned to each event has no bearing on the polynomial result
// (per spec's own "recursion identity" wording) — it exists purely so an
// external trace writer can reconstruct the shape of the evaluation.
type EventKind int

const (
	// Leaf marks a step that returns without recursing: a base case or
	// a closed form (dipole, multicycle, Flow's zero guard).
	Leaf EventKind = iota
	// Match marks a cache hit: no new recursion happened below this id.
	Match
	// NonLeaf marks a structural-case split into one or more children.
	NonLeaf
)

// Event is one recorded recursive step. Fields not meaningful for a
// given Kind are left zero.
type Event struct {
	ID          uint64
	Kind        EventKind
	NumVertices int
	NumEdges    int
	Edges       [][3]int // [u, v, multiplicity] triples, u<=v; set only when full detail is wanted

	MatchID uint64 // Kind == Match: the producer id of the entry that hit

	ChildStart uint64 // Kind == NonLeaf: first child id
	ChildCount int    // Kind == NonLeaf: number of consecutive ids from ChildStart
}

// Tracer receives one Event per recursive step. WithTrace installs one;
// the zero Engine has none and pays no recording cost.
type Tracer func(Event)

// WithTrace installs a tracer invoked once per recursive step of every
// Tutte/Chromatic/Flow evaluation this Engine performs. detail controls
// whether Event.Edges is populated (tutte.cpp's --full-tree vs --tree).
func WithTrace(fn Tracer, detail bool) Option {
	return func(e *Engine) {
		e.trace = fn
		e.traceDetail = detail
	}
}

// SetTrace installs or replaces this Engine's tracer after construction,
// for callers (the CLI) that want a fresh event sink per input graph
// without losing the cache state WithNoReset-style batches carry across
// graphs. Passing a nil fn disables tracing.
func (e *Engine) SetTrace(fn Tracer, detail bool) {
	e.trace = fn
	e.traceDetail = detail
}

func (e *Engine) emitLeaf(id uint64, g *mgraph.Multigraph) {
	if e.trace == nil {
		return
	}
	ev := Event{ID: id, Kind: Leaf, NumVertices: g.NumVertices(), NumEdges: g.NumEdges()}
	if e.traceDetail {
		ev.Edges = dumpEdges(g)
	}
	e.trace(ev)
}

func (e *Engine) emitMatch(id, matchID uint64) {
	if e.trace == nil {
		return
	}
	e.trace(Event{ID: id, Kind: Match, MatchID: matchID})
}

func (e *Engine) emitNonLeaf(id, childStart uint64, childCount int, g *mgraph.Multigraph) {
	if e.trace == nil {
		return
	}
	ev := Event{
		ID: id, Kind: NonLeaf,
		NumVertices: g.NumVertices(), NumEdges: g.NumEdges(),
		ChildStart: childStart, ChildCount: childCount,
	}
	if e.traceDetail {
		ev.Edges = dumpEdges(g)
	}
	e.trace(ev)
}

func dumpEdges(g *mgraph.Multigraph) [][3]int {
	var out [][3]int
	for _, u := range g.Vertices() {
		for _, inc := range g.Neighbors(u) {
			if inc.To < u {
				continue
			}
			out = append(out, [3]int{u, inc.To, inc.Count})
		}
	}
	return out
}

package mgraph

import "sort"

// pair is an unordered underlying edge, used only to key entries on the
// edge stack while hunting for biconnected blocks.
type pair struct{ u, v int }

// tarjanState carries the bookkeeping Tarjan's articulation-point DFS
// needs across recursive calls. It is ported from the cc_visit/cc_extract
// routines in original_source/tuttex/main.cpp, adapted to operate on the
// underlying simple graph of a Multigraph rather than nauty's bit-packed
// adjacency.
type tarjanState struct {
	g         *Multigraph
	disc      []int
	low       []int
	parent    []int
	timer     int
	stack     []pair
	blocks    [][]pair
	artic     map[int]bool
	rootKids  map[int]int
}

func (g *Multigraph) newTarjanState() *tarjanState {
	n := len(g.adj)
	t := &tarjanState{
		g:        g,
		disc:     make([]int, n),
		low:      make([]int, n),
		parent:   make([]int, n),
		artic:    make(map[int]bool),
		rootKids: make(map[int]int),
	}
	for i := range t.disc {
		t.disc[i] = -1
		t.parent[i] = -1
	}
	return t
}

func (t *tarjanState) sortedNeighbors(u int) []int {
	out := make([]int, 0, len(t.g.adj[u]))
	for w := range t.g.adj[u] {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

func (t *tarjanState) popBlock(u, w int) {
	var block []pair
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		block = append(block, top)
		if top.u == u && top.v == w {
			break
		}
	}
	t.blocks = append(t.blocks, block)
}

func (t *tarjanState) visit(u, root int) {
	t.disc[u] = t.timer
	t.low[u] = t.timer
	t.timer++

	for _, w := range t.sortedNeighbors(u) {
		if w == t.parent[u] {
			continue
		}
		if t.disc[w] == -1 {
			t.parent[w] = u
			t.stack = append(t.stack, pair{u, w})
			if u == root {
				t.rootKids[root]++
			}
			t.visit(w, root)
			if t.low[w] < t.low[u] {
				t.low[u] = t.low[w]
			}
			if u != root && t.low[w] >= t.disc[u] {
				t.artic[u] = true
			}
			if t.low[w] >= t.disc[u] {
				t.popBlock(u, w)
			}
		} else if t.disc[w] < t.disc[u] {
			t.stack = append(t.stack, pair{u, w})
			if t.disc[w] < t.low[u] {
				t.low[u] = t.disc[w]
			}
		}
	}
}

// tarjan walks every live vertex, producing the articulation-point set and the
// full list of biconnected blocks (as sets of underlying edges). Isolated
// vertices and vertices inside a single bridge both surface correctly:
// an isolated vertex contributes no block, a bridge contributes a
// one-edge block.
func (g *Multigraph) tarjan() ([][]pair, map[int]bool) {
	g.muVert.RLock()
	g.muEdge.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdge.RUnlock()

	t := g.newTarjanState()
	for v, alive := range g.alive {
		if !alive || t.disc[v] != -1 {
			continue
		}
		t.visit(v, v)
		if t.rootKids[v] > 1 {
			t.artic[v] = true
		}
	}
	return t.blocks, t.artic
}

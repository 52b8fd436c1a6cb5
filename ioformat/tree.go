package ioformat

import (
	"fmt"
	"io"
	"strings"

	"github.com/adamnemecek/TuttePolynomial/engine"
)

// WriteTextTree renders a recorded recursion trace in tutte.cpp's
// non-XML --tree/--full-tree style: one line per non-leaf or match event
// ("id=childA+childB" or "id=matchID"), optionally suffixed with the
// node's own edge list when fullTree mirrors --full-tree. Leaf events are
// silent unless fullTree is set, matching write_tree_leaf's behaviour of
// only printing under --full-tree.
func WriteTextTree(w io.Writer, treeID int, events []engine.Event, fullTree bool) {
	for _, ev := range events {
		switch ev.Kind {
		case engine.Match:
			fmt.Fprintf(w, "%d=%d\n", ev.ID, ev.MatchID)
		case engine.NonLeaf:
			fmt.Fprintf(w, "%d=", ev.ID)
			for i := 0; i < ev.ChildCount; i++ {
				if i > 0 {
					fmt.Fprint(w, "+")
				}
				fmt.Fprintf(w, "%d", ev.ChildStart+uint64(i))
			}
			if fullTree {
				fmt.Fprintf(w, "=%s", formatGraphEdges(ev.Edges))
			}
			fmt.Fprintln(w)
		case engine.Leaf:
			if fullTree {
				fmt.Fprintf(w, "%d=%s\n", ev.ID, formatGraphEdges(ev.Edges))
			}
		}
	}
	fmt.Fprintf(w, "=== TREE %d END ===\n", treeID)
}

// WriteXMLTree renders the same trace in the object-stream XML form
// ported from tutte.cpp's write_xml_* family, used to feed external
// visualisation tooling.
func WriteXMLTree(w io.Writer, events []engine.Event) {
	fmt.Fprintln(w, "<object-stream>")
	for _, ev := range events {
		switch ev.Kind {
		case engine.Match:
			fmt.Fprintln(w, "<graphnode>")
			fmt.Fprintf(w, "<id>%d</id>\n", ev.ID)
			fmt.Fprintf(w, "<vertices>%d</vertices>\n", ev.NumVertices)
			fmt.Fprintf(w, "<edges>%d</edges>\n", ev.NumEdges)
			fmt.Fprintf(w, "<match>%d</match>\n", ev.MatchID)
			fmt.Fprintln(w, "</graphnode>")
		case engine.Leaf:
			writeXMLNode(w, ev, false)
		case engine.NonLeaf:
			writeXMLNode(w, ev, true)
		}
	}
	fmt.Fprintln(w, "</object-stream>")
}

func writeXMLNode(w io.Writer, ev engine.Event, hasChildren bool) {
	fmt.Fprintln(w, "<graphnode>")
	fmt.Fprintf(w, "<id>%d</id>\n", ev.ID)
	fmt.Fprintf(w, "<vertices>%d</vertices>\n", ev.NumVertices)
	fmt.Fprintf(w, "<edges>%d</edges>\n", ev.NumEdges)
	if hasChildren {
		fmt.Fprintf(w, "<left>%d</left>\n", ev.ChildStart)
		if ev.ChildCount >= 2 {
			fmt.Fprintf(w, "<right>%d</right>\n", ev.ChildStart+1)
		}
	}
	fmt.Fprintln(w, "<graph>")
	fmt.Fprintln(w, "<struct>")
	for _, e := range ev.Edges {
		fmt.Fprintln(w, "<edge>")
		fmt.Fprintf(w, "<sV>%d</sV>\n", e[0])
		fmt.Fprintf(w, "<fV>%d</fV>\n", e[1])
		fmt.Fprintf(w, "<nE>%d</nE>\n", e[2])
		fmt.Fprintln(w, "</edge>")
	}
	fmt.Fprintln(w, "</struct>")
	fmt.Fprintln(w, "</graph>")
	fmt.Fprintln(w, "</graphnode>")
}

// formatGraphEdges renders a node's edge dump in the same "tail--head"
// grammar ParseGraphs reads, one comma-separated field per underlying
// edge pair, with multiplicity k repeated k times.
func formatGraphEdges(edges [][3]int) string {
	var fields []string
	for _, e := range edges {
		u, v, count := e[0], e[1], e[2]
		for i := 0; i < count; i++ {
			fields = append(fields, fmt.Sprintf("%d--%d", u, v))
		}
	}
	return strings.Join(fields, ",")
}

package ioformat

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/adamnemecek/TuttePolynomial/mgraph"
)

// ParseGraphs reads whitespace-separated graphs, each a comma-separated
// list of edges "tail--head" with non-negative decimal endpoints (per
// spec.md §6, ported from tutte.cpp's read_graph/parse_number). An empty
// token (e.g. trailing whitespace at end of file) is simply skipped, not
// an error, matching tutte.cpp's "extra whitespace at the end... also
// means we can add comments" behaviour.
//
// A malformed graph does not abort the batch: it is recorded as a
// *SyntaxError in the returned error (joined with errors.Join across every
// bad graph found) and excluded from the returned slice, so the caller can
// keep processing the graphs that did parse.
func ParseGraphs(r io.Reader) ([]*mgraph.Multigraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)
	scanner.Split(bufio.ScanWords)

	var graphs []*mgraph.Multigraph
	var errs []error
	idx := 0
	for scanner.Scan() {
		tok := scanner.Text()
		g, err := parseOneGraph(tok)
		if err != nil {
			errs = append(errs, &SyntaxError{GraphIndex: idx, Token: tok, Detail: err.Error()})
			idx++
			continue
		}
		graphs = append(graphs, g)
		idx++
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	return graphs, errors.Join(errs...)
}

type rawEdge struct{ tail, head int }

// parseOneGraph parses a single token into a graph. An empty graph (zero
// edges) is permitted and returns a zero-vertex Multigraph.
func parseOneGraph(tok string) (*mgraph.Multigraph, error) {
	if tok == "" {
		return mgraph.NewMultigraph(0), nil
	}

	var edges []rawEdge
	maxV := -1
	for _, field := range strings.Split(tok, ",") {
		tail, head, err := parseEdge(field)
		if err != nil {
			return nil, err
		}
		edges = append(edges, rawEdge{tail, head})
		if tail > maxV {
			maxV = tail
		}
		if head > maxV {
			maxV = head
		}
	}

	g := mgraph.NewMultigraph(maxV + 1)
	for _, e := range edges {
		// endpoints were just validated in range against maxV by
		// construction; AddEdge's own range check cannot fail here.
		_ = g.AddEdge(e.tail, e.head)
	}
	return g, nil
}

// parseEdge parses one "tail--head" field.
func parseEdge(field string) (tail, head int, err error) {
	sep := strings.Index(field, "--")
	if sep < 0 {
		return 0, 0, errors.New("expected 'tail--head'")
	}
	tail, err = parseNonNegative(field[:sep])
	if err != nil {
		return 0, 0, err
	}
	head, err = parseNonNegative(field[sep+2:])
	if err != nil {
		return 0, 0, err
	}
	return tail, head, nil
}

func parseNonNegative(s string) (int, error) {
	if s == "" {
		return 0, errors.New("expected a decimal integer, got empty field")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("expected a non-negative decimal integer, got " + strconv.Quote(s))
	}
	return n, nil
}

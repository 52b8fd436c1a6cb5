package ioformat

import "fmt"

// SyntaxError reports a malformed edge list at a specific graph index in
// an input stream. ParseGraphs collects these per spec: one graph's bad
// syntax never aborts the rest of the batch.
type SyntaxError struct {
	GraphIndex int
	Token      string
	Detail     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("ioformat: graph %d: %s (in %q)", e.GraphIndex, e.Detail, e.Token)
}

// Package ioformat is the ambient I/O layer around engine: parsing the
// whitespace-separated, comma-edge-list graph format the CLI reads,
// rendering a computed polynomial back out in the Maple-assignment style
// tutte.cpp's run() prints, and writing the optional recursion-tree trace
// and cache-statistics reports.
//
// None of this package touches engine's recursion directly; it only
// consumes what engine already exposes (mgraph.Multigraph, poly.Polynomial,
// engine.Event, cache.Entry), so a caller wanting a different wire format
// can swap this package out without touching engine at all.
package ioformat

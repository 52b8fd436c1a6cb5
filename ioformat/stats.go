package ioformat

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/adamnemecek/TuttePolynomial/cache"
)

// WriteCacheStats ports tutte.cpp's write_bucket_lengths/write_graph_sizes/
// write_hit_counts trio against cache.Cache's own Stats()/All() surface.
// Bucket lengths are reported only as Stats()'s min/max summary; no
// per-bucket histogram is written. The graph-size and hit-count tables
// walk every live entry via All and reconstruct vertex counts straight
// from the leading bytes of
// canon.Key.Bytes() (the key's own n/nn header — see canon/key.go) rather
// than decoding a full adjacency matrix, since vertex count is all this
// report needs.
func WriteCacheStats(w io.Writer, c *cache.Cache) {
	s := c.Stats()

	fmt.Fprintln(w, "############################")
	fmt.Fprintln(w, "# CACHE OCCUPANCY SUMMARY  #")
	fmt.Fprintln(w, "############################")
	fmt.Fprintf(w, "# Entries\tBytesUsed\tBytesArena\tBuckets\tBucketMin\tBucketMax\n")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\n", s.Entries, s.BytesUsed, s.BytesArena, s.NumBuckets, s.BucketMin, s.BucketMax)
	fmt.Fprintf(w, "# Hits\tMisses\tCollisions\tEvictions\n")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", s.Hits, s.Misses, s.Collisions, s.Evictions)

	var byVertices, byVerticesMulti map[int]int
	byVertices = map[int]int{}
	byVerticesMulti = map[int]int{}
	total, totalMulti := 0, 0

	c.All(func(e cache.Entry) bool {
		n, nn, ok := decodeKeyHeader(e.KeyBytes)
		if !ok {
			return true
		}
		byVertices[n]++
		total++
		if nn > n {
			byVerticesMulti[n]++
			totalMulti++
		}
		return true
	})

	fmt.Fprintln(w)
	fmt.Fprintln(w, "#########################")
	fmt.Fprintln(w, "# CACHE GRAPH SIZE DATA #")
	fmt.Fprintln(w, "#########################")
	fmt.Fprintln(w, "# V\t#Graphs (%)\t#MultiGraphs (%)")
	for v := 0; v <= maxKey(byVertices); v++ {
		pct := percentage(byVertices[v], total)
		pctMulti := percentage(byVerticesMulti[v], totalMulti)
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%d\t%.2f\n", v, byVertices[v], pct, byVerticesMulti[v], pctMulti)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "##############################")
	fmt.Fprintln(w, "# CACHE GRAPH HIT COUNT DATA #")
	fmt.Fprintln(w, "##############################")
	fmt.Fprintln(w, "# V\tHit Count")
	hitsByVertices := map[int]uint64{}
	c.All(func(e cache.Entry) bool {
		n, _, ok := decodeKeyHeader(e.KeyBytes)
		if !ok {
			return true
		}
		hitsByVertices[n] += uint64(e.Hits)
		return true
	})
	for v := 0; v <= maxKey(byVertices); v++ {
		fmt.Fprintf(w, "%d\t%d\n", v, hitsByVertices[v])
	}
}

// decodeKeyHeader reads canon.Key.Bytes()'s leading (n, nn) uint32 pair:
// n is the original graph's live vertex count, nn its expanded simple-graph
// vertex count (nn > n exactly when the graph has a multi-edge anywhere,
// per canon's buildExpanded).
func decodeKeyHeader(keyBytes []byte) (n, nn int, ok bool) {
	if len(keyBytes) < 8 {
		return 0, 0, false
	}
	return int(binary.LittleEndian.Uint32(keyBytes[0:4])), int(binary.LittleEndian.Uint32(keyBytes[4:8])), true
}

func maxKey(m map[int]int) int {
	max := 0
	for k := range m {
		if k > max {
			max = k
		}
	}
	return max
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return (float64(part) * 100) / float64(total)
}

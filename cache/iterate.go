package cache

// Entry is one memoized record as seen by ordered iteration: the raw
// canonical key bytes (as canon.Key.Bytes produced them), its hit count,
// producer id and serialized polynomial bytes. ioformat's cache-stats and
// trace writers consume this directly rather than forcing a
// poly.Deserialize on every entry.
type Entry struct {
	KeyBytes []byte
	Hits     uint32
	Producer uint32
	ValBytes []byte
}

// All visits every live entry in bucket order, then chain order within
// each bucket — a stable, repeatable traversal order used by
// ioformat.WriteCacheStats. Stops early if visit returns false.
func (c *Cache) All(visit func(Entry) bool) {
	for _, head := range c.buckets {
		for off := head; off != nilOffset; {
			h := getHeader(c.arena[off:])
			e := Entry{
				KeyBytes: nodeKey(c.arena, int(off), h),
				Hits:     h.hits,
				Producer: h.producer,
				ValBytes: nodeVal(c.arena, int(off), h),
			}
			if !visit(e) {
				return
			}
			off = h.fwd
		}
	}
}

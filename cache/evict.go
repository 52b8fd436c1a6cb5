package cache

import "hash/fnv"

type candidate struct {
	bucket int
	offset int32
	h      header
}

// evictOne removes one live entry meeting the minReplaceSize guard,
// chosen by the configured Policy, and returns whether anything was
// evicted. Eviction only unlinks the node from its bucket chain; the
// bytes themselves are reclaimed by the next Compact.
func (c *Cache) evictOne() bool {
	var candidates []candidate
	for b, head := range c.buckets {
		for off := head; off != nilOffset; {
			h := getHeader(c.arena[off:])
			if nodeSize(h) >= c.minReplaceSize {
				candidates = append(candidates, candidate{b, off, h})
			}
			off = h.fwd
		}
	}
	if len(candidates) == 0 {
		return false
	}

	var chosen candidate
	switch c.policy {
	case EvictRandom:
		chosen = candidates[c.rng.Intn(len(candidates))]
	default: // EvictUnused
		chosen = candidates[0]
		for _, cand := range candidates[1:] {
			if cand.h.hits < chosen.h.hits ||
				(cand.h.hits == chosen.h.hits && cand.offset < chosen.offset) {
				chosen = cand
			}
		}
	}

	c.unlink(chosen.bucket, chosen.offset, chosen.h)
	c.count--
	c.stats.Evictions++
	return true
}

func (c *Cache) unlink(bucket int, off int32, h header) {
	if h.back == nilOffset {
		c.buckets[bucket] = h.fwd
	} else {
		setFwd(c.arena, int(h.back), h.fwd)
	}
	if h.fwd != nilOffset {
		setBack(c.arena, int(h.fwd), h.back)
	}
}

// Compact rewrites the arena keeping only currently-linked nodes,
// resetting the bump pointer to exactly the live byte count. Bucket
// chains are rebuilt in the same relative order they had before.
func (c *Cache) Compact() {
	fresh := make([]byte, len(c.arena))
	newBucketsArr := newBuckets(len(c.buckets))
	pos := 0

	for b, head := range c.buckets {
		var prev int32 = nilOffset
		chainHead := nilOffset
		for off := head; off != nilOffset; {
			h := getHeader(c.arena[off:])
			next := h.fwd
			newOff := int32(pos)
			pos += writeNode(fresh, pos, header{
				fwd: nilOffset, back: prev,
				hits: h.hits, producer: h.producer,
				keyLen: h.keyLen, valLen: h.valLen,
			}, nodeKey(c.arena, int(off), h), nodeVal(c.arena, int(off), h))
			if prev != nilOffset {
				setFwd(fresh, int(prev), newOff)
			} else {
				chainHead = newOff
			}
			prev = newOff
			off = next
		}
		newBucketsArr[b] = chainHead
	}

	c.arena = fresh
	c.buckets = newBucketsArr
	c.used = pos
}

// Rebucket resizes the bucket-head array to n and redistributes every
// live node by rehashing its stored key bytes, without moving or copying
// any node payload.
func (c *Cache) Rebucket(n int) {
	if n <= 0 {
		panic("cache: Rebucket(n<=0)")
	}
	type link struct {
		offset int32
		h      header
	}
	var nodes []link
	for _, head := range c.buckets {
		for off := head; off != nilOffset; {
			h := getHeader(c.arena[off:])
			nodes = append(nodes, link{off, h})
			off = h.fwd
		}
	}

	newBucketsArr := newBuckets(n)
	for _, nd := range nodes {
		bucket := int(hashKeyBytes(nodeKey(c.arena, int(nd.offset), nd.h)) % uint64(n))
		oldHead := newBucketsArr[bucket]
		setFwd(c.arena, int(nd.offset), oldHead)
		setBack(c.arena, int(nd.offset), nilOffset)
		if oldHead != nilOffset {
			setBack(c.arena, int(oldHead), nd.offset)
		}
		newBucketsArr[bucket] = nd.offset
	}
	c.buckets = newBucketsArr
}

// Resize grows the arena to newSize bytes, copying live content over.
// newSize must be at least the number of bytes currently in use;
// shrinking below that requires a Compact first to free the tail.
func (c *Cache) Resize(newSize int) {
	if newSize < c.used {
		panic("cache: Resize below bytes in use")
	}
	grown := make([]byte, newSize)
	copy(grown, c.arena[:c.used])
	c.arena = grown
}

// hashKeyBytes reproduces canon.Key.Hash's algorithm (FNV-1a over the
// identity bytes) directly over a stored key, since Rebucket only has
// the raw bytes Store persisted, not the canon.Key that produced them.
func hashKeyBytes(key []byte) uint64 {
	h := fnv.New64a()
	h.Write(key)
	return h.Sum64()
}

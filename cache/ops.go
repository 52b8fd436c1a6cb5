package cache

import (
	"bytes"

	"github.com/adamnemecek/TuttePolynomial/canon"
	"github.com/adamnemecek/TuttePolynomial/poly"
)

func (c *Cache) bucketOf(k *canon.Key) int {
	return int(k.Hash() % uint64(len(c.buckets)))
}

// Lookup returns the memoized polynomial for k, if present, bumping its
// hit count. A chain walk past the first candidate counts as a
// collision for Stats, whether or not it ultimately hits.
func (c *Cache) Lookup(k *canon.Key) (*poly.Polynomial, bool) {
	p, _, ok := c.LookupWithProducer(k)
	return p, ok
}

// LookupWithProducer is Lookup plus the producer id the hit entry was
// stored under — the "match id" ioformat's trace writer correlates a
// cache hit back to the recursive step that first computed it. Per
// SPEC_FULL.md's open-question note, this id is for trace output only
// and has no bearing on the polynomial itself.
func (c *Cache) LookupWithProducer(k *canon.Key) (*poly.Polynomial, uint32, bool) {
	keyBytes := k.Bytes()
	bucket := c.bucketOf(k)
	steps := 0
	for off := c.buckets[bucket]; off != nilOffset; {
		h := getHeader(c.arena[off:])
		if steps > 0 {
			c.stats.Collisions++
		}
		steps++
		if bytes.Equal(nodeKey(c.arena, int(off), h), keyBytes) {
			setHits(c.arena, int(off), h.hits+1)
			p, err := poly.Deserialize(nodeVal(c.arena, int(off), h))
			if err != nil {
				// A corrupt entry is treated as a miss rather than
				// propagated: the evaluator always has a correct
				// from-scratch fallback.
				c.stats.Misses++
				return nil, 0, false
			}
			c.stats.Hits++
			return p, h.producer, true
		}
		off = h.fwd
	}
	c.stats.Misses++
	return nil, 0, false
}

// Store memoizes p under k, tagged with the given producer id (the
// evaluator's step counter at the time of computation, used only by
// ioformat's trace writers). Evicts and, if that still isn't enough,
// grows the arena to make room. Returns ErrOutOfMemory without storing p
// if growth is capped by WithMaxCapacity and even a full eviction sweep
// can't free enough room; entries evicted during that sweep stay evicted.
func (c *Cache) Store(k *canon.Key, producer uint32, p *poly.Polynomial) error {
	keyBytes := k.Bytes()
	valBytes := p.Serialize()
	need := headerSize + len(keyBytes) + len(valBytes)

	if err := c.ensureRoom(need); err != nil {
		return err
	}

	bucket := c.bucketOf(k)
	off := c.used
	oldHead := c.buckets[bucket]
	h := header{
		fwd:      oldHead,
		back:     nilOffset,
		hits:     0,
		producer: producer,
		keyLen:   uint32(len(keyBytes)),
		valLen:   uint32(len(valBytes)),
	}
	c.used += writeNode(c.arena, off, h, keyBytes, valBytes)
	if oldHead != nilOffset {
		setBack(c.arena, int(oldHead), int32(off))
	}
	c.buckets[bucket] = int32(off)
	c.count++
	return nil
}

// ensureRoom evicts and, failing that, grows the arena until at least
// need contiguous bytes are free at the bump pointer. Returns
// ErrOutOfMemory instead of growing past a configured WithMaxCapacity.
func (c *Cache) ensureRoom(need int) error {
	if c.used+need <= len(c.arena) {
		return nil
	}
	for c.used+need > len(c.arena) {
		if !c.evictOne() {
			break
		}
		c.Compact()
	}
	if c.used+need <= len(c.arena) {
		return nil
	}

	target := growTo(len(c.arena), c.used+need)
	if c.maxCapacity > 0 {
		if target > c.maxCapacity {
			target = c.maxCapacity
		}
		if c.used+need > target {
			return ErrOutOfMemory
		}
	}
	c.Resize(target)
	return nil
}

func growTo(current, atLeast int) int {
	next := current * 2
	if next < atLeast {
		next = atLeast
	}
	return next
}

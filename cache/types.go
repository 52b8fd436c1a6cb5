package cache

import "math/rand"

// Policy selects which live entry eviction sacrifices when the arena is
// full and space must be reclaimed before a Store can proceed.
type Policy int

const (
	// EvictUnused evicts the live entry with the lowest hit count,
	// breaking ties in favour of the lowest arena offset. That is
	// insertion order only until the first Compact, which lays nodes
	// out again bucket by bucket.
	EvictUnused Policy = iota
	// EvictRandom evicts a uniformly random eligible live entry.
	EvictRandom
)

// Stats summarizes the cache's current occupancy and hit behaviour, for
// the CLI's --cache-stats report.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Collisions  uint64
	Entries     int
	BytesUsed   int
	BytesArena  int
	BucketMin   int
	BucketMax   int
	NumBuckets  int
	Evictions   uint64
}

// Option customizes a Cache before first use. Following builder/options.go's
// convention, option constructors validate their argument and panic on a
// value that could never be meaningful, rather than silently clamping it.
type Option func(*Cache)

// WithCapacity preallocates an arena of the given byte size. Panics if n
// is not positive.
func WithCapacity(n int) Option {
	if n <= 0 {
		panic("cache: WithCapacity(n<=0)")
	}
	return func(c *Cache) { c.arena = make([]byte, n) }
}

// WithBuckets sets the initial bucket-head array size. Panics if n is not
// positive.
func WithBuckets(n int) Option {
	if n <= 0 {
		panic("cache: WithBuckets(n<=0)")
	}
	return func(c *Cache) { c.buckets = newBuckets(n) }
}

// WithPolicy sets the eviction policy.
func WithPolicy(p Policy) Option {
	return func(c *Cache) { c.policy = p }
}

// WithMinReplaceSize sets the guard below which a live entry is never
// evicted purely to make room — spec.md's min_replace_size, preventing a
// flood of tiny entries from being endlessly sacrificed for one large
// Store. Panics if n is negative.
func WithMinReplaceSize(n int) Option {
	if n < 0 {
		panic("cache: WithMinReplaceSize(n<0)")
	}
	return func(c *Cache) { c.minReplaceSize = n }
}

// WithMaxCapacity caps how far the arena is allowed to grow when eviction
// alone cannot make room for a Store: growth beyond n fails with
// ErrOutOfMemory instead of proceeding. The default (0) never caps growth,
// matching the arena's previous unconditional-grow behaviour. Panics if n
// is not positive.
func WithMaxCapacity(n int) Option {
	if n <= 0 {
		panic("cache: WithMaxCapacity(n<=0)")
	}
	return func(c *Cache) { c.maxCapacity = n }
}

// WithRand provides an explicit RNG for EvictRandom, mirroring
// builder/options.go's WithRand. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cache: WithRand(nil)")
	}
	return func(c *Cache) { c.rng = r }
}

// WithSeed creates a deterministic RNG for EvictRandom from a fixed seed.
func WithSeed(seed int64) Option {
	return func(c *Cache) { c.rng = rand.New(rand.NewSource(seed)) }
}

// Cache is an arena-backed, content-addressed memoization table. The
// zero value is not usable; construct with New.
type Cache struct {
	arena []byte // bytes [0:used) hold live or evicted-but-uncompacted nodes
	used  int

	buckets []int32 // bucket index -> head node offset, nilOffset if empty

	policy         Policy
	minReplaceSize int
	maxCapacity    int // 0 means unbounded
	rng            *rand.Rand

	count int
	stats Stats
}

func newBuckets(n int) []int32 {
	b := make([]int32, n)
	for i := range b {
		b[i] = nilOffset
	}
	return b
}

// New constructs an empty Cache, applying the given options over sensible
// defaults (1MiB arena, 1024 buckets, Unused eviction, no minimum replace
// size, an RNG with fixed seed 1 for EvictRandom).
func New(opts ...Option) *Cache {
	c := &Cache{
		arena:   make([]byte, 1<<20),
		buckets: newBuckets(1024),
		policy:  EvictUnused,
		rng:     rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Stats returns a snapshot of the cache's current occupancy and hit
// counters, computing bucket min/max length by walking every chain.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.Entries = c.count
	s.BytesUsed = c.used
	s.BytesArena = len(c.arena)
	s.NumBuckets = len(c.buckets)

	minLen, maxLen := -1, 0
	for _, head := range c.buckets {
		length := 0
		for off := head; off != nilOffset; {
			length++
			h := getHeader(c.arena[off:])
			off = h.fwd
		}
		if minLen == -1 || length < minLen {
			minLen = length
		}
		if length > maxLen {
			maxLen = length
		}
	}
	if minLen == -1 {
		minLen = 0
	}
	s.BucketMin, s.BucketMax = minLen, maxLen
	return s
}

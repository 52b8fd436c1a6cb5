package cache_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamnemecek/TuttePolynomial/cache"
	"github.com/adamnemecek/TuttePolynomial/canon"
	"github.com/adamnemecek/TuttePolynomial/mgraph"
	"github.com/adamnemecek/TuttePolynomial/poly"
)

func keyFor(edges [][2]int, n int) *canon.Key {
	g := mgraph.NewMultigraph(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return canon.Build(g)
}

// TestLookup_MissThenHit checks the basic store/lookup round trip and
// that a missing key reports a clean miss.
func TestLookup_MissThenHit(t *testing.T) {
	c := cache.New()
	k := keyFor([][2]int{{0, 1}, {1, 2}, {2, 0}}, 3)

	_, ok := c.Lookup(k)
	assert.False(t, ok)

	want := poly.X(3).Add(poly.Y(1))
	c.Store(k, 1, want)

	got, ok := c.Lookup(k)
	require.True(t, ok)
	assert.True(t, want.Equal(got))
}

// TestLookup_HitCountIncrements verifies repeated lookups bump the
// stored hit counter, observable via All.
func TestLookup_HitCountIncrements(t *testing.T) {
	c := cache.New()
	k := keyFor([][2]int{{0, 1}}, 2)
	c.Store(k, 0, poly.One())

	for i := 0; i < 3; i++ {
		_, ok := c.Lookup(k)
		require.True(t, ok)
	}

	var hits uint32
	c.All(func(e cache.Entry) bool {
		hits = e.Hits
		return true
	})
	assert.Equal(t, uint32(3), hits)
}

// TestEvictUnused_KeepsHigherHitEntry checks that, under memory pressure
// with a tiny arena, the entry with fewer hits is the one sacrificed.
func TestEvictUnused_KeepsHigherHitEntry(t *testing.T) {
	c := cache.New(cache.WithCapacity(256), cache.WithBuckets(4), cache.WithPolicy(cache.EvictUnused))

	kA := keyFor([][2]int{{0, 1}}, 2)
	kB := keyFor([][2]int{{0, 1}, {1, 2}}, 3)
	c.Store(kA, 0, poly.X(1))
	c.Store(kB, 1, poly.X(1))

	// Make kB clearly more valuable.
	for i := 0; i < 5; i++ {
		c.Lookup(kB)
	}

	// Force enough churn that the arena must evict something: fill it
	// with distinct path graphs until kA (the cold entry) is gone. kA's
	// presence is checked through All, which, unlike Lookup, leaves its
	// hit count at zero.
	aPresent := func() bool {
		found := false
		c.All(func(e cache.Entry) bool {
			if bytes.Equal(e.KeyBytes, kA.Bytes()) {
				found = true
				return false
			}
			return true
		})
		return found
	}
	for i := 4; i < 40; i++ {
		path := make([][2]int, 0, i-1)
		for v := 0; v+1 < i; v++ {
			path = append(path, [2]int{v, v + 1})
		}
		c.Store(keyFor(path, i), uint32(i), poly.X(i))
		if !aPresent() {
			break
		}
	}

	_, bPresent := c.Lookup(kB)
	assert.True(t, bPresent, "the frequently hit entry should survive eviction pressure")
}

// TestCompact_PreservesLiveEntries checks that compacting after some
// churn still finds every still-linked entry.
func TestCompact_PreservesLiveEntries(t *testing.T) {
	c := cache.New(cache.WithCapacity(4096), cache.WithBuckets(8))
	k1 := keyFor([][2]int{{0, 1}}, 2)
	k2 := keyFor([][2]int{{0, 1}, {1, 2}}, 3)
	c.Store(k1, 0, poly.X(1))
	c.Store(k2, 0, poly.Y(1))

	c.Compact()

	v1, ok1 := c.Lookup(k1)
	v2, ok2 := c.Lookup(k2)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.True(t, poly.X(1).Equal(v1))
	assert.True(t, poly.Y(1).Equal(v2))
}

// TestRebucket_PreservesEntries checks that changing the bucket count
// doesn't lose or corrupt any entry.
func TestRebucket_PreservesEntries(t *testing.T) {
	c := cache.New(cache.WithBuckets(2))
	keys := make([]*canon.Key, 0, 5)
	for i := 0; i < 5; i++ {
		k := keyFor([][2]int{{0, 1}, {1, i + 2}}, i+3)
		keys = append(keys, k)
		c.Store(k, uint32(i), poly.X(i))
	}

	c.Rebucket(16)

	for i, k := range keys {
		v, ok := c.Lookup(k)
		require.True(t, ok)
		assert.True(t, poly.X(i).Equal(v))
	}
}

// TestStats_ReflectsHitsAndMisses checks the Stats snapshot's hit/miss
// counters against a known sequence of lookups.
func TestStats_ReflectsHitsAndMisses(t *testing.T) {
	c := cache.New()
	k := keyFor([][2]int{{0, 1}}, 2)
	c.Lookup(k) // miss
	c.Store(k, 0, poly.One())
	c.Lookup(k) // hit
	c.Lookup(k) // hit

	s := c.Stats()
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, 1, s.Entries)
}

// TestStore_ReturnsOutOfMemoryPastMaxCapacity checks that once eviction
// can't free enough room and growth is capped, Store fails cleanly
// instead of growing past the configured ceiling.
func TestStore_ReturnsOutOfMemoryPastMaxCapacity(t *testing.T) {
	c := cache.New(cache.WithCapacity(32), cache.WithBuckets(4), cache.WithMaxCapacity(32))

	k := keyFor([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}}, 7)
	err := c.Store(k, 0, poly.X(3).Add(poly.Y(3)))
	require.ErrorIs(t, err, cache.ErrOutOfMemory)

	_, ok := c.Lookup(k)
	assert.False(t, ok, "a failed Store must not leave a partial entry behind")
}

// TestStore_GrowsUnboundedWithoutMaxCapacity checks the default (no
// WithMaxCapacity) behaviour is unchanged: the arena keeps growing to
// satisfy a Store rather than ever failing.
func TestStore_GrowsUnboundedWithoutMaxCapacity(t *testing.T) {
	c := cache.New(cache.WithCapacity(32), cache.WithBuckets(4))

	k := keyFor([][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}}, 7)
	err := c.Store(k, 0, poly.X(3).Add(poly.Y(3)))
	require.NoError(t, err)

	_, ok := c.Lookup(k)
	assert.True(t, ok)
}

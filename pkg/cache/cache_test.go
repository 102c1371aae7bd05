package cache_test

import (
	"testing"

	"github.com/lupyuen/ulispc/pkg/cache"
	"github.com/stretchr/testify/require"
)

func TestGetMissOnEmptyCache(t *testing.T) {
	c, err := cache.New(4)
	require.NoError(t, err)

	_, ok := c.Get(cache.Key([]byte(`{"statements":[]}`)))
	require.False(t, ok)
}

func TestPutThenGetHits(t *testing.T) {
	c, err := cache.New(4)
	require.NoError(t, err)

	key := cache.Key([]byte(`{"statements":[]}`))
	c.Put(key, "( let* ()\n)")

	got, ok := c.Get(key)
	require.True(t, ok)
	require.Equal(t, "( let* ()\n)", got)
}

func TestKeyIsDeterministicForEqualInput(t *testing.T) {
	a := []byte(`{"statements":[{"kind":"Var"}]}`)
	b := []byte(`{"statements":[{"kind":"Var"}]}`)
	require.Equal(t, cache.Key(a), cache.Key(b))
}

func TestKeyDiffersForDifferentInput(t *testing.T) {
	a := cache.Key([]byte(`{"statements":[]}`))
	b := cache.Key([]byte(`{"statements":[{"kind":"Break"}]}`))
	require.NotEqual(t, a, b)
}

func TestEvictsLeastRecentlyUsedPastCapacity(t *testing.T) {
	c, err := cache.New(2)
	require.NoError(t, err)

	k1, k2, k3 := cache.Key([]byte("a")), cache.Key([]byte("b")), cache.Key([]byte("c"))
	c.Put(k1, "one")
	c.Put(k2, "two")
	c.Put(k3, "three")

	require.Equal(t, 2, c.Len())
	_, ok := c.Get(k1)
	require.False(t, ok)
}

func TestPurgeEmptiesCache(t *testing.T) {
	c, err := cache.New(4)
	require.NoError(t, err)

	c.Put(cache.Key([]byte("a")), "one")
	require.Equal(t, 1, c.Len())

	c.Purge()
	require.Equal(t, 0, c.Len())
}

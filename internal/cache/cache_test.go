package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetMissThenPutThenGet(t *testing.T) {
	c := New(10, time.Minute)
	now := time.Unix(0, 0)
	key := Key{Path: "/a", ShowHidden: false}

	_, ok := c.Get(key, now)
	require.False(t, ok)

	c.Put(key, Listing{Path: "/a"}, now)
	got, ok := c.Get(key, now)
	require.True(t, ok)
	require.Equal(t, "/a", got.Path)
}

func TestTTLExpiry(t *testing.T) {
	c := New(10, time.Second)
	now := time.Unix(0, 0)
	key := Key{Path: "/a", ShowHidden: false}
	c.Put(key, Listing{Path: "/a"}, now)

	_, ok := c.Get(key, now.Add(2*time.Second))
	require.False(t, ok)
}

func TestInvalidateRemovesSubdirectories(t *testing.T) {
	c := New(10, time.Minute)
	now := time.Unix(0, 0)
	c.Put(Key{Path: "/a"}, Listing{Path: "/a"}, now)
	c.Put(Key{Path: "/a/b"}, Listing{Path: "/a/b"}, now)
	c.Put(Key{Path: "/other"}, Listing{Path: "/other"}, now)

	c.Invalidate("/a")

	_, ok := c.Get(Key{Path: "/a"}, now)
	require.False(t, ok)
	_, ok = c.Get(Key{Path: "/a/b"}, now)
	require.False(t, ok)
	_, ok = c.Get(Key{Path: "/other"}, now)
	require.True(t, ok)
}

func TestLRUEviction(t *testing.T) {
	c := New(2, time.Minute)
	now := time.Unix(0, 0)
	c.Put(Key{Path: "/a"}, Listing{Path: "/a"}, now)
	c.Put(Key{Path: "/b"}, Listing{Path: "/b"}, now)
	// touch /a so /b becomes the LRU victim
	c.Get(Key{Path: "/a"}, now)
	c.Put(Key{Path: "/c"}, Listing{Path: "/c"}, now)

	require.Equal(t, 2, c.Len())
	_, ok := c.Get(Key{Path: "/b"}, now)
	require.False(t, ok)
	_, ok = c.Get(Key{Path: "/a"}, now)
	require.True(t, ok)
}

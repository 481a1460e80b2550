package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetGetInvalidate(t *testing.T) {
	c := New[int](time.Hour)

	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Set("a", 1)
	c.Set("a", 2)
	value, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, value)
	require.Equal(t, 1, c.Len())

	c.Invalidate("a")
	_, ok = c.Get("a")
	require.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c := New[string](time.Millisecond)

	c.Set("a", "value")
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("a")
	require.False(t, ok)
	// The expired entry was dropped on read
	require.Zero(t, c.Len())
}

func TestZeroTTLNeverExpires(t *testing.T) {
	c := New[string](0)

	c.Set("a", "value")
	time.Sleep(2 * time.Millisecond)

	value, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, "value", value)
}

func TestClear(t *testing.T) {
	c := New[int](time.Hour)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()
	require.Zero(t, c.Len())
}

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

// Runs before the TTL'd tests below, whose reaper goroutines live until
// process exit and would otherwise show up in the leak check.
func TestMemoryCacheNoTTLStartsNoGoroutine(t *testing.T) {
	c := NewMemory[string](8, 0)
	c.Set("k", "v")

	time.Sleep(30 * time.Millisecond)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)

	goleak.VerifyNone(t)
}

func TestMemoryCache(t *testing.T) {
	c := NewMemory[[]string](8, time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", []string{"api", "database"})
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"api", "database"}, got)

	c.Delete("k")
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemory[string](8, 20*time.Millisecond)
	c.Set("k", "v")

	time.Sleep(60 * time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestFileCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFile(dir, time.Minute, zaptest.NewLogger(t))
	require.NoError(t, err)

	type payload struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}

	c.Set("k", payload{Name: "arch", Items: []string{"a", "b"}})

	var got payload
	require.True(t, c.Get("k", &got))
	assert.Equal(t, "arch", got.Name)
	assert.Equal(t, []string{"a", "b"}, got.Items)

	c.Delete("k")
	assert.False(t, c.Get("k", &got))
}

func TestFileCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFile(dir, 10*time.Millisecond, zaptest.NewLogger(t))
	require.NoError(t, err)

	c.Set("k", "v")
	time.Sleep(30 * time.Millisecond)

	var got string
	assert.False(t, c.Get("k", &got))
}

func TestKeyStable(t *testing.T) {
	assert.Equal(t, Key("a", "b"), Key("a", "b"))
	assert.NotEqual(t, Key("a", "b"), Key("ab"))
	assert.NotEqual(t, Key("a", "b"), Key("b", "a"))
}

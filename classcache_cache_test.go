package layout

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type countingLocator struct {
	mu    sync.Mutex
	calls map[string]int
}

func newCountingLocator() *countingLocator {
	return &countingLocator{calls: make(map[string]int)}
}

func (c *countingLocator) Locate(className string) (ResolvedSchema, bool) {
	c.mu.Lock()
	c.calls[className]++
	c.mu.Unlock()
	if className == "com.example.Missing" {
		return nil, false
	}
	return NamedSchema{SchemaKind: KindRecord, Name: className}, true
}

func TestCacheMemoizesHits(t *testing.T) {
	upstream := newCountingLocator()
	c := NewClassCache(upstream)

	for i := 0; i < 5; i++ {
		schema, found := c.Locate("com.example.Event")
		require.True(t, found)
		require.Equal(t, "com.example.Event", schema.(NamedSchema).Name)
	}
	require.Equal(t, 1, upstream.calls["com.example.Event"])
}

func TestCacheMemoizesMisses(t *testing.T) {
	upstream := newCountingLocator()
	c := NewClassCache(upstream)

	for i := 0; i < 3; i++ {
		_, found := c.Locate("com.example.Missing")
		require.False(t, found)
	}
	require.Equal(t, 1, upstream.calls["com.example.Missing"])
}

func TestCacheConcurrentLookupsCallUpstreamOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	upstream := newCountingLocator()
	c := NewClassCache(upstream)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Locate("com.example.Shared")
		}()
	}
	wg.Wait()
	require.Equal(t, 1, upstream.calls["com.example.Shared"])
}

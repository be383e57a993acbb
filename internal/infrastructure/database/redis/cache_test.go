package redis

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/internal/domain/recommend"
)

// memoryCache is an in-process Cache used to test the adapters above it
// without a server.
type memoryCache struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMemoryCache() *memoryCache { return &memoryCache{m: map[string][]byte{}} }

func (c *memoryCache) Get(_ context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.m[key]
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.m, k)
	}
	return nil
}

func (c *memoryCache) DeleteByPrefix(_ context.Context, prefix string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int64
	for k := range c.m {
		if strings.HasPrefix(k, prefix) {
			delete(c.m, k)
			n++
		}
	}
	return n, nil
}

func (c *memoryCache) GetOrSet(ctx context.Context, key string, dest any, ttl time.Duration,
	loader func(ctx context.Context) (any, error)) error {
	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	}
	v, err := loader(ctx)
	if err != nil {
		return err
	}
	if err := c.Set(ctx, key, v, ttl); err != nil {
		return err
	}
	return c.Get(ctx, key, dest)
}

func (c *memoryCache) Ping(context.Context) error { return nil }

func TestCacheOptionsApply(t *testing.T) {
	t.Parallel()

	c := NewCache(&Client{}, nil, WithPrefix("rx:"), WithDefaultTTL(5*time.Minute)).(*redisCache)
	assert.Equal(t, "rx:recommend|abc", c.fullKey("recommend|abc"))
	assert.Equal(t, 5*time.Minute, c.defaultTTL)
}

func TestJitterTTLStaysWithinTenPercent(t *testing.T) {
	t.Parallel()

	c := NewCache(&Client{}, nil).(*redisCache)
	base := time.Hour
	for i := 0; i < 100; i++ {
		got := c.jitterTTL(base)
		assert.GreaterOrEqual(t, got, time.Duration(float64(base)*0.9))
		assert.LessOrEqual(t, got, time.Duration(float64(base)*1.1))
	}
	assert.Equal(t, time.Duration(0), c.jitterTTL(0))
}

func TestExportCacheRoundTrip(t *testing.T) {
	t.Parallel()

	ec := NewExportCache(newMemoryCache(), time.Minute, nil)
	ctx := context.Background()

	_, ok := ec.Get(ctx, "missing")
	assert.False(t, ok)

	ex := &recommend.Export{}
	ex.Meta.AnalysisType = "enhanced"
	ex.Meta.Status = "success"
	ex.Detection.ReactionType = "Suzuki"

	ec.Set(ctx, "k1", ex)
	got, ok := ec.Get(ctx, "k1")
	require.True(t, ok)
	assert.Equal(t, "enhanced", got.Meta.AnalysisType)
	assert.Equal(t, "Suzuki", got.Detection.ReactionType)
}

func TestClientPingAfterClose(t *testing.T) {
	t.Parallel()

	c := &Client{closed: true}
	assert.Equal(t, ErrClientClosed, c.Ping(context.Background()))
}

package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/reactwise/condrec/internal/domain/recommend"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
)

var (
	ErrCacheMiss        = errors.New(errors.ErrCodeNotFound, "cache miss")
	ErrCacheUnavailable = errors.New(errors.ErrCodeCacheError, "cache unavailable")
)

// Cache is the JSON key-value surface the engine needs from Redis.  Values
// are marshaled on write and unmarshaled into the caller's destination on
// read; a miss is ErrCacheMiss, never a zero value.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPrefix(ctx context.Context, prefix string) (int64, error)
	GetOrSet(ctx context.Context, key string, dest any, ttl time.Duration,
		loader func(ctx context.Context) (any, error)) error
	Ping(ctx context.Context) error
}

type redisCache struct {
	client     *Client
	logger     logging.Logger
	prefix     string
	defaultTTL time.Duration
	group      singleflight.Group
}

// CacheOption customizes a Cache.
type CacheOption func(*redisCache)

// WithPrefix sets the key namespace prepended to every key.
func WithPrefix(prefix string) CacheOption {
	return func(c *redisCache) { c.prefix = prefix }
}

// WithDefaultTTL sets the expiry applied when Set receives a zero ttl.
func WithDefaultTTL(ttl time.Duration) CacheOption {
	return func(c *redisCache) { c.defaultTTL = ttl }
}

// NewCache builds the Redis-backed Cache.
func NewCache(client *Client, log logging.Logger, opts ...CacheOption) Cache {
	if log == nil {
		log = logging.NewNopLogger()
	}
	c := &redisCache{
		client:     client,
		logger:     log.Named("cache"),
		prefix:     "condrec:",
		defaultTTL: time.Hour,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *redisCache) fullKey(key string) string { return c.prefix + key }

// jitterTTL spreads expiries by ±10% so memoized exports generated in a burst
// do not all expire in the same instant.
func (c *redisCache) jitterTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	jitter := float64(ttl) * 0.1 * (rand.Float64()*2 - 1)
	return ttl + time.Duration(jitter)
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) error {
	raw, err := c.client.rdb.Get(ctx, c.fullKey(key)).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "cache get").WithDetail("key=" + key)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "decode cached value").WithDetail("key=" + key)
	}
	return nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "encode cache value").WithDetail("key=" + key)
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.rdb.Set(ctx, c.fullKey(key), raw, c.jitterTTL(ttl)).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "cache set").WithDetail("key=" + key)
	}
	return nil
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.fullKey(k)
	}
	if err := c.client.rdb.Del(ctx, full...).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "cache delete")
	}
	return nil
}

// DeleteByPrefix scans and removes every key under prefix.  Used for
// wholesale invalidation when a new evidence generation is published.
func (c *redisCache) DeleteByPrefix(ctx context.Context, prefix string) (int64, error) {
	var removed int64
	iter := c.client.rdb.Scan(ctx, 0, c.fullKey(prefix)+"*", 200).Iterator()
	batch := make([]string, 0, 200)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := c.client.rdb.Del(ctx, batch...).Result()
		removed += n
		batch = batch[:0]
		return err
	}
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 200 {
			if err := flush(); err != nil {
				return removed, errors.Wrap(err, errors.ErrCodeCacheError, "cache prefix delete")
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, errors.Wrap(err, errors.ErrCodeCacheError, "cache scan")
	}
	if err := flush(); err != nil {
		return removed, errors.Wrap(err, errors.ErrCodeCacheError, "cache prefix delete")
	}
	return removed, nil
}

// GetOrSet returns the cached value or runs loader exactly once per key
// across concurrent callers, caching its result.
func (c *redisCache) GetOrSet(ctx context.Context, key string, dest any, ttl time.Duration,
	loader func(ctx context.Context) (any, error)) error {

	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	} else if err != ErrCacheMiss {
		c.logger.Warn("cache read failed, loading through", logging.Err(err))
	}

	raw, err, _ := c.group.Do(key, func() (any, error) {
		v, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.Set(ctx, key, v, ttl); err != nil {
			c.logger.Warn("cache write-back failed", logging.Err(err))
		}
		return json.Marshal(v)
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(raw.([]byte), dest)
}

func (c *redisCache) Ping(ctx context.Context) error { return c.client.Ping(ctx) }

// ─────────────────────────────────────────────────────────────────────────────
// Export Memo Cache
// ─────────────────────────────────────────────────────────────────────────────

// ExportCache adapts Cache to the recommendation engine's memo interface.
// Both operations are best-effort: a cache failure degrades to a fresh
// computation, never to a request error.
type ExportCache struct {
	cache  Cache
	ttl    time.Duration
	logger logging.Logger
}

// NewExportCache builds the memo adapter.  A non-positive ttl falls back to
// the cache's default.
func NewExportCache(cache Cache, ttl time.Duration, log logging.Logger) *ExportCache {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ExportCache{cache: cache, ttl: ttl, logger: log.Named("exportcache")}
}

// Get implements recommend.ResultCache.
func (c *ExportCache) Get(ctx context.Context, key string) (*recommend.Export, bool) {
	var ex recommend.Export
	err := c.cache.Get(ctx, key, &ex)
	if err != nil {
		if err != ErrCacheMiss {
			c.logger.Warn("export cache read failed", logging.Err(err))
		}
		return nil, false
	}
	return &ex, true
}

// Set implements recommend.ResultCache.
func (c *ExportCache) Set(ctx context.Context, key string, ex *recommend.Export) {
	if err := c.cache.Set(ctx, key, ex, c.ttl); err != nil {
		c.logger.Warn("export cache write failed", logging.Err(err))
	}
}

var _ recommend.ResultCache = (*ExportCache)(nil)

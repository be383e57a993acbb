package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reactwise/condrec/pkg/errors"
)

// RateLimitConfig bounds request rate per client IP.
type RateLimitConfig struct {
	// RequestsPerMinute is the sustained rate; zero disables limiting.
	RequestsPerMinute int
	// Burst allows short spikes above the sustained rate.
	Burst int
}

// tokenBucket is a minimal per-client bucket.  Refill happens lazily on
// access, so idle clients cost nothing between requests.
type tokenBucket struct {
	tokens   float64
	lastSeen time.Time
}

type rateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	rate    float64 // tokens per second
	burst   float64
	now     func() time.Time
}

// RateLimit rejects clients exceeding the configured rate with 429.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}

	rl := &rateLimiter{
		buckets: make(map[string]*tokenBucket),
		rate:    float64(cfg.RequestsPerMinute) / 60.0,
		burst:   float64(cfg.Burst),
		now:     time.Now,
	}

	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			err := errors.New(errors.ErrCodeTooManyRequests, "rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":    errors.ErrCodeTooManyRequests.String(),
					"message": err.Error(),
				},
			})
			return
		}
		c.Next()
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		rl.buckets[key] = &tokenBucket{tokens: rl.burst - 1, lastSeen: now}
		rl.evictStale(now)
		return true
	}

	b.tokens += now.Sub(b.lastSeen).Seconds() * rl.rate
	if b.tokens > rl.burst {
		b.tokens = rl.burst
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// evictStale drops buckets idle for ten minutes so the map stays bounded.
func (rl *rateLimiter) evictStale(now time.Time) {
	if len(rl.buckets) < 10000 {
		return
	}
	for k, b := range rl.buckets {
		if now.Sub(b.lastSeen) > 10*time.Minute {
			delete(rl.buckets, k)
		}
	}
}

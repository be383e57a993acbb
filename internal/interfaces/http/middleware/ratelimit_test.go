package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitDisabledPassesEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{RequestsPerMinute: 0}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{RequestsPerMinute: 60, Burst: 3}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.7:5000"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{200, 200, 200, 429}, codes)
}

func TestAllowRefillsOverTime(t *testing.T) {
	clock := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	rl := &rateLimiter{
		buckets: make(map[string]*tokenBucket),
		rate:    1, // one token per second
		burst:   2,
		now:     func() time.Time { return clock },
	}

	require.True(t, rl.allow("client"))
	require.True(t, rl.allow("client"))
	require.False(t, rl.allow("client"))

	clock = clock.Add(1500 * time.Millisecond)
	assert.True(t, rl.allow("client"))
	assert.False(t, rl.allow("client"))
}

func TestAllowCapsAtBurst(t *testing.T) {
	clock := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	rl := &rateLimiter{
		buckets: make(map[string]*tokenBucket),
		rate:    1,
		burst:   2,
		now:     func() time.Time { return clock },
	}

	require.True(t, rl.allow("client"))

	// A long idle period must not accumulate more than the burst.
	clock = clock.Add(time.Hour)
	assert.True(t, rl.allow("client"))
	assert.True(t, rl.allow("client"))
	assert.False(t, rl.allow("client"))
}

func TestAllowIsolatesClients(t *testing.T) {
	clock := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	rl := &rateLimiter{
		buckets: make(map[string]*tokenBucket),
		rate:    1,
		burst:   1,
		now:     func() time.Time { return clock },
	}

	require.True(t, rl.allow("a"))
	require.False(t, rl.allow("a"))
	assert.True(t, rl.allow("b"))
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(h *HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", h.Liveness)
	r.GET("/readyz", h.Readiness)
	return r
}

func TestLivenessIgnoresDependencies(t *testing.T) {
	broken := CheckerFunc{ComponentName: "postgres", Fn: func(context.Context) error {
		return errors.New("connection refused")
	}}
	r := newHealthRouter(NewHealthHandler("1.4.0", broken))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"alive"`)
	assert.Contains(t, w.Body.String(), `"1.4.0"`)
}

func TestReadinessAllUp(t *testing.T) {
	ok := func(context.Context) error { return nil }
	r := newHealthRouter(NewHealthHandler("1.4.0",
		CheckerFunc{ComponentName: "postgres", Fn: ok},
		CheckerFunc{ComponentName: "minio", Fn: ok},
	))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status     string                    `json:"status"`
		Components map[string]componentCheck `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	require.Len(t, resp.Components, 2)
	assert.Equal(t, "up", resp.Components["postgres"].Status)
	assert.Equal(t, "up", resp.Components["minio"].Status)
}

func TestReadinessOneDown(t *testing.T) {
	r := newHealthRouter(NewHealthHandler("1.4.0",
		CheckerFunc{ComponentName: "postgres", Fn: func(context.Context) error { return nil }},
		CheckerFunc{ComponentName: "kafka", Fn: func(context.Context) error {
			return errors.New("broker unreachable")
		}},
	))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp struct {
		Status     string                    `json:"status"`
		Components map[string]componentCheck `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Equal(t, "up", resp.Components["postgres"].Status)
	assert.Equal(t, "down", resp.Components["kafka"].Status)
	assert.Equal(t, "broker unreachable", resp.Components["kafka"].Error)
}

func TestReadinessWithoutCheckers(t *testing.T) {
	r := newHealthRouter(NewHealthHandler("1.4.0"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready"`)
}

package http

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/internal/config"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
)

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := config.ServerConfig{
		Port:         9090,
		Mode:         "release",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s := NewServer(cfg, http.NotFoundHandler(), logging.NewNopLogger())

	assert.Equal(t, ":9090", s.srv.Addr)
	assert.Equal(t, 5*time.Second, s.srv.ReadTimeout)
	assert.Equal(t, 10*time.Second, s.srv.WriteTimeout)
}

func TestNewServerDefaultsTimeouts(t *testing.T) {
	s := NewServer(config.ServerConfig{Port: 8080}, http.NotFoundHandler(), logging.NewNopLogger())

	assert.Equal(t, 15*time.Second, s.srv.ReadTimeout)
	assert.Equal(t, 15*time.Second, s.srv.WriteTimeout)
}

func TestNewServerEnforcesBodyLimit(t *testing.T) {
	read := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			var tooLarge *http.MaxBytesError
			if stderrors.As(err, &tooLarge) {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	s := NewServer(config.ServerConfig{Port: 8080, MaxBodySize: 16}, read, logging.NewNopLogger())

	small := httptest.NewRecorder()
	s.Handler().ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("tiny")))
	assert.Equal(t, http.StatusOK, small.Code)

	big := httptest.NewRecorder()
	s.Handler().ServeHTTP(big, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, big.Code)
}

func TestStopWithoutStart(t *testing.T) {
	s := NewServer(config.ServerConfig{Port: 0, ShutdownTimeout: time.Second}, http.NotFoundHandler(), logging.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

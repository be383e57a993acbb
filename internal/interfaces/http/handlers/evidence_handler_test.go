package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

type stubStore struct {
	summaries map[rtypes.Type]*evidence.Summary
	gens      map[rtypes.Type][]string
	saved     []*evidence.Summary
	saveErr   error
}

func newStubStore() *stubStore {
	return &stubStore{
		summaries: make(map[rtypes.Type]*evidence.Summary),
		gens:      make(map[rtypes.Type][]string),
	}
}

func (s *stubStore) Save(_ context.Context, sum *evidence.Summary) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved = append(s.saved, sum)
	return "20260826-120000.000", nil
}

func (s *stubStore) Load(_ context.Context, tag rtypes.Type) (*evidence.Summary, error) {
	sum, ok := s.summaries[tag]
	if !ok {
		return nil, errors.New(errors.ErrCodeSummaryNotFound, "no summary published")
	}
	return sum, nil
}

func (s *stubStore) Generations(_ context.Context, tag rtypes.Type) ([]string, error) {
	return s.gens[tag], nil
}

type stubAggregator struct {
	summary *evidence.Summary
	err     error
}

func (s *stubAggregator) Aggregate(_ context.Context, _ reaction.RecordSource, _ rtypes.Type) (*evidence.Summary, error) {
	return s.summary, s.err
}

type stubRecords struct{}

func (stubRecords) Stream(_ context.Context, _ func(reaction.Record) error) error { return nil }

func newEvidenceRouter(store evidence.SummaryStore, agg Aggregating, records reaction.RecordSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewEvidenceHandler(store, agg, records, nil)
	r.GET("/api/v1/evidence/:tag", h.Get)
	r.GET("/api/v1/evidence/:tag/generations", h.Generations)
	r.POST("/api/v1/evidence/:tag/refresh", h.Refresh)
	return r
}

func ullmannSummary() *evidence.Summary {
	return &evidence.Summary{
		Meta: evidence.Meta{
			Tag:          "Ullmann",
			AnalyzedRows: 412,
			Fingerprint:  "fp-ullmann-1",
		},
	}
}

func TestGetRejectsUnknownTag(t *testing.T) {
	r := newEvidenceRouter(newStubStore(), &stubAggregator{}, stubRecords{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/evidence/Frobnicate", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), errors.ErrCodeReactionTypeUnknown.String())
}

func TestGetReturnsLatestSummary(t *testing.T) {
	store := newStubStore()
	store.summaries[rtypes.TypeUllmann] = ullmannSummary()
	r := newEvidenceRouter(store, &stubAggregator{}, stubRecords{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/evidence/Ullmann", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Meta evidence.Meta `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ullmann", resp.Data.Meta.Tag)
	assert.Equal(t, 412, resp.Data.Meta.AnalyzedRows)
}

func TestGetMissingSummaryReturns404(t *testing.T) {
	r := newEvidenceRouter(newStubStore(), &stubAggregator{}, stubRecords{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/evidence/Suzuki", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), errors.ErrCodeSummaryNotFound.String())
}

func TestGenerationsEmptyIsAList(t *testing.T) {
	r := newEvidenceRouter(newStubStore(), &stubAggregator{}, stubRecords{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/evidence/Suzuki/generations", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Tag         string   `json:"tag"`
			Generations []string `json:"generations"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Suzuki", resp.Data.Tag)
	assert.NotNil(t, resp.Data.Generations)
	assert.Empty(t, resp.Data.Generations)
}

func TestRefreshPublishesNewGeneration(t *testing.T) {
	store := newStubStore()
	agg := &stubAggregator{summary: ullmannSummary()}
	r := newEvidenceRouter(store, agg, stubRecords{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/evidence/Ullmann/refresh", nil))

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.saved, 1)

	var resp struct {
		Data struct {
			Tag          string `json:"tag"`
			Generation   string `json:"generation"`
			Fingerprint  string `json:"fingerprint"`
			AnalyzedRows int    `json:"analyzed_rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ullmann", resp.Data.Tag)
	assert.Equal(t, "20260826-120000.000", resp.Data.Generation)
	assert.Equal(t, "fp-ullmann-1", resp.Data.Fingerprint)
	assert.Equal(t, 412, resp.Data.AnalyzedRows)
}

func TestRefreshWithoutRecordSource(t *testing.T) {
	r := newEvidenceRouter(newStubStore(), &stubAggregator{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/evidence/Ullmann/refresh", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), errors.ErrCodeDatasetUnavailable.String())
}

func TestRefreshSurfacesAggregationFailure(t *testing.T) {
	agg := &stubAggregator{err: errors.New(errors.ErrCodeAggregationFailed, "record stream truncated")}
	r := newEvidenceRouter(newStubStore(), agg, stubRecords{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/evidence/Ullmann/refresh", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), errors.ErrCodeAggregationFailed.String())
}

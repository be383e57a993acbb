package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// Aggregating is the evidence-harvest surface the handler depends on.
type Aggregating interface {
	Aggregate(ctx context.Context, src reaction.RecordSource, tag rtypes.Type) (*evidence.Summary, error)
}

// EvidenceHandler serves evidence summary inspection and regeneration.
type EvidenceHandler struct {
	store      evidence.SummaryStore
	aggregator Aggregating
	records    reaction.RecordSource
	logger     logging.Logger
}

// NewEvidenceHandler wires the handler onto the store and record source.
func NewEvidenceHandler(store evidence.SummaryStore, aggregator Aggregating, records reaction.RecordSource, log logging.Logger) *EvidenceHandler {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &EvidenceHandler{
		store:      store,
		aggregator: aggregator,
		records:    records,
		logger:     log.Named("evidence_handler"),
	}
}

// tagParam resolves the :tag path parameter to a known reaction type.
func tagParam(c *gin.Context) (rtypes.Type, bool) {
	tag := rtypes.ParseType(c.Param("tag"))
	if tag == rtypes.TypeUnknown {
		respondError(c, errors.New(errors.ErrCodeReactionTypeUnknown, "unknown reaction type").
			WithDetail("tag="+c.Param("tag")))
		return tag, false
	}
	return tag, true
}

// Get handles GET /api/v1/evidence/:tag — the latest published summary.
func (h *EvidenceHandler) Get(c *gin.Context) {
	tag, ok := tagParam(c)
	if !ok {
		return
	}
	sum, err := h.store.Load(c.Request.Context(), tag)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, sum)
}

// Generations handles GET /api/v1/evidence/:tag/generations.
func (h *EvidenceHandler) Generations(c *gin.Context) {
	tag, ok := tagParam(c)
	if !ok {
		return
	}
	gens, err := h.store.Generations(c.Request.Context(), tag)
	if err != nil {
		respondError(c, err)
		return
	}
	if gens == nil {
		gens = []string{}
	}
	respond(c, http.StatusOK, gin.H{"tag": tag.String(), "generations": gens})
}

// Refresh handles POST /api/v1/evidence/:tag/refresh — re-aggregates the
// tag's partition from the record source and publishes a new generation.
func (h *EvidenceHandler) Refresh(c *gin.Context) {
	tag, ok := tagParam(c)
	if !ok {
		return
	}
	if h.records == nil {
		respondError(c, errors.New(errors.ErrCodeDatasetUnavailable, "no record source configured"))
		return
	}

	sum, err := h.aggregator.Aggregate(c.Request.Context(), h.records, tag)
	if err != nil {
		h.logger.Error("aggregation failed", logging.String("tag", tag.String()), logging.Err(err))
		respondError(c, err)
		return
	}

	gen, err := h.store.Save(c.Request.Context(), sum)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("summary regenerated",
		logging.String("tag", tag.String()),
		logging.String("generation", gen),
		logging.Int("analyzed_rows", sum.Meta.AnalyzedRows))
	respond(c, http.StatusCreated, gin.H{
		"tag":           tag.String(),
		"generation":    gen,
		"fingerprint":   sum.Meta.Fingerprint,
		"analyzed_rows": sum.Meta.AnalyzedRows,
	})
}

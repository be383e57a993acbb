package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reactwise/condrec/internal/domain/recommend"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// Recommender is the engine surface the handler depends on.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Export, error)
}

// RecommendHandler serves condition recommendation requests.
type RecommendHandler struct {
	engine Recommender
	logger logging.Logger
}

// NewRecommendHandler wires the handler onto an engine.
func NewRecommendHandler(engine Recommender, log logging.Logger) *RecommendHandler {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &RecommendHandler{engine: engine, logger: log.Named("recommend_handler")}
}

// recommendRequest is the POST body.  reaction_type is an optional selector
// overriding auto-detection.
type recommendRequest struct {
	ReactionSMILES   string `json:"reaction_smiles" binding:"required"`
	ReactionType     string `json:"reaction_type"`
	ReferenceLigand  string `json:"reference_ligand"`
	ReferenceSolvent string `json:"reference_solvent"`
	ReferenceBase    string `json:"reference_base"`
	TopN             int    `json:"top_n"`
}

// Create handles POST /api/v1/recommendations.
func (h *RecommendHandler) Create(c *gin.Context) {
	var body recommendRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, "reaction_smiles is required")
		return
	}
	if body.TopN < 0 {
		respondValidation(c, "top_n must be non-negative")
		return
	}

	export, err := h.engine.Recommend(c.Request.Context(), recommend.Request{
		ReactionSMILES:   body.ReactionSMILES,
		ReactionType:     body.ReactionType,
		ReferenceLigand:  body.ReferenceLigand,
		ReferenceSolvent: body.ReferenceSolvent,
		ReferenceBase:    body.ReferenceBase,
		TopN:             body.TopN,
	})
	if err != nil {
		h.logger.Error("recommendation failed", logging.Err(err))
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, export)
}

// reactionTypeInfo is one entry of the supported-types listing.
type reactionTypeInfo struct {
	Name   string `json:"name"`
	Family string `json:"family"`
}

// ListReactionTypes handles GET /api/v1/reaction-types.
func (h *RecommendHandler) ListReactionTypes(c *gin.Context) {
	out := make([]reactionTypeInfo, 0, len(rtypes.KnownTypes))
	for _, t := range rtypes.KnownTypes {
		out = append(out, reactionTypeInfo{
			Name:   t.String(),
			Family: t.ScoringFamily().String(),
		})
	}
	respond(c, http.StatusOK, gin.H{"reaction_types": out})
}

package client

import (
	"context"
	"fmt"
)

// RecommendationsClient calls the recommendation endpoints.
type RecommendationsClient struct {
	client *Client
}

// RecommendRequest is the body of POST /api/v1/recommendations.
type RecommendRequest struct {
	ReactionSMILES   string `json:"reaction_smiles"`
	ReactionType     string `json:"reaction_type,omitempty"`
	ReferenceLigand  string `json:"reference_ligand,omitempty"`
	ReferenceSolvent string `json:"reference_solvent,omitempty"`
	ReferenceBase    string `json:"reference_base,omitempty"`
	TopN             int    `json:"top_n,omitempty"`
}

// Recommendation is the condition recommendation report returned by the API.
// It mirrors the server's export document; fields the caller does not need
// can be ignored.
type Recommendation struct {
	Meta            RecommendationMeta `json:"meta"`
	Input           RecommendationInput `json:"input"`
	Detection       Detection           `json:"detection"`
	Dataset         DatasetInfo         `json:"dataset"`
	Recommendations ReagentSets         `json:"recommendations"`
	TopConditions   []CombinedCondition `json:"top_conditions"`
}

type RecommendationMeta struct {
	GeneratedAt  string `json:"generated_at"`
	AnalysisType string `json:"analysis_type"`
	Status       string `json:"status"`
}

type RecommendationInput struct {
	ReactionSMILES       string `json:"reaction_smiles"`
	SelectedReactionType string `json:"selected_reaction_type"`
}

type Detection struct {
	ReactionType string `json:"reaction_type"`
}

type DatasetInfo struct {
	LigandsAvailable       int      `json:"ligands_available"`
	SolventsAvailable      int      `json:"solvents_available"`
	BasesAvailable         int      `json:"bases_available"`
	ReactionTypesSupported []string `json:"reaction_types_supported"`
	AnalyticsLoaded        bool     `json:"analytics_loaded"`
	AnalyticsGeneration    string   `json:"analytics_generation,omitempty"`
}

type ReagentSets struct {
	Combined []CombinedCondition `json:"combined"`
	Ligands  []ReagentRec        `json:"ligands"`
	Solvents []ReagentRec        `json:"solvents"`
	Bases    []ReagentRec        `json:"bases"`
	Notes    string              `json:"reaction_specific_notes"`
}

type ReagentRec struct {
	Rank            int     `json:"rank"`
	Name            string  `json:"name"`
	Abbreviation    string  `json:"abbreviation,omitempty"`
	Score           float64 `json:"compatibility_score"`
	Suitability     string  `json:"reaction_suitability"`
	EvidenceSupport int     `json:"evidence_support,omitempty"`
	Confidence      string  `json:"confidence"`
}

type CombinedCondition struct {
	Rank                 int     `json:"rank"`
	Ligand               string  `json:"ligand"`
	LigandCompatibility  float64 `json:"ligand_compatibility"`
	Solvent              string  `json:"solvent"`
	SolventCompatibility float64 `json:"solvent_compatibility"`
	CombinedScore        float64 `json:"combined_score"`
	SynergyBonus         float64 `json:"synergy_bonus"`
	Confidence           string  `json:"recommendation_confidence"`
	SuggestedBase        string  `json:"suggested_base,omitempty"`
}

// ReactionType is one entry of the supported-types listing.
type ReactionType struct {
	Name   string `json:"name"`
	Family string `json:"family"`
}

// Create requests condition recommendations for a reaction.
func (rc *RecommendationsClient) Create(ctx context.Context, req RecommendRequest) (*Recommendation, error) {
	if req.ReactionSMILES == "" {
		return nil, fmt.Errorf("reaction_smiles is required")
	}
	var out Recommendation
	if err := rc.client.post(ctx, "/api/v1/recommendations", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReactionTypes returns the reaction types the server supports.
func (rc *RecommendationsClient) ListReactionTypes(ctx context.Context) ([]ReactionType, error) {
	var out struct {
		ReactionTypes []ReactionType `json:"reaction_types"`
	}
	if err := rc.client.get(ctx, "/api/v1/reaction-types", &out); err != nil {
		return nil, err
	}
	return out.ReactionTypes, nil
}

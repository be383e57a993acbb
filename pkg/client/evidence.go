package client

import (
	"context"
	"fmt"
	"net/url"
)

// EvidenceClient calls the evidence summary endpoints.
type EvidenceClient struct {
	client *Client
}

// EvidenceSummary is the published aggregate for one reaction type.
type EvidenceSummary struct {
	Meta         EvidenceMeta           `json:"summary"`
	Top          EvidenceTopLists       `json:"top"`
	NumericStats map[string]NumericStat `json:"numeric_stats"`
}

type EvidenceMeta struct {
	Tag          string `json:"tag"`
	TotalRows    int    `json:"total_rows"`
	AnalyzedRows int    `json:"analyzed_rows"`
	GeneratedAt  string `json:"generated_at"`
	Fingerprint  string `json:"content_fingerprint"`
}

type EvidenceTopLists struct {
	Metals    []TopItem `json:"metals"`
	Ligands   []TopItem `json:"ligands"`
	Bases     []TopItem `json:"bases"`
	Solvents  []TopItem `json:"solvents"`
	Additives []TopItem `json:"additives"`
}

type TopItem struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

type NumericStat struct {
	Median *float64 `json:"median"`
	P25    *float64 `json:"p25"`
	P75    *float64 `json:"p75"`
	N      int      `json:"n"`
}

// RefreshResult reports a freshly published summary generation.
type RefreshResult struct {
	Tag          string `json:"tag"`
	Generation   string `json:"generation"`
	Fingerprint  string `json:"fingerprint"`
	AnalyzedRows int    `json:"analyzed_rows"`
}

func evidencePath(tag, suffix string) string {
	return "/api/v1/evidence/" + url.PathEscape(tag) + suffix
}

// Get fetches the latest published summary for a reaction type.
func (ec *EvidenceClient) Get(ctx context.Context, tag string) (*EvidenceSummary, error) {
	if tag == "" {
		return nil, fmt.Errorf("tag is required")
	}
	var out EvidenceSummary
	if err := ec.client.get(ctx, evidencePath(tag, ""), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Generations lists the retained summary generations for a reaction type,
// newest first.
func (ec *EvidenceClient) Generations(ctx context.Context, tag string) ([]string, error) {
	if tag == "" {
		return nil, fmt.Errorf("tag is required")
	}
	var out struct {
		Tag         string   `json:"tag"`
		Generations []string `json:"generations"`
	}
	if err := ec.client.get(ctx, evidencePath(tag, "/generations"), &out); err != nil {
		return nil, err
	}
	return out.Generations, nil
}

// Refresh re-aggregates the reaction type's partition and publishes a new
// summary generation.
func (ec *EvidenceClient) Refresh(ctx context.Context, tag string) (*RefreshResult, error) {
	if tag == "" {
		return nil, fmt.Errorf("tag is required")
	}
	var out RefreshResult
	if err := ec.client.post(ctx, evidencePath(tag, "/refresh"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationsCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/recommendations", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Suzuki", body["reaction_type"])
		assert.Equal(t, float64(3), body["top_n"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"meta":      map[string]string{"analysis_type": "enhanced", "status": "ok"},
				"detection": map[string]string{"reaction_type": "Suzuki"},
				"recommendations": map[string]interface{}{
					"ligands": []map[string]interface{}{
						{"rank": 1, "name": "SPhos", "compatibility_score": 9.2, "confidence": "high"},
					},
				},
			},
		})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	rec, err := c.Recommendations().Create(context.Background(), RecommendRequest{
		ReactionSMILES: "c1ccccc1Br.OB(O)c1ccccc1>>c1ccc(-c2ccccc2)cc1",
		ReactionType:   "Suzuki",
		TopN:           3,
	})
	require.NoError(t, err)

	assert.Equal(t, "enhanced", rec.Meta.AnalysisType)
	assert.Equal(t, "Suzuki", rec.Detection.ReactionType)
	require.Len(t, rec.Recommendations.Ligands, 1)
	assert.Equal(t, "SPhos", rec.Recommendations.Ligands[0].Name)
	assert.InDelta(t, 9.2, rec.Recommendations.Ligands[0].Score, 1e-9)
}

func TestRecommendationsCreateRequiresSMILES(t *testing.T) {
	c, err := NewClient("http://localhost:8080")
	require.NoError(t, err)

	_, err = c.Recommendations().Create(context.Background(), RecommendRequest{})
	assert.Error(t, err)
}

func TestListReactionTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/reaction-types", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"reaction_types": []map[string]string{
					{"name": "Suzuki", "family": "cross-coupling"},
					{"name": "Hydrogenation", "family": "hydrogenation"},
				},
			},
		})
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)

	types, err := c.Recommendations().ListReactionTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Suzuki", types[0].Name)
	assert.Equal(t, "cross-coupling", types[0].Family)
}

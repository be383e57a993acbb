package evidence

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

func sampleSummary(tag string, fingerprint string) *Summary {
	return &Summary{
		Meta: Meta{
			Tag:          tag,
			TotalRows:    3,
			AnalyzedRows: 3,
			GeneratedAt:  "2026-08-26T10:00:00Z",
			Fingerprint:  fingerprint,
		},
		Top: TopLists{
			Ligands:   []TopItem{{Name: "phen", Count: 2, Pct: 0.6667}},
			Solvents:  []TopItem{{Name: "dmso", Count: 2, Pct: 0.6667}},
			Bases:     []TopItem{{Name: "k2co3", Count: 2, Pct: 0.6667}},
			Metals:    []TopItem{{Name: "cu", Count: 3, Pct: 1.0}},
			Additives: []TopItem{},
		},
		NumericStats: map[string]NumericStat{
			"temperature_c": {Median: ptr(120), P25: ptr(100), P75: ptr(120), N: 3},
		},
		Notes: Manifest{InputRows: 4, MatchedRows: 3, SkippedNumeric: map[string]int{}},
	}
}

func TestFSStoreRoundTrip(t *testing.T) {
	t.Parallel()

	st := NewFSStore(t.TempDir(), 5, nil)
	ctx := context.Background()

	want := sampleSummary("Ullmann", "abc123")
	gen, err := st.Save(ctx, want)
	require.NoError(t, err)
	assert.NotEmpty(t, gen)

	got, err := st.Load(ctx, rtypes.TypeUllmann)
	require.NoError(t, err)
	assert.Equal(t, want.Meta, got.Meta)
	assert.Equal(t, want.Top, got.Top)

	gens, err := st.Generations(ctx, rtypes.TypeUllmann)
	require.NoError(t, err)
	assert.Equal(t, []string{gen}, gens)
}

func TestFSStoreLoadMissing(t *testing.T) {
	t.Parallel()

	st := NewFSStore(t.TempDir(), 5, nil)
	_, err := st.Load(context.Background(), rtypes.TypeUllmann)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSummaryNotFound))
}

func TestFSStoreLoadCorrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tagDir := filepath.Join(dir, "Ullmann")
	require.NoError(t, os.MkdirAll(tagDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tagDir, "latest.json"), []byte("{broken"), 0o644))

	st := NewFSStore(dir, 5, nil)
	_, err := st.Load(context.Background(), rtypes.TypeUllmann)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSummaryCorrupt))
}

func TestFSStorePrunesOldGenerations(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := NewFSStore(dir, 2, nil)
	ctx := context.Background()

	var last string
	for i := 0; i < 4; i++ {
		gen, err := st.Save(ctx, sampleSummary("Ullmann", "fp"))
		require.NoError(t, err)
		last = gen
		time.Sleep(2 * time.Millisecond) // generation ids have millisecond precision
	}

	gens, err := st.Generations(ctx, rtypes.TypeUllmann)
	require.NoError(t, err)
	assert.Len(t, gens, 2)
	assert.Equal(t, last, gens[len(gens)-1])

	// latest.json still resolves after pruning.
	got, err := st.Load(ctx, rtypes.TypeUllmann)
	require.NoError(t, err)
	assert.Equal(t, "Ullmann", got.Meta.Tag)
}

func TestFSStoreRejectsMissingTag(t *testing.T) {
	t.Parallel()

	st := NewFSStore(t.TempDir(), 5, nil)
	_, err := st.Save(context.Background(), &Summary{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeManifestInvalid))
}

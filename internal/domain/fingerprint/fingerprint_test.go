package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/pkg/errors"
)

func TestNewGeneratorValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		numBits int
		radius  int
		wantErr bool
	}{
		{"defaults", DefaultNumBits, DefaultRadius, false},
		{"small but valid", 64, 1, false},
		{"not a multiple of 8", 1001, 2, true},
		{"multiple of 8 but not power of two", 1000, 2, false},
		{"too short", 32, 2, true},
		{"radius zero", 2048, 0, true},
		{"radius too large", 2048, 6, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewGenerator(tt.numBits, tt.radius)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrCodeFingerprintSizeInvalid))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, g)
		})
	}
}

func TestCircularGenerate(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(DefaultNumBits, DefaultRadius)
	require.NoError(t, err)

	fp1, err := g.Generate("Brc1ccccc1")
	require.NoError(t, err)
	assert.Equal(t, DefaultNumBits, fp1.Length)
	assert.Positive(t, fp1.NumOnBits)

	// Deterministic.
	fp2, err := g.Generate("Brc1ccccc1")
	require.NoError(t, err)
	assert.Equal(t, fp1.Bits, fp2.Bits)

	// Empty and atom-free input fail.
	_, err = g.Generate("   ")
	assert.True(t, errors.IsCode(err, errors.ErrCodeFingerprintFailed))
	_, err = g.Generate("12345")
	assert.True(t, errors.IsCode(err, errors.ErrCodeFingerprintFailed))
}

func TestTanimoto(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(DefaultNumBits, DefaultRadius)
	require.NoError(t, err)

	benzene, err := g.Generate("c1ccccc1")
	require.NoError(t, err)
	bromobenzene, err := g.Generate("Brc1ccccc1")
	require.NoError(t, err)
	octane, err := g.Generate("CCCCCCCC")
	require.NoError(t, err)

	self, err := Tanimoto(benzene, benzene)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, self, 1e-9)

	near, err := Tanimoto(benzene, bromobenzene)
	require.NoError(t, err)
	far, err := Tanimoto(benzene, octane)
	require.NoError(t, err)
	assert.Greater(t, near, far, "halogenated benzene should sit closer to benzene than an alkane")
	assert.GreaterOrEqual(t, near, 0.0)
	assert.LessOrEqual(t, near, 1.0)

	// Dimension mismatch is an error.
	small := New(make([]byte, 8), 64)
	_, err = Tanimoto(benzene, small)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFingerprintSizeInvalid))

	// Two empty fingerprints count as identical.
	e1, e2 := New(make([]byte, 8), 64), New(make([]byte, 8), 64)
	sim, err := Tanimoto(e1, e2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestTokenHashFallback(t *testing.T) {
	t.Parallel()

	g := NewTokenHash(DefaultNumBits)

	// Accepts text the structural generator rejects.
	fp, err := g.Generate("12345 !! not chemistry")
	require.NoError(t, err)
	assert.Positive(t, fp.NumOnBits)

	// Deterministic and case-insensitive.
	a, err := g.Generate("Brc1ccccc1")
	require.NoError(t, err)
	b, err := g.Generate("brc1CCCCc1")
	require.NoError(t, err)
	assert.Equal(t, a.Bits, b.Bits)

	_, err = g.Generate("")
	assert.True(t, errors.IsCode(err, errors.ErrCodeFingerprintFailed))
}

func TestReactionSimilarity(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(DefaultNumBits, DefaultRadius)
	require.NoError(t, err)

	// Identical reactions score 1.
	sim, err := ReactionSimilarity(g,
		"Brc1ccccc1.Oc1ccccc1", "c1ccc(Oc2ccccc2)cc1",
		"Brc1ccccc1.Oc1ccccc1", "c1ccc(Oc2ccccc2)cc1")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)

	// A related reaction scores above an unrelated one.
	related, err := ReactionSimilarity(g,
		"Brc1ccccc1.Oc1ccccc1", "c1ccc(Oc2ccccc2)cc1",
		"Ic1ccccc1.Oc1ccccc1", "c1ccc(Oc2ccccc2)cc1")
	require.NoError(t, err)
	unrelated, err := ReactionSimilarity(g,
		"Brc1ccccc1.Oc1ccccc1", "c1ccc(Oc2ccccc2)cc1",
		"CCCCCCCC", "CCCCCCCC")
	require.NoError(t, err)
	assert.Greater(t, related, unrelated)
}

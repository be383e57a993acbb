package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/pkg/errors"
)

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	t.Run("full reaction", func(t *testing.T) {
		t.Parallel()
		enc, err := ParseEncoding("Brc1ccccc1.NCC >> CCNc1ccccc1")
		require.NoError(t, err)
		assert.Equal(t, "Brc1ccccc1.NCC", enc.Reactants)
		assert.Equal(t, "CCNc1ccccc1", enc.Products)
		assert.True(t, enc.Complete())
		assert.True(t, enc.Plausible())
		assert.Equal(t, []string{"Brc1ccccc1", "NCC"}, enc.ReactantMolecules())
		assert.Equal(t, []string{"CCNc1ccccc1"}, enc.ProductMolecules())
	})

	t.Run("single molecule", func(t *testing.T) {
		t.Parallel()
		enc, err := ParseEncoding("c1ccccc1")
		require.NoError(t, err)
		assert.False(t, enc.Complete())
		assert.Empty(t, enc.Products)
		assert.True(t, enc.Plausible())
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		_, err := ParseEncoding("   ")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeReactionEmptyInput))
	})

	t.Run("garbage is parsed but not plausible", func(t *testing.T) {
		t.Parallel()
		enc, err := ParseEncoding("!!!not a molecule!!!")
		require.NoError(t, err)
		assert.False(t, enc.Plausible())
	})

	t.Run("empty product side", func(t *testing.T) {
		t.Parallel()
		enc, err := ParseEncoding("CCO>>")
		require.NoError(t, err)
		assert.Equal(t, "CCO", enc.Reactants)
		assert.False(t, enc.Complete())
	})
}

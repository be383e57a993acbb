package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reactwise/condrec/internal/domain/reaction"
)

func TestRecordRowTrimsAndNulls(t *testing.T) {
	row := recordRow(reaction.Record{
		ID:        " RX-1 ",
		RawType:   "Suzuki Coupling",
		Reactants: "Brc1ccccc1.OB(O)c1ccccc1",
		Products:  "c1ccc(-c2ccccc2)cc1",
		Ligands:   []string{"XPhos"},
		Solvents:  []string{"THF", "Water"},
		TimeRaw:   "  ",
		YieldRaw:  "92",
	})

	assert.Equal(t, "RX-1", row[0])
	assert.Equal(t, "Suzuki Coupling", row[1])
	assert.Equal(t, []string{}, row[4], "missing catalysts become an empty array")
	assert.Equal(t, []string{"XPhos"}, row[5])
	assert.Equal(t, []string{"THF", "Water"}, row[6])
	assert.Nil(t, row[8], "blank temperature stored as NULL")
	assert.Nil(t, row[9], "whitespace-only time stored as NULL")
	assert.Equal(t, "92", row[10])
	assert.Nil(t, row[11])
}

func TestNonNilNeverReturnsNil(t *testing.T) {
	assert.NotNil(t, nonNil(nil))
	assert.Empty(t, nonNil(nil))
	assert.Equal(t, []string{"DMF"}, nonNil([]string{"DMF"}))
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", deref(nil))
	v := "80-100"
	assert.Equal(t, "80-100", deref(&v))
}

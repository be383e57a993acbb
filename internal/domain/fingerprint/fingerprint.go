// Package fingerprint computes fixed-length structural fingerprints for
// molecular encodings and the Tanimoto similarity between them.  It backs the
// cross-dataset similarity engine that takes over when a reaction cannot be
// classified.
package fingerprint

import (
	"math/bits"

	"github.com/reactwise/condrec/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fingerprint Structure
// ─────────────────────────────────────────────────────────────────────────────

// Fingerprint is a packed bit vector: bit i lives in byte i/8 at position i%8.
type Fingerprint struct {
	Bits      []byte `json:"bits"`
	Length    int    `json:"length"`
	NumOnBits int    `json:"num_on_bits"`
}

// New constructs a Fingerprint from packed bit data, computing the popcount.
func New(data []byte, length int) *Fingerprint {
	on := 0
	for _, b := range data {
		on += bits.OnesCount8(b)
	}
	return &Fingerprint{Bits: data, Length: length, NumOnBits: on}
}

// GetBit reports whether the bit at index is set.
func (fp *Fingerprint) GetBit(index int) bool {
	if index < 0 || index >= fp.Length {
		return false
	}
	return fp.Bits[index/8]&(1<<uint(index%8)) != 0
}

func setBit(data []byte, index int) {
	data[index/8] |= 1 << uint(index%8)
}

// ─────────────────────────────────────────────────────────────────────────────
// Tanimoto Similarity
// ─────────────────────────────────────────────────────────────────────────────

// Tanimoto computes |A∩B| / |A∪B| over the two bit sets.  Two empty
// fingerprints are defined as identical (1.0).  Dimension mismatch is an
// error, never a silent truncation.
func Tanimoto(a, b *Fingerprint) (float64, error) {
	if a == nil || b == nil {
		return 0, errors.New(errors.ErrCodeSimilarityFailed, "nil fingerprint")
	}
	if a.Length != b.Length || len(a.Bits) != len(b.Bits) {
		return 0, errors.New(errors.ErrCodeFingerprintSizeInvalid, "fingerprint dimensions differ")
	}

	var inter, union int
	for i := range a.Bits {
		inter += bits.OnesCount8(a.Bits[i] & b.Bits[i])
		union += bits.OnesCount8(a.Bits[i] | b.Bits[i])
	}
	if union == 0 {
		return 1.0, nil
	}
	return float64(inter) / float64(union), nil
}

// ReactionSimilarity is the mean of the reactant-side and product-side
// Tanimoto similarities between two reactions.
func ReactionSimilarity(g Generator, aReactants, aProducts, bReactants, bProducts string) (float64, error) {
	ar, err := g.Generate(aReactants)
	if err != nil {
		return 0, err
	}
	br, err := g.Generate(bReactants)
	if err != nil {
		return 0, err
	}
	reactSim, err := Tanimoto(ar, br)
	if err != nil {
		return 0, err
	}

	ap, err := g.Generate(aProducts)
	if err != nil {
		return 0, err
	}
	bp, err := g.Generate(bProducts)
	if err != nil {
		return 0, err
	}
	prodSim, err := Tanimoto(ap, bp)
	if err != nil {
		return 0, err
	}
	return (reactSim + prodSim) / 2, nil
}

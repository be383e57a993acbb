package fingerprint

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/reactwise/condrec/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Generators
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultNumBits is the fingerprint length used across the engine.
	DefaultNumBits = 2048
	// DefaultRadius is the circular neighborhood radius.
	DefaultRadius = 2
)

// Generator produces a fingerprint for one molecule-side encoding.
type Generator interface {
	Generate(encoding string) (*Fingerprint, error)
	// Name identifies the algorithm for caching and manifests.
	Name() string
}

// NewGenerator validates the parameters and returns the circular generator.
func NewGenerator(numBits, radius int) (Generator, error) {
	if numBits < 64 || numBits%8 != 0 {
		return nil, errors.New(errors.ErrCodeFingerprintSizeInvalid,
			"fingerprint length must be a multiple of 8 and at least 64")
	}
	if radius < 1 || radius > 5 {
		return nil, errors.New(errors.ErrCodeFingerprintSizeInvalid,
			"fingerprint radius must be between 1 and 5")
	}
	return &Circular{numBits: numBits, radius: radius}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Circular Generator
// ─────────────────────────────────────────────────────────────────────────────

// Circular is a simplified circular-substructure fingerprint: for every atom
// token it hashes the token together with its neighborhood window at each
// radius up to the configured maximum.  It approximates a Morgan fingerprint
// without a full structure parser; what matters for ranking is that similar
// notation yields overlapping bit sets deterministically.
type Circular struct {
	numBits int
	radius  int
}

// atomToken matches two-letter organic-subset atoms before single letters.
var atomToken = regexp.MustCompile(`Cl|Br|Si|Se|[BCNOPSFIbcnops]`)

// Generate implements Generator.
func (c *Circular) Generate(encoding string) (*Fingerprint, error) {
	if strings.TrimSpace(encoding) == "" {
		return nil, errors.New(errors.ErrCodeFingerprintFailed, "empty encoding")
	}

	atoms := atomToken.FindAllString(encoding, -1)
	if len(atoms) == 0 {
		return nil, errors.New(errors.ErrCodeFingerprintFailed, "no atom tokens in encoding")
	}

	data := make([]byte, c.numBits/8)
	for i := range atoms {
		for r := 0; r <= c.radius; r++ {
			lo := max(0, i-r)
			hi := min(len(atoms), i+r+1)
			env := fmt.Sprintf("%d:%s", r, strings.Join(atoms[lo:hi], ""))
			setBit(data, int(sha256Hash(env)%uint64(c.numBits)))
		}
	}
	return New(data, c.numBits), nil
}

// Name implements Generator.
func (c *Circular) Name() string {
	return fmt.Sprintf("circular-r%d-%db", c.radius, c.numBits)
}

func sha256Hash(s string) uint64 {
	sum := sha256.Sum256([]byte(s))
	return binary.BigEndian.Uint64(sum[:8])
}

// ─────────────────────────────────────────────────────────────────────────────
// Token-Hash Fallback
// ─────────────────────────────────────────────────────────────────────────────

// TokenHash is the degraded-mode generator: it hashes normalized character
// n-grams of the raw text with FNV-1a.  Lower quality than Circular, but it
// accepts any text and preserves the ranking contract, so the similarity
// engine keeps the same output shape when structural fingerprinting cannot be
// applied.
type TokenHash struct {
	numBits int
}

// NewTokenHash constructs the fallback generator.
func NewTokenHash(numBits int) *TokenHash {
	if numBits < 64 || numBits%8 != 0 {
		numBits = DefaultNumBits
	}
	return &TokenHash{numBits: numBits}
}

// Generate implements Generator.  It never fails on non-empty input.
func (t *TokenHash) Generate(encoding string) (*Fingerprint, error) {
	s := strings.ToLower(strings.TrimSpace(encoding))
	if s == "" {
		return nil, errors.New(errors.ErrCodeFingerprintFailed, "empty encoding")
	}

	data := make([]byte, t.numBits/8)
	const n = 3
	if len(s) < n {
		setBit(data, int(fnvHash(s)%uint64(t.numBits)))
	} else {
		for i := 0; i+n <= len(s); i++ {
			setBit(data, int(fnvHash(s[i:i+n])%uint64(t.numBits)))
		}
	}
	return New(data, t.numBits), nil
}

// Name implements Generator.
func (t *TokenHash) Name() string {
	return fmt.Sprintf("tokenhash-%db", t.numBits)
}

func fnvHash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

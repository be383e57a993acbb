package reaction

import (
	"regexp"
	"strings"

	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Reaction Type Classifier
// ─────────────────────────────────────────────────────────────────────────────

var (
	halogenPattern = regexp.MustCompile(`Br|Cl|I`)
	boronPattern   = regexp.MustCompile(`B\(O\)`)
	// Nitrogen outside an aromatic ring (lowercase n is aromatic).
	nitrogenPattern = regexp.MustCompile(`N[^a-z]|N$`)
	// Phenol/alkoxide oxygen, the nucleophile motif of Ullmann ether
	// synthesis.  Matches hydroxyl written leading (Oc1ccccc1), branched
	// (c1ccc(O)cc1), or as a bracket atom.
	arylOxygenPattern = regexp.MustCompile(`Oc|\(O\)|\[OH\]`)
)

// Classifier maps a reaction encoding to a reaction-type tag via ordered
// structural pattern tests.  It never fails: inputs matching no rule produce
// the unknown sentinel, which routes the request to the similarity fallback.
type Classifier struct {
	log logging.Logger
}

// NewClassifier constructs a Classifier.  A nil logger uses the nop logger.
func NewClassifier(log logging.Logger) *Classifier {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Classifier{log: log.Named("classifier")}
}

// Resolve determines the effective reaction type for a request.  A caller
// supplied selector other than the auto-detect sentinel wins when it maps to
// a known tag; otherwise the encoding is classified structurally.
func (c *Classifier) Resolve(enc Encoding, selector string) rtypes.Type {
	if !isAutoDetect(selector) {
		if t := rtypes.ParseType(selector); t.IsKnown() {
			c.log.Debug("reaction type taken from selector",
				logging.String("selector", selector),
				logging.String("type", t.String()))
			return t
		}
		c.log.Warn("unrecognized reaction type selector, falling back to detection",
			logging.String("selector", selector))
	}
	return c.Classify(enc)
}

func isAutoDetect(selector string) bool {
	s := strings.ToLower(strings.TrimSpace(selector))
	return s == "" || s == "auto-detect" || s == "auto detect reaction type"
}

// Classify runs the ordered pattern tests.  Sub-variant motifs are tested
// before their generic parent so the most specific tag wins.
func (c *Classifier) Classify(enc Encoding) rtypes.Type {
	if !enc.Complete() {
		return rtypes.TypeUnknown
	}

	reactants, products := enc.Reactants, enc.Products

	switch {
	case isSuzukiPattern(reactants):
		return rtypes.TypeSuzuki
	case isNegishiPattern(reactants):
		return rtypes.TypeNegishi
	case isStillePattern(reactants):
		return rtypes.TypeStille
	case isSonogashiraPattern(reactants, products):
		return rtypes.TypeSonogashira
	case isUllmannEtherPattern(reactants, products):
		return rtypes.TypeUllmann
	case isBuchwaldHartwigPattern(reactants, products):
		return rtypes.TypeBuchwaldHartwig
	case isHeckPattern(reactants, products):
		return rtypes.TypeHeck
	case isCrossCouplingPattern(reactants):
		return rtypes.TypeCrossCoupling
	case isHydrogenationPattern(reactants, products):
		return rtypes.TypeHydrogenation
	case isCarbonylationPattern(reactants, products):
		return rtypes.TypeCarbonylation
	case isCHActivationPattern(reactants, products):
		return rtypes.TypeCHActivation
	default:
		return rtypes.TypeUnknown
	}
}

// isSuzukiPattern requires both an aryl/alkyl halide and a boronic acid motif
// among the reactants.
func isSuzukiPattern(reactants string) bool {
	return halogenPattern.MatchString(reactants) && boronPattern.MatchString(reactants)
}

// isUllmannEtherPattern looks for the halide + phenol nucleophile motif
// without a boron partner (which would be Suzuki) on the reactant side, with
// the halide consumed and the oxygen retained on the product side.
func isUllmannEtherPattern(reactants, products string) bool {
	if boronPattern.MatchString(reactants) || !halogenPattern.MatchString(reactants) {
		return false
	}
	if !arylOxygenPattern.MatchString(reactants) {
		return false
	}
	return !halogenPattern.MatchString(products) && strings.Contains(products, "O")
}

// isNegishiPattern requires a halide partner and an organozinc reagent.
func isNegishiPattern(reactants string) bool {
	return halogenPattern.MatchString(reactants) && strings.Contains(reactants, "[Zn")
}

// isStillePattern requires a halide partner and an organostannane reagent.
func isStillePattern(reactants string) bool {
	return halogenPattern.MatchString(reactants) && strings.Contains(reactants, "[Sn")
}

// isSonogashiraPattern requires a halide plus an alkyne partner, with the
// triple bond surviving into the product (a consumed alkyne is a reduction).
func isSonogashiraPattern(reactants, products string) bool {
	if boronPattern.MatchString(reactants) || !halogenPattern.MatchString(reactants) {
		return false
	}
	return strings.Contains(reactants, "C#C") && strings.Contains(products, "C#C")
}

// isBuchwaldHartwigPattern requires an aryl halide and an amine nucleophile
// without a boron partner, with the nitrogen retained in the product.
func isBuchwaldHartwigPattern(reactants, products string) bool {
	if boronPattern.MatchString(reactants) || !halogenPattern.MatchString(reactants) {
		return false
	}
	if !strings.Contains(reactants, "c") || !nitrogenPattern.MatchString(reactants) {
		return false
	}
	return strings.ContainsAny(products, "Nn")
}

// isHeckPattern requires a halide plus an alkene partner with the alkene
// retained in the product, and no boron or amine nucleophile competing.
func isHeckPattern(reactants, products string) bool {
	if boronPattern.MatchString(reactants) || nitrogenPattern.MatchString(reactants) {
		return false
	}
	if !halogenPattern.MatchString(reactants) || !strings.Contains(reactants, "C=C") {
		return false
	}
	return strings.Contains(products, "C=C")
}

// isCrossCouplingPattern matches the generic halide + organometallic or
// halide + amine nucleophile combination.
func isCrossCouplingPattern(reactants string) bool {
	hasHalogen := halogenPattern.MatchString(reactants)
	hasBoron := boronPattern.MatchString(reactants)
	hasNitrogen := nitrogenPattern.MatchString(reactants)
	return (hasHalogen && hasBoron) || (hasHalogen && hasNitrogen)
}

// isHydrogenationPattern checks for a net loss of unsaturation.
func isHydrogenationPattern(reactants, products string) bool {
	return unsaturation(products) < unsaturation(reactants)
}

func unsaturation(side string) int {
	return strings.Count(side, "=") + strings.Count(side, "#")*2
}

// isCarbonylationPattern checks for carbonyl gain, the CO-insertion signature.
func isCarbonylationPattern(reactants, products string) bool {
	return carbonyls(products) > carbonyls(reactants)
}

func carbonyls(side string) int {
	return strings.Count(side, "C=O") + strings.Count(side, "C(=O)")
}

// isCHActivationPattern checks for a marked gain in carbon skeleton
// complexity, the crude signature of an arylation without a pre-installed
// leaving group.
func isCHActivationPattern(reactants, products string) bool {
	ra := strings.Count(reactants, "c") + strings.Count(reactants, "C")
	pa := strings.Count(products, "c") + strings.Count(products, "C")
	return float64(pa) > float64(ra)*1.2
}

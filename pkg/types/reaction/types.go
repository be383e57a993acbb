// Package reaction defines the shared vocabulary of the condrec engine:
// reaction-type tags, reagent roles, and confidence levels.  These types cross
// layer boundaries (domain, interfaces, clients) and therefore live in pkg/
// rather than internal/.
package reaction

import "strings"

// Type is a canonical reaction-type tag.  Scoring tables and evidence
// summaries are keyed by these tags, so their spelling is part of the
// on-disk and over-the-wire contract.
type Type string

// Scoring family tags.  Compatibility vectors carry one score per family,
// in the order given by ScoringFamilies.
const (
	TypeCrossCoupling Type = "Cross-Coupling"
	TypeHydrogenation Type = "Hydrogenation"
	TypeMetathesis    Type = "Metathesis"
	TypeCHActivation  Type = "C-H_Activation"
	TypeCarbonylation Type = "Carbonylation"
)

// Sub-variant tags.  Each maps to a scoring family via ScoringFamily but is
// preserved as-is in evidence summaries and API responses, so Ullmann data
// never mixes with generic cross-coupling data.
const (
	TypeSuzuki           Type = "Suzuki"
	TypeBuchwaldHartwig  Type = "Buchwald-Hartwig"
	TypeUllmann          Type = "Ullmann"
	TypeHeck             Type = "Heck"
	TypeSonogashira      Type = "Sonogashira"
	TypeNegishi          Type = "Negishi"
	TypeStille           Type = "Stille"
	TypeChanLam          Type = "Chan-Lam"
)

// TypeUnknown is the sentinel returned when no classifier rule matches.
// Callers must treat it as "no recommendation basis", never as a default
// family.
const TypeUnknown Type = "unknown"

// ScoringFamilies lists the families that compatibility vectors cover, in
// vector order.
var ScoringFamilies = []Type{
	TypeCrossCoupling,
	TypeHydrogenation,
	TypeMetathesis,
	TypeCHActivation,
	TypeCarbonylation,
}

// KnownTypes lists every tag the classifier can resolve to, families and
// sub-variants alike, in a stable presentation order.
var KnownTypes = []Type{
	TypeCrossCoupling,
	TypeSuzuki,
	TypeBuchwaldHartwig,
	TypeUllmann,
	TypeHeck,
	TypeSonogashira,
	TypeNegishi,
	TypeStille,
	TypeChanLam,
	TypeHydrogenation,
	TypeMetathesis,
	TypeCHActivation,
	TypeCarbonylation,
}

// scoringFamilyOf maps every known tag to its scoring family.
var scoringFamilyOf = map[Type]Type{
	TypeCrossCoupling:   TypeCrossCoupling,
	TypeHydrogenation:   TypeHydrogenation,
	TypeMetathesis:      TypeMetathesis,
	TypeCHActivation:    TypeCHActivation,
	TypeCarbonylation:   TypeCarbonylation,
	TypeSuzuki:          TypeCrossCoupling,
	TypeBuchwaldHartwig: TypeCrossCoupling,
	TypeHeck:            TypeCrossCoupling,
	TypeSonogashira:     TypeCrossCoupling,
	TypeNegishi:         TypeCrossCoupling,
	TypeStille:          TypeCrossCoupling,
	TypeChanLam:         TypeCrossCoupling,
	// Ullmann scores against cross-coupling compatibility but keeps its own
	// evidence partition.
	TypeUllmann: TypeCrossCoupling,
}

// ScoringFamily returns the scoring family for t, or TypeUnknown when t is
// not a recognized tag.
func (t Type) ScoringFamily() Type {
	if fam, ok := scoringFamilyOf[t]; ok {
		return fam
	}
	return TypeUnknown
}

// IsKnown reports whether t is a recognized tag (family or sub-variant).
func (t Type) IsKnown() bool {
	_, ok := scoringFamilyOf[t]
	return ok
}

func (t Type) String() string { return string(t) }

// FamilyIndex returns the position of t's scoring family within
// ScoringFamilies, or -1 for unknown tags.  Compatibility vectors are indexed
// by this value.
func (t Type) FamilyIndex() int {
	fam := t.ScoringFamily()
	for i, f := range ScoringFamilies {
		if f == fam {
			return i
		}
	}
	return -1
}

// Role identifies the function a reagent plays in a reaction condition.
type Role string

const (
	RoleCatalyst Role = "catalyst"
	RoleLigand   Role = "ligand"
	RoleSolvent  Role = "solvent"
	RoleBase     Role = "base"
)

// Roles lists all reagent roles in catalog order.
var Roles = []Role{RoleCatalyst, RoleLigand, RoleSolvent, RoleBase}

// Valid reports whether r is a recognized role.
func (r Role) Valid() bool {
	switch r {
	case RoleCatalyst, RoleLigand, RoleSolvent, RoleBase:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// Confidence grades how well-supported a recommendation is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ConfidenceForScore buckets a combined score into a confidence grade.
func ConfidenceForScore(score float64) Confidence {
	switch {
	case score >= 0.75:
		return ConfidenceHigh
	case score >= 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// guiAliases maps the long-form labels used by interactive frontends to
// canonical tags.  Labels may carry a trailing metal annotation such as
// " (Pd)" which is stripped before lookup.
var guiAliases = map[string]Type{
	"Suzuki-Miyaura Coupling":           TypeSuzuki,
	"C-C Coupling - Suzuki-Miyaura":     TypeSuzuki,
	"Buchwald-Hartwig Amination":        TypeBuchwaldHartwig,
	"C-N Coupling - Buchwald-Hartwig":   TypeBuchwaldHartwig,
	"Heck Coupling":                     TypeHeck,
	"C-C Coupling - Heck":               TypeHeck,
	"Sonogashira Coupling":              TypeSonogashira,
	"C-C Coupling - Sonogashira":        TypeSonogashira,
	"Stille Coupling":                   TypeStille,
	"C-C Coupling - Stille":             TypeStille,
	"Negishi Coupling":                  TypeNegishi,
	"C-C Coupling - Negishi":            TypeNegishi,
	"Chan-Lam Coupling":                 TypeChanLam,
	"C-N Coupling - Chan-Lam":           TypeChanLam,
	"C-N Oxidative Coupling - Chan-Lam": TypeChanLam,
	"Ullmann Reaction":                  TypeUllmann,
	"Ullmann Ether Synthesis":           TypeUllmann,
	"C-N Coupling - Ullmann":            TypeUllmann,
	"C-O Coupling - Ullmann":            TypeUllmann,
	"C-O Coupling - Ullmann Ether":      TypeUllmann,
	"Hydrogenation":                     TypeHydrogenation,
	"Catalytic Hydrogenation":           TypeHydrogenation,
	"Carbonylation":                     TypeCarbonylation,
	"C-H Activation":                    TypeCHActivation,
	"Cross-Metathesis (CM)":             TypeMetathesis,
	"Ring-Closing Metathesis (RCM)":     TypeMetathesis,
	"Ring-Opening Metathesis (ROM)":     TypeMetathesis,
}

// ParseType resolves a user-supplied label to a canonical tag.  It accepts
// canonical tags verbatim and long-form frontend labels (with or without a
// trailing metal annotation).  Unrecognized labels yield TypeUnknown.
func ParseType(label string) Type {
	label = strings.TrimSpace(label)
	if label == "" {
		return TypeUnknown
	}
	if t := Type(label); t.IsKnown() {
		return t
	}
	if t, ok := guiAliases[label]; ok {
		return t
	}
	// Strip a trailing " (Pd)" / " (Cu)" style annotation.  Some alias keys
	// carry their own parenthetical, so the verbatim lookup runs first.
	if strings.HasSuffix(label, ")") {
		if i := strings.LastIndex(label, " ("); i > 0 {
			if t, ok := guiAliases[label[:i]]; ok {
				return t
			}
		}
	}
	return TypeUnknown
}

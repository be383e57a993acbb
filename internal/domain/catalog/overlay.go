package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/reactwise/condrec/pkg/errors"
	"github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON Overlays
// ─────────────────────────────────────────────────────────────────────────────
//
// An overlay directory may contain ligands.json, solvents.json, and
// bases.json.  Each file holds either a bare JSON array of entries or an
// object wrapping the array under the plural key ({"bases": [...]}).  Entries
// with a name already present in the catalog replace the built-in row;
// unknown names append.  Compatibility vectors accept three encodings: a
// 5-element array, an object keyed by family name, or a comma-separated
// string.

// compatVector unmarshals the flexible reaction_compatibility encodings.
type compatVector [5]float64

func (c *compatVector) UnmarshalJSON(data []byte) error {
	*c = compatVector{0.5, 0.5, 0.5, 0.5, 0.5}

	var arr []float64
	if err := json.Unmarshal(data, &arr); err == nil {
		for i := 0; i < len(arr) && i < 5; i++ {
			c[i] = arr[i]
		}
		return nil
	}

	var byFamily map[string]float64
	if err := json.Unmarshal(data, &byFamily); err == nil {
		for i, fam := range reaction.ScoringFamilies {
			if v, ok := byFamily[string(fam)]; ok {
				c[i] = v
			}
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, errors.ErrCodeOverlayInvalid, "unsupported reaction_compatibility encoding")
	}
	for i, part := range strings.Split(s, ",") {
		if i >= 5 {
			break
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeOverlayInvalid, "bad reaction_compatibility value").
				WithDetail("value=" + part)
		}
		c[i] = v
	}
	return nil
}

type ligandOverlay struct {
	Name         string       `json:"name"`
	ConeAngle    float64      `json:"cone_angle"`
	Electronic   float64      `json:"electronic_parameter"`
	BiteAngle    float64      `json:"bite_angle"`
	StericBulk   float64      `json:"steric_bulk"`
	Donor        float64      `json:"donor_strength"`
	Price        float64      `json:"price_category"`
	Denticity    int           `json:"coordination_mode"`
	Compat       *compatVector `json:"reaction_compatibility"`
	Applications string        `json:"typical_applications"`
}

type solventOverlay struct {
	Name         string       `json:"name"`
	CAS          string       `json:"cas"`
	Abbrev       string       `json:"abbreviation"`
	Dielectric   float64      `json:"dielectric_constant"`
	Polarity     float64      `json:"polarity_index"`
	BoilingPoint float64      `json:"boiling_point_c"`
	Density      float64      `json:"density_g_ml"`
	DipoleMoment float64      `json:"dipole_moment_d"`
	DonorNumber  float64      `json:"donor_number"`
	HBD          float64       `json:"h_bond_donor_ability"`
	Compat       *compatVector `json:"reaction_compatibility"`
	Applications string        `json:"typical_applications"`
}

type baseOverlay struct {
	Name            string       `json:"name"`
	Formula         string       `json:"formula"`
	Type            string       `json:"type"`
	PKaH            float64      `json:"basicity_pkah"`
	Nucleophilicity float64      `json:"nucleophilicity_index"`
	Solubility      string       `json:"solubility_class"`
	Hygroscopicity  string       `json:"hygroscopicity"`
	Price           float64       `json:"price_category"`
	Compat          *compatVector `json:"reaction_compatibility"`
	Applications    string        `json:"typical_applications"`
}

// neutralCompat is the default vector for overlay entries that omit
// reaction_compatibility.
func neutralCompat(c *compatVector) [5]float64 {
	if c == nil {
		return [5]float64{0.5, 0.5, 0.5, 0.5, 0.5}
	}
	return [5]float64(*c)
}

// ApplyOverlayDir loads any overlay files found in dir and merges them into
// the catalog.  A missing directory is not an error; malformed files are.
func (c *Catalog) ApplyOverlayDir(dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	if err := c.applyLigandOverlay(filepath.Join(dir, "ligands.json")); err != nil {
		return err
	}
	if err := c.applySolventOverlay(filepath.Join(dir, "solvents.json")); err != nil {
		return err
	}
	if err := c.applyBaseOverlay(filepath.Join(dir, "bases.json")); err != nil {
		return err
	}
	c.reindex()
	return nil
}

func readOverlayEntries[T any](path, pluralKey string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeOverlayInvalid, "read overlay file").
			WithDetail("path=" + path)
	}

	var entries []T
	if err := json.Unmarshal(raw, &entries); err == nil {
		return entries, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeOverlayInvalid, "parse overlay file").
			WithDetail("path=" + path)
	}
	inner, ok := wrapped[pluralKey]
	if !ok {
		return nil, errors.New(errors.ErrCodeOverlayInvalid, "overlay object missing entry array").
			WithDetail("path=" + path + " key=" + pluralKey)
	}
	if err := json.Unmarshal(inner, &entries); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeOverlayInvalid, "parse overlay entries").
			WithDetail("path=" + path)
	}
	return entries, nil
}

func (c *Catalog) applyLigandOverlay(path string) error {
	entries, err := readOverlayEntries[ligandOverlay](path, "ligands")
	if err != nil {
		return err
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		l := Ligand{
			Name: e.Name, ConeAngle: e.ConeAngle, Electronic: e.Electronic,
			BiteAngle: e.BiteAngle, StericBulk: e.StericBulk, Donor: e.Donor,
			Price: e.Price, Denticity: e.Denticity, Compat: neutralCompat(e.Compat),
			Applications: e.Applications,
		}
		if i, ok := c.ligandIdx[keyName(l.Name)]; ok {
			c.Ligands[i] = l
		} else {
			c.Ligands = append(c.Ligands, l)
			c.ligandIdx[keyName(l.Name)] = len(c.Ligands) - 1
		}
	}
	return nil
}

func (c *Catalog) applySolventOverlay(path string) error {
	entries, err := readOverlayEntries[solventOverlay](path, "solvents")
	if err != nil {
		return err
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		s := Solvent{
			Name: e.Name, CAS: e.CAS, Abbrev: e.Abbrev,
			Dielectric: e.Dielectric, Polarity: e.Polarity, BoilingPoint: e.BoilingPoint,
			Density: e.Density, DipoleMoment: e.DipoleMoment, DonorNumber: e.DonorNumber,
			HBD: e.HBD, Compat: neutralCompat(e.Compat), Applications: e.Applications,
		}
		if i, ok := c.solventIdx[keyName(s.Name)]; ok {
			c.Solvents[i] = s
		} else {
			c.Solvents = append(c.Solvents, s)
			c.solventIdx[keyName(s.Name)] = len(c.Solvents) - 1
		}
	}
	return nil
}

func (c *Catalog) applyBaseOverlay(path string) error {
	entries, err := readOverlayEntries[baseOverlay](path, "bases")
	if err != nil {
		return err
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		b := Base{
			Name: e.Name, Formula: e.Formula, Type: e.Type,
			PKaH: e.PKaH, Nucleophilicity: e.Nucleophilicity,
			Solubility: e.Solubility, Hygroscopicity: e.Hygroscopicity,
			Price: e.Price, Compat: neutralCompat(e.Compat), Applications: e.Applications,
		}
		if i, ok := c.baseIdx[keyName(b.Name)]; ok {
			c.Bases[i] = b
		} else {
			c.Bases = append(c.Bases, b)
			c.baseIdx[keyName(b.Name)] = len(c.Bases) - 1
		}
	}
	return nil
}

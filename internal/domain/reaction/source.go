package reaction

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Record Sources
// ─────────────────────────────────────────────────────────────────────────────

// RecordSource streams normalized dataset records.  Implementations map one
// physical schema onto Record; the engine and the aggregator only consume the
// stream.
type RecordSource interface {
	// Stream invokes fn for every record.  Returning an error from fn
	// stops the stream and propagates the error.
	Stream(ctx context.Context, fn func(Record) error) error
}

// csvColumns maps the header names seen across the bundled datasets onto
// Record fields.  Matching is case-insensitive on the canonical token, so
// "Yield_%", "yield" and "Yield(%)" all land on the yield column.
var csvColumns = map[string]string{
	"reactionid":     "id",
	"id":             "id",
	"reactiontype":   "type",
	"reactantsmiles": "reactants",
	"reactants":      "reactants",
	"productsmiles":  "products",
	"products":       "products",
	"catalyst":       "catalyst",
	"metal":          "catalyst",
	"ligand":         "ligand",
	"solvent":        "solvent",
	"base":           "base",
	"reagentraw":     "base",
	"rgtname":        "base",
	"temperaturec":   "temperature",
	"temperature":    "temperature",
	"timeh":          "time",
	"time":           "time",
	"yield":          "yield",
	"reference":      "reference",
	"doi":            "reference",
}

// CSVDirSource streams records from every *.csv file in a directory.  Files
// are visited in name order so a full scan is deterministic.  Malformed rows
// are skipped and logged, never fatal; a missing directory is an error.
type CSVDirSource struct {
	dir string
	log logging.Logger
}

// NewCSVDirSource constructs a CSVDirSource over dir.
func NewCSVDirSource(dir string, log logging.Logger) *CSVDirSource {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &CSVDirSource{dir: dir, log: log.Named("dataset")}
}

// Stream implements RecordSource.
func (s *CSVDirSource) Stream(ctx context.Context, fn func(Record) error) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatasetUnavailable, "read dataset directory").
			WithDetail("dir=" + s.dir)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.streamFile(ctx, filepath.Join(s.dir, name), fn); err != nil {
			return err
		}
	}
	return nil
}

func (s *CSVDirSource) streamFile(ctx context.Context, path string, fn func(Record) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatasetUnavailable, "open dataset file").
			WithDetail("path=" + path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows handled per-field below

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil // empty file, nothing to stream
		}
		return errors.Wrap(err, errors.ErrCodeDatasetParseFailed, "read dataset header").
			WithDetail("path=" + path)
	}
	fieldIdx := mapHeader(header)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			// A single mangled row should not poison the scan.
			s.log.Warn("skipping malformed dataset row",
				logging.String("path", path), logging.Err(err))
			continue
		}
		if err := fn(buildRecord(fieldIdx, row)); err != nil {
			return err
		}
	}
}

func mapHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if field, ok := csvColumns[canonToken(h)]; ok {
			if _, taken := idx[field]; !taken {
				idx[field] = i
			}
		}
	}
	return idx
}

func buildRecord(fieldIdx map[string]int, row []string) Record {
	cell := func(field string) string {
		i, ok := fieldIdx[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	return Record{
		ID:             cell("id"),
		RawType:        cell("type"),
		Reactants:      cell("reactants"),
		Products:       cell("products"),
		Catalysts:      SplitListField(cell("catalyst")),
		Ligands:        SplitListField(cell("ligand")),
		Solvents:       SplitListField(cell("solvent")),
		Bases:          SplitListField(cell("base")),
		TemperatureRaw: cell("temperature"),
		TimeRaw:        cell("time"),
		YieldRaw:       cell("yield"),
		Reference:      cell("reference"),
	}
}

// SliceSource adapts an in-memory record slice to RecordSource; used by tests
// and by callers that already hold normalized records.
type SliceSource []Record

// Stream implements RecordSource.
func (s SliceSource) Stream(ctx context.Context, fn func(Record) error) error {
	for _, rec := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

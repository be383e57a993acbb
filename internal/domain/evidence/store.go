package evidence

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Summary Store
// ─────────────────────────────────────────────────────────────────────────────

// SummaryStore persists and serves evidence summaries.  Each Save creates a
// new immutable generation and repoints "latest"; Load always serves the
// latest generation for a tag.
type SummaryStore interface {
	// Save persists s as a new generation and returns the generation id.
	Save(ctx context.Context, s *Summary) (string, error)
	// Load returns the latest summary for tag, or CodeSummaryNotFound.
	Load(ctx context.Context, tag rtypes.Type) (*Summary, error)
	// Generations lists the retained generation ids for tag, newest last.
	Generations(ctx context.Context, tag rtypes.Type) ([]string, error)
}

const (
	summaryFile   = "summary.json"
	latestFile    = "latest.json"
	generationFmt = "20060102-150405.000"
)

// FSStore is the filesystem SummaryStore: one directory per tag holding
// timestamped generation directories plus a latest.json pointer copy.
//
//	<root>/<tag>/<generation>/summary.json
//	<root>/<tag>/latest.json
//
// The generation directory is created with an exclusive mkdir, enforcing the
// single-writer discipline per tag; latest.json is replaced via tmp+rename
// so readers never observe a torn file.
type FSStore struct {
	root string
	keep int
	log  logging.Logger
}

// NewFSStore constructs an FSStore rooted at dir, retaining keep generations
// per tag (older ones are pruned after a successful save).
func NewFSStore(dir string, keep int, log logging.Logger) *FSStore {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if keep < 1 {
		keep = 5
	}
	return &FSStore{root: dir, keep: keep, log: log.Named("summarystore")}
}

// Save implements SummaryStore.
func (st *FSStore) Save(_ context.Context, s *Summary) (string, error) {
	if s == nil || s.Meta.Tag == "" {
		return "", errors.New(errors.ErrCodeManifestInvalid, "summary missing reaction-type tag")
	}
	tagDir := filepath.Join(st.root, s.Meta.Tag)
	if err := os.MkdirAll(tagDir, 0o755); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeStorageError, "create summary tag directory")
	}

	gen := time.Now().UTC().Format(generationFmt)
	genDir := filepath.Join(tagDir, gen)
	if err := os.Mkdir(genDir, 0o755); err != nil {
		if os.IsExist(err) {
			return "", errors.Wrap(err, errors.ErrCodeGenerationConflict, "generation already exists").
				WithDetail("generation=" + gen)
		}
		return "", errors.Wrap(err, errors.ErrCodeStorageError, "create generation directory")
	}

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeSerialization, "encode summary")
	}
	if err := os.WriteFile(filepath.Join(genDir, summaryFile), raw, 0o644); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeStorageError, "write generation summary")
	}

	if err := atomicWrite(filepath.Join(tagDir, latestFile), raw); err != nil {
		return "", err
	}

	st.prune(tagDir)
	st.log.Info("summary generation saved",
		logging.String("tag", s.Meta.Tag),
		logging.String("generation", gen),
		logging.Int("analyzed_rows", s.Meta.AnalyzedRows))
	return gen, nil
}

// Load implements SummaryStore.
func (st *FSStore) Load(_ context.Context, tag rtypes.Type) (*Summary, error) {
	path := filepath.Join(st.root, string(tag), latestFile)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeSummaryNotFound, "no summary for reaction type").
			WithDetail("tag=" + string(tag))
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageError, "read latest summary")
	}

	var s Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSummaryCorrupt, "decode latest summary").
			WithDetail("path=" + path)
	}
	return &s, nil
}

// Generations implements SummaryStore.
func (st *FSStore) Generations(_ context.Context, tag rtypes.Type) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(st.root, string(tag)))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageError, "list summary generations")
	}
	var gens []string
	for _, e := range entries {
		if e.IsDir() {
			gens = append(gens, e.Name())
		}
	}
	sort.Strings(gens)
	return gens, nil
}

// prune removes generation directories beyond the retention count.  Pruning
// is best effort: a failure is logged, never propagated, because the save
// already succeeded.
func (st *FSStore) prune(tagDir string) {
	entries, err := os.ReadDir(tagDir)
	if err != nil {
		return
	}
	var gens []string
	for _, e := range entries {
		if e.IsDir() {
			gens = append(gens, e.Name())
		}
	}
	if len(gens) <= st.keep {
		return
	}
	sort.Strings(gens)
	for _, old := range gens[:len(gens)-st.keep] {
		if err := os.RemoveAll(filepath.Join(tagDir, old)); err != nil {
			st.log.Warn("failed to prune old summary generation",
				logging.String("generation", old), logging.Err(err))
		}
	}
}

func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageError, "write summary pointer")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageError, "replace summary pointer")
	}
	return nil
}

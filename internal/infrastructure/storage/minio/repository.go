package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// ─────────────────────────────────────────────────────────────────────────────
// Object-Storage Summary Store
// ─────────────────────────────────────────────────────────────────────────────

const (
	summaryObject = "summary.json"
	latestObject  = "latest.json"
	generationFmt = "20060102-150405.000"
)

// SummaryStore keeps evidence summaries in object storage with the same
// layout the filesystem store uses:
//
//	<prefix>/<tag>/<generation>/summary.json
//	<prefix>/<tag>/latest.json
//
// Generation objects are immutable once written; latest.json is replaced on
// every publish.  Object writes are atomic per key, so readers never see a
// torn pointer.
type SummaryStore struct {
	client *Client
	prefix string
	keep   int
	logger logging.Logger
	now    func() time.Time
}

var _ evidence.SummaryStore = (*SummaryStore)(nil)

// NewSummaryStore builds a store over client, retaining keep generations
// per tag.
func NewSummaryStore(client *Client, prefix string, keep int, log logging.Logger) *SummaryStore {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if keep < 1 {
		keep = 5
	}
	prefix = strings.Trim(prefix, "/")
	return &SummaryStore{
		client: client,
		prefix: prefix,
		keep:   keep,
		logger: log.Named("summarystore"),
		now:    time.Now,
	}
}

// Save implements evidence.SummaryStore.
func (st *SummaryStore) Save(ctx context.Context, s *evidence.Summary) (string, error) {
	if s == nil || s.Meta.Tag == "" {
		return "", errors.New(errors.ErrCodeManifestInvalid, "summary missing reaction-type tag")
	}

	gen := st.now().UTC().Format(generationFmt)
	genKey := st.key(s.Meta.Tag, gen, summaryObject)

	// Object stores have no exclusive create, so probe first.  The
	// millisecond-resolution generation id makes a real collision a sign
	// of a second concurrent publisher.
	if _, err := st.client.API().StatObject(ctx, st.client.Bucket(), genKey, minio.StatObjectOptions{}); err == nil {
		return "", errors.New(errors.ErrCodeGenerationConflict, "generation already exists").
			WithDetail("generation=" + gen)
	}

	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeSerialization, "encode summary")
	}

	if err := st.put(ctx, genKey, raw); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeStorageError, "write generation summary")
	}
	if err := st.put(ctx, st.key(s.Meta.Tag, latestObject), raw); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeStorageError, "write summary pointer")
	}

	st.prune(ctx, s.Meta.Tag)
	st.logger.Info("summary generation saved",
		logging.String("tag", s.Meta.Tag),
		logging.String("generation", gen),
		logging.Int("analyzed_rows", s.Meta.AnalyzedRows))
	return gen, nil
}

// Load implements evidence.SummaryStore.
func (st *SummaryStore) Load(ctx context.Context, tag rtypes.Type) (*evidence.Summary, error) {
	obj, err := st.client.API().GetObject(ctx, st.client.Bucket(), st.key(string(tag), latestObject), minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageError, "open latest summary")
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, errors.New(errors.ErrCodeSummaryNotFound, "no summary for reaction type").
				WithDetail("tag=" + string(tag))
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorageError, "read latest summary")
	}

	var s evidence.Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSummaryCorrupt, "decode latest summary").
			WithDetail("tag=" + string(tag))
	}
	return &s, nil
}

// Generations implements evidence.SummaryStore.
func (st *SummaryStore) Generations(ctx context.Context, tag rtypes.Type) ([]string, error) {
	gens, err := st.listGenerations(ctx, string(tag))
	if err != nil {
		return nil, err
	}
	sort.Strings(gens)
	return gens, nil
}

func (st *SummaryStore) listGenerations(ctx context.Context, tag string) ([]string, error) {
	tagPrefix := st.key(tag) + "/"
	var gens []string
	for info := range st.client.API().ListObjects(ctx, st.client.Bucket(), minio.ListObjectsOptions{
		Prefix:    tagPrefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, errors.Wrap(info.Err, errors.ErrCodeStorageError, "list summary generations")
		}
		if path.Base(info.Key) != summaryObject {
			continue
		}
		gens = append(gens, path.Base(path.Dir(info.Key)))
	}
	return gens, nil
}

// prune removes generations beyond the retention count, best effort.
func (st *SummaryStore) prune(ctx context.Context, tag string) {
	gens, err := st.listGenerations(ctx, tag)
	if err != nil || len(gens) <= st.keep {
		return
	}
	sort.Strings(gens)
	for _, old := range gens[:len(gens)-st.keep] {
		key := st.key(tag, old, summaryObject)
		if err := st.client.API().RemoveObject(ctx, st.client.Bucket(), key, minio.RemoveObjectOptions{}); err != nil {
			st.logger.Warn("failed to prune old summary generation",
				logging.String("generation", old), logging.Err(err))
		}
	}
}

func (st *SummaryStore) put(ctx context.Context, key string, data []byte) error {
	_, err := st.client.API().PutObject(ctx, st.client.Bucket(), key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	return err
}

func (st *SummaryStore) key(parts ...string) string {
	if st.prefix != "" {
		parts = append([]string{st.prefix}, parts...)
	}
	return path.Join(parts...)
}

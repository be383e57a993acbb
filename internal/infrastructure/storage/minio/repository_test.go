package minio

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

// memoryAPI is an in-process ObjectAPI backed by a map, mirroring the
// read-on-demand error behavior of the real client.
type memoryAPI struct {
	objects map[string][]byte
	buckets map[string]bool
}

func newMemoryAPI() *memoryAPI {
	return &memoryAPI{
		objects: make(map[string][]byte),
		buckets: map[string]bool{"condrec": true},
	}
}

func (m *memoryAPI) BucketExists(_ context.Context, bucket string) (bool, error) {
	return m.buckets[bucket], nil
}

func (m *memoryAPI) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	m.buckets[bucket] = true
	return nil
}

func (m *memoryAPI) PutObject(_ context.Context, _, object string, r io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	m.objects[object] = data
	return minio.UploadInfo{Key: object, Size: int64(len(data))}, nil
}

func (m *memoryAPI) GetObject(_ context.Context, _, object string, _ minio.GetObjectOptions) (io.ReadCloser, error) {
	data, ok := m.objects[object]
	if !ok {
		// Real clients surface NoSuchKey on first read, not on open.
		return &failingReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memoryAPI) StatObject(_ context.Context, _, object string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	if _, ok := m.objects[object]; !ok {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"}
	}
	return minio.ObjectInfo{Key: object}, nil
}

func (m *memoryAPI) ListObjects(_ context.Context, _ string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	go func() {
		defer close(ch)
		var keys []string
		for k := range m.objects {
			if strings.HasPrefix(k, opts.Prefix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			ch <- minio.ObjectInfo{Key: k, Size: int64(len(m.objects[k]))}
		}
	}()
	return ch
}

func (m *memoryAPI) RemoveObject(_ context.Context, _, object string, _ minio.RemoveObjectOptions) error {
	delete(m.objects, object)
	return nil
}

type failingReader struct{ err error }

func (f *failingReader) Read([]byte) (int, error) { return 0, f.err }
func (f *failingReader) Close() error             { return nil }

func newTestStore(t *testing.T, keep int) (*SummaryStore, *memoryAPI) {
	t.Helper()
	api := newMemoryAPI()
	client := &Client{api: api, bucket: "condrec", logger: logging.NewNopLogger()}
	st := NewSummaryStore(client, "evidence", keep, logging.NewNopLogger())

	// Deterministic, strictly increasing generation clock.
	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	n := 0
	st.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return st, api
}

func suzukiSummary(fingerprint string) *evidence.Summary {
	return &evidence.Summary{
		Meta: evidence.Meta{
			Tag:          "Suzuki",
			AnalyzedRows: 120,
			Fingerprint:  fingerprint,
		},
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	st, api := newTestStore(t, 5)
	ctx := context.Background()

	gen, err := st.Save(ctx, suzukiSummary("fp-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, gen)
	assert.Contains(t, api.objects, "evidence/Suzuki/"+gen+"/summary.json")
	assert.Contains(t, api.objects, "evidence/Suzuki/latest.json")

	got, err := st.Load(ctx, rtypes.TypeSuzuki)
	require.NoError(t, err)
	assert.Equal(t, "Suzuki", got.Meta.Tag)
	assert.Equal(t, "fp-1", got.Meta.Fingerprint)
	assert.Equal(t, 120, got.Meta.AnalyzedRows)
}

func TestSaveRejectsMissingTag(t *testing.T) {
	st, _ := newTestStore(t, 5)

	_, err := st.Save(context.Background(), &evidence.Summary{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeManifestInvalid))
}

func TestLoadMissingTagReturnsSummaryNotFound(t *testing.T) {
	st, _ := newTestStore(t, 5)

	_, err := st.Load(context.Background(), rtypes.TypeUllmann)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSummaryNotFound))
}

func TestLoadCorruptSummary(t *testing.T) {
	st, api := newTestStore(t, 5)
	api.objects["evidence/Suzuki/latest.json"] = []byte("{not json")

	_, err := st.Load(context.Background(), rtypes.TypeSuzuki)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSummaryCorrupt))
}

func TestLatestPointerFollowsRepublish(t *testing.T) {
	st, _ := newTestStore(t, 5)
	ctx := context.Background()

	_, err := st.Save(ctx, suzukiSummary("fp-1"))
	require.NoError(t, err)
	_, err = st.Save(ctx, suzukiSummary("fp-2"))
	require.NoError(t, err)

	got, err := st.Load(ctx, rtypes.TypeSuzuki)
	require.NoError(t, err)
	assert.Equal(t, "fp-2", got.Meta.Fingerprint)

	gens, err := st.Generations(ctx, rtypes.TypeSuzuki)
	require.NoError(t, err)
	assert.Len(t, gens, 2)
	assert.True(t, sort.StringsAreSorted(gens), "generations listed oldest first")
}

func TestPruneKeepsRetentionWindow(t *testing.T) {
	st, _ := newTestStore(t, 2)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := st.Save(ctx, suzukiSummary("fp"))
		require.NoError(t, err)
	}

	gens, err := st.Generations(ctx, rtypes.TypeSuzuki)
	require.NoError(t, err)
	assert.Len(t, gens, 2, "older generations pruned")

	// Latest still loads after pruning.
	_, err = st.Load(ctx, rtypes.TypeSuzuki)
	assert.NoError(t, err)
}

func TestGenerationConflict(t *testing.T) {
	st, _ := newTestStore(t, 5)
	ctx := context.Background()

	// Freeze the clock so the second save collides.
	fixed := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return fixed }

	_, err := st.Save(ctx, suzukiSummary("fp-1"))
	require.NoError(t, err)

	_, err = st.Save(ctx, suzukiSummary("fp-2"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeGenerationConflict))
}

package minio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/internal/config"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
)

func TestNewClientValidatesConfig(t *testing.T) {
	log := logging.NewNopLogger()

	_, err := NewClient(config.MinIOConfig{Bucket: "b"}, log)
	assert.Error(t, err, "endpoint required")

	_, err = NewClient(config.MinIOConfig{Endpoint: "localhost:9000"}, log)
	assert.Error(t, err, "bucket required")
}

func TestEnsureBucketCreatesWhenMissing(t *testing.T) {
	api := newMemoryAPI()
	c := &Client{api: api, bucket: "evidence-store", logger: logging.NewNopLogger()}

	require.NoError(t, c.ensureBucket(context.Background()))
	assert.True(t, api.buckets["evidence-store"])

	// Second call is a no-op on the existing bucket.
	require.NoError(t, c.ensureBucket(context.Background()))
}

func TestPingReportsMissingBucket(t *testing.T) {
	api := newMemoryAPI()
	c := &Client{api: api, bucket: "missing", logger: logging.NewNopLogger()}

	assert.Error(t, c.Ping(context.Background()))

	api.buckets["missing"] = true
	assert.NoError(t, c.Ping(context.Background()))
}

package kafka

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/types/common"
)

type fakeConn struct {
	created    []kafka.TopicConfig
	createErr  error
	partitions map[string]int
}

func (f *fakeConn) CreateTopics(topics ...kafka.TopicConfig) error {
	f.created = append(f.created, topics...)
	return f.createErr
}

func (f *fakeConn) ReadPartitions(topics ...string) ([]kafka.Partition, error) {
	var out []kafka.Partition
	for _, t := range topics {
		for i := 0; i < f.partitions[t]; i++ {
			out = append(out, kafka.Partition{Topic: t, ID: i})
		}
	}
	return out, nil
}

func (f *fakeConn) Close() error { return nil }

func TestEventEnvelopeRoundTrip(t *testing.T) {
	payload := SummaryPublishedPayload{
		ReactionType: "Suzuki",
		Generation:   "20260826T120000Z",
		Fingerprint:  "fp-abc",
		AnalyzedRows: 412,
	}
	env, err := NewEventEnvelope("summary_published", "worker", payload)
	require.NoError(t, err)
	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, "v1", env.SchemaVersion)

	msg, err := env.ToMessage(TopicSummaryPublished)
	require.NoError(t, err)
	assert.Equal(t, TopicSummaryPublished, msg.Topic)
	assert.Equal(t, "summary_published", msg.Headers["event_type"])
	assert.Equal(t, []byte(env.EventID), msg.Key)

	decoded, err := DecodeEnvelope(&common.Message{Value: msg.Value})
	require.NoError(t, err)
	assert.Equal(t, env.EventID, decoded.EventID)

	var got SummaryPublishedPayload
	require.NoError(t, decoded.DecodePayload(&got))
	assert.Equal(t, "Suzuki", got.ReactionType)
	assert.Equal(t, "fp-abc", got.Fingerprint)
	assert.Equal(t, 412, got.AnalyzedRows)
}

func TestDecodeEnvelopeFromConsumedMessage(t *testing.T) {
	env, err := NewEventEnvelope("dataset_ingested", "ingest", DatasetIngestedPayload{
		Source:  "s3://bucket/reactions.csv",
		Records: 1200,
	})
	require.NoError(t, err)
	prod, err := env.ToMessage(TopicDatasetIngested)
	require.NoError(t, err)

	// The consumer hands subscribers a *common.Message; decode straight from it.
	consumed := &common.Message{
		Topic:   prod.Topic,
		Key:     prod.Key,
		Value:   prod.Value,
		Headers: prod.Headers,
	}
	decoded, err := DecodeEnvelope(consumed)
	require.NoError(t, err)

	var got DatasetIngestedPayload
	require.NoError(t, decoded.DecodePayload(&got))
	assert.Equal(t, "s3://bucket/reactions.csv", got.Source)
	assert.Equal(t, int64(1200), got.Records)
}

func TestDecodeEnvelopeRejectsEmpty(t *testing.T) {
	_, err := DecodeEnvelope(&common.Message{})
	assert.Error(t, err)
}

func TestCreateTopicValidates(t *testing.T) {
	m := &TopicManager{conn: &fakeConn{}, logger: logging.NewNopLogger()}

	err := m.CreateTopic(context.Background(), common.TopicConfig{NumPartitions: 1, ReplicationFactor: 1})
	assert.Error(t, err, "name required")

	err = m.CreateTopic(context.Background(), common.TopicConfig{Name: "x", ReplicationFactor: 1})
	assert.Error(t, err, "partitions required")
}

func TestCreateTopicIdempotentWhenExists(t *testing.T) {
	conn := &fakeConn{
		createErr:  assert.AnError,
		partitions: map[string]int{TopicDatasetIngested: 3},
	}
	m := &TopicManager{conn: conn, logger: logging.NewNopLogger()}

	err := m.CreateTopic(context.Background(), common.TopicConfig{
		Name: TopicDatasetIngested, NumPartitions: 3, ReplicationFactor: 3,
	})
	assert.NoError(t, err, "existing topic is not a create failure")
}

func TestEnsureDefaultTopicsCreatesAll(t *testing.T) {
	conn := &fakeConn{partitions: map[string]int{}}
	m := &TopicManager{conn: conn, logger: logging.NewNopLogger()}

	require.NoError(t, m.EnsureDefaultTopics(context.Background()))
	assert.Len(t, conn.created, 4)

	names := make([]string, 0, len(conn.created))
	for _, c := range conn.created {
		names = append(names, c.Topic)
	}
	assert.Contains(t, names, TopicSummaryPublished)
	assert.Contains(t, names, TopicDeadLetter)
}

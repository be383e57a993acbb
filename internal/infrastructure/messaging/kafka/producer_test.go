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

type fakeWriter struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func newTestProducer(w WriterInterface) *Producer {
	return &Producer{
		writer: w,
		config: ProducerConfig{MaxMessageBytes: 1 << 20},
		logger: logging.NewNopLogger(),
	}
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer(ProducerConfig{}, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestPublishWritesKeyedMessage(t *testing.T) {
	w := &fakeWriter{}
	p := newTestProducer(w)

	err := p.Publish(context.Background(), &common.ProducerMessage{
		Topic:   TopicDatasetIngested,
		Key:     []byte("scan-1"),
		Value:   []byte(`{"records":10}`),
		Headers: map[string]string{"event_type": "dataset_ingested"},
	})
	require.NoError(t, err)
	require.Len(t, w.messages, 1)
	assert.Equal(t, TopicDatasetIngested, w.messages[0].Topic)
	assert.Equal(t, []byte("scan-1"), w.messages[0].Key)
	require.Len(t, w.messages[0].Headers, 1)
	assert.Equal(t, "event_type", w.messages[0].Headers[0].Key)
	assert.EqualValues(t, 1, p.Sent())
}

func TestPublishValidation(t *testing.T) {
	p := newTestProducer(&fakeWriter{})
	ctx := context.Background()

	assert.Error(t, p.Publish(ctx, &common.ProducerMessage{Value: []byte("x")}), "topic required")
	assert.Error(t, p.Publish(ctx, &common.ProducerMessage{Topic: "t"}), "value required")

	small := newTestProducer(&fakeWriter{})
	small.config.MaxMessageBytes = 4
	assert.Error(t, small.Publish(ctx, &common.ProducerMessage{Topic: "t", Value: []byte("too large")}))
}

func TestPublishAfterCloseFails(t *testing.T) {
	w := &fakeWriter{}
	p := newTestProducer(w)
	require.NoError(t, p.Close())
	assert.True(t, w.closed)

	err := p.Publish(context.Background(), &common.ProducerMessage{Topic: "t", Value: []byte("v")})
	assert.Equal(t, ErrProducerClosed, err)

	assert.NoError(t, p.Close(), "close is idempotent")
}

func TestPublishEventWrapsEnvelope(t *testing.T) {
	w := &fakeWriter{}
	p := newTestProducer(w)

	err := p.PublishEvent(context.Background(), TopicSummaryPublished, "summary_published", "worker",
		SummaryPublishedPayload{ReactionType: "Ullmann", Fingerprint: "fp-1"})
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	env, err := DecodeEnvelope(&common.Message{Value: w.messages[0].Value})
	require.NoError(t, err)
	assert.Equal(t, "summary_published", env.EventType)

	var payload SummaryPublishedPayload
	require.NoError(t, env.DecodePayload(&payload))
	assert.Equal(t, "Ullmann", payload.ReactionType)
}

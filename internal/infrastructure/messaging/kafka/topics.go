// Package kafka publishes and consumes the pipeline events that tie the
// ingest, aggregation, and recommendation stages together.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
	"github.com/reactwise/condrec/pkg/types/common"
)

// ─────────────────────────────────────────────────────────────────────────────
// Topics and Event Payloads
// ─────────────────────────────────────────────────────────────────────────────

const (
	// TopicDatasetIngested fires after a dataset scan lands new records.
	TopicDatasetIngested = "dataset.ingested"
	// TopicSummaryPublished fires when the worker publishes a new evidence
	// summary generation for a reaction-type tag.
	TopicSummaryPublished = "evidence.summary_published"
	// TopicRecommendationServed is the per-request analytics stream.
	TopicRecommendationServed = "recommendation.served"
	// TopicDeadLetter receives messages that exhausted their retries.
	TopicDeadLetter = "dead_letter.condrec"
)

// EventEnvelope is the wire wrapper shared by every event.
type EventEnvelope struct {
	EventID       string            `json:"event_id"`
	EventType     string            `json:"event_type"`
	Source        string            `json:"source"`
	Timestamp     time.Time         `json:"timestamp"`
	SchemaVersion string            `json:"schema_version"`
	Payload       json.RawMessage   `json:"payload"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// DatasetIngestedPayload announces a completed dataset load.
type DatasetIngestedPayload struct {
	Source     string    `json:"source"`
	Files      int       `json:"files"`
	Records    int64     `json:"records"`
	IngestedAt time.Time `json:"ingested_at"`
}

// SummaryPublishedPayload announces a new evidence summary generation.
// Consumers use the fingerprint to decide whether cached results built on
// the previous generation must be invalidated.
type SummaryPublishedPayload struct {
	ReactionType string    `json:"reaction_type"`
	Generation   string    `json:"generation"`
	Fingerprint  string    `json:"fingerprint"`
	AnalyzedRows int       `json:"analyzed_rows"`
	PublishedAt  time.Time `json:"published_at"`
}

// RecommendationServedPayload is emitted per served recommendation.
type RecommendationServedPayload struct {
	ReactionType string    `json:"reaction_type"`
	AnalysisType string    `json:"analysis_type"`
	CacheHit     bool      `json:"cache_hit"`
	DurationMs   float64   `json:"duration_ms"`
	ServedAt     time.Time `json:"served_at"`
}

// NewEventEnvelope wraps payload for the given event type.
func NewEventEnvelope(eventType, source string, payload interface{}) (*EventEnvelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "marshal event payload")
	}
	return &EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		SchemaVersion: "v1",
		Payload:       data,
	}, nil
}

// DecodePayload unmarshals the envelope payload into target.
func (e *EventEnvelope) DecodePayload(target interface{}) error {
	if len(e.Payload) == 0 || string(e.Payload) == "null" {
		return errors.New(errors.ErrCodeValidation, "event payload empty")
	}
	if err := json.Unmarshal(e.Payload, target); err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "decode event payload")
	}
	return nil
}

// ToMessage renders the envelope as a producer message.  The event type
// rides in a header so consumers can route without decoding the body.
func (e *EventEnvelope) ToMessage(topic string) (*common.ProducerMessage, error) {
	val, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "marshal event envelope")
	}
	return &common.ProducerMessage{
		Topic: topic,
		Key:   []byte(e.EventID),
		Value: val,
		Headers: map[string]string{
			"event_type":     e.EventType,
			"source_service": e.Source,
			"schema_version": e.SchemaVersion,
		},
		Timestamp: e.Timestamp,
	}, nil
}

// DecodeEnvelope parses a consumed message back into an envelope.
func DecodeEnvelope(msg *common.Message) (*EventEnvelope, error) {
	if len(msg.Value) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "empty message value")
	}
	var env EventEnvelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "unmarshal event envelope")
	}
	return &env, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Topic Management
// ─────────────────────────────────────────────────────────────────────────────

// ConnInterface abstracts kafka.Conn so topic management is testable.
type ConnInterface interface {
	CreateTopics(topics ...kafka.TopicConfig) error
	ReadPartitions(topics ...string) ([]kafka.Partition, error)
	Close() error
}

// TopicManager creates the pipeline topics at startup.
type TopicManager struct {
	conn   ConnInterface
	logger logging.Logger
}

// NewTopicManager dials the first broker.
func NewTopicManager(brokers []string, log logging.Logger) (*TopicManager, error) {
	if len(brokers) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "brokers required")
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeMessagingError, "dial kafka broker")
	}
	return &TopicManager{conn: conn, logger: log.Named("kafka_topics")}, nil
}

// CreateTopic is idempotent: an already-existing topic is not an error.
func (m *TopicManager) CreateTopic(ctx context.Context, cfg common.TopicConfig) error {
	if cfg.Name == "" {
		return errors.New(errors.ErrCodeValidation, "topic name required")
	}
	if cfg.NumPartitions <= 0 || cfg.ReplicationFactor <= 0 {
		return errors.New(errors.ErrCodeValidation, "partitions and replication factor must be positive")
	}

	kCfg := kafka.TopicConfig{
		Topic:             cfg.Name,
		NumPartitions:     cfg.NumPartitions,
		ReplicationFactor: cfg.ReplicationFactor,
	}
	if cfg.RetentionMs > 0 {
		kCfg.ConfigEntries = append(kCfg.ConfigEntries,
			kafka.ConfigEntry{ConfigName: "retention.ms", ConfigValue: fmt.Sprintf("%d", cfg.RetentionMs)})
	}
	if cfg.CleanupPolicy != "" {
		kCfg.ConfigEntries = append(kCfg.ConfigEntries,
			kafka.ConfigEntry{ConfigName: "cleanup.policy", ConfigValue: cfg.CleanupPolicy})
	}
	for k, v := range cfg.Configs {
		kCfg.ConfigEntries = append(kCfg.ConfigEntries,
			kafka.ConfigEntry{ConfigName: k, ConfigValue: v})
	}

	if err := m.conn.CreateTopics(kCfg); err != nil {
		if exists, _ := m.TopicExists(ctx, cfg.Name); exists {
			return nil
		}
		return errors.Wrap(err, errors.ErrCodeMessagingError, "create topic")
	}
	m.logger.Info("topic created", logging.String("topic", cfg.Name))
	return nil
}

// TopicExists probes for partitions.
func (m *TopicManager) TopicExists(_ context.Context, name string) (bool, error) {
	partitions, err := m.conn.ReadPartitions(name)
	if err != nil {
		return false, nil
	}
	return len(partitions) > 0, nil
}

// EnsureDefaultTopics creates every pipeline topic.
func (m *TopicManager) EnsureDefaultTopics(ctx context.Context) error {
	for _, topic := range DefaultTopics() {
		if err := m.CreateTopic(ctx, topic); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the broker connection.
func (m *TopicManager) Close() error { return m.conn.Close() }

// DefaultTopics lists the pipeline topics with their retention.  Summary
// publications are kept long because they double as a regeneration audit
// trail; the served stream is high-volume and short-lived.
func DefaultTopics() []common.TopicConfig {
	const day = int64(24 * 3600 * 1000)
	return []common.TopicConfig{
		{Name: TopicDatasetIngested, NumPartitions: 3, ReplicationFactor: 3, RetentionMs: 30 * day},
		{Name: TopicSummaryPublished, NumPartitions: 3, ReplicationFactor: 3, RetentionMs: 90 * day},
		{Name: TopicRecommendationServed, NumPartitions: 6, ReplicationFactor: 3, RetentionMs: 7 * day},
		{Name: TopicDeadLetter, NumPartitions: 3, ReplicationFactor: 3, RetentionMs: 30 * day},
	}
}

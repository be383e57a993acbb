package kafka

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/pkg/errors"
	"github.com/reactwise/condrec/pkg/types/common"
)

var (
	ErrAlreadyRunning = errors.New(errors.ErrCodeConflict, "consumer already running")
)

// ConsumerConfig carries the consumer-group knobs surfaced by the
// application config.
type ConsumerConfig struct {
	Brokers         []string
	GroupID         string
	Topics          []string
	AutoOffsetReset string
	MaxRetries      int
	RetryBackoff    time.Duration
	DeadLetterTopic string
}

// ReaderInterface abstracts kafka.Reader for testing.
type ReaderInterface interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer runs a consumer-group loop, dispatching each message to the
// handler registered for its topic.  A message that exhausts its retries is
// forwarded to the dead-letter topic and committed, so one poison message
// cannot stall the partition.
type Consumer struct {
	reader ReaderInterface
	config ConsumerConfig
	logger logging.Logger

	mu       sync.RWMutex
	handlers map[string]common.MessageHandler

	running    atomic.Bool
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	deadLetter *Producer

	consumed  atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
}

// NewConsumer builds a consumer over the configured brokers and topics.
func NewConsumer(cfg ConsumerConfig, log logging.Logger) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "brokers required")
	}
	if cfg.GroupID == "" {
		return nil, errors.New(errors.ErrCodeValidation, "group id required")
	}
	if len(cfg.Topics) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "topics required")
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = time.Second
	}

	startOffset := kafka.FirstOffset
	if cfg.AutoOffsetReset == "latest" {
		startOffset = kafka.LastOffset
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		GroupID:     cfg.GroupID,
		GroupTopics: cfg.Topics,
		StartOffset: startOffset,
	})

	var dl *Producer
	if cfg.DeadLetterTopic != "" {
		p, err := NewProducer(ProducerConfig{Brokers: cfg.Brokers}, log)
		if err != nil {
			return nil, err
		}
		dl = p
	}

	return &Consumer{
		reader:     reader,
		config:     cfg,
		logger:     log.Named("kafka_consumer"),
		handlers:   make(map[string]common.MessageHandler),
		deadLetter: dl,
	}, nil
}

// Subscribe registers the handler for a topic.  Later registrations replace
// earlier ones.
func (c *Consumer) Subscribe(topic string, handler common.MessageHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[topic] = handler
}

// Start launches the consume loop.
func (c *Consumer) Start(ctx context.Context) error {
	if c.running.Swap(true) {
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	go c.consumeLoop(ctx)
	c.logger.Info("kafka consumer started", logging.String("group", c.config.GroupID))
	return nil
}

func (c *Consumer) consumeLoop(ctx context.Context) {
	defer c.wg.Done()
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Error("fetch message failed", logging.Err(err))
			time.Sleep(time.Second)
			continue
		}
		c.consumed.Add(1)

		msg := &common.Message{
			Topic:     m.Topic,
			Partition: m.Partition,
			Offset:    m.Offset,
			Key:       m.Key,
			Value:     m.Value,
			Headers:   make(map[string]string, len(m.Headers)),
			Timestamp: m.Time,
		}
		for _, h := range m.Headers {
			msg.Headers[h.Key] = string(h.Value)
		}

		c.mu.RLock()
		handler, ok := c.handlers[m.Topic]
		c.mu.RUnlock()

		if ok {
			if err := c.process(ctx, msg, handler); err == nil {
				c.processed.Add(1)
			} else {
				c.failed.Add(1)
			}
		} else {
			c.logger.Warn("no handler for topic", logging.String("topic", m.Topic))
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
			c.logger.Error("commit failed", logging.Err(err))
		}
	}
}

// process retries with exponential backoff, then dead-letters.  The
// returned error is informational; the offset is committed either way.
func (c *Consumer) process(ctx context.Context, msg *common.Message, handler common.MessageHandler) error {
	var err error
	backoff := c.config.RetryBackoff
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		if err = handler(ctx, msg); err == nil {
			return nil
		}
	}

	c.logger.Error("message failed after retries",
		logging.String("topic", msg.Topic),
		logging.Int64("offset", msg.Offset),
		logging.Err(err))

	if c.deadLetter != nil {
		headers := make(map[string]string, len(msg.Headers)+2)
		for k, v := range msg.Headers {
			headers[k] = v
		}
		headers["original_topic"] = msg.Topic
		headers["error_message"] = err.Error()
		dlErr := c.deadLetter.Publish(ctx, &common.ProducerMessage{
			Topic:   c.config.DeadLetterTopic,
			Key:     msg.Key,
			Value:   msg.Value,
			Headers: headers,
		})
		if dlErr != nil {
			c.logger.Error("dead letter publish failed", logging.Err(dlErr))
		}
	}
	return err
}

// Processed reports the number of successfully handled messages.
func (c *Consumer) Processed() int64 { return c.processed.Load() }

// Close stops the loop and releases the reader.  Idempotent.
func (c *Consumer) Close() error {
	if !c.running.CompareAndSwap(true, false) {
		return nil
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	err := c.reader.Close()
	if c.deadLetter != nil {
		c.deadLetter.Close()
	}
	c.logger.Info("kafka consumer closed", logging.Int64("consumed", c.consumed.Load()))
	return err
}

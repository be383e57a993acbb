// Background worker entry point.  The worker owns evidence aggregation: it
// re-scans the reaction dataset on demand (dataset-ingested events) and on
// startup, publishes summary generations, and drops memoized exports when a
// summary's latest pointer moves.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reactwise/condrec/internal/config"
	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/internal/infrastructure/database/postgres"
	"github.com/reactwise/condrec/internal/infrastructure/database/postgres/repositories"
	"github.com/reactwise/condrec/internal/infrastructure/database/redis"
	"github.com/reactwise/condrec/internal/infrastructure/messaging/kafka"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/prometheus"
	miniostore "github.com/reactwise/condrec/internal/infrastructure/storage/minio"
	"github.com/reactwise/condrec/pkg/types/common"
	rtypes "github.com/reactwise/condrec/pkg/types/reaction"
)

var version = "dev"

const (
	defaultConfigPath = "configs/config.yaml"
	defaultHealthPort = 8081
	exportKeyPrefix   = "rec|"
)

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	healthPort := flag.Int("health-port", defaultHealthPort, "port for health and metrics endpoints")
	refreshEvery := flag.Duration("refresh-interval", 0, "periodic re-aggregation interval (0 disables)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: outputPaths(cfg.Log.Output),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.Named("worker")
	logger.Info("starting evidence worker", logging.String("version", version))

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            "condrec",
		Subsystem:            "worker",
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	if err != nil {
		logger.Fatal("metrics collector init failed", logging.Err(err))
	}
	metrics := prometheus.NewAppMetrics(collector)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Record source.
	var records reaction.RecordSource
	switch {
	case cfg.Database.Enabled:
		conn, err := postgres.NewConnection(ctx, cfg.Database, logger)
		if err != nil {
			logger.Fatal("postgres connection failed", logging.Err(err))
		}
		defer conn.Close()
		records = repositories.NewReactionRepository(conn.Pool(), logger)
	case cfg.Dataset.Dir != "":
		records = reaction.NewCSVDirSource(cfg.Dataset.Dir, logger)
	default:
		logger.Fatal("worker requires a record source: enable the database or set dataset.dir")
	}

	// Summary store.
	var summaries evidence.SummaryStore
	if cfg.MinIO.Enabled {
		mc, err := miniostore.NewClient(cfg.MinIO, logger)
		if err != nil {
			logger.Fatal("minio client failed", logging.Err(err))
		}
		summaries = miniostore.NewSummaryStore(mc, cfg.MinIO.Prefix, cfg.Evidence.KeepGenerations, logger)
	} else {
		summaries = evidence.NewFSStore(cfg.Evidence.SummaryDir, cfg.Evidence.KeepGenerations, logger)
	}

	// Producer for summary-published events.
	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer, err = kafka.NewProducer(kafka.ProducerConfig{
			Brokers:    cfg.Kafka.Brokers,
			MaxRetries: cfg.Kafka.ProducerRetries,
			BatchSize:  cfg.Kafka.BatchSize,
		}, logger)
		if err != nil {
			logger.Fatal("kafka producer failed", logging.Err(err))
		}
		defer producer.Close()

		if tm, err := kafka.NewTopicManager(cfg.Kafka.Brokers, logger); err != nil {
			logger.Warn("topic manager unavailable, assuming topics exist", logging.Err(err))
		} else {
			if err := tm.EnsureDefaultTopics(ctx); err != nil {
				logger.Warn("default topic creation failed", logging.Err(err))
			}
			tm.Close()
		}
	}

	runner := &aggregationRunner{
		aggregator:  evidence.NewAggregator(logger, cfg.Evidence.WinsorizePct),
		records:     records,
		summaries:   summaries,
		producer:    producer,
		metrics:     metrics,
		concurrency: cfg.Worker.Concurrency,
		logger:      logger,
	}

	// Summary staleness watcher: drop memoized exports the moment a latest
	// pointer moves.  Only meaningful for the filesystem store plus Redis.
	if cfg.Redis.Enabled && !cfg.MinIO.Enabled {
		rc, err := redis.NewClient(cfg.Redis, logger)
		if err != nil {
			logger.Fatal("redis connection failed", logging.Err(err))
		}
		defer rc.Close()
		cache := redis.NewCache(rc, logger)

		w, err := evidence.NewWatcher(cfg.Evidence.SummaryDir, func(tag rtypes.Type) {
			n, err := cache.DeleteByPrefix(context.Background(), exportKeyPrefix)
			if err != nil {
				logger.Warn("export cache invalidation failed",
					logging.String("tag", tag.String()), logging.Err(err))
				return
			}
			logger.Info("export cache invalidated",
				logging.String("tag", tag.String()), logging.Int64("dropped", n))
		}, logger)
		if err != nil {
			logger.Warn("summary watcher unavailable", logging.Err(err))
		} else {
			defer w.Close()
		}
	}

	// Consumer for dataset-ingested events.
	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		consumer, err = kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers:         cfg.Kafka.Brokers,
			GroupID:         cfg.Kafka.GroupID,
			Topics:          []string{kafka.TopicDatasetIngested},
			AutoOffsetReset: cfg.Kafka.AutoOffsetReset,
			MaxRetries:      cfg.Worker.MaxRetries,
			RetryBackoff:    cfg.Worker.RetryBackoff,
			DeadLetterTopic: kafka.TopicDeadLetter,
		}, logger)
		if err != nil {
			logger.Fatal("kafka consumer failed", logging.Err(err))
		}
		consumer.Subscribe(kafka.TopicDatasetIngested, func(ctx context.Context, msg *common.Message) error {
			env, err := kafka.DecodeEnvelope(msg)
			if err != nil {
				return err
			}
			var payload kafka.DatasetIngestedPayload
			if err := env.DecodePayload(&payload); err != nil {
				return err
			}
			logger.Info("dataset ingested, re-aggregating",
				logging.String("source", payload.Source),
				logging.Int64("records", payload.Records))
			return runner.RunAll(ctx)
		})
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("kafka consumer start failed", logging.Err(err))
		}
		defer consumer.Close()
	}

	// Health and metrics endpoints for probes and scraping.
	healthSrv := startHealthServer(*healthPort, collector, logger)
	defer healthSrv.Shutdown(context.Background())

	// Initial full aggregation so a fresh deployment serves evidence
	// immediately.
	if err := runner.RunAll(ctx); err != nil {
		logger.Error("initial aggregation failed", logging.Err(err))
	}

	if *refreshEvery > 0 {
		go func() {
			ticker := time.NewTicker(*refreshEvery)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := runner.RunAll(ctx); err != nil {
						logger.Error("scheduled aggregation failed", logging.Err(err))
					}
				}
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutdown signal received")
}

// aggregationRunner re-aggregates every known reaction type with bounded
// concurrency.
type aggregationRunner struct {
	aggregator  *evidence.Aggregator
	records     reaction.RecordSource
	summaries   evidence.SummaryStore
	producer    *kafka.Producer
	metrics     *prometheus.AppMetrics
	concurrency int
	logger      logging.Logger
}

// RunAll aggregates each known tag; tags with no matching rows are skipped.
func (r *aggregationRunner) RunAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	limit := r.concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for _, tag := range rtypes.KnownTypes {
		tag := tag
		g.Go(func() error { return r.runOne(ctx, tag) })
	}
	return g.Wait()
}

func (r *aggregationRunner) runOne(ctx context.Context, tag rtypes.Type) error {
	start := time.Now()
	sum, err := r.aggregator.Aggregate(ctx, r.records, tag)
	if err != nil {
		prometheus.RecordAggregation(r.metrics, tag.String(), 0, time.Since(start), err)
		return err
	}
	if sum.Meta.AnalyzedRows == 0 {
		return nil
	}

	gen, err := r.summaries.Save(ctx, sum)
	prometheus.RecordAggregation(r.metrics, tag.String(), sum.Meta.AnalyzedRows, time.Since(start), err)
	if err != nil {
		return err
	}
	r.logger.Info("summary generation published",
		logging.String("tag", tag.String()),
		logging.String("generation", gen),
		logging.Int("analyzed_rows", sum.Meta.AnalyzedRows))

	if r.producer != nil {
		env, envErr := kafka.NewEventEnvelope(kafka.TopicSummaryPublished, "condrec-worker", kafka.SummaryPublishedPayload{
			ReactionType: sum.Meta.Tag,
			Generation:   gen,
			Fingerprint:  sum.Meta.Fingerprint,
			AnalyzedRows: sum.Meta.AnalyzedRows,
			PublishedAt:  time.Now().UTC(),
		})
		if envErr == nil {
			if msg, msgErr := env.ToMessage(kafka.TopicSummaryPublished); msgErr == nil {
				r.producer.PublishAsync(context.WithoutCancel(ctx), msg)
			}
		}
	}
	return nil
}

// startHealthServer exposes /healthz and /metrics on its own port.
func startHealthServer(port int, collector prometheus.MetricsCollector, logger logging.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, `{"status":"alive"}`)
	})
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("health server listening", logging.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", logging.Err(err))
		}
	}()
	return srv
}

func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err == nil {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

func outputPaths(output string) []string {
	if output == "" {
		return []string{"stdout"}
	}
	return []string{output}
}

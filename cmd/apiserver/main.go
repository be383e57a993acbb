// API server entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reactwise/condrec/internal/config"
	"github.com/reactwise/condrec/internal/domain/catalog"
	"github.com/reactwise/condrec/internal/domain/evidence"
	"github.com/reactwise/condrec/internal/domain/reaction"
	"github.com/reactwise/condrec/internal/domain/recommend"
	"github.com/reactwise/condrec/internal/infrastructure/database/postgres"
	"github.com/reactwise/condrec/internal/infrastructure/database/postgres/repositories"
	"github.com/reactwise/condrec/internal/infrastructure/database/redis"
	"github.com/reactwise/condrec/internal/infrastructure/messaging/kafka"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/logging"
	"github.com/reactwise/condrec/internal/infrastructure/monitoring/prometheus"
	miniostore "github.com/reactwise/condrec/internal/infrastructure/storage/minio"
	httpserver "github.com/reactwise/condrec/internal/interfaces/http"
	"github.com/reactwise/condrec/internal/interfaces/http/handlers"
	"github.com/reactwise/condrec/internal/interfaces/http/middleware"
)

var version = "dev"

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
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
	logger = logger.Named("apiserver")
	logger.Info("starting condition recommendation API server",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port))

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
		Namespace:            "condrec",
		EnableProcessMetrics: true,
		EnableGoMetrics:      true,
	}, logger)
	if err != nil {
		logger.Fatal("metrics collector init failed", logging.Err(err))
	}
	metrics := prometheus.NewAppMetrics(collector)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var checkers []handlers.HealthChecker

	// Record source: PostgreSQL when enabled, CSV directory otherwise.
	var records reaction.RecordSource
	if cfg.Database.Enabled {
		conn, err := postgres.NewConnection(ctx, cfg.Database, logger)
		if err != nil {
			logger.Fatal("postgres connection failed", logging.Err(err))
		}
		defer conn.Close()
		if err := postgres.RunMigrations(cfg.Database, logger); err != nil {
			logger.Fatal("database migration failed", logging.Err(err))
		}
		records = repositories.NewReactionRepository(conn.Pool(), logger)
		checkers = append(checkers, handlers.CheckerFunc{ComponentName: "postgres", Fn: conn.Ping})
	} else if cfg.Dataset.Dir != "" {
		records = reaction.NewCSVDirSource(cfg.Dataset.Dir, logger)
	}

	// Summary store: MinIO when enabled, local filesystem otherwise.
	var summaries evidence.SummaryStore
	if cfg.MinIO.Enabled {
		mc, err := miniostore.NewClient(cfg.MinIO, logger)
		if err != nil {
			logger.Fatal("minio client failed", logging.Err(err))
		}
		summaries = miniostore.NewSummaryStore(mc, cfg.MinIO.Prefix, cfg.Evidence.KeepGenerations, logger)
		checkers = append(checkers, handlers.CheckerFunc{ComponentName: "minio", Fn: mc.Ping})
	} else {
		summaries = evidence.NewFSStore(cfg.Evidence.SummaryDir, cfg.Evidence.KeepGenerations, logger)
	}

	// Result cache: Redis when enabled.
	var cache recommend.ResultCache
	if cfg.Redis.Enabled {
		rc, err := redis.NewClient(cfg.Redis, logger)
		if err != nil {
			logger.Fatal("redis connection failed", logging.Err(err))
		}
		defer rc.Close()
		cache = &instrumentedCache{
			inner:   redis.NewExportCache(redis.NewCache(rc, logger), cfg.Redis.DefaultTTL, logger),
			metrics: metrics,
		}
		checkers = append(checkers, handlers.CheckerFunc{ComponentName: "redis", Fn: rc.Ping})
	}

	// Event producer: Kafka when enabled.
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
		summaries = &publishingSummaryStore{SummaryStore: summaries, producer: producer}
	}

	engine, err := recommend.NewEngine(recommend.Options{
		Catalog:     catalog.NewBuiltin(),
		Records:     records,
		Summaries:   summaries,
		Cache:       cache,
		Scoring:     cfg.Scoring,
		Evidence:    cfg.Evidence,
		Fingerprint: cfg.Fingerprint,
		Concurrency: cfg.Dataset.ScanConcurrency,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal("engine init failed", logging.Err(err))
	}

	aggregator := evidence.NewAggregator(logger, cfg.Evidence.WinsorizePct)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		RecommendHandler: handlers.NewRecommendHandler(&instrumentedRecommender{
			engine:   engine,
			metrics:  metrics,
			producer: producer,
		}, logger),
		EvidenceHandler:  handlers.NewEvidenceHandler(summaries, aggregator, records, logger),
		HealthHandler:    handlers.NewHealthHandler(version, checkers...),
		CORS:             middleware.CORSConfig{},
		Logger:           logger,
		Metrics:          metrics,
		MetricsCollector: collector,
		Mode:             cfg.Server.Mode,
	})

	srv := httpserver.NewServer(cfg.Server, router, logger)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", logging.Err(err))
		}
	}

	if err := srv.Stop(context.Background()); err != nil {
		logger.Error("shutdown error", logging.Err(err))
	}
	logger.Info("server stopped")
}

// loadConfig reads the config file when present, falling back to environment
// variables and defaults.
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

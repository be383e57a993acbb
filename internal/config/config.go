// Package config defines all configuration structures for the condrec
// recommendation engine.  No I/O or parsing logic lives here — only plain data
// types and validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection parameters for the reaction
// record repository.  The database is optional; when Enabled is false the
// engine reads reaction records from CSV files only.
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int           `mapstructure:"max_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds Redis connection parameters for the recommendation memo
// cache.  Optional; when Enabled is false recommendations are computed fresh
// on every request.
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	DefaultTTL   time.Duration `mapstructure:"default_ttl"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// KafkaConfig holds Kafka producer/consumer parameters for summary-generation
// and dataset-ingestion events.  Optional.
type KafkaConfig struct {
	Enabled         bool     `mapstructure:"enabled"`
	Brokers         []string `mapstructure:"brokers"`
	GroupID         string   `mapstructure:"group_id"`
	AutoOffsetReset string   `mapstructure:"auto_offset_reset"` // "earliest" | "latest"
	ProducerRetries int      `mapstructure:"producer_retries"`
	BatchSize       int      `mapstructure:"batch_size"`
}

// MinIOConfig holds MinIO / S3-compatible object-storage parameters for the
// shared evidence summary store.  Optional; the filesystem store is the
// default.
type MinIOConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// DatasetConfig locates the reaction dataset and controls how it is scanned.
type DatasetConfig struct {
	// Dir is the directory holding reaction record CSV files.
	Dir string `mapstructure:"dir"`
	// Watch enables an fsnotify watcher that marks in-memory summaries stale
	// when dataset files change.
	Watch bool `mapstructure:"watch"`
	// ScanConcurrency bounds the number of CSV files parsed in parallel
	// during aggregation.
	ScanConcurrency int `mapstructure:"scan_concurrency"`
}

// EvidenceConfig controls summary generation and persistence.
type EvidenceConfig struct {
	// SummaryDir is the root directory of the filesystem summary store.
	// Each generation is written to <SummaryDir>/<tag>/<generation>/summary.json
	// with a latest.json pointer per tag.
	SummaryDir string `mapstructure:"summary_dir"`
	// KeepGenerations is the number of historical generations retained per
	// reaction type; older ones are pruned after a successful publish.
	KeepGenerations int `mapstructure:"keep_generations"`
	// MinSupportPct is the support fraction below which evidence entries are
	// soft-penalized rather than boosted.
	MinSupportPct float64 `mapstructure:"min_support_pct"`
	// WinsorizePct is the fraction trimmed from each tail before computing
	// temperature/time/yield statistics.
	WinsorizePct float64 `mapstructure:"winsorize_pct"`
}

// ScoringConfig carries the tunable weights of the recommendation scorer.
// Zero values mean "use the built-in default for this reaction type".
type ScoringConfig struct {
	// CompatWeight is α in finalBase = α·compatibility + (1-α)·similarity.
	CompatWeight float64 `mapstructure:"compat_weight"`
	// FreqWeightLigands/Solvents/Bases are the w in base·(1 + w·sqrt(f)).
	FreqWeightLigands  float64 `mapstructure:"freq_weight_ligands"`
	FreqWeightSolvents float64 `mapstructure:"freq_weight_solvents"`
	FreqWeightBases    float64 `mapstructure:"freq_weight_bases"`
	// DisableSoftPenalty turns off down-weighting of entries below
	// MinSupportPct.  The penalty is applied by default.
	DisableSoftPenalty bool `mapstructure:"disable_soft_penalty"`
	// PenaltyFactor* multiply the score of under-supported entries.
	PenaltyFactorLigands  float64 `mapstructure:"penalty_factor_ligands"`
	PenaltyFactorSolvents float64 `mapstructure:"penalty_factor_solvents"`
	PenaltyFactorBases    float64 `mapstructure:"penalty_factor_bases"`
	// MinCompatibility excludes reagents scoring below it before ranking.
	MinCompatibility float64 `mapstructure:"min_compatibility"`
	// TopN is the default number of recommendations per role.
	TopN int `mapstructure:"top_n"`
}

// FingerprintConfig controls molecular fingerprint generation.
type FingerprintConfig struct {
	NumBits int `mapstructure:"num_bits"`
	Radius  int `mapstructure:"radius"`
}

// CatalogConfig locates optional JSON overlays for the built-in reagent
// catalog and weight tables.
type CatalogConfig struct {
	// OverlayDir holds ligands.json / solvents.json / bases.json /
	// weights.json files that override the built-in tables entry by entry.
	OverlayDir string `mapstructure:"overlay_dir"`
}

// WorkerConfig holds background-worker execution parameters.
type WorkerConfig struct {
	Concurrency       int           `mapstructure:"concurrency"`
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval"`
	MaxRetries        int           `mapstructure:"max_retries"`
	RetryBackoff      time.Duration `mapstructure:"retry_backoff"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
	Output string `mapstructure:"output"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the engine.  Every
// infrastructure component and domain service reads its settings from the
// relevant sub-struct.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	MinIO       MinIOConfig       `mapstructure:"minio"`
	Dataset     DatasetConfig     `mapstructure:"dataset"`
	Evidence    EvidenceConfig    `mapstructure:"evidence"`
	Scoring     ScoringConfig     `mapstructure:"scoring"`
	Fingerprint FingerprintConfig `mapstructure:"fingerprint"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Worker      WorkerConfig      `mapstructure:"worker"`
	Log         LogConfig         `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Database (only when enabled)
	if c.Database.Enabled {
		if c.Database.Host == "" {
			return fmt.Errorf("config: database.host is required when database.enabled")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("config: database.port %d is out of range [1, 65535]", c.Database.Port)
		}
		if c.Database.User == "" {
			return fmt.Errorf("config: database.user is required when database.enabled")
		}
		if c.Database.DBName == "" {
			return fmt.Errorf("config: database.db_name is required when database.enabled")
		}
		if c.Database.MaxConns < 1 {
			return fmt.Errorf("config: database.max_conns must be ≥ 1, got %d", c.Database.MaxConns)
		}
	}

	// Redis (only when enabled)
	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("config: redis.addr is required when redis.enabled")
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("config: redis.db must be ≥ 0, got %d", c.Redis.DB)
		}
	}

	// Kafka (only when enabled)
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("config: kafka.brokers must contain at least one broker address")
		}
		if c.Kafka.GroupID == "" {
			return fmt.Errorf("config: kafka.group_id is required when kafka.enabled")
		}
	}

	// MinIO (only when enabled)
	if c.MinIO.Enabled {
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("config: minio.endpoint is required when minio.enabled")
		}
		if c.MinIO.Bucket == "" {
			return fmt.Errorf("config: minio.bucket is required when minio.enabled")
		}
	}

	// Evidence
	if c.Evidence.MinSupportPct < 0 || c.Evidence.MinSupportPct > 1 {
		return fmt.Errorf("config: evidence.min_support_pct %v is out of range [0, 1]", c.Evidence.MinSupportPct)
	}
	if c.Evidence.WinsorizePct < 0 || c.Evidence.WinsorizePct >= 0.5 {
		return fmt.Errorf("config: evidence.winsorize_pct %v is out of range [0, 0.5)", c.Evidence.WinsorizePct)
	}
	if c.Evidence.KeepGenerations < 1 {
		return fmt.Errorf("config: evidence.keep_generations must be ≥ 1, got %d", c.Evidence.KeepGenerations)
	}

	// Scoring
	if c.Scoring.CompatWeight < 0 || c.Scoring.CompatWeight > 1 {
		return fmt.Errorf("config: scoring.compat_weight %v is out of range [0, 1]", c.Scoring.CompatWeight)
	}
	if c.Scoring.MinCompatibility < 0 || c.Scoring.MinCompatibility > 1 {
		return fmt.Errorf("config: scoring.min_compatibility %v is out of range [0, 1]", c.Scoring.MinCompatibility)
	}
	if c.Scoring.TopN < 1 {
		return fmt.Errorf("config: scoring.top_n must be ≥ 1, got %d", c.Scoring.TopN)
	}

	// Fingerprint
	if c.Fingerprint.NumBits < 64 || c.Fingerprint.NumBits%8 != 0 {
		return fmt.Errorf("config: fingerprint.num_bits must be a multiple of 8 and ≥ 64, got %d", c.Fingerprint.NumBits)
	}
	if c.Fingerprint.Radius < 1 || c.Fingerprint.Radius > 5 {
		return fmt.Errorf("config: fingerprint.radius %d is out of range [1, 5]", c.Fingerprint.Radius)
	}

	// Worker
	if c.Worker.Concurrency < 1 {
		return fmt.Errorf("config: worker.concurrency must be ≥ 1, got %d", c.Worker.Concurrency)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}

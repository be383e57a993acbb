// Package config provides configuration loading, defaults, and validation for
// the condrec recommendation engine.
package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBName     = "condrec"
	DefaultDBMaxConns = 25

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisKeyPrefix = "condrec:"
	DefaultRedisTTL       = time.Hour

	DefaultKafkaBroker  = "localhost:9092"
	DefaultKafkaGroupID = "condrec-worker"

	DefaultMinIOEndpoint = "localhost:9000"
	DefaultMinIOBucket   = "condrec-summaries"
	DefaultMinIOPrefix   = "analytics"

	DefaultDatasetDir      = "data/reaction_dataset"
	DefaultScanConcurrency = 4

	DefaultSummaryDir      = "data/analytics_summary"
	DefaultKeepGenerations = 5
	DefaultMinSupportPct   = 0.01
	DefaultWinsorizePct    = 0.01

	DefaultCompatWeight          = 0.6
	DefaultFreqWeightLigands     = 0.35
	DefaultFreqWeightSolvents    = 0.45
	DefaultFreqWeightBases       = 0.40
	DefaultPenaltyFactorLigands  = 0.88
	DefaultPenaltyFactorSolvents = 0.85
	DefaultPenaltyFactorBases    = 0.85
	DefaultMinCompatibility      = 0.3
	DefaultTopN                  = 5

	DefaultFingerprintBits   = 2048
	DefaultFingerprintRadius = 2

	DefaultWorkerConcurrency = 4

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the engine default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.  It must be called
// after unmarshalling raw config data and before Validate().
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	// ── Database ──────────────────────────────────────────────────────────────
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = DefaultRedisTTL
	}

	// ── Kafka ─────────────────────────────────────────────────────────────────
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{DefaultKafkaBroker}
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = DefaultKafkaGroupID
	}
	if cfg.Kafka.AutoOffsetReset == "" {
		cfg.Kafka.AutoOffsetReset = "earliest"
	}

	// ── MinIO ─────────────────────────────────────────────────────────────────
	if cfg.MinIO.Endpoint == "" {
		cfg.MinIO.Endpoint = DefaultMinIOEndpoint
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = DefaultMinIOBucket
	}
	if cfg.MinIO.Prefix == "" {
		cfg.MinIO.Prefix = DefaultMinIOPrefix
	}

	// ── Dataset ───────────────────────────────────────────────────────────────
	if cfg.Dataset.Dir == "" {
		cfg.Dataset.Dir = DefaultDatasetDir
	}
	if cfg.Dataset.ScanConcurrency == 0 {
		cfg.Dataset.ScanConcurrency = DefaultScanConcurrency
	}

	// ── Evidence ──────────────────────────────────────────────────────────────
	if cfg.Evidence.SummaryDir == "" {
		cfg.Evidence.SummaryDir = DefaultSummaryDir
	}
	if cfg.Evidence.KeepGenerations == 0 {
		cfg.Evidence.KeepGenerations = DefaultKeepGenerations
	}
	if cfg.Evidence.MinSupportPct == 0 {
		cfg.Evidence.MinSupportPct = DefaultMinSupportPct
	}
	if cfg.Evidence.WinsorizePct == 0 {
		cfg.Evidence.WinsorizePct = DefaultWinsorizePct
	}

	// ── Scoring ───────────────────────────────────────────────────────────────
	if cfg.Scoring.CompatWeight == 0 {
		cfg.Scoring.CompatWeight = DefaultCompatWeight
	}
	if cfg.Scoring.FreqWeightLigands == 0 {
		cfg.Scoring.FreqWeightLigands = DefaultFreqWeightLigands
	}
	if cfg.Scoring.FreqWeightSolvents == 0 {
		cfg.Scoring.FreqWeightSolvents = DefaultFreqWeightSolvents
	}
	if cfg.Scoring.FreqWeightBases == 0 {
		cfg.Scoring.FreqWeightBases = DefaultFreqWeightBases
	}
	if cfg.Scoring.PenaltyFactorLigands == 0 {
		cfg.Scoring.PenaltyFactorLigands = DefaultPenaltyFactorLigands
	}
	if cfg.Scoring.PenaltyFactorSolvents == 0 {
		cfg.Scoring.PenaltyFactorSolvents = DefaultPenaltyFactorSolvents
	}
	if cfg.Scoring.PenaltyFactorBases == 0 {
		cfg.Scoring.PenaltyFactorBases = DefaultPenaltyFactorBases
	}
	if cfg.Scoring.MinCompatibility == 0 {
		cfg.Scoring.MinCompatibility = DefaultMinCompatibility
	}
	if cfg.Scoring.TopN == 0 {
		cfg.Scoring.TopN = DefaultTopN
	}

	// ── Fingerprint ───────────────────────────────────────────────────────────
	if cfg.Fingerprint.NumBits == 0 {
		cfg.Fingerprint.NumBits = DefaultFingerprintBits
	}
	if cfg.Fingerprint.Radius == 0 {
		cfg.Fingerprint.Radius = DefaultFingerprintRadius
	}

	// ── Worker ────────────────────────────────────────────────────────────────
	if cfg.Worker.Concurrency == 0 {
		cfg.Worker.Concurrency = DefaultWorkerConcurrency
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.RetryBackoff == 0 {
		cfg.Worker.RetryBackoff = 2 * time.Second
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config that passes Validate() with all optional
// infrastructure disabled.
func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_ServerPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	assert.ErrorContains(t, cfg.Validate(), "server.port")

	cfg.Server.Port = 70000
	assert.ErrorContains(t, cfg.Validate(), "server.port")
}

func TestValidate_ServerMode(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Mode = "production"
	assert.ErrorContains(t, cfg.Validate(), "server.mode")
}

func TestValidate_DatabaseOnlyWhenEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Enabled = false
	cfg.Database.Host = ""
	assert.NoError(t, cfg.Validate(), "disabled database must not be validated")

	cfg.Database.Enabled = true
	cfg.Database.User = ""
	assert.ErrorContains(t, cfg.Validate(), "database")
}

func TestValidate_RedisOnlyWhenEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = ""
	assert.ErrorContains(t, cfg.Validate(), "redis.addr")
}

func TestValidate_KafkaOnlyWhenEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.Kafka.Enabled = true
	cfg.Kafka.Brokers = nil
	assert.ErrorContains(t, cfg.Validate(), "kafka.brokers")
}

func TestValidate_MinIOOnlyWhenEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.MinIO.Enabled = true
	cfg.MinIO.Endpoint = ""
	assert.ErrorContains(t, cfg.Validate(), "minio.endpoint")
}

func TestValidate_EvidenceBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Evidence.MinSupportPct = 1.5
	assert.ErrorContains(t, cfg.Validate(), "min_support_pct")

	cfg = validConfig()
	cfg.Evidence.WinsorizePct = 0.5
	assert.ErrorContains(t, cfg.Validate(), "winsorize_pct")
}

func TestValidate_ScoringBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Scoring.CompatWeight = 1.2
	assert.ErrorContains(t, cfg.Validate(), "compat_weight")

	cfg = validConfig()
	cfg.Scoring.TopN = 0
	assert.ErrorContains(t, cfg.Validate(), "top_n")
}

func TestValidate_FingerprintBits(t *testing.T) {
	cfg := validConfig()
	cfg.Fingerprint.NumBits = 100 // not a multiple of 8
	assert.ErrorContains(t, cfg.Validate(), "num_bits")

	cfg.Fingerprint.NumBits = 32 // too small
	assert.ErrorContains(t, cfg.Validate(), "num_bits")

	cfg.Fingerprint.NumBits = 1024
	require.NoError(t, cfg.Validate())
}

func TestValidate_FingerprintRadius(t *testing.T) {
	cfg := validConfig()
	cfg.Fingerprint.Radius = 6
	assert.ErrorContains(t, cfg.Validate(), "radius")
}

func TestValidate_LogLevelAndFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "verbose"
	assert.ErrorContains(t, cfg.Validate(), "log.level")

	cfg = validConfig()
	cfg.Log.Format = "xml"
	assert.ErrorContains(t, cfg.Validate(), "log.format")
}

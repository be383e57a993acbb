// Package config provides configuration loading, defaults, and validation for
// the condrec recommendation engine.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all engine settings.
const envPrefix = "CONDREC"

// newViper builds a Viper instance with the engine's conventions: YAML files,
// CONDREC_ env prefix, automatic env binding, and "." → "_" key mapping so
// "dataset.dir" resolves from CONDREC_DATASET_DIR.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Unmarshal only walks keys viper already knows about, and AutomaticEnv
	// never registers any, so every key must be bound explicitly for env-only
	// values to survive.
	for _, key := range configKeys(reflect.TypeOf(Config{}), "") {
		_ = v.BindEnv(key)
	}
	return v
}

// configKeys flattens the mapstructure tag tree of t into dotted viper keys.
func configKeys(t reflect.Type, prefix string) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		if ft := t.Field(i).Type; ft.Kind() == reflect.Struct {
			keys = append(keys, configKeys(ft, key)...)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// finalize turns viper state into a validated Config with defaults applied.
func finalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Load reads the YAML file at configPath, merges CONDREC_* environment
// overrides on top, applies defaults, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %q: %w", configPath, err)
	}
	return finalize(v)
}

// LoadFromEnv builds a Config from CONDREC_* environment variables alone,
// which is how containerised deployments run.
//
//	CONDREC_<SECTION>_<FIELD>   e.g.  CONDREC_DATASET_DIR, CONDREC_REDIS_ADDR
func LoadFromEnv() (*Config, error) {
	return finalize(newViper())
}

// MustLoad wraps Load and panics on failure.  For main() only, where a bad
// config is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad: %v", err))
	}
	return cfg
}

// Watch re-parses configPath whenever it changes on disk and hands the new
// Config to onChange.  Intended for hot-reloadable settings like log level
// and scoring weights; the caller decides which changes are safe to apply at
// runtime.  A change that fails to parse or validate is dropped without
// invoking onChange.
//
// Watch returns immediately; viper owns the watching goroutine.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Errors surface via Load during startup; the watcher only cares about
	// subsequent changes.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := finalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

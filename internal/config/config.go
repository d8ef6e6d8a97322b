package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP API listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// PipelineConfig tunes the summarization core.
type PipelineConfig struct {
	// MinBatch is the floor on batch size; batches scale up with the
	// requested summary length.
	MinBatch int `yaml:"min_batch"`
	// DefaultNumSentences applies when a request omits the summary length.
	DefaultNumSentences int `yaml:"default_num_sentences"`
	// DefaultFactor is the early-termination factor when unspecified.
	DefaultFactor float64 `yaml:"default_factor"`
	// MinSentenceLength is the validity floor in runes.
	MinSentenceLength int `yaml:"min_sentence_length"`
}

// ClusterConfig lists the remote workers of the distributed backend.
type ClusterConfig struct {
	Workers     []string `yaml:"workers"`
	TimeoutSecs int      `yaml:"timeout_secs"`
}

// BackendConfig selects and configures the execution backends.
type BackendConfig struct {
	// Default names the backend used when a request does not pick one:
	// "local" or "cluster".
	Default string `yaml:"default"`
	// LocalWorkers bounds the local pool; 0 means host CPU count.
	LocalWorkers int `yaml:"local_workers"`
	// Cluster is only needed when the distributed backend is offered.
	Cluster *ClusterConfig `yaml:"cluster,omitempty"`
}

// LanguageConfig selects the default stopword/boundary rules.
type LanguageConfig struct {
	Default string `yaml:"default"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Backend  BackendConfig  `yaml:"backend"`
	Language LanguageConfig `yaml:"language"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8888"
	}
	if cfg.Pipeline.MinBatch == 0 {
		cfg.Pipeline.MinBatch = 100
	}
	if cfg.Pipeline.DefaultNumSentences == 0 {
		cfg.Pipeline.DefaultNumSentences = 5
	}
	if cfg.Pipeline.DefaultFactor == 0 {
		cfg.Pipeline.DefaultFactor = 2.0
	}
	if cfg.Pipeline.MinSentenceLength == 0 {
		cfg.Pipeline.MinSentenceLength = 10
	}
	if cfg.Backend.Default == "" {
		cfg.Backend.Default = "local"
	}
	if cfg.Backend.Cluster != nil && cfg.Backend.Cluster.TimeoutSecs == 0 {
		cfg.Backend.Cluster.TimeoutSecs = 30
	}
	if cfg.Language.Default == "" {
		cfg.Language.Default = "english"
	}
}

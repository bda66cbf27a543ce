// Package config loads the supportflow configuration: defaults, then an
// optional YAML file, then environment overrides for secrets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProviderConfig configures the OpenAI-compatible endpoint.
type ProviderConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKeyEnv      string `yaml:"api_key_env"` // name of the env var holding the key
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ReWOOConfig configures the planner/worker/solver pipeline.
type ReWOOConfig struct {
	PlannerModel   string  `yaml:"planner_model"`
	SolverModel    string  `yaml:"solver_model"`
	Temperature    float32 `yaml:"temperature"`
	MaxTokens      int     `yaml:"max_tokens"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// Config is the root configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	ReWOO    ReWOOConfig    `yaml:"rewoo"`
	LogLevel string         `yaml:"log_level"`
}

// Default returns the built-in configuration, targeting a local Ollama
// endpoint so the demo runs without credentials.
func Default() Config {
	return Config{
		Provider: ProviderConfig{
			BaseURL:        "http://localhost:11434/v1",
			APIKeyEnv:      "OPENAI_API_KEY",
			Model:          "llama3.1",
			TimeoutSeconds: 60,
		},
		ReWOO: ReWOOConfig{
			PlannerModel:   "llama3.1",
			SolverModel:    "llama3.1",
			Temperature:    0,
			MaxTokens:      2000,
			TimeoutSeconds: 120,
		},
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, the YAML file at path (when
// path is non-empty), and environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SUPPORTFLOW_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("SUPPORTFLOW_MODEL"); v != "" {
		cfg.Provider.Model = v
		cfg.ReWOO.PlannerModel = v
		cfg.ReWOO.SolverModel = v
	}
	if v := os.Getenv("SUPPORTFLOW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// APIKey resolves the provider key from the configured env var. Empty is
// valid for local endpoints.
func (c *Config) APIKey() string {
	if c.Provider.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Provider.APIKeyEnv)
}

// Validate checks invariants a misconfigured file would break.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn, or error)", c.LogLevel)
	}
	if c.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url must not be empty")
	}
	if c.ReWOO.PlannerModel == "" || c.ReWOO.SolverModel == "" {
		return fmt.Errorf("rewoo.planner_model and rewoo.solver_model must not be empty")
	}
	if c.ReWOO.MaxTokens <= 0 {
		return fmt.Errorf("rewoo.max_tokens must be positive")
	}
	return nil
}

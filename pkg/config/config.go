package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultModel       = "llama3-8b-8192"
	DefaultTemperature = 0.7
	DefaultServiceName = "Groq"
	DefaultLogPath     = "interaction_logs.json"
)

// Config holds all runtime configuration for the bot.
type Config struct {
	LogPath string
	Verbose bool

	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	// ServiceName is the label used in "Error communicating with ..." replies.
	ServiceName string
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		LogPath:     DefaultLogPath,
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		ServiceName: DefaultServiceName,
	}
}

// Normalize sanitizes configuration values and applies defaults.
// The API key is trimmed but never required; a missing key surfaces as an
// authorization failure from the remote service.
func Normalize(cfg Config) Config {
	cfg.LogPath = strings.TrimSpace(cfg.LogPath)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.ServiceName = strings.TrimSpace(cfg.ServiceName)

	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogPath
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}
	if cfg.Temperature < 0 {
		cfg.Temperature = DefaultTemperature
	}
	return cfg
}

// fileConfig mirrors the optional YAML config file. Pointer fields tell
// "absent" apart from a zero value.
type fileConfig struct {
	BaseURL     *string  `yaml:"base_url"`
	Model       *string  `yaml:"model"`
	Temperature *float64 `yaml:"temperature"`
	ServiceName *string  `yaml:"service_name"`
	LogPath     *string  `yaml:"log_path"`
	Verbose     *bool    `yaml:"verbose"`
}

// LoadFile merges the YAML file at path over cfg. The API key is not read
// from files; it only comes from the environment.
func LoadFile(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.BaseURL != nil {
		cfg.BaseURL = *fc.BaseURL
	}
	if fc.Model != nil {
		cfg.Model = *fc.Model
	}
	if fc.Temperature != nil {
		if *fc.Temperature < 0 {
			return cfg, errors.New("temperature must not be negative")
		}
		cfg.Temperature = *fc.Temperature
	}
	if fc.ServiceName != nil {
		cfg.ServiceName = *fc.ServiceName
	}
	if fc.LogPath != nil {
		cfg.LogPath = *fc.LogPath
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	return cfg, nil
}

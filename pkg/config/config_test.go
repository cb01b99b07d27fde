package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Model != "llama3-8b-8192" {
		t.Fatalf("unexpected default model %q", cfg.Model)
	}
	if cfg.Temperature != 0.7 {
		t.Fatalf("unexpected default temperature %v", cfg.Temperature)
	}
	if cfg.LogPath != "interaction_logs.json" {
		t.Fatalf("unexpected default log path %q", cfg.LogPath)
	}
}

func TestNormalizeFillsBlanks(t *testing.T) {
	cfg := Normalize(Config{
		APIKey:      "  key  ",
		Model:       "   ",
		Temperature: -1,
	})
	if cfg.APIKey != "key" {
		t.Fatalf("expected trimmed key, got %q", cfg.APIKey)
	}
	if cfg.Model != DefaultModel || cfg.BaseURL != DefaultBaseURL || cfg.ServiceName != DefaultServiceName {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Temperature != DefaultTemperature {
		t.Fatalf("expected default temperature, got %v", cfg.Temperature)
	}
}

func TestNormalizeAllowsEmptyAPIKey(t *testing.T) {
	cfg := Normalize(DefaultConfig())
	if cfg.APIKey != "" {
		t.Fatalf("expected empty key to stay empty, got %q", cfg.APIKey)
	}
}

func TestLoadFileMergesPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolbot.yaml")
	content := `model: llama-3.1-8b-instant
temperature: 0
log_path: logs/session.json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Model != "llama-3.1-8b-instant" {
		t.Fatalf("expected model from file, got %q", cfg.Model)
	}
	if cfg.Temperature != 0 {
		t.Fatalf("expected explicit zero temperature, got %v", cfg.Temperature)
	}
	if cfg.LogPath != "logs/session.json" {
		t.Fatalf("expected log path from file, got %q", cfg.LogPath)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("expected untouched base url, got %q", cfg.BaseURL)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml"), DefaultConfig()); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("model: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(bad, DefaultConfig()); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}

	negative := filepath.Join(dir, "negative.yaml")
	if err := os.WriteFile(negative, []byte("temperature: -0.5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(negative, DefaultConfig()); err == nil {
		t.Fatal("expected error for negative temperature")
	}
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	configpkg "github.com/minhyannv/toolbot-go/pkg/config"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestParseCLIConfigDefaults(t *testing.T) {
	cfg, err := parseCLIConfig(nil, envFrom(map[string]string{"GROQ_API_KEY": " secret "}))
	if err != nil {
		t.Fatalf("parseCLIConfig: %v", err)
	}
	if cfg.APIKey != "secret" {
		t.Fatalf("expected trimmed key, got %q", cfg.APIKey)
	}
	if cfg.Model != configpkg.DefaultModel || cfg.BaseURL != configpkg.DefaultBaseURL || cfg.LogPath != configpkg.DefaultLogPath {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseCLIConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolbot.yaml")
	content := "model: from-file\nlog_path: file.json\nbase_url: http://file.example/v1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := parseCLIConfig(
		[]string{"-config", path, "-log_file", "flag.json", "-verbose"},
		envFrom(map[string]string{"GROQ_MODEL": "from-env"}),
	)
	if err != nil {
		t.Fatalf("parseCLIConfig: %v", err)
	}
	if cfg.Model != "from-env" {
		t.Fatalf("expected env to override file, got %q", cfg.Model)
	}
	if cfg.LogPath != "flag.json" {
		t.Fatalf("expected flag to override file, got %q", cfg.LogPath)
	}
	if cfg.BaseURL != "http://file.example/v1" {
		t.Fatalf("expected base url from file, got %q", cfg.BaseURL)
	}
	if !cfg.Verbose {
		t.Fatal("expected verbose from flag")
	}

	cfg, err = parseCLIConfig([]string{"-config", path, "-model", "from-flag"}, envFrom(map[string]string{"GROQ_MODEL": "from-env"}))
	if err != nil {
		t.Fatalf("parseCLIConfig: %v", err)
	}
	if cfg.Model != "from-flag" {
		t.Fatalf("expected flag to override env, got %q", cfg.Model)
	}
}

func TestParseCLIConfigErrors(t *testing.T) {
	if _, err := parseCLIConfig([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")}, envFrom(nil)); err == nil {
		t.Fatal("expected error for missing config file")
	}
	if _, err := parseCLIConfig([]string{"-unknown"}, envFrom(nil)); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

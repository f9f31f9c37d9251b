package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/purefunctor/pixels/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pixels.yaml", `
api:
  base_url: https://pixels.example.test/
  token: from-file
  timeout_seconds: 10
paths:
  snapshots_dir: shots
retry:
  max_attempts: 5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "https://pixels.example.test" {
		t.Fatalf("unexpected base URL: %q", cfg.API.BaseURL)
	}
	if cfg.API.Token != "from-file" {
		t.Fatalf("unexpected token: %q", cfg.API.Token)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.API.Timeout)
	}
	if cfg.Paths.SnapshotsDir != "shots" {
		t.Fatalf("unexpected snapshots dir: %q", cfg.Paths.SnapshotsDir)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Fatalf("unexpected max attempts: %d", cfg.Retry.MaxAttempts)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pixels.yaml", "api:\n  token: abc\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def := domain.DefaultConfig()
	if cfg.API.BaseURL != def.API.BaseURL {
		t.Fatalf("expected default base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.Retry.MaxAttempts != def.Retry.MaxAttempts {
		t.Fatalf("expected default max attempts, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pixels.yaml", "api: [broken")

	_, err := Load(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
}

func TestMapConfigRejectsRelativeBaseURL(t *testing.T) {
	_, err := MapConfig("pixels.yaml", YAMLConfig{API: YAMLAPI{BaseURL: "not-a-url"}})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
}

func TestResolveTokenPrecedence(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.API.Token = "from-file"

	t.Setenv(TokenEnvVar, "from-env")
	tok, err := ResolveToken(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "from-env" {
		t.Fatalf("expected env token to win, got %q", tok)
	}

	t.Setenv(TokenEnvVar, "")
	tok, err = ResolveToken(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "from-file" {
		t.Fatalf("expected file token, got %q", tok)
	}
}

func TestResolveTokenMissing(t *testing.T) {
	t.Setenv(TokenEnvVar, "")

	_, err := ResolveToken(domain.DefaultConfig())
	if !domain.IsKind(err, domain.KindAuth) {
		t.Fatalf("expected auth kind, got %v", err)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/purefunctor/pixels/internal/domain"
)

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, DefaultFileName)
	if err := os.WriteFile(cfgPath, []byte("api: {}\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}

	got, err := Find(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cfgPath {
		t.Fatalf("expected %s, got %s", cfgPath, got)
	}
}

func TestFindNotFound(t *testing.T) {
	_, err := Find(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found kind, got %v", err)
	}
}

func TestFindEmptyStart(t *testing.T) {
	_, err := Find("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
}

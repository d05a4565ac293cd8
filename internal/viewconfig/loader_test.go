package viewconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadSimpleConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
matching_mode: strict
condenser:
  max_context_tokens: 5000
  keep_recent_events: 10
  chunk_tokens: 2000
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Matching != MatchingStrict {
		t.Fatalf("expected strict matching, got %v", cfg.Matching)
	}
	if cfg.Condenser.MaxContextTokens != 5000 {
		t.Fatalf("expected 5000 max context tokens, got %d", cfg.Condenser.MaxContextTokens)
	}
}

func TestLoadResolvesInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", `
matching_mode: lenient
condenser:
  max_context_tokens: 100000
  keep_recent_events: 20
  chunk_tokens: 20000
`)
	overridePath := writeFile(t, dir, "override.yaml", `
$include: base.yaml
matching_mode: strict
`)
	cfg, err := Load(overridePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Matching != MatchingStrict {
		t.Fatalf("expected override to win, got %v", cfg.Matching)
	}
	if cfg.Condenser.MaxContextTokens != 100000 {
		t.Fatalf("expected base value preserved, got %d", cfg.Condenser.MaxContextTokens)
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "matching_mode: ${MODE}\n")
	t.Setenv("MODE", "strict")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Matching != MatchingStrict {
		t.Fatalf("expected env var expanded to strict, got %v", cfg.Matching)
	}
}

package state

import (
	"testing"
	"time"

	"fnotes/internal/config"
)

func TestLoadConfigCreatesConfigFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadConfig(home)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.ServerURL == "" {
		t.Fatal("expected a default server url")
	}
}

func TestAutosaveIntervalDefaultsWhenUnset(t *testing.T) {
	t.Parallel()

	s := &State{Config: &config.Config{}}
	if got := s.AutosaveInterval(); got != time.Second {
		t.Fatalf("expected 1s default, got %v", got)
	}

	s.Config.AutosaveMillis = 250
	if got := s.AutosaveInterval(); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", got)
	}
}

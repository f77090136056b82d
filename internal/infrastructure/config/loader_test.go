package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/falmaashani/jarvisctl/internal/domain"
)

func TestLoadWritesDefaultsWhenAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.AssistantName != "JARVIS" {
		t.Errorf("default assistant name = %q", cfg.General.AssistantName)
	}
	if cfg.Audio.CaptureSeconds != 3 {
		t.Errorf("default capture seconds = %d", cfg.Audio.CaptureSeconds)
	}
	if len(cfg.Setup.Packages) == 0 {
		t.Error("default package list is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("defaults were not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != domain.SecureFilePermissions {
		t.Errorf("settings document mode = %o, want %o", perm, domain.SecureFilePermissions)
	}
}

func TestLoadReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `general:
  assistant_name: FRIDAY
  wake_word: friday
audio:
  capture_seconds: 5
  min_volume_percent: 60
speech:
  engines: [espeak]
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.AssistantName != "FRIDAY" {
		t.Errorf("assistant name = %q", cfg.General.AssistantName)
	}
	if cfg.Audio.CaptureSeconds != 5 {
		t.Errorf("capture seconds = %d", cfg.Audio.CaptureSeconds)
	}
	if len(cfg.Speech.Engines) != 1 || cfg.Speech.Engines[0] != "espeak" {
		t.Errorf("engines = %v", cfg.Speech.Engines)
	}
}

func TestLoadHydratesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("general:\n  debug: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.General.Debug {
		t.Error("explicit value lost during hydration")
	}
	if cfg.ConfigFormatVersion != "1" {
		t.Errorf("format version = %q, want 1", cfg.ConfigFormatVersion)
	}
	if cfg.Audio.CaptureSeconds != 3 {
		t.Errorf("hydrated capture seconds = %d, want 3", cfg.Audio.CaptureSeconds)
	}
	if cfg.Audio.SampleRate != domain.DefaultSampleRate {
		t.Errorf("hydrated sample rate = %d", cfg.Audio.SampleRate)
	}
	if cfg.Setup.RuntimeRoot == "" {
		t.Error("runtime root not hydrated")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("audio: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestPathHonorsEnvOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("JARVIS_CONFIG", override)

	loader := NewFileLoader("")
	if got := loader.Path(); got != override {
		t.Errorf("Path() = %q, want %q", got, override)
	}
}

func TestExplicitPathBeatsEnv(t *testing.T) {
	t.Setenv("JARVIS_CONFIG", "/elsewhere/config.yaml")
	explicit := filepath.Join(t.TempDir(), "config.yaml")

	if got := NewFileLoader(explicit).Path(); got != explicit {
		t.Errorf("Path() = %q, want %q", got, explicit)
	}
}

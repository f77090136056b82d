package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/falmaashani/jarvisctl/internal/domain"
	"github.com/falmaashani/jarvisctl/internal/pkg/filesystem"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// FileLoader loads YAML configuration from ~/.jarvis/config.yaml
// (overridable via JARVIS_CONFIG). A missing file is written with the
// defaults so the first run leaves a settings document behind.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	// A .env beside the working directory may override JARVIS_* vars.
	_ = godotenv.Load()
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the resolved configuration file location.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("JARVIS_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".jarvis", "config.yaml")
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		General: domain.GeneralSettings{
			AssistantName: "JARVIS",
			WakeWord:      "jarvis",
		},
		Audio: domain.AudioSettings{
			RequiredTools:    []string{"arecord", "aplay", "amixer", "pactl", "speaker-test"},
			CaptureSeconds:   3,
			MinCaptureBytes:  domain.DefaultMinCaptureBytes,
			MinVolumePercent: domain.DefaultMinVolumePercent,
			SampleRate:       domain.DefaultSampleRate,
		},
		Speech: domain.SpeechSettings{
			Engines:    []string{"espeak", "festival", "spd-say"},
			TestPhrase: domain.DefaultTestPhrase,
		},
		Setup: domain.SetupSettings{
			Packages: []string{
				"python3-venv",
				"portaudio19-dev",
				"alsa-utils",
				"pulseaudio",
				"espeak",
				"festival",
				"flac",
			},
			RuntimeRoot: filepath.Join(filesystem.UserHomeDir(), ".jarvis", "venv"),
			DataDirs:    []string{"logs", "history"},
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Audio.CaptureSeconds == 0 {
		cfg.Audio.CaptureSeconds = 3
	}
	if cfg.Audio.MinCaptureBytes == 0 {
		cfg.Audio.MinCaptureBytes = domain.DefaultMinCaptureBytes
	}
	if cfg.Audio.SampleRate == 0 {
		cfg.Audio.SampleRate = domain.DefaultSampleRate
	}
	if cfg.Setup.RuntimeRoot == "" {
		cfg.Setup.RuntimeRoot = filepath.Join(filesystem.UserHomeDir(), ".jarvis", "venv")
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)

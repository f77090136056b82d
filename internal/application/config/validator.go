package config

import (
	"fmt"

	"github.com/falmaashani/jarvisctl/internal/domain"
)

var knownEngines = map[string]bool{
	"espeak":    true,
	"espeak-ng": true,
	"festival":  true,
	"spd-say":   true,
}

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if cfg.Audio.CaptureSeconds < 0 {
		return fmt.Errorf("audio.capture_seconds must not be negative")
	}
	if cfg.Audio.MinCaptureBytes < 0 {
		return fmt.Errorf("audio.min_capture_bytes must not be negative")
	}
	if cfg.Audio.MinVolumePercent < 0 || cfg.Audio.MinVolumePercent > 100 {
		return fmt.Errorf("audio.min_volume_percent must be within 0-100")
	}
	if cfg.Audio.SampleRate < 0 {
		return fmt.Errorf("audio.sample_rate must not be negative")
	}
	for _, engine := range cfg.Speech.Engines {
		if !knownEngines[engine] {
			return fmt.Errorf("speech.engines: unsupported engine %q", engine)
		}
	}
	for _, pkg := range cfg.Setup.Packages {
		if pkg == "" {
			return fmt.Errorf("setup.packages: empty package name")
		}
	}
	return nil
}

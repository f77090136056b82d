package config

import (
	"strings"
	"testing"

	"github.com/falmaashani/jarvisctl/internal/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{
			name:   "zero value is valid",
			mutate: func(*domain.Config) {},
		},
		{
			name: "full valid config",
			mutate: func(c *domain.Config) {
				c.Audio.CaptureSeconds = 3
				c.Audio.MinCaptureBytes = 1000
				c.Audio.MinVolumePercent = 40
				c.Audio.SampleRate = 16000
				c.Speech.Engines = []string{"espeak", "festival"}
				c.Setup.Packages = []string{"alsa-utils"}
			},
		},
		{
			name:    "negative capture seconds",
			mutate:  func(c *domain.Config) { c.Audio.CaptureSeconds = -1 },
			wantErr: "capture_seconds",
		},
		{
			name:    "negative silence threshold",
			mutate:  func(c *domain.Config) { c.Audio.MinCaptureBytes = -1 },
			wantErr: "min_capture_bytes",
		},
		{
			name:    "volume over 100",
			mutate:  func(c *domain.Config) { c.Audio.MinVolumePercent = 150 },
			wantErr: "min_volume_percent",
		},
		{
			name:    "unknown speech engine",
			mutate:  func(c *domain.Config) { c.Speech.Engines = []string{"mimic3"} },
			wantErr: "unsupported engine",
		},
		{
			name:    "empty package name",
			mutate:  func(c *domain.Config) { c.Setup.Packages = []string{"espeak", ""} },
			wantErr: "empty package name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg domain.Config
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

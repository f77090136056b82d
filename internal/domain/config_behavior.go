package domain

import "time"

// CaptureDuration returns the microphone probe capture duration,
// falling back to the default when unset.
func (c *Config) CaptureDuration() time.Duration {
	if c.Audio.CaptureSeconds <= 0 {
		return DefaultCaptureDuration
	}
	return time.Duration(c.Audio.CaptureSeconds) * time.Second
}

// SilenceThreshold returns the minimum capture size in bytes that
// counts as a non-silent recording.
func (c *Config) SilenceThreshold() int64 {
	if c.Audio.MinCaptureBytes <= 0 {
		return DefaultMinCaptureBytes
	}
	return c.Audio.MinCaptureBytes
}

// VolumeFloor returns the advisory minimum mixer volume percentage.
func (c *Config) VolumeFloor() int {
	if c.Audio.MinVolumePercent <= 0 {
		return DefaultMinVolumePercent
	}
	return c.Audio.MinVolumePercent
}

// EnginePriority returns the ordered text-to-speech engine list,
// falling back to the default chain when none is configured.
func (c *Config) EnginePriority() []string {
	if len(c.Speech.Engines) == 0 {
		return []string{"espeak", "festival", "spd-say"}
	}
	return c.Speech.Engines
}

// SpeechTestPhrase returns the phrase used when exercising an engine.
func (c *Config) SpeechTestPhrase() string {
	if c.Speech.TestPhrase == "" {
		return DefaultTestPhrase
	}
	return c.Speech.TestPhrase
}

// ToolSet returns the executables required by the diagnostic pipeline.
func (c *Config) ToolSet() []string {
	if len(c.Audio.RequiredTools) == 0 {
		return []string{"arecord", "aplay", "amixer", "pactl", "speaker-test"}
	}
	return c.Audio.RequiredTools
}

// HasEngine reports whether the given engine name is configured.
func (c *Config) HasEngine(name string) bool {
	for _, engine := range c.EnginePriority() {
		if engine == name {
			return true
		}
	}
	return false
}

package domain

// Config mirrors ~/.jarvis/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	General             GeneralSettings `yaml:"general"`
	Audio               AudioSettings   `yaml:"audio"`
	Speech              SpeechSettings  `yaml:"speech"`
	Setup               SetupSettings   `yaml:"setup"`
}

// GeneralSettings captures user level toggles.
type GeneralSettings struct {
	AssistantName string `yaml:"assistant_name"`
	WakeWord      string `yaml:"wake_word"`
	Debug         bool   `yaml:"debug"`
}

// AudioSettings configures the diagnostic pipeline and the capture path.
type AudioSettings struct {
	// RequiredTools are the executables the pipeline expects on PATH.
	RequiredTools []string `yaml:"required_tools"`
	// CaptureSeconds is the fixed recording duration for the microphone probe.
	CaptureSeconds int `yaml:"capture_seconds"`
	// MinCaptureBytes is the silence threshold: captures at or below this
	// size are treated as recording nothing.
	MinCaptureBytes int64 `yaml:"min_capture_bytes"`
	// MinVolumePercent is the advisory floor for the mixer probe.
	MinVolumePercent int `yaml:"min_volume_percent"`
	// SampleRate is passed to the capture command (Hz).
	SampleRate int `yaml:"sample_rate"`
}

// SpeechSettings configures text-to-speech diagnostics.
type SpeechSettings struct {
	// Engines is the priority-ordered list of synthesis commands to try.
	Engines []string `yaml:"engines"`
	// TestPhrase is spoken by whichever engine is exercised.
	TestPhrase string `yaml:"test_phrase"`
}

// SetupSettings drives host provisioning.
type SetupSettings struct {
	// Packages are the OS packages the setup command ensures are present.
	Packages []string `yaml:"packages"`
	// RuntimeRoot is where the Python virtual environment is created.
	RuntimeRoot string `yaml:"runtime_root"`
	// DataDirs are created under the user home during setup.
	DataDirs []string `yaml:"data_dirs"`
}

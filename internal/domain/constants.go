package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Diagnostic pipeline constants
const (
	// DefaultCaptureDuration is how long the microphone probe records.
	DefaultCaptureDuration = 3 * time.Second
	// DefaultMinCaptureBytes is the silence threshold for a capture.
	DefaultMinCaptureBytes = 1000
	// DefaultMinVolumePercent is the advisory mixer volume floor.
	DefaultMinVolumePercent = 40
	// DefaultSampleRate is the capture sample rate in Hz.
	DefaultSampleRate = 16000
	// ServiceSettleDelay is the wait after starting the audio server
	// before the running state is re-checked.
	ServiceSettleDelay = 2 * time.Second
	// ToneDuration is how long the synthetic fallback tone plays.
	ToneDuration = 3 * time.Second
)

// Command timeouts
const (
	// DefaultProbeTimeout bounds a single non-interactive collaborator call.
	DefaultProbeTimeout = 10 * time.Second
	// DefaultInstallTimeout bounds a single package installation.
	DefaultInstallTimeout = 5 * time.Minute
)

// Speech constants
const (
	// DefaultTestPhrase is spoken by the text-to-speech probe.
	DefaultTestPhrase = "Hello, I am your voice assistant. Can you hear me?"
)

// Journal constants
const (
	// DefaultHistoryLimit is the default number of run records to display.
	DefaultHistoryLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)

// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like audio tooling, package managers, or CLI frameworks.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Recorder, DeviceLister)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"
	"time"

	"github.com/falmaashani/jarvisctl/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.jarvis/config.yaml and write the
// defaults when the file is absent.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ToolLocator resolves executable names against the search path.
// The lookup is read-only and never blocks beyond a single resolution.
type ToolLocator interface {
	Resolve(name string) (string, bool)
}

// DeviceLister enumerates audio hardware. Input and output devices are
// queried independently so a half-equipped system still reports the
// class it does have. Results are never cached across calls.
type DeviceLister interface {
	InputDevices(ctx context.Context) ([]domain.AudioDevice, error)
	OutputDevices(ctx context.Context) ([]domain.AudioDevice, error)
}

// Recorder captures audio from the default input device to a file and
// reports the resulting artifact size in bytes.
type Recorder interface {
	Record(ctx context.Context, path string, duration time.Duration) (int64, error)
}

// Player plays back a recorded artifact or a synthetic test tone.
type Player interface {
	PlayFile(ctx context.Context, path string) error
	PlayTone(ctx context.Context, duration time.Duration) error
}

// Synthesizer speaks a phrase through a named text-to-speech engine.
type Synthesizer interface {
	Speak(ctx context.Context, engine, phrase string) error
}

// ServiceController inspects and starts the backing audio server.
type ServiceController interface {
	Running(ctx context.Context) bool
	Start(ctx context.Context) error
}

// MixerReader reads the master playback volume as a percentage.
type MixerReader interface {
	MasterVolume(ctx context.Context) (int, error)
}

// Confirmer solicits a yes/no answer from the operator. Tests substitute
// a scripted responder; the real implementation blocks on the terminal
// with no timeout since audible confirmation cannot be automated.
type Confirmer interface {
	Confirm(question string) (bool, error)
	Enabled() bool
}

// PackageManager ensures OS packages are present.
type PackageManager interface {
	Installed(ctx context.Context, name string) (bool, error)
	Install(ctx context.Context, name string) error
}

// RuntimeActivator prepares the language runtime sandbox rooted at the
// given path, creating it when absent.
type RuntimeActivator interface {
	Activate(ctx context.Context, root string) (domain.RuntimeResult, error)
}

// ShellIntegrator manages the assistant alias in shell rc files.
type ShellIntegrator interface {
	Install(shell string, force bool) (domain.ShellInstallResult, error)
	Uninstall(shell string) (domain.ShellInstallResult, error)
	Status(shell string) domain.ShellStatus
	DetectShell() string
}

// RunJournal persists diagnostic run summaries. The journal is append
// only telemetry: the diagnostic pipeline never reads it back, so no
// probe outcome can depend on a previous run.
type RunJournal interface {
	SaveRun(record domain.RunRecord) error
	Runs(limit int) ([]domain.RunRecord, error)
	Clear() error
}

// SystemInspector describes the host for report metadata.
type SystemInspector interface {
	OSDescription() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/falmaashani/jarvisctl/internal/domain"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// Service runs non-interactive environment diagnostics: everything the
// audiotest pipeline covers except the probes that need an operator.
// Suitable for scripted health checks.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	Tools           ports.ToolLocator
	Devices         ports.DeviceLister
	AudioServer     ports.ServiceController
	Runtime         ports.RuntimeActivator
	ShellIntegrator ports.ShellIntegrator
	Journal         ports.RunJournal
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded version %s", cfg.ConfigFormatVersion)))

	checks = append(checks, s.toolCheck(cfg))
	checks = append(checks, s.deviceChecks(ctx)...)
	checks = append(checks, s.serviceCheck(ctx))
	checks = append(checks, s.runtimeCheck(cfg))
	checks = append(checks, s.engineCheck(cfg))

	if s.ShellIntegrator != nil {
		checks = append(checks, shellDiagnostics(s.ShellIntegrator, domain.ShellZsh))
		checks = append(checks, shellDiagnostics(s.ShellIntegrator, domain.ShellBash))
	}

	if s.Journal != nil {
		if _, err := s.Journal.Runs(1); err != nil {
			checks = append(checks, warn("Run journal", err.Error()))
		} else {
			checks = append(checks, ok("Run journal", "readable"))
		}
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) toolCheck(cfg domain.Config) domain.HealthCheck {
	missing := 0
	for _, tool := range cfg.ToolSet() {
		if _, found := s.Tools.Resolve(tool); !found {
			missing++
		}
	}
	if missing > 0 {
		return warn("Audio tools", fmt.Sprintf("%d of %d required tools missing", missing, len(cfg.ToolSet())))
	}
	return ok("Audio tools", fmt.Sprintf("all %d present", len(cfg.ToolSet())))
}

func (s *Service) deviceChecks(ctx context.Context) []domain.HealthCheck {
	var checks []domain.HealthCheck
	if inputs, err := s.Devices.InputDevices(ctx); err != nil {
		checks = append(checks, warn("Capture devices", err.Error()))
	} else if len(inputs) == 0 {
		checks = append(checks, fail("Capture devices", "none found"))
	} else {
		checks = append(checks, ok("Capture devices", fmt.Sprintf("%d found", len(inputs))))
	}
	if outputs, err := s.Devices.OutputDevices(ctx); err != nil {
		checks = append(checks, warn("Playback devices", err.Error()))
	} else if len(outputs) == 0 {
		checks = append(checks, fail("Playback devices", "none found"))
	} else {
		checks = append(checks, ok("Playback devices", fmt.Sprintf("%d found", len(outputs))))
	}
	return checks
}

func (s *Service) serviceCheck(ctx context.Context) domain.HealthCheck {
	if s.AudioServer.Running(ctx) {
		return ok("Audio service", "running")
	}
	// Doctor observes; it never mutates the host, so no start attempt.
	return warn("Audio service", "not running (audiotest will try to start it)")
}

func (s *Service) runtimeCheck(cfg domain.Config) domain.HealthCheck {
	root := cfg.Setup.RuntimeRoot
	if root == "" {
		return warn("Python runtime", "setup.runtime_root not configured")
	}
	if _, err := os.Stat(root); err != nil {
		return warn("Python runtime", fmt.Sprintf("sandbox missing at %s (run: jarvisctl setup)", root))
	}
	return ok("Python runtime", root)
}

func (s *Service) engineCheck(cfg domain.Config) domain.HealthCheck {
	for _, engine := range cfg.EnginePriority() {
		if _, found := s.Tools.Resolve(engine); found {
			return ok("Speech engines", engine+" available")
		}
	}
	return warn("Speech engines", "none installed")
}

func shellDiagnostics(installer ports.ShellIntegrator, shell domain.ShellName) domain.HealthCheck {
	status := installer.Status(string(shell))
	name := fmt.Sprintf("Shell %s", shell)
	if status.Error != "" {
		return warn(name, status.Error)
	}
	if status.LinePresent {
		return ok(name, fmt.Sprintf("alias active (%s)", status.RCFile))
	}
	return warn(name, "alias not installed")
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}

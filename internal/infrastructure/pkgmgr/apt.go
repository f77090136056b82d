// Package pkgmgr ensures OS packages are present via the system
// package manager. The manager itself is an opaque collaborator; this
// adapter only asks "is P installed" and "install P".
package pkgmgr

import (
	"context"
	"fmt"

	"github.com/falmaashani/jarvisctl/internal/domain"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/execrunner"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// Apt queries dpkg and installs through apt-get.
type Apt struct {
	runner execrunner.Runner
}

// NewApt builds the adapter.
func NewApt(runner execrunner.Runner) *Apt {
	return &Apt{runner: runner}
}

// Installed checks package state via dpkg -s. A non-zero exit simply
// means the package is not installed.
func (a *Apt) Installed(ctx context.Context, name string) (bool, error) {
	res := a.runner.Run(ctx, "dpkg", "-s", name)
	if res.Err != nil && res.ExitCode < 0 {
		return false, fmt.Errorf("dpkg: %w", res.Err)
	}
	return res.ExitCode == 0, nil
}

// Install runs apt-get install non-interactively, bounded by the
// install timeout so a stuck mirror cannot hang setup forever.
func (a *Apt) Install(ctx context.Context, name string) error {
	installCtx, cancel := context.WithTimeout(ctx, domain.DefaultInstallTimeout)
	defer cancel()
	res := a.runner.Run(installCtx, "apt-get", "install", "-y", name)
	if !res.OK() {
		if res.Err != nil {
			return fmt.Errorf("apt-get install %s: %w", name, res.Err)
		}
		return fmt.Errorf("apt-get install %s: exit status %d", name, res.ExitCode)
	}
	return nil
}

var _ ports.PackageManager = (*Apt)(nil)

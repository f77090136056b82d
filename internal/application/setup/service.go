// Package setup provisions the voice assistant host: OS packages, the
// Python runtime sandbox, data directories, the settings document and
// the optional shell alias. Steps are sequential and order
// independent; a failed step is recorded and the rest still run.
package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/falmaashani/jarvisctl/internal/domain"
	"github.com/falmaashani/jarvisctl/internal/pkg/filesystem"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// Service runs provisioning actions.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	Packages        ports.PackageManager
	Runtime         ports.RuntimeActivator
	ShellIntegrator ports.ShellIntegrator
	Logger          ports.Logger
}

// Options selects optional provisioning steps.
type Options struct {
	// SkipPackages leaves OS package installation to the operator
	// (useful on hosts without sudo access).
	SkipPackages bool
	// Shell, when non-empty, installs the assistant alias for that
	// shell ("auto" detects from $SHELL).
	Shell string
}

// Run executes the provisioning sequence and reports per-action results.
func (s *Service) Run(ctx context.Context, opts Options) (domain.SetupReport, error) {
	var report domain.SetupReport

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		report.Actions = append(report.Actions, failed("settings document", err.Error()))
		return report, err
	}
	report.Actions = append(report.Actions, done("settings document", "present"))

	if opts.SkipPackages {
		report.Actions = append(report.Actions, skipped("os packages", "skipped by request"))
	} else {
		report.Actions = append(report.Actions, s.ensurePackages(ctx, cfg)...)
	}

	report.Actions = append(report.Actions, s.ensureDataDirs(cfg)...)
	report.Actions = append(report.Actions, s.ensureRuntime(ctx, cfg))

	if opts.Shell != "" {
		report.Actions = append(report.Actions, s.installAlias(opts.Shell))
	}

	return report, nil
}

// ensurePackages checks each package before installing so an already
// provisioned host makes no package manager mutations.
func (s *Service) ensurePackages(ctx context.Context, cfg domain.Config) []domain.ActionResult {
	var actions []domain.ActionResult
	for _, pkg := range cfg.Setup.Packages {
		name := "package " + pkg
		present, err := s.Packages.Installed(ctx, pkg)
		if err != nil {
			actions = append(actions, failed(name, err.Error()))
			continue
		}
		if present {
			actions = append(actions, skipped(name, "already installed"))
			continue
		}
		if err := s.Packages.Install(ctx, pkg); err != nil {
			actions = append(actions, failed(name, err.Error()))
			continue
		}
		actions = append(actions, done(name, "installed"))
	}
	return actions
}

func (s *Service) ensureDataDirs(cfg domain.Config) []domain.ActionResult {
	var actions []domain.ActionResult
	base := filesystem.JarvisDir()
	for _, dir := range cfg.Setup.DataDirs {
		path := filepath.Join(base, dir)
		name := "directory " + path
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			actions = append(actions, skipped(name, "exists"))
			continue
		}
		if err := os.MkdirAll(path, domain.DirectoryPermissions); err != nil {
			actions = append(actions, failed(name, err.Error()))
			continue
		}
		actions = append(actions, done(name, "created"))
	}
	return actions
}

func (s *Service) ensureRuntime(ctx context.Context, cfg domain.Config) domain.ActionResult {
	result, err := s.Runtime.Activate(ctx, cfg.Setup.RuntimeRoot)
	if err != nil {
		return failed("python runtime", err.Error())
	}
	if result.Created {
		return done("python runtime", fmt.Sprintf("created sandbox at %s", result.Root))
	}
	return skipped("python runtime", fmt.Sprintf("sandbox present at %s", result.Root))
}

func (s *Service) installAlias(shell string) domain.ActionResult {
	if shell == "auto" {
		shell = ""
	}
	result, err := s.ShellIntegrator.Install(shell, false)
	if err != nil {
		return failed("shell alias", err.Error())
	}
	if result.RCUpdated {
		return done("shell alias", fmt.Sprintf("added to %s", result.RCFile))
	}
	return skipped("shell alias", "already present")
}

func done(name, detail string) domain.ActionResult {
	return domain.ActionResult{Name: name, Status: domain.ActionDone, Detail: detail}
}

func skipped(name, detail string) domain.ActionResult {
	return domain.ActionResult{Name: name, Status: domain.ActionSkipped, Detail: detail}
}

func failed(name, detail string) domain.ActionResult {
	return domain.ActionResult{Name: name, Status: domain.ActionFailed, Detail: detail}
}

// Package shell injects the assistant alias into the user's rc file.
package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/falmaashani/jarvisctl/internal/domain"
	"github.com/falmaashani/jarvisctl/internal/pkg/filesystem"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// aliasLine is the single line added to the rc file.
const aliasLine = "alias jarvis='jarvisctl'"

// Installer manages the alias line in bash/zsh rc files.
type Installer struct {
	logger ports.Logger
}

// NewInstaller builds a shell installer.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{logger: logger}
}

// Install adds the alias for the given shell (auto-detected when empty).
func (i *Installer) Install(shell string, force bool) (domain.ShellInstallResult, error) {
	name := normalizeShell(shell)
	rcFile := rcFileFor(name)
	if rcFile == "" {
		return domain.ShellInstallResult{}, fmt.Errorf("unsupported shell: %s", shell)
	}

	updated, err := ensureRCLine(rcFile, aliasLine, force)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	return domain.ShellInstallResult{
		Shell:     name,
		RCFile:    rcFile,
		RCUpdated: updated,
	}, nil
}

// Uninstall removes the alias line from the rc file.
func (i *Installer) Uninstall(shell string) (domain.ShellInstallResult, error) {
	name := normalizeShell(shell)
	rcFile := rcFileFor(name)
	if rcFile == "" {
		return domain.ShellInstallResult{}, fmt.Errorf("unsupported shell: %s", shell)
	}
	updated, err := removeRCLine(rcFile, aliasLine)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	return domain.ShellInstallResult{
		Shell:     name,
		RCFile:    rcFile,
		RCUpdated: updated,
	}, nil
}

// Status reports whether the alias line is present.
func (i *Installer) Status(shell string) domain.ShellStatus {
	name := normalizeShell(shell)
	rcFile := rcFileFor(name)
	status := domain.ShellStatus{Shell: name, RCFile: rcFile}
	if rcFile == "" {
		status.Error = "unsupported shell"
		return status
	}
	if contents, err := os.ReadFile(rcFile); err == nil {
		status.LinePresent = strings.Contains(string(contents), aliasLine)
	}
	return status
}

// DetectShell inspects the SHELL env var.
func (i *Installer) DetectShell() string {
	return os.Getenv("SHELL")
}

func normalizeShell(shell string) domain.ShellName {
	if shell == "" {
		shell = filepath.Base(os.Getenv("SHELL"))
	}
	switch strings.ToLower(shell) {
	case "zsh":
		return domain.ShellZsh
	case "bash":
		return domain.ShellBash
	default:
		return domain.ShellUnknown
	}
}

func rcFileFor(shell domain.ShellName) string {
	home := filesystem.UserHomeDir()
	switch shell {
	case domain.ShellZsh:
		return filepath.Join(home, ".zshrc")
	case domain.ShellBash:
		return filepath.Join(home, ".bashrc")
	default:
		return ""
	}
}

func ensureRCLine(path string, line string, force bool) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte(headerComment()+line+"\n"), 0o644); err != nil {
			return false, err
		}
		return true, nil
	}
	if strings.Contains(string(contents), line) && !force {
		return false, nil
	}
	lines := strings.Split(string(contents), "\n")
	var filtered []string
	for _, existing := range lines {
		if strings.Contains(existing, line) {
			continue
		}
		filtered = append(filtered, existing)
	}
	filtered = append(filtered, line)
	final := strings.Join(filtered, "\n")
	if !strings.HasSuffix(final, "\n") {
		final += "\n"
	}
	return true, os.WriteFile(path, []byte(final), 0o644)
}

func removeRCLine(path string, line string) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	lines := strings.Split(string(contents), "\n")
	var filtered []string
	removed := false
	for _, existing := range lines {
		if strings.Contains(existing, line) {
			removed = true
			continue
		}
		filtered = append(filtered, existing)
	}
	if !removed {
		return false, nil
	}
	final := strings.Join(filtered, "\n")
	if !strings.HasSuffix(final, "\n") {
		final += "\n"
	}
	return true, os.WriteFile(path, []byte(final), 0o644)
}

func headerComment() string {
	return "# Added by jarvisctl setup\n"
}

var _ ports.ShellIntegrator = (*Installer)(nil)

package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/falmaashani/jarvisctl/internal/domain"
)

func TestInstallCreatesRCFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	installer := NewInstaller(nil)

	result, err := installer.Install("bash", false)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if !result.RCUpdated {
		t.Error("fresh install should report an update")
	}
	if result.Shell != domain.ShellBash {
		t.Errorf("shell = %q", result.Shell)
	}

	contents, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	if err != nil {
		t.Fatalf("rc file missing: %v", err)
	}
	if !strings.Contains(string(contents), aliasLine) {
		t.Errorf("alias line missing from rc file:\n%s", contents)
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	installer := NewInstaller(nil)

	if _, err := installer.Install("zsh", false); err != nil {
		t.Fatalf("first Install() error = %v", err)
	}
	result, err := installer.Install("zsh", false)
	if err != nil {
		t.Fatalf("second Install() error = %v", err)
	}
	if result.RCUpdated {
		t.Error("second install should be a no-op")
	}

	contents, _ := os.ReadFile(filepath.Join(home, ".zshrc"))
	if got := strings.Count(string(contents), aliasLine); got != 1 {
		t.Errorf("alias appears %d times, want 1", got)
	}
}

func TestInstallPreservesExistingContent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	rc := filepath.Join(home, ".bashrc")
	if err := os.WriteFile(rc, []byte("export EDITOR=vim\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewInstaller(nil).Install("bash", false); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	contents, _ := os.ReadFile(rc)
	if !strings.Contains(string(contents), "export EDITOR=vim") {
		t.Errorf("existing content lost:\n%s", contents)
	}
	if !strings.Contains(string(contents), aliasLine) {
		t.Errorf("alias line missing:\n%s", contents)
	}
}

func TestUninstallRemovesAliasOnly(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	installer := NewInstaller(nil)
	rc := filepath.Join(home, ".bashrc")
	if err := os.WriteFile(rc, []byte("export EDITOR=vim\n"+aliasLine+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := installer.Uninstall("bash")
	if err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}
	if !result.RCUpdated {
		t.Error("uninstall should report an update when the alias was present")
	}
	contents, _ := os.ReadFile(rc)
	if strings.Contains(string(contents), aliasLine) {
		t.Errorf("alias still present:\n%s", contents)
	}
	if !strings.Contains(string(contents), "export EDITOR=vim") {
		t.Errorf("unrelated content lost:\n%s", contents)
	}
}

func TestUninstallWithoutRCFileIsNoOp(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	result, err := NewInstaller(nil).Uninstall("zsh")
	if err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}
	if result.RCUpdated {
		t.Error("nothing to remove, should not report an update")
	}
}

func TestStatusReportsAliasPresence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	installer := NewInstaller(nil)

	status := installer.Status("bash")
	if status.LinePresent {
		t.Error("alias reported present before install")
	}

	if _, err := installer.Install("bash", false); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	status = installer.Status("bash")
	if !status.LinePresent {
		t.Error("alias reported absent after install")
	}
}

func TestUnsupportedShellIsRejected(t *testing.T) {
	t.Setenv("SHELL", "/bin/fish")
	installer := NewInstaller(nil)

	if _, err := installer.Install("fish", false); err == nil {
		t.Error("Install() accepted an unsupported shell")
	}
	if status := installer.Status("fish"); status.Error == "" {
		t.Error("Status() missing error for an unsupported shell")
	}
}

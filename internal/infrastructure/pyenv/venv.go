// Package pyenv prepares the assistant's Python runtime sandbox.
package pyenv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/falmaashani/jarvisctl/internal/domain"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/execrunner"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// Venv creates and verifies a python3 virtual environment.
type Venv struct {
	runner execrunner.Runner
}

// NewVenv builds the activator.
func NewVenv(runner execrunner.Runner) *Venv {
	return &Venv{runner: runner}
}

// Activate ensures the sandbox exists at root and verifies its layout.
// An existing, well-formed sandbox is left untouched.
func (v *Venv) Activate(ctx context.Context, root string) (domain.RuntimeResult, error) {
	result := domain.RuntimeResult{Root: root}

	if sandboxValid(root) {
		result.Interpreter = interpreterPath(root)
		return result, nil
	}

	res := v.runner.Run(ctx, "python3", "-m", "venv", root)
	if !res.OK() {
		if res.Err != nil {
			return result, fmt.Errorf("python3 -m venv: %w", res.Err)
		}
		return result, fmt.Errorf("python3 -m venv: %s", res.Stderr)
	}
	if !sandboxValid(root) {
		return result, fmt.Errorf("venv created but layout invalid at %s", root)
	}

	result.Created = true
	result.Interpreter = interpreterPath(root)
	return result, nil
}

// sandboxValid requires the bin/ and lib/ directories a usable venv has.
func sandboxValid(root string) bool {
	for _, sub := range []string{"bin", "lib"} {
		info, err := os.Stat(filepath.Join(root, sub))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}

func interpreterPath(root string) string {
	return filepath.Join(root, "bin", "python3")
}

var _ ports.RuntimeActivator = (*Venv)(nil)

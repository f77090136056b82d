// Package tools resolves collaborator executables on the search path.
package tools

import (
	"os/exec"

	"github.com/falmaashani/jarvisctl/internal/ports"
)

// PathLocator resolves names with exec.LookPath.
type PathLocator struct{}

// NewPathLocator builds the locator.
func NewPathLocator() PathLocator {
	return PathLocator{}
}

// Resolve implements ports.ToolLocator.
func (PathLocator) Resolve(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

var _ ports.ToolLocator = PathLocator{}

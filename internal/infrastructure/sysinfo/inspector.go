// Package sysinfo describes the host for report metadata.
package sysinfo

import (
	"os"
	"runtime"
	"strings"

	"github.com/falmaashani/jarvisctl/internal/ports"
)

// Inspector reads host facts from the filesystem.
type Inspector struct {
	osReleasePath string
}

// NewInspector builds an inspector against /etc/os-release.
func NewInspector() *Inspector {
	return &Inspector{osReleasePath: "/etc/os-release"}
}

// OSDescription returns the distribution's PRETTY_NAME, falling back
// to the Go runtime identifiers when os-release is unavailable.
func (i *Inspector) OSDescription() string {
	if data, err := os.ReadFile(i.osReleasePath); err == nil {
		if name := prettyName(string(data)); name != "" {
			return name
		}
	}
	return runtime.GOOS + "/" + runtime.GOARCH
}

func prettyName(contents string) string {
	for _, line := range strings.Split(contents, "\n") {
		if value, found := strings.CutPrefix(line, "PRETTY_NAME="); found {
			return strings.Trim(strings.TrimSpace(value), `"`)
		}
	}
	return ""
}

var _ ports.SystemInspector = (*Inspector)(nil)

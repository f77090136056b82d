package audio

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/falmaashani/jarvisctl/internal/infrastructure/execrunner"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// Mixer reads ALSA mixer levels via amixer.
type Mixer struct {
	runner execrunner.Runner
}

// NewMixer builds the adapter.
func NewMixer(runner execrunner.Runner) *Mixer {
	return &Mixer{runner: runner}
}

var volumePattern = regexp.MustCompile(`\[(\d+)%\]`)

// MasterVolume returns the Master playback volume percentage.
func (m *Mixer) MasterVolume(ctx context.Context) (int, error) {
	res := m.runner.Run(ctx, "amixer", "get", "Master")
	if !res.OK() {
		return 0, fmt.Errorf("amixer: %s", commandFailure(res))
	}
	return ParseVolume(res.Stdout)
}

// ParseVolume extracts the first percentage from amixer output.
func ParseVolume(output string) (int, error) {
	m := volumePattern.FindStringSubmatch(output)
	if m == nil {
		return 0, fmt.Errorf("no volume percentage in amixer output")
	}
	return strconv.Atoi(m[1])
}

var _ ports.MixerReader = (*Mixer)(nil)

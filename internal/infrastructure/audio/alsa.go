// Package audio adapts the host's ALSA and PulseAudio command line
// tooling to the diagnostic ports. Every operation shells out to the
// same commands an operator would run by hand, so a failing probe can
// be reproduced directly from its detail text.
package audio

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/falmaashani/jarvisctl/internal/domain"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/execrunner"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// ALSA wraps arecord/aplay/speaker-test.
type ALSA struct {
	runner     execrunner.Runner
	sampleRate int
}

// NewALSA builds the adapter. sampleRate falls back to the domain default.
func NewALSA(runner execrunner.Runner, sampleRate int) *ALSA {
	if sampleRate <= 0 {
		sampleRate = domain.DefaultSampleRate
	}
	return &ALSA{runner: runner, sampleRate: sampleRate}
}

// cardLine matches arecord/aplay -l inventory lines, e.g.
// "card 0: PCH [HDA Intel PCH], device 0: ALC892 Analog [ALC892 Analog]"
var cardLine = regexp.MustCompile(`^card (\d+): \S+ \[([^\]]+)\], device (\d+): [^\[]*\[([^\]]+)\]`)

// InputDevices lists capture hardware via arecord -l.
func (a *ALSA) InputDevices(ctx context.Context) ([]domain.AudioDevice, error) {
	return a.enumerate(ctx, "arecord")
}

// OutputDevices lists playback hardware via aplay -l.
func (a *ALSA) OutputDevices(ctx context.Context) ([]domain.AudioDevice, error) {
	return a.enumerate(ctx, "aplay")
}

func (a *ALSA) enumerate(ctx context.Context, tool string) ([]domain.AudioDevice, error) {
	res := a.runner.Run(ctx, tool, "-l")
	if res.Err != nil {
		// arecord -l exits non-zero on some systems with no devices;
		// treat that as an empty list rather than a hard failure.
		if res.ExitCode > 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("%s -l: %w", tool, res.Err)
	}
	return ParseDeviceList(res.Stdout), nil
}

// ParseDeviceList extracts devices from arecord/aplay -l output.
func ParseDeviceList(output string) []domain.AudioDevice {
	var devices []domain.AudioDevice
	for _, line := range strings.Split(output, "\n") {
		m := cardLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		card, _ := strconv.Atoi(m[1])
		device, _ := strconv.Atoi(m[3])
		devices = append(devices, domain.AudioDevice{
			CardID:   card,
			DeviceID: device,
			Label:    fmt.Sprintf("%s: %s", m[2], m[4]),
		})
	}
	return devices
}

// Record captures mono 16-bit audio for the given duration and returns
// the artifact size. A command failure and a zero-byte capture are
// reported separately so callers can tell permissions from silence.
func (a *ALSA) Record(ctx context.Context, path string, duration time.Duration) (int64, error) {
	seconds := int(duration / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	res := a.runner.Run(ctx, "arecord",
		"-q",
		"-f", "S16_LE",
		"-r", strconv.Itoa(a.sampleRate),
		"-c", "1",
		"-d", strconv.Itoa(seconds),
		path,
	)
	if !res.OK() {
		return 0, fmt.Errorf("arecord: %s", commandFailure(res))
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("arecord produced no artifact: %w", err)
	}
	return info.Size(), nil
}

// PlayFile plays a recorded artifact via aplay.
func (a *ALSA) PlayFile(ctx context.Context, path string) error {
	res := a.runner.Run(ctx, "aplay", "-q", path)
	if !res.OK() {
		return fmt.Errorf("aplay: %s", commandFailure(res))
	}
	return nil
}

// PlayTone plays one loop of the speaker-test sine tone. The context
// deadline bounds the run in case the tool ignores the loop count.
func (a *ALSA) PlayTone(ctx context.Context, duration time.Duration) error {
	toneCtx, cancel := context.WithTimeout(ctx, duration+domain.DefaultProbeTimeout)
	defer cancel()
	res := a.runner.Run(toneCtx, "speaker-test", "-t", "sine", "-f", "440", "-l", "1")
	if !res.OK() {
		return fmt.Errorf("speaker-test: %s", commandFailure(res))
	}
	return nil
}

func commandFailure(res execrunner.Result) string {
	detail := strings.TrimSpace(res.Stderr)
	if detail == "" && res.Err != nil {
		detail = res.Err.Error()
	}
	if detail == "" {
		detail = fmt.Sprintf("exit status %d", res.ExitCode)
	}
	return detail
}

var (
	_ ports.DeviceLister = (*ALSA)(nil)
	_ ports.Recorder     = (*ALSA)(nil)
	_ ports.Player       = (*ALSA)(nil)
)

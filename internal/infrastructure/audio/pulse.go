package audio

import (
	"context"
	"fmt"

	"github.com/falmaashani/jarvisctl/internal/infrastructure/execrunner"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// PulseServer controls the PulseAudio daemon.
type PulseServer struct {
	runner execrunner.Runner
}

// NewPulseServer builds the adapter.
func NewPulseServer(runner execrunner.Runner) *PulseServer {
	return &PulseServer{runner: runner}
}

// Running checks the daemon via pgrep, falling back to pactl info for
// setups where the daemon runs under a different process name.
func (p *PulseServer) Running(ctx context.Context) bool {
	if p.runner.Run(ctx, "pgrep", "-x", "pulseaudio").OK() {
		return true
	}
	return p.runner.Run(ctx, "pactl", "info").OK()
}

// Start launches the daemon. Exactly one attempt; the caller owns the
// settle delay and re-check.
func (p *PulseServer) Start(ctx context.Context) error {
	res := p.runner.Run(ctx, "pulseaudio", "--start")
	if !res.OK() {
		return fmt.Errorf("pulseaudio --start: %s", commandFailure(res))
	}
	return nil
}

var _ ports.ServiceController = (*PulseServer)(nil)

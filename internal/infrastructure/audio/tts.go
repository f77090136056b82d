package audio

import (
	"context"
	"fmt"

	"github.com/falmaashani/jarvisctl/internal/infrastructure/execrunner"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// Speech invokes text-to-speech engines by name.
type Speech struct {
	runner execrunner.Runner
}

// NewSpeech builds the adapter.
func NewSpeech(runner execrunner.Runner) *Speech {
	return &Speech{runner: runner}
}

// Speak runs the named engine with the phrase and waits for it to
// finish. Engine availability is the caller's concern; an unknown
// engine name is an error here.
func (s *Speech) Speak(ctx context.Context, engine, phrase string) error {
	args, err := engineArgs(engine, phrase)
	if err != nil {
		return err
	}
	res := s.runner.Run(ctx, engine, args...)
	if !res.OK() {
		return fmt.Errorf("%s: %s", engine, commandFailure(res))
	}
	return nil
}

func engineArgs(engine, phrase string) ([]string, error) {
	switch engine {
	case "espeak", "espeak-ng":
		return []string{phrase}, nil
	case "festival":
		return []string{"-b", fmt.Sprintf("(SayText %q)", phrase)}, nil
	case "spd-say":
		// -w blocks until the phrase has been spoken.
		return []string{"-w", phrase}, nil
	default:
		return nil, fmt.Errorf("unsupported speech engine: %s", engine)
	}
}

var _ ports.Synthesizer = (*Speech)(nil)

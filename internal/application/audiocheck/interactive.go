package audiocheck

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/falmaashani/jarvisctl/internal/domain"
)

// recordingProbe captures a short sample and judges it by size. When
// enumeration found no input devices the capture command is never
// invoked. The artifact survives only when the capture was good, so
// the playback probe can reuse it; failed captures are removed here
// and the orchestrator removes whatever is left at the end of the run.
func (s *Service) recordingProbe(ctx context.Context, cfg domain.Config, inputs []domain.AudioDevice, scratch string) (domain.ProbeResult, error) {
	if len(inputs) == 0 {
		return failure(domain.ProbeMicrophone, "no device"), nil
	}

	s.announce("Recording %d seconds of audio. Speak into the microphone now.", int(cfg.CaptureDuration().Seconds()))

	size, err := s.Recorder.Record(ctx, scratch, cfg.CaptureDuration())
	if err != nil {
		_ = os.Remove(scratch)
		if interrupted(ctx) {
			return domain.ProbeResult{}, ErrInterrupted
		}
		// A failed command is not the same as recorded silence: this
		// points at permissions or a claimed device, not hardware.
		return failure(domain.ProbeMicrophone, "capture command failed: "+err.Error()), nil
	}

	if size <= cfg.SilenceThreshold() {
		_ = os.Remove(scratch)
		result := failure(domain.ProbeMicrophone,
			fmt.Sprintf("recorded only %s, at or below the silence threshold", humanize.Bytes(uint64(size))))
		result.Evidence = &domain.ProbeEvidence{SizeBytes: size}
		return result, nil
	}

	return domain.ProbeResult{
		Name:     domain.ProbeMicrophone,
		Passed:   true,
		Detail:   fmt.Sprintf("captured %s of audio", humanize.Bytes(uint64(size))),
		Evidence: &domain.ProbeEvidence{SizeBytes: size},
	}, nil
}

// playbackProbe plays the recorded sample when one survived, otherwise
// a synthetic tone. Passing needs both a successful playback command
// and the operator confirming audibility.
func (s *Service) playbackProbe(ctx context.Context, outputs []domain.AudioDevice, scratch string) (domain.ProbeResult, error) {
	if len(outputs) == 0 {
		return failure(domain.ProbeSpeaker, "no device"), nil
	}

	source := "synthetic tone"
	var err error
	if _, statErr := os.Stat(scratch); statErr == nil {
		source = "recorded sample"
		s.announce("Playing back your recording. Listen closely.")
		err = s.Player.PlayFile(ctx, scratch)
	} else {
		s.announce("Playing a synthetic test tone. Listen closely.")
		err = s.Player.PlayTone(ctx, domain.ToneDuration)
	}
	if err != nil {
		if interrupted(ctx) {
			return domain.ProbeResult{}, ErrInterrupted
		}
		return failure(domain.ProbeSpeaker, "playback command failed: "+err.Error()), nil
	}

	audible, err := s.confirm(ctx, "Did you hear the audio?")
	if err != nil {
		return domain.ProbeResult{}, err
	}
	if !audible {
		// The command succeeded, perception failed: volume or routing.
		return failure(domain.ProbeSpeaker, "operator reported no audio ("+source+")"), nil
	}
	return domain.ProbeResult{
		Name:   domain.ProbeSpeaker,
		Passed: true,
		Detail: "confirmed audible (" + source + ")",
	}, nil
}

// speechProbe walks the engine priority list and stops at the first
// engine that both runs cleanly and is confirmed audible, so the
// operator is never prompted more often than necessary.
func (s *Service) speechProbe(ctx context.Context, cfg domain.Config) (domain.ProbeResult, error) {
	var installed []string
	for _, engine := range cfg.EnginePriority() {
		if _, found := s.Tools.Resolve(engine); found {
			installed = append(installed, engine)
		}
	}
	if len(installed) == 0 {
		return failure(domain.ProbeTextToSpeech, "no synthesis engine installed"), nil
	}

	var attempted []string
	for _, engine := range installed {
		s.announce("Testing speech engine %s.", engine)
		if err := s.Synth.Speak(ctx, engine, cfg.SpeechTestPhrase()); err != nil {
			if interrupted(ctx) {
				return domain.ProbeResult{}, ErrInterrupted
			}
			attempted = append(attempted, engine+" (invocation failed)")
			continue
		}
		audible, err := s.confirm(ctx, "Did you hear the spoken phrase?")
		if err != nil {
			return domain.ProbeResult{}, err
		}
		if !audible {
			attempted = append(attempted, engine+" (not audible)")
			continue
		}

		detail := engine + " confirmed audible"
		if len(attempted) > 0 {
			detail += "; attempted and failed: " + joinAttempts(attempted)
		}
		return domain.ProbeResult{
			Name:   domain.ProbeTextToSpeech,
			Passed: true,
			Detail: detail,
		}, nil
	}

	return failure(domain.ProbeTextToSpeech, "no engine confirmed; attempted: "+joinAttempts(attempted)), nil
}

// confirm asks the operator a yes/no question. The terminal read has
// no timeout, so cancellation is raced against the answer to keep the
// interrupt path responsive.
func (s *Service) confirm(ctx context.Context, question string) (bool, error) {
	type answer struct {
		yes bool
		err error
	}
	ch := make(chan answer, 1)
	go func() {
		yes, err := s.Confirmer.Confirm(question)
		ch <- answer{yes: yes, err: err}
	}()
	select {
	case <-ctx.Done():
		return false, ErrInterrupted
	case a := <-ch:
		if a.err != nil {
			// A closed stdin mid-prompt is treated as an abort.
			return false, ErrInterrupted
		}
		return a.yes, nil
	}
}

func (s *Service) announce(format string, args ...interface{}) {
	if s.Out == nil {
		return
	}
	fmt.Fprintf(s.Out, format+"\n", args...)
}

func joinAttempts(attempted []string) string {
	return strings.Join(attempted, "; ")
}

// Package audiocheck runs the audio capability diagnostic pipeline:
// a fixed sequence of probes over the host's microphone, speaker,
// audio server, mixer and speech synthesis tooling, aggregated into a
// single readiness report.
package audiocheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/falmaashani/jarvisctl/internal/domain"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// ErrInterrupted reports that the operator aborted the run. No partial
// report is produced for an interrupted run.
var ErrInterrupted = errors.New("diagnostics interrupted")

// Service orchestrates the probe pipeline. Probes run strictly one at
// a time: they share the physical audio device and the scratch file.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Tools          ports.ToolLocator
	Devices        ports.DeviceLister
	AudioServer    ports.ServiceController
	Mixer          ports.MixerReader
	Recorder       ports.Recorder
	Player         ports.Player
	Synth          ports.Synthesizer
	Confirmer      ports.Confirmer
	Inspector      ports.SystemInspector
	Journal        ports.RunJournal
	Logger         ports.Logger

	// Out receives operator-facing instructions during interactive
	// probes ("speak now", "listen for a tone").
	Out io.Writer

	// ScratchPath overrides the recording artifact location (tests).
	ScratchPath string
	// SettleDelay overrides the post-start service wait (tests).
	SettleDelay time.Duration
}

// Run executes every probe in order and returns the aggregate report.
// The scratch artifact is removed on every exit path, including
// interruption. The only error Run can return besides a config load
// failure is ErrInterrupted; probe failures are data, not errors.
func (s *Service) Run(ctx context.Context) (domain.RunReport, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.RunReport{}, fmt.Errorf("load config: %w", err)
	}

	scratch := s.scratchPath()
	defer func() { _ = os.Remove(scratch) }()

	report := domain.RunReport{
		OSDescription: s.Inspector.OSDescription(),
		Backend:       s.detectBackend(),
		Timestamp:     time.Now(),
	}

	report.Results = append(report.Results, s.toolProbe(cfg))

	inputs, outputs, deviceResults := s.deviceProbe(ctx)
	report.Results = append(report.Results, deviceResults...)

	serviceResult, err := s.serviceProbe(ctx)
	if err != nil {
		return domain.RunReport{}, err
	}
	report.Results = append(report.Results, serviceResult)

	report.Results = append(report.Results, s.mixerProbe(ctx, cfg))

	recResult, err := s.recordingProbe(ctx, cfg, inputs, scratch)
	if err != nil {
		return domain.RunReport{}, err
	}
	report.Results = append(report.Results, recResult)

	playResult, err := s.playbackProbe(ctx, outputs, scratch)
	if err != nil {
		return domain.RunReport{}, err
	}
	report.Results = append(report.Results, playResult)

	ttsResult, err := s.speechProbe(ctx, cfg)
	if err != nil {
		return domain.RunReport{}, err
	}
	report.Results = append(report.Results, ttsResult)

	s.journal(report)
	return report, nil
}

// toolProbe checks every required executable. A missing tool never
// halts the pipeline; the probes that need it fail on their own terms.
func (s *Service) toolProbe(cfg domain.Config) domain.ProbeResult {
	var missing []string
	for _, tool := range cfg.ToolSet() {
		if _, found := s.Tools.Resolve(tool); !found {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		return failure(domain.ProbeRequiredTools, "missing from PATH: "+strings.Join(missing, ", "))
	}
	return domain.ProbeResult{
		Name:   domain.ProbeRequiredTools,
		Passed: true,
		Detail: fmt.Sprintf("all %d tools present", len(cfg.ToolSet())),
	}
}

// deviceProbe enumerates capture and playback hardware independently
// and returns both inventories for the downstream probes. No retries:
// a missing device is a hardware fact, not a transient condition.
func (s *Service) deviceProbe(ctx context.Context) ([]domain.AudioDevice, []domain.AudioDevice, []domain.ProbeResult) {
	inputs, inErr := s.Devices.InputDevices(ctx)
	outputs, outErr := s.Devices.OutputDevices(ctx)

	results := []domain.ProbeResult{
		deviceResult(domain.ProbeMicrophoneList, inputs, inErr),
		deviceResult(domain.ProbeSpeakerList, outputs, outErr),
	}
	return inputs, outputs, results
}

func deviceResult(name string, devices []domain.AudioDevice, err error) domain.ProbeResult {
	if err != nil {
		return failure(name, "enumeration failed: "+err.Error())
	}
	if len(devices) == 0 {
		return failure(name, "no devices found")
	}
	labels := make([]string, 0, len(devices))
	for _, d := range devices {
		labels = append(labels, d.Label)
	}
	return domain.ProbeResult{
		Name:     name,
		Passed:   true,
		Detail:   strings.Join(labels, "; "),
		Evidence: &domain.ProbeEvidence{DeviceCount: len(devices)},
	}
}

// serviceProbe passes immediately when the audio server is running.
// Otherwise it makes exactly one start attempt, waits a fixed settle
// interval and re-checks. No retry loop: a permanently broken service
// must not hang diagnostics.
func (s *Service) serviceProbe(ctx context.Context) (domain.ProbeResult, error) {
	if s.AudioServer.Running(ctx) {
		return domain.ProbeResult{
			Name:   domain.ProbeAudioService,
			Passed: true,
			Detail: "already running",
		}, nil
	}

	if err := s.AudioServer.Start(ctx); err != nil {
		if interrupted(ctx) {
			return domain.ProbeResult{}, ErrInterrupted
		}
		return failure(domain.ProbeAudioService, "start failed: "+err.Error()), nil
	}
	if err := s.sleep(ctx, s.settleDelay()); err != nil {
		return domain.ProbeResult{}, err
	}
	if s.AudioServer.Running(ctx) {
		return domain.ProbeResult{
			Name:   domain.ProbeAudioService,
			Passed: true,
			Detail: "started after one attempt",
		}, nil
	}
	return failure(domain.ProbeAudioService, "not running after one start attempt"), nil
}

// mixerProbe is advisory: it never gates overall readiness but a muted
// master level explains an operator-denied playback probe.
func (s *Service) mixerProbe(ctx context.Context, cfg domain.Config) domain.ProbeResult {
	volume, err := s.Mixer.MasterVolume(ctx)
	if err != nil {
		return failure(domain.ProbeMixerLevels, "volume query failed: "+err.Error())
	}
	if volume < cfg.VolumeFloor() {
		result := failure(domain.ProbeMixerLevels,
			fmt.Sprintf("master volume %d%% is below the %d%% floor", volume, cfg.VolumeFloor()))
		result.Evidence = &domain.ProbeEvidence{VolumePercent: volume}
		return result
	}
	return domain.ProbeResult{
		Name:     domain.ProbeMixerLevels,
		Passed:   true,
		Detail:   fmt.Sprintf("master volume at %d%%", volume),
		Evidence: &domain.ProbeEvidence{VolumePercent: volume},
	}
}

func (s *Service) journal(report domain.RunReport) {
	if s.Journal == nil {
		return
	}
	failed := len(report.Failed())
	record := domain.RunRecord{
		ID:            uuid.New().String(),
		Timestamp:     report.Timestamp,
		OSDescription: report.OSDescription,
		Backend:       string(report.Backend),
		PassedCount:   len(report.Results) - failed,
		FailedCount:   failed,
		OverallPass:   report.OverallPass(),
	}
	if err := s.Journal.SaveRun(record); err != nil && s.Logger != nil {
		s.Logger.Warn("journal write failed", map[string]interface{}{"error": err.Error()})
	}
}

// detectBackend assumes PulseAudio when its control tool is present.
func (s *Service) detectBackend() domain.AudioBackend {
	if _, found := s.Tools.Resolve("pactl"); found {
		return domain.BackendPulseAudio
	}
	return domain.BackendALSA
}

func (s *Service) scratchPath() string {
	if s.ScratchPath != "" {
		return s.ScratchPath
	}
	return filepath.Join(os.TempDir(), "jarvis-miccheck.wav")
}

func (s *Service) settleDelay() time.Duration {
	if s.SettleDelay > 0 {
		return s.SettleDelay
	}
	return domain.ServiceSettleDelay
}

// sleep waits for d, honoring cancellation.
func (s *Service) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ErrInterrupted
	case <-timer.C:
		return nil
	}
}

func interrupted(ctx context.Context) bool {
	return ctx.Err() != nil
}

func failure(name, detail string) domain.ProbeResult {
	return domain.ProbeResult{
		Name:        name,
		Detail:      detail,
		Remediation: domain.RemediationFor(name),
	}
}

package audiocheck

import (
	"context"
	"os"
	"time"

	"github.com/falmaashani/jarvisctl/internal/domain"
)

// serviceStubs bundles every fake adapter so a test can reconfigure
// the one it cares about and leave the rest on happy-path defaults.
type serviceStubs struct {
	locator   *stubLocator
	devices   *stubDevices
	server    *stubServer
	mixer     *stubMixer
	recorder  *stubRecorder
	player    *stubPlayer
	synth     *stubSynth
	confirmer *scriptedConfirmer
	journal   *stubJournal
}

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubLocator struct {
	missing map[string]bool
}

func (s *stubLocator) Resolve(name string) (string, bool) {
	if s.missing[name] {
		return "", false
	}
	return "/usr/bin/" + name, true
}

type stubDevices struct {
	inputs  []domain.AudioDevice
	outputs []domain.AudioDevice
	inErr   error
	outErr  error
}

func (s *stubDevices) InputDevices(context.Context) ([]domain.AudioDevice, error) {
	return s.inputs, s.inErr
}

func (s *stubDevices) OutputDevices(context.Context) ([]domain.AudioDevice, error) {
	return s.outputs, s.outErr
}

type stubServer struct {
	runningNow bool
	afterStart bool
	startErr   error
	startCalls int
}

func (s *stubServer) Running(context.Context) bool {
	if s.startCalls > 0 {
		return s.afterStart
	}
	return s.runningNow
}

func (s *stubServer) Start(context.Context) error {
	s.startCalls++
	return s.startErr
}

type stubMixer struct {
	volume int
	err    error
}

func (s *stubMixer) MasterVolume(context.Context) (int, error) {
	return s.volume, s.err
}

// stubRecorder writes a real file so the playback probe's artifact
// check behaves exactly as in production.
type stubRecorder struct {
	size  int64
	err   error
	calls int
}

func (s *stubRecorder) Record(_ context.Context, path string, _ time.Duration) (int64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	if err := os.WriteFile(path, make([]byte, s.size), 0o600); err != nil {
		return 0, err
	}
	return s.size, nil
}

type stubPlayer struct {
	fileErr   error
	toneErr   error
	fileCalls int
	toneCalls int
	lastPath  string
}

func (s *stubPlayer) PlayFile(_ context.Context, path string) error {
	s.fileCalls++
	s.lastPath = path
	return s.fileErr
}

func (s *stubPlayer) PlayTone(context.Context, time.Duration) error {
	s.toneCalls++
	return s.toneErr
}

type stubSynth struct {
	failEngines map[string]bool
	calls       []string
}

func (s *stubSynth) Speak(_ context.Context, engine, _ string) error {
	s.calls = append(s.calls, engine)
	if s.failEngines[engine] {
		return os.ErrPermission
	}
	return nil
}

// scriptedConfirmer answers questions in order and denies anything past
// the end of the script.
type scriptedConfirmer struct {
	answers   []bool
	questions []string
}

func (s *scriptedConfirmer) Confirm(question string) (bool, error) {
	s.questions = append(s.questions, question)
	if len(s.questions) > len(s.answers) {
		return false, nil
	}
	return s.answers[len(s.questions)-1], nil
}

func (s *scriptedConfirmer) Enabled() bool { return true }

// blockingConfirmer never answers until released, for cancellation tests.
type blockingConfirmer struct {
	release chan struct{}
}

func (b *blockingConfirmer) Confirm(string) (bool, error) {
	<-b.release
	return false, nil
}

func (b *blockingConfirmer) Enabled() bool { return true }

type stubInspector struct{}

func (stubInspector) OSDescription() string { return "Test OS 1.0" }

type stubJournal struct {
	records []domain.RunRecord
	saveErr error
}

func (s *stubJournal) SaveRun(record domain.RunRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records = append(s.records, record)
	return nil
}

func (s *stubJournal) Runs(limit int) ([]domain.RunRecord, error) {
	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}
	return s.records[:limit], nil
}

func (s *stubJournal) Clear() error {
	s.records = nil
	return nil
}

package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/falmaashani/jarvisctl/internal/infrastructure/execrunner"
)

const arecordListing = `**** List of CAPTURE Hardware Devices ****
card 0: PCH [HDA Intel PCH], device 0: ALC892 Analog [ALC892 Analog]
  Subdevices: 1/1
  Subdevice #0: subdevice #0
card 1: Headset [Logitech USB Headset], device 0: USB Audio [USB Audio]
  Subdevices: 1/1
  Subdevice #0: subdevice #0
`

// scriptedRunner maps "name arg1 arg2" command lines to canned results.
type scriptedRunner struct {
	results map[string]execrunner.Result
	calls   []string
}

func (s *scriptedRunner) Run(_ context.Context, name string, args ...string) execrunner.Result {
	line := strings.Join(append([]string{name}, args...), " ")
	s.calls = append(s.calls, line)
	if res, ok := s.results[line]; ok {
		return res
	}
	return execrunner.Result{}
}

func TestParseDeviceList(t *testing.T) {
	devices := ParseDeviceList(arecordListing)
	if len(devices) != 2 {
		t.Fatalf("parsed %d devices, want 2", len(devices))
	}
	if devices[0].CardID != 0 || devices[0].DeviceID != 0 {
		t.Errorf("first device ids = %d/%d", devices[0].CardID, devices[0].DeviceID)
	}
	if devices[0].Label != "HDA Intel PCH: ALC892 Analog" {
		t.Errorf("first device label = %q", devices[0].Label)
	}
	if devices[1].CardID != 1 || devices[1].Label != "Logitech USB Headset: USB Audio" {
		t.Errorf("second device = %+v", devices[1])
	}
}

func TestParseDeviceListIgnoresNoise(t *testing.T) {
	output := "**** List of CAPTURE Hardware Devices ****\nno soundcards found...\n"
	if devices := ParseDeviceList(output); devices != nil {
		t.Errorf("parsed devices from noise: %+v", devices)
	}
}

func TestEnumerateTreatsNonZeroExitAsEmpty(t *testing.T) {
	runner := &scriptedRunner{results: map[string]execrunner.Result{
		"arecord -l": {ExitCode: 1, Err: errors.New("exit status 1")},
	}}
	alsa := NewALSA(runner, 0)

	devices, err := alsa.InputDevices(context.Background())
	if err != nil {
		t.Fatalf("InputDevices() error = %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("expected empty inventory, got %+v", devices)
	}
}

func TestEnumerateReportsSpawnFailure(t *testing.T) {
	runner := &scriptedRunner{results: map[string]execrunner.Result{
		"aplay -l": {ExitCode: -1, Err: errors.New("executable file not found")},
	}}
	alsa := NewALSA(runner, 0)

	if _, err := alsa.OutputDevices(context.Background()); err == nil {
		t.Fatal("expected an error when the tool cannot be spawned")
	}
}

func TestRecordBuildsExpectedCommand(t *testing.T) {
	scratch := filepath.Join(t.TempDir(), "capture.wav")
	if err := os.WriteFile(scratch, make([]byte, 2048), 0o600); err != nil {
		t.Fatal(err)
	}
	runner := &scriptedRunner{}
	alsa := NewALSA(runner, 16000)

	size, err := alsa.Record(context.Background(), scratch, 3*time.Second)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if size != 2048 {
		t.Errorf("Record() size = %d, want 2048", size)
	}
	want := "arecord -q -f S16_LE -r 16000 -c 1 -d 3 " + scratch
	if len(runner.calls) != 1 || runner.calls[0] != want {
		t.Errorf("Record() ran %v, want %q", runner.calls, want)
	}
}

func TestRecordSurfacesStderr(t *testing.T) {
	scratch := filepath.Join(t.TempDir(), "capture.wav")
	runner := &scriptedRunner{results: map[string]execrunner.Result{
		"arecord -q -f S16_LE -r 16000 -c 1 -d 1 " + scratch: {
			ExitCode: 1,
			Stderr:   "arecord: main:831: audio open error: Device or resource busy",
			Err:      errors.New("exit status 1"),
		},
	}}
	alsa := NewALSA(runner, 16000)

	_, err := alsa.Record(context.Background(), scratch, time.Second)
	if err == nil || !strings.Contains(err.Error(), "resource busy") {
		t.Fatalf("Record() error = %v, want the stderr detail", err)
	}
}

func TestParseVolume(t *testing.T) {
	output := `Simple mixer control 'Master',0
  Capabilities: pvolume pswitch
  Limits: Playback 0 - 65536
  Mono: Playback 49152 [75%] [on]
`
	volume, err := ParseVolume(output)
	if err != nil {
		t.Fatalf("ParseVolume() error = %v", err)
	}
	if volume != 75 {
		t.Errorf("ParseVolume() = %d, want 75", volume)
	}

	if _, err := ParseVolume("no percentages here"); err == nil {
		t.Error("expected an error for output without a percentage")
	}
}

func TestEngineArgs(t *testing.T) {
	tests := []struct {
		engine  string
		wantArg string
		wantErr bool
	}{
		{engine: "espeak", wantArg: "hello"},
		{engine: "festival", wantArg: `(SayText "hello")`},
		{engine: "spd-say", wantArg: "hello"},
		{engine: "flite", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			args, err := engineArgs(tt.engine, "hello")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("engineArgs(%q) succeeded unexpectedly", tt.engine)
				}
				return
			}
			if err != nil {
				t.Fatalf("engineArgs(%q) error = %v", tt.engine, err)
			}
			if args[len(args)-1] != tt.wantArg {
				t.Errorf("engineArgs(%q) last arg = %q, want %q", tt.engine, args[len(args)-1], tt.wantArg)
			}
		})
	}
}

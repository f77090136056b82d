package audio

import (
	"context"
	"errors"
	"testing"

	"github.com/falmaashani/jarvisctl/internal/infrastructure/execrunner"
)

func TestRunningFallsBackToPactl(t *testing.T) {
	tests := []struct {
		name    string
		results map[string]execrunner.Result
		want    bool
	}{
		{
			name: "pgrep finds the daemon",
			want: true,
		},
		{
			name: "pgrep misses but pactl connects",
			results: map[string]execrunner.Result{
				"pgrep -x pulseaudio": {ExitCode: 1, Err: errors.New("exit status 1")},
			},
			want: true,
		},
		{
			name: "neither succeeds",
			results: map[string]execrunner.Result{
				"pgrep -x pulseaudio": {ExitCode: 1, Err: errors.New("exit status 1")},
				"pactl info":          {ExitCode: 1, Err: errors.New("exit status 1")},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &scriptedRunner{results: tt.results}
			server := NewPulseServer(runner)
			if got := server.Running(context.Background()); got != tt.want {
				t.Errorf("Running() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartReportsDaemonFailure(t *testing.T) {
	runner := &scriptedRunner{results: map[string]execrunner.Result{
		"pulseaudio --start": {
			ExitCode: 1,
			Stderr:   "E: [pulseaudio] main.c: Daemon startup failed.",
			Err:      errors.New("exit status 1"),
		},
	}}
	server := NewPulseServer(runner)

	err := server.Start(context.Background())
	if err == nil {
		t.Fatal("expected a start failure")
	}
}

func TestStartSucceeds(t *testing.T) {
	runner := &scriptedRunner{}
	server := NewPulseServer(runner)
	if err := server.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if len(runner.calls) != 1 || runner.calls[0] != "pulseaudio --start" {
		t.Errorf("Start() ran %v", runner.calls)
	}
}

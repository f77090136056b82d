package app

import (
	"context"

	"github.com/falmaashani/jarvisctl/internal/application/audiocheck"
	"github.com/falmaashani/jarvisctl/internal/application/doctor"
	"github.com/falmaashani/jarvisctl/internal/application/setup"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/audio"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/config"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/execrunner"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/journal"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/pkgmgr"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/pyenv"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/shell"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/sysinfo"
	"github.com/falmaashani/jarvisctl/internal/infrastructure/tools"
	"github.com/falmaashani/jarvisctl/internal/pkg/logger"
	"github.com/falmaashani/jarvisctl/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	AudioCheckService *audiocheck.Service
	DoctorService     *doctor.Service
	SetupService      *setup.Service
	ConfigProvider    ports.ConfigProvider
	ConfigLoader      *config.FileLoader
	ShellIntegrator   ports.ShellIntegrator
	Journal           ports.RunJournal
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	runner := execrunner.NewLocal()
	locator := tools.NewPathLocator()
	alsa := audio.NewALSA(runner, cfg.Audio.SampleRate)
	pulse := audio.NewPulseServer(runner)
	mixer := audio.NewMixer(runner)
	speech := audio.NewSpeech(runner)
	inspector := sysinfo.NewInspector()
	runJournal := journal.NewSQLiteStore()
	venv := pyenv.NewVenv(runner)
	apt := pkgmgr.NewApt(runner)
	shellInstaller := shell.NewInstaller(log)

	audioCheck := &audiocheck.Service{
		ConfigProvider: cfgLoader,
		Tools:          locator,
		Devices:        alsa,
		AudioServer:    pulse,
		Mixer:          mixer,
		Recorder:       alsa,
		Player:         alsa,
		Synth:          speech,
		Inspector:      inspector,
		Journal:        runJournal,
		Logger:         log,
	}

	doctorService := &doctor.Service{
		ConfigProvider:  cfgLoader,
		Tools:           locator,
		Devices:         alsa,
		AudioServer:     pulse,
		Runtime:         venv,
		ShellIntegrator: shellInstaller,
		Journal:         runJournal,
	}

	setupService := &setup.Service{
		ConfigProvider:  cfgLoader,
		Packages:        apt,
		Runtime:         venv,
		ShellIntegrator: shellInstaller,
		Logger:          log,
	}

	return &Container{
		AudioCheckService: audioCheck,
		DoctorService:     doctorService,
		SetupService:      setupService,
		ConfigProvider:    cfgLoader,
		ConfigLoader:      cfgLoader,
		ShellIntegrator:   shellInstaller,
		Journal:           runJournal,
	}, nil
}

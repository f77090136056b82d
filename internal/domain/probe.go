package domain

import "time"

// Probe name constants used across the pipeline, the remediation map,
// and the report renderer.
const (
	ProbeRequiredTools   = "Required tools"
	ProbeMicrophoneList  = "Microphone devices"
	ProbeSpeakerList     = "Speaker devices"
	ProbeAudioService    = "Audio service"
	ProbeMixerLevels     = "Mixer levels"
	ProbeMicrophone      = "Microphone capture"
	ProbeSpeaker         = "Speaker playback"
	ProbeTextToSpeech    = "Text to speech"
)

// AudioBackend identifies the audio server family that was detected.
type AudioBackend string

const (
	BackendPulseAudio AudioBackend = "pulseaudio"
	BackendALSA       AudioBackend = "alsa"
)

// ProbeEvidence carries a single measured quantity supporting a result.
// At most one field is meaningful for any given probe.
type ProbeEvidence struct {
	SizeBytes     int64
	VolumePercent int
	DeviceCount   int
}

// ProbeResult is the normalized outcome of one diagnostic probe.
// Results are immutable once appended to a report.
type ProbeResult struct {
	Name        string
	Passed      bool
	Detail      string
	Remediation string
	Evidence    *ProbeEvidence
}

// AudioDevice describes one capture or playback device as enumerated
// from the host. Device lists are rebuilt on every run; nothing about
// them is cached between invocations.
type AudioDevice struct {
	CardID   int
	DeviceID int
	Label    string
}

// RunReport aggregates every probe result of a single diagnostic run
// together with system metadata.
type RunReport struct {
	OSDescription string
	Backend       AudioBackend
	Timestamp     time.Time
	Results       []ProbeResult
}

// Result returns the probe result with the given name, if present.
func (r RunReport) Result(name string) (ProbeResult, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return ProbeResult{}, false
}

// OverallPass reports system readiness. Readiness is gated solely by
// the microphone capture and speaker playback probes; a text-to-speech
// failure is advisory and never flips the verdict.
func (r RunReport) OverallPass() bool {
	mic, ok := r.Result(ProbeMicrophone)
	if !ok {
		return false
	}
	speaker, ok := r.Result(ProbeSpeaker)
	if !ok {
		return false
	}
	return mic.Passed && speaker.Passed
}

// Failed returns every failing probe result in report order.
func (r RunReport) Failed() []ProbeResult {
	var failed []ProbeResult
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// RunRecord is the journaled summary of one completed diagnostic run.
type RunRecord struct {
	ID            string
	Timestamp     time.Time
	OSDescription string
	Backend       string
	PassedCount   int
	FailedCount   int
	OverallPass   bool
}

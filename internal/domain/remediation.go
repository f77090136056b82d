package domain

// remediations maps probe names to suggested fixes shown for failures.
var remediations = map[string]string{
	ProbeRequiredTools:  "install the missing packages (alsa-utils, pulseaudio-utils)",
	ProbeMicrophoneList: "connect a microphone, or enable the input device in alsamixer",
	ProbeSpeakerList:    "connect speakers or headphones and check the output device is not disabled",
	ProbeAudioService:   "start the audio server manually: pulseaudio --start",
	ProbeMixerLevels:    "raise the master volume: amixer set Master 80% unmute",
	ProbeMicrophone:     "check microphone permissions and input levels in alsamixer",
	ProbeSpeaker:        "check volume and output routing; try: speaker-test -t wav -c 2",
	ProbeTextToSpeech:   "install a synthesis engine: apt install espeak",
}

// RemediationFor returns the suggested fix for a failing probe, or an
// empty string when no static suggestion exists.
func RemediationFor(probe string) string {
	return remediations[probe]
}

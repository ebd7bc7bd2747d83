package main

// Playback tempo range, exclusive on both ends.
const (
	MIN_TEMPO = 0
	MAX_TEMPO = 600
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

const (
	configFileName     = ".beatgen.json"
	defaultDiffOutput  = "missing_keys.json"
	envConfigPath      = "BEATGEN_CONFIG"
	envLogLevel        = "BEATGEN_LOG_LEVEL"
	promptTempo        = "bpm : "
	promptDuration     = "duration in ms : "
	pressAnyKeyMessage = "press any key to exit"
)

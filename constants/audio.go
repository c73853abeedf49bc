package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate; decoded tracks are resampled to it
	AudioSampleRate = 48000

	// SpeakerBufferDuration trades latency for underrun safety
	SpeakerBufferDuration = 100 * time.Millisecond

	// ResampleQuality is passed to beep.Resample (1-64)
	ResampleQuality = 4
)

// Soundtrack
const (
	// MusicFadeIn ramps the soundtrack from silence when it starts
	MusicFadeIn = 200 * time.Millisecond

	// MusicVolume scales the soundtrack under the effects
	MusicVolume = 0.6

	// SynthLoopBPM is the tempo of the generated fallback loop
	SynthLoopBPM = 130
)

// Crash Sound
const (
	CrashSoundDuration = 450 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
	CrashSoundFreq     = 90.0
	CrashSoundVolume   = 0.8
)

// Score Sound
const (
	ScoreNote1Duration = 60 * time.Millisecond
	ScoreNote2Duration = 110 * time.Millisecond
	ScoreSoundAttack   = 3 * time.Millisecond
	ScoreNote1Release  = 20 * time.Millisecond
	ScoreNote2Release  = 80 * time.Millisecond
	ScoreNote1Freq     = 880.0
	ScoreNote2Freq     = 1318.51
	ScoreSoundVolume   = 0.35
)

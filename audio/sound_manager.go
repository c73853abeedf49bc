// Package audio plays the soundtrack loop and the crash and score effects.
//
// Every operation is safe without an audio device: when the speaker cannot be
// initialised the manager stays silent and the game runs unchanged.
package audio

import (
	"io/fs"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	fsys        fs.FS
	mixer       *beep.Mixer
	master      *effects.Volume
	music       *beep.Ctrl
	musicSource beep.StreamSeekCloser
	initialized bool
}

// NewSoundManager creates a sound manager reading tracks from fsys
func NewSoundManager(cfg config.AudioConfig, fsys fs.FS) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		fsys:   fsys,
		mixer:  mixer,
		master: newVolume(mixer, cfg.MasterVolume),
	}
}

// Initialize opens the speaker. A disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		log.Printf("[audio] disabled")
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.master)
	sm.initialized = true
	log.Printf("[audio] speaker ready at %d Hz, volume %.2f", sampleRate, sm.cfg.MasterVolume)
	return nil
}

// Initialized reports whether sound reaches the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.stopMusicLocked()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlaySoundtrack loops the soundtrack from the sounds directory, or the
// generated loop when there is none
func (sm *SoundManager) PlaySoundtrack() {
	if !sm.Initialized() {
		return
	}
	p, err := FindSoundtrack(sm.fsys)
	if err != nil {
		log.Printf("[audio] %v, using generated loop", err)
		sm.startMusic(NewPhonkLoop(sampleRate, constants.SynthLoopBPM), nil)
		return
	}
	sm.PlayMusicLoop(p)
}

// PlayMusicLoop starts p looping forever with a short fade-in, replacing any
// current soundtrack. An unreadable track falls back to the generated loop
func (sm *SoundManager) PlayMusicLoop(p string) {
	if !sm.Initialized() {
		return
	}
	s, format, err := decodeTrack(sm.fsys, p)
	if err != nil {
		log.Printf("[audio] %v, using generated loop", err)
		sm.startMusic(NewPhonkLoop(sampleRate, constants.SynthLoopBPM), nil)
		return
	}
	log.Printf("[audio] soundtrack %s at %d Hz", p, format.SampleRate)
	sm.startMusic(loopTrack(s, format, sampleRate), s)
}

// startMusic fades stream in on the mixer. source is closed when the music stops
func (sm *SoundManager) startMusic(stream beep.Streamer, source beep.StreamSeekCloser) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		if source != nil {
			source.Close()
		}
		return
	}

	ctrl := &beep.Ctrl{
		Streamer: newVolume(newFadeIn(stream, sampleRate.N(constants.MusicFadeIn)), constants.MusicVolume),
	}

	speaker.Lock()
	sm.stopMusicLocked()
	sm.music = ctrl
	sm.musicSource = source
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopMusic stops the soundtrack
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.stopMusicLocked()
	speaker.Unlock()
}

// stopMusicLocked requires both sm.mu and the speaker lock
func (sm *SoundManager) stopMusicLocked() {
	if sm.music != nil {
		sm.music.Paused = true
		sm.music.Streamer = nil
		sm.music = nil
	}
	if sm.musicSource != nil {
		if err := sm.musicSource.Close(); err != nil {
			log.Printf("[audio] close soundtrack: %v", err)
		}
		sm.musicSource = nil
	}
}

// PlayCrash plays the collision sound
func (sm *SoundManager) PlayCrash() {
	sm.play(SoundCrash)
}

// PlayScore plays the dodge chime
func (sm *SoundManager) PlayScore() {
	sm.play(SoundScore)
}

func (sm *SoundManager) play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := createSound(st)
	if err != nil {
		log.Printf("[audio] %s: %v", st, err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// createSound builds a fresh streamer for a one-shot effect
func createSound(st SoundType) (beep.Streamer, error) {
	switch st {
	case SoundCrash:
		return CreateCrashSound(sampleRate), nil
	case SoundScore:
		return CreateScoreSound(sampleRate)
	default:
		return nil, errors.Errorf("unknown sound %d", int(st))
	}
}

package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/phonk-racer/constants"
)

func TestCreateCrashSound(t *testing.T) {
	rate := beep.SampleRate(44100)

	total, peak := drain(CreateCrashSound(rate), 1<<20)
	if want := rate.N(constants.CrashSoundDuration); total != want {
		t.Errorf("Crash sound length = %d, want %d", total, want)
	}
	if peak == 0 {
		t.Error("Crash sound is silent")
	}
}

func TestCreateScoreSound(t *testing.T) {
	rate := beep.SampleRate(44100)

	s, err := CreateScoreSound(rate)
	if err != nil {
		t.Fatalf("CreateScoreSound() error = %v", err)
	}
	total, peak := drain(s, 1<<20)
	want := rate.N(constants.ScoreNote1Duration) + rate.N(constants.ScoreNote2Duration)
	if total != want {
		t.Errorf("Score sound length = %d, want %d", total, want)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("Score sound peak = %f", peak)
	}
}

func TestCreateSound(t *testing.T) {
	for _, st := range []SoundType{SoundCrash, SoundScore} {
		s, err := createSound(st)
		if err != nil || s == nil {
			t.Errorf("createSound(%s) = %v, %v", st, s, err)
		}
	}
	if _, err := createSound(SoundType(99)); err == nil {
		t.Error("Expected error for an unknown sound")
	}
	if SoundType(99).String() != "unknown" {
		t.Errorf("String() = %q", SoundType(99).String())
	}
}

func TestPhonkLoopIsEndless(t *testing.T) {
	rate := beep.SampleRate(8000)
	loop := NewPhonkLoop(rate, 120)

	// Four seconds is two bars at 120 BPM
	limit := rate.N(4 * time.Second)
	total, peak := drain(loop, limit)
	if total < limit {
		t.Errorf("Loop ended after %d samples", total)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("Loop peak = %f, want audible and unclipped", peak)
	}
	if loop.Err() != nil {
		t.Errorf("Err() = %v", loop.Err())
	}
}

func TestPhonkLoopKickOnBeat(t *testing.T) {
	rate := beep.SampleRate(8000)
	loop := NewPhonkLoop(rate, 120)

	// 120 BPM at 8 kHz is 4000 samples per beat
	buf := make([][2]float64, 4000)
	loop.Stream(buf)

	loud := func(from, to int) float64 {
		var p float64
		for i := from; i < to; i++ {
			if v := buf[i][0]; v > p {
				p = v
			} else if -v > p {
				p = -v
			}
		}
		return p
	}
	if loud(0, 400) <= loud(1500, 1900) {
		t.Error("Expected the kick at the start of the beat to be louder than the gap before the off-beat")
	}
}

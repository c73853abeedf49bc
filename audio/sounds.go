package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/phonk-racer/constants"
)

// SoundType identifies a one-shot effect
type SoundType int

const (
	SoundCrash SoundType = iota // Collision with an enemy car
	SoundScore                  // Enemy car dodged
)

var soundNames = map[SoundType]string{
	SoundCrash: "crash",
	SoundScore: "score",
}

// String returns the sound name
func (s SoundType) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "unknown"
}

// CreateCrashSound generates a distorted saw buzz over a noise burst
func CreateCrashSound(rate beep.SampleRate) beep.Streamer {
	d := constants.CrashSoundDuration

	buzz := NewOscillator(constants.CrashSoundFreq, d, WaveSaw, rate)
	sub := NewOscillator(constants.CrashSoundFreq/2, d, WaveSquare, rate)
	noise := NewOscillator(0, d, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(buzz, 0.5),
		newVolume(sub, 0.3),
		newVolume(noise, 0.4),
	)
	shaped := NewEnvelope(mixed, d, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)
	return newVolume(shaped, constants.CrashSoundVolume)
}

// CreateScoreSound generates a short rising two-note chime
func CreateScoreSound(rate beep.SampleRate) (beep.Streamer, error) {
	n1, err := tone(rate, constants.ScoreNote1Freq, constants.ScoreNote1Duration, constants.ScoreNote1Release)
	if err != nil {
		return nil, err
	}
	n2, err := tone(rate, constants.ScoreNote2Freq, constants.ScoreNote2Duration, constants.ScoreNote2Release)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Seq(n1, n2), constants.ScoreSoundVolume), nil
}

func tone(rate beep.SampleRate, freq float64, d, release time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, constants.ScoreSoundAttack, release, rate), nil
}

// PhonkLoop generates an endless drum pattern: a pitched-down kick on every
// beat and a detuned square cowbell on the off-beats, over a sub bass
type PhonkLoop struct {
	sr   beep.SampleRate
	pos  int
	beat int
}

// NewPhonkLoop creates the fallback soundtrack generator
func NewPhonkLoop(sr beep.SampleRate, bpm int) *PhonkLoop {
	return &PhonkLoop{
		sr:   sr,
		beat: int(float64(sr) * 60 / float64(bpm)),
	}
}

func (g *PhonkLoop) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.sr.N(120 * time.Millisecond)
	bellLen := g.sr.N(90 * time.Millisecond)
	half := g.beat / 2

	for i := range samples {
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			freq := 50 * (1 + 2*env)
			kick = 0.45 * env * math.Sin(2*math.Pi*freq*t)
		}

		bell := 0.0
		if off := beatPos - half; off >= 0 && off < bellLen {
			env := 1 - float64(off)/float64(bellLen)
			ot := float64(off) / float64(g.sr)
			bell = 0.08 * env * (squareAt(540, ot) + squareAt(800, ot))
		}

		// Bass walks an octave every four beats
		bar := (g.pos / g.beat) % 8
		bassFreq := 55.0
		if bar >= 4 {
			bassFreq = 41.2
		}
		bass := 0.12 * math.Sin(2*math.Pi*bassFreq*float64(g.pos)/float64(g.sr))

		sample := kick + bell + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PhonkLoop) Err() error {
	return nil
}

func squareAt(freq, t float64) float64 {
	phase := freq * t
	if phase-math.Floor(phase) < 0.5 {
		return 1
	}
	return -1
}

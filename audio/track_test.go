package audio

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
)

// writeWav encodes a short tone to dir/sounds/soundtrack.wav
func writeWav(t *testing.T, dir string, rate beep.SampleRate, d time.Duration) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, "sounds"), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(filepath.Join(dir, "sounds", "soundtrack.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, NewOscillator(220, d, WaveSine, rate), format); err != nil {
		t.Fatalf("wav.Encode: %v", err)
	}
}

func TestFindSoundtrack(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{"mp3 preferred", fstest.MapFS{"sounds/soundtrack.mp3": {}, "sounds/soundtrack.wav": {}}, "sounds/soundtrack.mp3"},
		{"wav fallback", fstest.MapFS{"sounds/soundtrack.wav": {}}, "sounds/soundtrack.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindSoundtrack(tt.fsys)
			if err != nil || got != tt.want {
				t.Errorf("FindSoundtrack() = %q, %v, want %q", got, err, tt.want)
			}
		})
	}
}

func TestFindSoundtrackMissing(t *testing.T) {
	_, err := FindSoundtrack(fstest.MapFS{"sounds/other.mp3": {}})
	if errors.Cause(err) != ErrNoTrack {
		t.Errorf("FindSoundtrack() error = %v, want ErrNoTrack", err)
	}
}

func TestDecodeTrackWav(t *testing.T) {
	dir := t.TempDir()
	rate := beep.SampleRate(22050)
	writeWav(t, dir, rate, 50*time.Millisecond)

	s, format, err := decodeTrack(os.DirFS(dir), "sounds/soundtrack.wav")
	if err != nil {
		t.Fatalf("decodeTrack() error = %v", err)
	}
	defer s.Close()

	if format.SampleRate != rate || format.NumChannels != 2 {
		t.Errorf("Format = %+v", format)
	}
	if want := rate.N(50 * time.Millisecond); s.Len() != want {
		t.Errorf("Len() = %d, want %d", s.Len(), want)
	}
}

func TestLoopTrackResamples(t *testing.T) {
	dir := t.TempDir()
	rate := beep.SampleRate(22050)
	writeWav(t, dir, rate, 20*time.Millisecond)

	s, format, err := decodeTrack(os.DirFS(dir), "sounds/soundtrack.wav")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Far past the track length: the loop keeps going
	limit := sampleRate.N(time.Second)
	total, peak := drain(loopTrack(s, format, sampleRate), limit)
	if total < limit {
		t.Errorf("Looped track ended after %d samples", total)
	}
	if peak == 0 {
		t.Error("Looped track is silent")
	}
}

func TestDecodeTrackErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"sounds/soundtrack.ogg": {Data: []byte("OggS")},
		"sounds/broken.wav":     {Data: []byte("not a wav")},
	}

	for _, p := range []string{"sounds/missing.mp3", "sounds/soundtrack.ogg", "sounds/broken.wav"} {
		if _, _, err := decodeTrack(fsys, p); err == nil {
			t.Errorf("decodeTrack(%q) expected error", p)
		}
	}
}

package audio

import (
	"io/fs"
	"path"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"

	"github.com/lixenwraith/phonk-racer/constants"
)

// ErrNoTrack is returned when no soundtrack file exists in the sounds directory
var ErrNoTrack = errors.New("no soundtrack")

// trackExtensions are tried in order when resolving the soundtrack
var trackExtensions = []string{".mp3", ".wav"}

// FindSoundtrack returns the soundtrack path in fsys, preferring mp3 over wav
func FindSoundtrack(fsys fs.FS) (string, error) {
	for _, ext := range trackExtensions {
		p := path.Join(constants.SoundsDir, constants.SoundtrackName+ext)
		if info, err := fs.Stat(fsys, p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", errors.Wrapf(ErrNoTrack, "%s/%s.{mp3,wav}", constants.SoundsDir, constants.SoundtrackName)
}

// decodeTrack opens and decodes an mp3 or wav file.
// The returned streamer owns the file and closes it
func decodeTrack(fsys fs.FS, p string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, beep.Format{}, errors.Wrapf(err, "open %s", p)
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(path.Ext(p)) {
	case ".mp3":
		s, format, err = mp3.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	default:
		err = errors.Errorf("unsupported format %q", path.Ext(p))
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, errors.Wrapf(err, "decode %s", p)
	}
	return s, format, nil
}

// loopTrack loops a decoded track forever at the speaker's sample rate
func loopTrack(s beep.StreamSeeker, format beep.Format, rate beep.SampleRate) beep.Streamer {
	looped := beep.Loop(-1, s)
	if format.SampleRate == rate {
		return looped
	}
	return beep.Resample(constants.ResampleQuality, format.SampleRate, rate, looped)
}

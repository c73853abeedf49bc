// Package asset lists, picks and decodes the game's image assets.
//
// Assets are read through an fs.FS rooted at the asset directory, so paths use
// forward slashes ("cars/red.png") on every platform.
package asset

import (
	"image"
	_ "image/png" // register PNG decoder
	"io/fs"
	"log"
	"math/rand"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoAssets is returned when an asset directory is missing or holds no files
var ErrNoAssets = errors.New("no assets")

// Library resolves asset paths and caches decoded images and sprites
type Library struct {
	fsys fs.FS
	rng  *rand.Rand

	images  map[string]*Image
	sprites map[spriteKey]*Image
}

type spriteKey struct {
	path    string
	w, h    int
	rotated bool
}

// NewLibrary creates a library over fsys, picking random assets with rng
func NewLibrary(fsys fs.FS, rng *rand.Rand) *Library {
	return &Library{
		fsys:    fsys,
		rng:     rng,
		images:  make(map[string]*Image),
		sprites: make(map[spriteKey]*Image),
	}
}

// List returns the sorted file names in dir. Hidden files and subdirectories are skipped.
// A missing or empty directory is a configuration error
func (l *Library) List(dir string) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(ErrNoAssets, "read %s: %v", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, errors.Wrapf(ErrNoAssets, "directory %s is empty", dir)
	}

	sort.Strings(names)
	return names, nil
}

// RandomAsset returns dir/name for a uniformly chosen file in dir
func (l *Library) RandomAsset(dir string) (string, error) {
	names, err := l.List(dir)
	if err != nil {
		return "", err
	}
	return path.Join(dir, names[l.rng.Intn(len(names))]), nil
}

// Validate checks every directory holds at least one decodable image
func (l *Library) Validate(dirs ...string) error {
	for _, dir := range dirs {
		names, err := l.List(dir)
		if err != nil {
			return err
		}
		for _, name := range names {
			if _, err := l.LoadImage(path.Join(dir, name)); err != nil {
				return err
			}
		}
		log.Printf("[asset] %s: %d files", dir, len(names))
	}
	return nil
}

// LoadImage decodes the image at p, caching the result
func (l *Library) LoadImage(p string) (*Image, error) {
	if img, ok := l.images[p]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", p)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", p)
	}

	img := FromImage(src)
	l.images[p] = img
	return img, nil
}

// Sprite returns the image at p rotated 180° if requested, then scaled to w x h
func (l *Library) Sprite(p string, w, h int, rotated bool) (*Image, error) {
	key := spriteKey{path: p, w: w, h: h, rotated: rotated}
	if s, ok := l.sprites[key]; ok {
		return s, nil
	}

	img, err := l.LoadImage(p)
	if err != nil {
		return nil, err
	}
	if rotated {
		img = Rotate(img, 180)
	}
	s := Scale(img, w, h)

	l.sprites[key] = s
	return s, nil
}

package asset

import (
	"image"
	"image/color"
)

// AlphaThreshold is the minimum alpha for a pixel to be drawn
const AlphaThreshold = 128

// Image is a decoded RGBA pixel grid, row-major
type Image struct {
	Width  int
	Height int
	Pix    []color.RGBA
}

// NewImage creates a transparent image
func NewImage(w, h int) *Image {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Image{Width: w, Height: h, Pix: make([]color.RGBA, w*h)}
}

// FromImage converts any decoded image to an Image
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			img.Pix[y*img.Width+x] = color.RGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
		}
	}
	return img
}

// At returns the pixel at (x, y), transparent outside the bounds
func (img *Image) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return color.RGBA{}
	}
	return img.Pix[y*img.Width+x]
}

// Set writes the pixel at (x, y), ignoring out-of-bounds writes
func (img *Image) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	img.Pix[y*img.Width+x] = c
}

// Opaque reports whether the pixel is drawn
func Opaque(c color.RGBA) bool {
	return c.A >= AlphaThreshold
}

// Scale resamples img to w x h by sampling the centre of each source region
func Scale(img *Image, w, h int) *Image {
	out := NewImage(w, h)
	if img.Width == 0 || img.Height == 0 {
		return out
	}

	for y := 0; y < h; y++ {
		sy := (y*img.Height + img.Height/2) / h
		if sy >= img.Height {
			sy = img.Height - 1
		}
		for x := 0; x < w; x++ {
			sx := (x*img.Width + img.Width/2) / w
			if sx >= img.Width {
				sx = img.Width - 1
			}
			out.Pix[y*w+x] = img.Pix[sy*img.Width+sx]
		}
	}
	return out
}

// Rotate rotates img counter-clockwise by a multiple of 90 degrees.
// Other angles are snapped down to the nearest multiple
func Rotate(img *Image, degrees int) *Image {
	turns := ((degrees/90)%4 + 4) % 4

	switch turns {
	case 0:
		out := NewImage(img.Width, img.Height)
		copy(out.Pix, img.Pix)
		return out
	case 2:
		out := NewImage(img.Width, img.Height)
		n := len(img.Pix)
		for i, c := range img.Pix {
			out.Pix[n-1-i] = c
		}
		return out
	}

	out := NewImage(img.Height, img.Width)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.Pix[y*img.Width+x]
			if turns == 1 {
				// 90° counter-clockwise: (x, y) -> (y, W-1-x)
				out.Set(y, img.Width-1-x, c)
			} else {
				// 270°: (x, y) -> (H-1-y, x)
				out.Set(img.Height-1-y, x, c)
			}
		}
	}
	return out
}

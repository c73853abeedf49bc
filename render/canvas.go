package render

import (
	"image/color"

	"github.com/lixenwraith/phonk-racer/asset"
)

// Canvas is a grid of square sub-pixels; two vertically stacked sub-pixels make
// one terminal cell
type Canvas struct {
	pix    []color.RGBA
	width  int
	height int
}

// NewCanvas creates a canvas with the specified dimensions in sub-pixels
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		pix:    make([]color.RGBA, width*height),
		width:  width,
		height: height,
	}
	c.Fill(RGBBlack)
	return c
}

// Size returns the canvas dimensions in sub-pixels
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Fill sets every sub-pixel using exponential copy
func (c *Canvas) Fill(col color.RGBA) {
	if len(c.pix) == 0 {
		return
	}
	c.pix[0] = col
	for filled := 1; filled < len(c.pix); filled *= 2 {
		copy(c.pix[filled:], c.pix[:filled])
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes one sub-pixel, ignoring coordinates off the canvas
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if c.inBounds(x, y) {
		c.pix[y*c.width+x] = col
	}
}

// At returns the sub-pixel at (x, y); off-canvas reads are black
func (c *Canvas) At(x, y int) color.RGBA {
	if !c.inBounds(x, y) {
		return RGBBlack
	}
	return c.pix[y*c.width+x]
}

// DrawImage copies the opaque pixels of img with its top-left at (x, y).
// Parts off the canvas are clipped
func (c *Canvas) DrawImage(img *asset.Image, x, y int) {
	for iy := 0; iy < img.Height; iy++ {
		cy := y + iy
		if cy < 0 || cy >= c.height {
			continue
		}
		for ix := 0; ix < img.Width; ix++ {
			p := img.At(ix, iy)
			if asset.Opaque(p) {
				c.Set(x+ix, cy, color.RGBA{p.R, p.G, p.B, 255})
			}
		}
	}
}

package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the road scene and UI
var (
	RGBBlack        = color.RGBA{0, 0, 0, 255}
	RGBRoadFallback = color.RGBA{60, 60, 60, 255} // Asphalt gray when the road image is missing

	RgbStatusBarBg = tcell.NewRGBColor(25, 25, 25)
	RgbStatusBarFg = tcell.NewRGBColor(200, 200, 200)
	RgbScore       = tcell.NewRGBColor(255, 215, 0) // Gold
	RgbOverlayBg   = tcell.NewRGBColor(60, 0, 0)    // Dark red
	RgbOverlayText = tcell.NewRGBColor(255, 255, 255)
	RgbCrashed     = tcell.NewRGBColor(255, 80, 80)
)

// tcellColor converts a canvas pixel to a terminal color
func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

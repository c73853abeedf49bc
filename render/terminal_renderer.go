// Package render draws the road scene on a terminal.
//
// Game coordinates are pixels on a fixed virtual screen. Each terminal cell
// covers PixelsPerColumn x PixelsPerRow pixels and shows two stacked sub-pixels
// with a half-block glyph, so sprites are drawn pre-scaled to sub-pixel size.
package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/phonk-racer/asset"
	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/constants"
)

// Renderer is the drawing surface the scene is composed on.
// Positions are game pixels; nothing is visible until Present
type Renderer interface {
	Clear()
	Fill(c color.RGBA)
	DrawImage(img *asset.Image, x, y int)
	DrawText(x, y int, text string, style tcell.Style)
	DrawStatus(left, right string, rightStyle tcell.Style)
	Present()
}

type textItem struct {
	col, row int
	text     string
	style    tcell.Style
}

// TerminalRenderer composes a frame on a sub-pixel canvas and flushes it to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	canvas *Canvas

	// Road area in cells
	cols int
	rows int

	texts       []textItem
	statusLeft  string
	statusRight string
	rightStyle  tcell.Style
}

// NewTerminalRenderer creates a renderer for the configured virtual screen
func NewTerminalRenderer(screen tcell.Screen, cfg *config.Config) *TerminalRenderer {
	cols := cfg.ScreenWidth / constants.PixelsPerColumn
	rows := cfg.ScreenHeight / constants.PixelsPerRow
	return &TerminalRenderer{
		screen: screen,
		canvas: NewCanvas(cols, rows*2),
		cols:   cols,
		rows:   rows,
	}
}

// Size returns the area the frame needs in cells, status bar included
func (r *TerminalRenderer) Size() (cols, rows int) {
	return r.cols, r.rows + constants.StatusBarHeight
}

// Clear resets the canvas, overlay text and status bar
func (r *TerminalRenderer) Clear() {
	r.canvas.Fill(RGBBlack)
	r.texts = r.texts[:0]
	r.statusLeft, r.statusRight = "", ""
	r.rightStyle = tcell.StyleDefault
}

// Fill paints the whole road area with one color
func (r *TerminalRenderer) Fill(c color.RGBA) {
	r.canvas.Fill(c)
}

// DrawImage draws a sub-pixel sized image at game pixel (x, y)
func (r *TerminalRenderer) DrawImage(img *asset.Image, x, y int) {
	r.canvas.DrawImage(img, floorDiv(x, constants.PixelsPerColumn), floorDiv(y, constants.PixelsPerSubRow))
}

// DrawText queues text at game pixel (x, y), drawn over the canvas
func (r *TerminalRenderer) DrawText(x, y int, text string, style tcell.Style) {
	r.texts = append(r.texts, textItem{
		col:   floorDiv(x, constants.PixelsPerColumn),
		row:   floorDiv(y, constants.PixelsPerRow),
		text:  text,
		style: style,
	})
}

// DrawStatus sets the status bar below the road, left and right aligned
func (r *TerminalRenderer) DrawStatus(left, right string, rightStyle tcell.Style) {
	r.statusLeft = left
	r.statusRight = right
	r.rightStyle = rightStyle
}

// Present flushes the frame centred on the screen and shows it
func (r *TerminalRenderer) Present() {
	r.screen.Clear()
	ox, oy := r.origin()

	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			top := r.canvas.At(col, 2*row)
			bottom := r.canvas.At(col, 2*row+1)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			r.screen.SetContent(ox+col, oy+row, constants.HalfBlock, nil, style)
		}
	}

	for _, t := range r.texts {
		r.putString(ox+t.col, oy+t.row, t.text, t.style, ox+r.cols)
	}

	r.drawStatusBar(ox, oy+r.rows)
	r.screen.Show()
}

// origin centres the frame, pinned to the top-left when the terminal is too small
func (r *TerminalRenderer) origin() (int, int) {
	w, h := r.screen.Size()
	cols, rows := r.Size()
	return max(0, (w-cols)/2), max(0, (h-rows)/2)
}

func (r *TerminalRenderer) drawStatusBar(x, y int) {
	style := tcell.StyleDefault.Foreground(RgbStatusBarFg).Background(RgbStatusBarBg)
	for col := 0; col < r.cols; col++ {
		r.screen.SetContent(x+col, y, ' ', nil, style)
	}
	r.putString(x+1, y, r.statusLeft, style, x+r.cols)

	right := []rune(r.statusRight)
	start := x + r.cols - len(right) - 1
	r.putString(start, y, r.statusRight, r.rightStyle.Background(RgbStatusBarBg), x+r.cols)
}

// putString writes text from (x, y), clipped at column limit
func (r *TerminalRenderer) putString(x, y int, text string, style tcell.Style, limit int) {
	for i, ch := range []rune(text) {
		if x+i >= limit {
			return
		}
		if x+i >= 0 {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}

// floorDiv divides rounding toward negative infinity, so objects above the
// screen map to negative cells
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

package render

import (
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/phonk-racer/asset"
	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/constants"
	"github.com/lixenwraith/phonk-racer/engine"
)

// SpriteSource returns images scaled to a size in sub-pixels
type SpriteSource interface {
	Sprite(p string, w, h int, rotated bool) (*asset.Image, error)
}

// Scene draws the game state: road, decorations, cars, overlay and status bar
type Scene struct {
	cfg     *config.Config
	sprites SpriteSource

	roadPath    string
	roadMissing bool
}

// NewScene creates a scene drawing sprites from src
func NewScene(cfg *config.Config, src SpriteSource) *Scene {
	return &Scene{
		cfg:      cfg,
		sprites:  src,
		roadPath: path.Join(constants.RoadSkinsDir, constants.RoadImage),
	}
}

// Draw composes one frame of gs on r and presents it
func (s *Scene) Draw(r Renderer, gs *engine.GameState) error {
	r.Clear()
	s.drawRoad(r)

	for i := range gs.Cracks {
		if err := s.drawObject(r, &gs.Cracks[i], s.cfg.ObjWidth, s.cfg.ObjHeight); err != nil {
			return err
		}
	}
	for i := range gs.Trees {
		if err := s.drawObject(r, &gs.Trees[i], s.cfg.ObjWidth, s.cfg.ObjHeight); err != nil {
			return err
		}
	}
	for i := range gs.Enemies {
		if err := s.drawObject(r, &gs.Enemies[i], s.cfg.CarWidth, s.cfg.CarHeight); err != nil {
			return err
		}
	}
	if err := s.drawObject(r, &gs.Player, s.cfg.CarWidth, s.cfg.CarHeight); err != nil {
		return err
	}

	if gs.IsGameOver() {
		s.drawGameOver(r, gs.Score())
	}
	s.drawStatus(r, gs)

	r.Present()
	return nil
}

// drawRoad scales the road image to the whole screen; a missing road falls back to flat asphalt
func (s *Scene) drawRoad(r Renderer) {
	if s.roadMissing {
		r.Fill(RGBRoadFallback)
		return
	}
	img, err := s.sprites.Sprite(s.roadPath, subPixelsX(s.cfg.ScreenWidth), subPixelsY(s.cfg.ScreenHeight), false)
	if err != nil {
		log.Printf("[render] road: %v, using flat fill", err)
		s.roadMissing = true
		r.Fill(RGBRoadFallback)
		return
	}
	r.DrawImage(img, 0, 0)
}

func (s *Scene) drawObject(r Renderer, o *engine.Object, w, h int) error {
	img, err := s.sprites.Sprite(o.Skin, subPixelsX(w), subPixelsY(h), o.Rotated)
	if err != nil {
		return err
	}
	r.DrawImage(img, o.X, o.Y)
	return nil
}

// drawGameOver centres the score line on the screen with the restart prompt below it
func (s *Scene) drawGameOver(r Renderer, score int) {
	style := tcell.StyleDefault.Foreground(RgbOverlayText).Background(RgbOverlayBg)
	centreY := s.cfg.ScreenHeight / 2

	s.centredText(r, centreY, fmt.Sprintf(constants.GameOverText, score), style.Bold(true))
	s.centredText(r, centreY+constants.RestartPromptGapY, constants.RestartText, style)
}

func (s *Scene) centredText(r Renderer, y int, text string, style tcell.Style) {
	pad := strings.Repeat(" ", constants.OverlayPaddingX)
	text = pad + text + pad
	width := len([]rune(text)) * constants.PixelsPerColumn
	r.DrawText((s.cfg.ScreenWidth-width)/2, y, text, style)
}

func (s *Scene) drawStatus(r Renderer, gs *engine.GameState) {
	right := fmt.Sprintf("SCORE %d", gs.Score())
	style := tcell.StyleDefault.Foreground(RgbScore).Bold(true)
	if gs.IsGameOver() {
		right = "CRASHED  " + right
		style = tcell.StyleDefault.Foreground(RgbCrashed).Bold(true)
	}
	r.DrawStatus(strings.ToUpper(constants.Title), right, style)
}

func subPixelsX(px int) int {
	return max(1, px/constants.PixelsPerColumn)
}

func subPixelsY(px int) int {
	return max(1, px/constants.PixelsPerSubRow)
}

package main

import (
	"io/fs"
	"log"
	"math/rand"
	"path"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/phonk-racer/asset"
	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/constants"
	"github.com/lixenwraith/phonk-racer/engine"
	"github.com/lixenwraith/phonk-racer/input"
	"github.com/lixenwraith/phonk-racer/render"
	"github.com/lixenwraith/phonk-racer/systems"
)

// soundPlayer receives the one-shot effects triggered by game events
type soundPlayer interface {
	PlayCrash()
	PlayScore()
}

// app owns the game, the screen and the frame loop
type app struct {
	cfg      *config.Config
	screen   tcell.Screen
	keys     *input.KeyState
	game     *systems.Game
	scene    *render.Scene
	renderer *render.TerminalRenderer
}

// newApp validates the assets under fsys and wires the game to the screen.
// Asset problems are configuration errors reported before the first frame
func newApp(cfg *config.Config, screen tcell.Screen, fsys fs.FS, clock input.Clock, sound soundPlayer) (*app, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	lib := asset.NewLibrary(fsys, rng)

	if err := lib.Validate(constants.CarSkinsDir, constants.TreesDir, constants.CracksSkinsDir, constants.RoadSkinsDir); err != nil {
		return nil, errors.Wrap(err, "asset check")
	}
	playerSkin := path.Join(constants.CarSkinsDir, constants.PlayerCar)
	if _, err := lib.LoadImage(playerSkin); err != nil {
		return nil, errors.Wrap(err, "player car")
	}

	keys := input.NewKeyState(input.DefaultKeyTable(), clock, cfg.KeyHold)
	ctx := engine.NewGameContext(cfg, rng, lib, keys, playerSkin)

	game, err := systems.NewGame(ctx)
	if err != nil {
		return nil, err
	}
	game.Subscribe(func(_ *engine.GameContext, ev engine.Event) {
		switch ev.Type {
		case engine.EventCollision:
			sound.PlayCrash()
		case engine.EventEnemyPassed:
			sound.PlayScore()
		}
	})

	log.Printf("[app] seed %d, assets validated", cfg.Seed)
	return &app{
		cfg:      cfg,
		screen:   screen,
		keys:     keys,
		game:     game,
		scene:    render.NewScene(cfg, lib),
		renderer: render.NewTerminalRenderer(screen, cfg),
	}, nil
}

// run polls terminal events on a separate goroutine and ticks the game at a
// fixed rate until quit. Returns the first simulation or render error
func (a *app) run() error {
	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)
	go a.poll(events, done)

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	for a.game.Context().State.IsRunning() {
		<-ticker.C
		if err := a.frame(events); err != nil {
			return err
		}
	}
	log.Printf("[app] quit at frame %d, score %d", a.frames(), a.score())
	return nil
}

// poll forwards terminal events until the screen is finalised or the loop ends
func (a *app) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer crashHandler(a.screen)()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// frame drains pending input, advances the game one tick and draws it
func (a *app) frame(events <-chan tcell.Event) error {
drain:
	for {
		select {
		case ev := <-events:
			a.handleEvent(ev)
		default:
			break drain
		}
	}

	if err := a.game.Tick(); err != nil {
		return errors.Wrapf(err, "frame %d", a.game.Context().State.GetFrameNumber())
	}
	if !a.game.Context().State.IsRunning() {
		return nil
	}
	return a.scene.Draw(a.renderer, a.game.Context().State)
}

func (a *app) score() int {
	return a.game.Context().State.Score()
}

func (a *app) frames() int64 {
	return a.game.Context().State.GetFrameNumber()
}

func (a *app) handleEvent(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Sync()
		return
	}
	if e, ok := ev.(*tcell.EventError); ok {
		log.Printf("[app] terminal error: %v", e)
	}

	switch a.keys.Translate(ev) {
	case input.SignalQuit:
		a.game.Quit()
	case input.SignalRestart:
		a.game.Restart()
	}
}

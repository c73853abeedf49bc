package engine

import (
	"math/rand"

	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/input"
)

// AssetPicker selects a random asset path from a directory
type AssetPicker interface {
	RandomAsset(dir string) (string, error)
}

// KeySource reports whether a logical key is currently held
type KeySource interface {
	IsDown(key input.Key) (bool, error)
}

// GameContext holds the game state and the collaborators systems need
type GameContext struct {
	// Immutable configuration shared by every component
	Config *config.Config

	// Central game state
	State *GameState

	// Random source for slots, speeds and skins
	Rand *rand.Rand

	// Collaborators
	Assets AssetPicker
	Keys   KeySource

	events EventQueue
}

// NewGameContext creates a context with a fresh running state
func NewGameContext(cfg *config.Config, rng *rand.Rand, assets AssetPicker, keys KeySource, playerSkin string) *GameContext {
	return &GameContext{
		Config: cfg,
		State:  NewGameState(cfg, playerSkin),
		Rand:   rng,
		Assets: assets,
		Keys:   keys,
	}
}

// PushEvent queues an event for the current frame
func (g *GameContext) PushEvent(t EventType) {
	g.events.Push(Event{Type: t, Frame: g.State.GetFrameNumber()})
}

// ConsumeEvents drains all queued events
func (g *GameContext) ConsumeEvents() []Event {
	return g.events.Consume()
}

// PendingEvents returns the number of queued events
func (g *GameContext) PendingEvents() int {
	return g.events.Len()
}

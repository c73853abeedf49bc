package engine

import (
	"github.com/lixenwraith/phonk-racer/config"
)

// GameState is the aggregate root of the simulation.
// Owned by the frame loop goroutine; systems mutate it only during their Update
type GameState struct {
	// ===== ENTITIES =====

	// Player car, driven by steering only
	Player Object

	// Collections keep a stable size once populated, entries are recycled in place
	Enemies []Object
	Trees   []Object
	Cracks  []Object

	// ===== LIFECYCLE =====

	score    int
	gameOver bool
	running  bool

	// Frame counter, incremented once per tick in any state
	frame int64

	// Player skin is fixed for the whole process
	playerSkin string
}

// NewGameState creates the initial running state with a player car and empty collections
func NewGameState(cfg *config.Config, playerSkin string) *GameState {
	gs := &GameState{
		running:    true,
		playerSkin: playerSkin,
		Enemies:    make([]Object, 0, cfg.NCars),
		Trees:      make([]Object, 0, 2*cfg.NTrees),
		Cracks:     make([]Object, 0, cfg.NCracks),
	}
	gs.Player = gs.newPlayer(cfg)
	return gs
}

func (gs *GameState) newPlayer(cfg *config.Config) Object {
	x, y := cfg.PlayerStart()
	return NewCar(x, y, gs.playerSkin, 0, false)
}

// Reset restores a fresh player car, empties the enemy collection and zeroes the score.
// Trees and cracks are carried over
func (gs *GameState) Reset(cfg *config.Config) {
	gs.Player = gs.newPlayer(cfg)
	gs.Enemies = make([]Object, 0, cfg.NCars)
	gs.score = 0
	gs.gameOver = false
}

// Score returns the number of enemies dodged since the last reset
func (gs *GameState) Score() int {
	return gs.score
}

// AddScore increments the score by one passed enemy
func (gs *GameState) AddScore() {
	gs.score++
}

// IsGameOver reports whether a collision froze the simulation
func (gs *GameState) IsGameOver() bool {
	return gs.gameOver
}

// SetGameOver freezes the simulation
func (gs *GameState) SetGameOver() {
	gs.gameOver = true
}

// IsRunning reports whether the frame loop should continue
func (gs *GameState) IsRunning() bool {
	return gs.running
}

// Stop ends the frame loop after the current tick
func (gs *GameState) Stop() {
	gs.running = false
}

// PlayerSkin returns the fixed player skin path
func (gs *GameState) PlayerSkin() string {
	return gs.playerSkin
}

// GetFrameNumber returns the current frame number
func (gs *GameState) GetFrameNumber() int64 {
	return gs.frame
}

// IncrementFrameNumber increments and returns the frame number
func (gs *GameState) IncrementFrameNumber() int64 {
	gs.frame++
	return gs.frame
}

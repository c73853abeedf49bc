package systems

import (
	"log"

	"github.com/lixenwraith/phonk-racer/constants"
	"github.com/lixenwraith/phonk-racer/engine"
)

// MovementSystem advances every object, checks enemy collisions and recycles
// objects that drifted below the screen
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update moves trees, cracks and enemy cars in that order
func (s *MovementSystem) Update(ctx *engine.GameContext) error {
	if ctx.State.IsGameOver() {
		return nil
	}

	cfg := ctx.Config
	gs := ctx.State

	for i := range gs.Trees {
		gs.Trees[i].Move()
		if gs.Trees[i].Below(cfg.ScreenHeight) {
			respawnTree(ctx, i)
		}
	}

	for i := range gs.Cracks {
		gs.Cracks[i].Move()
		if gs.Cracks[i].Below(cfg.ScreenHeight) {
			if err := respawnCrack(ctx, i); err != nil {
				return err
			}
		}
	}

	for i := range gs.Enemies {
		gs.Enemies[i].Move()

		// Collision takes priority over passing below the screen
		if CarsCollided(&gs.Player, &gs.Enemies[i], cfg) {
			if !gs.IsGameOver() {
				log.Printf("[movement] collision with enemy %d at (%d,%d), score %d",
					i, gs.Enemies[i].X, gs.Enemies[i].Y, gs.Score())
				gs.SetGameOver()
				ctx.PushEvent(engine.EventCollision)
			}
			continue
		}

		if gs.Enemies[i].Below(cfg.ScreenHeight) {
			ok, err := respawnEnemy(ctx, i)
			if err != nil {
				return err
			}
			if ok {
				gs.AddScore()
				ctx.PushEvent(engine.EventEnemyPassed)
			}
		}
	}

	return nil
}

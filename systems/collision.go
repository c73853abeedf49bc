package systems

import (
	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/engine"
)

// CarsCollided reports whether an enemy car hits the player.
// The vertical test is a band of two car heights centred on the player, wider
// than a rectangle intersection; horizontally the cars must be within half a
// car width. Evaluated as 2*|dx| <= width to stay exact for odd widths
func CarsCollided(player, enemy *engine.Object, cfg *config.Config) bool {
	minY := player.Y - cfg.CarHeight
	maxY := player.Y + cfg.CarHeight
	if enemy.Y < minY || enemy.Y > maxY {
		return false
	}

	dx := enemy.X - player.X
	if dx < 0 {
		dx = -dx
	}
	return 2*dx <= cfg.CarWidth
}

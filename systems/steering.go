package systems

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/constants"
	"github.com/lixenwraith/phonk-racer/engine"
	"github.com/lixenwraith/phonk-racer/input"
)

// SteeringSystem moves the player car horizontally from held keys
type SteeringSystem struct{}

// NewSteeringSystem creates a new steering system
func NewSteeringSystem() *SteeringSystem {
	return &SteeringSystem{}
}

// Priority returns the system's priority
func (s *SteeringSystem) Priority() int {
	return constants.PrioritySteering
}

// Update steers the player from the context's key source
func (s *SteeringSystem) Update(ctx *engine.GameContext) error {
	return Steer(&ctx.State.Player, ctx.Keys, ctx.Config)
}

// Steer shifts the player by PlayerSpeed per held direction while the car stays
// inside the screen. Left and right are checked independently.
// A key the source cannot report is returned as an error, never treated as released
func Steer(player *engine.Object, keys engine.KeySource, cfg *config.Config) error {
	left, err := anyDown(keys, input.KeyLeft, input.KeyA)
	if err != nil {
		return err
	}
	right, err := anyDown(keys, input.KeyRight, input.KeyD)
	if err != nil {
		return err
	}

	// x - cw/2 > 0
	if left && 2*player.X-cfg.CarWidth > 0 {
		player.X -= cfg.PlayerSpeed
	}
	// x + 1.5*cw < screenWidth
	if right && 2*player.X+3*cfg.CarWidth < 2*cfg.ScreenWidth {
		player.X += cfg.PlayerSpeed
	}
	return nil
}

// anyDown reports whether either binding of a direction is held
func anyDown(keys engine.KeySource, primary, alternate input.Key) (bool, error) {
	down, err := keys.IsDown(primary)
	if err != nil {
		return false, errors.Wrap(err, "steer")
	}
	if down {
		return true, nil
	}
	down, err = keys.IsDown(alternate)
	if err != nil {
		return false, errors.Wrap(err, "steer")
	}
	return down, nil
}

package systems

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/engine"
	"github.com/lixenwraith/phonk-racer/input"
)

// brokenKeys cannot report any key
type brokenKeys struct{}

func (brokenKeys) IsDown(k input.Key) (bool, error) {
	return false, errors.Wrapf(input.ErrUnknownKey, "key %s", k)
}

func TestSteer(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name  string
		keys  input.Held
		x     int
		wantX int
	}{
		{"no keys", input.Hold(), 100, 100},
		{"left arrow", input.Hold(input.KeyLeft), 100, 94},
		{"a", input.Hold(input.KeyA), 100, 94},
		{"right arrow", input.Hold(input.KeyRight), 100, 106},
		{"d", input.Hold(input.KeyD), 100, 106},
		{"left and a once", input.Hold(input.KeyLeft, input.KeyA), 100, 94},
		{"both directions cancel", input.Hold(input.KeyLeft, input.KeyRight), 100, 100},
		{"left blocked at margin", input.Hold(input.KeyLeft), 35, 35},
		{"left just inside margin", input.Hold(input.KeyLeft), 36, 30},
		{"right blocked at margin", input.Hold(input.KeyRight), 395, 395},
		{"right just inside margin", input.Hold(input.KeyRight), 394, 400},
		{"restart is not steering", input.Hold(input.KeyRestart), 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := engine.NewCar(tt.x, 540, "cars/red.png", 0, false)
			if err := Steer(&player, tt.keys, cfg); err != nil {
				t.Fatalf("Steer() error = %v", err)
			}
			if player.X != tt.wantX {
				t.Errorf("X = %d, want %d", player.X, tt.wantX)
			}
			if player.Y != 540 {
				t.Errorf("Y changed to %d", player.Y)
			}
		})
	}
}

func TestSteerUnknownKey(t *testing.T) {
	cfg := config.Default()
	player := engine.NewCar(100, 540, "", 0, false)

	err := Steer(&player, brokenKeys{}, cfg)
	if err == nil {
		t.Fatal("Expected error from a key source that cannot report keys")
	}
	if errors.Cause(err) != input.ErrUnknownKey {
		t.Errorf("Cause = %v, want ErrUnknownKey", errors.Cause(err))
	}
	if player.X != 100 {
		t.Errorf("Player moved to %d on error", player.X)
	}
}

func TestSteerStaysOnScreen(t *testing.T) {
	cfg := config.Default()

	left := engine.NewCar(215, 540, "", 0, false)
	right := engine.NewCar(215, 540, "", 0, false)
	for i := 0; i < 200; i++ {
		if err := Steer(&left, input.Hold(input.KeyA), cfg); err != nil {
			t.Fatal(err)
		}
		if err := Steer(&right, input.Hold(input.KeyD), cfg); err != nil {
			t.Fatal(err)
		}
	}

	// The last step may cross the margin by less than PlayerSpeed
	if left.X < cfg.CarWidth/2-cfg.PlayerSpeed {
		t.Errorf("Left steering ended at %d", left.X)
	}
	if left.X+cfg.CarWidth/2 > cfg.ScreenWidth {
		t.Errorf("Left steering ended off screen at %d", left.X)
	}
	if right.X+cfg.CarWidth > cfg.ScreenWidth {
		t.Errorf("Right steering ended off screen at %d", right.X)
	}
}

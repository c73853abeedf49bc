package systems

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/engine"
)

// ErrNoSlot is reported when every enemy slot is within a car width of a placed enemy
var ErrNoSlot = errors.New("no free enemy slot")

// SlotPositions returns the evenly spaced x positions enemy cars may spawn at:
// round(cw/2), round(cw/2)+cw, ... below screenWidth - round(1.5*cw)
func SlotPositions(cfg *config.Config) []int {
	start := roundHalfEven(float64(cfg.CarWidth) / 2)
	stop := cfg.ScreenWidth - roundHalfEven(1.5*float64(cfg.CarWidth))

	slots := make([]int, 0, cfg.ScreenWidth/cfg.CarWidth+1)
	for x := start; x < stop; x += cfg.CarWidth {
		slots = append(slots, x)
	}
	return slots
}

// FindSlot returns a random slot at least one car width away from every enemy.
// The enemy at index skip is ignored (pass -1 to check all). Candidates are
// shuffled so placement does not cluster to the left
func FindSlot(r *rand.Rand, cfg *config.Config, enemies []engine.Object, skip int) (int, bool) {
	slots := SlotPositions(cfg)
	r.Shuffle(len(slots), func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})

	for _, x := range slots {
		if slotFree(x, cfg.CarWidth, enemies, skip) {
			return x, true
		}
	}
	return 0, false
}

func slotFree(x, carWidth int, enemies []engine.Object, skip int) bool {
	for i := range enemies {
		if i == skip {
			continue
		}
		dx := enemies[i].X - x
		if dx < 0 {
			dx = -dx
		}
		if dx < carWidth {
			return false
		}
	}
	return true
}

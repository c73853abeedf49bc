package systems

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/engine"
)

func TestSlotPositions(t *testing.T) {
	slots := SlotPositions(config.Default())

	// range(35, 500-105, 70)
	want := []int{35, 105, 175, 245, 315, 385}
	if len(slots) != len(want) {
		t.Fatalf("SlotPositions() = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot[%d] = %d, want %d", i, slots[i], want[i])
		}
	}
}

func TestSlotPositionsOddWidth(t *testing.T) {
	cfg := config.Default()
	cfg.CarWidth = 71

	slots := SlotPositions(cfg)
	// round(35.5) = 36 (ties to even), stop = 500 - round(106.5) = 394
	if slots[0] != 36 {
		t.Errorf("first slot = %d, want 36", slots[0])
	}
	for _, x := range slots {
		if x >= 394 {
			t.Errorf("slot %d beyond stop 394", x)
		}
	}
}

func TestFindSlotKeepsCarWidthApart(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		x1, x2 int
	}{
		{50, 100},
		{100, 150},
		{200, 250},
	}

	for _, tt := range tests {
		enemies := []engine.Object{
			engine.NewCar(tt.x1, 0, "cars/blue.png", 0, true),
			engine.NewCar(tt.x2, 0, "cars/red.png", 0, true),
		}
		for seed := int64(0); seed < 50; seed++ {
			x, ok := FindSlot(rand.New(rand.NewSource(seed)), cfg, enemies, -1)
			if !ok {
				t.Fatalf("FindSlot(%d,%d) found no slot", tt.x1, tt.x2)
			}
			for _, e := range enemies {
				d := e.X - x
				if d < 0 {
					d = -d
				}
				if d < cfg.CarWidth {
					t.Errorf("FindSlot(%d,%d) = %d, only %d from %d", tt.x1, tt.x2, x, d, e.X)
				}
			}
		}
	}
}

func TestFindSlotIsRandom(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(7))

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		x, _ := FindSlot(rng, cfg, nil, -1)
		seen[x] = true
	}
	if len(seen) != len(SlotPositions(cfg)) {
		t.Errorf("Expected every slot to be chosen on an empty road, got %d distinct", len(seen))
	}
}

func TestFindSlotSkipsSelf(t *testing.T) {
	cfg := config.Default()
	// Cars between slots block both neighbours
	enemies := []engine.Object{
		engine.NewCar(70, 0, "", 0, true),
		engine.NewCar(210, 0, "", 0, true),
		engine.NewCar(350, 0, "", 0, true),
	}

	if _, ok := FindSlot(rand.New(rand.NewSource(1)), cfg, enemies, -1); ok {
		t.Fatal("Expected every slot to be blocked")
	}

	for seed := int64(0); seed < 20; seed++ {
		x, ok := FindSlot(rand.New(rand.NewSource(seed)), cfg, enemies, 1)
		if !ok {
			t.Fatal("Expected a slot once the recycled car is ignored")
		}
		if x != 175 && x != 245 {
			t.Errorf("FindSlot(skip=1) = %d, want 175 or 245", x)
		}
	}
}

func TestFindSlotNoneOnNarrowRoad(t *testing.T) {
	cfg := config.Default()
	cfg.CarWidth = 300 // start 150, stop 500-450=50: no slots at all

	if _, ok := FindSlot(rand.New(rand.NewSource(1)), cfg, nil, -1); ok {
		t.Error("Expected no slot when the road is narrower than a car")
	}
}

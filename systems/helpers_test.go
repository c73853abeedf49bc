package systems

import (
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/lixenwraith/phonk-racer/asset"
	"github.com/lixenwraith/phonk-racer/config"
	"github.com/lixenwraith/phonk-racer/engine"
	"github.com/lixenwraith/phonk-racer/input"
)

// testAssets lists a few files per directory; contents are never decoded by systems
func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"cars/blue.png":     {},
		"cars/green.png":    {},
		"cars/red.png":      {},
		"cars/white.png":    {},
		"cracks/crack1.png": {},
		"cracks/crack2.png": {},
		"trees/tree.png":    {},
	}
}

// newTestContext builds a context with a seeded random source and no held keys
func newTestContext(t *testing.T, seed int64) *engine.GameContext {
	t.Helper()
	return newTestContextWith(t, config.Default(), seed, input.Hold())
}

func newTestContextWith(t *testing.T, cfg *config.Config, seed int64, keys engine.KeySource) *engine.GameContext {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	lib := asset.NewLibrary(testAssets(), rng)
	return engine.NewGameContext(cfg, rng, lib, keys, "cars/red.png")
}

// countEvents drains the queue and counts events of type et
func countEvents(ctx *engine.GameContext, et engine.EventType) int {
	n := 0
	for _, ev := range ctx.ConsumeEvents() {
		if ev.Type == et {
			n++
		}
	}
	return n
}

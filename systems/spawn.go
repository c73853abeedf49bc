package systems

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/phonk-racer/constants"
	"github.com/lixenwraith/phonk-racer/engine"
)

// SpawnSystem tops up enemy cars, trees and cracks to their target populations.
// Collections never grow past target; off-screen entries are recycled by movement
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update fills every collection up to its target size
func (s *SpawnSystem) Update(ctx *engine.GameContext) error {
	if ctx.State.IsGameOver() {
		return nil
	}
	if err := s.topUpEnemies(ctx); err != nil {
		return err
	}
	if err := s.topUpTrees(ctx); err != nil {
		return err
	}
	return s.topUpCracks(ctx)
}

// topUpEnemies places new enemy cars at free slots above the screen
func (s *SpawnSystem) topUpEnemies(ctx *engine.GameContext) error {
	cfg := ctx.Config
	gs := ctx.State

	for len(gs.Enemies) < cfg.NCars {
		x, ok := FindSlot(ctx.Rand, cfg, gs.Enemies, -1)
		if !ok {
			placementFailed(errors.Wrapf(ErrNoSlot, "spawn enemy %d/%d", len(gs.Enemies)+1, cfg.NCars))
			return nil
		}

		car, err := newEnemy(ctx, x)
		if err != nil {
			return err
		}
		gs.Enemies = append(gs.Enemies, car)
	}
	return nil
}

// topUpTrees spawns trees in pairs, one at each road margin
func (s *SpawnSystem) topUpTrees(ctx *engine.GameContext) error {
	cfg := ctx.Config
	gs := ctx.State
	target := 2 * cfg.NTrees
	columns := [2]int{0, cfg.ScreenWidth - constants.TreeRightMargin}

	for len(gs.Trees) < target {
		skin, err := ctx.Assets.RandomAsset(constants.TreesDir)
		if err != nil {
			return errors.Wrap(err, "spawn tree")
		}
		for _, x := range columns {
			if len(gs.Trees) >= target {
				break
			}
			y := randRange(ctx.Rand, constants.DecorationMinY, cfg.ScreenHeight, 2*cfg.ObjHeight)
			gs.Trees = append(gs.Trees, engine.NewDecoration(x, y, skin, cfg.ObjSpeed))
		}
	}
	return nil
}

// topUpCracks scatters pavement cracks over the road
func (s *SpawnSystem) topUpCracks(ctx *engine.GameContext) error {
	cfg := ctx.Config
	gs := ctx.State

	for len(gs.Cracks) < cfg.NCracks {
		skin, err := ctx.Assets.RandomAsset(constants.CracksSkinsDir)
		if err != nil {
			return errors.Wrap(err, "spawn crack")
		}
		x := randRange(ctx.Rand, constants.CrackMinX, constants.CrackMaxX, constants.CrackStepX)
		y := randRange(ctx.Rand, constants.DecorationMinY, cfg.ScreenHeight, 2*cfg.ObjHeight)
		gs.Cracks = append(gs.Cracks, engine.NewDecoration(x, y, skin, cfg.CracksSpeed))
	}
	return nil
}

// newEnemy builds an oncoming car at x with a random speed and skin
func newEnemy(ctx *engine.GameContext, x int) (engine.Object, error) {
	skin, err := ctx.Assets.RandomAsset(constants.CarSkinsDir)
	if err != nil {
		return engine.Object{}, errors.Wrap(err, "enemy skin")
	}
	speed := randInclusive(ctx.Rand, ctx.Config.EnemyMinSpeed, ctx.Config.EnemyMaxSpeed)
	return engine.NewCar(x, constants.EnemySpawnY, skin, speed, true), nil
}

// respawnEnemy replaces the enemy at index i with a fresh car at a free slot.
// Returns false when no slot is free; the car stays below the screen and is retried next tick
func respawnEnemy(ctx *engine.GameContext, i int) (bool, error) {
	gs := ctx.State

	x, ok := FindSlot(ctx.Rand, ctx.Config, gs.Enemies, i)
	if !ok {
		placementFailed(errors.Wrapf(ErrNoSlot, "respawn enemy %d", i))
		return false, nil
	}

	car, err := newEnemy(ctx, x)
	if err != nil {
		return false, err
	}
	gs.Enemies[i] = car
	return true, nil
}

// respawnTree moves a tree back above the screen, keeping its column and skin
func respawnTree(ctx *engine.GameContext, i int) {
	old := ctx.State.Trees[i]
	y := randRange(ctx.Rand, constants.TreeRespawnMinY, constants.TreeRespawnMaxY, constants.TreeRespawnStepY)
	ctx.State.Trees[i] = engine.NewDecoration(old.X, y, old.Skin, old.Speed)
}

// respawnCrack replaces a crack with a new one above the screen and a new skin
func respawnCrack(ctx *engine.GameContext, i int) error {
	old := ctx.State.Cracks[i]
	skin, err := ctx.Assets.RandomAsset(constants.CracksSkinsDir)
	if err != nil {
		return errors.Wrap(err, "respawn crack")
	}
	x := randRange(ctx.Rand, constants.CrackMinX, constants.CrackMaxX, constants.CrackStepX)
	y := randRange(ctx.Rand, constants.CrackRespawnMinY, constants.CrackRespawnMaxY, constants.CrackRespawnStepY)
	ctx.State.Cracks[i] = engine.NewDecoration(x, y, skin, old.Speed)
	return nil
}

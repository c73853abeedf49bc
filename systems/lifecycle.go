package systems

import (
	"log"

	"github.com/lixenwraith/phonk-racer/engine"
	"github.com/lixenwraith/phonk-racer/engine/fsm"
)

// Game lifecycle states
const (
	StateRunning fsm.StateID = iota + 1
	StateGameOver
)

// EventListener observes every event after the systems ran, before the state machine
type EventListener func(ctx *engine.GameContext, ev engine.Event)

// Game drives the Running/GameOver state machine over the system pipeline
type Game struct {
	ctx       *engine.GameContext
	pipeline  engine.Pipeline
	machine   *fsm.Machine[*engine.GameContext]
	listeners []EventListener
}

// NewGame registers the simulation systems and enters Running
func NewGame(ctx *engine.GameContext) (*Game, error) {
	g := &Game{ctx: ctx}

	g.pipeline.AddSystem(NewSpawnSystem())
	g.pipeline.AddSystem(NewMovementSystem())
	g.pipeline.AddSystem(NewSteeringSystem())

	m := fsm.NewMachine[*engine.GameContext]()

	m.AddState(StateRunning, "Running").
		OnUpdateDo(g.pipeline.Update)

	m.AddState(StateGameOver, "GameOver").
		OnEnterDo(func(ctx *engine.GameContext) error {
			log.Printf("[fsm] game over at frame %d, score %d", ctx.State.GetFrameNumber(), ctx.State.Score())
			return nil
		}).
		OnExitDo(func(ctx *engine.GameContext) error {
			ctx.State.Reset(ctx.Config)
			log.Printf("[fsm] restart at frame %d", ctx.State.GetFrameNumber())
			return nil
		})

	m.AddTransition(StateRunning, fsm.Transition[*engine.GameContext]{
		TargetID: StateGameOver,
		Event:    engine.EventCollision,
	})
	m.AddTransition(StateGameOver, fsm.Transition[*engine.GameContext]{
		TargetID: StateRunning,
		Event:    engine.EventRestart,
	})

	if err := m.Init(ctx, StateRunning); err != nil {
		return nil, err
	}
	g.machine = m
	return g, nil
}

// Context returns the game context
func (g *Game) Context() *engine.GameContext {
	return g.ctx
}

// Subscribe adds a listener for simulation events
func (g *Game) Subscribe(fn EventListener) {
	g.listeners = append(g.listeners, fn)
}

// State returns the active lifecycle state
func (g *Game) State() fsm.StateID {
	return g.machine.Current()
}

// StateName returns the active lifecycle state's name
func (g *Game) StateName() string {
	return g.machine.CurrentName()
}

// Restart requests a restart; ignored unless the game is over
func (g *Game) Restart() {
	g.ctx.PushEvent(engine.EventRestart)
}

// Quit stops the frame loop from any state
func (g *Game) Quit() {
	g.ctx.PushEvent(engine.EventQuit)
}

// Tick advances one frame: the active state's update, then queued events
func (g *Game) Tick() error {
	g.ctx.State.IncrementFrameNumber()

	if err := g.machine.Update(g.ctx); err != nil {
		return err
	}

	for _, ev := range g.ctx.ConsumeEvents() {
		for _, fn := range g.listeners {
			fn(g.ctx, ev)
		}

		if ev.Type == engine.EventQuit {
			g.ctx.State.Stop()
			continue
		}
		if _, err := g.machine.HandleEvent(g.ctx, ev.Type); err != nil {
			return err
		}
	}
	return nil
}

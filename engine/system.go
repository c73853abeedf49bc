package engine

import "sort"

// System is a per-tick simulation step
type System interface {
	Update(ctx *GameContext) error
	Priority() int // Lower values run first
}

// Pipeline runs systems in priority order
type Pipeline struct {
	systems []System
}

// AddSystem adds a system and keeps the list sorted by priority.
// Systems with equal priority run in insertion order
func (p *Pipeline) AddSystem(system System) {
	p.systems = append(p.systems, system)
	sort.SliceStable(p.systems, func(i, j int) bool {
		return p.systems[i].Priority() < p.systems[j].Priority()
	})
}

// Update runs all systems, stopping at the first error
func (p *Pipeline) Update(ctx *GameContext) error {
	for _, system := range p.systems {
		if err := system.Update(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of registered systems
func (p *Pipeline) Len() int {
	return len(p.systems)
}

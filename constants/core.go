package constants

import "time"

// Game Loop Timing
const (
	// FrameRate is the target simulation/render rate
	FrameRate = 60

	// FrameUpdateInterval is the pacing interval of the frame loop (~60 FPS)
	FrameUpdateInterval = time.Second / FrameRate

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)

// System Execution Priorities (lower runs first)
const (
	PrioritySpawn    = 10
	PriorityMovement = 20
	PrioritySteering = 30
)

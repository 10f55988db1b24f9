package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhasePreUpdate  Phase = iota // 0: dispatch last tick's events
	PhaseUpdate                  // 1: behavior / game logic
	PhasePostUpdate              // 2: demolition, state decay
	PhaseCleanup                 // 3: compact removed objects
)

// System is the interface every tick system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}

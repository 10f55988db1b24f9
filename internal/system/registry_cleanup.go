package system

import (
	"time"

	coresys "github.com/roversim/server/internal/core/system"
	"github.com/roversim/server/internal/object"
)

// CleanupSystem compacts tombstoned registry slots at tick end, so
// iteration earlier in the same tick never sees slots disappear under it.
// Phase 3 (Cleanup).
type CleanupSystem struct {
	reg *object.Registry
}

func NewCleanupSystem(reg *object.Registry) *CleanupSystem {
	return &CleanupSystem{reg: reg}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	if s.reg.PendingClean() {
		s.reg.CleanRemoved()
	}
}

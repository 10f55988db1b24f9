package system

import (
	"time"

	"github.com/roversim/server/internal/core/event"
	coresys "github.com/roversim/server/internal/core/system"
	"github.com/roversim/server/internal/object"
	"github.com/roversim/server/internal/sim"
)

// DemolitionSystem finishes asynchronous destruction: it advances explosion
// fuses started by Detonate (DestroyTeam, scripted self-destructs) and
// deletes units whose fuse has run out. Phase 2 (PostUpdate).
type DemolitionSystem struct {
	reg *object.Registry
	bus *event.Bus
}

func NewDemolitionSystem(reg *object.Registry, bus *event.Bus) *DemolitionSystem {
	return &DemolitionSystem{reg: reg, bus: bus}
}

func (s *DemolitionSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *DemolitionSystem) Update(_ time.Duration) {
	for _, obj := range s.reg.All() {
		unit, ok := obj.(*sim.Unit)
		if !ok || !unit.Exploding() {
			continue
		}
		if unit.TickFuse() {
			event.Emit(s.bus, event.ObjectDestroyed{
				ID:   unit.ID(),
				Type: unit.Type(),
				Team: unit.Team(),
			})
			s.reg.Delete(unit)
		}
	}
}

package system

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/roversim/server/internal/core/event"
	coresys "github.com/roversim/server/internal/core/system"
	"github.com/roversim/server/internal/geo"
	"github.com/roversim/server/internal/object"
	"github.com/roversim/server/internal/scripting"
	"github.com/roversim/server/internal/sim"
)

// BehaviorSystem runs the Lua behavior for every scripted unit each tick.
// Go owns movement execution; Lua owns the decisions (and uses the radar
// globals to find things). Phase 1 (Update).
type BehaviorSystem struct {
	reg    *object.Registry
	engine *scripting.Engine
	bus    *event.Bus
}

func NewBehaviorSystem(reg *object.Registry, engine *scripting.Engine, bus *event.Bus) *BehaviorSystem {
	return &BehaviorSystem{reg: reg, engine: engine, bus: bus}
}

func (s *BehaviorSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *BehaviorSystem) Update(dt time.Duration) {
	for _, obj := range s.reg.All() {
		unit, ok := obj.(*sim.Unit)
		if !ok || !unit.Template().Scripted {
			continue
		}
		if !unit.Active() || unit.Transported() || unit.Exploding() {
			continue
		}

		pos := unit.Position()
		ctx := scripting.BehaviorContext{
			ID:      unit.ID(),
			Type:    unit.Type().String(),
			Team:    unit.Team(),
			X:       pos.X(),
			Z:       pos.Z(),
			Heading: unit.Heading(),
			Energy:  unit.Energy(),
			Flying:  unit.Implements(object.CapFlyer),
			Landed:  unit.Landed(),
		}

		for _, cmd := range s.engine.RunUnitBehavior(ctx) {
			s.execute(unit, cmd, dt)
		}
	}
}

func (s *BehaviorSystem) execute(unit *sim.Unit, cmd scripting.Command, dt time.Duration) {
	switch cmd.Type {
	case "turn":
		unit.SetHeading(geo.NormAngle(unit.Heading() + cmd.Angle))
	case "advance":
		dist := cmd.Dist
		if max := unit.Template().Speed * dt.Seconds(); max > 0 && dist > max {
			dist = max
		}
		// Clockwise heading convention: zero heading advances along +X.
		h := unit.Heading()
		pos := unit.Position()
		unit.SetPosition(mgl64.Vec3{
			pos.X() + dist*math.Cos(h),
			pos.Y(),
			pos.Z() - dist*math.Sin(h),
		})
	case "takeoff":
		if unit.Implements(object.CapFlyer) {
			unit.SetLanded(false)
		}
	case "land":
		if unit.Implements(object.CapFlyer) {
			unit.SetLanded(true)
		}
	case "detonate":
		if unit.Implements(object.CapExploder) {
			unit.Detonate(object.ExplosionBang, 1.0)
			event.Emit(s.bus, event.ExplosionStarted{ID: unit.ID(), Kind: object.ExplosionBang})
		}
	}
}

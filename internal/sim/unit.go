package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/roversim/server/internal/data"
	"github.com/roversim/server/internal/object"
)

// Unit is the concrete object built by the template factory. It implements
// object.Object always, and the capability interfaces according to its
// template (checked through Implements before use).
type Unit struct {
	id      int
	typ     object.ObjectType
	team    int
	pos     mgl64.Vec3
	heading float64

	active      bool
	proxy       bool
	transported bool

	tmpl *data.Template

	// Physics capability state; meaningful only when tmpl.Flying.
	landed bool

	// Explosion fuse, in ticks. Set by Detonate, counted down by the
	// demolition system. 0 = not exploding.
	fuse          int
	explosionKind object.ExplosionKind

	energy  float64
	scale   float64
	trainer bool
	toy     bool
	option  int

	tornDown bool
}

const explosionFuseTicks = 5

func newUnit(params object.CreateParams, tmpl *data.Template) *Unit {
	return &Unit{
		id:      params.ID,
		typ:     params.Type,
		team:    params.Team,
		pos:     params.Pos,
		heading: params.Heading,
		active:  true,
		tmpl:    tmpl,
		landed:  !tmpl.Flying || tmpl.StartsLanded,
		energy:  tmpl.MaxEnergy * params.Power,
		scale:   tmpl.Scale * params.Zoom,
		trainer: params.Trainer,
		toy:     params.Toy,
		option:  params.Option,
	}
}

func (u *Unit) ID() int                 { return u.id }
func (u *Unit) Type() object.ObjectType { return u.typ }
func (u *Unit) Team() int               { return u.team }
func (u *Unit) SetTeam(team int)        { u.team = team }
func (u *Unit) Active() bool            { return u.active }
func (u *Unit) SetActive(active bool)   { u.active = active }
func (u *Unit) Position() mgl64.Vec3    { return u.pos }
func (u *Unit) Heading() float64        { return u.heading }
func (u *Unit) Proxy() bool             { return u.proxy }
func (u *Unit) Transported() bool       { return u.transported }

func (u *Unit) SetPosition(pos mgl64.Vec3)  { u.pos = pos }
func (u *Unit) SetHeading(heading float64)  { u.heading = heading }
func (u *Unit) SetProxy(proxy bool)         { u.proxy = proxy }
func (u *Unit) SetTransported(carried bool) { u.transported = carried }

func (u *Unit) Template() *data.Template { return u.tmpl }
func (u *Unit) Energy() float64          { return u.energy }
func (u *Unit) Scale() float64           { return u.scale }
func (u *Unit) Trainer() bool            { return u.trainer }
func (u *Unit) Toy() bool                { return u.toy }
func (u *Unit) Option() int              { return u.option }

func (u *Unit) Implements(c object.Capability) bool {
	switch c {
	case object.CapFlyer:
		return u.tmpl.Flying
	case object.CapDestructible:
		return u.tmpl.Destructible
	case object.CapExploder:
		return u.tmpl.Explosive
	case object.CapTransportable:
		return u.typ == object.TypeTitanium || u.typ == object.TypeUranium
	case object.CapPowered:
		return u.tmpl.MaxEnergy > 0
	}
	return false
}

// Landed implements the physics capability. Units whose template is not
// flying report landed permanently.
func (u *Unit) Landed() bool { return u.landed }

// SetLanded flips the flight state; only meaningful for flying units.
func (u *Unit) SetLanded(landed bool) { u.landed = landed }

// Teardown runs removal side effects once. Deactivation is also enforced by
// the registry on release; doing it here keeps directly-torn-down units
// invisible to radar as well.
func (u *Unit) Teardown(forced bool) {
	if u.tornDown {
		return
	}
	u.tornDown = true
	u.active = false
	if forced {
		u.fuse = 0 // full-registry teardown skips the explosion
	}
}

// Detonate starts the explosion: the demolition system counts the fuse down
// and removes the unit when it reaches zero.
func (u *Unit) Detonate(kind object.ExplosionKind, force float64) {
	if u.fuse > 0 || u.tornDown {
		return
	}
	u.explosionKind = kind
	u.fuse = explosionFuseTicks
	if force > 1.0 {
		u.fuse = explosionFuseTicks / 2
	}
}

// Exploding reports whether a detonation is in progress.
func (u *Unit) Exploding() bool { return u.fuse > 0 }

// ExplosionKind returns the active detonation flavor.
func (u *Unit) ExplosionKind() object.ExplosionKind { return u.explosionKind }

// TickFuse advances the explosion by one tick and reports whether it has
// finished (the unit should now be deleted).
func (u *Unit) TickFuse() bool {
	if u.fuse == 0 {
		return false
	}
	u.fuse--
	return u.fuse == 0
}

package object

import "github.com/go-gl/mathgl/mgl64"

// Capability tags the optional behaviors an object can expose. Used by
// Registry.CountImplementing and scripts that probe what a unit can do.
type Capability int

const (
	CapFlyer Capability = iota
	CapDestructible
	CapExploder
	CapTransportable
	CapPowered
)

// Object is the surface the registry and radar engine consume. Construction
// of concrete objects is the factory collaborator's business; everything in
// this package works through this interface and the capability interfaces
// below.
type Object interface {
	ID() int
	Type() ObjectType
	Team() int
	SetTeam(team int)
	Active() bool
	SetActive(active bool)
	Position() mgl64.Vec3
	Heading() float64

	// Proxy objects are non-queryable placeholders; transported objects are
	// cargo inside a carrier. Radar skips both.
	Proxy() bool
	Transported() bool

	Implements(c Capability) bool
}

// Flyer is the physics capability: landed vs airborne state. Objects without
// it always pass radar flight filters.
type Flyer interface {
	Landed() bool
}

// Destructible objects get a teardown pass before the registry releases
// them. forced is set only during full-registry destruction.
type Destructible interface {
	Teardown(forced bool)
}

// ExplosionKind selects the visual/behavioral flavor of a detonation.
type ExplosionKind int

const (
	ExplosionBang ExplosionKind = iota
	ExplosionBurn
	ExplosionWater
)

// Exploder objects can be blown up. Detonate only starts the explosion; the
// demolition system consumes it over subsequent ticks.
type Exploder interface {
	Detonate(kind ExplosionKind, force float64)
}

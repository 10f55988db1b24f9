package object

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// fakeObject is the minimal Object used across registry and radar tests.
type fakeObject struct {
	id          int
	typ         ObjectType
	team        int
	pos         mgl64.Vec3
	heading     float64
	active      bool
	proxy       bool
	transported bool
	caps        map[Capability]bool

	tornDown  bool
	forced    bool
	detonated bool
}

func (f *fakeObject) ID() int               { return f.id }
func (f *fakeObject) Type() ObjectType      { return f.typ }
func (f *fakeObject) Team() int             { return f.team }
func (f *fakeObject) SetTeam(team int)      { f.team = team }
func (f *fakeObject) Active() bool          { return f.active }
func (f *fakeObject) SetActive(active bool) { f.active = active }
func (f *fakeObject) Position() mgl64.Vec3  { return f.pos }
func (f *fakeObject) Heading() float64      { return f.heading }
func (f *fakeObject) Proxy() bool           { return f.proxy }
func (f *fakeObject) Transported() bool     { return f.transported }

func (f *fakeObject) Implements(c Capability) bool { return f.caps[c] }

func (f *fakeObject) Teardown(forced bool) {
	f.tornDown = true
	f.forced = forced
}

func (f *fakeObject) Detonate(kind ExplosionKind, force float64) { f.detonated = true }

// fakeFlyer adds the Landed method so radar flight filters apply to it.
type fakeFlyer struct {
	fakeObject
	landed bool
}

func (f *fakeFlyer) Landed() bool { return f.landed }

// stubFactory builds fakes keyed on type: TypeNone fails, TypeBotFlying
// yields a flyer, bots get the exploder capability.
type stubFactory struct{}

func (stubFactory) Create(p CreateParams) (Object, error) {
	if p.Type == TypeNone {
		return nil, errors.New("no template")
	}

	caps := map[Capability]bool{}
	switch p.Type {
	case TypeBotWheeled, TypeBotTracked, TypeBotLegged:
		caps[CapExploder] = true
		caps[CapDestructible] = true
	case TypeTitanium, TypeUranium:
		caps[CapTransportable] = true
	}

	base := fakeObject{
		id:      p.ID,
		typ:     p.Type,
		team:    p.Team,
		pos:     p.Pos,
		heading: p.Heading,
		active:  true,
		caps:    caps,
	}

	if p.Type == TypeBotFlying {
		base.caps[CapFlyer] = true
		base.caps[CapExploder] = true
		return &fakeFlyer{fakeObject: base, landed: true}, nil
	}
	return &base, nil
}

func newTestRegistry() *Registry {
	return NewRegistry(stubFactory{}, 1.0, nil)
}

func mustCreate(t *testing.T, r *Registry, typ ObjectType, team int, x, z float64) Object {
	t.Helper()
	p := DefaultCreateParams(typ)
	p.Team = team
	p.Pos = mgl64.Vec3{x, 0, z}
	obj, err := r.Create(p)
	require.NoError(t, err)
	return obj
}

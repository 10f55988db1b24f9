package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	r := newTestRegistry()

	a := mustCreate(t, r, TypeBotWheeled, 1, 0, 0)
	b := mustCreate(t, r, TypeBotTracked, 1, 0, 0)

	assert.Equal(t, 0, a.ID())
	assert.Equal(t, 1, b.ID())
}

func TestCreateExplicitID(t *testing.T) {
	r := newTestRegistry()

	p := DefaultCreateParams(TypeBase)
	p.ID = 42
	obj, err := r.Create(p)
	require.NoError(t, err)
	assert.Equal(t, 42, obj.ID())

	// Auto ids keep their own sequence.
	auto := mustCreate(t, r, TypeBotWheeled, 0, 0, 0)
	assert.Equal(t, 0, auto.ID())
}

func TestCreateDuplicateIDPanics(t *testing.T) {
	r := newTestRegistry()

	p := DefaultCreateParams(TypeBase)
	p.ID = 7
	_, err := r.Create(p)
	require.NoError(t, err)

	assert.Panics(t, func() { r.Create(p) })
}

func TestCreateFactoryFailure(t *testing.T) {
	r := newTestRegistry()

	obj, err := r.Create(DefaultCreateParams(TypeNone))
	assert.Nil(t, obj)

	var ce *CreateError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, TypeNone, ce.Type)

	// Failed creation still consumed an id; the next object gets a fresh one.
	next := mustCreate(t, r, TypeBotWheeled, 0, 0, 0)
	assert.Equal(t, 1, next.ID())
}

func TestDeleteTombstonesSlot(t *testing.T) {
	r := newTestRegistry()
	obj := mustCreate(t, r, TypeBotWheeled, 1, 0, 0)

	require.True(t, r.Delete(obj))
	assert.False(t, obj.Active(), "deleted object must deactivate")
	assert.True(t, obj.(*fakeObject).tornDown, "destructible teardown must run")
	assert.Nil(t, r.ByID(obj.ID()))
	assert.True(t, r.PendingClean())
	assert.Equal(t, 1, r.Len(), "tombstone still retained before clean")
	assert.Empty(t, r.All())

	// Double delete is a no-op.
	assert.False(t, r.Delete(obj))
}

func TestCleanRemovedCompactsAllTombstones(t *testing.T) {
	r := newTestRegistry()
	a := mustCreate(t, r, TypeBotWheeled, 1, 0, 0)
	b := mustCreate(t, r, TypeBotTracked, 1, 0, 0)
	c := mustCreate(t, r, TypeBotLegged, 1, 0, 0)

	r.Delete(a)
	r.Delete(c)
	r.CleanRemoved()

	assert.False(t, r.PendingClean())
	assert.Equal(t, 1, r.Len())
	assert.Same(t, b, r.ByRank(0))
}

func TestByRankCountsTombstones(t *testing.T) {
	r := newTestRegistry()
	a := mustCreate(t, r, TypeBotWheeled, 1, 0, 0)
	b := mustCreate(t, r, TypeBotTracked, 1, 0, 0)

	r.Delete(a)

	// Before cleaning, rank 0 is the tombstone and rank 1 is still b.
	assert.Nil(t, r.ByRank(0))
	assert.Same(t, b, r.ByRank(1))
	assert.Nil(t, r.ByRank(2))
	assert.Nil(t, r.ByRank(-1))

	r.CleanRemoved()
	assert.Same(t, b, r.ByRank(0))
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	r := newTestRegistry()
	a := mustCreate(t, r, TypeBotWheeled, 1, 0, 0)
	b := mustCreate(t, r, TypeBotTracked, 1, 0, 0)
	c := mustCreate(t, r, TypeBotLegged, 1, 0, 0)

	r.Delete(b)

	assert.Equal(t, []Object{a, c}, r.All())
}

func TestDeleteAllResetsIDCounter(t *testing.T) {
	r := newTestRegistry()
	obj := mustCreate(t, r, TypeBotWheeled, 1, 0, 0)
	mustCreate(t, r, TypeBotTracked, 1, 0, 0)

	r.DeleteAll()

	assert.Equal(t, 0, r.Len())
	assert.True(t, obj.(*fakeObject).tornDown)
	assert.True(t, obj.(*fakeObject).forced, "full teardown passes forced")

	fresh := mustCreate(t, r, TypeBotWheeled, 1, 0, 0)
	assert.Equal(t, 0, fresh.ID())
}

func TestTeamExists(t *testing.T) {
	r := newTestRegistry()

	assert.True(t, r.TeamExists(0), "neutral pool always exists")
	assert.False(t, r.TeamExists(3))

	obj := mustCreate(t, r, TypeBotWheeled, 3, 0, 0)
	assert.True(t, r.TeamExists(3))

	obj.SetActive(false)
	assert.False(t, r.TeamExists(3), "inactive members do not keep a team alive")
}

func TestOfTeam(t *testing.T) {
	r := newTestRegistry()
	a := mustCreate(t, r, TypeBotWheeled, 1, 0, 0)
	mustCreate(t, r, TypeBotTracked, 2, 0, 0)
	c := mustCreate(t, r, TypeBotLegged, 1, 0, 0)

	assert.Equal(t, []Object{a, c}, r.OfTeam(1))
	assert.Empty(t, r.OfTeam(9))
}

func TestDestroyTeam(t *testing.T) {
	r := newTestRegistry()
	ours := mustCreate(t, r, TypeBotWheeled, 2, 0, 0)
	other := mustCreate(t, r, TypeBotTracked, 1, 0, 0)

	r.DestroyTeam(2)

	assert.True(t, ours.(*fakeObject).detonated)
	assert.False(t, other.(*fakeObject).detonated)

	// Destruction is asynchronous: members stay registered until the
	// demolition pass deletes them.
	assert.Same(t, ours, r.ByID(ours.ID()))
}

func TestDestroyTeamZeroPanics(t *testing.T) {
	r := newTestRegistry()
	assert.Panics(t, func() { r.DestroyTeam(0) })
}

func TestDeleteNilPanics(t *testing.T) {
	r := newTestRegistry()
	assert.Panics(t, func() { r.Delete(nil) })
}

func TestCountImplementing(t *testing.T) {
	r := newTestRegistry()
	mustCreate(t, r, TypeBotWheeled, 1, 0, 0)
	mustCreate(t, r, TypeBotFlying, 1, 0, 0)
	mustCreate(t, r, TypeTitanium, 0, 0, 0)

	assert.Equal(t, 1, r.CountImplementing(CapFlyer))
	assert.Equal(t, 2, r.CountImplementing(CapExploder))
	assert.Equal(t, 1, r.CountImplementing(CapTransportable))
}

package object

import (
	"fmt"

	"go.uber.org/zap"
)

// Registry owns every live object in the world, keyed by unique integer id.
// Deletion is two-phase: Delete tombstones the slot (key retained, owned
// object released), CleanRemoved compacts tombstones. Single-goroutine
// access only (game loop) — no locks.
type Registry struct {
	objects map[int]Object // nil value = tombstoned slot
	order   []int          // ids in insertion order; tombstoned ids stay until cleaned
	nextID  int
	pending bool // a tombstone exists and CleanRemoved should run

	factory   Factory
	unitScale float64 // world-unit constant multiplying radar distance params
	log       *zap.Logger
}

// NewRegistry creates an empty registry. unitScale multiplies raw radar
// distance parameters before comparison (see config [sim] unit_scale).
func NewRegistry(factory Factory, unitScale float64, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		objects:   make(map[int]Object, 256),
		factory:   factory,
		unitScale: unitScale,
		log:       log,
	}
}

// Create builds an object through the factory and takes exclusive ownership.
// params.ID < 0 assigns the next sequential id; an explicit id must not
// collide with a retained key — that is a caller bug and panics.
func (r *Registry) Create(params CreateParams) (Object, error) {
	if params.ID < 0 {
		params.ID = r.nextID
		r.nextID++
	}

	if _, exists := r.objects[params.ID]; exists {
		panic(fmt.Sprintf("object: duplicate id %d on create", params.ID))
	}

	obj, err := r.factory.Create(params)
	if obj == nil {
		return nil, &CreateError{Type: params.Type, Err: err}
	}

	r.objects[params.ID] = obj
	r.order = append(r.order, params.ID)

	r.log.Debug("object created",
		zap.Int("id", params.ID),
		zap.Stringer("type", params.Type),
		zap.Int("team", params.Team))
	return obj, nil
}

// Delete releases ownership of obj: teardown runs first, the active flag is
// cleared before the slot empties so radar can never return a removed object,
// then the slot is tombstoned. Returns whether the object was registered.
func (r *Registry) Delete(obj Object) bool {
	if obj == nil {
		panic("object: delete nil object")
	}

	if d, ok := obj.(Destructible); ok {
		d.Teardown(false)
	}

	id := obj.ID()
	if current, ok := r.objects[id]; !ok || current == nil {
		return false
	}

	obj.SetActive(false)
	r.objects[id] = nil
	r.pending = true

	r.log.Debug("object deleted", zap.Int("id", id), zap.Stringer("type", obj.Type()))
	return true
}

// CleanRemoved compacts every tombstoned slot. The original engine erased at
// most one slot per call and relied on repeated calls; a single full pass per
// frame drains all pending removals at once (see DESIGN.md).
func (r *Registry) CleanRemoved() {
	if !r.pending {
		return
	}
	live := r.order[:0]
	for _, id := range r.order {
		if r.objects[id] == nil {
			delete(r.objects, id)
			continue
		}
		live = append(live, id)
	}
	r.order = live
	r.pending = false
}

// PendingClean reports whether tombstones are waiting for CleanRemoved.
// Advisory: the cleanup system reads it once per tick.
func (r *Registry) PendingClean() bool { return r.pending }

// DeleteAll force-tears-down every live object, clears the registry and
// resets the id counter to zero.
func (r *Registry) DeleteAll() {
	for _, id := range r.order {
		obj := r.objects[id]
		if obj == nil {
			continue
		}
		if d, ok := obj.(Destructible); ok {
			d.Teardown(true)
		}
	}
	r.objects = make(map[int]Object, 256)
	r.order = r.order[:0]
	r.nextID = 0
	r.pending = false
}

// ByID returns the live object with the given id, or nil.
func (r *Registry) ByID(id int) Object {
	return r.objects[id] // nil for tombstones and unknown ids alike
}

// ByRank indexes the insertion-ordered key list; tombstoned keys still count
// toward rank until cleaned, and land on nil. O(rank) — enumeration only.
func (r *Registry) ByRank(rank int) Object {
	if rank < 0 || rank >= len(r.order) {
		return nil
	}
	return r.objects[r.order[rank]]
}

// All returns the live objects in insertion order, skipping tombstones.
func (r *Registry) All() []Object {
	result := make([]Object, 0, len(r.order))
	for _, id := range r.order {
		if obj := r.objects[id]; obj != nil {
			result = append(result, obj)
		}
	}
	return result
}

// OfTeam returns all live objects with an exact team match.
func (r *Registry) OfTeam(team int) []Object {
	var result []Object
	for _, obj := range r.All() {
		if obj.Team() == team {
			result = append(result, obj)
		}
	}
	return result
}

// TeamExists reports whether a team is still in play. Team 0 is the
// neutral/shared pool and always exists; any other team needs at least one
// active member.
func (r *Registry) TeamExists(team int) bool {
	if team == 0 {
		return true
	}
	for _, obj := range r.All() {
		if obj.Active() && obj.Team() == team {
			return true
		}
	}
	return false
}

// DestroyTeam starts an explosion on every member of a team. Destruction is
// asynchronous — the demolition system finishes it over subsequent ticks.
// Destroying team 0 is a caller bug.
func (r *Registry) DestroyTeam(team int) {
	if team == 0 {
		panic("object: destroy team 0")
	}
	for _, obj := range r.All() {
		if obj.Team() != team {
			continue
		}
		if e, ok := obj.(Exploder); ok {
			e.Detonate(ExplosionBang, 1.0)
		}
	}
	r.log.Info("team destruction triggered", zap.Int("team", team))
}

// CountImplementing counts live objects exposing a capability.
func (r *Registry) CountImplementing(c Capability) int {
	count := 0
	for _, obj := range r.All() {
		if obj.Implements(c) {
			count++
		}
	}
	return count
}

// Len returns the number of retained slots, tombstones included.
func (r *Registry) Len() int { return len(r.order) }

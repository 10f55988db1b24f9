package event

import "github.com/roversim/server/internal/object"

// ObjectCreated fires after the registry takes ownership of a new object.
type ObjectCreated struct {
	ID   int
	Type object.ObjectType
	Team int
}

// ObjectDestroyed fires when an object is removed from the world.
type ObjectDestroyed struct {
	ID   int
	Type object.ObjectType
	Team int
}

// ExplosionStarted fires when a detonation begins (DestroyTeam, scripted
// self-destruct). The object is still live until its fuse runs out.
type ExplosionStarted struct {
	ID   int
	Kind object.ExplosionKind
}

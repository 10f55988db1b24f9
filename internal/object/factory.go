package object

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// CreateParams carries everything a factory needs to build one object.
// ID < 0 means "assign the next sequential id".
type CreateParams struct {
	Type    ObjectType
	Pos     mgl64.Vec3
	Heading float64
	Power   float64
	Zoom    float64
	Height  float64
	Trainer bool
	Toy     bool
	Option  int
	Team    int
	ID      int
}

// DefaultCreateParams returns params with the scalar defaults callers almost
// always want (full power, unit scale, auto id).
func DefaultCreateParams(t ObjectType) CreateParams {
	return CreateParams{
		Type:  t,
		Power: 1.0,
		Zoom:  1.0,
		ID:    -1,
	}
}

// Factory builds concrete objects. The registry does not know how objects
// are constructed; it only takes ownership of the result. Returning a nil
// object (with or without an error) is the creation-failure signal.
type Factory interface {
	Create(params CreateParams) (Object, error)
}

// CreateError reports that the factory produced no object for a type.
type CreateError struct {
	Type ObjectType
	Err  error
}

func (e *CreateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("create object %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("create object %s: factory returned no object", e.Type)
}

func (e *CreateError) Unwrap() error { return e.Err }

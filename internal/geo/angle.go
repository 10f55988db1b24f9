package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FullCircle is the sentinel cone width meaning "all directions".
const FullCircle = 2 * math.Pi

// NormAngle wraps an angle into [0, 2π).
func NormAngle(a float64) float64 {
	a = math.Mod(a, FullCircle)
	if a < 0 {
		a += FullCircle
	}
	return a
}

// RotateAngle returns the angle of the point (x, y) around the origin,
// in [0, 2π). Callers that want a clockwise bearing negate the y component.
func RotateAngle(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	return NormAngle(math.Atan2(y, x))
}

// TestAngle reports whether angle lies inside the arc [min, max].
// All three are normalized first, so the arc may wrap past 2π.
func TestAngle(angle, min, max float64) bool {
	angle = NormAngle(angle)
	min = NormAngle(min)
	max = NormAngle(max)
	if min > max {
		return angle <= max || angle >= min
	}
	return angle >= min && angle <= max
}

// DistanceProjected returns the distance between a and b projected onto the
// horizontal (X/Z) plane. Altitude never contributes to radar range.
func DistanceProjected(a, b mgl64.Vec3) float64 {
	dx := a.X() - b.X()
	dz := a.Z() - b.Z()
	return math.Sqrt(dx*dx + dz*dz)
}

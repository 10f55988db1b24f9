package object

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/roversim/server/internal/geo"
)

// Allegiance is a bit set describing a candidate's relation to the
// requester. A zero filter value means "any allegiance".
type Allegiance uint8

const (
	AllegianceNeutral  Allegiance = 1 << iota // candidate team 0
	AllegianceFriendly                        // same nonzero team
	AllegianceEnemy                           // different nonzero team
)

// FlightFilter restricts candidates by landed/airborne state. Objects
// without the Flyer capability always pass.
type FlightFilter int

const (
	FlightAny FlightFilter = iota
	FlightLandedOnly
	FlightFlyingOnly
)

// RadarFilter is the structured replacement for the historical bit-packed
// filter word: team bits, flight bits and allegiance bits as three fields
// with the same combinatorial semantics.
type RadarFilter struct {
	Team       int // nonzero = candidate team must match exactly
	Flight     FlightFilter
	Allegiance Allegiance // zero = any; only applied when a requester exists
}

// RadarQuery parameterizes one radar scan.
type RadarQuery struct {
	// Types is the acceptable category set. Empty = wildcard, except that
	// system types never satisfy a wildcard.
	Types []ObjectType

	// Angle is the cone centre relative to the requester heading, clockwise.
	// Focus is the full cone width; geo.FullCircle (or wider) passes every
	// bearing.
	Angle float64
	Focus float64

	// MinDist and MaxDist bound the projected distance, in game units —
	// both are multiplied by the registry's world-unit scale.
	MinDist float64
	MaxDist float64

	// Furthest flips the tie-break from nearest to furthest.
	Furthest bool

	Filter RadarFilter

	// Normalize collapses category families (ruins, scrap, barriers) on both
	// the candidate and the requested set, so a query for any family variant
	// matches the whole family.
	Normalize bool
}

// Radar scans from the requester's own position and heading. A nil requester
// scans from the world origin with heading zero.
func (r *Registry) Radar(from Object, q RadarQuery) Object {
	var pos mgl64.Vec3
	var heading float64
	if from != nil {
		pos = from.Position()
		heading = geo.NormAngle(from.Heading())
	}
	return r.RadarAt(from, pos, heading, q)
}

// RadarAt is the canonical radar query: a single linear pass over the
// registry returning the best match, or nil when nothing qualifies. There is
// no spatial index — O(live objects) per call is the deliberate trade for
// the object counts this core targets.
func (r *Registry) RadarAt(from Object, pos mgl64.Vec3, heading float64, q RadarQuery) Object {
	minDist := q.MinDist * r.unitScale
	maxDist := q.MaxDist * r.unitScale
	coneCentre := geo.NormAngle(heading + q.Angle)

	types := q.Types
	if q.Normalize && len(types) > 0 {
		types = make([]ObjectType, len(q.Types))
		for i, t := range q.Types {
			types[i] = Normalize(t)
		}
	}

	// Sentinels guarantee the first passing candidate wins.
	best := 100000.0
	if q.Furthest {
		best = 0.0
	}
	var bestObj Object

	for _, id := range r.order {
		obj := r.objects[id]
		if obj == nil || obj == from {
			continue
		}
		if obj.Transported() {
			continue
		}
		if !obj.Active() {
			continue
		}
		if obj.Proxy() {
			continue
		}

		oType := obj.Type()
		if q.Normalize {
			oType = Normalize(oType)
		}

		if len(types) > 0 {
			if !slices.Contains(types, oType) {
				continue
			}
		} else if IsSystemType(oType) {
			continue
		}

		// Objects without the flight capability always pass the flight
		// filter, even when their concrete type happens to expose Landed.
		if q.Filter.Flight != FlightAny && obj.Implements(CapFlyer) {
			if f, ok := obj.(Flyer); ok {
				if q.Filter.Flight == FlightLandedOnly && !f.Landed() {
					continue
				}
				if q.Filter.Flight == FlightFlyingOnly && f.Landed() {
					continue
				}
			}
		}

		if q.Filter.Team != 0 && obj.Team() != q.Filter.Team {
			continue
		}

		if from != nil && q.Filter.Allegiance != 0 {
			if allegianceOf(obj, from)&q.Filter.Allegiance == 0 {
				continue
			}
		}

		oPos := obj.Position()
		d := geo.DistanceProjected(pos, oPos)
		if d < minDist || d > maxDist {
			continue
		}

		// Clockwise bearing from the scan origin to the candidate.
		bearing := geo.RotateAngle(oPos.X()-pos.X(), pos.Z()-oPos.Z())
		if q.Focus < geo.FullCircle &&
			!geo.TestAngle(bearing, coneCentre-q.Focus/2, coneCentre+q.Focus/2) {
			continue
		}

		if (!q.Furthest && d < best) || (q.Furthest && d > best) {
			best = d
			bestObj = obj
		}
	}

	return bestObj
}

// FindNearest is Radar with a full-circle cone, zero minimum distance,
// nearest tie-break and no filter.
func (r *Registry) FindNearest(from Object, maxDist float64, types ...ObjectType) Object {
	return r.Radar(from, RadarQuery{
		Types:   types,
		Focus:   geo.FullCircle,
		MaxDist: maxDist,
	})
}

// FindNearestAt is FindNearest from an explicit position.
func (r *Registry) FindNearestAt(from Object, pos mgl64.Vec3, maxDist float64, types ...ObjectType) Object {
	return r.RadarAt(from, pos, 0, RadarQuery{
		Types:   types,
		Focus:   geo.FullCircle,
		MaxDist: maxDist,
	})
}

func allegianceOf(obj, from Object) Allegiance {
	switch {
	case obj.Team() == 0:
		return AllegianceNeutral
	case obj.Team() == from.Team():
		return AllegianceFriendly
	default:
		return AllegianceEnemy
	}
}

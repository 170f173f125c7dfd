package world

import (
	"fmt"
	"math"

	"github.com/zeusync/centurion/internal/core/systems/physics"
)

// NoHit is the range reported when a beam touches nothing.
const NoHit = -1.0

// BeamHit is the result of a beam query.
type BeamHit struct {
	Hit   bool
	Range float64
	// AnglePhi is reserved for the bearing to the target and is always 0.
	AnglePhi float64
	Point    physics.Vector2
	Beam     physics.LineSegment
	// ObjectIndex is the flat-list index of the object hit, -1 for none.
	ObjectIndex int
}

func missed(beam physics.LineSegment) BeamHit {
	return BeamHit{Range: NoHit, Beam: beam, ObjectIndex: -1}
}

// NearestBeamHit casts a beam of the given length from (originX, originY)
// along heading (radians) and reports the closest point where it meets an
// object or another physical agent. The querying agent is never reported.
//
// Ties between equally distant points keep the one found first in list order.
// A beam that meets nothing is not an error: it returns Range == NoHit.
func NearestBeamHit(s *State, agentID int, originX, originY, length, heading float64) (BeamHit, error) {
	for _, v := range [...]float64{originX, originY, length, heading} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return BeamHit{}, fmt.Errorf("beam from (%v, %v) len %v heading %v: %w",
				originX, originY, length, heading, physics.ErrNonFinite)
		}
	}
	if length < 0 {
		return BeamHit{}, fmt.Errorf("%w: %v", ErrNegativeLength, length)
	}

	origin := physics.V(originX, originY)
	beam := physics.LineSegment{
		Point1: origin,
		Point2: origin.Add(physics.V(1, 0).RotateRadians(heading).Scale(length)),
	}

	hit := missed(beam)
	for i := range s.objects {
		so := &s.objects[i]

		var ps physics.PointSet
		switch so.Kind {
		case KindObject:
			switch so.Object.Shape {
			case ShapeCircle:
				ps = physics.SegmentCircleIntersection(beam, so.Object.Circle)
			case ShapeRectangle:
				var err error
				ps, err = physics.SegmentOrientedRectangleIntersection(beam, so.Object.Rectangle)
				if err != nil {
					return BeamHit{}, fmt.Errorf("object %d: %w", i, err)
				}
			}
		case KindAgent:
			if so.Body.ID == agentID || so.Body.NonPhysical {
				continue
			}
			ps = physics.SegmentCircleIntersection(beam, so.Body.Circle)
		}

		p, d, ok := ps.Closest(origin)
		if ok && (!hit.Hit || d < hit.Range) {
			hit.Hit = true
			hit.Range = d
			hit.Point = p
			hit.ObjectIndex = i
		}
	}
	return hit, nil
}

package physics

import (
	"fmt"
	"math"
)

// PointSet holds the 0, 1 or 2 intersection points of a single solver call.
// It is a value type; nothing is allocated and nothing outlives the caller.
type PointSet struct {
	points [2]Vector2
	n      int
}

func (ps *PointSet) Len() int { return ps.n }

// At returns point i; it panics when i is out of range like a slice would.
func (ps *PointSet) At(i int) Vector2 {
	if i < 0 || i >= ps.n {
		panic(fmt.Sprintf("physics: point index %d out of range [0,%d)", i, ps.n))
	}
	return ps.points[i]
}

// Points copies the set into a slice.
func (ps *PointSet) Points() []Vector2 {
	return append([]Vector2(nil), ps.points[:ps.n]...)
}

// add appends p, reporting false when the set is already full.
func (ps *PointSet) add(p Vector2) bool {
	if ps.n == len(ps.points) {
		return false
	}
	ps.points[ps.n] = p
	ps.n++
	return true
}

func (ps *PointSet) contains(p Vector2) bool {
	for i := 0; i < ps.n; i++ {
		if ps.points[i].Equal(p) {
			return true
		}
	}
	return false
}

// Closest returns the point nearest to origin and its distance. Ties keep the
// earlier point. ok is false for an empty set.
func (ps *PointSet) Closest(origin Vector2) (p Vector2, dist float64, ok bool) {
	for i := 0; i < ps.n; i++ {
		d := Distance(origin, ps.points[i])
		if !ok || d < dist {
			p, dist, ok = ps.points[i], d, true
		}
	}
	return p, dist, ok
}

// withinSegment uses the triangle equality |AB| == |Ap| + |pB|, which also
// rejects points on the supporting line but outside the segment.
func withinSegment(s LineSegment, p Vector2) bool {
	return EqualDoubles(s.Length(), Distance(s.Point1, p)+Distance(p, s.Point2))
}

// tangentBand is the width of the tangent band relative to the magnitude of
// the discriminant's terms.
const tangentBand = 1e-12

// discriminantTolerance bounds the rounding error of the discriminant for a
// segment with squared direction length a. The terms of the discriminant grow
// like a²R² where R is the coordinate scale, and the cancellation in C adds an
// error that grows like a^1.5 R³.
func discriminantTolerance(s LineSegment, c Circle, a float64) float64 {
	scale := math.Abs(c.Radius)
	for _, v := range [...]float64{s.Point1.X, s.Point1.Y, s.Point2.X, s.Point2.Y, c.Center.X, c.Center.Y} {
		scale = math.Max(scale, math.Abs(v))
	}
	return tangentBand * a * scale * scale * math.Max(a, math.Sqrt(a)*scale)
}

// SegmentCircleIntersection intersects a segment with a circle boundary.
//
// The supporting line is written as Ax + By + C = 0 and substituted into the
// circle equation. When |B| >= |A| the quadratic is solved for x, otherwise
// for y, so near-vertical segments never divide by a near-zero B. A
// discriminant within the rounding band around zero is a tangent and yields
// at most one point. A zero-length segment is treated as a point: it yields
// itself if the disc contains it.
func SegmentCircleIntersection(s LineSegment, c Circle) PointSet {
	var out PointSet

	x1, y1 := s.Point1.X, s.Point1.Y
	x2, y2 := s.Point2.X, s.Point2.Y
	A := y2 - y1
	B := x1 - x2
	C := x2*y1 - x1*y2
	h, k, r := c.Center.X, c.Center.Y, c.Radius

	if s.IsDegenerate() {
		if CirclePointCollide(c, s.Point1) {
			out.add(s.Point1)
		}
		return out
	}

	solveX := math.Abs(B) >= math.Abs(A)

	var a, b, cc float64
	if solveX {
		// y = -(Ax + C)/B
		ck := C + k*B
		a = A*A + B*B
		b = 2*A*ck - 2*h*B*B
		cc = B*B*h*h + ck*ck - r*r*B*B
	} else {
		// x = -(By + C)/A
		ch := C + h*A
		a = A*A + B*B
		b = 2*B*ch - 2*k*A*A
		cc = A*A*k*k + ch*ch - r*r*A*A
	}

	point := func(t float64) Vector2 {
		if solveX {
			return Vector2{X: t, Y: -(A*t + C) / B}
		}
		return Vector2{X: -(B*t + C) / A, Y: t}
	}

	d := b*b - 4*a*cc
	tol := discriminantTolerance(s, c, a)
	switch {
	case d < -tol:
		return out
	case d <= tol:
		p := point(-b / (2 * a))
		if withinSegment(s, p) {
			out.add(p)
		}
	default:
		sq := math.Sqrt(d)
		for _, t := range [2]float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
			if p := point(t); withinSegment(s, p) && !out.contains(p) {
				out.add(p)
			}
		}
	}
	return out
}

// SegmentsIntersectAt intersects two finite segments parametrically.
//
// Coincident (collinear) segments return the midpoint of a as a representative
// point. Parallel, non-coincident segments and intersections outside either
// segment return ok == false.
func SegmentsIntersectAt(a, b LineSegment) (Vector2, bool) {
	x1, y1 := a.Point1.X, a.Point1.Y
	x2, y2 := a.Point2.X, a.Point2.Y
	x3, y3 := b.Point1.X, b.Point1.Y
	x4, y4 := b.Point2.X, b.Point2.Y

	denom := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	numera := (x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)
	numerb := (x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)

	if EqualDoubles(denom, 0) && EqualDoubles(numera, 0) && EqualDoubles(numerb, 0) {
		return a.Midpoint(), true
	}
	if EqualDoubles(denom, 0) {
		return Vector2{}, false
	}

	mua := numera / denom
	mub := numerb / denom
	if mua < 0 || mua > 1 || mub < 0 || mub > 1 {
		return Vector2{}, false
	}
	return Vector2{X: x1 + mua*(x2-x1), Y: y1 + mua*(y2-y1)}, true
}

// SegmentOrientedRectangleIntersection intersects a segment with the boundary
// of an oriented rectangle by testing each of its four edges.
//
// Hits at a shared corner are reported once. When the segment runs along an
// edge the boundary contact is an interval and its two end points are returned.
// More than two distinct hits otherwise means the solver composition is broken
// and is reported as ErrInvariantViolation.
func SegmentOrientedRectangleIntersection(s LineSegment, r OrientedRectangle) (PointSet, error) {
	var out PointSet

	if s.IsDegenerate() {
		if OrientedRectanglePointCollide(r, s.Point1) {
			out.add(s.Point1)
		}
		return out, nil
	}

	sLine := Line{Base: s.Point1, Direction: s.Direction()}
	for nr := 0; nr < 4; nr++ {
		edge := r.Edge(nr)
		if ParallelVectors(edge.Direction(), sLine.Direction) &&
			LinePointCollide(sLine, edge.Point1) && SegmentsCollide(edge, s) {
			return overlapEnds(edge, s), nil
		}
	}

	for nr := 0; nr < 4; nr++ {
		p, ok := SegmentsIntersectAt(r.Edge(nr), s)
		if !ok || out.contains(p) {
			continue
		}
		if !out.add(p) {
			return PointSet{}, fmt.Errorf("%w: segment %v crosses rectangle %v more than twice",
				ErrInvariantViolation, s, r)
		}
	}
	return out, nil
}

// overlapEnds clips s onto the collinear edge and returns the end points of
// the shared interval, nearest to s.Point1 first.
func overlapEnds(edge, s LineSegment) PointSet {
	var out PointSet
	d := edge.Direction()
	dd := d.Dot(d)
	t1 := s.Point1.Sub(edge.Point1).Dot(d) / dd
	t2 := s.Point2.Sub(edge.Point1).Dot(d) / dd
	lo := Maximum(0, Minimum(t1, t2))
	hi := Minimum(1, Maximum(t1, t2))
	if lo > hi {
		return out
	}
	q1 := edge.Point1.Add(d.Scale(lo))
	q2 := edge.Point1.Add(d.Scale(hi))
	if Distance(s.Point1, q2) < Distance(s.Point1, q1) {
		q1, q2 = q2, q1
	}
	out.add(q1)
	if !q1.Equal(q2) {
		out.add(q2)
	}
	return out
}

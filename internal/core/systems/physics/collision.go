package physics

// Pairwise collision predicates. Regions are closed: touching counts as a
// collision. Circle tests compare squared distances against squared radii.

func PointsCollide(a, b Vector2) bool { return a.Equal(b) }

func CirclesCollide(a, b Circle) bool {
	radiusSum := a.Radius + b.Radius
	d := a.Center.Sub(b.Center)
	return d.Dot(d) <= radiusSum*radiusSum
}

func CirclePointCollide(c Circle, p Vector2) bool {
	d := c.Center.Sub(p)
	return d.Dot(d) <= c.Radius*c.Radius
}

func CircleLineCollide(c Circle, l Line) bool {
	lc := c.Center.Sub(l.Base)
	nearest := l.Base.Add(lc.Project(l.Direction))
	return CirclePointCollide(c, nearest)
}

func CircleSegmentCollide(c Circle, s LineSegment) bool {
	if CirclePointCollide(c, s.Point1) || CirclePointCollide(c, s.Point2) {
		return true
	}
	d := s.Direction()
	lc := c.Center.Sub(s.Point1)
	p := lc.Project(d)
	nearest := s.Point1.Add(p)
	return CirclePointCollide(c, nearest) && p.Dot(p) <= d.Dot(d) && 0 <= p.Dot(d)
}

func CircleRectangleCollide(c Circle, r Rectangle) bool {
	return CirclePointCollide(c, ClampOnRectangle(c.Center, r))
}

func CircleOrientedRectangleCollide(c Circle, r OrientedRectangle) bool {
	lc := Circle{Center: r.toLocal(c.Center), Radius: c.Radius}
	return CircleRectangleCollide(lc, r.local())
}

func RectanglesCollide(a, b Rectangle) bool {
	return Overlapping(a.Origin.X, a.Origin.X+a.Size.X, b.Origin.X, b.Origin.X+b.Size.X) &&
		Overlapping(a.Origin.Y, a.Origin.Y+a.Size.Y, b.Origin.Y, b.Origin.Y+b.Size.Y)
}

func LinePointCollide(l Line, p Vector2) bool {
	lp := p.Sub(l.Base)
	return lp.IsZero() || ParallelVectors(lp, l.Direction)
}

// LinesCollide: only non-parallel or equivalent lines meet.
func LinesCollide(a, b Line) bool {
	return !ParallelVectors(a.Direction, b.Direction) || LinePointCollide(a, b.Base)
}

func LineSegmentCollide(l Line, s LineSegment) bool { return !l.OnOneSide(s) }

func PointSegmentCollide(p Vector2, s LineSegment) bool {
	d := s.Direction()
	lp := p.Sub(s.Point1)
	pr := lp.Project(d)
	return PointsCollide(lp, pr) && pr.Dot(pr) <= d.Dot(d) && 0 <= pr.Dot(d)
}

// SegmentsCollide routes zero-length segments to the point test so a
// degenerate direction never becomes a separating axis.
func SegmentsCollide(a, b LineSegment) bool {
	axisA := Line{Base: a.Point1, Direction: a.Direction()}
	if axisA.Direction.IsZero() {
		return PointSegmentCollide(a.Point1, b)
	}
	if axisA.OnOneSide(b) {
		return false
	}

	axisB := Line{Base: b.Point1, Direction: b.Direction()}
	if axisB.Direction.IsZero() {
		return PointSegmentCollide(b.Point1, a)
	}
	if axisB.OnOneSide(a) {
		return false
	}

	if ParallelVectors(axisA.Direction, axisB.Direction) {
		d := axisA.Direction.Unit()
		return a.Project(d, true).Overlaps(b.Project(d, true))
	}
	return true
}

func LineRectangleCollide(l Line, r Rectangle) bool {
	n := l.Direction.Rotate90()

	c1 := r.Origin
	c2 := c1.Add(r.Size)
	c3 := Vector2{c2.X, c1.Y}
	c4 := Vector2{c1.X, c2.Y}

	dp1 := n.Dot(c1.Sub(l.Base))
	dp2 := n.Dot(c2.Sub(l.Base))
	dp3 := n.Dot(c3.Sub(l.Base))
	dp4 := n.Dot(c4.Sub(l.Base))

	return dp1*dp2 <= 0 || dp2*dp3 <= 0 || dp3*dp4 <= 0
}

func LineOrientedRectangleCollide(l Line, r OrientedRectangle) bool {
	ll := Line{Base: r.toLocal(l.Base), Direction: l.Direction.Rotate(-r.Rotation)}
	return LineRectangleCollide(ll, r.local())
}

func PointRectangleCollide(p Vector2, r Rectangle) bool {
	left, bottom := r.Origin.X, r.Origin.Y
	right, top := left+r.Size.X, bottom+r.Size.Y
	return left <= p.X && bottom <= p.Y && p.X <= right && p.Y <= top
}

func OrientedRectanglePointCollide(r OrientedRectangle, p Vector2) bool {
	return PointRectangleCollide(r.toLocal(p), r.local())
}

func RectangleSegmentCollide(r Rectangle, s LineSegment) bool {
	rRange := Range{Minimum: r.Origin.X, Maximum: r.Origin.X + r.Size.X}
	sRange := Range{Minimum: s.Point1.X, Maximum: s.Point2.X}.Sort()
	if !rRange.Overlaps(sRange) {
		return false
	}

	rRange = Range{Minimum: r.Origin.Y, Maximum: r.Origin.Y + r.Size.Y}
	sRange = Range{Minimum: s.Point1.Y, Maximum: s.Point2.Y}.Sort()
	if !rRange.Overlaps(sRange) {
		return false
	}

	// both ranges overlap and the segment is a point: it sits inside the rectangle
	if s.IsDegenerate() {
		return true
	}
	return LineRectangleCollide(Line{Base: s.Point1, Direction: s.Direction()}, r)
}

func OrientedRectangleSegmentCollide(r OrientedRectangle, s LineSegment) bool {
	ls := LineSegment{Point1: r.toLocal(s.Point1), Point2: r.toLocal(s.Point2)}
	return RectangleSegmentCollide(r.local(), ls)
}

// OrientedRectanglesCollide applies the separating axis theorem over the two
// unique edge directions of each rectangle.
func OrientedRectanglesCollide(a, b OrientedRectangle) bool {
	if SeparatingAxisForOrientedRectangle(a.Edge(0), b) {
		return false
	}
	if SeparatingAxisForOrientedRectangle(a.Edge(1), b) {
		return false
	}
	if SeparatingAxisForOrientedRectangle(b.Edge(0), a) {
		return false
	}
	return !SeparatingAxisForOrientedRectangle(b.Edge(1), a)
}

func OrientedRectangleRectangleCollide(or OrientedRectangle, aar Rectangle) bool {
	if !RectanglesCollide(or.Hull(), aar) {
		return false
	}
	if SeparatingAxisForRectangle(or.Edge(0), aar) {
		return false
	}
	return !SeparatingAxisForRectangle(or.Edge(1), aar)
}

// SeparatingAxisForOrientedRectangle reports true when the axis through the
// edge separates the edge from r, i.e. the shapes are disjoint along it.
func SeparatingAxisForOrientedRectangle(axis LineSegment, r OrientedRectangle) bool {
	n := axis.Point1.Sub(axis.Point2).Unit()
	axisRange := axis.Project(n, true)
	rProjection := r.Edge(0).Project(n, true).Hull(r.Edge(2).Project(n, true))
	return !axisRange.Overlaps(rProjection)
}

// SeparatingAxisForRectangle is the axis-aligned counterpart of
// SeparatingAxisForOrientedRectangle.
func SeparatingAxisForRectangle(axis LineSegment, r Rectangle) bool {
	n := axis.Point1.Sub(axis.Point2).Unit()
	edgeA := LineSegment{Point1: r.Corner(0), Point2: r.Corner(1)}
	edgeB := LineSegment{Point1: r.Corner(2), Point2: r.Corner(3)}
	rProjection := edgeA.Project(n, true).Hull(edgeB.Project(n, true))
	return !axis.Project(n, true).Overlaps(rProjection)
}

func ClampOnRectangle(p Vector2, r Rectangle) Vector2 {
	return Vector2{
		X: ClampOnRange(p.X, r.Origin.X, r.Origin.X+r.Size.X),
		Y: ClampOnRange(p.Y, r.Origin.Y, r.Origin.Y+r.Size.Y),
	}
}

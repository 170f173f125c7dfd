package physics

// rank orders the shape kinds so every unordered pair has one canonical
// (lower, higher) handler; Collide swaps arguments into that order.
func rank(s Shape) int {
	switch s.(type) {
	case Vector2:
		return 0
	case Circle:
		return 1
	case Line:
		return 2
	case LineSegment:
		return 3
	case Rectangle:
		return 4
	case OrientedRectangle:
		return 5
	default:
		return -1
	}
}

// Collide reports whether two shapes touch or overlap. It is symmetric:
// Collide(a, b) == Collide(b, a) for every pair. Nil shapes never collide.
func Collide(a, b Shape) bool {
	ra, rb := rank(a), rank(b)
	if ra < 0 || rb < 0 {
		return false
	}
	if ra > rb {
		a, b = b, a
	}

	switch x := a.(type) {
	case Vector2:
		switch y := b.(type) {
		case Vector2:
			return PointsCollide(x, y)
		case Circle:
			return CirclePointCollide(y, x)
		case Line:
			return LinePointCollide(y, x)
		case LineSegment:
			return PointSegmentCollide(x, y)
		case Rectangle:
			return PointRectangleCollide(x, y)
		case OrientedRectangle:
			return OrientedRectanglePointCollide(y, x)
		}
	case Circle:
		switch y := b.(type) {
		case Circle:
			return CirclesCollide(x, y)
		case Line:
			return CircleLineCollide(x, y)
		case LineSegment:
			return CircleSegmentCollide(x, y)
		case Rectangle:
			return CircleRectangleCollide(x, y)
		case OrientedRectangle:
			return CircleOrientedRectangleCollide(x, y)
		}
	case Line:
		switch y := b.(type) {
		case Line:
			return LinesCollide(x, y)
		case LineSegment:
			return LineSegmentCollide(x, y)
		case Rectangle:
			return LineRectangleCollide(x, y)
		case OrientedRectangle:
			return LineOrientedRectangleCollide(x, y)
		}
	case LineSegment:
		switch y := b.(type) {
		case LineSegment:
			return SegmentsCollide(x, y)
		case Rectangle:
			return RectangleSegmentCollide(y, x)
		case OrientedRectangle:
			return OrientedRectangleSegmentCollide(y, x)
		}
	case Rectangle:
		switch y := b.(type) {
		case Rectangle:
			return RectanglesCollide(x, y)
		case OrientedRectangle:
			return OrientedRectangleRectangleCollide(y, x)
		}
	case OrientedRectangle:
		if y, ok := b.(OrientedRectangle); ok {
			return OrientedRectanglesCollide(x, y)
		}
	}
	return false
}

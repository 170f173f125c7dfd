package physics

// Shape is implemented by every primitive Collide can dispatch on.
// The interface is sealed: only the types in this package satisfy it.
type Shape interface {
	shape()
}

// Circle is a closed disc.
type Circle struct {
	Center Vector2 `json:"center" yaml:"center"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// Rectangle is axis aligned, anchored at its lower-left Origin.
type Rectangle struct {
	Origin Vector2 `json:"origin" yaml:"origin"`
	Size   Vector2 `json:"size" yaml:"size"`
}

// OrientedRectangle is centred at Center and rotated by Rotation degrees.
// Corners and edges are derived on demand.
type OrientedRectangle struct {
	Center     Vector2 `json:"center" yaml:"center"`
	HalfExtent Vector2 `json:"half_extent" yaml:"half_extent"`
	Rotation   float64 `json:"rotation" yaml:"rotation"`
}

// Line is infinite, passing through Base along Direction (not normalised).
type Line struct {
	Base      Vector2 `json:"base"`
	Direction Vector2 `json:"direction"`
}

// LineSegment is the closed segment between Point1 and Point2.
type LineSegment struct {
	Point1 Vector2 `json:"p1"`
	Point2 Vector2 `json:"p2"`
}

// Range is a closed scalar interval.
type Range struct {
	Minimum float64
	Maximum float64
}

func (Vector2) shape()           {}
func (Circle) shape()            {}
func (Rectangle) shape()         {}
func (OrientedRectangle) shape() {}
func (Line) shape()              {}
func (LineSegment) shape()       {}

// Sort returns the range with Minimum <= Maximum.
func (r Range) Sort() Range {
	if r.Minimum > r.Maximum {
		return Range{Minimum: r.Maximum, Maximum: r.Minimum}
	}
	return r
}

func (r Range) Overlaps(o Range) bool {
	return Overlapping(r.Minimum, r.Maximum, o.Minimum, o.Maximum)
}

// Hull is the smallest range covering both.
func (r Range) Hull(o Range) Range {
	return Range{Minimum: Minimum(r.Minimum, o.Minimum), Maximum: Maximum(r.Maximum, o.Maximum)}
}

// Direction is Point2 - Point1.
func (s LineSegment) Direction() Vector2 { return s.Point2.Sub(s.Point1) }

func (s LineSegment) Length() float64 { return s.Direction().Length() }

func (s LineSegment) Midpoint() Vector2 {
	return Vector2{(s.Point1.X + s.Point2.X) / 2, (s.Point1.Y + s.Point2.Y) / 2}
}

// IsDegenerate reports a segment whose endpoints coincide exactly.
func (s LineSegment) IsDegenerate() bool { return s.Direction().IsZero() }

// Project returns the sorted range of the segment projected onto the axis.
// ontoIsUnit skips normalisation when the caller already normalised the axis.
func (s LineSegment) Project(onto Vector2, ontoIsUnit bool) Range {
	if !ontoIsUnit {
		onto = onto.Unit()
	}
	return Range{Minimum: onto.Dot(s.Point1), Maximum: onto.Dot(s.Point2)}.Sort()
}

// OnOneSide reports whether both segment endpoints lie strictly on the same
// side of the line.
func (l Line) OnOneSide(s LineSegment) bool {
	d1 := l.Base.Sub(s.Point1)
	d2 := l.Base.Sub(s.Point2)
	n := l.Direction.Rotate90()
	return n.Dot(d1)*n.Dot(d2) > 0
}

// Corner returns corner nr (mod 4): 0 lower-right, 1 upper-right, 2 upper-left, 3 origin.
func (r Rectangle) Corner(nr int) Vector2 {
	c := r.Origin
	switch mod4(nr) {
	case 0:
		c.X += r.Size.X
	case 1:
		c = c.Add(r.Size)
	case 2:
		c.Y += r.Size.Y
	}
	return c
}

func (r Rectangle) Center() Vector2 {
	return Vector2{r.Origin.X + r.Size.X/2, r.Origin.Y + r.Size.Y/2}
}

// Enlarge grows the rectangle to include p.
func (r Rectangle) Enlarge(p Vector2) Rectangle {
	origin := Vector2{Minimum(r.Origin.X, p.X), Minimum(r.Origin.Y, p.Y)}
	far := Vector2{Maximum(r.Origin.X+r.Size.X, p.X), Maximum(r.Origin.Y+r.Size.Y, p.Y)}
	return Rectangle{Origin: origin, Size: far.Sub(origin)}
}

// Corner returns corner nr (mod 4) in world space.
func (r OrientedRectangle) Corner(nr int) Vector2 {
	c := r.HalfExtent
	switch mod4(nr) {
	case 0:
		c.X = -c.X
	case 2:
		c.Y = -c.Y
	case 3:
		c = c.Negate()
	}
	return c.Rotate(r.Rotation).Add(r.Center)
}

// Corners returns all four corners in boundary order.
func (r OrientedRectangle) Corners() [4]Vector2 {
	return [4]Vector2{r.Corner(0), r.Corner(1), r.Corner(2), r.Corner(3)}
}

// Edge returns edge nr (mod 4): 0 top, 1 right, 2 bottom, 3 left.
func (r OrientedRectangle) Edge(nr int) LineSegment {
	a := r.HalfExtent
	b := r.HalfExtent
	switch mod4(nr) {
	case 0:
		a.X = -a.X
	case 1:
		b.Y = -b.Y
	case 2:
		a.Y = -a.Y
		b = b.Negate()
	default:
		a = a.Negate()
		b.X = -b.X
	}
	return LineSegment{
		Point1: a.Rotate(r.Rotation).Add(r.Center),
		Point2: b.Rotate(r.Rotation).Add(r.Center),
	}
}

// Hull returns the axis-aligned bounding rectangle.
func (r OrientedRectangle) Hull() Rectangle {
	h := Rectangle{Origin: r.Center}
	for nr := 0; nr < 4; nr++ {
		h = h.Enlarge(r.Corner(nr))
	}
	return h
}

// local returns the rectangle in its own frame: origin at (0,0), size 2*HalfExtent.
func (r OrientedRectangle) local() Rectangle {
	return Rectangle{Size: r.HalfExtent.Scale(2)}
}

// toLocal maps a world point into the frame returned by local.
func (r OrientedRectangle) toLocal(p Vector2) Vector2 {
	return p.Sub(r.Center).Rotate(-r.Rotation).Add(r.HalfExtent)
}

func mod4(nr int) int {
	m := nr % 4
	if m < 0 {
		m += 4
	}
	return m
}

package world

import (
	"fmt"

	"github.com/zeusync/centurion/internal/core/systems/physics"
)

// Kind tags an entry of the flat simulation list.
type Kind uint8

const (
	KindObject Kind = iota
	KindAgent
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindAgent:
		return "agent"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ShapeKind selects which geometry of an Object is populated.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRectangle
)

// Object is a static obstacle of the environment.
type Object struct {
	Shape     ShapeKind
	Circle    physics.Circle
	Rectangle physics.OrientedRectangle
}

func CircleObject(c physics.Circle) Object {
	return Object{Shape: ShapeCircle, Circle: c}
}

func RectangleObject(r physics.OrientedRectangle) Object {
	return Object{Shape: ShapeRectangle, Rectangle: r}
}

// Geometry returns the populated shape for use with physics.Collide.
func (o Object) Geometry() physics.Shape {
	if o.Shape == ShapeRectangle {
		return o.Rectangle
	}
	return o.Circle
}

func (o Object) validate() error {
	switch o.Shape {
	case ShapeCircle:
		if o.Circle.Radius < 0 || !o.Circle.Center.IsFinite() {
			return fmt.Errorf("%w: circle %+v", ErrInvalidShape, o.Circle)
		}
	case ShapeRectangle:
		r := o.Rectangle
		if r.HalfExtent.X < 0 || r.HalfExtent.Y < 0 || !r.Center.IsFinite() || !r.HalfExtent.IsFinite() {
			return fmt.Errorf("%w: rectangle %+v", ErrInvalidShape, r)
		}
	default:
		return fmt.Errorf("%w: shape kind %d", ErrInvalidShape, o.Shape)
	}
	return nil
}

// Body is the physical part of an agent. Bodies are always circles; Heading
// is in radians with 0 facing east, counter-clockwise positive.
type Body struct {
	ID          int
	Circle      physics.Circle
	Heading     float64
	NonPhysical bool
}

// Front is the point on the body outline the heading points at. Beam sensors
// are mounted there.
func (b *Body) Front() physics.Vector2 {
	return b.Circle.Center.Add(physics.V(1, 0).RotateRadians(b.Heading).Scale(b.Circle.Radius))
}

// Pose is a copy of the mutable part of a body.
type Pose struct {
	ID      int             `json:"id"`
	Center  physics.Vector2 `json:"center"`
	Heading float64         `json:"heading"`
}

func (b *Body) Pose() Pose {
	return Pose{ID: b.ID, Center: b.Circle.Center, Heading: b.Heading}
}

// SimObject is one entry of the flat simulation list: exactly one of Object
// and Body is set, according to Kind.
type SimObject struct {
	Kind   Kind
	Object *Object
	Body   *Body
}

package world

import (
	"fmt"

	"github.com/zeusync/centurion/internal/core/systems/physics"
)

// WallThickness is the depth of the walls built by BoundaryWalls.
const WallThickness = 0.01

// State is the world a simulation runs in: the arena and the flat list of
// static objects followed by agent bodies.
//
// The list is built once and only body poses change afterwards. Poses are
// changed by the tick driver between queries, never while one is in flight,
// so any number of goroutines may run NearestBeamHit concurrently.
type State struct {
	Size  physics.Vector2
	Epoch float64

	objects   []SimObject
	bodies    []*Body
	numStatic int
}

func NewState(size physics.Vector2, epoch float64) *State {
	return &State{Size: size, Epoch: epoch}
}

// AddObject appends a static object. Objects must precede every agent.
func (s *State) AddObject(o Object) error {
	if len(s.bodies) > 0 {
		return ErrObjectAfterAgent
	}
	if err := o.validate(); err != nil {
		return err
	}
	s.objects = append(s.objects, SimObject{Kind: KindObject, Object: &o})
	s.numStatic++
	return nil
}

// AddBody appends an agent body and assigns its ID, the body's index in the
// flat list.
func (s *State) AddBody(b *Body) (int, error) {
	if b == nil {
		return -1, ErrNilBody
	}
	if b.Circle.Radius < 0 || !b.Circle.Center.IsFinite() {
		return -1, fmt.Errorf("%w: body %+v", ErrInvalidShape, b.Circle)
	}
	b.ID = len(s.objects)
	s.objects = append(s.objects, SimObject{Kind: KindAgent, Body: b})
	s.bodies = append(s.bodies, b)
	return b.ID, nil
}

// Objects returns a copy of the flat list.
func (s *State) Objects() []SimObject {
	return append([]SimObject(nil), s.objects...)
}

// Bodies returns the agent bodies in list order. The slice is shared.
func (s *State) Bodies() []*Body { return s.bodies }

func (s *State) NumObjects() int { return s.numStatic }

func (s *State) Len() int { return len(s.objects) }

// Body looks up an agent body by ID.
func (s *State) Body(id int) (*Body, bool) {
	if id < s.numStatic || id >= len(s.objects) {
		return nil, false
	}
	return s.objects[id].Body, true
}

// Poses snapshots every body pose in list order.
func (s *State) Poses() []Pose {
	out := make([]Pose, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Pose()
	}
	return out
}

// BoundaryWalls frames the arena [0,sizeX]x[0,sizeY] with four thin walls
// lying just outside it.
func BoundaryWalls(sizeX, sizeY float64) []Object {
	t := WallThickness
	wall := func(cx, cy, hx, hy float64) Object {
		return RectangleObject(physics.OrientedRectangle{
			Center:     physics.V(cx, cy),
			HalfExtent: physics.V(hx, hy),
		})
	}
	return []Object{
		wall(sizeX/2, -t/2, sizeX/2+t, t/2),
		wall(sizeX+t/2, sizeY/2, t/2, sizeY/2+t),
		wall(sizeX/2, sizeY+t/2, sizeX/2+t, t/2),
		wall(-t/2, sizeY/2, t/2, sizeY/2+t),
	}
}

package world

import "github.com/zeusync/centurion/internal/core/systems/physics"

// Collision pairs a physical agent body with something it touches. Both
// fields are flat-list indices; Other refers to an object or another body.
type Collision struct {
	Body  int  `json:"body"`
	Other int  `json:"other"`
	Kind  Kind `json:"kind"`
}

// Collisions reports every physical body touching a static object or another
// physical body. Each body pair is reported once, with the lower index first.
func Collisions(s *State) []Collision {
	var out []Collision
	for i := s.numStatic; i < len(s.objects); i++ {
		b := s.objects[i].Body
		if b.NonPhysical {
			continue
		}
		for j := 0; j < s.numStatic; j++ {
			if physics.Collide(b.Circle, s.objects[j].Object.Geometry()) {
				out = append(out, Collision{Body: i, Other: j, Kind: KindObject})
			}
		}
		for j := i + 1; j < len(s.objects); j++ {
			o := s.objects[j].Body
			if o.NonPhysical {
				continue
			}
			if physics.CirclesCollide(b.Circle, o.Circle) {
				out = append(out, Collision{Body: i, Other: j, Kind: KindAgent})
			}
		}
	}
	return out
}

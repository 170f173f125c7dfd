package config

import (
	"math"

	"github.com/zeusync/centurion/internal/core/systems/physics"
	"github.com/zeusync/centurion/internal/core/world"
)

// SimulationDiscrete is the only supported simulation type.
const SimulationDiscrete = "discrete"

// Config describes one simulation run: the arena, its static objects and the
// groups of agents placed in it.
type Config struct {
	System      System       `json:"system" yaml:"system"`
	Environment Environment  `json:"environment" yaml:"environment"`
	AgentGroups []AgentGroup `json:"agent_groups" yaml:"agent_groups"`
}

type System struct {
	RandSeed       uint64 `json:"rand_seed" yaml:"rand_seed"`
	SimulationType string `json:"simulation_type" yaml:"simulation_type"`
	// TraceFile receives the run trace when the command line does not name one.
	TraceFile string `json:"trace_file,omitempty" yaml:"trace_file,omitempty"`
	// LogFile receives a copy of the log.
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
}

type Environment struct {
	SizeX float64 `json:"size_x_m" yaml:"size_x_m"`
	SizeY float64 `json:"size_y_m" yaml:"size_y_m"`
	// Epoch is the simulation time step in seconds.
	Epoch float64 `json:"epoch_s" yaml:"epoch_s"`
	// SimTime is the simulated duration in seconds.
	SimTime       float64 `json:"sim_time_s" yaml:"sim_time_s"`
	BoundaryWalls bool    `json:"boundary_walls" yaml:"boundary_walls"`
	Objects       []Shape `json:"objects,omitempty" yaml:"objects,omitempty"`
}

const (
	ShapeCircle        = "circle"
	ShapeRectangle     = "rectangle"
	ShapeQuadrilateral = "quadrilateral"
)

// Shape is a circle (x, y, radius), an oriented rectangle (x, y, half_x,
// half_y, rotation in degrees) or a rectangle given by its four corners.
type Shape struct {
	Type     string       `json:"type" yaml:"type"`
	X        float64      `json:"x" yaml:"x"`
	Y        float64      `json:"y" yaml:"y"`
	Radius   float64      `json:"radius,omitempty" yaml:"radius,omitempty"`
	HalfX    float64      `json:"half_x,omitempty" yaml:"half_x,omitempty"`
	HalfY    float64      `json:"half_y,omitempty" yaml:"half_y,omitempty"`
	Rotation float64      `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Corners  [][2]float64 `json:"corners,omitempty" yaml:"corners,omitempty"`
}

// Object converts the shape to a static world object.
func (s Shape) Object() (world.Object, error) {
	switch s.Type {
	case ShapeCircle, "sphere":
		return world.CircleObject(physics.Circle{Center: physics.V(s.X, s.Y), Radius: s.Radius}), nil
	case ShapeRectangle:
		return world.RectangleObject(physics.OrientedRectangle{
			Center:     physics.V(s.X, s.Y),
			HalfExtent: physics.V(s.HalfX, s.HalfY),
			Rotation:   s.Rotation,
		}), nil
	case ShapeQuadrilateral:
		r, err := quadrilateral(s.Corners)
		if err != nil {
			return world.Object{}, err
		}
		return world.RectangleObject(r), nil
	default:
		return world.Object{}, errorf(ErrUnknownShape, "%q", s.Type)
	}
}

// quadrilateral fits an oriented rectangle to four corners given in order.
func quadrilateral(corners [][2]float64) (physics.OrientedRectangle, error) {
	if len(corners) != 4 {
		return physics.OrientedRectangle{}, errorf(ErrInvalidShape, "quadrilateral needs 4 corners, got %d", len(corners))
	}
	var p [4]physics.Vector2
	for i, c := range corners {
		p[i] = physics.V(c[0], c[1])
	}
	e0 := p[1].Sub(p[0])
	e1 := p[2].Sub(p[1])
	if !physics.EqualDoubles(e0.Dot(e1), 0) || !p[0].Add(p[2]).Equal(p[1].Add(p[3])) {
		return physics.OrientedRectangle{}, errorf(ErrInvalidShape, "quadrilateral %v is not a rectangle", corners)
	}
	center := p[0].Add(p[2]).Scale(0.5)
	return physics.OrientedRectangle{
		Center:     center,
		HalfExtent: physics.V(e0.Length()/2, e1.Length()/2),
		Rotation:   physics.RadiansToDegrees(math.Atan2(e0.Y, e0.X)),
	}, nil
}

// AgentGroup is a set of identical agents.
type AgentGroup struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Shape is the body of every agent; only its radius is used.
	Shape       Shape       `json:"shape" yaml:"shape"`
	NonPhysical bool        `json:"non_physical,omitempty" yaml:"non_physical,omitempty"`
	Agents      []Placement `json:"agents" yaml:"agents"`
	Sensors     []Sensor    `json:"sensors,omitempty" yaml:"sensors,omitempty"`
	Actuators   []Actuator  `json:"actuators,omitempty" yaml:"actuators,omitempty"`
	Control     string      `json:"control" yaml:"control"`
}

// Placement is the initial pose of one agent, the angle in radians.
type Placement struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Angle float64 `json:"angle" yaml:"angle"`
}

type Sensor struct {
	Type string `json:"type" yaml:"type"`
	// Direction is the mount angle on the agent in radians.
	Direction  float64 `json:"direction" yaml:"direction"`
	Epoch      float64 `json:"epoch_s" yaml:"epoch_s"`
	BeamLength float64 `json:"beam_length_m,omitempty" yaml:"beam_length_m,omitempty"`
}

type Actuator struct {
	Type string `json:"type" yaml:"type"`
}

// NumAgents counts the agents of every group.
func (c *Config) NumAgents() int {
	n := 0
	for _, g := range c.AgentGroups {
		n += len(g.Agents)
	}
	return n
}

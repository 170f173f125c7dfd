package trace

import (
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/centurion/internal/core/world"
)

type Kind string

const (
	KindHeader Kind = "header"
	KindTick   Kind = "tick"
	KindFooter Kind = "footer"
)

// Record is one line of a trace.
type Record struct {
	Kind   Kind    `json:"kind"`
	Header *Header `json:"header,omitempty"`
	Tick   *Tick   `json:"tick,omitempty"`
	Footer *Footer `json:"footer,omitempty"`
}

// NewRunID returns a fresh identifier for a run.
func NewRunID() string { return uuid.NewString() }

// Header describes the arena once, before the first tick.
type Header struct {
	RunID     string       `json:"run_id"`
	StartedAt time.Time    `json:"started_at"`
	Seed      uint64       `json:"seed"`
	Epoch     float64      `json:"epoch_s"`
	SimTime   float64      `json:"sim_time_s"`
	SizeX     float64      `json:"size_x_m"`
	SizeY     float64      `json:"size_y_m"`
	Objects   []ObjectInfo `json:"objects"`
	Agents    []AgentInfo  `json:"agents"`
}

type ObjectInfo struct {
	Index    int     `json:"index"`
	Shape    string  `json:"shape"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius,omitempty"`
	HalfX    float64 `json:"half_x,omitempty"`
	HalfY    float64 `json:"half_y,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
}

// DescribeObject flattens a static object for the header.
func DescribeObject(index int, o world.Object) ObjectInfo {
	if o.Shape == world.ShapeCircle {
		return ObjectInfo{Index: index, Shape: "circle", X: o.Circle.Center.X, Y: o.Circle.Center.Y, Radius: o.Circle.Radius}
	}
	r := o.Rectangle
	return ObjectInfo{
		Index: index, Shape: "rectangle",
		X: r.Center.X, Y: r.Center.Y,
		HalfX: r.HalfExtent.X, HalfY: r.HalfExtent.Y,
		Rotation: r.Rotation,
	}
}

type AgentInfo struct {
	ID          int      `json:"id"`
	Group       int      `json:"group"`
	Radius      float64  `json:"radius"`
	NonPhysical bool     `json:"non_physical,omitempty"`
	Sensors     []string `json:"sensors,omitempty"`
	Actuators   []string `json:"actuators,omitempty"`
	Controller  string   `json:"controller"`
}

// Tick is the world after one time step.
type Tick struct {
	Tick       int               `json:"tick"`
	Time       float64           `json:"time_s"`
	Agents     []AgentFrame      `json:"agents"`
	Beams      []Beam            `json:"beams,omitempty"`
	Collisions []world.Collision `json:"collisions,omitempty"`
}

// AgentFrame is an agent pose with the heading in degrees.
type AgentFrame struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	AngleDeg float64 `json:"angle_deg"`
	State    string  `json:"state,omitempty"`
}

// Beam is the last measurement of one sensor.
type Beam struct {
	Agent  int     `json:"agent"`
	Sensor int     `json:"sensor"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Hit    bool    `json:"hit"`
	HitX   float64 `json:"hit_x,omitempty"`
	HitY   float64 `json:"hit_y,omitempty"`
	Range  float64 `json:"range_m"`
	Fresh  bool    `json:"fresh,omitempty"`
}

// Footer closes a trace.
type Footer struct {
	Ticks       int     `json:"ticks"`
	SimTime     float64 `json:"sim_time_s"`
	Collisions  int     `json:"collisions"`
	Fingerprint string  `json:"fingerprint"`
	Canceled    bool    `json:"canceled,omitempty"`
}

package robot

import (
	"context"
	"math/rand/v2"

	"github.com/zeusync/centurion/internal/core/world"
)

// Reading is what a beam sensor reports.
type Reading struct {
	// InM is the measured distance in metres, world.NoHit when nothing is in range.
	InM float64
	// NewData is set on the tick a fresh measurement was taken.
	NewData bool
	// Reads counts fresh measurements in the current filter window.
	Reads int
	// Hit is the geometry behind the last fresh measurement.
	Hit world.BeamHit
}

// SenseContext is what a sensor sees during a tick.
type SenseContext struct {
	World *world.State
	Body  *world.Body
	Now   float64
}

// Sensor measures the world from an agent's body.
type Sensor interface {
	// Name is used for registry and debugging.
	Name() string
	// Sense is called once per tick. It must only read the world.
	Sense(ctx context.Context, sc SenseContext) (Reading, error)
}

// Command is the wheel instruction a controller issues.
type Command struct {
	Left  float64
	Right float64
	// Duration is how long a new instruction lasts, in seconds.
	Duration       float64
	NewInstruction bool
}

// Actuator moves an agent's body.
type Actuator interface {
	Name() string
	// Apply is called once per tick with the controller's command.
	Apply(body *world.Body, cmd Command, now float64) error
}

// ControlContext is what a controller decides on.
type ControlContext struct {
	Now      float64
	Body     *world.Body
	Readings []Reading
}

// Controller is a control algorithm; every agent owns its own instance.
type Controller interface {
	Name() string
	Control(cc ControlContext) Command
	// State names the current state of the controller's state machine.
	State() string
}

// SensorSpec describes one sensor of an agent.
type SensorSpec struct {
	Type string
	// MountAngle is the direction on the agent in radians, 0 facing forward.
	MountAngle float64
	// Epoch is how often the sensor refreshes, in seconds.
	Epoch float64
	// BeamLength defaults to DefaultBeamLength when zero.
	BeamLength float64
	Rand       *rand.Rand
}

// ActuatorSpec describes one actuator of an agent.
type ActuatorSpec struct {
	Type string
	// WorldEpoch is the simulation time step, in seconds.
	WorldEpoch float64
	Rand       *rand.Rand
}

type ControllerSpec struct {
	Type string
}

type (
	SensorFactory     func(spec SensorSpec) (Sensor, error)
	ActuatorFactory   func(spec ActuatorSpec) (Actuator, error)
	ControllerFactory func(spec ControllerSpec) (Controller, error)
)

// Registry allows plug-and-play components to be registered by name.
// It decouples configuration from concrete implementations.
type Registry interface {
	RegisterSensor(name string, factory SensorFactory)
	RegisterActuator(name string, factory ActuatorFactory)
	RegisterController(name string, factory ControllerFactory)

	NewSensor(spec SensorSpec) (Sensor, error)
	NewActuator(spec ActuatorSpec) (Actuator, error)
	NewController(spec ControllerSpec) (Controller, error)

	// Names lists the registered names of each kind, sorted.
	Names() (sensors, actuators, controllers []string)
}

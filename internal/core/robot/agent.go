package robot

import (
	"context"
	"fmt"

	"github.com/zeusync/centurion/internal/core/world"
)

// Agent couples a body with the sensors, actuators and controller that drive it.
type Agent struct {
	Body       *world.Body
	Group      int
	Sensors    []Sensor
	Actuators  []Actuator
	Controller Controller

	readings []Reading
	command  Command
}

// NewAgent constructs an agent from components.
func NewAgent(body *world.Body, group int, sensors []Sensor, actuators []Actuator, ctrl Controller) *Agent {
	if ctrl == nil {
		ctrl = Overlord{}
	}
	return &Agent{
		Body:       body,
		Group:      group,
		Sensors:    sensors,
		Actuators:  actuators,
		Controller: ctrl,
		readings:   make([]Reading, len(sensors)),
	}
}

// Sense refreshes every sensor against w. It only reads the world, so the
// agents of one tick may sense concurrently.
func (a *Agent) Sense(ctx context.Context, w *world.State, now float64) error {
	sc := SenseContext{World: w, Body: a.Body, Now: now}
	for i, s := range a.Sensors {
		r, err := s.Sense(ctx, sc)
		if err != nil {
			return fmt.Errorf("agent %d: sensor %d (%s): %w", a.Body.ID, i, s.Name(), err)
		}
		a.readings[i] = r
	}
	return nil
}

// Act runs the controller on the latest readings and drives the body with
// the first actuator.
func (a *Agent) Act(now float64) error {
	a.command = a.Controller.Control(ControlContext{Now: now, Body: a.Body, Readings: a.readings})
	if len(a.Actuators) == 0 {
		return nil
	}
	act := a.Actuators[0]
	if err := act.Apply(a.Body, a.command, now); err != nil {
		return fmt.Errorf("agent %d: actuator %s: %w", a.Body.ID, act.Name(), err)
	}
	return nil
}

// Readings returns the readings of the last Sense call. The slice is shared.
func (a *Agent) Readings() []Reading { return a.readings }

// Command returns the command issued by the last Act call.
func (a *Agent) Command() Command { return a.command }

package simulation

import (
	"fmt"
	"math/rand/v2"

	"github.com/zeusync/centurion/internal/core/config"
	"github.com/zeusync/centurion/internal/core/robot"
	"github.com/zeusync/centurion/internal/core/systems/physics"
	"github.com/zeusync/centurion/internal/core/world"
)

// Every component draws from its own stream of the run seed, so adding a
// sensor to one agent leaves the draws of the others unchanged.
const actuatorStream = 1 << 8

func streamFor(agentID, slot int) uint64 {
	return uint64(agentID)<<16 | uint64(slot)
}

// FromConfig builds the world and its agents from cfg. Objects come first,
// followed by the boundary walls and then the agents group by group.
func FromConfig(cfg *config.Config, reg robot.Registry, opts ...Option) (*Engine, error) {
	env := cfg.Environment
	w := world.NewState(physics.V(env.SizeX, env.SizeY), env.Epoch)

	for i, shape := range env.Objects {
		o, err := shape.Object()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		if err := w.AddObject(o); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}
	if env.BoundaryWalls {
		for _, o := range world.BoundaryWalls(env.SizeX, env.SizeY) {
			if err := w.AddObject(o); err != nil {
				return nil, fmt.Errorf("boundary wall: %w", err)
			}
		}
	}

	seed := cfg.System.RandSeed
	agents := make([]*robot.Agent, 0, cfg.NumAgents())
	for gi, g := range cfg.AgentGroups {
		for ai, p := range g.Agents {
			body := &world.Body{
				Circle:      physics.Circle{Center: physics.V(p.X, p.Y), Radius: g.Shape.Radius},
				Heading:     robot.NormalizeHeading(p.Angle),
				NonPhysical: g.NonPhysical,
			}
			if _, err := w.AddBody(body); err != nil {
				return nil, fmt.Errorf("agent group %d: agent %d: %w", gi, ai, err)
			}
			a, err := buildAgent(reg, env.Epoch, seed, gi, g, body)
			if err != nil {
				return nil, fmt.Errorf("agent group %d: agent %d: %w", gi, ai, err)
			}
			agents = append(agents, a)
		}
	}

	opts = append([]Option{WithSeed(seed)}, opts...)
	return New(w, agents, env.SimTime, opts...), nil
}

func buildAgent(reg robot.Registry, epoch float64, seed uint64, group int, g config.AgentGroup, body *world.Body) (*robot.Agent, error) {
	sensors := make([]robot.Sensor, 0, len(g.Sensors))
	for i, sc := range g.Sensors {
		s, err := reg.NewSensor(robot.SensorSpec{
			Type:       sc.Type,
			MountAngle: sc.Direction,
			Epoch:      sc.Epoch,
			BeamLength: sc.BeamLength,
			Rand:       rand.New(rand.NewPCG(seed, streamFor(body.ID, i))),
		})
		if err != nil {
			return nil, fmt.Errorf("sensor %d: %w", i, err)
		}
		sensors = append(sensors, s)
	}

	actuators := make([]robot.Actuator, 0, len(g.Actuators))
	for i, ac := range g.Actuators {
		a, err := reg.NewActuator(robot.ActuatorSpec{
			Type:       ac.Type,
			WorldEpoch: epoch,
			Rand:       rand.New(rand.NewPCG(seed, streamFor(body.ID, actuatorStream+i))),
		})
		if err != nil {
			return nil, fmt.Errorf("actuator %d: %w", i, err)
		}
		actuators = append(actuators, a)
	}

	ctrl, err := reg.NewController(robot.ControllerSpec{Type: g.Control})
	if err != nil {
		return nil, fmt.Errorf("control: %w", err)
	}
	return robot.NewAgent(body, group, sensors, actuators, ctrl), nil
}

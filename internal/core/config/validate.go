package config

import (
	"fmt"
	"math"
)

// Validate checks the config and names the offending entry on error.
// Component type names are checked when the simulation is built.
func (c *Config) Validate() error {
	if c.System.SimulationType != SimulationDiscrete {
		return fmt.Errorf("%w: system: unsupported simulation type %q", ErrInvalid, c.System.SimulationType)
	}
	if err := c.Environment.Validate(); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	for i, g := range c.AgentGroups {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("agent group %d: %w", i, err)
		}
	}
	return nil
}

func (e *Environment) Validate() error {
	if !positive(e.SizeX) || !positive(e.SizeY) {
		return fmt.Errorf("%w: arena size must be positive, got %vx%v", ErrInvalid, e.SizeX, e.SizeY)
	}
	if !positive(e.Epoch) {
		return fmt.Errorf("%w: epoch must be positive, got %v", ErrInvalid, e.Epoch)
	}
	if e.SimTime < 0 || math.IsNaN(e.SimTime) || math.IsInf(e.SimTime, 0) {
		return fmt.Errorf("%w: sim time must be finite and not negative, got %v", ErrInvalid, e.SimTime)
	}
	for i, o := range e.Objects {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

func (s *Shape) Validate() error {
	if !finite(s.X) || !finite(s.Y) {
		return fmt.Errorf("%w: position must be finite", ErrInvalidShape)
	}
	switch s.Type {
	case ShapeCircle, "sphere":
		if !positive(s.Radius) {
			return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidShape, s.Radius)
		}
	case ShapeRectangle:
		if !positive(s.HalfX) || !positive(s.HalfY) {
			return fmt.Errorf("%w: half extents must be positive, got %vx%v", ErrInvalidShape, s.HalfX, s.HalfY)
		}
		if !finite(s.Rotation) {
			return fmt.Errorf("%w: rotation must be finite", ErrInvalidShape)
		}
	case ShapeQuadrilateral:
		if _, err := quadrilateral(s.Corners); err != nil {
			return err
		}
	default:
		return errorf(ErrUnknownShape, "%q", s.Type)
	}
	return nil
}

func (g *AgentGroup) Validate() error {
	if g.Shape.Type != ShapeCircle && g.Shape.Type != "sphere" {
		return fmt.Errorf("shape: %w: agents are circles, got %q", ErrInvalidShape, g.Shape.Type)
	}
	if err := g.Shape.Validate(); err != nil {
		return fmt.Errorf("shape: %w", err)
	}
	for i, p := range g.Agents {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Angle) {
			return fmt.Errorf("agent %d: %w: pose must be finite", i, ErrInvalid)
		}
	}
	for i, s := range g.Sensors {
		if s.Type == "" {
			return fmt.Errorf("sensor %d: %w: type is required", i, ErrInvalid)
		}
		if s.Epoch < 0 || !finite(s.Epoch) {
			return fmt.Errorf("sensor %d: %w: epoch must be finite and not negative, got %v", i, ErrInvalid, s.Epoch)
		}
		if s.BeamLength < 0 || !finite(s.BeamLength) {
			return fmt.Errorf("sensor %d: %w: beam length must be finite and not negative, got %v", i, ErrInvalid, s.BeamLength)
		}
		if !finite(s.Direction) {
			return fmt.Errorf("sensor %d: %w: direction must be finite", i, ErrInvalid)
		}
	}
	for i, a := range g.Actuators {
		if a.Type == "" {
			return fmt.Errorf("actuator %d: %w: type is required", i, ErrInvalid)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func positive(v float64) bool { return finite(v) && v > 0 }

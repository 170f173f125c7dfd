package robot

import (
	"fmt"

	"github.com/zeusync/centurion/internal/core/systems/physics"
	"github.com/zeusync/centurion/internal/core/world"
)

// Movement is the manoeuvre selected by a pair of wheel inputs.
type Movement int

const (
	Stopped Movement = iota
	Forward
	Backward
	Left
	Right
)

func (m Movement) String() string {
	switch m {
	case Stopped:
		return "stopped"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("movement(%d)", int(m))
	}
}

// ParseWheels maps wheel inputs to a movement; a single driven wheel pivots
// the robot towards the other side.
func ParseWheels(left, right float64) (Movement, error) {
	switch {
	case left == 1 && right == 1:
		return Forward, nil
	case left == -1 && right == -1:
		return Backward, nil
	case left == 0 && right == 0:
		return Stopped, nil
	case left == 1 && right == 0:
		return Left, nil
	case left == 0 && right == 1:
		return Right, nil
	default:
		return Stopped, fmt.Errorf("%w: left=%v right=%v", ErrUnsupportedMovement, left, right)
	}
}

// instruction tracks the window of the last accepted command.
type instruction struct {
	move  Movement
	start float64
	end   float64
}

func (in *instruction) accept(cmd Command, now float64) error {
	if !cmd.NewInstruction {
		return nil
	}
	m, err := ParseWheels(cmd.Left, cmd.Right)
	if err != nil {
		return err
	}
	in.move = m
	in.start = now
	in.end = now + cmd.Duration
	return nil
}

func (in *instruction) active(now float64) bool { return now < in.end }

const (
	// IdealVelocity is the ideal drive speed in m/s.
	IdealVelocity = 0.01
	// IdealTurnRate is the ideal pivot speed in rad/s, about 10 degrees per second.
	IdealTurnRate = 0.1745329352
)

// IdealTwoWheel moves at exactly IdealVelocity and turns at IdealTurnRate.
type IdealTwoWheel struct {
	mPerEpoch   float64
	radPerEpoch float64
	current     instruction
}

func NewIdealTwoWheel(epoch float64) *IdealTwoWheel {
	return &IdealTwoWheel{mPerEpoch: IdealVelocity * epoch, radPerEpoch: IdealTurnRate * epoch}
}

func (a *IdealTwoWheel) Name() string { return "IDEAL_TWO_WHEEL" }

func (a *IdealTwoWheel) Apply(b *world.Body, cmd Command, now float64) error {
	if err := a.current.accept(cmd, now); err != nil {
		return err
	}
	if !a.current.active(now) {
		return nil
	}
	switch a.current.move {
	case Forward:
		Move(b, a.mPerEpoch)
	case Backward:
		Move(b, -a.mPerEpoch)
	case Left:
		Turn(b, -a.radPerEpoch)
	case Right:
		Turn(b, a.radPerEpoch)
	}
	return nil
}

// TwoWheel is the characterized differential drive. Every active tick draws a
// fresh step length, drift angle and turn angle for one epoch.
type TwoWheel struct {
	epoch   float64
	noise   *Gaussian
	current instruction
}

func NewTwoWheel(epoch float64, noise *Gaussian) *TwoWheel {
	return &TwoWheel{epoch: epoch, noise: noise}
}

func (a *TwoWheel) Name() string { return "TWO_WHEEL" }

// ForwardDistance is the characterized distance in metres covered in s seconds.
func (a *TwoWheel) ForwardDistance(s float64) float64 {
	return a.noise.Draw(22.660707*s+1.3405, 0.15) / 100
}

// DriftAngle is the characterized heading drift in radians while driving s seconds.
func (a *TwoWheel) DriftAngle(s float64) float64 {
	return physics.DegreesToRadians(a.noise.Draw(4.38*s+1.3874, 2))
}

// TurnAngle is the characterized pivot angle in radians after s seconds.
func (a *TwoWheel) TurnAngle(s float64) float64 {
	return physics.DegreesToRadians(a.noise.Draw(237.5288752*s+19.28566864, 3))
}

func (a *TwoWheel) Apply(b *world.Body, cmd Command, now float64) error {
	if err := a.current.accept(cmd, now); err != nil {
		return err
	}
	if !a.current.active(now) {
		return nil
	}

	step := a.ForwardDistance(a.epoch)
	drift := a.DriftAngle(a.epoch)
	angle := a.TurnAngle(a.epoch)

	switch a.current.move {
	case Forward:
		MoveWithDrift(b, step, drift)
	case Backward:
		MoveWithDrift(b, -step, drift)
	case Left:
		Turn(b, angle)
	case Right:
		Turn(b, -angle)
	}
	return nil
}

package robot

import (
	"fmt"

	"github.com/zeusync/centurion/internal/core/world"
)

// firstRange is the distance seen by the first sensor, world.NoHit without one.
func firstRange(cc ControlContext) float64 {
	if len(cc.Readings) == 0 {
		return world.NoHit
	}
	return cc.Readings[0].InM
}

// Overlord observes and never drives.
type Overlord struct{}

func (Overlord) Name() string                   { return "OVERLORD" }
func (Overlord) Control(ControlContext) Command { return Command{} }
func (Overlord) State() string                  { return "OBSERVE" }

type avoidState int

const (
	avoidStart avoidState = iota
	avoidStartWarmup
	avoidWarmup
	avoidStartForward
	avoidForward
	avoidStartTurnRight
	avoidTurnRight
)

var avoidStateNames = [...]string{
	"S_START", "S_START_WARMUP", "S_WARMUP", "S_START_FORWARD", "S_FORWARD", "S_START_TURN_RIGHT", "S_TURN_RIGHT",
}

func (s avoidState) String() string {
	if int(s) < len(avoidStateNames) {
		return avoidStateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const (
	AvoidWarmupTime  = 1.0
	AvoidForwardTime = 10.0
	AvoidTurnTime    = 9.0
	// AvoidDistance triggers the turn, in metres.
	AvoidDistance = 0.10
)

// BasicAvoid warms up, drives forward and pivots right for AvoidTurnTime
// whenever the first sensor sees something closer than AvoidDistance.
type BasicAvoid struct {
	name        string
	state       avoidState
	timeInState float64
	lastTime    float64
}

func NewBasicAvoid(name string) *BasicAvoid { return &BasicAvoid{name: name} }

func (c *BasicAvoid) Name() string  { return c.name }
func (c *BasicAvoid) State() string { return c.state.String() }

func (c *BasicAvoid) Control(cc ControlContext) Command {
	defer func() { c.lastTime = cc.Now }()

	if r := firstRange(cc); r > 0 && r < AvoidDistance && c.state == avoidForward {
		c.state = avoidStartTurnRight
		return Command{}
	}

	var cmd Command
	switch c.state {
	case avoidStart, avoidStartWarmup:
		c.timeInState = 0
		c.state = avoidWarmup
	case avoidWarmup:
		c.timeInState += cc.Now - c.lastTime
		if c.timeInState >= AvoidWarmupTime {
			c.state = avoidStartForward
		}
	case avoidStartForward:
		c.timeInState = 0
		cmd = Command{Left: 1, Right: 1, Duration: AvoidForwardTime, NewInstruction: true}
		c.state = avoidForward
	case avoidForward:
		cmd = Command{Left: 1, Right: 1, Duration: AvoidForwardTime, NewInstruction: true}
	case avoidStartTurnRight:
		c.timeInState = 0
		cmd = Command{Left: 0, Right: 1, Duration: AvoidTurnTime, NewInstruction: true}
		c.state = avoidTurnRight
	case avoidTurnRight:
		c.timeInState += cc.Now - c.lastTime
		if c.timeInState >= AvoidTurnTime {
			c.state = avoidStartForward
		}
	}
	return cmd
}

type squareState int

const (
	squareStart squareState = iota
	squareStartForward
	squareForward
	squareStartTurnLeft
	squareTurnLeft
	squareStopObject
)

var squareStateNames = [...]string{
	"S_START", "S_START_FORWARD", "S_FORWARD", "S_START_TURN_LEFT", "S_TURN_LEFT", "S_STOP_OBJECT",
}

func (s squareState) String() string {
	if int(s) < len(squareStateNames) {
		return squareStateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const (
	// SquarePhaseTime is the length of each forward and turn phase.
	SquarePhaseTime = 15.0
	// SquareStopDistance halts the robot, in metres.
	SquareStopDistance = 0.05
)

// MoveInSquare alternates forward and left-turn phases and halts while the
// first sensor sees something closer than SquareStopDistance, resuming the
// interrupted phase once the way is clear.
type MoveInSquare struct {
	state       squareState
	saved       squareState
	timeInState float64
	lastTime    float64
}

func NewMoveInSquare() *MoveInSquare { return &MoveInSquare{} }

func (c *MoveInSquare) Name() string  { return "SIMPLE_MOVE_IN_SQUARE_AND_STOP_W_OBSTACLE" }
func (c *MoveInSquare) State() string { return c.state.String() }

func (c *MoveInSquare) Control(cc ControlContext) Command {
	defer func() { c.lastTime = cc.Now }()

	if r := firstRange(cc); r >= 0 && r < SquareStopDistance {
		if c.state != squareStopObject {
			c.saved = c.state
		}
		c.state = squareStopObject
		return Command{NewInstruction: true}
	}

	var cmd Command
	switch c.state {
	case squareStart:
		c.timeInState = 0
		c.state = squareStartForward
	case squareStartForward:
		c.timeInState = 0
		cmd = Command{Left: 1, Right: 1, Duration: SquarePhaseTime, NewInstruction: true}
		c.state = squareForward
	case squareForward:
		c.timeInState += cc.Now - c.lastTime
		if c.timeInState >= SquarePhaseTime {
			c.state = squareStartTurnLeft
		}
	case squareStartTurnLeft:
		c.timeInState = 0
		cmd = Command{Left: 1, Right: 0, Duration: SquarePhaseTime, NewInstruction: true}
		c.state = squareTurnLeft
	case squareTurnLeft:
		c.timeInState += cc.Now - c.lastTime
		if c.timeInState >= SquarePhaseTime {
			c.state = squareStartForward
		}
	case squareStopObject:
		c.state = c.saved
		remaining := SquarePhaseTime - c.timeInState
		switch c.saved {
		case squareForward:
			cmd = Command{Left: 1, Right: 1, Duration: remaining, NewInstruction: true}
		case squareTurnLeft:
			cmd = Command{Left: 1, Right: 0, Duration: remaining, NewInstruction: true}
		}
	}
	return cmd
}

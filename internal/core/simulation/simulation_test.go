package simulation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/zeusync/centurion/internal/core/config"
	"github.com/zeusync/centurion/internal/core/robot"
	"github.com/zeusync/centurion/internal/core/systems/physics"
	"github.com/zeusync/centurion/internal/core/trace"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func baseConfig(epoch, simTime float64) *config.Config {
	return &config.Config{
		System: config.System{RandSeed: 11, SimulationType: config.SimulationDiscrete},
		Environment: config.Environment{
			SizeX: 2, SizeY: 2, Epoch: epoch, SimTime: simTime, BoundaryWalls: true,
		},
	}
}

func group(control string, sensor, actuator string, places ...config.Placement) config.AgentGroup {
	g := config.AgentGroup{
		Shape:   config.Shape{Type: config.ShapeCircle, Radius: 0.05},
		Agents:  places,
		Control: control,
	}
	if sensor != "" {
		g.Sensors = []config.Sensor{{Type: sensor, Epoch: 0.1}}
	}
	if actuator != "" {
		g.Actuators = []config.Actuator{{Type: actuator}}
	}
	return g
}

func noisyConfig(seed uint64) *config.Config {
	cfg := baseConfig(0.1, 8)
	cfg.System.RandSeed = seed
	cfg.Environment.Objects = []config.Shape{
		{Type: config.ShapeCircle, X: 1, Y: 1, Radius: 0.2},
		{Type: config.ShapeRectangle, X: 0.5, Y: 1.5, HalfX: 0.1, HalfY: 0.2, Rotation: 20},
	}
	cfg.AgentGroups = []config.AgentGroup{
		group("BASIC_AVOID_ICRA_W_BAYESIAN", "ULTRASONIC_W_BAYESIAN", "TWO_WHEEL",
			config.Placement{X: 0.3, Y: 0.3}, config.Placement{X: 1.7, Y: 0.3, Angle: 1.57}, config.Placement{X: 0.9, Y: 0.5, Angle: 1.57}),
		group("SIMPLE_MOVE_IN_SQUARE_AND_STOP_W_OBSTACLE", "IR_W_BAYESIAN", "TWO_WHEEL",
			config.Placement{X: 1.5, Y: 1.5, Angle: 3.14}, config.Placement{X: 0.3, Y: 1.7}),
	}
	return cfg
}

func build(t *testing.T, cfg *config.Config, opts ...Option) *Engine {
	t.Helper()
	e, err := FromConfig(cfg, robot.NewDefaultRegistry(), opts...)
	require.NoError(t, err)
	return e
}

func TestRunEndsOncePastSimTime(t *testing.T) {
	cfg := baseConfig(0.5, 2)
	cfg.AgentGroups = []config.AgentGroup{group("OVERLORD", "IDEAL_BEAM", "IDEAL_TWO_WHEEL", config.Placement{X: 1, Y: 1})}
	mem := &trace.Memory{}
	e := build(t, cfg, WithRecorder(mem))

	s, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, s.Ticks)
	assert.Equal(t, 2.5, s.SimTime)
	assert.False(t, s.Canceled)
	assert.True(t, e.Done())

	require.Len(t, mem.Records, 7)
	assert.Equal(t, trace.KindHeader, mem.Records[0].Kind)
	assert.Equal(t, trace.KindFooter, mem.Records[6].Kind)
	assert.Equal(t, 5, mem.Records[6].Footer.Ticks)

	done, err := e.Step(context.Background())
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 5, e.Ticks(), "a finished engine does not step")
}

func TestHeaderDescribesWorld(t *testing.T) {
	mem := &trace.Memory{}
	e := build(t, noisyConfig(1), WithRecorder(mem))
	_, err := e.Step(context.Background())
	require.NoError(t, err)

	h := mem.Records[0].Header
	require.NotNil(t, h)
	assert.Len(t, h.RunID, 36)
	assert.Equal(t, uint64(1), h.Seed)
	assert.Len(t, h.Objects, 6, "two objects and four walls")
	assert.Equal(t, "circle", h.Objects[0].Shape)
	require.Len(t, h.Agents, 5)
	assert.Equal(t, 6, h.Agents[0].ID)
	assert.Equal(t, 1, h.Agents[3].Group)
	assert.Equal(t, []string{"IR_W_BAYESIAN"}, h.Agents[3].Sensors)
	assert.Equal(t, "SIMPLE_MOVE_IN_SQUARE_AND_STOP_W_OBSTACLE", h.Agents[3].Controller)

	tick := mem.Ticks()[0]
	assert.Len(t, tick.Agents, 5)
	assert.Len(t, tick.Beams, 5)
}

func TestParallelSensingMatchesSequential(t *testing.T) {
	run := func(workers int) (Summary, []trace.Tick) {
		mem := &trace.Memory{}
		s, err := build(t, noisyConfig(5), WithWorkers(workers), WithRecorder(mem)).Run(context.Background())
		require.NoError(t, err)
		return s, mem.Ticks()
	}
	seq, seqTicks := run(0)
	par, parTicks := run(8)

	assert.Equal(t, seq, par)
	assert.Equal(t, seqTicks, parTicks)
}

func TestSeedDeterminesRun(t *testing.T) {
	run := func(seed uint64) uint64 {
		s, err := build(t, noisyConfig(seed)).Run(context.Background())
		require.NoError(t, err)
		return s.Fingerprint
	}
	assert.Equal(t, run(3), run(3))
	assert.NotEqual(t, run(3), run(4))
}

func TestAvoiderTurnsBeforeWall(t *testing.T) {
	cfg := baseConfig(0.1, 25)
	cfg.AgentGroups = []config.AgentGroup{group("BASIC_AVOID", "IDEAL_BEAM", "IDEAL_TWO_WHEEL", config.Placement{X: 1.75, Y: 1})}
	mem := &trace.Memory{}
	s, err := build(t, cfg, WithRecorder(mem)).Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, s.Collisions)
	turned := false
	for _, tk := range mem.Ticks() {
		if tk.Agents[0].State == "S_TURN_RIGHT" {
			turned = true
			assert.Greater(t, tk.Time, 11.0)
			break
		}
	}
	assert.True(t, turned)

	last := mem.Ticks()[len(mem.Ticks())-1].Agents[0]
	assert.Less(t, last.X, 1.9)
	assert.InDelta(t, 90, last.AngleDeg, 5)
}

func TestCollisionsAreCounted(t *testing.T) {
	cfg := baseConfig(0.5, 2)
	cfg.AgentGroups = []config.AgentGroup{group("OVERLORD", "", "", config.Placement{X: 1, Y: 1}, config.Placement{X: 1.05, Y: 1})}
	s, err := build(t, cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, s.Collisions)

	cfg.AgentGroups[0].NonPhysical = true
	s, err = build(t, cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.Collisions)
}

type cancelAfter struct {
	trace.Memory
	n      int
	cancel context.CancelFunc
}

func (c *cancelAfter) Tick(tk trace.Tick) error {
	if tk.Tick == c.n {
		c.cancel()
	}
	return c.Memory.Tick(tk)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &cancelAfter{n: 3, cancel: cancel}
	s, err := build(t, noisyConfig(1), WithRecorder(rec), WithWorkers(4)).Run(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, s.Canceled)
	assert.Equal(t, 3, s.Ticks)
	last := rec.Records[len(rec.Records)-1]
	require.Equal(t, trace.KindFooter, last.Kind)
	assert.True(t, last.Footer.Canceled)
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mem := &trace.Memory{}
	s, err := build(t, noisyConfig(1), WithRecorder(mem)).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, s.Ticks)
	assert.Empty(t, mem.Records)
}

func TestRealtimePacing(t *testing.T) {
	cfg := baseConfig(0.1, 0.5)
	cfg.AgentGroups = []config.AgentGroup{group("OVERLORD", "IDEAL_BEAM", "", config.Placement{X: 1, Y: 1})}
	s, err := build(t, cfg, WithRealtime(100)).Run(context.Background())
	require.NoError(t, err)
	assert.Positive(t, s.Ticks)
}

func TestFromConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(g *config.AgentGroup)
		want   string
	}{
		{"sensor", func(g *config.AgentGroup) { g.Sensors[0].Type = "SONAR" }, "agent group 0: agent 0: sensor 0: unknown sensor: SONAR"},
		{"actuator", func(g *config.AgentGroup) { g.Actuators[0].Type = "TRACKS" }, "agent group 0: agent 0: actuator 0: unknown actuator: TRACKS"},
		{"control", func(g *config.AgentGroup) { g.Control = "WANDER" }, "agent group 0: agent 0: control: unknown control algorithm: WANDER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig(0.1, 1)
			g := group("OVERLORD", "IR", "TWO_WHEEL", config.Placement{X: 1, Y: 1})
			tt.mutate(&g)
			cfg.AgentGroups = []config.AgentGroup{g}
			_, err := FromConfig(cfg, robot.NewDefaultRegistry())
			require.Error(t, err)
			assert.ErrorIs(t, err, robot.ErrUnknown)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromConfigComponentStreams(t *testing.T) {
	assert.NotEqual(t, streamFor(6, 0), streamFor(6, 1))
	assert.NotEqual(t, streamFor(6, 0), streamFor(7, 0))
	assert.NotEqual(t, streamFor(6, 0), streamFor(6, actuatorStream))
}

func TestHugePlacementAngleIsWrapped(t *testing.T) {
	cfg := baseConfig(0.5, 1)
	cfg.AgentGroups = []config.AgentGroup{group("BASIC_AVOID", "IDEAL_BEAM", "IDEAL_TWO_WHEEL",
		config.Placement{X: 1, Y: 1, Angle: 1e20}, config.Placement{X: 0.5, Y: 0.5, Angle: -1e20})}
	e := build(t, cfg)
	for _, a := range e.Agents() {
		assert.GreaterOrEqual(t, a.Body.Heading, 0.0)
		assert.Less(t, a.Body.Heading, physics.TwoPi)
	}
	_, err := e.Run(context.Background())
	require.NoError(t, err)
}

package robot

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/centurion/internal/core/systems/physics"
	"github.com/zeusync/centurion/internal/core/world"
)

// sensingWorld has one agent at the origin facing east and a small post
// whose near side is 0.4 m away, 0.3 m in front of the agent's nose.
func sensingWorld(t *testing.T) (*world.State, *world.Body) {
	t.Helper()
	w := world.NewState(physics.V(2, 2), 0.1)
	require.NoError(t, w.AddObject(world.CircleObject(physics.Circle{Center: physics.V(0.5, 0), Radius: 0.1})))
	body := &world.Body{Circle: physics.Circle{Radius: 0.1}}
	_, err := w.AddBody(body)
	require.NoError(t, err)
	return w, body
}

func TestIdealBeamRefreshEpoch(t *testing.T) {
	w, body := sensingWorld(t)
	s := NewIdealBeam(SensorSpec{Epoch: 0.5})
	ctx := context.Background()

	r, err := s.Sense(ctx, SenseContext{World: w, Body: body, Now: 0.1})
	require.NoError(t, err)
	assert.True(t, r.NewData)
	assert.InDelta(t, 0.3, r.InM, 1e-9)
	assert.True(t, r.Hit.Hit)
	assert.InDelta(t, 0.4, r.Hit.Point.X, 1e-9)

	// the agent backs away but the sensor is still busy
	body.Circle.Center.X = -1
	r, err = s.Sense(ctx, SenseContext{World: w, Body: body, Now: 0.2})
	require.NoError(t, err)
	assert.False(t, r.NewData)
	assert.InDelta(t, 0.3, r.InM, 1e-9)

	r, err = s.Sense(ctx, SenseContext{World: w, Body: body, Now: 0.7})
	require.NoError(t, err)
	assert.True(t, r.NewData)
	assert.Equal(t, world.NoHit, r.InM)
}

func TestBeamSensorMountAngle(t *testing.T) {
	w, body := sensingWorld(t)
	s := NewIdealBeam(SensorSpec{MountAngle: physics.Pi})

	r, err := s.Sense(context.Background(), SenseContext{World: w, Body: body, Now: 0.1})
	require.NoError(t, err)
	assert.Equal(t, world.NoHit, r.InM, "a rear sensor does not see the post")
	assert.InDelta(t, -0.1, r.Hit.Beam.Point1.X, 1e-9)
}

func TestBeamSensorLength(t *testing.T) {
	w, body := sensingWorld(t)
	s := NewIdealBeam(SensorSpec{BeamLength: 0.2})

	r, err := s.Sense(context.Background(), SenseContext{World: w, Body: body, Now: 0.1})
	require.NoError(t, err)
	assert.Equal(t, world.NoHit, r.InM)
	assert.InDelta(t, 0.3, r.Hit.Beam.Point2.X, 1e-9)
}

func TestUltrasonicNoise(t *testing.T) {
	w, body := sensingWorld(t)
	s := NewUltrasonic(SensorSpec{Rand: rand.New(rand.NewPCG(3, 4))})

	var last float64
	varied := false
	for i := 1; i <= 20; i++ {
		r, err := s.Sense(context.Background(), SenseContext{World: w, Body: body, Now: float64(i) * 0.1})
		require.NoError(t, err)
		require.True(t, r.NewData)
		assert.InDelta(t, 0.3, r.InM, 0.05)
		if i > 1 && r.InM != last {
			varied = true
		}
		last = r.InM
	}
	assert.True(t, varied, "characterized readings are noisy")
}

func TestNoiseSkippedWithoutHit(t *testing.T) {
	w, body := sensingWorld(t)
	body.Heading = physics.Pi
	s := NewIR(SensorSpec{Rand: rand.New(rand.NewPCG(1, 1))})

	r, err := s.Sense(context.Background(), SenseContext{World: w, Body: body, Now: 0.1})
	require.NoError(t, err)
	assert.Equal(t, world.NoHit, r.InM)
}

func TestBayesianReadWindow(t *testing.T) {
	w, body := sensingWorld(t)
	s := NewUltrasonicBayesian(SensorSpec{Rand: rand.New(rand.NewPCG(5, 6))})

	var reads []int
	for i := 1; i <= 7; i++ {
		r, err := s.Sense(context.Background(), SenseContext{World: w, Body: body, Now: float64(i) * 0.1})
		require.NoError(t, err)
		reads = append(reads, r.Reads)
		assert.InDelta(t, 0.3, r.InM, 0.05)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 0, 1, 2}, reads)
}

func TestSenseCancelled(t *testing.T) {
	w, body := sensingWorld(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewIdealBeam(SensorSpec{}).Sense(ctx, SenseContext{World: w, Body: body, Now: 0.1})
	assert.ErrorIs(t, err, context.Canceled)
}

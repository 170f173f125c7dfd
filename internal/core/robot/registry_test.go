package robot

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestRegistryBuiltins(t *testing.T) {
	r := NewDefaultRegistry()
	rng := rand.New(rand.NewPCG(1, 2))

	for _, name := range []string{"IDEAL_BEAM", "ULTRASONIC", "ULTRASONIC_W_BAYESIAN", "IR", "IR_W_BAYESIAN"} {
		s, err := r.NewSensor(SensorSpec{Type: name, Epoch: 0.1, Rand: rng})
		if err != nil {
			t.Fatalf("sensor %s: %v", name, err)
		}
		if s.Name() != name {
			t.Fatalf("sensor %s reports name %s", name, s.Name())
		}
	}
	for _, name := range []string{"IDEAL_TWO_WHEEL", "TWO_WHEEL"} {
		a, err := r.NewActuator(ActuatorSpec{Type: name, WorldEpoch: 0.1, Rand: rng})
		if err != nil {
			t.Fatalf("actuator %s: %v", name, err)
		}
		if a.Name() != name {
			t.Fatalf("actuator %s reports name %s", name, a.Name())
		}
	}
	ctrls := []string{"OVERLORD", "BASIC_AVOID", "BASIC_AVOID_ICRA", "BASIC_AVOID_ICRA_W_BAYESIAN", "SIMPLE_MOVE_IN_SQUARE_AND_STOP_W_OBSTACLE"}
	for _, name := range ctrls {
		c, err := r.NewController(ControllerSpec{Type: name})
		if err != nil {
			t.Fatalf("controller %s: %v", name, err)
		}
		if c.Name() != name {
			t.Fatalf("controller %s reports name %s", name, c.Name())
		}
	}

	sensors, actuators, controllers := r.Names()
	if len(sensors) != 5 || len(actuators) != 2 || len(controllers) != len(ctrls) {
		t.Fatalf("unexpected names: %v %v %v", sensors, actuators, controllers)
	}
	if !slices.IsSorted(sensors) {
		t.Fatalf("sensor names not sorted: %v", sensors)
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewSensor(SensorSpec{Type: "SONAR"})
	if !errors.Is(err, ErrUnknown) || err.Error() != "unknown sensor: SONAR" {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = r.NewActuator(ActuatorSpec{Type: "TRACKS"})
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = r.NewController(ControllerSpec{Type: "BOIDS"})
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistryRejectsBadSpecs(t *testing.T) {
	r := NewDefaultRegistry()

	if _, err := r.NewSensor(SensorSpec{Type: "ULTRASONIC", Epoch: 0.1}); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("noisy sensor without random source: %v", err)
	}
	if _, err := r.NewSensor(SensorSpec{Type: "IDEAL_BEAM", Epoch: -1}); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("negative epoch: %v", err)
	}
	if _, err := r.NewActuator(ActuatorSpec{Type: "IDEAL_TWO_WHEEL"}); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("zero world epoch: %v", err)
	}
	if _, err := r.NewActuator(ActuatorSpec{Type: "TWO_WHEEL", WorldEpoch: 0.1}); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("two wheel without random source: %v", err)
	}
}

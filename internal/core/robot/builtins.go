package robot

import "fmt"

// RegisterBuiltins registers every built-in sensor, actuator and control algorithm.
func RegisterBuiltins(r Registry) {
	r.RegisterSensor("IDEAL_BEAM", func(spec SensorSpec) (Sensor, error) {
		if err := checkSensor(spec, false); err != nil {
			return nil, err
		}
		return NewIdealBeam(spec), nil
	})
	noisy := map[string]func(SensorSpec) *BeamSensor{
		"ULTRASONIC":            NewUltrasonic,
		"ULTRASONIC_W_BAYESIAN": NewUltrasonicBayesian,
		"IR":                    NewIR,
		"IR_W_BAYESIAN":         NewIRBayesian,
	}
	for name, build := range noisy {
		r.RegisterSensor(name, func(spec SensorSpec) (Sensor, error) {
			if err := checkSensor(spec, true); err != nil {
				return nil, err
			}
			return build(spec), nil
		})
	}

	r.RegisterActuator("IDEAL_TWO_WHEEL", func(spec ActuatorSpec) (Actuator, error) {
		if spec.WorldEpoch <= 0 {
			return nil, fmt.Errorf("%w: IDEAL_TWO_WHEEL requires a positive world epoch", ErrInvalidSpec)
		}
		return NewIdealTwoWheel(spec.WorldEpoch), nil
	})
	r.RegisterActuator("TWO_WHEEL", func(spec ActuatorSpec) (Actuator, error) {
		if spec.WorldEpoch <= 0 {
			return nil, fmt.Errorf("%w: TWO_WHEEL requires a positive world epoch", ErrInvalidSpec)
		}
		if spec.Rand == nil {
			return nil, fmt.Errorf("%w: TWO_WHEEL requires a random source", ErrInvalidSpec)
		}
		return NewTwoWheel(spec.WorldEpoch, NewGaussian(spec.Rand)), nil
	})

	r.RegisterController("OVERLORD", func(ControllerSpec) (Controller, error) {
		return Overlord{}, nil
	})
	for _, name := range []string{"BASIC_AVOID", "BASIC_AVOID_ICRA", "BASIC_AVOID_ICRA_W_BAYESIAN"} {
		r.RegisterController(name, func(spec ControllerSpec) (Controller, error) {
			return NewBasicAvoid(spec.Type), nil
		})
	}
	r.RegisterController("SIMPLE_MOVE_IN_SQUARE_AND_STOP_W_OBSTACLE", func(ControllerSpec) (Controller, error) {
		return NewMoveInSquare(), nil
	})
}

func checkSensor(spec SensorSpec, noisy bool) error {
	if spec.Epoch < 0 {
		return fmt.Errorf("%w: %s epoch %v", ErrInvalidSpec, spec.Type, spec.Epoch)
	}
	if spec.BeamLength < 0 {
		return fmt.Errorf("%w: %s beam length %v", ErrInvalidSpec, spec.Type, spec.BeamLength)
	}
	if noisy && spec.Rand == nil {
		return fmt.Errorf("%w: %s requires a random source", ErrInvalidSpec, spec.Type)
	}
	return nil
}

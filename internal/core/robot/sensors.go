package robot

import (
	"context"
	"math"

	"github.com/zeusync/centurion/internal/core/systems/physics"
	"github.com/zeusync/centurion/internal/core/world"
)

// DefaultBeamLength is the range of the beam sensors, in metres.
const DefaultBeamLength = 0.5

// noiseFunc turns a true distance in centimetres into a reported one; reads
// is the index of the fresh measurement in the current filter window.
type noiseFunc func(cm float64, reads int) float64

// BeamSensor casts a beam from the front of the body and reports the nearest
// target. Measurements refresh once per epoch; in between the last reading is
// repeated with NewData unset.
type BeamSensor struct {
	name     string
	mount    float64
	epoch    float64
	length   float64
	noise    noiseFunc
	windowed bool

	completedAt float64
	reads       int
	last        Reading
}

func newBeamSensor(name string, spec SensorSpec, noise noiseFunc, windowed bool) *BeamSensor {
	length := spec.BeamLength
	if length == 0 {
		length = DefaultBeamLength
	}
	return &BeamSensor{
		name:     name,
		mount:    spec.MountAngle,
		epoch:    spec.Epoch,
		length:   length,
		noise:    noise,
		windowed: windowed,
		last:     Reading{InM: world.NoHit},
	}
}

// NewIdealBeam reports exact distances.
func NewIdealBeam(spec SensorSpec) *BeamSensor {
	return newBeamSensor("IDEAL_BEAM", spec, nil, false)
}

func (s *BeamSensor) Name() string { return s.name }

// Direction is the beam heading for a body heading, in radians.
func (s *BeamSensor) Direction(heading float64) float64 {
	return NormalizeHeading(heading + s.mount)
}

func (s *BeamSensor) Sense(ctx context.Context, sc SenseContext) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}
	if !(s.completedAt < sc.Now) {
		s.last.NewData = false
		return s.last, nil
	}
	s.completedAt = sc.Now + s.epoch
	if s.windowed {
		if s.reads == BayesianReads {
			s.reads = 0
		} else {
			s.reads++
		}
	}

	b := sc.Body
	dir := s.Direction(b.Heading)
	origin := b.Circle.Center.Add(physics.V(math.Cos(dir), math.Sin(dir)).Scale(b.Circle.Radius))
	hit, err := world.NearestBeamHit(sc.World, b.ID, origin.X, origin.Y, s.length, dir)
	if err != nil {
		return Reading{}, err
	}

	in := hit.Range
	if hit.Hit && s.noise != nil {
		in = s.noise(100*in, s.reads) / 100
	}
	s.last = Reading{InM: in, NewData: true, Reads: s.reads, Hit: hit}
	return s.last, nil
}

func characterized(m Model, g *Gaussian) noiseFunc {
	return func(cm float64, _ int) float64 {
		return Characterize(m, g, cm)
	}
}

func filtered(m Model, g *Gaussian, f *BayesianFilter) noiseFunc {
	return func(cm float64, reads int) float64 {
		return f.Update(Characterize(m, g, cm), reads == 0)
	}
}

// NewUltrasonic reports distances with ultrasonic noise.
func NewUltrasonic(spec SensorSpec) *BeamSensor {
	return newBeamSensor("ULTRASONIC", spec, characterized(Ultrasonic, NewGaussian(spec.Rand)), false)
}

// NewUltrasonicBayesian smooths ultrasonic readings with a Bayes filter.
func NewUltrasonicBayesian(spec SensorSpec) *BeamSensor {
	return newBeamSensor("ULTRASONIC_W_BAYESIAN", spec,
		filtered(Ultrasonic, NewGaussian(spec.Rand), NewUltrasonicFilter()), true)
}

// NewIR reports raw infrared units divided by 100.
func NewIR(spec SensorSpec) *BeamSensor {
	return newBeamSensor("IR", spec, characterized(Infrared, NewGaussian(spec.Rand)), false)
}

// NewIRBayesian recovers distances from infrared readings with a Bayes filter.
func NewIRBayesian(spec SensorSpec) *BeamSensor {
	return newBeamSensor("IR_W_BAYESIAN", spec,
		filtered(Infrared, NewGaussian(spec.Rand), NewInfraredFilter()), true)
}

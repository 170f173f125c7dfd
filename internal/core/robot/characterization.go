package robot

import (
	"math"
	"math/rand/v2"
)

// Gaussian draws normal variates with the polar Box-Muller method. Every
// accepted pair of uniforms yields two variates; the second is kept for the
// next call.
type Gaussian struct {
	src      *rand.Rand
	spare    float64
	hasSpare bool
}

func NewGaussian(src *rand.Rand) *Gaussian {
	return &Gaussian{src: src}
}

// Draw returns a sample of N(mu, sigma^2).
func (g *Gaussian) Draw(mu, sigma float64) float64 {
	if g.hasSpare {
		g.hasSpare = false
		return mu + sigma*g.spare
	}

	var u1, u2, w float64
	for {
		u1 = 2*g.src.Float64() - 1
		u2 = 2*g.src.Float64() - 1
		w = u1*u1 + u2*u2
		if w < 1 && w != 0 {
			break
		}
	}
	mult := math.Sqrt(-2 * math.Log(w) / w)
	g.spare = u2 * mult
	g.hasSpare = true
	return mu + sigma*u1*mult
}

// Model maps a true distance in centimetres to the mean and standard
// deviation of what a physical sensor reports for it.
type Model interface {
	Mean(cm float64) float64
	Std(cm float64) float64
}

// LinearModel: mean = MeanA*d + MeanB, std = StdA*d + StdB.
type LinearModel struct {
	MeanA, MeanB float64
	StdA, StdB   float64
}

func (m LinearModel) Mean(cm float64) float64 { return m.MeanA*cm + m.MeanB }
func (m LinearModel) Std(cm float64) float64  { return m.StdA*cm + m.StdB }

// PowerModel: mean = MeanK1*d^MeanK2, std = StdK1*e^(StdK2*d). Distances
// below MinCm are clamped so a touching target stays finite.
type PowerModel struct {
	MeanK1, MeanK2 float64
	StdK1, StdK2   float64
	MinCm          float64
}

func (m PowerModel) clamp(cm float64) float64 { return math.Max(cm, m.MinCm) }

func (m PowerModel) Mean(cm float64) float64 {
	return m.MeanK1 * math.Pow(m.clamp(cm), m.MeanK2)
}

func (m PowerModel) Std(cm float64) float64 {
	return m.StdK1 * math.Exp(m.StdK2*m.clamp(cm))
}

var (
	// Ultrasonic is the characterization of the ultrasonic range finder.
	Ultrasonic = LinearModel{
		MeanA: 0.9581686069037303,
		MeanB: 0.7625882833237847,
		StdA:  0.009280269184555247,
		StdB:  0.48783070995817385,
	}
	// Infrared is the characterization of the IR range finder. Its readings
	// are raw sensor units that fall with distance.
	Infrared = PowerModel{
		MeanK1: 11955.224610613135,
		MeanK2: -0.9738407600162202,
		StdK1:  5.574431613205327,
		StdK2:  0.14072513618767238,
		MinCm:  1,
	}
)

// Characterize draws a noisy reading for a true distance in centimetres.
func Characterize(m Model, g *Gaussian, cm float64) float64 {
	return g.Draw(m.Mean(cm), m.Std(cm))
}

const (
	// BayesianStates is the number of candidate distances, 1 cm apart by 0.1 cm.
	BayesianStates = 591
	// BayesianReads is the last read index of a filter window; the read after
	// it restarts the filter from a uniform prior.
	BayesianReads = 4
)

var bayesianGrid = func() [BayesianStates]float64 {
	var g [BayesianStates]float64
	num := 1.0
	for i := range g {
		g[i] = num
		num += 0.1
	}
	return g
}()

// BayesianFilter is a discrete Bayes filter over candidate true distances.
// Each update multiplies the posterior by the likelihood of the reading
// under the model and reports the most probable candidate.
type BayesianFilter struct {
	model Model
	// estimate turns the winning candidate distance into the reported value.
	estimate func(model Model, cm float64) float64
	prob     [BayesianStates]float64
	started  bool
}

// NewUltrasonicFilter reports the model's expected reading at the most
// probable distance.
func NewUltrasonicFilter() *BayesianFilter {
	return &BayesianFilter{model: Ultrasonic, estimate: func(m Model, cm float64) float64 { return m.Mean(cm) }}
}

// NewInfraredFilter reports the most probable distance itself.
func NewInfraredFilter() *BayesianFilter {
	return &BayesianFilter{model: Infrared, estimate: func(_ Model, cm float64) float64 { return cm }}
}

func (f *BayesianFilter) reset() {
	u := 1.0 / float64(BayesianStates)
	for i := range f.prob {
		f.prob[i] = u
	}
}

// Update folds in one reading. restart drops the accumulated posterior first.
func (f *BayesianFilter) Update(reading float64, restart bool) float64 {
	if !f.started || restart {
		f.started = true
		f.reset()
	}

	sum := 0.0
	for i, state := range bayesianGrid {
		mean := f.model.Mean(state)
		std := f.model.Std(state)
		z := reading - mean
		p := 1.0 / (std * math.Sqrt(2*math.Pi)) * math.Exp(-(z*z)/(2*std*std))
		f.prob[i] *= p
		sum += f.prob[i]
	}
	// a reading implausible under every candidate carries no information
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		f.reset()
	} else {
		for i := range f.prob {
			f.prob[i] /= sum
		}
	}

	best, bestP := 0, -1.0
	for i, p := range f.prob {
		if p > bestP {
			best, bestP = i, p
		}
	}
	return f.estimate(f.model, bayesianGrid[best])
}

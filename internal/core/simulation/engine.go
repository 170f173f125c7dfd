package simulation

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/zeusync/centurion/internal/core/observability/log"
	"github.com/zeusync/centurion/internal/core/robot"
	"github.com/zeusync/centurion/internal/core/systems/physics"
	"github.com/zeusync/centurion/internal/core/trace"
	"github.com/zeusync/centurion/internal/core/world"
	"github.com/zeusync/centurion/pkg/concurrent"
)

// Engine advances a world of agents in fixed time steps. Every tick all
// agents sense the world as it stood at the start of the tick, then each
// agent in list order runs its controller and actuator.
type Engine struct {
	world   *world.State
	agents  []*robot.Agent
	simTime float64

	workers  int
	log      log.Log
	recorder trace.Recorder
	limiter  *rate.Limiter
	seed     uint64

	now        float64
	ticks      int
	collisions int
	started    bool
	done       bool
}

// Summary describes a finished or interrupted run.
type Summary struct {
	Ticks       int
	SimTime     float64
	Collisions  int
	Fingerprint uint64
	Canceled    bool
}

type Option func(*Engine)

// WithWorkers senses up to n agents in parallel. n < 2 senses on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

func WithLogger(l log.Log) Option {
	return func(e *Engine) { e.log = l }
}

func WithRecorder(r trace.Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithRealtime paces Run so that simulated time passes factor times faster
// than the wall clock. factor <= 0 runs as fast as possible.
func WithRealtime(factor float64) Option {
	return func(e *Engine) {
		if factor <= 0 {
			e.limiter = nil
			return
		}
		interval := time.Duration(e.world.Epoch / factor * float64(time.Second))
		e.limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// WithSeed records the seed the components were built from in the trace header.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.seed = seed }
}

// New returns an engine that runs until the simulated time exceeds simTime.
func New(w *world.State, agents []*robot.Agent, simTime float64, opts ...Option) *Engine {
	e := &Engine{
		world:    w,
		agents:   agents,
		simTime:  simTime,
		log:      log.Nop(),
		recorder: trace.Nop{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) World() *world.State    { return e.world }
func (e *Engine) Agents() []*robot.Agent { return e.agents }
func (e *Engine) Now() float64           { return e.now }
func (e *Engine) Ticks() int             { return e.ticks }
func (e *Engine) Done() bool             { return e.done }

// Step runs one tick and reports whether the run is over.
func (e *Engine) Step(ctx context.Context) (bool, error) {
	if e.done {
		return true, nil
	}
	if !e.started {
		if err := e.start(); err != nil {
			return false, err
		}
	}

	e.now += e.world.Epoch
	e.ticks++

	workers := e.workers
	if workers < 2 {
		workers = 0
	}
	err := concurrent.ForEach(ctx, workers, e.agents, func(ctx context.Context, _ int, a *robot.Agent) error {
		return a.Sense(ctx, e.world, e.now)
	})
	if err != nil {
		return false, fmt.Errorf("tick %d: sense: %w", e.ticks, err)
	}

	for _, a := range e.agents {
		if err := a.Act(e.now); err != nil {
			return false, fmt.Errorf("tick %d: act: %w", e.ticks, err)
		}
	}

	crashes := world.Collisions(e.world)
	for _, c := range crashes {
		e.log.Warn("collision", log.Tick(e.ticks), log.SimTime(e.now),
			log.Agent(c.Body), log.Int("other", c.Other), log.String("kind", c.Kind.String()))
	}
	e.collisions += len(crashes)

	if err := e.recorder.Tick(e.tickRecord(crashes)); err != nil {
		return false, fmt.Errorf("tick %d: trace: %w", e.ticks, err)
	}
	e.log.Debug("tick", log.Tick(e.ticks), log.SimTime(e.now))

	e.done = e.simTime < e.now
	return e.done, nil
}

// Run steps until the simulated time is over or ctx is cancelled, then
// writes the trace footer.
func (e *Engine) Run(ctx context.Context) (Summary, error) {
	began := time.Now()
	e.log.Info("simulation started",
		log.Int("agents", len(e.agents)), log.Int("objects", e.world.NumObjects()),
		log.Float64("epoch_s", e.world.Epoch), log.Float64("sim_time_s", e.simTime),
		log.Int("workers", e.workers))

	var runErr error
	canceled := false
	for !e.done {
		if e.limiter != nil {
			if err := e.limiter.Wait(ctx); err != nil {
				runErr, canceled = err, true
				break
			}
		}
		if err := ctx.Err(); err != nil {
			runErr, canceled = err, true
			break
		}
		if _, err := e.Step(ctx); err != nil {
			runErr, canceled = err, ctx.Err() != nil
			break
		}
	}

	s := e.Summary()
	s.Canceled = canceled
	if e.started {
		footer := trace.Footer{
			Ticks:       s.Ticks,
			SimTime:     s.SimTime,
			Collisions:  s.Collisions,
			Fingerprint: fmt.Sprintf("%016x", s.Fingerprint),
			Canceled:    s.Canceled,
		}
		if err := e.recorder.Footer(footer); err != nil && runErr == nil {
			runErr = fmt.Errorf("trace footer: %w", err)
		}
	}

	e.log.Info("simulation finished",
		log.Int("ticks", s.Ticks), log.SimTime(s.SimTime), log.Int("collisions", s.Collisions),
		log.String("fingerprint", fmt.Sprintf("%016x", s.Fingerprint)),
		log.Bool("canceled", s.Canceled), log.Duration("elapsed", time.Since(began)))
	return s, runErr
}

// Summary reports the run so far.
func (e *Engine) Summary() Summary {
	return Summary{
		Ticks:       e.ticks,
		SimTime:     e.now,
		Collisions:  e.collisions,
		Fingerprint: world.Fingerprint(e.world),
	}
}

func (e *Engine) start() error {
	e.started = true
	if err := e.recorder.Header(e.header()); err != nil {
		return fmt.Errorf("trace header: %w", err)
	}
	return nil
}

func (e *Engine) header() trace.Header {
	h := trace.Header{
		RunID:     trace.NewRunID(),
		StartedAt: time.Now().UTC(),
		Seed:      e.seed,
		Epoch:     e.world.Epoch,
		SimTime:   e.simTime,
		SizeX:     e.world.Size.X,
		SizeY:     e.world.Size.Y,
		Objects:   make([]trace.ObjectInfo, 0, e.world.NumObjects()),
		Agents:    make([]trace.AgentInfo, 0, len(e.agents)),
	}
	for i, o := range e.world.Objects()[:e.world.NumObjects()] {
		h.Objects = append(h.Objects, trace.DescribeObject(i, *o.Object))
	}
	for _, a := range e.agents {
		info := trace.AgentInfo{
			ID:          a.Body.ID,
			Group:       a.Group,
			Radius:      a.Body.Circle.Radius,
			NonPhysical: a.Body.NonPhysical,
			Controller:  a.Controller.Name(),
		}
		for _, s := range a.Sensors {
			info.Sensors = append(info.Sensors, s.Name())
		}
		for _, act := range a.Actuators {
			info.Actuators = append(info.Actuators, act.Name())
		}
		h.Agents = append(h.Agents, info)
	}
	return h
}

func (e *Engine) tickRecord(crashes []world.Collision) trace.Tick {
	t := trace.Tick{
		Tick:       e.ticks,
		Time:       e.now,
		Agents:     make([]trace.AgentFrame, 0, len(e.agents)),
		Collisions: crashes,
	}
	for _, a := range e.agents {
		b := a.Body
		t.Agents = append(t.Agents, trace.AgentFrame{
			ID:       b.ID,
			X:        b.Circle.Center.X,
			Y:        b.Circle.Center.Y,
			AngleDeg: physics.RadiansToDegrees(b.Heading),
			State:    a.Controller.State(),
		})
		for i, r := range a.Readings() {
			beam := trace.Beam{
				Agent:  b.ID,
				Sensor: i,
				X1:     r.Hit.Beam.Point1.X,
				Y1:     r.Hit.Beam.Point1.Y,
				X2:     r.Hit.Beam.Point2.X,
				Y2:     r.Hit.Beam.Point2.Y,
				Hit:    r.Hit.Hit,
				Range:  r.InM,
				Fresh:  r.NewData,
			}
			if r.Hit.Hit {
				beam.HitX, beam.HitY = r.Hit.Point.X, r.Hit.Point.Y
			}
			t.Beams = append(t.Beams, beam)
		}
	}
	return t
}

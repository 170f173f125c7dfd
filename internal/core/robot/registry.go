package robot

import (
	"fmt"
	"slices"
	"sync"
)

// reg is an in-memory registry for plug-and-play components.
type reg struct {
	mu    sync.RWMutex
	sens  map[string]SensorFactory
	acts  map[string]ActuatorFactory
	ctrls map[string]ControllerFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return &reg{
		sens:  make(map[string]SensorFactory),
		acts:  make(map[string]ActuatorFactory),
		ctrls: make(map[string]ControllerFactory),
	}
}

// NewDefaultRegistry returns a registry holding every built-in component.
func NewDefaultRegistry() Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}

func (r *reg) RegisterSensor(name string, factory SensorFactory) {
	r.mu.Lock()
	r.sens[name] = factory
	r.mu.Unlock()
}

func (r *reg) RegisterActuator(name string, factory ActuatorFactory) {
	r.mu.Lock()
	r.acts[name] = factory
	r.mu.Unlock()
}

func (r *reg) RegisterController(name string, factory ControllerFactory) {
	r.mu.Lock()
	r.ctrls[name] = factory
	r.mu.Unlock()
}

func (r *reg) NewSensor(spec SensorSpec) (Sensor, error) {
	r.mu.RLock()
	f := r.sens[spec.Type]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w sensor: %s", ErrUnknown, spec.Type)
	}
	return f(spec)
}

func (r *reg) NewActuator(spec ActuatorSpec) (Actuator, error) {
	r.mu.RLock()
	f := r.acts[spec.Type]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w actuator: %s", ErrUnknown, spec.Type)
	}
	return f(spec)
}

func (r *reg) NewController(spec ControllerSpec) (Controller, error) {
	r.mu.RLock()
	f := r.ctrls[spec.Type]
	r.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w control algorithm: %s", ErrUnknown, spec.Type)
	}
	return f(spec)
}

func (r *reg) Names() (sensors, actuators, controllers []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.sens), sortedKeys(r.acts), sortedKeys(r.ctrls)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

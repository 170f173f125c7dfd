package trace

import (
	"errors"
	"sync"
)

// Recorder receives a run as it happens. Header is called once before the
// first Tick and Footer once after the last.
type Recorder interface {
	Header(h Header) error
	Tick(t Tick) error
	Footer(f Footer) error
	Close() error
}

// Nop discards everything.
type Nop struct{}

func (Nop) Header(Header) error { return nil }
func (Nop) Tick(Tick) error     { return nil }
func (Nop) Footer(Footer) error { return nil }
func (Nop) Close() error        { return nil }

type multi struct {
	recorders []Recorder
}

// Multi fans every record out to all recorders and joins their errors.
func Multi(recorders ...Recorder) Recorder {
	return &multi{recorders: recorders}
}

func (m *multi) each(fn func(r Recorder) error) error {
	var errs []error
	for _, r := range m.recorders {
		if err := fn(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multi) Header(h Header) error { return m.each(func(r Recorder) error { return r.Header(h) }) }
func (m *multi) Tick(t Tick) error     { return m.each(func(r Recorder) error { return r.Tick(t) }) }
func (m *multi) Footer(f Footer) error { return m.each(func(r Recorder) error { return r.Footer(f) }) }
func (m *multi) Close() error          { return m.each(func(r Recorder) error { return r.Close() }) }

// Memory keeps every record; it is used by tests and short runs.
type Memory struct {
	mu      sync.Mutex
	Records []Record
	Closed  bool
}

func (m *Memory) add(r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, r)
	return nil
}

func (m *Memory) Header(h Header) error { return m.add(Record{Kind: KindHeader, Header: &h}) }
func (m *Memory) Tick(t Tick) error     { return m.add(Record{Kind: KindTick, Tick: &t}) }
func (m *Memory) Footer(f Footer) error { return m.add(Record{Kind: KindFooter, Footer: &f}) }

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// Ticks returns the recorded tick records in order.
func (m *Memory) Ticks() []Tick {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Tick
	for _, r := range m.Records {
		if r.Tick != nil {
			out = append(out, *r.Tick)
		}
	}
	return out
}

package trace

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/centurion/internal/core/systems/physics"
	"github.com/zeusync/centurion/internal/core/world"
)

func sampleRun() (Header, []Tick, Footer) {
	h := Header{
		RunID: "run-1", Seed: 7, Epoch: 0.1, SimTime: 0.2, SizeX: 2, SizeY: 2,
		Objects: []ObjectInfo{DescribeObject(0, world.CircleObject(physics.Circle{Center: physics.V(1, 1), Radius: 0.2}))},
		Agents:  []AgentInfo{{ID: 1, Radius: 0.05, Sensors: []string{"IR"}, Actuators: []string{"TWO_WHEEL"}, Controller: "BASIC_AVOID"}},
	}
	ticks := []Tick{
		{Tick: 1, Time: 0.1, Agents: []AgentFrame{{ID: 1, X: 0.5, Y: 0.5, State: "S_WARMUP"}},
			Beams: []Beam{{Agent: 1, X1: 0.55, Y1: 0.5, X2: 1.05, Y2: 0.5, Range: -1, Fresh: true}}},
		{Tick: 2, Time: 0.2, Agents: []AgentFrame{{ID: 1, X: 0.51, Y: 0.5, AngleDeg: 10}},
			Collisions: []world.Collision{{Body: 1, Other: 0, Kind: world.KindObject}}},
	}
	return h, ticks, Footer{Ticks: 2, SimTime: 0.2, Collisions: 1, Fingerprint: "00ff"}
}

func record(t *testing.T, r Recorder) {
	t.Helper()
	h, ticks, f := sampleRun()
	require.NoError(t, r.Header(h))
	for _, tk := range ticks {
		require.NoError(t, r.Tick(tk))
	}
	require.NoError(t, r.Footer(f))
}

func TestFileRecorderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	r := NewFileRecorder(&buf)
	record(t, r)
	require.NoError(t, r.Close())

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 4, lines, "one line per record")

	got, err := ReadAll(&buf)
	require.NoError(t, err)

	mem := &Memory{}
	record(t, mem)
	if diff := cmp.Diff(mem.Records, got); diff != "" {
		t.Fatalf("records differ (-want +got):\n%s", diff)
	}
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.jsonl")
	r, err := CreateFile(path)
	require.NoError(t, err)
	record(t, r)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close(), "closing twice is harmless")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	recs, err := ReadAll(f)
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, KindHeader, recs[0].Kind)
	assert.Equal(t, "run-1", recs[0].Header.RunID)
	assert.Equal(t, KindFooter, recs[3].Kind)
	assert.Equal(t, "00ff", recs[3].Footer.Fingerprint)
}

func TestReadAllRejectsGarbage(t *testing.T) {
	_, err := ReadAll(bytes.NewBufferString("{\"kind\":\"tick\"}\nnot json\n"))
	assert.ErrorContains(t, err, "read record 1")
}

type failing struct{ Nop }

func (failing) Tick(Tick) error { return errors.New("disk full") }

func TestMulti(t *testing.T) {
	a, b := &Memory{}, &Memory{}
	m := Multi(a, Nop{}, b)
	record(t, m)
	require.NoError(t, m.Close())

	assert.Len(t, a.Records, 4)
	assert.Equal(t, a.Records, b.Records)
	assert.True(t, a.Closed)
	assert.Len(t, a.Ticks(), 2)

	c := &Memory{}
	err := Multi(failing{}, c).Tick(Tick{Tick: 1})
	assert.ErrorContains(t, err, "disk full")
	assert.Len(t, c.Records, 1, "other recorders still receive the record")
}

func TestDescribeObject(t *testing.T) {
	o := DescribeObject(3, world.RectangleObject(physics.OrientedRectangle{
		Center: physics.V(1, 2), HalfExtent: physics.V(0.5, 0.25), Rotation: 30,
	}))
	assert.Equal(t, ObjectInfo{Index: 3, Shape: "rectangle", X: 1, Y: 2, HalfX: 0.5, HalfY: 0.25, Rotation: 30}, o)
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/centurion/internal/core/trace"
)

const exampleConfig = "../../configs/example.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunWritesTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.jsonl")
	out, err := execute(t, "run", "-c", exampleConfig, "-o", path, "--log-level", "none", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "canceled=false")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	recs, err := trace.ReadAll(f)
	require.NoError(t, err)
	require.Greater(t, len(recs), 2)
	assert.Equal(t, uint64(7), recs[0].Header.Seed)
	footer := recs[len(recs)-1].Footer
	require.NotNil(t, footer)
	assert.Equal(t, len(recs)-2, footer.Ticks)
	assert.Greater(t, footer.SimTime, 60.0)
	assert.Contains(t, out, fmt.Sprintf("ticks=%d ", footer.Ticks))
	assert.Contains(t, out, "fingerprint="+footer.Fingerprint)

	out, err = execute(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "seed=7 arena=2x2")
	assert.Contains(t, out, fmt.Sprintf("ticks recorded=%d", footer.Ticks))
}

func TestRunSeedFromEnvironment(t *testing.T) {
	t.Setenv("CENTURION_SEED", "99")
	path := filepath.Join(t.TempDir(), "run.jsonl")
	_, err := execute(t, "run", "-c", exampleConfig, "-o", path, "--log-level", "none")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	recs, err := trace.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), recs[0].Header.Seed)
}

func TestRunRequiresConfig(t *testing.T) {
	_, err := execute(t, "run", "--log-level", "none")
	assert.ErrorContains(t, err, "--config is required")

	_, err = execute(t, "run", "-c", "missing.yaml", "--log-level", "none")
	assert.Error(t, err)

	_, err = execute(t, "run", "-c", exampleConfig, "--log-level", "shouty")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestRunBadServeAddressLeavesNoTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.jsonl")
	_, err := execute(t, "run", "-c", exampleConfig, "-o", path, "--log-level", "none", "--serve", "no-port")
	require.ErrorContains(t, err, "serve:")
	assert.NoFileExists(t, path)
}

func TestComponents(t *testing.T) {
	out, err := execute(t, "components")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "IDEAL_BEAM, IR, IR_W_BAYESIAN, ULTRASONIC, ULTRASONIC_W_BAYESIAN")
	assert.Contains(t, lines[1], "IDEAL_TWO_WHEEL, TWO_WHEEL")
	assert.Contains(t, lines[2], "SIMPLE_MOVE_IN_SQUARE_AND_STOP_W_OBSTACLE")
}

package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got Vector2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, Epsilon, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, Epsilon, "y of %v", got)
}

func TestVectorArithmetic(t *testing.T) {
	a, b := V(3, 4), V(-1, 2)

	assert.Equal(t, V(2, 6), a.Add(b))
	assert.Equal(t, V(4, 2), a.Sub(b))
	assert.Equal(t, V(-3, -4), a.Negate())
	assert.Equal(t, V(6, 8), a.Scale(2))
	assert.Equal(t, 5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Length())
	assert.Equal(t, 5.0, Distance(V(0, 0), a))
}

func TestVectorDivide(t *testing.T) {
	v, err := V(3, 6).Divide(3)
	require.NoError(t, err)
	assert.Equal(t, V(1, 2), v)

	_, err = V(1, 1).Divide(0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestVectorUnit(t *testing.T) {
	assertVec(t, V(0.6, 0.8), V(3, 4).Unit())
	assert.Equal(t, Vector2{}, Vector2{}.Unit())
}

func TestVectorProject(t *testing.T) {
	assertVec(t, V(2, 0), V(2, 3).Project(V(5, 0)))
	assertVec(t, V(1, 1), V(2, 0).Project(V(1, 1)))
	// a zero target cannot be projected onto; it comes back unchanged
	assert.Equal(t, Vector2{}, V(2, 3).Project(Vector2{}))
}

func TestVectorRotateRoundTrip(t *testing.T) {
	v := V(1.25, -0.5)
	for _, deg := range []float64{0, 13, 45, 90, 180, 271.5, -33, 720} {
		assertVec(t, v, v.Rotate(deg).Rotate(-deg))
	}
}

func TestVectorQuarterTurns(t *testing.T) {
	v := V(2, 1)
	assertVec(t, v.Rotate(90), v.Rotate90())
	assertVec(t, v.Rotate(180), v.Rotate180())
	assertVec(t, v.Rotate(270), v.Rotate270())
	assertVec(t, v.Rotate(90), v.RotateRadians(Pi/2))
}

func TestParallelVectors(t *testing.T) {
	assert.True(t, ParallelVectors(V(1, 2), V(2, 4)))
	assert.True(t, ParallelVectors(V(1, 2), V(-1, -2)))
	assert.False(t, ParallelVectors(V(1, 0), V(0, 1)))
	assert.False(t, ParallelVectors(Vector2{}, V(1, 0)))
	assert.False(t, ParallelVectors(V(1, 0), Vector2{}))
}

func TestEnclosedAngle(t *testing.T) {
	assert.InDelta(t, 90, EnclosedAngle(V(1, 0), V(0, 3)), 1e-6)
	assert.InDelta(t, 0, EnclosedAngle(V(2, 2), V(1, 1)), 1e-3)
}

func TestScalarHelpers(t *testing.T) {
	assert.True(t, EqualDoubles(1, 1+Epsilon/2))
	assert.False(t, EqualDoubles(1, 1+2*Epsilon))

	assert.InDelta(t, Pi, DegreesToRadians(180), 1e-12)
	assert.InDelta(t, 57.29578, RadiansToDegrees(1), 1e-4)

	assert.True(t, Overlapping(0, 1, 1, 2))
	assert.False(t, Overlapping(0, 1, 1.5, 2))

	assert.Equal(t, 1.0, ClampOnRange(5, 0, 1))
	assert.Equal(t, 0.0, ClampOnRange(-5, 0, 1))
	assert.Equal(t, 0.5, ClampOnRange(0.5, 0, 1))

	assert.Equal(t, -1.0, Minimum(-1, 3))
	assert.Equal(t, 3.0, Maximum(-1, 3))
}

func TestVectorIsFinite(t *testing.T) {
	assert.True(t, V(1, 2).IsFinite())
	assert.False(t, V(math.NaN(), 0).IsFinite())
	assert.False(t, V(0, math.Inf(-1)).IsFinite())
}

package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFac(t *testing.T) {
	require.Equal(t, int64(1), Fac(0))
	require.Equal(t, int64(1), Fac(1))
	require.Equal(t, int64(120), Fac(5))
	require.Equal(t, int64(2432902008176640000), Fac(20))

	for n := range FacTable {
		got, ok := FacLookup(n)
		require.True(t, ok)
		require.Equal(t, Fac(int64(n)), got, "FacTable[%d]", n)
	}

	_, ok := FacLookup(21)
	require.False(t, ok)
	_, ok = FacLookup(-1)
	require.False(t, ok)
}

func TestClamp(t *testing.T) {
	t.Run("below range", func(t *testing.T) {
		require.Equal(t, float32(0), Clamp[float32](0, 10, -10002022020))
		require.Equal(t, float32(0), Clamp[float32](0, 10, -1e10))
	})
	t.Run("above range", func(t *testing.T) {
		require.Equal(t, float32(10), Clamp[float32](0, 10, 1e10))
	})
	t.Run("inside range", func(t *testing.T) {
		require.Equal(t, float32(5), Clamp[float32](0, 10, 5))
	})
	t.Run("integers", func(t *testing.T) {
		require.Equal(t, 3, Clamp(1, 3, 7))
		require.Equal(t, 1, Clamp(1, 3, -7))
	})
}

func TestLogarithms(t *testing.T) {
	require.InDelta(t, 2.0, Log(100), 1e-5)
	require.InDelta(t, 10.0, Log2(1024), 1e-5)
	require.InDelta(t, 1.0, Ln(float32(m.E)), 1e-6)
}

func TestTrigWrappers(t *testing.T) {
	require.InDelta(t, 0.0, Sin(0), 1e-7)
	require.InDelta(t, 1.0, Cos(0), 1e-7)
	require.InDelta(t, 1.0, Tan(K_QUARTER_PI), 1e-6)
	require.InDelta(t, K_HALF_PI, Asin(1), 1e-6)
	require.InDelta(t, K_HALF_PI, Acos(0), 1e-6)
	require.InDelta(t, K_QUARTER_PI, Atan(1), 1e-6)
	require.InDelta(t, K_HALF_PI, Atan2(NewPoint2(0, 1)), 1e-6)
	require.InDelta(t, K_PI, Atan2(NewPoint2(-1, 0)), 1e-6)
	require.InDelta(t, 0.0, Sinh(0), 1e-7)
	require.InDelta(t, 1.0, Cosh(0), 1e-7)
	require.InDelta(t, 0.0, Tanh(0), 1e-7)
}

func TestPointDerivative(t *testing.T) {
	square := func(x float32) float32 { return x * x }
	require.InDelta(t, 6.0, PointDerivative(square, 3, 0.01), 1e-3)
	require.InDelta(t, 1.0, PointDerivative(Sin, 0, 0.001), 1e-3)

	require.True(t, m.IsNaN(float64(PointDerivative(square, 3, 0))))
}

func TestDegRad(t *testing.T) {
	require.InDelta(t, K_PI, DegToRad(180), 1e-6)
	require.InDelta(t, 90.0, RadToDeg(K_HALF_PI), 1e-4)
}

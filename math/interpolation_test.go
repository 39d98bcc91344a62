package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	require.Equal(t, float32(3), Lerp(2, 4, 0.5))
	require.Equal(t, float32(2), Lerp(2, 4, 0))
	require.Equal(t, float32(4), Lerp(2, 4, 1))
	require.Equal(t, float32(6), Lerp(2, 4, 2), "t is not clamped")

	for _, ab := range [][2]float32{{-3, 7}, {0, 1}, {100, -25}, {1e-3, 2e-3}} {
		require.Equal(t, ab[0], Lerp(ab[0], ab[1], 0))
		require.Equal(t, ab[1], Lerp(ab[0], ab[1], 1))
	}
}

func TestInvLerp(t *testing.T) {
	require.Equal(t, float32(0.5), InvLerp(2, 4, 3))

	for _, tt := range []float32{0, 0.1, 0.25, 0.5, 0.9, 1} {
		require.InDelta(t, tt, InvLerp(-3, 7, Lerp(-3, 7, tt)), 1e-5)
	}

	t.Run("degenerate range", func(t *testing.T) {
		require.True(t, m.IsNaN(float64(InvLerp(1, 1, 1))))
		require.True(t, m.IsInf(float64(InvLerp(1, 1, 2)), 1))
	})
}

func TestLerpVectors(t *testing.T) {
	require.Equal(t, NewVec2(1, 2), Lerp2(NewVec2(0, 0), NewVec2(2, 4), 0.5))
	require.Equal(t, NewVec3(2, 2, 2), Lerp3(NewVec3(0, 4, 2), NewVec3(4, 0, 2), 0.5))
}

func TestInvLerp2(t *testing.T) {
	a, b := NewVec2(0, 0), NewVec2(2, 4)

	got, ok := InvLerp2(a, b, NewVec2(1, 2))
	require.True(t, ok)
	require.Equal(t, float32(0.5), got)

	_, ok = InvLerp2(a, b, NewVec2(1, 3))
	require.False(t, ok, "axes disagree")

	_, ok = InvLerp2(NewVec2(0, 1), NewVec2(2, 1), NewVec2(1, 1))
	require.False(t, ok, "flat axis yields NaN")

	got, ok = InvLerp2Tolerance(a, b, NewVec2(1, 2.0001), 1e-3)
	require.True(t, ok)
	require.Equal(t, float32(0.5), got)

	_, ok = InvLerp2Tolerance(a, b, NewVec2(1, 3), 1e-3)
	require.False(t, ok)
}

func TestInvLerp3(t *testing.T) {
	a, b := NewVec3(0, 0, 0), NewVec3(4, 8, -4)

	got, ok := InvLerp3(a, b, NewVec3(1, 2, -1))
	require.True(t, ok)
	require.Equal(t, float32(0.25), got)

	_, ok = InvLerp3(a, b, NewVec3(1, 2, -2))
	require.False(t, ok)

	got, ok = InvLerp3Tolerance(a, b, NewVec3(1, 2.0001, -1.0001), 1e-3)
	require.True(t, ok)
	require.Equal(t, float32(0.25), got)
}

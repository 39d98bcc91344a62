package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotProduct(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"vec2", Dot(NewVec2(1, 1), NewVec2(1, 1)), 2},
		{"vec3", Dot(NewVec3(1, 2, 3), NewVec3(4, 5, 6)), 32},
		{"vec4", Dot(NewVec4(1, 2, 3, 4), NewVec4(5, 6, 7, 8)), 70},
		{"orthogonal", Dot(NewVec2(1, 0), NewVec2(0, 1)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestVAngle(t *testing.T) {
	t.Run("right angle", func(t *testing.T) {
		require.Equal(t, float32(m.Pi)/2.0, VAngle(NewVec2(1, 0), NewVec2(0, 1)))
	})
	t.Run("opposite", func(t *testing.T) {
		require.InDelta(t, K_PI, VAngle(NewVec3(1, 0, 0), NewVec3(-2, 0, 0)), 1e-6)
	})
	t.Run("same direction", func(t *testing.T) {
		require.InDelta(t, 0.0, VAngle(NewVec4(0, 0, 0, 3), NewVec4(0, 0, 0, 1)), 1e-6)
	})
	t.Run("zero vector is NaN", func(t *testing.T) {
		require.True(t, m.IsNaN(float64(VAngle(NewVec2Zero(), NewVec2(1, 0)))))
	})
}

func TestDist(t *testing.T) {
	require.Equal(t, float32(5), Dist(NewVec2(0, 0), NewVec2(3, 4)))
	require.Equal(t, float32(5), Dist(NewVec2(3, 4), NewVec2(0, 0)))
	require.Equal(t, float32(3), Dist(NewVec3(1, 2, 2), NewVec3(1, 2, 5)))
	require.Equal(t, float32(2), Dist(NewVec4(1, 1, 1, 1), NewVec4(2, 2, 2, 2)))
}

func TestCross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"z cross x", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"y cross x", NewVec3(0, 1, 0), NewVec3(1, 0, 0), NewVec3(0, 0, -1)},
		{"general", NewVec3(1, 2, 3), NewVec3(4, 5, 6), NewVec3(-3, 6, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Cross(tt.a, tt.b))
		})
	}

	c := Cross(NewVec3(1, 2, 3), NewVec3(4, 5, 6))
	require.Zero(t, Dot(c, NewVec3(1, 2, 3)))
	require.Zero(t, Dot(c, NewVec3(4, 5, 6)))
}

func TestVectorArithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, NewVec3(4, 10, 18), a.Mul(b))
	assert.Equal(t, NewVec3(4, 2.5, 2), b.Div(a))

	// operands are values and stay untouched
	assert.Equal(t, NewVec3(1, 2, 3), a)

	assert.Equal(t, NewVec2(4, 6), NewVec2(1, 2).Add(NewVec2(3, 4)))
	assert.Equal(t, NewVec2(-2, -2), NewVec2(1, 2).Sub(NewVec2(3, 4)))
	assert.Equal(t, NewVec4(2, 4, 6, 8), NewVec4(1, 2, 3, 4).MulScalar(2))
	assert.Equal(t, NewVec4(0, 0, 0, 0), NewVec4(1, 2, 3, 4).Sub(NewVec4(1, 2, 3, 4)))
}

func TestLengthAndNormalize(t *testing.T) {
	require.Equal(t, float32(5), NewVec2(3, 4).Length())
	require.Equal(t, float32(25), NewVec2(3, 4).LengthSquared())
	require.Equal(t, float32(3), NewVec3(1, 2, 2).Length())
	require.Equal(t, float32(2), NewVec4One().Length())

	require.InDelta(t, 1.0, NewVec2(3, 4).Normalize().Length(), 1e-6)
	require.InDelta(t, 1.0, NewVec3(1, 2, 2).Normalize().Length(), 1e-6)
	require.InDelta(t, 1.0, NewVec4(1, 2, 3, 4).Normalize().Length(), 1e-6)
	require.True(t, NewVec3(0, 0, 7).Normalize().Compare(NewVec3(0, 0, 1), K_FLOAT_EPSILON))

	t.Run("zero vector propagates NaN", func(t *testing.T) {
		n := NewVec3Zero().Normalize()
		require.True(t, m.IsNaN(float64(n.X)))
		require.True(t, m.IsNaN(float64(n.Y)))
		require.True(t, m.IsNaN(float64(n.Z)))
	})
}

func TestCompare(t *testing.T) {
	require.True(t, NewVec2(1, 1).Compare(NewVec2(1.05, 0.95), 0.1))
	require.False(t, NewVec2(1, 1).Compare(NewVec2(1.2, 1), 0.1))
	require.False(t, NewVec4(1, 1, 1, 1).Compare(NewVec4(1, 1, 1, 2), 0.5))
}

func TestVectorConversions(t *testing.T) {
	v := NewVec3(1, 2, 3)
	require.Equal(t, NewVec4(1, 2, 3, 9), v.ToVec4(9))
	require.Equal(t, v, NewVec4(1, 2, 3, 9).ToVec3())
	require.Equal(t, v, NewVec3FromVec4(NewVec4(1, 2, 3, 9)))
	require.Equal(t, NewVec2(0, 0), NewVec2Zero())
	require.Equal(t, NewVec3(1, 1, 1), NewVec3One())
}

package math

// Lerp returns the point a fraction t of the way from a to b.
// t is not clamped, so values outside [0, 1] extrapolate.
func Lerp(a, b, t float32) float32 {
	return (1.0-t)*a + t*b
}

// InvLerp returns the fraction t for which Lerp(a, b, t) == value.
// When a == b the result is NaN or ±Inf.
func InvLerp(a, b, value float32) float32 {
	return (value - a) / (b - a)
}

// Lerp2 interpolates every component of a and b by the same fraction t.
func Lerp2(a, b Vec2, t float32) Vec2 {
	return a.MulScalar(1.0 - t).Add(b.MulScalar(t))
}

// Lerp3 interpolates every component of a and b by the same fraction t.
func Lerp3(a, b Vec3, t float32) Vec3 {
	return a.MulScalar(1.0 - t).Add(b.MulScalar(t))
}

/**
 * @brief Finds the single fraction t for which Lerp2(a, b, t) == value.
 *
 * The fraction is computed per axis and only returned when both axes agree
 * exactly. Any rounding difference between the axes, or an axis where a and b
 * coincide, reports ok == false. Use InvLerp2Tolerance to accept a margin.
 */
func InvLerp2(a, b, value Vec2) (float32, bool) {
	tx := InvLerp(a.X, b.X, value.X)
	ty := InvLerp(a.Y, b.Y, value.Y)

	if tx == ty {
		return tx, true
	}
	return 0, false
}

// InvLerp3 is the three dimensional InvLerp2: all three axes must agree exactly.
func InvLerp3(a, b, value Vec3) (float32, bool) {
	tx := InvLerp(a.X, b.X, value.X)
	ty := InvLerp(a.Y, b.Y, value.Y)
	tz := InvLerp(a.Z, b.Z, value.Z)

	if tx == ty && ty == tz {
		return tx, true
	}
	return 0, false
}

// InvLerp2Tolerance behaves like InvLerp2 but accepts per-axis fractions that
// differ by at most tolerance. The returned fraction is the x axis one.
func InvLerp2Tolerance(a, b, value Vec2, tolerance float32) (float32, bool) {
	tx := InvLerp(a.X, b.X, value.X)
	ty := InvLerp(a.Y, b.Y, value.Y)

	if Abs(tx-ty) <= tolerance {
		return tx, true
	}
	return 0, false
}

// InvLerp3Tolerance behaves like InvLerp3 but accepts per-axis fractions that
// differ from the x axis one by at most tolerance.
func InvLerp3Tolerance(a, b, value Vec3, tolerance float32) (float32, bool) {
	tx := InvLerp(a.X, b.X, value.X)
	ty := InvLerp(a.Y, b.Y, value.Y)
	tz := InvLerp(a.Z, b.Z, value.Z)

	if Abs(tx-ty) <= tolerance && Abs(tx-tz) <= tolerance {
		return tx, true
	}
	return 0, false
}

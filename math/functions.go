package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float32 = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI float32 = 1.0 / K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float32 = 1.41421356237309504880
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief ln(10), used by Log. */
	K_LN_10 float32 = 2.30258509299
	/** @brief ln(2), used by Log2. */
	K_LN_2 float32 = 0.69314718056
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

// FacTable holds 0! through 20!, the largest factorials that fit an int64.
var FacTable = [21]int64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800,
	39916800, 479001600, 6227020800, 87178291200, 1307674368000,
	20922789888000, 355687428096000, 6402373705728000,
	121645100408832000, 2432902008176640000,
}

/**
 * @brief Computes n! recursively.
 *
 * There is no overflow guard: only 0 <= n <= 20 gives a correct result and a
 * negative n never terminates. Keeping n in range is up to the caller.
 */
func Fac(n int64) int64 {
	if n == 0 {
		return 1
	}
	return n * Fac(n-1)
}

// FacLookup returns n! from FacTable. ok is false when n is outside [0, 20].
func FacLookup(n int) (int64, bool) {
	if n < 0 || n >= len(FacTable) {
		return 0, false
	}
	return FacTable[n], true
}

/**
 * Note that these are here so callers working in float32 don't have to
 * convert back and forth to float64 everywhere.
 */
func Sqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func Ln(x float32) float32 {
	return float32(m.Log(float64(x)))
}

// Log is the base-10 logarithm, computed as ln(x)/ln(10).
func Log(x float32) float32 {
	return Ln(x) / K_LN_10
}

// Log2 is the base-2 logarithm, computed as ln(x)/ln(2).
func Log2(x float32) float32 {
	return Ln(x) / K_LN_2
}

func Sin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func Asin(x float32) float32 {
	return float32(m.Asin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func Acos(x float32) float32 {
	return float32(m.Acos(float64(x)))
}

func Tan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

func Atan(x float32) float32 {
	return float32(m.Atan(float64(x)))
}

// Atan2 returns the angle of p measured from the positive x axis.
func Atan2(p Point2) float32 {
	return float32(m.Atan2(float64(p.Y), float64(p.X)))
}

func Sinh(x float32) float32 {
	return float32(m.Sinh(float64(x)))
}

func Cosh(x float32) float32 {
	return float32(m.Cosh(float64(x)))
}

func Tanh(x float32) float32 {
	return float32(m.Tanh(float64(x)))
}

func Abs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

func Pow(x, y float32) float32 {
	return float32(m.Pow(float64(x), float64(y)))
}

/**
 * @brief Approximates f'(x) with a central difference of step h.
 *
 * @param f The function to differentiate.
 * @param x The point at which to differentiate.
 * @param h The step. A zero step yields NaN.
 * @return (f(x+h) - f(x-h)) / 2h
 */
func PointDerivative(f func(float32) float32, x, h float32) float32 {
	return (f(x+h) - f(x-h)) / (2.0 * h)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

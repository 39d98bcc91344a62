package math

// ------------------------------------------
// Cubic Bézier
// ------------------------------------------

/**
 * @brief Evaluates the cubic Bézier curve with control points p0..p3 at t.
 *
 * t is not clamped: values outside [0, 1] extrapolate the curve. The
 * Bernstein weights are used in expanded polynomial form so results match
 * reference tables bit for bit.
 *
 * @return The point on the curve at t.
 */
func Bezier2(p0, p1, p2, p3 Point2, t float32) Point2 {
	tSquared := t * t
	tCubed := tSquared * t
	w0, w1, w2, w3 := cubicWeights(t, tSquared, tCubed)

	v := p0.ToVec().MulScalar(w0).
		Add(p1.ToVec().MulScalar(w1)).
		Add(p2.ToVec().MulScalar(w2)).
		Add(p3.ToVec().MulScalar(w3))
	return Point2FromVec(v)
}

/**
 * @brief Evaluates the cubic Bézier curve with control points p0..p3 at t.
 *
 * @see Bezier2
 */
func Bezier3(p0, p1, p2, p3 Point3, t float32) Point3 {
	tSquared := t * t
	tCubed := tSquared * t
	w0, w1, w2, w3 := cubicWeights(t, tSquared, tCubed)

	v := p0.ToVec().MulScalar(w0).
		Add(p1.ToVec().MulScalar(w1)).
		Add(p2.ToVec().MulScalar(w2)).
		Add(p3.ToVec().MulScalar(w3))
	return Point3FromVec(v)
}

func cubicWeights(t, tSquared, tCubed float32) (float32, float32, float32, float32) {
	return -tCubed + 3.0*tSquared - 3.0*t + 1.0,
		3.0*tCubed - 6.0*tSquared + 3.0*t,
		-3.0*tCubed + 3.0*tSquared,
		tCubed
}

// ------------------------------------------
// Bézier of arbitrary degree
// ------------------------------------------

// NewBezierCurve2 copies points into a new curve.
func NewBezierCurve2(points []Point2) BezierCurve2 {
	p := make([]Point2, len(points))
	copy(p, points)
	return BezierCurve2{Points: p, Degree: len(p)}
}

// NewBezierCurve3 copies points into a new curve.
func NewBezierCurve3(points []Point3) BezierCurve3 {
	p := make([]Point3, len(points))
	copy(p, points)
	return BezierCurve3{Points: p, Degree: len(p)}
}

/**
 * @brief Evaluates the curve at t with De Casteljau's algorithm.
 *
 * A curve without control points evaluates to the origin. The control points
 * are left untouched.
 */
func (b BezierCurve2) Evaluate(t float32) Point2 {
	if len(b.Points) == 0 {
		return Point2{}
	}
	work := make([]Vec2, len(b.Points))
	for i, p := range b.Points {
		work[i] = p.ToVec()
	}
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = Lerp2(work[i], work[i+1], t)
		}
	}
	return Point2FromVec(work[0])
}

// Evaluate returns the point on the curve at t, see BezierCurve2.Evaluate.
func (b BezierCurve3) Evaluate(t float32) Point3 {
	if len(b.Points) == 0 {
		return Point3{}
	}
	work := make([]Vec3, len(b.Points))
	for i, p := range b.Points {
		work[i] = p.ToVec()
	}
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = Lerp3(work[i], work[i+1], t)
		}
	}
	return Point3FromVec(work[0])
}

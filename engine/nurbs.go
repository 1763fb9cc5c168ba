package engine

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// This file holds the low-level NURBS mathematics the Spline primitive and
// the ellipse/spline offset refit path (C10) are built on: span finding,
// basis function evaluation, and least-squares curve fitting. No NURBS
// library appears anywhere in the retrieval pack this module was built
// from, so these are implemented directly against the textbook recursive
// definition (Piegl & Tiller, "The NURBS Book") rather than wrapping a
// third-party curve library; gonum/mat supplies the linear-algebra solve
// used by fitNURBS.

// findSpan returns the knot span index i such that knots[i] <= u <
// knots[i+1] (clamped at the right end so u == the last knot value still
// resolves to a valid span), for a curve of degree p with n+1 = len(knots)
// - p - 1 control points.
func findSpan(n, p int, u float64, knots []float64) int {
	if u >= knots[n+1] {
		return n
	}
	if u <= knots[p] {
		return p
	}
	lo, hi := p, n+1
	mid := (lo + hi) / 2
	for u < knots[mid] || u >= knots[mid+1] {
		if u < knots[mid] {
			hi = mid
		} else {
			lo = mid
		}
		mid = (lo + hi) / 2
	}
	return mid
}

// basisFuns evaluates the p+1 non-vanishing B-spline basis functions at u
// in the knot span `span`, via the standard Cox-de Boor recursion.
func basisFuns(span, p int, u float64, knots []float64) []float64 {
	N := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	N[0] = 1.0
	for j := 1; j <= p; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			denom := right[r+1] + left[j-r]
			var temp float64
			if math.Abs(denom) < 1e-15 {
				temp = 0
			} else {
				temp = N[r] / denom
			}
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return N
}

// evalNURBS evaluates the rational curve point at raw parameter u (not
// normalized to [0, 1]) given control points, weights (nil means all 1,
// i.e. a non-rational B-spline), and a clamped knot vector.
func evalNURBS(u float64, degree int, controlPoints []Point, weights []float64, knots []float64) Point {
	n := len(controlPoints) - 1
	span := findSpan(n, degree, u, knots)
	basis := basisFuns(span, degree, u, knots)

	var sumX, sumY, sumW float64
	for j := 0; j <= degree; j++ {
		idx := span - degree + j
		w := 1.0
		if weights != nil {
			w = weights[idx]
		}
		bw := basis[j] * w
		sumX += bw * controlPoints[idx].X
		sumY += bw * controlPoints[idx].Y
		sumW += bw
	}
	if math.Abs(sumW) < 1e-15 {
		return Point{}
	}
	return Point{sumX / sumW, sumY / sumW}
}

// derivNURBS approximates C'(u) by central finite difference, scaled to
// the curve's own knot-domain size so the step is stable regardless of
// the parameterization's absolute scale.
func derivNURBS(u float64, degree int, controlPoints []Point, weights []float64, knots []float64) Point {
	n := len(controlPoints) - 1
	domainLo, domainHi := knots[degree], knots[n+1]
	span := domainHi - domainLo
	if span < 1e-12 {
		span = 1
	}
	h := span * 1e-5
	uLo, uHi := u-h, u+h
	if uLo < domainLo {
		uLo = domainLo
	}
	if uHi > domainHi {
		uHi = domainHi
	}
	if uHi-uLo < 1e-12 {
		return Point{}
	}
	p0 := evalNURBS(uLo, degree, controlPoints, weights, knots)
	p1 := evalNURBS(uHi, degree, controlPoints, weights, knots)
	return p1.Sub(p0).Scale(1 / (uHi - uLo))
}

// chordLengthParams returns normalized [0,1] parameters for each point in
// pts using chord-length parameterization, the standard choice for curve
// fitting (Piegl & Tiller, ch. 9).
func chordLengthParams(pts []Point) []float64 {
	n := len(pts)
	params := make([]float64, n)
	if n < 2 {
		return params
	}
	total := 0.0
	for i := 1; i < n; i++ {
		total += pts[i-1].DistanceTo(pts[i])
	}
	if total < 1e-12 {
		for i := range params {
			params[i] = float64(i) / float64(n-1)
		}
		return params
	}
	acc := 0.0
	for i := 1; i < n; i++ {
		acc += pts[i-1].DistanceTo(pts[i])
		params[i] = acc / total
	}
	return params
}

// clampedUniformKnots builds a clamped, non-decreasing knot vector for a
// curve of the given degree with numControlPoints control points: degree+1
// repeated knots at each end, uniformly spaced interior knots.
func clampedUniformKnots(degree, numControlPoints int) []float64 {
	n := numControlPoints - 1
	m := n + degree + 1
	knots := make([]float64, m+1)
	for i := 0; i <= degree; i++ {
		knots[i] = 0
		knots[m-i] = 1
	}
	interior := m - 2*degree - 1
	for i := 1; i <= interior; i++ {
		knots[degree+i] = float64(i) / float64(interior+1)
	}
	return knots
}

// fitNURBS fits a non-rational clamped NURBS curve of the given degree
// through pts by least squares: a fixed number of control points
// (numControlPoints) is solved for via the normal equations, built with
// gonum/mat, against chord-length-parameterized basis rows. Returns the
// fitted Spline and the RMS fit error (§4.10's refit-quality signal).
func fitNURBS(pts []Point, degree, numControlPoints int) (Spline, float64) {
	if numControlPoints < degree+1 {
		numControlPoints = degree + 1
	}
	if numControlPoints > len(pts) {
		numControlPoints = len(pts)
	}
	knots := clampedUniformKnots(degree, numControlPoints)
	params := chordLengthParams(pts)

	rows := len(pts)
	cols := numControlPoints
	basisMat := mat.NewDense(rows, cols, nil)
	for i, u := range params {
		uu := u
		if uu >= 1 {
			uu = 1 - 1e-12
		}
		n := cols - 1
		span := findSpan(n, degree, uu, knots)
		basis := basisFuns(span, degree, uu, knots)
		for j := 0; j <= degree; j++ {
			idx := span - degree + j
			basisMat.Set(i, idx, basis[j])
		}
	}

	bx := mat.NewVecDense(rows, nil)
	by := mat.NewVecDense(rows, nil)
	for i, p := range pts {
		bx.SetVec(i, p.X)
		by.SetVec(i, p.Y)
	}

	var ata mat.Dense
	ata.Mul(basisMat.T(), basisMat)
	var atbX, atbY mat.VecDense
	atbX.MulVec(basisMat.T(), bx)
	atbY.MulVec(basisMat.T(), by)

	var luDecomp mat.LU
	luDecomp.Factorize(&ata)
	var solX, solY mat.VecDense
	controlPoints := make([]Point, cols)
	if err := luDecomp.SolveVecTo(&solX, false, &atbX); err != nil {
		// Singular normal-equations matrix (degenerate/collinear input):
		// fall back to the raw sample points as control points.
		for i := range controlPoints {
			src := i * (len(pts) - 1) / max(cols-1, 1)
			controlPoints[i] = pts[src]
		}
	} else {
		_ = luDecomp.SolveVecTo(&solY, false, &atbY)
		for i := 0; i < cols; i++ {
			controlPoints[i] = Point{solX.AtVec(i), solY.AtVec(i)}
		}
	}

	sp := Spline{Degree: degree, ControlPoints: controlPoints, Knots: knots}

	rms := 0.0
	for i, u := range params {
		uu := u
		if uu >= 1 {
			uu = 1 - 1e-12
		}
		domainU := knots[degree] + uu*(knots[len(knots)-degree-1]-knots[degree])
		fitted := evalNURBS(domainU, degree, controlPoints, nil, knots)
		d := fitted.DistanceTo(pts[i])
		rms += d * d
	}
	rms = math.Sqrt(rms / float64(max(rows, 1)))

	return sp, rms
}

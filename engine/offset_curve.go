package engine

const (
	offsetRefitTolerance    = 0.5
	offsetRefitMaxPasses    = 5
	offsetRefitInitialCount = 64
)

// offsetCurveByRefit offsets an Ellipse or Spline by sampling it densely,
// pushing each sample point along its local normal by distance, and
// refitting a NURBS curve through the displaced points with fitNURBS
// (§4.10: "NURBS refit for ellipse/spline"). The result is always a
// Spline, even when the input was an Ellipse — an offset ellipse is not
// itself an ellipse in general, so refitting to a spline is the only
// representation that can actually follow the true offset curve.
//
// If the refit RMS error exceeds tolerance, sampling density is doubled
// and the fit retried, for at most offsetRefitMaxPasses passes in total,
// before giving up
// and reporting the residual as a diagnostic.
func offsetCurveByRefit(p Primitive, distance float64) (Primitive, []Diagnostic) {
	sampleCount := offsetRefitInitialCount
	degree := 3

	var sp Spline
	var rms float64
	for pass := 0; pass < offsetRefitMaxPasses; pass++ {
		displaced := displaceSamples(p, distance, sampleCount)
		numControl := len(displaced) / 3
		if numControl < degree+1 {
			numControl = degree + 1
		}
		sp, rms = fitNURBS(displaced, degree, numControl)
		sp.FitPoints = displaced
		if rms <= offsetRefitTolerance {
			return sp, nil
		}
		sampleCount *= 2
	}

	diags := []Diagnostic{newDiagnostic(NoSolution, "",
		"offset curve refit still exceeded tolerance after the maximum number of resampling passes; result may not track the true offset closely")}
	return sp, diags
}

func displaceSamples(p Primitive, distance float64, sampleCount int) []Point {
	pts := p.Sample(sampleCount)
	displaced := make([]Point, len(pts))
	for i, pt := range pts {
		t := float64(i) / float64(sampleCount)
		tangent, err := p.TangentAt(clampTangentParam(t))
		if err != nil {
			displaced[i] = pt
			continue
		}
		normal := tangent.Rotate90CCW()
		displaced[i] = pt.Add(normal.Scale(distance))
	}
	return displaced
}

func clampTangentParam(t float64) float64 {
	if t <= 0 {
		return 1e-6
	}
	if t >= 1 {
		return 1 - 1e-6
	}
	return t
}

package geom2d

import "math"

// LineIntersection treats (a1,a2) and (b1,b2) as infinite lines and returns
// their intersection point. It does no segment-bound checking; it is the
// building block for callers that need unbounded results.
//
// Lines whose determinant is within Tolerance of zero are treated as
// parallel and report no intersection.
func LineIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	det := (a1.X-a2.X)*(b1.Y-b2.Y) - (a1.Y-a2.Y)*(b1.X-b2.X)
	if math.Abs(det) <= Tolerance {
		// The lines are very close to parallel
		return Point{}, false
	}
	invDet := 1 / det
	a := a1.X*a2.Y - a1.Y*a2.X
	b := b1.X*b2.Y - b1.Y*b2.X
	return Point{
		(a*(b1.X-b2.X) - b*(a1.X-a2.X)) * invDet,
		(a*(b1.Y-b2.Y) - b*(a1.Y-a2.Y)) * invDet,
	}, true
}

// acceptBand is the open interval of parametric values accepted by the
// general branch of the segment intersection core. The float and integer
// variants deliberately use different bands, so the band is an explicit
// policy value rather than a constant.
type acceptBand struct {
	lo, hi float64
}

// segmentIntersectionCore runs the shared cross-product algorithm for both
// coordinate families. Degenerate-input rejection differs per family and is
// handled by the wrappers before this is called.
func segmentIntersectionCore(a1, b1, a2, b2 Point, band acceptBand) (Point, bool) {
	v1 := b1.Sub(a1)
	v2 := b2.Sub(a2)

	v1CrossV2 := v1.Cross(v2)
	a2a1CrossV1 := a2.Sub(a1).Cross(v1)

	if v1CrossV2 == 0 {
		if a2a1CrossV1 != 0 {
			// Parallel but not collinear
			return Point{}, false
		}

		// Collinear. Project each endpoint onto the other segment and report
		// the first one strictly inside. The check order is fixed; downstream
		// tie-breaking depends on it. Only a single point is ever reported,
		// even when the overlap is a whole sub-segment.
		v1SqrLen := v1.LengthSquared()

		// check if a2 is between a1 and b1
		v1DotA2A1 := v1.Dot(a2.Sub(a1))
		if v1DotA2A1 > 0 && v1DotA2A1 < v1SqrLen {
			return a2, true
		}

		// check if b2 is between a1 and b1
		v1DotB2A1 := v1.Dot(b2.Sub(a1))
		if v1DotB2A1 > 0 && v1DotB2A1 < v1SqrLen {
			return b2, true
		}

		v2SqrLen := v2.LengthSquared()

		// check if a1 is between a2 and b2
		v2DotA1A2 := v2.Dot(a1.Sub(a2))
		if v2DotA1A2 > 0 && v2DotA1A2 < v2SqrLen {
			return a1, true
		}

		// check if b1 is between a2 and b2
		v2DotB1A2 := v2.Dot(b1.Sub(a2))
		if v2DotB1A2 > 0 && v2DotB1A2 < v2SqrLen {
			return b1, true
		}

		// Collinear but disjoint, or touching only at endpoints
		return Point{}, false
	}

	t := a2.Sub(a1).Cross(v2) / v1CrossV2
	u := a2a1CrossV1 / v1CrossV2

	if t > band.lo && t < band.hi && u > band.lo && u < band.hi {
		return a1.Add(v1.Mul(t)), true
	}

	return Point{}, false
}

// SegmentIntersection reports where segment [a1,b1] crosses the interior of
// segment [a2,b2].
//
// Endpoint touches are deliberately excluded, including near-endpoint
// touches within the acceptance band: sweep consumers need to distinguish
// "segments cross in their interior" from "segments merely share a vertex".
// Collinear overlapping segments report a single interior endpoint (see
// segmentIntersectionCore), never the overlap interval. A second segment of
// (fuzzy) zero length reports no intersection.
func SegmentIntersection(a1, b1, a2, b2 Point) (Point, bool) {
	if EqualPoints(b2.Sub(a2), Point{}) {
		return Point{}, false
	}
	return segmentIntersectionCore(a1, b1, a2, b2, acceptBand{1e-5, 0.9999})
}

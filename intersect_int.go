package geom2d

// SegmentIntersectionInt is SegmentIntersection over exact integer
// coordinates. It runs the same core algorithm after promoting to float64
// (exact for int32), then truncates the result toward zero.
//
// Two deliberate differences from the float variant:
//
//  1. Any pairwise-coincident input vertices reject immediately. A
//     shared-vertex configuration is never reported as an intersection.
//  2. The acceptance band is the plain open interval (0, 1) with no epsilon
//     padding. Keep it that way; downstream tessellation depends on the two
//     variants' exact bands.
func SegmentIntersectionInt(a1, b1, a2, b2 IntPoint) (IntPoint, bool) {
	if a1 == a2 || a1 == b1 || b1 == a2 || b1 == b2 {
		return IntPoint{}, false
	}

	fa1, fb1 := a1.Float(), b1.Float()
	fa2, fb2 := a2.Float(), b2.Float()
	if fb2.Sub(fa2) == (Point{}) {
		return IntPoint{}, false
	}

	p, ok := segmentIntersectionCore(fa1, fb1, fa2, fb2, acceptBand{0, 1})
	if !ok {
		return IntPoint{}, false
	}
	// Truncation, not rounding: the cast matches the snapping behavior the
	// integer family promises.
	return IntPoint{int32(p.X), int32(p.Y)}, true
}

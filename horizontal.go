package geom2d

import "math"

// LineHorizontalIntersection is the x value where the line through a and b
// crosses the horizontal line at height y.
//
// If the segment is horizontal, pick the biggest x value (the right-most
// point). That's an arbitrary decision that serves the purpose of y-monotone
// decomposition.
func LineHorizontalIntersection(a, b Point, y float64) float64 {
	vx := b.X - a.X
	vy := b.Y - a.Y
	if vy == 0 {
		return math.Max(a.X, b.X)
	}
	return a.X + (y-a.Y)*vx/vy
}

// LineHorizontalIntersectionInt is the integer-family variant with the same
// horizontal-segment policy. The numerator is widened to int64 before the
// division so the multiplication cannot overflow int32.
func LineHorizontalIntersectionInt(a, b IntPoint, y int32) int32 {
	vx := b.X - a.X
	vy := b.Y - a.Y
	if vy == 0 {
		if a.X > b.X {
			return a.X
		}
		return b.X
	}
	return int32(int64(a.X) + int64(y-a.Y)*int64(vx)/int64(vy))
}

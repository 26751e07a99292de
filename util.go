package geom2d

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, scalar equality is tolerance
// based. Without this, nearly-parallel segments produce absurdly thin slivers
// in downstream decompositions.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// EqualPoints is coordinate-wise fuzzy equality.
func EqualPoints(a, b Point) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// Below is the canonical point ordering used by sweep algorithms: points are
// ordered by decreasing Y, with ties broken by decreasing X. The tie-break
// simulates a slightly rotated coordinate system, so downstream code can
// assume no two distinct points share a Y value.
//
// The comparison is exact, not fuzzy. A tolerance here would break
// transitivity, and the ordering must be a strict weak order.
func (p Point) Below(q Point) bool {
	return p.Y > q.Y || (p.Y == q.Y && p.X > q.X)
}

// Below is the same ordering over exact integer coordinates.
func (p IntPoint) Below(q IntPoint) bool {
	return p.Y > q.Y || (p.Y == q.Y && p.X > q.X)
}

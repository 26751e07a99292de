// Exact and tolerance-robust 2D geometric primitives.
//
// This package is the foundation layer for sweep-based polygon processing
// (y-monotone decomposition, trapezoidation, tessellation). It provides
// vector angle computation, infinite-line and bounded-segment intersection,
// and horizontal-scanline intersection, with an explicit policy for every
// degenerate case: parallel segments, collinear overlap, shared vertices,
// horizontal edges.
//
// Two coordinate families are supported. The float64 family absorbs rounding
// with a fixed tolerance, while the int32 family gives deterministic results
// for algorithms that need exact ordering after snapping to a grid. The two
// run the same intersection algorithm with deliberately different acceptance
// policies; see SegmentIntersection and SegmentIntersectionInt.
//
// Every function is pure and stateless. Absence of an intersection is an
// expected outcome, reported comma-ok style, never as an error.
package geom2d

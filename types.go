package geom2d

import (
	"fmt"
	"math"
)

// Point is a position or displacement in the plane. The two uses are
// interchangeable; there is no separate vector type. Points are plain
// values with no identity, so they compare by value only (exact or fuzzy).
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross is the 2D cross product, the z component of the 3D cross product
// with both z values zero. Its sign tells you which side of p the vector q
// points to.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// IntPoint is a point with exact integer coordinates, for algorithms that
// snap to a grid and then need deterministic, bit-stable answers.
type IntPoint struct {
	X, Y int32
}

// Float promotes to the float64 family. The promotion is exact for any
// int32 coordinate.
func (p IntPoint) Float() Point {
	return Point{float64(p.X), float64(p.Y)}
}

// Segment is a pair of endpoints. It is a convenience wrapper; all the
// geometry lives in the free functions it delegates to.
type Segment struct {
	Start, End Point
}

// Vector is the displacement from Start to End.
func (s Segment) Vector() Point {
	return s.End.Sub(s.Start)
}

func (s Segment) IsHorizontal() bool {
	return s.End.Y == s.Start.Y
}

// HorizontalIntersection solves for the x value of the segment's line at
// height y. See LineHorizontalIntersection for the horizontal-segment
// policy.
func (s Segment) HorizontalIntersection(y float64) float64 {
	return LineHorizontalIntersection(s.Start, s.End, y)
}

// Intersection reports where s crosses the interior of other, if it does.
func (s Segment) Intersection(other Segment) (Point, bool) {
	return SegmentIntersection(s.Start, s.End, other.Start, other.End)
}

func (s Segment) String() string {
	return fmt.Sprintf("(%v, %v)-(%v, %v)", s.Start.X, s.Start.Y, s.End.X, s.End.Y)
}

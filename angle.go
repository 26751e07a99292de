package geom2d

import "math"

// DirectedAngle is the angle swept clockwise (with y pointing down) from
// vector a to vector b, normalized to [0, 2*Pi).
//
// ex: DirectedAngle((0,1), (1,0)) = 3/2 Pi rad
//
//	 x       __
//	0-->    /  \
//	y|      |  x--> b
//	 v       \ |a
//	           v
//
// Zero-length input is a contract violation; the result is unspecified (and
// typically NaN). Callers must not pass it.
func DirectedAngle(a, b Point) float64 {
	angle := math.Atan2(b.Y, b.X) - math.Atan2(a.Y, a.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// DirectedAngleAbout is DirectedAngle with a and b taken relative to center.
func DirectedAngleAbout(center, a, b Point) float64 {
	return DirectedAngle(a.Sub(center), b.Sub(center))
}

// AngleBetween is the signed angle from u to v in [-Pi, Pi], positive when v
// is counter-clockwise from u. Zero-length input is a contract violation.
func AngleBetween(u, v Point) float64 {
	cos := u.Dot(v) / (u.Length() * v.Length())
	// Rounding can push the ratio just past the acos domain for parallel
	// vectors, which would yield NaN.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	result := math.Acos(cos)
	if u.Cross(v) < 0 {
		result = -result
	}
	return result
}

// Tangent is the unit vector perpendicular to v, rotated 90 degrees.
// Undefined for zero-length v.
func Tangent(v Point) Point {
	l := v.Length()
	return Point{-v.Y / l, v.X / l}
}

// EllipseCenterToPoint maps a point on an axis-aligned ellipse into unit
// circle space, recovering the vector whose angle parameterizes the point.
func EllipseCenterToPoint(center, ellipsePoint, radii Point) Point {
	return Point{
		(ellipsePoint.X - center.X) / radii.X,
		(ellipsePoint.Y - center.Y) / radii.Y,
	}
}

// EllipsePointFromAngle is the inverse mapping: the point on the ellipse at
// the given unit-circle angle.
func EllipsePointFromAngle(center, radii Point, angle float64) Point {
	return Point{
		center.X + radii.X*math.Cos(angle),
		center.Y + radii.Y*math.Sin(angle),
	}
}

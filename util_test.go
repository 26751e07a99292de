package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+1e-7))
	assert.True(t, Equal(1, 1-1e-7))
	// The tolerance itself is inclusive
	assert.True(t, Equal(0, Tolerance))
	assert.False(t, Equal(0, 2e-6))
	assert.False(t, Equal(1, 1.1))
}

func TestEqualPoints(t *testing.T) {
	assert.True(t, EqualPoints(Point{1, 2}, Point{1, 2}))
	assert.True(t, EqualPoints(Point{1, 2}, Point{1 + 1e-7, 2 - 1e-7}))
	assert.False(t, EqualPoints(Point{1, 2}, Point{1.1, 2}))
	assert.False(t, EqualPoints(Point{1, 2}, Point{1, 2.1}))
}

func TestBelow(t *testing.T) {
	t.Run("Orders by decreasing y", func(t *testing.T) {
		assert.True(t, Point{0, 1}.Below(Point{0, 0}))
		assert.False(t, Point{0, 0}.Below(Point{0, 1}))
	})

	t.Run("Breaks y ties by decreasing x", func(t *testing.T) {
		assert.True(t, Point{1, 5}.Below(Point{0, 5}))
		assert.False(t, Point{0, 5}.Below(Point{1, 5}))
	})

	t.Run("Is irreflexive", func(t *testing.T) {
		for _, p := range []Point{{0, 0}, {1, -2}, {-3.5, 7}} {
			assert.False(t, p.Below(p))
		}
	})

	t.Run("Is a strict weak order", func(t *testing.T) {
		// Exhaustively check trichotomy and transitivity over a small grid,
		// including equal-y and equal-x configurations.
		var points []Point
		for x := -1.0; x <= 1; x++ {
			for y := -1.0; y <= 1; y++ {
				points = append(points, Point{x, y})
			}
		}
		for _, a := range points {
			for _, b := range points {
				if a != b {
					assert.NotEqual(t, a.Below(b), b.Below(a), "exactly one of a<b, b<a must hold for %v, %v", a, b)
				}
				for _, c := range points {
					if a.Below(b) && b.Below(c) {
						assert.True(t, a.Below(c), "transitivity violated for %v, %v, %v", a, b, c)
					}
				}
			}
		}
	})
}

func TestBelowInt(t *testing.T) {
	assert.True(t, IntPoint{0, 1}.Below(IntPoint{0, 0}))
	assert.False(t, IntPoint{0, 0}.Below(IntPoint{0, 1}))
	assert.True(t, IntPoint{1, 5}.Below(IntPoint{0, 5}))
	assert.False(t, IntPoint{0, 5}.Below(IntPoint{1, 5}))
	assert.False(t, IntPoint{3, 3}.Below(IntPoint{3, 3}))
}

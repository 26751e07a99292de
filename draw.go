package geom2d

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/sweepline/geom2d/dbg"
)

// Padding around the scene so points near the bounds stay visible
const drawPadding = 20

// DrawSegments renders a segment set and a set of marked points (typically
// computed intersections) to a PNG. This is a debugging aid for eyeballing
// intersection output; each segment gets a readable name next to its
// midpoint.
func DrawSegments(path string, segs []Segment, marks []Point, scale float64) error {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, seg := range segs {
		for _, p := range []Point{seg.Start, seg.End} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, seg := range segs {
		c.MoveTo(seg.Start.X, seg.Start.Y)
		c.LineTo(seg.End.X, seg.End.Y)
		c.Stroke()
	}

	c.SetRGB(1, 0, 0)
	for _, p := range marks {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	// Labels are drawn in device space, or the flip would mirror the text.
	// Apply the same transform by hand instead.
	c.Identity()
	c.SetRGB(1, 1, 1)
	toDevice := func(p Point) (float64, float64) {
		x := (p.X-minX)*scale + drawPadding
		y := float64(height) - ((p.Y-minY)*scale + drawPadding)
		return x, y
	}
	for _, seg := range segs {
		mid := seg.Start.Add(seg.End).Mul(0.5)
		x, y := toDevice(mid)
		c.DrawString(dbg.Name(seg), x+4, y-4)
	}

	return c.SavePNG(path)
}

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/sweepline/geom2d"
	"github.com/sweepline/geom2d/dbg"
)

// Demo of the intersection primitives. Input on stdin should be newline
// separated segments in the form "x1 y1 x2 y2". Every pair of segments that
// cross strictly in their interiors is reported; shared endpoints and
// collinear touches are not intersections, which is exactly the policy
// sweep algorithms want.

var (
	drawPath = kingpin.Flag("draw", "Render the segments and intersections to a PNG at this path.").String()
	scale    = kingpin.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64()
	preview  = kingpin.Flag("cat", "Preview the render in the terminal (iTerm only).").Bool()
)

func main() {
	kingpin.Parse()

	segs, err := readSegments(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var marks []geom2d.Point
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			p, ok := segs[i].Intersection(segs[j])
			if !ok {
				continue
			}
			marks = append(marks, p)
			fmt.Printf("%s crosses %s at %s\n",
				aurora.Cyan(dbg.Name(segs[i])),
				aurora.Cyan(dbg.Name(segs[j])),
				aurora.Yellow(fmt.Sprintf("(%g, %g)", p.X, p.Y)),
			)
		}
	}
	fmt.Printf("Read %d segments, found %d interior intersections\n", len(segs), len(marks))

	if *drawPath != "" {
		if err := geom2d.DrawSegments(*drawPath, segs, marks, *scale); err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "could not render"))
			os.Exit(1)
		}
		if *preview {
			imgcat.CatFile(*drawPath, os.Stdout)
		}
	}
}

func readSegments(in *os.File) ([]geom2d.Segment, error) {
	segs := []geom2d.Segment{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		seg, err := parseSegment(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		segs = append(segs, seg)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return segs, nil
}

func parseSegment(line string) (geom2d.Segment, error) {
	parts := strings.Fields(line)
	if len(parts) != 4 {
		return geom2d.Segment{}, errors.Errorf("expected 4 coordinates, got %d", len(parts))
	}
	var coords [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return geom2d.Segment{}, errors.Wrapf(err, "invalid coordinate %q", part)
		}
		coords[i] = v
	}
	return geom2d.Segment{
		Start: geom2d.Point{X: coords[0], Y: coords[1]},
		End:   geom2d.Point{X: coords[2], Y: coords[3]},
	}, nil
}

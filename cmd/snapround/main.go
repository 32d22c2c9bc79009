package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gridgeom/snapround"
)

// Demo of snap rounding. Input on stdin should be newline separated points in
// the form "x y", with each polyline separated by an extra newline. The noded
// polylines are printed in the same format, so the output can be fed straight
// back in (and, being already noded, comes back unchanged).
func main() {
	scale := flag.Float64("scale", 1.0, "grid points per coordinate unit (tolerance is 1/scale)")
	validate := flag.Bool("validate", false, "check the fully-noded invariant after convergence")
	flag.Parse()

	input := readPolylines(os.Stdin)
	pm := snapround.PrecisionModel{Scale: *scale}
	noded, stats, err := snapround.NodeContext(context.Background(), input, pm, snapround.Options{ValidateOutput: *validate})
	if err != nil {
		log.Fatalf("noding failed: %v", err)
	}
	log.Printf("noded %d polylines in %d rounds, %d vertices inserted, %d dropped",
		len(input), stats.Rounds, stats.Inserted, stats.Dropped)

	for i, s := range noded {
		if i > 0 {
			fmt.Println()
		}
		for _, p := range s.Pts {
			fmt.Printf("%g %g\n", p.X, p.Y)
		}
	}
}

func readPolylines(in *os.File) []*snapround.SegmentString {
	var polylines []*snapround.SegmentString
	scanner := bufio.NewScanner(in)
	var points []snapround.Point
	for scanner.Scan() {
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the polyline
		if strings.TrimSpace(line) == "" {
			if len(points) > 0 {
				polylines = append(polylines, &snapround.SegmentString{Pts: points})
				points = nil
			}
			continue
		}

		points = append(points, parsePoint(line))
	}

	// Handle trailing polyline if any
	if len(points) > 0 {
		polylines = append(polylines, &snapround.SegmentString{Pts: points})
	}
	return polylines
}

func parsePoint(line string) snapround.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("invalid y value %q: %v", parts[1], err)
	}
	return snapround.Point{X: x, Y: y}
}

package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs segment strings. This is not
// a full (or even correct) svg parser. It collects every polyline element as
// an open segment string and every polygon element as a closed one, in
// document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*SegmentString {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var result []*SegmentString
	for _, el := range rootEl.FindAll("polyline") {
		result = append(result, &SegmentString{Pts: parseFixturePoints(name, el.Attributes["points"])})
	}
	for _, el := range rootEl.FindAll("polygon") {
		pts := parseFixturePoints(name, el.Attributes["points"])
		// Polygon elements leave the closing vertex implicit; the engine
		// wants it explicit.
		if len(pts) > 0 && pts[0] != pts[len(pts)-1] {
			pts = append(pts, pts[0])
		}
		result = append(result, &SegmentString{Pts: pts, Closed: true})
	}
	if len(result) == 0 {
		log.Fatalf("No polylines or polygons found in fixture %q", name)
	}
	return result
}

func parseFixturePoints(name, pointString string) []Point {
	pointStrings := strings.Fields(pointString)
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q in fixture %q: %v", parts[0], name, err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q in fixture %q: %v", parts[1], name, err)
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

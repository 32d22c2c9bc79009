package internal

import "math"

// HotPixel is the closed axis-aligned square of one grid cell, centered on a
// snapped vertex or a rounded crossing point. A segment that passes through a
// hot pixel must gain the pixel's center as a vertex, which is what makes the
// final segment set fully noded. Pixels are created for one round and
// discarded when the round ends.
//
// The side length is the grid tolerance times the safe envelope factor. The
// factor defaults to 1; widening it trades extra inserted vertices for slack
// against float error at the square's boundary.
type HotPixel struct {
	Center Point
	half   float64
}

func NewHotPixel(center Point, tolerance, safeFactor float64) HotPixel {
	return HotPixel{Center: center, half: tolerance * safeFactor / 2}
}

// Envelope returns the square's extent, boundary included.
func (hp HotPixel) Envelope() (minX, minY, maxX, maxY float64) {
	return hp.Center.X - hp.half, hp.Center.Y - hp.half,
		hp.Center.X + hp.half, hp.Center.Y + hp.half
}

func (hp HotPixel) covers(p Point) bool {
	minX, minY, maxX, maxY := hp.Envelope()
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// Intersects reports whether the closed segment ab meets the closed square.
// This is the delicate primitive of the whole engine, so every comparison is
// inclusive: an endpoint sitting exactly on the center or the boundary
// counts, and so does a segment that only grazes a corner. Float error at the
// boundary can therefore only produce a false positive, which costs an
// unnecessary vertex, never a false negative, which would silently break the
// fully-noded guarantee.
func (hp HotPixel) Intersects(a, b Point) bool {
	minX, minY, maxX, maxY := hp.Envelope()

	// Separating axis test, x and y axes first.
	if math.Max(a.X, b.X) < minX || math.Min(a.X, b.X) > maxX ||
		math.Max(a.Y, b.Y) < minY || math.Min(a.Y, b.Y) > maxY {
		return false
	}

	if hp.covers(a) || hp.covers(b) {
		return true
	}

	// The boxes overlap and neither endpoint is inside, so ab meets the
	// square iff the segment's own line does not separate the four corners.
	corners := [4]Point{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY},
	}
	var below, above bool
	for _, c := range corners {
		switch o := orientation(a, b, c); {
		case o > 0:
			above = true
		case o < 0:
			below = true
		default:
			// A corner exactly on the line counts as a graze.
			return true
		}
	}
	return below && above
}

// orientation is the signed area of the triangle abc: positive when c is to
// the left of the directed line ab.
func orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

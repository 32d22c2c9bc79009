package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The index contract is "superset of the true intersectors": false positives
// are fine, false negatives are not. Compare queries against brute force.
func TestPixelIndexSuperset(t *testing.T) {
	var pixels []HotPixel
	for x := 0.0; x <= 8; x++ {
		for y := 0.0; y <= 8; y++ {
			pixels = append(pixels, NewHotPixel(Point{x, y}, 1.0, 1.0))
		}
	}
	ix := newPixelIndex(pixels)

	segments := [][2]Point{
		{{0, 0}, {8, 8}},
		{{1.2, 7.7}, {6.1, 0.4}},
		{{3, 3}, {3, 3.0001}},
		{{-2, 4}, {10, 4.5}},
	}
	for _, seg := range segments {
		found := map[Point]bool{}
		for _, hp := range ix.search(seg[0], seg[1]) {
			found[hp.Center] = true
		}
		for _, hp := range pixels {
			if !hp.Intersects(seg[0], seg[1]) {
				continue
			}
			assert.True(t, found[hp.Center],
				"pixel %v missing from query for segment %v-%v", hp.Center, seg[0], seg[1])
		}
	}
}

func TestSegmentIndexSuperset(t *testing.T) {
	strings := []*SegmentString{
		{Pts: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}, Closed: true},
		{Pts: []Point{{-3, 2}, {7, 2}}},
		{Pts: []Point{{2, -5}, {2, 9}}},
	}
	ix := newSegmentIndex(strings, 0)

	query := [2]Point{{1, 1}, {3, 3}}
	found := map[Segment]bool{}
	for _, seg := range ix.search(query[0], query[1]) {
		found[seg] = true
	}

	qMinX, qMaxX := query[0].X, query[1].X
	qMinY, qMaxY := query[0].Y, query[1].Y
	for _, s := range strings {
		for i := 0; i < s.SegmentCount(); i++ {
			seg := s.Segment(i)
			a, b := seg.Start(), seg.End()
			overlaps := math.Min(a.X, b.X) <= qMaxX && math.Max(a.X, b.X) >= qMinX &&
				math.Min(a.Y, b.Y) <= qMaxY && math.Max(a.Y, b.Y) >= qMinY
			if overlaps {
				assert.True(t, found[seg], "segment %v-%v missing from query", a, b)
			}
		}
	}
}

func TestSegmentIndexPadding(t *testing.T) {
	strings := []*SegmentString{{Pts: []Point{{5, 0}, {5, 10}}}}

	// A point query misses a segment 0.3 away without padding, finds it with
	// padding wider than the gap.
	unpadded := newSegmentIndex(strings, 0)
	assert.Empty(t, unpadded.search(Point{4.7, 5}, Point{4.7, 5}))

	padded := newSegmentIndex(strings, 0.5)
	hits := padded.search(Point{4.7, 5}, Point{4.7, 5})
	require.Len(t, hits, 1)
	assert.Equal(t, Point{5, 0}, hits[0].Start())
}

package internal

import (
	"testing"

	"github.com/gonum/floats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixelsAt(centers []Point, tolerance float64) []HotPixel {
	pixels := make([]HotPixel, len(centers))
	for i, c := range centers {
		pixels[i] = NewHotPixel(c, tolerance, 1.0)
	}
	return pixels
}

func TestIntersectionsOrdering(t *testing.T) {
	centers := []Point{{8, 0}, {2, 0}, {5, 0}, {0, 0}, {10, 0}, {5, 7}}
	x := hotPixelIntersector{index: newPixelIndex(pixelsAt(centers, 1.0))}

	// Hits come back in segment direction order regardless of index order,
	// and the segment's own endpoints are not hits.
	assert.Equal(t, []Point{{2, 0}, {5, 0}, {8, 0}}, x.Intersections(Point{0, 0}, Point{10, 0}))
	assert.Equal(t, []Point{{8, 0}, {5, 0}, {2, 0}}, x.Intersections(Point{10, 0}, Point{0, 0}))
}

func TestIntersectionsZeroLength(t *testing.T) {
	x := hotPixelIntersector{index: newPixelIndex(pixelsAt([]Point{{0, 0}}, 1.0))}
	assert.Nil(t, x.Intersections(Point{0, 0}, Point{0, 0}))
	assert.Nil(t, x.Intersections(Point{5, 5}, Point{5, 5}))
}

func TestIntersectionsNearMiss(t *testing.T) {
	// The pixel at (5,7) is far from the segment; nothing is inserted.
	x := hotPixelIntersector{index: newPixelIndex(pixelsAt([]Point{{5, 7}}, 1.0))}
	assert.Empty(t, x.Intersections(Point{0, 0}, Point{10, 0}))
}

func TestParamAlong(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	assert.True(t, floats.EqualWithinAbs(paramAlong(a, b, Point{2, 0}), 0.2, 1e-12))
	assert.True(t, floats.EqualWithinAbs(paramAlong(a, b, Point{10, 3}), 1.0, 1e-12))
	// Projection, not containment: a point beside the line still projects
	assert.True(t, floats.EqualWithinAbs(paramAlong(a, b, Point{5, 4}), 0.5, 1e-12))
}

func TestProperCrossing(t *testing.T) {
	p, ok := properCrossing(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	require.True(t, ok)
	assert.Equal(t, Point{5, 5}, p)

	// Shared endpoints are not proper crossings
	_, ok = properCrossing(Point{0, 0}, Point{2, 0}, Point{0, 0}, Point{10, -1})
	assert.False(t, ok)

	// Parallel and collinear pairs report nothing; vertex pixels cover them
	_, ok = properCrossing(Point{0, 0}, Point{10, 0}, Point{0, 1}, Point{10, 1})
	assert.False(t, ok)
	_, ok = properCrossing(Point{0, 0}, Point{10, 0}, Point{2, 0}, Point{8, 0})
	assert.False(t, ok)

	// Lines that cross beyond the segment extents do not count
	_, ok = properCrossing(Point{0, 0}, Point{1, 1}, Point{9, 10}, Point{10, 9})
	assert.False(t, ok)

	// An endpoint touching the other segment's interior is not proper either
	_, ok = properCrossing(Point{0, 0}, Point{10, 0}, Point{5, 0}, Point{5, 8})
	assert.False(t, ok)
}

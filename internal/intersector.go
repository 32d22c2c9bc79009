package internal

import "sort"

// hotPixelIntersector finds, for one original segment, the hot pixels the
// segment passes through, ordered from the segment's start toward its end.
// Direction order matters: the centers are spliced into the parent string as
// new vertices, and splicing them in spatial sort order instead would fold
// the line back on itself.
type hotPixelIntersector struct {
	index *pixelIndex
}

// pixelHit pairs a pixel center with its projection parameter along the
// segment, which is what the hits are ordered by.
type pixelHit struct {
	pt Point
	t  float64
}

// Intersections returns the centers of the hot pixels that the segment ab
// passes through, excluding a and b themselves (those are already vertices of
// the parent string). A zero-length segment contributes nothing.
func (x hotPixelIntersector) Intersections(a, b Point) []Point {
	if a == b {
		return nil
	}
	candidates := x.index.search(a, b)
	hits := make([]pixelHit, 0, len(candidates))
	for _, hp := range candidates {
		if hp.Center == a || hp.Center == b {
			continue
		}
		if !hp.Intersects(a, b) {
			continue
		}
		hits = append(hits, pixelHit{pt: hp.Center, t: paramAlong(a, b, hp.Center)})
	}
	if len(hits) == 0 {
		return nil
	}
	// Order along the segment direction. Ties (two pixels whose centers
	// project to the same parameter) are broken by coordinate so the result
	// does not depend on index traversal order.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].t != hits[j].t {
			return hits[i].t < hits[j].t
		}
		if hits[i].pt.X != hits[j].pt.X {
			return hits[i].pt.X < hits[j].pt.X
		}
		return hits[i].pt.Y < hits[j].pt.Y
	})
	pts := make([]Point, len(hits))
	for i, h := range hits {
		pts[i] = h.pt
	}
	return pts
}

// paramAlong projects p onto the line ab and returns the normalized parameter
// (0 at a, 1 at b). Callers only compare parameters of points near the same
// segment, so no clamping is needed.
func paramAlong(a, b, p Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
}

// properCrossing returns the interior crossing point of segments p0p1 and
// q0q1, if they cross at a point interior to both. Parallel and collinear
// pairs report no crossing: any contact they have happens at vertices, and
// vertex hot pixels already take care of those. Likewise crossings at a
// shared endpoint are excluded here.
func properCrossing(p0, p1, q0, q1 Point) (Point, bool) {
	rx, ry := p1.X-p0.X, p1.Y-p0.Y
	sx, sy := q1.X-q0.X, q1.Y-q0.Y
	den := rx*sy - ry*sx
	if den == 0 {
		return Point{}, false
	}
	wx, wy := q0.X-p0.X, q0.Y-p0.Y
	t := (wx*sy - wy*sx) / den
	u := (wx*ry - wy*rx) / den
	if t <= 0 || t >= 1 || u <= 0 || u >= 1 {
		return Point{}, false
	}
	return Point{X: p0.X + t*rx, Y: p0.Y + t*ry}, true
}

package internal

// Points here are plain values, not pointers. Richer geometry models keep
// pointer identity so that coordinates survive untouched, but a snap-rounding
// session rounds every coordinate onto the grid anyway, and once everything is
// on the grid, two vertices are "the same point" exactly when their
// coordinates are equal. Value equality is the identity we want.
type Point struct {
	X float64
	Y float64
}

// SegmentString is an ordered run of at least two vertices: one input line or
// ring in the engine's working representation. The noding session owns the
// vertex slice exclusively and mutates it by inserting vertices; vertices are
// never removed (until the final collapse pass) and never reordered, so the
// original traversal direction survives into the output.
//
// A closed ring carries its closing vertex explicitly (last equals first) and
// sets Closed so the adapter can reassemble it as a ring. The engine itself
// treats Closed as metadata; every segment is just vertex i to vertex i+1.
type SegmentString struct {
	Pts    []Point
	Closed bool
}

// NewSegmentString copies pts so the session owns its own vertex storage.
func NewSegmentString(pts []Point, closed bool) *SegmentString {
	owned := make([]Point, len(pts))
	copy(owned, pts)
	return &SegmentString{Pts: owned, Closed: closed}
}

// SegmentCount is the number of directed edges in the string.
func (s *SegmentString) SegmentCount() int {
	return len(s.Pts) - 1
}

// Segment returns the view of edge i.
func (s *SegmentString) Segment(i int) Segment {
	return Segment{Parent: s, Index: i}
}

// Segment addresses the directed edge from vertex Index to vertex Index+1 of
// its parent string. It is a view into the parent, not an owned entity; it
// goes stale if vertices are inserted at or before Index.
type Segment struct {
	Parent *SegmentString
	Index  int
}

func (s Segment) Start() Point {
	return s.Parent.Pts[s.Index]
}

func (s Segment) End() Point {
	return s.Parent.Pts[s.Index+1]
}

// ZeroLength reports whether the segment's endpoints coincide. Rounding can
// collapse a segment to a point; such segments are legitimate during the
// rounds and are swept out by the collapse pass after convergence.
func (s Segment) ZeroLength() bool {
	return s.Start() == s.End()
}

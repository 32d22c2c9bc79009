package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/gridgeom/snapround/dbg"
)

// Debug-oriented String methods. The petname-based names make it possible to
// follow one string across several rounds of log output without squinting at
// slices of coordinates.

func (s *SegmentString) String() string {
	name := dbg.Name(s)
	switch {
	case len(s.Pts) < 2:
		name = aurora.Red(name).String() // degenerate
	case s.Closed:
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Green(name).String()
	}
	kind := "line"
	if s.Closed {
		kind = "ring"
	}
	if len(s.Pts) == 0 {
		return fmt.Sprintf("SegmentString %s [%s, empty]", name, kind)
	}
	return fmt.Sprintf("SegmentString %s [%s, %d pts %v…%v]",
		name, kind, len(s.Pts), s.Pts[0], s.Pts[len(s.Pts)-1])
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (hp HotPixel) String() string {
	return fmt.Sprintf("HotPixel %v ±%v", hp.Center, hp.half)
}

package internal

import (
	"math"

	"github.com/pkg/errors"
)

// The published distance threshold for the fully-noded check. A vertex must
// be either an endpoint of a segment or farther than this from it. The
// divisor is slightly over 2 to leave numerical slack inside the half-pixel
// bound; the exact value is empirical and matched by the property tests.
const validateSlackDivisor = 2.05

// Validate checks the fully-noded invariant over a segment set: for every
// vertex v and every segment that does not have v as an endpoint, v lies
// farther than tolerance/2.05 from the segment. The engine runs this after
// convergence when Options.ValidateOutput is set, and external consumers can
// run it on any segment set they are about to trust.
//
// A failure is reported as ErrInvariantViolated with the offending vertex and
// segment in the message. It indicates an algorithm or tolerance bug, never a
// caller input error.
func Validate(strings []*SegmentString, tolerance float64) error {
	threshold := tolerance / validateSlackDivisor
	ix := newSegmentIndex(strings, threshold)
	for si, s := range strings {
		for vi, v := range s.Pts {
			for _, seg := range ix.search(v, v) {
				a, b := seg.Start(), seg.End()
				if v == a || v == b {
					continue
				}
				if d := distPointSegment(v, a, b); d <= threshold {
					return errors.Wrapf(ErrInvariantViolated,
						"vertex %d of string %d at (%v,%v) is %v from segment (%v,%v)-(%v,%v)",
						vi, si, v.X, v.Y, d, a.X, a.Y, b.X, b.Y)
				}
			}
		}
	}
	return nil
}

// distPointSegment is the distance from p to the closed segment ab.
func distPointSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

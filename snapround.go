// A snap-rounding noding engine for Go.
//
// This package takes a set of line segments (possibly self-intersecting,
// possibly from several geometries) and a precision grid, and produces a new
// segment set that lies exactly on the grid and is fully noded: no two
// segments in the output cross anywhere except at a shared vertex. A fully
// noded segment set is the raw material for topology graphs and overlay
// operations, which cannot tolerate segments that secretly cross mid-air.
package snapround

import (
	"context"

	"github.com/gridgeom/snapround/internal"
)

type Point = internal.Point
type SegmentString = internal.SegmentString
type Segment = internal.Segment
type PrecisionModel = internal.PrecisionModel
type Options = internal.Options
type Stats = internal.Stats

var (
	ErrInvalidInput      = internal.ErrInvalidInput
	ErrNonConvergent     = internal.ErrNonConvergent
	ErrInvariantViolated = internal.ErrInvariantViolated
)

// Node snap-rounds the input strings onto the grid defined by pm. The input
// is not mutated. Output strings keep the input's order and traversal
// direction; each has at least as many vertices as its source. Strings that
// collapse entirely under rounding are dropped.
func Node(strings []*SegmentString, pm PrecisionModel, opts Options) ([]*SegmentString, error) {
	out, _, err := NodeContext(context.Background(), strings, pm, opts)
	return out, err
}

// NodeContext is Node with a cancellation check at each round boundary, plus
// run statistics, for callers embedding the engine in a responsive service.
func NodeContext(ctx context.Context, strings []*SegmentString, pm PrecisionModel, opts Options) ([]*SegmentString, Stats, error) {
	return internal.NewNoder(pm, opts).Node(ctx, strings)
}

// Validate checks the fully-noded invariant over an arbitrary segment set.
// Node runs it automatically when Options.ValidateOutput is set; it is
// exported so consumers can check segment sets from other sources before
// trusting them.
func Validate(strings []*SegmentString, tolerance float64) error {
	return internal.Validate(strings, tolerance)
}

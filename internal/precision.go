package internal

import "math"

// PrecisionModel maps continuous coordinates onto a fixed grid. Scale is the
// number of grid cells per unit, so the grid spacing (the tolerance) is
// 1/Scale. The model is immutable; one instance is shared read-only across a
// whole noding run.
type PrecisionModel struct {
	Scale float64
}

// Tolerance is the grid spacing: the side length of one grid cell, and the
// minimum distance between distinct snapped points.
func (pm PrecisionModel) Tolerance() float64 {
	return 1 / pm.Scale
}

// Round snaps p to the nearest grid point. math.Round rounds halves away from
// zero; what matters is not the choice of mode but that the same mode is
// applied to every coordinate of the run, so that equal inputs snap to equal
// outputs.
func (pm PrecisionModel) Round(p Point) Point {
	return Point{
		X: math.Round(p.X*pm.Scale) / pm.Scale,
		Y: math.Round(p.Y*pm.Scale) / pm.Scale,
	}
}

// IsFinite reports whether both coordinates are ordinary numbers. NaN and
// infinity are rejected at the API boundary rather than allowed to poison the
// grid arithmetic.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

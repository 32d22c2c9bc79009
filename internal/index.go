package internal

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"github.com/ctessum/geom/proj"
)

// The R-trees here only have to return a superset of the true intersectors:
// false positives are filtered by the exact HotPixel and crossing tests, but
// a false negative would break the fully-noded guarantee. Queries are
// therefore padded by the pixel half-width, so a pixel whose square pokes
// into the query region is always found even though its center lies outside.

type pixelEntry struct {
	px *HotPixel
}

func (e *pixelEntry) Bounds() *geom.Bounds {
	minX, minY, maxX, maxY := e.px.Envelope()
	return &geom.Bounds{
		Min: geom.Point{X: minX, Y: minY},
		Max: geom.Point{X: maxX, Y: maxY},
	}
}

// The r-tree only ever calls Bounds on inserted values; the remaining
// geom.Geom methods exist solely to satisfy the interface and are never
// invoked.
func (e *pixelEntry) Similar(geom.Geom, float64) bool { panic("not used") }

func (e *pixelEntry) Transform(proj.Transformer) (geom.Geom, error) { panic("not used") }

func (e *pixelEntry) Len() int { panic("not used") }

func (e *pixelEntry) Points() func() geom.Point { panic("not used") }

// pixelIndex answers "which hot pixels could this segment touch". Built once
// per round and read-only during the scan, so the parallel workers can share
// it freely.
type pixelIndex struct {
	tree *rtree.Rtree
}

func newPixelIndex(pixels []HotPixel) *pixelIndex {
	tree := rtree.NewTree(25, 50)
	for i := range pixels {
		tree.Insert(&pixelEntry{px: &pixels[i]})
	}
	return &pixelIndex{tree: tree}
}

func (ix *pixelIndex) search(a, b Point) []*HotPixel {
	query := &geom.Bounds{
		Min: geom.Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: geom.Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
	hits := ix.tree.SearchIntersect(query)
	out := make([]*HotPixel, len(hits))
	for i, h := range hits {
		out[i] = h.(*pixelEntry).px
	}
	return out
}

type segmentEntry struct {
	seg Segment
}

func (e *segmentEntry) Bounds() *geom.Bounds {
	a, b := e.seg.Start(), e.seg.End()
	return &geom.Bounds{
		Min: geom.Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: geom.Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// As with pixelEntry, only Bounds is ever called by the r-tree.
func (e *segmentEntry) Similar(geom.Geom, float64) bool { panic("not used") }

func (e *segmentEntry) Transform(proj.Transformer) (geom.Geom, error) { panic("not used") }

func (e *segmentEntry) Len() int { panic("not used") }

func (e *segmentEntry) Points() func() geom.Point { panic("not used") }

// segmentIndex answers "which segments have a bounding box overlapping this
// query box", padded by pad on every side.
type segmentIndex struct {
	tree *rtree.Rtree
	pad  float64
}

func newSegmentIndex(strings []*SegmentString, pad float64) *segmentIndex {
	tree := rtree.NewTree(25, 50)
	for _, s := range strings {
		for i := 0; i < s.SegmentCount(); i++ {
			tree.Insert(&segmentEntry{seg: s.Segment(i)})
		}
	}
	return &segmentIndex{tree: tree, pad: pad}
}

func (ix *segmentIndex) search(a, b Point) []Segment {
	query := &geom.Bounds{
		Min: geom.Point{X: math.Min(a.X, b.X) - ix.pad, Y: math.Min(a.Y, b.Y) - ix.pad},
		Max: geom.Point{X: math.Max(a.X, b.X) + ix.pad, Y: math.Max(a.Y, b.Y) + ix.pad},
	}
	hits := ix.tree.SearchIntersect(query)
	out := make([]Segment, len(hits))
	for i, h := range hits {
		out[i] = h.(*segmentEntry).seg
	}
	return out
}

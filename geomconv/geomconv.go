// Package geomconv translates between the geometry model in
// github.com/ctessum/geom and the engine's segment strings. It is a thin
// boundary layer: each input line or ring becomes exactly one segment string,
// and each noded string comes back as one output line. Nothing is merged or
// split across inputs.
package geomconv

import (
	"github.com/ctessum/geom"
	"github.com/pkg/errors"

	"github.com/gridgeom/snapround"
)

// ToSegmentStrings flattens g into segment strings, preserving vertex order.
// Polygon rings come out with Closed set and an explicit closing vertex.
// Pointlike geometries have no segments and are rejected, as is any type this
// package does not know.
func ToSegmentStrings(g geom.Geom) ([]*snapround.SegmentString, error) {
	switch t := g.(type) {
	case geom.LineString:
		return []*snapround.SegmentString{lineToString(t)}, nil
	case geom.MultiLineString:
		out := make([]*snapround.SegmentString, len(t))
		for i, l := range t {
			out[i] = lineToString(l)
		}
		return out, nil
	case geom.Polygon:
		out := make([]*snapround.SegmentString, 0, len(t))
		for _, ring := range t {
			out = append(out, ringToString(ring))
		}
		return out, nil
	case geom.MultiPolygon:
		var out []*snapround.SegmentString
		for _, p := range t {
			for _, ring := range p {
				out = append(out, ringToString(ring))
			}
		}
		return out, nil
	case geom.GeometryCollection:
		var out []*snapround.SegmentString
		for _, sub := range t {
			ss, err := ToSegmentStrings(sub)
			if err != nil {
				return nil, err
			}
			out = append(out, ss...)
		}
		return out, nil
	default:
		return nil, errors.Errorf("geomconv: unsupported geometry type %T", g)
	}
}

// FromSegmentStrings reassembles noded strings as a MultiLineString, one line
// per string, in order. Rings keep their explicit closing vertex.
func FromSegmentStrings(strings []*snapround.SegmentString) geom.MultiLineString {
	out := make(geom.MultiLineString, len(strings))
	for i, s := range strings {
		l := make(geom.LineString, len(s.Pts))
		for j, p := range s.Pts {
			l[j] = geom.Point{X: p.X, Y: p.Y}
		}
		out[i] = l
	}
	return out
}

// Node converts g, snap-rounds it, and converts back: the full trip for
// callers that live in the geom model and just want noded lines out.
func Node(g geom.Geom, pm snapround.PrecisionModel, opts snapround.Options) (geom.MultiLineString, error) {
	strings, err := ToSegmentStrings(g)
	if err != nil {
		return nil, err
	}
	noded, err := snapround.Node(strings, pm, opts)
	if err != nil {
		return nil, err
	}
	return FromSegmentStrings(noded), nil
}

func lineToString(l geom.LineString) *snapround.SegmentString {
	pts := make([]snapround.Point, len(l))
	for i, p := range l {
		pts[i] = snapround.Point{X: p.X, Y: p.Y}
	}
	return &snapround.SegmentString{Pts: pts, Closed: false}
}

func ringToString(ring []geom.Point) *snapround.SegmentString {
	pts := make([]snapround.Point, 0, len(ring)+1)
	for _, p := range ring {
		pts = append(pts, snapround.Point{X: p.X, Y: p.Y})
	}
	// Some sources repeat the closing vertex and some leave it implicit;
	// the engine wants it explicit.
	if len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}
	return &snapround.SegmentString{Pts: pts, Closed: true}
}

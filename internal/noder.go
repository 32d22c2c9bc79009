package internal

import (
	"context"
	"math"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Options configure a noding run. The zero value asks for defaults
// everywhere.
type Options struct {
	// ValidateOutput runs the fully-noded check after convergence and fails
	// the run with ErrInvariantViolated if it does not hold. Diagnostic; off
	// by default.
	ValidateOutput bool

	// MaxRounds caps the number of rounding rounds. Zero means a generous
	// cap derived from the input size. The cap exists to turn a pathological
	// oscillation into ErrNonConvergent instead of a hang.
	MaxRounds int

	// SafeEnvelopeFactor scales the hot pixel side length relative to the
	// grid tolerance. Zero means 1.0. There is no principled derivation for
	// values above 1; they are empirical slack, so the knob is exposed
	// rather than baked in.
	SafeEnvelopeFactor float64

	// Workers bounds the parallelism of the scan phase. Zero means
	// GOMAXPROCS. The output is identical for any worker count.
	Workers int
}

// Stats describes what a run did, for callers that want to log or assert on
// it. Not needed for correctness.
type Stats struct {
	Rounds   int // rounding rounds executed
	Inserted int // vertices inserted across all rounds
	Dropped  int // segment strings removed by the collapse pass
}

// Noder drives the snap-rounding fixed point: round every vertex onto the
// grid, find every hot pixel any segment passes through, splice the pixel
// centers in as vertices, and repeat until a round inserts nothing. Rounding
// and inserting can both create intersections that did not exist before,
// which is why one pass is not enough and why the loop is the heart of the
// engine.
type Noder struct {
	pm   PrecisionModel
	opts Options
}

func NewNoder(pm PrecisionModel, opts Options) *Noder {
	if opts.SafeEnvelopeFactor == 0 {
		opts.SafeEnvelopeFactor = 1.0
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Noder{pm: pm, opts: opts}
}

// Node runs the algorithm over the input strings and returns the noded set.
// The input is not mutated; output strings are in input order, each with at
// least as many vertices as its source, minus any strings the collapse pass
// dropped entirely. ctx is only consulted at round boundaries.
func (n *Noder) Node(ctx context.Context, input []*SegmentString) ([]*SegmentString, Stats, error) {
	var stats Stats
	if err := n.checkInput(input); err != nil {
		return nil, stats, err
	}

	// The session owns its own working copy; callers keep their input.
	work := make([]*SegmentString, len(input))
	for i, s := range input {
		work[i] = NewSegmentString(s.Pts, s.Closed)
	}

	maxRounds := n.opts.MaxRounds
	if maxRounds == 0 {
		maxRounds = defaultMaxRounds(work)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		if stats.Rounds >= maxRounds {
			return nil, stats, errors.Wrapf(ErrNonConvergent, "after %d rounds", stats.Rounds)
		}
		stats.Rounds++

		n.roundVertices(work)

		pixels := n.collectHotPixels(work)
		hits, err := n.scan(ctx, work, newPixelIndex(pixels))
		if err != nil {
			return nil, stats, err
		}

		inserted := 0
		for si, s := range work {
			inserted += applyInsertions(s, hits[si])
		}
		stats.Inserted += inserted
		if inserted == 0 {
			break
		}
	}

	out := collapse(work, &stats)
	if n.opts.ValidateOutput {
		if err := Validate(out, n.pm.Tolerance()); err != nil {
			return nil, stats, err
		}
	}
	return out, stats, nil
}

func (n *Noder) checkInput(input []*SegmentString) error {
	if !(n.pm.Scale > 0) || math.IsInf(n.pm.Scale, 0) {
		return errors.Wrapf(ErrInvalidInput, "precision scale %v", n.pm.Scale)
	}
	for i, s := range input {
		if s == nil {
			return errors.Wrapf(ErrInvalidInput, "segment string %d is nil", i)
		}
		if len(s.Pts) < 2 {
			return errors.Wrapf(ErrInvalidInput, "segment string %d has %d vertices", i, len(s.Pts))
		}
		for j, p := range s.Pts {
			if !p.IsFinite() {
				return errors.Wrapf(ErrInvalidInput, "segment string %d vertex %d is not finite", i, j)
			}
		}
	}
	return nil
}

// defaultMaxRounds scales the convergence guard with the input. Real inputs
// settle in a handful of rounds; the generous cap is there for inputs that
// could in principle oscillate.
func defaultMaxRounds(work []*SegmentString) int {
	total := 0
	for _, s := range work {
		total += len(s.Pts)
	}
	if total < 16 {
		return 16
	}
	return total
}

func (n *Noder) roundVertices(work []*SegmentString) {
	for _, s := range work {
		for i := range s.Pts {
			s.Pts[i] = n.pm.Round(s.Pts[i])
		}
	}
}

// collectHotPixels builds this round's pixel set: one pixel per distinct
// snapped vertex, plus one per rounded proper crossing point between
// non-adjacent segments. Vertex pixels alone would miss two segments crossing
// in open space with no vertex nearby, which is exactly the case the
// concrete crossing-diagonals scenario exercises.
func (n *Noder) collectHotPixels(work []*SegmentString) []HotPixel {
	tol := n.pm.Tolerance()
	seen := make(map[Point]struct{})
	var pixels []HotPixel
	add := func(p Point) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		pixels = append(pixels, NewHotPixel(p, tol, n.opts.SafeEnvelopeFactor))
	}

	for _, s := range work {
		for _, p := range s.Pts {
			add(p)
		}
	}

	ordinal := make(map[*SegmentString]int, len(work))
	for i, s := range work {
		ordinal[s] = i
	}
	segix := newSegmentIndex(work, 0)
	for si, s := range work {
		for i := 0; i < s.SegmentCount(); i++ {
			a, b := s.Pts[i], s.Pts[i+1]
			if a == b {
				continue
			}
			for _, cand := range segix.search(a, b) {
				// Visit each unordered pair once.
				if cj, j := ordinal[cand.Parent], cand.Index; cj < si || (cj == si && j <= i) {
					continue
				}
				if p, ok := properCrossing(a, b, cand.Start(), cand.End()); ok {
					add(n.pm.Round(p))
				}
			}
		}
	}
	return pixels
}

// scan computes, for every segment of every string, the ordered pixel centers
// to splice into it. The pixel index is read-only here, and each worker
// writes only to its own strings' slots, so the fan-out needs no locking and
// the merged result is identical for any worker count.
func (n *Noder) scan(ctx context.Context, work []*SegmentString, ix *pixelIndex) ([][][]Point, error) {
	hits := make([][][]Point, len(work))
	workers := n.opts.Workers
	if workers > len(work) {
		workers = len(work)
	}
	if workers <= 1 {
		for si, s := range work {
			hits[si] = scanString(s, ix)
		}
		return hits, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for si := w; si < len(work); si += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				hits[si] = scanString(work[si], ix)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hits, nil
}

func scanString(s *SegmentString, ix *pixelIndex) [][]Point {
	x := hotPixelIntersector{index: ix}
	perSeg := make([][]Point, s.SegmentCount())
	for i := range perSeg {
		perSeg[i] = x.Intersections(s.Pts[i], s.Pts[i+1])
	}
	return perSeg
}

// applyInsertions splices each segment's ordered pixel centers into the
// string in one rebuild pass, which keeps indices stable without the
// descending-index bookkeeping an in-place splice would need. Returns how
// many vertices were actually added; a center equal to the adjacent existing
// vertex is skipped, which is what makes an already-noded input converge with
// zero insertions.
func applyInsertions(s *SegmentString, perSeg [][]Point) int {
	total := 0
	for _, pts := range perSeg {
		total += len(pts)
	}
	if total == 0 {
		return 0
	}

	out := make([]Point, 0, len(s.Pts)+total)
	out = append(out, s.Pts[0])
	inserted := 0
	for i := 0; i < len(s.Pts)-1; i++ {
		for _, p := range perSeg[i] {
			if p == out[len(out)-1] || p == s.Pts[i+1] {
				continue
			}
			out = append(out, p)
			inserted++
		}
		out = append(out, s.Pts[i+1])
	}
	s.Pts = out
	return inserted
}

// collapse removes zero-length segments by deduplicating consecutive equal
// vertices, and drops any string left with fewer than two. Runs once, after
// convergence; mid-run the degenerate segments are harmless and pruning them
// early would reshuffle indices for nothing.
func collapse(work []*SegmentString, stats *Stats) []*SegmentString {
	out := make([]*SegmentString, 0, len(work))
	for _, s := range work {
		pts := make([]Point, 0, len(s.Pts))
		for _, p := range s.Pts {
			if len(pts) > 0 && pts[len(pts)-1] == p {
				continue
			}
			pts = append(pts, p)
		}
		if len(pts) < 2 {
			stats.Dropped++
			continue
		}
		s.Pts = pts
		out = append(out, s)
	}
	return out
}

package internal

import "github.com/pkg/errors"

// Exactly three error kinds cross the package boundary. Geometric
// degeneracies that arise inside a run (segments collapsing to points,
// duplicate vertices) are recovered locally by the collapse pass and are
// never surfaced as errors.
var (
	// ErrInvalidInput: a non-finite coordinate or a segment string with fewer
	// than two vertices was supplied. Rejected up front, before any rounding.
	ErrInvalidInput = errors.New("snapround: invalid input")

	// ErrNonConvergent: the round cap was exceeded without reaching a fixed
	// point. Fatal to the invocation; the caller can retry with a coarser
	// tolerance or treat the input as pathological.
	ErrNonConvergent = errors.New("snapround: noding did not converge")

	// ErrInvariantViolated: the optional post-run validity check found a
	// vertex too close to a non-adjacent segment. This signals a bug or a
	// mistuned envelope, not a caller error, and downstream overlay logic
	// must not trust the output.
	ErrInvariantViolated = errors.New("snapround: noding invariant violated")
)

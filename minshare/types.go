package minshare

import "errors"

var (
	// ErrNilValuation is returned when a nil valuation matrix is passed in.
	ErrNilValuation = errors.New("minshare: nil valuation matrix")

	// ErrNilCriterion is returned when a nil criterion is passed in.
	ErrNilCriterion = errors.New("minshare: nil criterion")

	// ErrNilGraph is returned when a nil consumption graph is passed in.
	ErrNilGraph = errors.New("minshare: nil consumption graph")

	// ErrShapeMismatch is returned when a consumption graph and a valuation
	// matrix disagree on the number of agents or objects.
	ErrShapeMismatch = errors.New("minshare: graph/valuation shape mismatch")

	// ErrInfeasible reports that one consumption graph admits no allocation
	// under the criterion. It is the expected, frequent outcome of a single
	// feasibility test; the search recovers by moving to the next candidate.
	ErrInfeasible = errors.New("minshare: graph infeasible under criterion")

	// ErrNoAllocation reports that every graph with fewer than n sharings was
	// exhausted without success. The Sandomirskiy–Segal-Halevi bound
	// guarantees a witness with at most n−1 sharings, so this is a fatal
	// condition pointing at the LP formulation or the numeric solver, never a
	// legitimate "no fair allocation exists".
	ErrNoAllocation = errors.New("minshare: search exhausted without allocation (formulation or solver bug)")

	// ErrSharingOverflow reports a found allocation with n or more sharings
	// after rounding, which the same bound rules out. Fatal, like
	// ErrNoAllocation.
	ErrSharingOverflow = errors.New("minshare: allocation exceeds the n-1 sharing bound (formulation or solver bug)")

	// ErrBadThresholds is returned when a threshold vector has the wrong
	// length for the valuation matrix.
	ErrBadThresholds = errors.New("minshare: threshold vector length mismatch")

	// ErrBadTolerance is returned when a max-product tolerance lies outside [0,1).
	ErrBadTolerance = errors.New("minshare: tolerance must be in [0,1)")
)

package solver

import "errors"

// Status classifies the outcome of one Solve call.
type Status int

const (
	// StatusOptimal means a feasible (and, under an objective, optimal)
	// point was found; Result.X holds the variable values.
	StatusOptimal Status = iota

	// StatusInfeasible means the constraint set admits no point. This is a
	// definite answer, not a failure.
	StatusInfeasible

	// StatusUnbounded means the objective decreases without bound over the
	// feasible set. Also a definite answer.
	StatusUnbounded

	// StatusError means the solver broke down without a verdict
	// (ill-conditioning, singular basis, unsupported structure).
	StatusError
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "solverError"
	}
}

// Result is the outcome of one Solve call. X is non-nil only when
// Status == StatusOptimal, and then len(X) == Problem.NumVars().
type Result struct {
	Status Status
	X      []float64
}

// Solver answers feasibility/optimality questions about a Problem.
// Implementations must be safe for reuse across Solve calls but need not be
// safe for concurrent use.
type Solver interface {
	Solve(p *Problem) (Result, error)
}

var (
	// ErrNilProblem is returned when Solve receives a nil problem.
	ErrNilProblem = errors.New("solver: nil problem")

	// ErrNoVariables is returned when a problem declares no variables.
	ErrNoVariables = errors.New("solver: problem has no variables")

	// ErrBadConstraint is returned when a constraint row length does not
	// match the declared number of variables.
	ErrBadConstraint = errors.New("solver: constraint length mismatch")

	// ErrAllSolversFailed is returned by a Portfolio when every member
	// failed hard without producing a verdict.
	ErrAllSolversFailed = errors.New("solver: all solvers in portfolio failed")
)

package solver

import "errors"

// Portfolio tries an ordered list of solvers. A member's definite verdict
// (optimal / infeasible / unbounded) is final; only a hard failure
// (StatusError or an error) advances to the next member. An infeasible or
// unbounded result is an answer, never a reason to retry.
type Portfolio struct {
	members []Solver
}

var _ Solver = Portfolio{}

// NewPortfolio builds a fallback chain from the given solvers, in order.
func NewPortfolio(members ...Solver) Portfolio {
	return Portfolio{members: members}
}

// DefaultPortfolio is the chain the fair-division engine uses: a simplex at
// tight tolerance backed by one at relaxed tolerance. The second member
// exists for the occasional program where tight pivoting stalls.
func DefaultPortfolio() Portfolio {
	return NewPortfolio(
		Simplex{Tol: DefaultTolerance},
		Simplex{Tol: RelaxedTolerance},
	)
}

// Solve consults members in order and returns the first definite verdict.
//
// Errors: ErrAllSolversFailed (wrapping the last member's error) when every
// member fails hard; ErrNilProblem/ErrNoVariables for malformed input.
func (pf Portfolio) Solve(p *Problem) (Result, error) {
	if verr := p.validate(); verr != nil {
		return Result{Status: StatusError}, verr
	}
	if len(pf.members) == 0 {
		return Result{Status: StatusError}, ErrAllSolversFailed
	}

	var lastErr error
	for _, s := range pf.members {
		res, err := s.Solve(p)
		if err == nil && res.Status != StatusError {
			return res, nil
		}
		lastErr = err
	}

	if lastErr == nil {
		lastErr = ErrAllSolversFailed
	} else {
		lastErr = errors.Join(ErrAllSolversFailed, lastErr)
	}

	return Result{Status: StatusError}, lastErr
}

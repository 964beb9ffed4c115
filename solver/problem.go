package solver

import "fmt"

// Problem is a general-form linear program collected incrementally:
//
//	minimize  cᵀx
//	s.t.      G·x ≤ h   (one row per AddLE / AddGE)
//	          A·x = b   (one row per AddEQ)
//
// Variables are free unless the caller adds explicit bound rows (the engine
// adds x ≥ 0 rows for every allocation variable). A nil objective means pure
// feasibility: minimize 0 and accept any feasible vertex.
type Problem struct {
	numVars int

	objective []float64 // nil ⇒ feasibility

	g [][]float64 // inequality rows, G·x ≤ h
	h []float64

	a [][]float64 // equality rows, A·x = b
	b []float64
}

// NewProblem creates an empty problem over numVars free variables.
func NewProblem(numVars int) *Problem {
	return &Problem{numVars: numVars}
}

// NumVars returns the number of variables.
func (p *Problem) NumVars() int { return p.numVars }

// NumConstraints returns the number of inequality and equality rows.
func (p *Problem) NumConstraints() (ineq, eq int) { return len(p.g), len(p.a) }

// SetObjective sets the minimization objective c (copied). Passing nil resets
// the problem to pure feasibility.
//
// Errors: ErrBadConstraint when len(c) != NumVars().
func (p *Problem) SetObjective(c []float64) error {
	if c == nil {
		p.objective = nil

		return nil
	}
	if len(c) != p.numVars {
		return fmt.Errorf("objective has %d coefficients, want %d: %w", len(c), p.numVars, ErrBadConstraint)
	}
	p.objective = append([]float64(nil), c...)

	return nil
}

// AddLE appends the constraint coeffs·x ≤ rhs (coeffs copied).
//
// Errors: ErrBadConstraint on length mismatch.
func (p *Problem) AddLE(coeffs []float64, rhs float64) error {
	if len(coeffs) != p.numVars {
		return fmt.Errorf("row has %d coefficients, want %d: %w", len(coeffs), p.numVars, ErrBadConstraint)
	}
	p.g = append(p.g, append([]float64(nil), coeffs...))
	p.h = append(p.h, rhs)

	return nil
}

// AddGE appends the constraint coeffs·x ≥ rhs, stored as its ≤ negation.
//
// Errors: ErrBadConstraint on length mismatch.
func (p *Problem) AddGE(coeffs []float64, rhs float64) error {
	neg := make([]float64, len(coeffs))
	for k, c := range coeffs {
		neg[k] = -c
	}

	return p.AddLE(neg, -rhs)
}

// AddEQ appends the constraint coeffs·x = rhs (coeffs copied).
//
// Errors: ErrBadConstraint on length mismatch.
func (p *Problem) AddEQ(coeffs []float64, rhs float64) error {
	if len(coeffs) != p.numVars {
		return fmt.Errorf("row has %d coefficients, want %d: %w", len(coeffs), p.numVars, ErrBadConstraint)
	}
	p.a = append(p.a, append([]float64(nil), coeffs...))
	p.b = append(p.b, rhs)

	return nil
}

// validate checks structural soundness before a solve.
func (p *Problem) validate() error {
	if p == nil {
		return ErrNilProblem
	}
	if p.numVars <= 0 {
		return ErrNoVariables
	}

	return nil
}

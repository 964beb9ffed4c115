package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// DefaultTolerance is the pivot tolerance handed to gonum's simplex.
// Zero would select gonum's own default; the engine pins a value so that the
// primary and fallback solvers of DefaultPortfolio differ only in this knob.
const DefaultTolerance = 1e-10

// RelaxedTolerance is the loosened tolerance used by the fallback member of
// DefaultPortfolio, for programs where the tight setting stalls numerically.
const RelaxedTolerance = 1e-6

// Simplex solves a Problem with gonum's dense simplex method
// (gonum.org/v1/gonum/optimize/convex/lp). The general form is converted to
// standard form via lp.Convert; free variables are split internally, so the
// reported X matches the Problem's own variable layout.
type Simplex struct {
	// Tol is the pivot tolerance passed to lp.Simplex.
	Tol float64
}

// NewSimplex returns a Simplex with DefaultTolerance.
func NewSimplex() Simplex { return Simplex{Tol: DefaultTolerance} }

var _ Solver = Simplex{}

// Solve converts p to standard form and runs the simplex method.
//
// Status mapping:
//   - nil error            → StatusOptimal, X recovered as x⁺ − x⁻;
//   - lp.ErrInfeasible     → StatusInfeasible;
//   - lp.ErrUnbounded      → StatusUnbounded;
//   - anything else        → StatusError with the underlying error.
//
// An internal panic of the numeric kernel is recovered into StatusError, so
// callers can rely on Solve never unwinding through them.
//
// Complexity: exponential worst case, fast in practice for the small dense
// programs this module produces (tens of variables and rows).
func (s Simplex) Solve(p *Problem) (res Result, err error) {
	if verr := p.validate(); verr != nil {
		return Result{Status: StatusError}, verr
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result{Status: StatusError}
			err = fmt.Errorf("solver: simplex panic: %v", r)
		}
	}()

	c := p.objective
	if c == nil {
		c = make([]float64, p.numVars) // feasibility: minimize 0
	}

	var (
		g mat.Matrix
		a mat.Matrix
		h []float64
		b []float64
	)
	if len(p.g) > 0 {
		g = mat.NewDense(len(p.g), p.numVars, flatten(p.g))
		h = p.h
	}
	if len(p.a) > 0 {
		a = mat.NewDense(len(p.a), p.numVars, flatten(p.a))
		b = p.b
	}

	cStd, aStd, bStd := lp.Convert(c, g, h, a, b)

	_, xStd, serr := lp.Simplex(cStd, aStd, bStd, s.Tol, nil)
	switch {
	case serr == nil:
		// Standard form splits every free variable: x = x⁺ − x⁻.
		x := make([]float64, p.numVars)
		for k := 0; k < p.numVars; k++ {
			x[k] = xStd[k] - xStd[p.numVars+k]
		}

		return Result{Status: StatusOptimal, X: x}, nil
	case errors.Is(serr, lp.ErrInfeasible):
		return Result{Status: StatusInfeasible}, nil
	case errors.Is(serr, lp.ErrUnbounded):
		return Result{Status: StatusUnbounded}, nil
	default:
		return Result{Status: StatusError}, fmt.Errorf("solver: simplex failed: %w", serr)
	}
}

// flatten concatenates constraint rows into the row-major buffer mat.NewDense expects.
func flatten(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	buf := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		buf = append(buf, r...)
	}

	return buf
}

package minshare

import (
	"fmt"

	"github.com/fairdivision/divvy/solver"
	"github.com/fairdivision/divvy/valuation"
)

// AllocationForGraph searches for an allocation satisfying the criterion
// among allocations supported on the consumption graph g: one LP variable per
// graph edge, every object fully distributed, all fractions nonnegative, plus
// the criterion's fairness rows. Cells without an edge stay zero.
//
// Contracts:
//   - g and v must have identical shape;
//   - the criterion's constraints must be expressible over g's edges.
//
// Returns ErrInfeasible when the LP has no solution (the normal outcome for
// most candidate graphs); any other error is a genuine solver failure.
//
// Complexity: LP over Σ edges variables with m equality and O(n²) inequality
// rows; the LP solve dominates.
func AllocationForGraph(g *ConsumptionGraph, v *valuation.ValuationMatrix, c Criterion, opts ...Option) (*valuation.AllocationMatrix, error) {
	if v == nil {
		return nil, ErrNilValuation
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if c == nil {
		return nil, ErrNilCriterion
	}
	if g.NumAgents() != v.NumAgents() || g.NumObjects() != v.NumObjects() {
		return nil, ErrShapeMismatch
	}
	o := gatherOptions(opts...)

	n, m := v.NumAgents(), v.NumObjects()

	// One LP column per edge; absent cells are structurally zero.
	varIndex := make([]int, n*m)
	numVars := 0
	for k := range varIndex {
		varIndex[k] = -1
	}
	for i := 0; i < n; i++ {
		for obj := 0; obj < m; obj++ {
			if g.Edge(i, obj) {
				varIndex[i*m+obj] = numVars
				numVars++
			}
		}
	}
	if numVars == 0 {
		return nil, ErrInfeasible
	}
	varOf := func(agent, object int) (int, bool) {
		col := varIndex[agent*m+object]

		return col, col >= 0
	}

	p := solver.NewProblem(numVars)

	// Completeness: every object's fractions sum to one. An uncovered object
	// has an all-zero row, which the LP correctly reports as infeasible.
	for obj := 0; obj < m; obj++ {
		row := make([]float64, numVars)
		covered := false
		for i := 0; i < n; i++ {
			if col, ok := varOf(i, obj); ok {
				row[col] = 1
				covered = true
			}
		}
		if !covered {
			return nil, fmt.Errorf("object %d has no consumer: %w", obj, ErrInfeasible)
		}
		if err := p.AddEQ(row, 1); err != nil {
			return nil, err
		}
	}

	// Nonnegativity per edge variable.
	for col := 0; col < numVars; col++ {
		row := make([]float64, numVars)
		row[col] = 1
		if err := p.AddGE(row, 0); err != nil {
			return nil, err
		}
	}

	if err := c.Constrain(p, g, v, varOf); err != nil {
		return nil, err
	}

	res, err := o.solver.Solve(p)
	if err != nil {
		return nil, err
	}
	switch res.Status {
	case solver.StatusOptimal:
		// fall through to matrix assembly
	case solver.StatusInfeasible, solver.StatusUnbounded:
		return nil, ErrInfeasible
	default:
		return nil, fmt.Errorf("solver returned status %s without error", res.Status)
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, m)
		for obj := 0; obj < m; obj++ {
			if col, ok := varOf(i, obj); ok {
				f := res.X[col]
				// Strip solver dust outside the unit interval.
				if f < 0 {
					f = 0
				} else if f > 1 {
					f = 1
				}
				rows[i][obj] = f
			}
		}
	}

	return valuation.NewAllocationMatrix(rows)
}

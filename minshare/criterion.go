package minshare

import (
	"math"

	"github.com/fairdivision/divvy/solver"
	"github.com/fairdivision/divvy/valuation"
	"github.com/fairdivision/divvy/welfare"
)

// Criterion is one fairness notion expressible as linear constraints over an
// allocation restricted to a consumption graph. Implementations are stateless
// or memoize derived data; all are safe for reuse across graphs of the same
// valuation.
type Criterion interface {
	// Adjective names the criterion for logs ("proportional", "envy-free", ...).
	Adjective() string

	// PruneThresholds returns per-agent utility floors that every allocation
	// satisfying the criterion must meet. The generator uses them as a
	// necessary-condition prune; they need not be sufficient.
	PruneThresholds(v *valuation.ValuationMatrix) ([]float64, error)

	// Constrain adds the criterion's constraints to p. varOf maps an
	// (agent, object) cell to its LP column and reports whether the graph
	// carries that edge; absent cells are fixed to zero and must be skipped.
	Constrain(p *solver.Problem, g *ConsumptionGraph, v *valuation.ValuationMatrix, varOf func(agent, object int) (int, bool)) error
}

// utilityRow builds the coefficient vector of agent i's utility from bundle
// rows of agent j, restricted to the graph's edges: coeff·x = u_i(X_j).
func utilityRow(p *solver.Problem, v *valuation.ValuationMatrix, i, j int, varOf func(int, int) (int, bool)) []float64 {
	row := make([]float64, p.NumVars())
	for o := 0; o < v.NumObjects(); o++ {
		if col, ok := varOf(j, o); ok {
			row[col] = v.Value(i, o)
		}
	}

	return row
}

// proportionalCriterion requires u_i(X_i) ≥ total_i / n for every agent.
type proportionalCriterion struct{}

// ProportionalCriterion returns the proportional-fair-share criterion.
func ProportionalCriterion() Criterion { return proportionalCriterion{} }

func (proportionalCriterion) Adjective() string { return "proportional" }

func (proportionalCriterion) PruneThresholds(v *valuation.ValuationMatrix) ([]float64, error) {
	return v.ProportionalThresholds(), nil
}

func (proportionalCriterion) Constrain(p *solver.Problem, g *ConsumptionGraph, v *valuation.ValuationMatrix, varOf func(int, int) (int, bool)) error {
	for i, floor := range v.ProportionalThresholds() {
		if err := p.AddGE(utilityRow(p, v, i, i, varOf), floor); err != nil {
			return err
		}
	}

	return nil
}

// thresholdCriterion requires u_i(X_i) ≥ t[i] with caller-supplied floors.
type thresholdCriterion struct {
	t []float64
}

// ThresholdCriterion returns a criterion with explicit per-agent utility
// floors. Each floor must be a finite number; the slice length is checked
// against the valuation at solve time.
func ThresholdCriterion(thresholds []float64) Criterion {
	t := make([]float64, len(thresholds))
	copy(t, thresholds)

	return thresholdCriterion{t: t}
}

func (thresholdCriterion) Adjective() string { return "threshold" }

func (c thresholdCriterion) PruneThresholds(v *valuation.ValuationMatrix) ([]float64, error) {
	if len(c.t) != v.NumAgents() {
		return nil, ErrBadThresholds
	}
	for _, f := range c.t {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, ErrBadThresholds
		}
	}
	out := make([]float64, len(c.t))
	copy(out, c.t)

	return out, nil
}

func (c thresholdCriterion) Constrain(p *solver.Problem, g *ConsumptionGraph, v *valuation.ValuationMatrix, varOf func(int, int) (int, bool)) error {
	if len(c.t) != v.NumAgents() {
		return ErrBadThresholds
	}
	for i, floor := range c.t {
		if err := p.AddGE(utilityRow(p, v, i, i, varOf), floor); err != nil {
			return err
		}
	}

	return nil
}

// envyFreeCriterion requires u_i(X_i) ≥ u_i(X_j) for every ordered pair.
type envyFreeCriterion struct{}

// EnvyFreeCriterion returns the envy-freeness criterion: every agent values
// its own bundle at least as much as anyone else's.
func EnvyFreeCriterion() Criterion { return envyFreeCriterion{} }

func (envyFreeCriterion) Adjective() string { return "envy-free" }

// PruneThresholds returns the proportional floors: with additive valuations
// over divisible objects envy-freeness implies proportionality, so any graph
// that cannot supply the proportional share cannot carry an envy-free
// allocation either.
func (envyFreeCriterion) PruneThresholds(v *valuation.ValuationMatrix) ([]float64, error) {
	return v.ProportionalThresholds(), nil
}

func (envyFreeCriterion) Constrain(p *solver.Problem, g *ConsumptionGraph, v *valuation.ValuationMatrix, varOf func(int, int) (int, bool)) error {
	n := v.NumAgents()
	for i := 0; i < n; i++ {
		own := utilityRow(p, v, i, i, varOf)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			other := utilityRow(p, v, i, j, varOf)
			row := make([]float64, len(own))
			for k := range row {
				row[k] = own[k] - other[k]
			}
			if err := p.AddGE(row, 0); err != nil {
				return err
			}
		}
	}

	return nil
}

// maxProductCriterion requires u_i(X_i) ≥ (1−tolerance)·u_i(Z_i), where Z is
// the max-product (max Nash welfare) allocation. The reference utilities are
// computed once per valuation and memoized.
type maxProductCriterion struct {
	tolerance float64
	refFor    *valuation.ValuationMatrix
	refUtils  []float64
}

// MaxProductCriterion returns the tolerance-relaxed max-product criterion.
// tolerance must lie in [0, 1); 0 demands the exact max-product utilities.
func MaxProductCriterion(tolerance float64) Criterion {
	return &maxProductCriterion{tolerance: tolerance}
}

// MaxProductCriterionWithReference is MaxProductCriterion with the reference
// utility profile supplied by the caller instead of computed internally.
func MaxProductCriterionWithReference(tolerance float64, refUtilities []float64) Criterion {
	utils := make([]float64, len(refUtilities))
	copy(utils, refUtilities)

	return &maxProductCriterion{tolerance: tolerance, refUtils: utils, refFor: nil}
}

func (*maxProductCriterion) Adjective() string { return "max-product" }

func (c *maxProductCriterion) reference(v *valuation.ValuationMatrix) ([]float64, error) {
	if c.refUtils != nil && (c.refFor == nil || c.refFor == v) {
		return c.refUtils, nil
	}
	alloc, err := welfare.MaxProductAllocation(v, nil)
	if err != nil {
		return nil, err
	}
	utils, err := alloc.UtilityProfile(v)
	if err != nil {
		return nil, err
	}
	c.refUtils = utils
	c.refFor = v

	return c.refUtils, nil
}

func (c *maxProductCriterion) PruneThresholds(v *valuation.ValuationMatrix) ([]float64, error) {
	if c.tolerance < 0 || c.tolerance >= 1 {
		return nil, ErrBadTolerance
	}
	ref, err := c.reference(v)
	if err != nil {
		return nil, err
	}
	if len(ref) != v.NumAgents() {
		return nil, ErrBadThresholds
	}
	out := make([]float64, len(ref))
	for i, u := range ref {
		out[i] = (1 - c.tolerance) * u
	}

	return out, nil
}

func (c *maxProductCriterion) Constrain(p *solver.Problem, g *ConsumptionGraph, v *valuation.ValuationMatrix, varOf func(int, int) (int, bool)) error {
	floors, err := c.PruneThresholds(v)
	if err != nil {
		return err
	}
	for i, floor := range floors {
		if err := p.AddGE(utilityRow(p, v, i, i, varOf), floor); err != nil {
			return err
		}
	}

	return nil
}

package minshare

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fairdivision/divvy/valuation"
)

// FindAllocation finds a criterion-satisfying allocation of v with the
// minimum number of sharings.
//
// The search climbs the allowed-sharing ladder k = 0, 1, …, n−1. At each rung
// it enumerates the consumption graphs with exactly k sharings and solves a
// feasibility LP per graph; the first feasible graph yields the answer, and
// its sharing count is minimal because every smaller count was exhausted
// first. The returned allocation is rounded to the configured decimal digits.
//
// Contracts:
//   - ctx may be nil (treated as context.Background); cancellation is checked
//     between feasibility solves;
//   - v and c must be non-nil.
//
// Errors: ErrNilValuation, ErrNilCriterion, criterion validation errors
// (ErrBadThresholds, ErrBadTolerance), ctx.Err() on cancellation, solver
// failures, and the two bug sentinels ErrNoAllocation and ErrSharingOverflow
// that the n−1 existence bound rules out on correct runs.
//
// Complexity: exponential in n and m (graph enumeration), each candidate one
// small LP. Deterministic for a fixed valuation, criterion and solver.
func FindAllocation(ctx context.Context, v *valuation.ValuationMatrix, c Criterion, opts ...Option) (*valuation.AllocationMatrix, error) {
	if v == nil {
		return nil, ErrNilValuation
	}
	if c == nil {
		return nil, ErrNilCriterion
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := gatherOptions(opts...)

	thresholds, err := c.PruneThresholds(v)
	if err != nil {
		return nil, err
	}

	n := v.NumAgents()
	for k := 0; k < n; k++ {
		o.logger.Debug("searching sharing level",
			zap.String("criterion", c.Adjective()),
			zap.Int("sharings", k))

		gen, err := NewGraphGenerator(v, thresholds)
		if err != nil {
			return nil, err
		}
		gen.SetMaxSharings(k)

		var (
			found    *valuation.AllocationMatrix
			hardErr  error
			examined int
		)
		gen.Generate(func(g *ConsumptionGraph) bool {
			// Graphs below this rung were exhausted at earlier levels.
			if g.NumSharings() != k {
				return true
			}
			if err := ctx.Err(); err != nil {
				hardErr = err

				return false
			}
			examined++

			alloc, err := AllocationForGraph(g, v, c, opts...)
			switch {
			case err == nil:
				found = alloc

				return false
			case errors.Is(err, ErrInfeasible):
				return true
			default:
				hardErr = err

				return false
			}
		})

		if hardErr != nil {
			return nil, hardErr
		}
		if found != nil {
			found.Round(o.digits)
			if found.NumSharings() >= n {
				return nil, ErrSharingOverflow
			}
			o.logger.Info("allocation found",
				zap.String("criterion", c.Adjective()),
				zap.Int("sharings", found.NumSharings()),
				zap.Int("graphsExamined", examined))

			return found, nil
		}
		o.logger.Debug("sharing level exhausted",
			zap.Int("sharings", k),
			zap.Int("graphsExamined", examined))
	}

	return nil, ErrNoAllocation
}

// Proportional finds an allocation giving every agent at least a 1/n share
// of its total value, with the minimum number of sharings.
func Proportional(v *valuation.ValuationMatrix, opts ...Option) (*valuation.AllocationMatrix, error) {
	return FindAllocation(context.Background(), v, ProportionalCriterion(), opts...)
}

// EnvyFree finds an allocation in which no agent prefers another agent's
// bundle to its own, with the minimum number of sharings.
func EnvyFree(v *valuation.ValuationMatrix, opts ...Option) (*valuation.AllocationMatrix, error) {
	return FindAllocation(context.Background(), v, EnvyFreeCriterion(), opts...)
}

// MaxProduct finds an allocation giving every agent at least (1−tolerance) of
// its utility under the max-Nash-welfare allocation, with the minimum number
// of sharings. A non-positive tolerance selects DefaultMaxProductTolerance.
func MaxProduct(v *valuation.ValuationMatrix, tolerance float64, opts ...Option) (*valuation.AllocationMatrix, error) {
	if tolerance <= 0 {
		tolerance = DefaultMaxProductTolerance
	}

	return FindAllocation(context.Background(), v, MaxProductCriterion(tolerance), opts...)
}

// Thresholds finds an allocation giving each agent i utility at least
// thresholds[i], with the minimum number of sharings.
func Thresholds(v *valuation.ValuationMatrix, thresholds []float64, opts ...Option) (*valuation.AllocationMatrix, error) {
	return FindAllocation(context.Background(), v, ThresholdCriterion(thresholds), opts...)
}

package welfare

import (
	"errors"
	"fmt"
	"math"

	"github.com/fairdivision/divvy/valuation"
)

// Defaults for the proportional-response iteration. The bid space is scale-1
// (each agent spends a unit budget), so DefaultBidTolerance bounds the
// absolute per-bid movement at convergence.
const (
	DefaultMaxIterations = 5000
	DefaultBidTolerance  = 1e-12
)

var (
	// ErrZeroRow is returned when an agent values no object at all;
	// the Nash welfare is then identically zero and no reference exists.
	ErrZeroRow = errors.New("welfare: agent with all-zero valuation row")

	// ErrNoConvergence is returned when the bid vector is still moving after
	// the iteration budget. With the defaults this indicates a malformed
	// instance rather than a tight budget.
	ErrNoConvergence = errors.New("welfare: proportional response did not converge")
)

// Options tunes MaxProductAllocation.
//   - MaxIterations: iteration budget (DefaultMaxIterations when 0).
//   - BidTolerance:  convergence threshold on the max absolute bid change
//     (DefaultBidTolerance when 0).
type Options struct {
	MaxIterations int
	BidTolerance  float64
}

// MaxProductAllocation returns the allocation maximizing Πᵢ uᵢ, the product of
// agents' utilities, over all complete fractional allocations.
//
// Algorithm (proportional response on the equal-budget linear Fisher market):
//  1. b[i][o] ← v[i][o] / Σₒ v[i][o]            (spend the unit budget pro rata)
//  2. repeat:  p[o] = Σᵢ b[i][o];  x[i][o] = b[i][o]/p[o]
//     u[i]  = Σₒ x[i][o]·v[i][o]
//     b'[i][o] = x[i][o]·v[i][o] / u[i]
//     until maxᵢₒ |b'−b| ≤ tolerance.
//  3. Objects valued by nobody carry no bids; they are split equally, which
//     leaves every utility unchanged.
//
// Contracts:
//   - v non-nil; every agent must value at least one object (else ErrZeroRow).
//
// Complexity: O(iterations·n·m) time, O(n·m) space.
func MaxProductAllocation(v *valuation.ValuationMatrix, opts *Options) (*valuation.AllocationMatrix, error) {
	n, m := v.NumAgents(), v.NumObjects()

	maxIter := DefaultMaxIterations
	tol := DefaultBidTolerance
	if opts != nil {
		if opts.MaxIterations > 0 {
			maxIter = opts.MaxIterations
		}
		if opts.BidTolerance > 0 {
			tol = opts.BidTolerance
		}
	}

	// Stage 1 - initial pro-rata bids.
	bids := make([][]float64, n)
	for i := 0; i < n; i++ {
		total := v.AgentTotal(i)
		if total == 0 {
			return nil, fmt.Errorf("agent %d: %w", i, ErrZeroRow)
		}
		bids[i] = make([]float64, m)
		for o := 0; o < m; o++ {
			bids[i][o] = v.Value(i, o) / total
		}
	}

	// Stage 2 - proportional response until the bids are stationary.
	x := make([][]float64, n)
	for i := range x {
		x[i] = make([]float64, m)
	}
	prices := make([]float64, m)
	utils := make([]float64, n)

	converged := false
	for iter := 0; iter < maxIter && !converged; iter++ {
		for o := 0; o < m; o++ {
			prices[o] = 0
			for i := 0; i < n; i++ {
				prices[o] += bids[i][o]
			}
		}
		for i := 0; i < n; i++ {
			utils[i] = 0
			for o := 0; o < m; o++ {
				if prices[o] > 0 {
					x[i][o] = bids[i][o] / prices[o]
				} else {
					x[i][o] = 0
				}
				utils[i] += x[i][o] * v.Value(i, o)
			}
		}

		delta := 0.0
		for i := 0; i < n; i++ {
			for o := 0; o < m; o++ {
				next := x[i][o] * v.Value(i, o) / utils[i]
				if d := math.Abs(next - bids[i][o]); d > delta {
					delta = d
				}
				bids[i][o] = next
			}
		}
		converged = delta <= tol
	}
	if !converged {
		return nil, ErrNoConvergence
	}

	// Stage 3 - worthless objects get split equally; utilities are unaffected.
	for o := 0; o < m; o++ {
		if prices[o] == 0 {
			for i := 0; i < n; i++ {
				x[i][o] = 1 / float64(n)
			}
		}
	}

	return valuation.NewAllocationMatrix(x)
}

// NashWelfare returns the product of the given utilities.
func NashWelfare(utilities []float64) float64 {
	prod := 1.0
	for _, u := range utilities {
		prod *= u
	}

	return prod
}

// Package welfare computes welfare-maximizing reference allocations of
// divisible goods. Its one product is the max-Nash-welfare (max-product,
// Eisenberg–Gale) allocation, which the min-sharing engine consumes as a
// per-agent utility baseline for its approximate max-product criterion.
//
// Instead of delegating to a general convex solver, MaxProductAllocation runs
// proportional-response dynamics on the equivalent linear Fisher market with
// equal budgets: each agent repeatedly re-bids its unit budget across objects
// in proportion to the utility each object contributed in the previous round.
// The bid vector converges to the market equilibrium, whose allocation is
// exactly the max-product allocation. The iteration is deterministic and
// accurate to far below the tolerances the engine applies on top of it.
package welfare

// Package divvy computes fair allocations of divisible goods among agents
// with additive valuations, minimizing the number of shared (split) objects.
//
// 🚀 What is divvy?
//
//	A practical fair-division toolkit that brings together:
//		• Valuations: validated agent×object value matrices and allocation results
//		• Criteria: proportionality, envy-freeness, max-product (Nash welfare)
//		  guarantees and arbitrary per-agent utility thresholds
//		• Min-sharing search: consumption-graph enumeration with pruning,
//		  feasibility LPs, and the n−1 sharing-bound guarantee
//		• Welfare: a max-Nash-welfare reference allocator via
//		  proportional-response dynamics
//		• Batch running: wall-clock-bounded searches with status reporting
//
// ✨ Why choose divvy?
//
//   - Exact minimality – the first answer found provably has the fewest splits
//   - Deterministic – same inputs, same solver, same allocation, every run
//   - Pluggable – LP back ends and fairness criteria behind small interfaces
//   - Quiet by default – structured logging only when you inject a logger
//
// Everything is organized under four subpackages:
//
//	valuation/ — value matrices, allocation matrices, utility profiles
//	solver/    — linear-programming feasibility layer (simplex + portfolio)
//	welfare/   — max-Nash-welfare reference allocations
//	minshare/  — the min-sharing search engine and its public entry points
//
// Quick example, two agents and two objects:
//
//	v, _ := valuation.NewValuationMatrix([][]float64{{3, 2}, {1, 4}})
//	z, _ := minshare.Proportional(v)
//	// z assigns object 0 to agent 0 and object 1 to agent 1: zero sharings.
//
// Reference: Sandomirskiy & Segal-Halevi, "Efficient Fair Division with
// Minimal Sharing", https://arxiv.org/abs/1908.01669.
//
//	go get github.com/fairdivision/divvy
package divvy

// Package minshare finds fair allocations of divisible goods with the minimum
// number of sharings, i.e. objects split between two or more agents.
//
// Reference: Fedor Sandomirskiy and Erel Segal-Halevi,
// "Efficient Fair Division with Minimal Sharing" (2019),
// https://arxiv.org/abs/1908.01669. The central guarantee is that for n
// agents a fair allocation with at most n−1 sharings always exists, for each
// of the supported fairness criteria.
//
// Algorithm Outline:
//  1. A candidate "consumption graph" fixes which (agent, object) cells of an
//     allocation may be positive; its sharing count is its edge surplus over
//     the one-edge-per-object minimum.
//  2. GraphGenerator enumerates candidate graphs by starting from the
//     skeleton in which agent 0 consumes everything and adding one agent at a
//     time: each existing agent's edges, ordered by the value ratio against
//     the newcomer, are kept, handed over, or doubled. Graphs that exceed the
//     sharing ceiling or fail a cheap necessary fairness condition are pruned
//     as they are built.
//  3. For each surviving graph, a feasibility LP restricted to the graph's
//     edges is solved: columns sum to 1, cells are nonnegative, and the
//     criterion's utility constraints hold. The first feasible graph found
//     while climbing the allowed-sharing ladder k = 0, 1, … yields an
//     allocation whose sharing count is minimal by construction.
//
// Criteria: Proportional, EnvyFree, MaxProduct(tolerance) and the general
// Thresholds criterion they reduce to. RunWithTimeLimit wraps a search with a
// wall-clock budget and reports a status instead of ever failing.
//
// Complexity: the enumeration is exponential (bounded by 2^(n·m) graphs, each
// a small LP); the intended regime is small instances, the same as the
// reference implementation's.
//
// Concurrency: a search is single-threaded and blocking. Cancellation via
// context is best-effort: it is honored between feasibility solves, not
// inside one. Candidates within one ladder level are independent, so callers
// needing parallelism can shard valuation instances across goroutines; the
// engine deliberately does not parallelize internally.
package minshare

// Package solver is the numeric back end of the fair-division engine: a small,
// pluggable linear-programming facade over gonum's simplex implementation.
//
// The engine only ever needs one question answered: "does this constrained
// program have a feasible point, and if so, give me one". Package solver
// exposes exactly that contract:
//
//   - Problem     — a general-form LP built incrementally (AddLE/AddGE/AddEQ,
//     optional objective; nil objective means pure feasibility).
//   - Solver      — Solve(*Problem) (Result, error).
//   - Result      — Status ∈ {Optimal, Infeasible, Unbounded, Error} plus the
//     variable values when optimal.
//   - Simplex     — the gonum-backed implementation (lp.Convert + lp.Simplex).
//   - Portfolio   — an ordered fallback chain: the next solver is consulted
//     only when the previous one fails hard (StatusError), never when it
//     reports a definite infeasible/unbounded verdict.
//
// Status semantics matter to callers: Infeasible and Unbounded are answers,
// not failures. Only StatusError (numerical breakdown, unsupported structure)
// justifies falling back or surfacing an error.
//
// Determinism: gonum's simplex is deterministic for a fixed problem, so equal
// inputs yield equal vertices. Feasibility problems (zero objective) return an
// arbitrary but reproducible vertex of the feasible polytope.
package solver

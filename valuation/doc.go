// Package valuation defines the two dense matrix value types that every
// fair-division algorithm in this module consumes and produces:
//
//   - ValuationMatrix — agents × objects, nonnegative values; how much each
//     agent values each object. Immutable once constructed.
//   - AllocationMatrix — agents × objects, fractions in [0,1]; which share of
//     each object each agent receives. Each column of a complete allocation
//     sums to exactly 1.
//
// Both types are small row-major buffers with strict constructors: shape,
// finiteness and sign are validated up front, so accessors can stay cheap and
// trust their indices. Negative valuations (chores) are rejected; this module
// handles goods only.
//
// The one derived quantity algorithms care about is the sharing count of an
// allocation: the number of object splits above the structural minimum of one
// owner per object. A cell counts as occupied once its fraction exceeds
// Epsilon, so solver dust does not inflate the count; use Round first when
// comparing against exact expectations.
package valuation

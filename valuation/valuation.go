package valuation

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Epsilon is the numeric tolerance used by structural checks in this package:
// occupancy of allocation cells, column-sum verification, and the like.
const Epsilon = 1e-9

// Sentinel errors for matrix construction and access. All constructors and
// accessors return these (possibly wrapped with context); match with errors.Is.
var (
	// ErrEmptyMatrix is returned when a matrix has no rows or no columns.
	ErrEmptyMatrix = errors.New("valuation: matrix must have at least one row and one column")

	// ErrRaggedMatrix is returned when input rows have differing lengths.
	ErrRaggedMatrix = errors.New("valuation: rows must all have the same length")

	// ErrNegativeValue is returned when a valuation entry is negative.
	// Negative values denote chores, which this module does not handle.
	ErrNegativeValue = errors.New("valuation: negative value (chores are unsupported)")

	// ErrNaNInf is returned when an entry is NaN or ±Inf.
	ErrNaNInf = errors.New("valuation: NaN or Inf encountered")

	// ErrFractionRange is returned when an allocation entry lies outside [0,1]
	// beyond Epsilon.
	ErrFractionRange = errors.New("valuation: allocation fraction outside [0,1]")

	// ErrShapeMismatch indicates two matrices with incompatible dimensions.
	ErrShapeMismatch = errors.New("valuation: shape mismatch")
)

// ValuationMatrix holds the value v[i][o] that agent i assigns to object o.
// It is immutable after construction; all entries are finite and nonnegative.
type ValuationMatrix struct {
	v    []float64 // row-major buffer, len == n*m
	n, m int       // agents, objects
}

// NewValuationMatrix validates rows and builds an immutable ValuationMatrix.
//
// Contracts:
//   - rows must be non-empty and rectangular;
//   - every entry must be finite and ≥ 0.
//
// Errors: ErrEmptyMatrix, ErrRaggedMatrix, ErrNaNInf, ErrNegativeValue.
//
// Complexity: O(n·m) time and space (the input is copied; later mutation of
// rows does not affect the matrix).
func NewValuationMatrix(rows [][]float64) (*ValuationMatrix, error) {
	n := len(rows)
	if n == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	m := len(rows[0])

	buf := make([]float64, n*m)
	for i, row := range rows {
		if len(row) != m {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), m, ErrRaggedMatrix)
		}
		for o, val := range row {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return nil, fmt.Errorf("v[%d][%d]: %w", i, o, ErrNaNInf)
			}
			if val < 0 {
				return nil, fmt.Errorf("v[%d][%d]=%g: %w", i, o, val, ErrNegativeValue)
			}
			buf[i*m+o] = val
		}
	}

	return &ValuationMatrix{v: buf, n: n, m: m}, nil
}

// NumAgents returns n, the number of rows.
func (v *ValuationMatrix) NumAgents() int { return v.n }

// NumObjects returns m, the number of columns.
func (v *ValuationMatrix) NumObjects() int { return v.m }

// Value returns v[agent][object]. Indices are trusted to be in range.
func (v *ValuationMatrix) Value(agent, object int) float64 {
	return v.v[agent*v.m+object]
}

// AgentTotal returns the agent's value for the full object set, Σₒ v[i][o].
func (v *ValuationMatrix) AgentTotal(agent int) float64 {
	total := 0.0
	for o := 0; o < v.m; o++ {
		total += v.v[agent*v.m+o]
	}

	return total
}

// ProportionalThresholds returns the per-agent proportional fair share:
// thresholds[i] = AgentTotal(i) / n.
func (v *ValuationMatrix) ProportionalThresholds() []float64 {
	t := make([]float64, v.n)
	for i := 0; i < v.n; i++ {
		t[i] = v.AgentTotal(i) / float64(v.n)
	}

	return t
}

// String renders the matrix row by row, for logs and test failures.
func (v *ValuationMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < v.n; i++ {
		sb.WriteByte('[')
		for o := 0; o < v.m; o++ {
			if o > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", v.v[i*v.m+o])
		}
		sb.WriteByte(']')
		if i < v.n-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

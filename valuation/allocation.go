package valuation

import (
	"fmt"
	"math"
	"strings"
)

// AllocationMatrix holds the fraction z[i][o] of object o given to agent i.
// A complete allocation has every column summing to exactly 1. The matrix is
// mutable only through Round; algorithms treat it as a result value.
type AllocationMatrix struct {
	z    []float64 // row-major buffer, len == n*m
	n, m int
}

// NewAllocationMatrix validates rows and builds an AllocationMatrix.
//
// Contracts:
//   - rows must be non-empty and rectangular;
//   - every entry must be finite and inside [0,1] within Epsilon
//     (solver dust slightly below 0 or above 1 is clamped, not rejected).
//
// Errors: ErrEmptyMatrix, ErrRaggedMatrix, ErrNaNInf, ErrFractionRange.
//
// Complexity: O(n·m).
func NewAllocationMatrix(rows [][]float64) (*AllocationMatrix, error) {
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
		for o, f := range row {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("z[%d][%d]: %w", i, o, ErrNaNInf)
			}
			if f < -Epsilon || f > 1+Epsilon {
				return nil, fmt.Errorf("z[%d][%d]=%g: %w", i, o, f, ErrFractionRange)
			}
			// Clamp numerical dust into the unit interval.
			if f < 0 {
				f = 0
			} else if f > 1 {
				f = 1
			}
			buf[i*m+o] = f
		}
	}

	return &AllocationMatrix{z: buf, n: n, m: m}, nil
}

// NumAgents returns n, the number of rows.
func (z *AllocationMatrix) NumAgents() int { return z.n }

// NumObjects returns m, the number of columns.
func (z *AllocationMatrix) NumObjects() int { return z.m }

// Fraction returns z[agent][object].
func (z *AllocationMatrix) Fraction(agent, object int) float64 {
	return z.z[agent*z.m+object]
}

// ColumnSum returns Σᵢ z[i][object], the total distributed share of one object.
// A complete allocation yields 1 for every column (within solver tolerance).
func (z *AllocationMatrix) ColumnSum(object int) float64 {
	sum := 0.0
	for i := 0; i < z.n; i++ {
		sum += z.z[i*z.m+object]
	}

	return sum
}

// NumSharings counts the object splits above the structural minimum of one
// owner per object: Σ occupied(z[i][o]) − m, clamped at 0. A cell is occupied
// once its fraction exceeds Epsilon, so a freshly solved allocation should be
// rounded first when exact counts matter.
func (z *AllocationMatrix) NumSharings() int {
	occupied := 0
	for _, f := range z.z {
		if f > Epsilon {
			occupied++
		}
	}
	if occupied < z.m {
		return 0
	}

	return occupied - z.m
}

// UtilityProfile returns each agent's utility under v: u[i] = Σₒ z[i][o]·v[i][o].
//
// Errors: ErrShapeMismatch when v has a different shape.
func (z *AllocationMatrix) UtilityProfile(v *ValuationMatrix) ([]float64, error) {
	if v.NumAgents() != z.n || v.NumObjects() != z.m {
		return nil, ErrShapeMismatch
	}

	u := make([]float64, z.n)
	for i := 0; i < z.n; i++ {
		for o := 0; o < z.m; o++ {
			u[i] += z.z[i*z.m+o] * v.Value(i, o)
		}
	}

	return u, nil
}

// Round rounds every fraction to the given number of decimal digits, in place,
// and returns the receiver for chaining. Rounding may perturb row and column
// sums by up to m·0.5·10^−digits; it exists to strip solver dust before
// counting sharings, not to renormalize.
func (z *AllocationMatrix) Round(digits int) *AllocationMatrix {
	pow := math.Pow(10, float64(digits))
	for k, f := range z.z {
		r := math.Round(f*pow) / pow
		if r == 0 {
			r = 0 // normalize negative zero
		}
		z.z[k] = r
	}

	return z
}

// Rows returns a deep copy of the allocation as a slice of rows.
func (z *AllocationMatrix) Rows() [][]float64 {
	rows := make([][]float64, z.n)
	for i := 0; i < z.n; i++ {
		rows[i] = make([]float64, z.m)
		copy(rows[i], z.z[i*z.m:(i+1)*z.m])
	}

	return rows
}

// String renders the allocation row by row.
func (z *AllocationMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < z.n; i++ {
		sb.WriteByte('[')
		for o := 0; o < z.m; o++ {
			if o > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", z.z[i*z.m+o])
		}
		sb.WriteByte(']')
		if i < z.n-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

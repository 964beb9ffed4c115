package valuation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairdivision/divvy/valuation"
)

func TestNewAllocationMatrix_RejectsBadFractions(t *testing.T) {
	_, err := valuation.NewAllocationMatrix([][]float64{{0.5, 1.5}})
	assert.ErrorIs(t, err, valuation.ErrFractionRange)

	_, err = valuation.NewAllocationMatrix([][]float64{{-0.5, 1}})
	assert.ErrorIs(t, err, valuation.ErrFractionRange)
}

func TestNewAllocationMatrix_ClampsSolverDust(t *testing.T) {
	z, err := valuation.NewAllocationMatrix([][]float64{{-1e-12, 1 + 1e-12}})
	require.NoError(t, err)

	assert.Equal(t, 0.0, z.Fraction(0, 0))
	assert.Equal(t, 1.0, z.Fraction(0, 1))
}

func TestNumSharings_CountsSplitObjects(t *testing.T) {
	// Object 1 is split between both agents: one sharing.
	z, err := valuation.NewAllocationMatrix([][]float64{
		{1, 0.4, 0},
		{0, 0.6, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, z.NumSharings())

	// Integral assignment: zero sharings.
	whole, err := valuation.NewAllocationMatrix([][]float64{
		{1, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, whole.NumSharings())
}

func TestNumSharings_IgnoresDustOccupancy(t *testing.T) {
	z, err := valuation.NewAllocationMatrix([][]float64{
		{1, 1e-12},
		{0, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, z.NumSharings(), "sub-epsilon fractions are not occupancy")
}

func TestUtilityProfile(t *testing.T) {
	v, err := valuation.NewValuationMatrix([][]float64{{3, 2}, {1, 4}})
	require.NoError(t, err)
	z, err := valuation.NewAllocationMatrix([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	u, err := z.UtilityProfile(v)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, u)
}

func TestUtilityProfile_ShapeMismatch(t *testing.T) {
	v, err := valuation.NewValuationMatrix([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	z, err := valuation.NewAllocationMatrix([][]float64{{1, 0}})
	require.NoError(t, err)

	_, err = z.UtilityProfile(v)
	assert.ErrorIs(t, err, valuation.ErrShapeMismatch)
}

func TestRound_StripsDustAndChains(t *testing.T) {
	z, err := valuation.NewAllocationMatrix([][]float64{
		{0.5004, 0.0004},
		{0.4996, 0.9996},
	})
	require.NoError(t, err)

	got := z.Round(3)
	assert.Same(t, z, got, "Round returns the receiver")
	assert.Equal(t, 0.5, z.Fraction(0, 0))
	assert.Equal(t, 0.0, z.Fraction(0, 1))
	assert.Equal(t, 1, z.NumSharings(), "only object 0 stays split after rounding")
}

func TestRows_ReturnsDeepCopy(t *testing.T) {
	z, err := valuation.NewAllocationMatrix([][]float64{{1, 0}})
	require.NoError(t, err)

	rows := z.Rows()
	rows[0][0] = 0.25
	assert.Equal(t, 1.0, z.Fraction(0, 0))
}

func TestColumnSum(t *testing.T) {
	z, err := valuation.NewAllocationMatrix([][]float64{
		{0.3, 1},
		{0.7, 0},
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, z.ColumnSum(0), valuation.Epsilon)
	assert.InDelta(t, 1.0, z.ColumnSum(1), valuation.Epsilon)
}

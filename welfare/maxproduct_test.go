package welfare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairdivision/divvy/valuation"
	"github.com/fairdivision/divvy/welfare"
)

func TestMaxProductAllocation_IntegralOptimum(t *testing.T) {
	// Agents disagree strongly; the Nash product is maximized by giving each
	// agent its favorite object whole: utilities (3, 4), product 12.
	v, err := valuation.NewValuationMatrix([][]float64{{3, 2}, {1, 4}})
	require.NoError(t, err)

	z, err := welfare.MaxProductAllocation(v, nil)
	require.NoError(t, err)

	u, err := z.UtilityProfile(v)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, u[0], 1e-6)
	assert.InDelta(t, 4.0, u[1], 1e-6)
}

func TestMaxProductAllocation_IdenticalValuations(t *testing.T) {
	v, err := valuation.NewValuationMatrix([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)

	z, err := welfare.MaxProductAllocation(v, nil)
	require.NoError(t, err)

	// Symmetric instance: the equal split is the unique equilibrium.
	for o := 0; o < 2; o++ {
		assert.InDelta(t, 0.5, z.Fraction(0, o), 1e-9)
		assert.InDelta(t, 0.5, z.Fraction(1, o), 1e-9)
	}
}

func TestMaxProductAllocation_ContestedSingleObject(t *testing.T) {
	// One valuable object, one worthless to both. The contested object is
	// split in half (the Nash product 2a·(1−a) peaks at a = 1/2) and the
	// worthless one is split equally by convention.
	v, err := valuation.NewValuationMatrix([][]float64{{2, 0}, {1, 0}})
	require.NoError(t, err)

	z, err := welfare.MaxProductAllocation(v, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, z.Fraction(0, 0), 1e-9)
	assert.InDelta(t, 0.5, z.Fraction(1, 0), 1e-9)
	assert.InDelta(t, 0.5, z.Fraction(0, 1), 1e-9)
	assert.InDelta(t, 1.0, z.ColumnSum(1), 1e-9, "worthless objects are still fully distributed")
}

func TestMaxProductAllocation_ZeroRow(t *testing.T) {
	v, err := valuation.NewValuationMatrix([][]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)

	_, err = welfare.MaxProductAllocation(v, nil)
	assert.ErrorIs(t, err, welfare.ErrZeroRow)
}

func TestMaxProductAllocation_IterationBudget(t *testing.T) {
	v, err := valuation.NewValuationMatrix([][]float64{{3, 2}, {1, 4}})
	require.NoError(t, err)

	_, err = welfare.MaxProductAllocation(v, &welfare.Options{MaxIterations: 1})
	assert.ErrorIs(t, err, welfare.ErrNoConvergence)
}

func TestNashWelfare(t *testing.T) {
	assert.Equal(t, 24.0, welfare.NashWelfare([]float64{2, 3, 4}))
	assert.Equal(t, 0.0, welfare.NashWelfare([]float64{2, 0}))
	assert.Equal(t, 1.0, welfare.NashWelfare(nil), "empty profile multiplies to the identity")
}

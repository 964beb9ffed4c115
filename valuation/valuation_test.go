package valuation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairdivision/divvy/valuation"
)

func TestNewValuationMatrix_ValidatesShape(t *testing.T) {
	_, err := valuation.NewValuationMatrix(nil)
	assert.ErrorIs(t, err, valuation.ErrEmptyMatrix, "no rows")

	_, err = valuation.NewValuationMatrix([][]float64{{}})
	assert.ErrorIs(t, err, valuation.ErrEmptyMatrix, "empty row")

	_, err = valuation.NewValuationMatrix([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, valuation.ErrRaggedMatrix, "ragged rows")
}

func TestNewValuationMatrix_ValidatesEntries(t *testing.T) {
	_, err := valuation.NewValuationMatrix([][]float64{{1, -2}})
	assert.ErrorIs(t, err, valuation.ErrNegativeValue)

	_, err = valuation.NewValuationMatrix([][]float64{{math.NaN(), 1}})
	assert.ErrorIs(t, err, valuation.ErrNaNInf)

	_, err = valuation.NewValuationMatrix([][]float64{{math.Inf(1), 1}})
	assert.ErrorIs(t, err, valuation.ErrNaNInf)
}

func TestValuationMatrix_Accessors(t *testing.T) {
	v, err := valuation.NewValuationMatrix([][]float64{{20, 10}, {6, 4}})
	require.NoError(t, err)

	assert.Equal(t, 2, v.NumAgents())
	assert.Equal(t, 2, v.NumObjects())
	assert.Equal(t, 20.0, v.Value(0, 0))
	assert.Equal(t, 4.0, v.Value(1, 1))
	assert.Equal(t, 30.0, v.AgentTotal(0))
	assert.Equal(t, 10.0, v.AgentTotal(1))
}

func TestValuationMatrix_CopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	v, err := valuation.NewValuationMatrix(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1.0, v.Value(0, 0), "later mutation of input must not leak in")
}

func TestProportionalThresholds(t *testing.T) {
	v, err := valuation.NewValuationMatrix([][]float64{{30, 20, 10}, {5, 5, 5}})
	require.NoError(t, err)

	assert.Equal(t, []float64{30, 7.5}, v.ProportionalThresholds())
}

func TestProportionalThresholds_ZeroRowIsZero(t *testing.T) {
	v, err := valuation.NewValuationMatrix([][]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)

	th := v.ProportionalThresholds()
	assert.Equal(t, 0.0, th[0], "an agent valuing nothing needs nothing")
	assert.Equal(t, 1.0, th[1])
}

package minshare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairdivision/divvy/minshare"
	"github.com/fairdivision/divvy/valuation"
)

func mustGraph(t *testing.T, rows [][]bool) *minshare.ConsumptionGraph {
	t.Helper()
	g, err := minshare.NewConsumptionGraph(rows)
	require.NoError(t, err)

	return g
}

func TestNewConsumptionGraph_ValidatesShape(t *testing.T) {
	_, err := minshare.NewConsumptionGraph(nil)
	assert.ErrorIs(t, err, valuation.ErrEmptyMatrix)

	_, err = minshare.NewConsumptionGraph([][]bool{{true, false}, {true}})
	assert.ErrorIs(t, err, valuation.ErrRaggedMatrix)
}

func TestConsumptionGraph_Sharings(t *testing.T) {
	// 3 edges over 2 objects: one sharing.
	g := mustGraph(t, [][]bool{{true, true}, {false, true}})
	assert.Equal(t, 1, g.NumSharings())

	// A partition: zero sharings.
	part := mustGraph(t, [][]bool{{true, false}, {false, true}})
	assert.Equal(t, 0, part.NumSharings())

	// Fewer edges than objects still clamps at zero.
	sparse := mustGraph(t, [][]bool{{true, false, false}})
	assert.Equal(t, 0, sparse.NumSharings())
}

func TestConsumptionGraph_DegreeAndRadix(t *testing.T) {
	g := mustGraph(t, [][]bool{{true, true, false}, {false, false, true}})

	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 1, g.Degree(1))
	assert.Equal(t, []int{5, 3}, g.MarkerRadix())
}

func TestCanSupplyThresholds(t *testing.T) {
	v, err := valuation.NewValuationMatrix([][]float64{{20, 10}, {6, 4}})
	require.NoError(t, err)

	full := mustGraph(t, [][]bool{{true, true}, {true, true}})
	assert.True(t, full.CanSupplyThresholds(v, []float64{30, 10}))
	assert.False(t, full.CanSupplyThresholds(v, []float64{30.5, 10}))

	// Agent 1 is only connected to object 1, worth 4 to it.
	partial := mustGraph(t, [][]bool{{true, true}, {false, true}})
	assert.True(t, partial.CanSupplyThresholds(v, []float64{15, 4}))
	assert.False(t, partial.CanSupplyThresholds(v, []float64{15, 5}))
}

func TestCanSupplyThresholds_PartialGraph(t *testing.T) {
	v, err := valuation.NewValuationMatrix([][]float64{{20, 10}, {6, 4}})
	require.NoError(t, err)

	// Only the first agent exists yet; its row alone is checked.
	base := mustGraph(t, [][]bool{{true, true}})
	assert.True(t, base.CanSupplyThresholds(v, []float64{30, 99}))
	assert.False(t, base.CanSupplyThresholds(v, []float64{31, 0}))
}

func TestConsumptionGraph_String(t *testing.T) {
	g := mustGraph(t, [][]bool{{true, false}, {true, true}})
	assert.Equal(t, "[1 0]\n[1 1]", g.String())
}

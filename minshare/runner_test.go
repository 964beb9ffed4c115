package minshare_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairdivision/divvy/minshare"
	"github.com/fairdivision/divvy/solver"
)

func TestRunWithTimeLimit_OK(t *testing.T) {
	v := mustValuation(t, [][]float64{{3, 2}, {1, 4}})

	res := minshare.RunWithTimeLimit(v, minshare.ProportionalCriterion(), time.Minute)

	assert.Equal(t, minshare.RunOK, res.Status)
	assert.NoError(t, res.Err)
	require.NotNil(t, res.Allocation)
	assert.Equal(t, 0, res.NumSharings)
	assert.Greater(t, res.Elapsed, time.Duration(0))
}

func TestRunWithTimeLimit_Timeout(t *testing.T) {
	v := mustValuation(t, [][]float64{{3, 2}, {1, 4}})

	res := minshare.RunWithTimeLimit(v, minshare.ProportionalCriterion(), time.Nanosecond)

	assert.Equal(t, minshare.RunTimeout, res.Status)
	assert.Nil(t, res.Allocation)
	assert.Equal(t, 1, res.NumSharings, "timeouts report the pessimistic n-1 bound")
}

func TestRunWithTimeLimit_ImpossibleFloorsAreABug(t *testing.T) {
	// Floors above the total value prune every candidate graph, which the
	// existence bound says cannot happen for the real criteria; the runner
	// classifies exhaustion as a bug rather than a timeout.
	v := mustValuation(t, [][]float64{{1}})

	res := minshare.RunWithTimeLimit(v, minshare.ThresholdCriterion([]float64{2}), time.Minute)

	assert.Equal(t, minshare.RunBug, res.Status)
	assert.ErrorIs(t, res.Err, minshare.ErrNoAllocation)
	assert.Nil(t, res.Allocation)
	assert.Equal(t, 0, res.NumSharings)
}

// brokenSolver fails hard on every program.
type brokenSolver struct{}

func (brokenSolver) Solve(*solver.Problem) (solver.Result, error) {
	return solver.Result{Status: solver.StatusError}, assert.AnError
}

func TestRunWithTimeLimit_SolverError(t *testing.T) {
	v := mustValuation(t, [][]float64{{3, 2}, {1, 4}})

	res := minshare.RunWithTimeLimit(v, minshare.ProportionalCriterion(), time.Minute,
		minshare.WithSolver(brokenSolver{}))

	assert.Equal(t, minshare.RunSolverError, res.Status)
	assert.ErrorIs(t, res.Err, assert.AnError)
	assert.Equal(t, 1, res.NumSharings)
}

// panickySolver unwinds instead of returning.
type panickySolver struct{}

func (panickySolver) Solve(*solver.Problem) (solver.Result, error) {
	panic("numeric kernel blew up")
}

func TestRunWithTimeLimit_RecoversPanics(t *testing.T) {
	v := mustValuation(t, [][]float64{{3, 2}, {1, 4}})

	res := minshare.RunWithTimeLimit(v, minshare.ProportionalCriterion(), time.Minute,
		minshare.WithSolver(panickySolver{}))

	assert.Equal(t, minshare.RunSolverError, res.Status)
	assert.Error(t, res.Err)
}

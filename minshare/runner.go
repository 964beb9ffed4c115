package minshare

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fairdivision/divvy/valuation"
)

// RunStatus classifies the outcome of a time-bounded search.
type RunStatus string

const (
	// RunOK means an allocation was found within the time limit.
	RunOK RunStatus = "OK"

	// RunTimeout means the wall-clock budget expired first.
	RunTimeout RunStatus = "TimeOut"

	// RunSolverError means the LP back end failed hard on some candidate.
	RunSolverError RunStatus = "SolverError"

	// RunBug means the search contradicted the n−1 sharing existence bound,
	// either by exhausting every candidate or by returning too many sharings.
	RunBug RunStatus = "Bug"
)

// RunResult is the outcome of RunWithTimeLimit. Allocation is non-nil only
// for RunOK; on any failure NumSharings carries the pessimistic bound n−1 so
// aggregated experiment statistics stay well defined.
type RunResult struct {
	Status      RunStatus
	Elapsed     time.Duration
	Allocation  *valuation.AllocationMatrix
	NumSharings int
	Err         error
}

// RunWithTimeLimit runs FindAllocation under a wall-clock budget and folds
// every outcome into a RunResult instead of an error, which suits batch
// experiments over many instances. The worker goroutine is abandoned on
// timeout (the search checks cancellation between LP solves and exits soon
// after); a panic inside the search is recovered and reported as
// RunSolverError.
func RunWithTimeLimit(v *valuation.ValuationMatrix, c Criterion, limit time.Duration, opts ...Option) RunResult {
	o := gatherOptions(opts...)
	start := time.Now()

	fail := func(status RunStatus, err error) RunResult {
		n := 0
		if v != nil {
			n = v.NumAgents()
		}
		sharings := n - 1
		if sharings < 0 {
			sharings = 0
		}

		return RunResult{Status: status, Elapsed: time.Since(start), NumSharings: sharings, Err: err}
	}

	ctx, cancel := context.WithTimeout(context.Background(), limit)
	defer cancel()

	type outcome struct {
		alloc *valuation.AllocationMatrix
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("search panicked: %v", r)}
			}
		}()
		alloc, err := FindAllocation(ctx, v, c, opts...)
		done <- outcome{alloc: alloc, err: err}
	}()

	var res outcome
	select {
	case res = <-done:
	case <-ctx.Done():
		// Prefer the worker's own result if it raced the deadline.
		select {
		case res = <-done:
		case <-time.After(10 * time.Millisecond):
			o.logger.Warn("search timed out", zap.Duration("limit", limit))

			return fail(RunTimeout, ctx.Err())
		}
	}

	switch {
	case res.err == nil:
		return RunResult{
			Status:      RunOK,
			Elapsed:     time.Since(start),
			Allocation:  res.alloc,
			NumSharings: res.alloc.NumSharings(),
		}
	case errors.Is(res.err, context.DeadlineExceeded):
		o.logger.Warn("search timed out", zap.Duration("limit", limit))

		return fail(RunTimeout, res.err)
	case errors.Is(res.err, ErrNoAllocation), errors.Is(res.err, ErrSharingOverflow):
		o.logger.Error("search hit an impossible state", zap.Error(res.err))

		return fail(RunBug, res.err)
	default:
		o.logger.Error("search failed", zap.Error(res.err))

		return fail(RunSolverError, res.err)
	}
}

package minshare

import (
	"go.uber.org/zap"

	"github.com/fairdivision/divvy/solver"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDecimalDigits is the rounding applied to a found allocation
	// before its sharing count is verified and returned. Three digits strips
	// simplex dust without disturbing genuine fractional splits.
	DefaultDecimalDigits = 3

	// DefaultMaxProductTolerance is the relative utility slack τ of the
	// MaxProduct criterion: each agent is guaranteed (1−τ) of its
	// max-Nash-welfare utility.
	DefaultMaxProductTolerance = 0.01
)

// Option mutates search configuration. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	logger *zap.Logger   // structured progress tracing; Nop by default
	solver solver.Solver // feasibility back end; DefaultPortfolio by default
	digits int           // rounding before the sharing count is reported
}

// WithLogger injects a structured logger for search-progress tracing.
// The engine holds no logger of its own and stays silent unless one is
// supplied; nil restores the silent default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithSolver swaps the LP back end used for feasibility tests. The engine
// only relies on the solver.Solver contract, so any implementation (or
// portfolio of implementations) can be plugged in.
func WithSolver(s solver.Solver) Option {
	return func(o *Options) {
		if s != nil {
			o.solver = s
		}
	}
}

// WithDecimalDigits sets the rounding applied to the returned allocation.
// Values below 1 are ignored (rounding to whole objects would erase the
// fractional splits the engine exists to find).
func WithDecimalDigits(digits int) Option {
	return func(o *Options) {
		if digits >= 1 {
			o.digits = digits
		}
	}
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		logger: zap.NewNop(),
		solver: solver.DefaultPortfolio(),
		digits: DefaultDecimalDigits,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}

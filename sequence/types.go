package sequence

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors returned by the sequence solver.
var (
	// ErrImpossibleStep indicates a step requested on a head for which
	// CanStep is false. The search never does this; observing it is a bug.
	ErrImpossibleStep = errors.New("sequence: impossible step")

	// ErrNilRebuilder indicates that New received a nil Rebuilder.
	ErrNilRebuilder = errors.New("sequence: rebuilder is nil")

	// ErrRebuild wraps a failure returned by the caller's Rebuilder.
	ErrRebuild = errors.New("sequence: rebuilder failed")

	// ErrBudgetExhausted indicates that MaxExpansions heads were expanded
	// before the search was exhausted.
	ErrBudgetExhausted = errors.New("sequence: expansion budget exhausted")

	// ErrDegreeRegression indicates a successor head cheaper than its parent,
	// which would break the degree ordering of the output.
	ErrDegreeRegression = errors.New("sequence: successor degree below parent degree")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("sequence: invalid option supplied")
)

// DegreeMode selects how a Factorization counts its degree.
type DegreeMode int

const (
	// DegreeRuns counts maximal runs of factors sharing both source list
	// (B or C) and orientation (crossed or not).
	DegreeRuns DegreeMode = iota

	// DegreeFactors counts maximal runs of factors sharing orientation only,
	// i.e. the number of straight and crossed factors of the proportion.
	DegreeFactors
)

// String returns "runs" or "factors".
func (m DegreeMode) String() string {
	switch m {
	case DegreeRuns:
		return "runs"
	case DegreeFactors:
		return "factors"
	default:
		return fmt.Sprintf("DegreeMode(%d)", int(m))
	}
}

// ParseDegreeMode is the inverse of DegreeMode.String.
func ParseDegreeMode(s string) (DegreeMode, error) {
	switch s {
	case "runs", "":
		return DegreeRuns, nil
	case "factors":
		return DegreeFactors, nil
	default:
		return 0, fmt.Errorf("%w: unknown degree mode %q", ErrOptionViolation, s)
	}
}

// Option configures a sequence Equation via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the search configuration.
type Options struct {
	// Ctx is checked between two expansions; once done, the stream ends
	// and Err returns the context error.
	Ctx context.Context

	// FastForward compresses runs of CD/BD steps into one expansion.
	FastForward bool

	// DegreeMode selects the degree measure.
	DegreeMode DegreeMode

	// MaxExpansions, if > 0, caps the number of expanded heads per stream.
	MaxExpansions int

	// Logger receives Debug records about rejection, expansion and emission.
	Logger *slog.Logger

	// OnExpand is called before a head is expanded.
	OnExpand func(posA, posB, posC, degree int)

	// OnSolution is called when a solution is emitted.
	OnSolution func(degree int)

	err error
}

// DefaultOptions returns the defaults:
//   - context.Background()
//   - FastForward enabled
//   - DegreeRuns
//   - no expansion budget
//   - a logger discarding every record
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		FastForward: true,
		DegreeMode:  DegreeRuns,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand:    func(int, int, int, int) {},
		OnSolution:  func(int) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFastForward toggles greedy compression of insertion runs.
func WithFastForward(enabled bool) Option {
	return func(o *Options) {
		o.FastForward = enabled
	}
}

// WithDegreeMode selects the degree measure.
func WithDegreeMode(m DegreeMode) Option {
	return func(o *Options) {
		switch m {
		case DegreeRuns, DegreeFactors:
			o.DegreeMode = m
		default:
			o.err = fmt.Errorf("%w: unknown degree mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithMaxExpansions bounds the work of one stream.
//
//	n > 0: at most n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run before each expansion.
func WithOnExpand(fn func(posA, posB, posC, degree int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnSolution registers a callback run on each emitted solution.
func WithOnSolution(fn func(degree int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSolution = fn
		}
	}
}

// buildOptions applies opts over the defaults and reports the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}

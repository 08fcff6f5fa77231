package batch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/analogy/equation"
	"github.com/katalvlaran/analogy/internal/metrics"
	"github.com/katalvlaran/analogy/value"
	"golang.org/x/sync/errgroup"
)

// Result is one kept solution.
type Result struct {
	Value  string `yaml:"value"`
	Degree int    `yaml:"degree"`
}

// Report is the outcome of one equation.
type Report struct {
	Name       string   `yaml:"name"`
	Kind       string   `yaml:"kind"`
	Solutions  []Result `yaml:"solutions"`
	Error      string   `yaml:"error,omitempty"`
	DurationMs int64    `yaml:"duration_ms"`
}

// Runner solves the equations of a batch file.
type Runner struct {
	// Parallel bounds concurrently solved equations; <= 0 means GOMAXPROCS.
	Parallel int
	// Settings are the base settings; file defaults override them.
	Settings Settings
	// Logger receives run and search records; nil discards them.
	Logger *slog.Logger
	// Metrics, if set, observes every equation and search.
	Metrics *metrics.Collector
}

// Run solves every equation of f and returns one report per equation in
// file order. Failures of single equations are recorded in their report;
// Run itself fails only when ctx is done.
func (r *Runner) Run(ctx context.Context, f *File) ([]Report, error) {
	log := r.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	settings := r.Settings.merge(f.Defaults)
	limit := r.Parallel
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	reports := make([]Report, len(f.Equations))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range f.Equations {
		g.Go(func() error {
			start := time.Now()
			reports[i] = r.solve(gCtx, log, settings, &f.Equations[i])
			reports[i].DurationMs = time.Since(start).Milliseconds()
			log.Debug("batch: equation done",
				slog.String("name", reports[i].Name),
				slog.Int("solutions", len(reports[i].Solutions)),
				slog.String("error", reports[i].Error))
			return nil
		})
	}
	return reports, errors.Join(g.Wait(), ctx.Err())
}

func (r *Runner) solve(ctx context.Context, log *slog.Logger, s Settings, e *Entry) Report {
	rep := Report{Name: e.Name, Kind: value.KindAtom.String(), Solutions: []Result{}}
	sols, err := func() ([]equation.Solution[value.Value], error) {
		a, b, c, err := e.Operands(s.Split)
		if err != nil {
			return nil, err
		}
		if k := a.Kind(); b.Kind() == k && c.Kind() == k {
			rep.Kind = k.String()
		}
		opts, err := s.Options(ctx, log.With(slog.String("equation", e.Name)))
		if err != nil {
			return nil, err
		}
		if r.Metrics != nil {
			opts = append(opts, r.Metrics.Options()...)
		}
		eq, err := value.NewEquation(a, b, c, opts...)
		if err != nil {
			return nil, err
		}
		return s.Drain(s.Filter(eq.Solve()))
	}()

	for _, sol := range sols {
		rep.Solutions = append(rep.Solutions, Result{Value: sol.Value().String(), Degree: sol.Degree()})
	}
	outcome := metrics.OutcomeSolved
	switch {
	case err != nil:
		rep.Error = err.Error()
		outcome = metrics.OutcomeError
	case len(sols) == 0:
		outcome = metrics.OutcomeUnsolved
	}
	if r.Metrics != nil {
		r.Metrics.ObserveEquation(rep.Kind, outcome)
	}

	return rep
}

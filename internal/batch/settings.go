package batch

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/analogy/equation"
	"github.com/katalvlaran/analogy/sequence"
	"github.com/katalvlaran/analogy/value"
)

// DefaultLimit caps the solutions kept per equation when Limit is zero.
const DefaultLimit = 10

// Settings control how one equation is solved and which solutions are kept.
type Settings struct {
	Split         string `yaml:"split"`
	DegreeMode    string `yaml:"degree_mode"`
	MaxExpansions int    `yaml:"max_expansions"`
	FastForward   *bool  `yaml:"fast_forward"`

	// Best keeps the cheapest Best degree tiers; 0 keeps all.
	Best int `yaml:"best"`
	// Unique drops repeated values; nil means true.
	Unique *bool `yaml:"unique"`
	// Limit caps the kept solutions; 0 means DefaultLimit, negative means all.
	Limit int `yaml:"limit"`
}

// Options translates s into sequence options bound to ctx.
func (s Settings) Options(ctx context.Context, log *slog.Logger) ([]sequence.Option, error) {
	mode, err := sequence.ParseDegreeMode(s.DegreeMode)
	if err != nil {
		return nil, err
	}
	opts := []sequence.Option{
		sequence.WithContext(ctx),
		sequence.WithDegreeMode(mode),
		sequence.WithMaxExpansions(s.MaxExpansions),
		sequence.WithLogger(log),
	}
	if s.FastForward != nil {
		opts = append(opts, sequence.WithFastForward(*s.FastForward))
	}

	return opts, nil
}

// Filter applies Unique and Best to it.
func (s Settings) Filter(it equation.Iterator[value.Value]) equation.Iterator[value.Value] {
	if s.Unique == nil || *s.Unique {
		it = equation.UniqueBy(it, value.Value.Key)
	}
	if s.Best > 0 {
		it = equation.NBestDegree(it, s.Best)
	}

	return it
}

// Drain pulls at most the configured limit of solutions from it.
func (s Settings) Drain(it equation.Iterator[value.Value]) ([]equation.Solution[value.Value], error) {
	switch {
	case s.Limit < 0:
		return equation.Collect(it)
	case s.Limit == 0:
		return equation.Take(it, DefaultLimit)
	default:
		return equation.Take(it, s.Limit)
	}
}

// merge overlays the non-zero fields of o on s.
func (s Settings) merge(o Settings) Settings {
	if o.Split != "" {
		s.Split = o.Split
	}
	if o.DegreeMode != "" {
		s.DegreeMode = o.DegreeMode
	}
	if o.MaxExpansions != 0 {
		s.MaxExpansions = o.MaxExpansions
	}
	if o.FastForward != nil {
		s.FastForward = o.FastForward
	}
	if o.Best != 0 {
		s.Best = o.Best
	}
	if o.Unique != nil {
		s.Unique = o.Unique
	}
	if o.Limit != 0 {
		s.Limit = o.Limit
	}

	return s
}

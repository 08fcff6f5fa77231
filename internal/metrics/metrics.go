// Package metrics collects Prometheus metrics about analogy solving.
//
// A Collector owns a private registry, so several collectors can coexist
// in one process and in parallel tests. Search-level metrics are fed by
// the sequence solver hooks returned from Options; equation-level outcomes
// are recorded by the caller through ObserveEquation. All operations are
// safe for concurrent use.
package metrics

import (
	"io"

	"github.com/katalvlaran/analogy/sequence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "analogy"

// Outcome labels for ObserveEquation.
const (
	OutcomeSolved   = "solved"
	OutcomeUnsolved = "unsolved"
	OutcomeError    = "error"
)

// Collector holds the metrics of one process or test.
type Collector struct {
	reg *prometheus.Registry

	// Expansions counts search heads expanded by sequence solvers.
	Expansions prometheus.Counter

	// Solutions counts solutions emitted by sequence solvers, duplicates included.
	Solutions prometheus.Counter

	// Degrees observes the degree of every emitted sequence solution.
	Degrees prometheus.Histogram

	// Equations counts solved equations.
	// Labels: kind (atom, sequence, set, tuple), outcome (solved, unsolved, error)
	Equations *prometheus.CounterVec
}

// New registers a fresh set of metrics on a private registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		Expansions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "expansions_total",
			Help:      "Search heads expanded by sequence solvers",
		}),
		Solutions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "solutions_total",
			Help:      "Solutions emitted by sequence solvers",
		}),
		Degrees: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "solution_degree",
			Help:      "Degree of emitted sequence solutions",
			Buckets:   prometheus.LinearBuckets(0, 1, 12),
		}),
		Equations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "equations_total",
			Help:      "Equations solved by operand kind and outcome",
		}, []string{"kind", "outcome"}),
	}
}

// Registry exposes the private registry, e.g. for an HTTP handler.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// Options returns sequence options wiring the search hooks to c.
func (c *Collector) Options() []sequence.Option {
	return []sequence.Option{
		sequence.WithOnExpand(func(_, _, _, _ int) {
			c.Expansions.Inc()
		}),
		sequence.WithOnSolution(func(degree int) {
			c.Solutions.Inc()
			c.Degrees.Observe(float64(degree))
		}),
	}
}

// ObserveEquation records the outcome of one equation.
func (c *Collector) ObserveEquation(kind, outcome string) {
	c.Equations.WithLabelValues(kind, outcome).Inc()
}

// Write dumps every metric family in the Prometheus text format.
func (c *Collector) Write(w io.Writer) error {
	families, err := c.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

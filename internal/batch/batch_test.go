package batch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/analogy/internal/batch"
	"github.com/katalvlaran/analogy/internal/metrics"
	"github.com/katalvlaran/analogy/value"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sample = `
defaults:
  limit: -1
equations:
  - name: spelling
    a: abc
    b: abd
    c: xbc
  - name: morphology
    split: none
    a: {lemma: walk, tense: present}
    b: {lemma: walk, tense: past}
    c: {lemma: talk, tense: present}
  - name: features
    a: !set [noun, sg]
    b: !set [noun, pl]
    c: !set [verb, sg]
  - a: x
    b: y
    c: z
    split: none
  - name: broken
    split: bytes
    a: x
    b: x
    c: y
  - name: partial
    a: x
    b: x
`

func values(rep batch.Report) []string {
	out := make([]string, len(rep.Solutions))
	for i, r := range rep.Solutions {
		out[i] = r.Value
	}

	return out
}

// TestRunner_Run solves every kind and keeps file order.
func TestRunner_Run(t *testing.T) {
	f, err := batch.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, f.Equations, 6)

	m := metrics.New()
	r := &batch.Runner{Parallel: 3, Metrics: m}
	reports, err := r.Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, reports, 6)

	names := make([]string, len(reports))
	for i, rep := range reports {
		names[i] = rep.Name
	}
	assert.Equal(t, []string{"spelling", "morphology", "features", "#4", "broken", "partial"}, names)

	assert.Equal(t, "sequence", reports[0].Kind)
	assert.Contains(t, values(reports[0]), "xbd")
	assert.Empty(t, reports[0].Error)

	assert.Equal(t, "tuple", reports[1].Kind)
	assert.Equal(t, []batch.Result{{Value: "(lemma=talk, tense=past)", Degree: 2}}, reports[1].Solutions)

	assert.Equal(t, "set", reports[2].Kind)
	assert.Equal(t, []batch.Result{{Value: "{pl, verb}", Degree: 1}}, reports[2].Solutions)

	assert.Empty(t, reports[3].Solutions)
	assert.Empty(t, reports[3].Error)

	assert.Contains(t, reports[4].Error, "unknown split mode")
	assert.Contains(t, reports[5].Error, "missing operand")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Equations.WithLabelValues("sequence", metrics.OutcomeSolved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Equations.WithLabelValues("atom", metrics.OutcomeUnsolved)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Equations.WithLabelValues("atom", metrics.OutcomeError)))
	assert.Positive(t, testutil.ToFloat64(m.Expansions))
}

// TestRunner_Settings applies best, unique and limit.
func TestRunner_Settings(t *testing.T) {
	f, err := batch.Parse(strings.NewReader(`
equations:
  - {name: s, a: abc, b: abd, c: xbc}
`))
	require.NoError(t, err)

	no := false
	r := &batch.Runner{Settings: batch.Settings{Limit: 3, Unique: &no}}
	reports, err := r.Run(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, reports[0].Solutions, 3)

	r = &batch.Runner{Settings: batch.Settings{Limit: -1, Best: 1}}
	reports, err = r.Run(context.Background(), f)
	require.NoError(t, err)
	require.NotEmpty(t, reports[0].Solutions)
	for _, s := range reports[0].Solutions {
		assert.Equal(t, reports[0].Solutions[0].Degree, s.Degree)
	}

	r = &batch.Runner{Settings: batch.Settings{DegreeMode: "nope"}}
	reports, err = r.Run(context.Background(), f)
	require.NoError(t, err)
	assert.NotEmpty(t, reports[0].Error)
}

// TestRunner_Canceled reports the context error.
func TestRunner_Canceled(t *testing.T) {
	f, err := batch.Parse(strings.NewReader("equations: [{a: abc, b: abd, c: xbc}]"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reports, err := (&batch.Runner{}).Run(ctx, f)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, reports, 1)
	assert.Contains(t, reports[0].Error, "canceled")
}

// TestParse_Errors rejects empty and malformed files.
func TestParse_Errors(t *testing.T) {
	_, err := batch.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, batch.ErrNoEquation)

	_, err = batch.Parse(strings.NewReader("equations: []"))
	assert.ErrorIs(t, err, batch.ErrNoEquation)

	_, err = batch.Parse(strings.NewReader("equations: {"))
	assert.Error(t, err)
}

// TestDecode maps YAML shapes to value kinds.
func TestDecode(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		split batch.Split
		kind  value.Kind
		want  string
	}{
		{"chars", "abc", batch.SplitChars, value.KindSequence, "abc"},
		{"words", "the cat", batch.SplitWords, value.KindSequence, "the cat"},
		{"atom", "the cat", batch.SplitNone, value.KindAtom, "the cat"},
		{"list", "[to, be]", batch.SplitChars, value.KindSequence, "to be"},
		{"set", "!set [b, a, b]", batch.SplitChars, value.KindSet, "{a, b}"},
		{"tuple", "{x: ab, y: [c]}", batch.SplitNone, value.KindTuple, "(x=ab, y=c)"},
		{"alias", "base: &x [p, q]\nuse: *x", batch.SplitNone, value.KindTuple, "(base=p q, use=p q)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tc.src), &n))
			v, err := batch.Decode(&n, tc.split)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, v.Kind())
			assert.Equal(t, tc.want, v.String())
		})
	}
}

// TestParseSplit accepts the documented modes.
func TestParseSplit(t *testing.T) {
	for in, want := range map[string]batch.Split{
		"":      batch.SplitChars,
		"chars": batch.SplitChars,
		"Words": batch.SplitWords,
		"none":  batch.SplitNone,
		"atom":  batch.SplitNone,
	} {
		got, err := batch.ParseSplit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := batch.ParseSplit("bytes")
	assert.ErrorIs(t, err, batch.ErrBadSplit)
}

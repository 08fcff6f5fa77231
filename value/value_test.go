package value_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/analogy/equation"
	"github.com/katalvlaran/analogy/sequence"
	"github.com/katalvlaran/analogy/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rendered drains it and returns value strings and degrees.
func rendered(t *testing.T, it equation.Iterator[value.Value]) ([]string, []int) {
	t.Helper()
	all, err := equation.Collect(it)
	require.NoError(t, err)
	var vs []string
	var ds []int
	for _, s := range all {
		vs = append(vs, s.Value().String())
		ds = append(ds, s.Degree())
	}

	return vs, ds
}

// TestKeys are canonical per kind and content.
func TestKeys(t *testing.T) {
	assert.Equal(t, value.Atom("x").Key(), value.Atom("x").Key())
	assert.NotEqual(t, value.Atom("x").Key(), value.Chars("x").Key())
	assert.Equal(t, value.Chars("ab").Key(), value.Atoms("a", "b").Key(), "separator is presentation only")
	assert.Equal(t,
		value.NewSet(value.Atom("a"), value.Atom("b")).Key(),
		value.NewSet(value.Atom("b"), value.Atom("a"), value.Atom("b")).Key())
	assert.NotEqual(t, value.Atoms("a,b").Key(), value.Atoms("a", "b").Key())

	tp := value.NewTuple(map[string]value.Value{"x": value.Atom("1"), "y": value.Chars("ab")})
	assert.Equal(t, `t{"x"=a"1","y"=q[a"a",a"b"]}`, tp.Key())
	assert.Equal(t, "(x=1, y=ab)", tp.String())
}

// TestConstructors checks splitting and rendering.
func TestConstructors(t *testing.T) {
	assert.Equal(t, 3, value.Chars("héh").Len())
	assert.Equal(t, "héh", value.Chars("héh").String())
	w := value.Words("  the  cat sat ")
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, "the cat sat", w.String())
	assert.Equal(t, "{a, b}", value.NewSet(value.Atom("b"), value.Atom("a")).String())
	assert.Equal(t, "set", value.KindSet.String())
}

// TestDispatch_Sequence routes three sequences to the sequence solver.
func TestDispatch_Sequence(t *testing.T) {
	it := equation.UniqueBy(value.Solve(value.Chars("abc"), value.Chars("abd"), value.Chars("xbc")), value.Value.Key)
	vs, ds := rendered(t, it)
	assert.Contains(t, vs, "xbd")
	for i := 1; i < len(ds); i++ {
		assert.LessOrEqual(t, ds[i-1], ds[i])
	}
}

// TestDispatch_Identity returns c when a equals b.
func TestDispatch_Identity(t *testing.T) {
	vs, ds := rendered(t, equation.UniqueBy(value.Solve(value.Chars("ab"), value.Chars("ab"), value.Chars("pq")), value.Value.Key))
	if diff := cmp.Diff([]string{"pq"}, vs); diff != "" {
		t.Errorf("solutions mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{2}, ds)
}

// TestDispatch_Words keeps the word separator.
func TestDispatch_Words(t *testing.T) {
	vs, _ := rendered(t, equation.UniqueBy(
		value.Solve(value.Words("I walk"), value.Words("I walked"), value.Words("you walk")),
		value.Value.Key))
	assert.Contains(t, vs, "you walked")
}

// TestDispatch_Set routes three sets to the set solver.
func TestDispatch_Set(t *testing.T) {
	a := value.NewSet(value.Atom("walk"), value.Atom("present"))
	b := value.NewSet(value.Atom("walk"), value.Atom("past"))
	c := value.NewSet(value.Atom("talk"), value.Atom("present"))

	vs, ds := rendered(t, value.Solve(a, b, c))
	if diff := cmp.Diff([]string{"{past, talk}"}, vs); diff != "" {
		t.Errorf("solutions mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{equation.AtomicDegree}, ds)
}

// TestDispatch_Tuple recurses into fields of any kind.
func TestDispatch_Tuple(t *testing.T) {
	mk := func(lemma, tense string, tags ...string) value.Value {
		set := make([]value.Value, len(tags))
		for i, tag := range tags {
			set[i] = value.Atom(tag)
		}
		return value.NewTuple(map[string]value.Value{
			"lemma": value.Atom(lemma),
			"tense": value.Atom(tense),
			"tags":  value.NewSet(set...),
		})
	}
	a := mk("walk", "present", "verb", "3sg")
	b := mk("walk", "past", "verb")
	c := mk("talk", "present", "verb", "3sg")

	vs, ds := rendered(t, value.Solve(a, b, c))
	if diff := cmp.Diff([]string{"(lemma=talk, tags={verb}, tense=past)"}, vs); diff != "" {
		t.Errorf("solutions mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{3 * equation.AtomicDegree}, ds)
}

// TestDispatch_MixedKinds falls back to atomic comparison.
func TestDispatch_MixedKinds(t *testing.T) {
	eq, err := value.NewEquation(value.Atom("a"), value.Chars("ab"), value.Atom("a"))
	require.NoError(t, err)

	s, err := equation.First(eq.Solve())
	require.NoError(t, err)
	assert.Equal(t, value.KindSequence, s.Value().Kind())
	assert.Equal(t, "ab", s.Value().String())
	assert.Equal(t, equation.AtomicDegree, s.Degree())

	_, err = equation.First(value.Solve(value.Atom("a"), value.Chars("a"), value.Atom("b")))
	assert.ErrorIs(t, err, equation.ErrNoSolution)
}

// TestDispatch_Dual swaps b and c.
func TestDispatch_Dual(t *testing.T) {
	eq, err := value.Dual(value.Atom("x"), value.Atom("y"), value.Atom("x"))
	require.NoError(t, err)
	s, err := equation.First(eq.Solve())
	require.NoError(t, err)
	assert.Equal(t, value.Atom("y"), s.Value())
}

// TestDispatch_Errors covers construction failures.
func TestDispatch_Errors(t *testing.T) {
	_, err := value.NewEquation(nil, value.Atom("b"), value.Atom("c"))
	assert.ErrorIs(t, err, value.ErrNilOperand)

	_, err = value.NewEquation(value.Chars("a"), value.Chars("a"), value.Chars("b"), sequence.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, sequence.ErrOptionViolation)

	tp := value.NewTuple(map[string]value.Value{"k": value.Chars("a")})
	_, err = equation.Collect(value.Solve(tp, tp, tp, sequence.WithMaxExpansions(-1)))
	assert.ErrorIs(t, err, sequence.ErrOptionViolation)
}

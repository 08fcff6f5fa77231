package sequence_test

import (
	"testing"

	"github.com/katalvlaran/analogy/equation"
	"github.com/katalvlaran/analogy/sequence"
)

// benchmarkFirstTier pulls the cheapest degree tier of a:b::c with opts.
func benchmarkFirstTier(b *testing.B, a, bb, c string, opts ...sequence.Option) {
	eq, err := sequence.Strings(a, bb, c, opts...)
	if err != nil {
		b.Fatalf("Strings failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := equation.Collect(equation.NBestDegree(eq.Solve(), 1)); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

// BenchmarkFirstTier_Conjugation solves walk:walked::talk:?.
func BenchmarkFirstTier_Conjugation(b *testing.B) {
	benchmarkFirstTier(b, "walk", "walked", "talk")
}

// BenchmarkFirstTier_NoFastForward measures the branching saved by fast-forward.
func BenchmarkFirstTier_NoFastForward(b *testing.B) {
	benchmarkFirstTier(b, "walk", "walked", "talk", sequence.WithFastForward(false))
}

// BenchmarkFirstTier_Factors uses the orientation-only degree.
func BenchmarkFirstTier_Factors(b *testing.B) {
	benchmarkFirstTier(b, "abcabc", "abdabd", "xbcxbc", sequence.WithDegreeMode(sequence.DegreeFactors))
}

// BenchmarkFeasible measures the count pre-check on long inputs.
func BenchmarkFeasible(b *testing.B) {
	a := []rune("the quick brown fox jumps over the lazy dog")
	bb := []rune("the quick brown cat jumps over the lazy dog")
	c := []rune("a quick brown fox leaps over a lazy dog")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sequence.Feasible(a, bb, c)
	}
}

// Package equation is the shared framework for analogical equations
// A:B::C:D ("A is to B as C is to D"), solved for the unknown D.
//
// 🚀 What is an analogical equation?
//
//	Given three values a, b, c of one shape, a solver enumerates every value d
//	such that the proportion a:b::c:d holds. Each answer is a Solution: the
//	value of d paired with a non-negative integer degree. Lower degree means
//	less structural transformation, so lower-degree solutions come first.
//
// ✨ What lives here:
//   - Solution    — immutable (value, degree) pair.
//   - Iterator    — pull-based lazy stream of solutions (Next / Err).
//   - Solvable    — capability implemented by every equation kind.
//   - Triple      — the ordered (a, b, c) container shared by all kinds.
//   - Atomic      — the base case over opaque values.
//   - Unique, UniqueBy, NBestDegree — lazy combinators over any stream.
//   - First, Collect, Take, All     — consumer helpers.
//
// ⚙️ Usage:
//
//	eq := equation.NewAtomic("a", "a", "b")
//	sol, err := equation.First(eq.Solve())
//	if errors.Is(err, equation.ErrNoSolution) {
//	  // nothing makes the proportion hold
//	}
//	fmt.Println(sol.Value(), sol.Degree()) // b 1
//
// Streams are single-consumer and own all their state, so different equations
// may be enumerated from different goroutines without synchronization.
// Stopping the pull is the only cancellation needed: no background work exists.
//
// Errors:
//   - ErrNoSolution     — a singular accessor found an empty stream.
//   - ErrBadTierCount   — NBestDegree called with a negative tier count.
package equation

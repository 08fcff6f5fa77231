// Package sequence solves analogical equations A:B::C:D over ordered
// sequences by a best-first search of a three-index alignment lattice.
//
// 🚀 What is solved?
//
//	Given sequences a, b, c, every solution d is built by walking the three
//	inputs at once with four reading moves:
//
//	  AB — a[i] == b[j]: consume both, the item stays out of d (straight)
//	  AC — a[i] == c[k]: consume both, the item stays out of d (crossed)
//	  CD — consume c[k] alone, copy it into d              (straight)
//	  BD — consume b[j] alone, copy it into d              (crossed)
//
//	The moves taken so far form a Factorization. Its degree counts the
//	maximal runs of factors sharing source list and orientation, so a
//	contiguous borrowing is cheap and frequent alternation is expensive.
//	DegreeFactors counts orientation runs only, which is the number of
//	straight/crossed factors of the proportion itself.
//
//	For "abc":"abd"::"xbc" the lattice contains the alignment
//	⟨ab:ab::xb:xb⟩⟨c:d::c:d⟩, giving d = "xbd".
//
// ✨ Key features:
//   - O(n) count pre-check rejects impossible equations before any search.
//   - Priority register keyed by degree: solutions come out in
//     non-decreasing degree order, lazily, one search slice per Next.
//   - Greedy fast-forward of free insertions (CD/BD) keeps branching low.
//     It never splits an insertion run that costs nothing to extend, so
//     some high-degree alignments are skipped; WithFastForward(false)
//     restores the exhaustive lattice.
//   - Same-degree heads are expanded in insertion order, so the output
//     order is deterministic.
//   - Caller-supplied Rebuilder turns the produced items into any concrete
//     sequence type (string, []E, domain types).
//   - Functional options: context cancellation, degree mode, expansion
//     budget, slog debug logging, OnExpand/OnSolution hooks.
//
// ⚙️ Usage:
//
//	eq, err := sequence.Strings("abc", "abd", "xbc")
//	if err != nil {
//	  log.Fatal(err)
//	}
//	it := eq.Solve()
//	for s := range equation.All(equation.NBestDegree(it, 1)) {
//	  fmt.Println(s.Value(), s.Degree())
//	}
//	if err := it.Err(); err != nil {
//	  log.Fatal(err)
//	}
//
// Complexity:
//
//   - Pre-check: O(|a| + |b| + |c|) time and distinct-item memory.
//   - Search: bounded by the lattice (|a|+1)(|b|+1)(|c|+1) positions times
//     the distinct factorizations reaching them; exponential in the worst
//     case. Use WithMaxExpansions or WithContext to bound it.
//
// Errors:
//   - ErrImpossibleStep   — a step was applied where CanStep is false.
//   - ErrNilRebuilder     — New was called without a Rebuilder.
//   - ErrRebuild          — the Rebuilder failed; aborts the stream.
//   - ErrBudgetExhausted  — MaxExpansions reached before exhaustion.
//   - ErrDegreeRegression — a successor head had a lower degree (internal).
//   - ErrOptionViolation  — an invalid Option was supplied.
package sequence

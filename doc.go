// Package analogy solves analogical equations A:B::C:D ("A is to B as C
// is to D") by enumerating every D that makes the proportion hold.
//
// Every solution carries a non-negative degree: the number of alignment
// factors needed to explain it. Lower degree means a simpler analogy, and
// solutions are produced lazily in non-decreasing degree order. Nothing
// else ranks them; deduplication and top-k are opt-in wrappers.
//
// The module is organized by operand shape:
//
//	equation/ — Solution, pull Iterator, Triple, Atomic equation and the
//	            Unique / NBestDegree combinators
//	sequence/ — best-first search over alignments of three sequences
//	            (Step, Factorization, ReadingHead, Rebuilder)
//	set/      — set equations, one solution of constant degree
//	tuple/    — keyed tuples, solved field by field with summed degrees
//	value/    — the closed Value union and the dispatching NewEquation
//
// plus the analogy command (cmd/analogy) that solves equations from the
// command line or from YAML batch files.
//
// Quick start:
//
//	eq, _ := sequence.Strings("abc", "abd", "xbc")
//	for s := range equation.All(equation.Unique(eq.Solve())) {
//		fmt.Println(s.Degree(), s.Value()) // "xbd" is among them
//	}
//
// Streams are single-threaded and own their search state; independent
// equations may be solved concurrently.
package analogy

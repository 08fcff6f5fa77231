package equation

import (
	"errors"
	"fmt"
)

// AtomicDegree is the degree of the unique solution of an atomic equation.
const AtomicDegree = 1

var (
	// ErrNoSolution indicates that a stream asked for "the" solution was empty.
	// It is distinct from infeasibility: exhaustive search may also end with
	// zero solutions after passing every pre-check.
	ErrNoSolution = errors.New("equation: no solution")

	// ErrBadTierCount indicates a negative number of degree tiers.
	ErrBadTierCount = errors.New("equation: degree tier count must be non-negative")
)

// Solution is one value of the unknown D together with its degree.
// Two solutions carrying the same value are interchangeable for
// deduplication; the degree only orders them. Comparing solutions with ==
// also compares degrees; use SameValue for value equality.
type Solution[T any] struct {
	value  T
	degree int
}

// NewSolution builds a Solution. Negative degrees are clamped to zero.
func NewSolution[T any](value T, degree int) Solution[T] {
	if degree < 0 {
		degree = 0
	}

	return Solution[T]{value: value, degree: degree}
}

// Value returns the produced value of D.
func (s Solution[T]) Value() T { return s.value }

// Degree returns the structural cost of the solution.
func (s Solution[T]) Degree() int { return s.degree }

// SameValue reports whether x and y carry the same value, whatever their degrees.
func SameValue[T comparable](x, y Solution[T]) bool { return x.value == y.value }

// String renders the solution as "value (degree n)".
func (s Solution[T]) String() string {
	return fmt.Sprintf("%v (degree %d)", s.value, s.degree)
}

// Iterator is a pull-based lazy stream of solutions.
//
// Next computes the next solution on demand and reports false once the
// stream is exhausted or has failed. After Next returned false, Err tells
// the two apart: nil means ordinary exhaustion (including infeasible
// equations), non-nil is a hard failure that aborted the enumeration.
type Iterator[T any] interface {
	Next() (Solution[T], bool)
	Err() error
}

// Solvable is implemented by every equation kind.
type Solvable[T any] interface {
	// Solve starts a fresh enumeration. Each call returns an independent
	// stream that owns its own search state.
	Solve() Iterator[T]
}

// Triple is the ordered (a, b, c) operand container of an equation.
// It is immutable once constructed.
type Triple[T any] struct {
	a, b, c T
}

// NewTriple returns the triple (a, b, c).
func NewTriple[T any](a, b, c T) Triple[T] {
	return Triple[T]{a: a, b: b, c: c}
}

// A returns the first operand.
func (t Triple[T]) A() T { return t.a }

// B returns the second operand.
func (t Triple[T]) B() T { return t.b }

// C returns the third operand.
func (t Triple[T]) C() T { return t.c }

// Operands returns (a, b, c).
func (t Triple[T]) Operands() (T, T, T) { return t.a, t.b, t.c }

// Swapped returns (a, c, b), the operands of the dual equation A:C::B:D.
func (t Triple[T]) Swapped() Triple[T] {
	return Triple[T]{a: t.a, b: t.c, c: t.b}
}

package set

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/analogy/equation"
)

// Degree is the degree of the unique solution of a set equation.
const Degree = equation.AtomicDegree

// Set is an immutable finite set of comparable items.
type Set[E comparable] struct {
	items map[E]struct{}
}

// Of returns the set of the given items.
func Of[E comparable](items ...E) Set[E] {
	m := make(map[E]struct{}, len(items))
	for _, x := range items {
		m[x] = struct{}{}
	}

	return Set[E]{items: m}
}

// Len returns the number of items.
func (s Set[E]) Len() int { return len(s.items) }

// Contains reports membership.
func (s Set[E]) Contains(x E) bool {
	_, ok := s.items[x]
	return ok
}

// Items returns the items in unspecified order.
func (s Set[E]) Items() []E {
	out := make([]E, 0, len(s.items))
	for x := range s.items {
		out = append(out, x)
	}

	return out
}

// Equal reports whether s and o hold the same items.
func (s Set[E]) Equal(o Set[E]) bool {
	if len(s.items) != len(o.items) {
		return false
	}
	for x := range s.items {
		if !o.Contains(x) {
			return false
		}
	}

	return true
}

// String renders the items sorted by their fmt representation.
func (s Set[E]) String() string {
	parts := make([]string, 0, len(s.items))
	for x := range s.items {
		parts = append(parts, fmt.Sprint(x))
	}
	sort.Strings(parts)

	return "{" + strings.Join(parts, ", ") + "}"
}

// Equation is the set equation a:b::c:? .
type Equation[E comparable] struct {
	equation.Triple[Set[E]]
}

// New builds the equation a:b::c:? .
func New[E comparable](a, b, c Set[E]) *Equation[E] {
	return &Equation[E]{Triple: equation.NewTriple(a, b, c)}
}

// Dual returns the equation a:c::b:? .
func (e *Equation[E]) Dual() *Equation[E] {
	return &Equation[E]{Triple: e.Swapped()}
}

// Feasible reports whether a ⊆ b ∪ c and b ∩ c ⊆ a.
func (e *Equation[E]) Feasible() bool {
	a, b, c := e.Operands()
	for x := range a.items {
		if !b.Contains(x) && !c.Contains(x) {
			return false
		}
	}
	for x := range b.items {
		if c.Contains(x) && !a.Contains(x) {
			return false
		}
	}

	return true
}

// Solve yields the unique solution at Degree, or nothing when infeasible.
func (e *Equation[E]) Solve() equation.Iterator[Set[E]] {
	if !e.Feasible() {
		return equation.Empty[Set[E]]()
	}
	a, b, c := e.Operands()
	d := make(map[E]struct{})
	for _, side := range []Set[E]{b, c} {
		for x := range side.items {
			if !a.Contains(x) || b.Contains(x) && c.Contains(x) {
				d[x] = struct{}{}
			}
		}
	}

	return equation.FromSlice(equation.NewSolution(Set[E]{items: d}, Degree))
}

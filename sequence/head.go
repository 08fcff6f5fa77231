package sequence

import "fmt"

// lattice holds the three read-only inputs shared by every head of a search.
type lattice[E comparable] struct {
	a, b, c []E
}

// ReadingHead is an immutable snapshot of the search: three cursors into
// a, b and c plus the factorization accumulated to reach them.
// Applying a step returns a new head; the receiver is never modified.
type ReadingHead[E comparable] struct {
	lat              *lattice[E]
	posA, posB, posC int
	fact             Factorization[E]
}

// NewReadingHead returns the source head of the lattice of a:b::c, with
// all cursors at zero and an empty factorization counted by mode.
// The slices are read, never written; they must not change while heads
// derived from the result are in use.
func NewReadingHead[E comparable](a, b, c []E, mode DegreeMode) *ReadingHead[E] {
	return &ReadingHead[E]{
		lat:  &lattice[E]{a: a, b: b, c: c},
		fact: NewFactorization[E](mode),
	}
}

// Positions returns the cursors (posA, posB, posC).
func (h *ReadingHead[E]) Positions() (int, int, int) {
	return h.posA, h.posB, h.posC
}

// Factorization returns the factors accumulated so far.
func (h *ReadingHead[E]) Factorization() Factorization[E] { return h.fact }

// Degree returns the degree of the carried factorization. For an
// unfinished head it is a lower bound of every solution reachable from it.
func (h *ReadingHead[E]) Degree() int { return h.fact.Degree() }

// IsFinished reports whether all three cursors reached the end of their
// sequence. The factorization of a finished head is a complete solution.
func (h *ReadingHead[E]) IsFinished() bool {
	return h.posA == len(h.lat.a) && h.posB == len(h.lat.b) && h.posC == len(h.lat.c)
}

// CanStep reports whether s applies at the current cursors.
func (h *ReadingHead[E]) CanStep(s Step) bool {
	l := h.lat
	switch s {
	case StepAB:
		return h.posA < len(l.a) && h.posB < len(l.b) && l.a[h.posA] == l.b[h.posB]
	case StepAC:
		return h.posA < len(l.a) && h.posC < len(l.c) && l.a[h.posA] == l.c[h.posC]
	case StepCD:
		return h.posC < len(l.c)
	case StepBD:
		return h.posB < len(l.b)
	default:
		return false
	}
}

// MakeStep applies s and returns the resulting head, or ErrImpossibleStep
// when CanStep(s) is false.
//
// With fastForward, an insertion step (CD or BD) is repeated while it
// stays applicable, while its rival alignment (AC for CD, AB for BD) is
// not applicable, and while the repetition does not raise the degree.
// An available alignment always halts the run. AB and AC never repeat.
func (h *ReadingHead[E]) MakeStep(s Step, fastForward bool) (*ReadingHead[E], error) {
	if !h.CanStep(s) {
		return nil, fmt.Errorf("%w: %s at (%d,%d,%d)", ErrImpossibleStep, s, h.posA, h.posB, h.posC)
	}
	next := h.step(s)
	if !fastForward || !s.insertion() {
		return next, nil
	}

	rival, _ := s.rival()
	for next.CanStep(s) && !next.CanStep(rival) {
		ff := next.step(s)
		if ff.Degree() > next.Degree() {
			break
		}
		next = ff
	}

	return next, nil
}

// step applies s unconditionally; callers check CanStep first.
func (h *ReadingHead[E]) step(s Step) *ReadingHead[E] {
	next := &ReadingHead[E]{lat: h.lat, posA: h.posA, posB: h.posB, posC: h.posC}
	list, crossed := s.factor()
	var item E
	switch s {
	case StepAB:
		item = h.lat.b[h.posB]
		next.posA++
		next.posB++
	case StepAC:
		item = h.lat.c[h.posC]
		next.posA++
		next.posC++
	case StepCD:
		item = h.lat.c[h.posC]
		next.posC++
	case StepBD:
		item = h.lat.b[h.posB]
		next.posB++
	}
	next.fact = h.fact.Extend(list, crossed, item)

	return next
}

// Equal reports structural equality: same cursors and same factorization.
// Heads of different lattices are never equal.
func (h *ReadingHead[E]) Equal(o *ReadingHead[E]) bool {
	if h == o {
		return true
	}
	if h == nil || o == nil || h.lat != o.lat {
		return false
	}

	return h.posA == o.posA && h.posB == o.posB && h.posC == o.posC && h.fact.Equal(o.fact)
}

// String renders the cursors and the factorization.
func (h *ReadingHead[E]) String() string {
	return fmt.Sprintf("(%d,%d,%d) %s", h.posA, h.posB, h.posC, h.fact)
}

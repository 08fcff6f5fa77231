package equation

// Atomic is the base-case equation over opaque values: the proportion
// a:b::c:d holds only in the trivial shapes a:a::c:c and a:b::a:b.
type Atomic[T any] struct {
	Triple[T]
	equal func(x, y T) bool
}

// NewAtomic builds an atomic equation comparing operands with ==.
func NewAtomic[T comparable](a, b, c T) *Atomic[T] {
	return NewAtomicFunc(a, b, c, func(x, y T) bool { return x == y })
}

// NewAtomicFunc builds an atomic equation comparing operands with equal.
func NewAtomicFunc[T any](a, b, c T, equal func(x, y T) bool) *Atomic[T] {
	return &Atomic[T]{Triple: NewTriple(a, b, c), equal: equal}
}

// Solve yields at most one solution at AtomicDegree:
// c when a equals b, otherwise b when a equals c, otherwise nothing.
func (e *Atomic[T]) Solve() Iterator[T] {
	switch {
	case e.equal(e.a, e.b):
		return FromSlice(NewSolution(e.c, AtomicDegree))
	case e.equal(e.a, e.c):
		return FromSlice(NewSolution(e.b, AtomicDegree))
	default:
		return Empty[T]()
	}
}

// Solution returns the unique solution, or ErrNoSolution.
func (e *Atomic[T]) Solution() (Solution[T], error) {
	return First(e.Solve())
}

// Dual returns the equation A:C::B:D.
func (e *Atomic[T]) Dual() *Atomic[T] {
	return &Atomic[T]{Triple: e.Swapped(), equal: e.equal}
}

package value

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/analogy/equation"
	"github.com/katalvlaran/analogy/sequence"
	"github.com/katalvlaran/analogy/set"
	"github.com/katalvlaran/analogy/tuple"
)

// ErrNilOperand is returned when an operand is nil.
var ErrNilOperand = errors.New("value: nil operand")

// NewEquation dispatches a:b::c:? on the operands' kind. Three sequences
// go to the sequence solver configured by opts, three sets to the set
// solver, three tuples to the tuple solver (recursing into fields with the
// same opts). Atoms, and operands of mixed kinds, are solved atomically.
func NewEquation(a, b, c Value, opts ...sequence.Option) (equation.Solvable[Value], error) {
	if a == nil || b == nil || c == nil {
		return nil, ErrNilOperand
	}
	k := a.Kind()
	if b.Kind() != k || c.Kind() != k {
		return newAtomic(a, b, c), nil
	}

	switch k {
	case KindSequence:
		return newSequence(a.(Sequence), b.(Sequence), c.(Sequence), opts)
	case KindSet:
		return newSet(a.(Set), b.(Set), c.(Set)), nil
	case KindTuple:
		return newTuple(a.(Tuple), b.(Tuple), c.(Tuple), opts), nil
	default:
		return newAtomic(a, b, c), nil
	}
}

// Solve is NewEquation followed by Solve. A construction error is
// reported through the returned stream.
func Solve(a, b, c Value, opts ...sequence.Option) equation.Iterator[Value] {
	eq, err := NewEquation(a, b, c, opts...)
	if err != nil {
		return equation.Failed[Value](err)
	}

	return eq.Solve()
}

// Dual dispatches a:c::b:? .
func Dual(a, b, c Value, opts ...sequence.Option) (equation.Solvable[Value], error) {
	return NewEquation(a, c, b, opts...)
}

func sameKey(x, y Value) bool { return x.Key() == y.Key() }

func newAtomic(a, b, c Value) equation.Solvable[Value] {
	return equation.NewAtomicFunc(a, b, c, sameKey)
}

// newSequence solves over item keys and maps keys back through a table
// filled from the operands.
func newSequence(a, b, c Sequence, opts []sequence.Option) (equation.Solvable[Value], error) {
	table := make(map[string]Value)
	keys := func(s Sequence) []string {
		out := make([]string, len(s.items))
		for i, v := range s.items {
			out[i] = v.Key()
			table[out[i]] = v
		}
		return out
	}
	ka, kb, kc := keys(a), keys(b), keys(c)

	sep := c.sep
	rb := sequence.RebuildFunc[string, Value](func(items []string) (Value, error) {
		out := make([]Value, len(items))
		for i, k := range items {
			v, ok := table[k]
			if !ok {
				return nil, fmt.Errorf("value: unknown item key %s", k)
			}
			out[i] = v
		}
		return Sequence{items: out, sep: sep}, nil
	})

	eq, err := sequence.New(ka, kb, kc, rb, opts...)
	if err != nil {
		return nil, err
	}

	return eq, nil
}

func newSet(a, b, c Set) equation.Solvable[Value] {
	table := make(map[string]Value, len(a.items)+len(b.items)+len(c.items))
	keys := func(s Set) set.Set[string] {
		out := make([]string, 0, len(s.items))
		for k, v := range s.items {
			out = append(out, k)
			table[k] = v
		}
		return set.Of(out...)
	}
	eq := set.New(keys(a), keys(b), keys(c))

	return solvableFunc(func() equation.Iterator[Value] {
		return mapped(eq.Solve(), func(d set.Set[string]) Value {
			items := make(map[string]Value, d.Len())
			for _, k := range d.Items() {
				items[k] = table[k]
			}
			return Set{items: items}
		})
	})
}

func newTuple(a, b, c Tuple, opts []sequence.Option) equation.Solvable[Value] {
	eq := tuple.New(a.fields, b.fields, c.fields, func(x, y, z Value) equation.Iterator[Value] {
		return Solve(x, y, z, opts...)
	})

	return solvableFunc(func() equation.Iterator[Value] {
		return mapped(eq.Solve(), func(d map[string]Value) Value {
			return Tuple{fields: d}
		})
	})
}

type solvableFunc func() equation.Iterator[Value]

func (f solvableFunc) Solve() equation.Iterator[Value] { return f() }

// mappedIterator converts the values of a stream, keeping degrees.
type mappedIterator[S any] struct {
	it equation.Iterator[S]
	fn func(S) Value
}

func mapped[S any](it equation.Iterator[S], fn func(S) Value) equation.Iterator[Value] {
	return &mappedIterator[S]{it: it, fn: fn}
}

func (m *mappedIterator[S]) Next() (equation.Solution[Value], bool) {
	s, ok := m.it.Next()
	if !ok {
		return equation.Solution[Value]{}, false
	}

	return equation.NewSolution(m.fn(s.Value()), s.Degree()), true
}

func (m *mappedIterator[S]) Err() error { return m.it.Err() }

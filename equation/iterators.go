package equation

import (
	"fmt"
	"iter"
)

// IteratorFunc adapts a plain pull function to Iterator. The stream never
// fails: Err always returns nil.
type IteratorFunc[T any] func() (Solution[T], bool)

// Next calls f.
func (f IteratorFunc[T]) Next() (Solution[T], bool) { return f() }

// Err returns nil.
func (f IteratorFunc[T]) Err() error { return nil }

// sliceIterator replays a fixed list of solutions.
type sliceIterator[T any] struct {
	items []Solution[T]
	next  int
}

func (s *sliceIterator[T]) Next() (Solution[T], bool) {
	if s.next >= len(s.items) {
		return Solution[T]{}, false
	}
	s.next++

	return s.items[s.next-1], true
}

func (s *sliceIterator[T]) Err() error { return nil }

// FromSlice returns a stream replaying items in order.
func FromSlice[T any](items ...Solution[T]) Iterator[T] {
	return &sliceIterator[T]{items: items}
}

// Empty returns an exhausted stream.
func Empty[T any]() Iterator[T] {
	return &sliceIterator[T]{}
}

// failedIterator is a stream that failed before producing anything.
type failedIterator[T any] struct{ err error }

func (f failedIterator[T]) Next() (Solution[T], bool) { return Solution[T]{}, false }

func (f failedIterator[T]) Err() error { return f.err }

// Failed returns a stream that yields nothing and reports err.
func Failed[T any](err error) Iterator[T] {
	return failedIterator[T]{err: err}
}

// First pulls the first solution of it.
// It returns ErrNoSolution when the stream is exhausted without failure,
// and the stream error otherwise.
func First[T any](it Iterator[T]) (Solution[T], error) {
	if s, ok := it.Next(); ok {
		return s, nil
	}
	if err := it.Err(); err != nil {
		return Solution[T]{}, err
	}

	return Solution[T]{}, ErrNoSolution
}

// Collect drains it. On failure it returns the solutions gathered so far
// together with the stream error.
func Collect[T any](it Iterator[T]) ([]Solution[T], error) {
	var out []Solution[T]
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}

	return out, it.Err()
}

// Take pulls at most n solutions from it.
func Take[T any](it Iterator[T], n int) ([]Solution[T], error) {
	out := make([]Solution[T], 0, max(n, 0))
	for len(out) < n {
		s, ok := it.Next()
		if !ok {
			return out, it.Err()
		}
		out = append(out, s)
	}

	return out, nil
}

// All exposes it as a range-over-func sequence. Breaking out of the loop
// simply stops pulling; check it.Err() after the loop for hard failures.
func All[T any](it Iterator[T]) iter.Seq[Solution[T]] {
	return func(yield func(Solution[T]) bool) {
		for {
			s, ok := it.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// uniqueIterator suppresses values whose key was already emitted.
type uniqueIterator[T any, K comparable] struct {
	it   Iterator[T]
	key  func(T) K
	seen map[K]struct{}
}

func (u *uniqueIterator[T, K]) Next() (Solution[T], bool) {
	for {
		s, ok := u.it.Next()
		if !ok {
			return Solution[T]{}, false
		}
		k := u.key(s.value)
		if _, dup := u.seen[k]; dup {
			continue
		}
		u.seen[k] = struct{}{}

		return s, true
	}
}

func (u *uniqueIterator[T, K]) Err() error { return u.it.Err() }

// UniqueBy wraps it and drops every solution whose key(value) was already
// emitted. The first occurrence wins, so over a degree-ordered stream each
// value keeps its lowest degree. Memory grows with the distinct keys seen.
func UniqueBy[T any, K comparable](it Iterator[T], key func(T) K) Iterator[T] {
	return &uniqueIterator[T, K]{it: it, key: key, seen: make(map[K]struct{})}
}

// Unique is UniqueBy with the value itself as the key.
func Unique[T comparable](it Iterator[T]) Iterator[T] {
	return UniqueBy(it, func(v T) T { return v })
}

// nBestIterator stops once more than k distinct degrees were observed.
type nBestIterator[T any] struct {
	it      Iterator[T]
	k       int
	tiers   int
	last    int
	stopped bool
}

func (n *nBestIterator[T]) Next() (Solution[T], bool) {
	if n.stopped {
		return Solution[T]{}, false
	}
	s, ok := n.it.Next()
	if !ok {
		n.stopped = true
		return Solution[T]{}, false
	}
	if n.tiers == 0 || s.degree != n.last {
		n.tiers++
		n.last = s.degree
	}
	if n.tiers > n.k {
		n.stopped = true
		return Solution[T]{}, false
	}

	return s, true
}

func (n *nBestIterator[T]) Err() error { return n.it.Err() }

// NBestDegree wraps a degree-ordered stream and yields every solution whose
// degree belongs to the k cheapest distinct degree tiers, then stops.
// It is "all solutions within k tiers", not "k solutions": over degrees
// [0,0,1,1,2], NBestDegree(1) yields the two degree-0 solutions.
//
// The wrapper pulls one solution past the last tier to detect its end.
// A negative k yields a stream failing with ErrBadTierCount.
func NBestDegree[T any](it Iterator[T], k int) Iterator[T] {
	if k < 0 {
		return Failed[T](fmt.Errorf("%w: got %d", ErrBadTierCount, k))
	}

	return &nBestIterator[T]{it: it, k: k, stopped: k == 0}
}

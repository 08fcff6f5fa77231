package sequence

import "slices"

// Rebuilder converts the items produced for d into the caller's concrete
// sequence type. It is called exactly once per emitted solution, after
// the items are fully assembled, and should be pure. A returned error
// aborts the enumeration with ErrRebuild.
type Rebuilder[E any, S any] interface {
	Rebuild(items []E) (S, error)
}

// RebuildFunc adapts a function to Rebuilder.
type RebuildFunc[E any, S any] func(items []E) (S, error)

// Rebuild calls f.
func (f RebuildFunc[E, S]) Rebuild(items []E) (S, error) { return f(items) }

// SliceRebuilder returns the items as a fresh slice.
func SliceRebuilder[E any]() Rebuilder[E, []E] {
	return RebuildFunc[E, []E](func(items []E) ([]E, error) {
		return slices.Clone(items), nil
	})
}

// StringRebuilder joins runes into a string.
func StringRebuilder() Rebuilder[rune, string] {
	return RebuildFunc[rune, string](func(items []rune) (string, error) {
		return string(items), nil
	})
}

package sequence

import (
	"fmt"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
)

// List names the input list a factor item was read from.
type List uint8

const (
	// ListB marks items read from b.
	ListB List = iota
	// ListC marks items read from c.
	ListC
)

// String returns "B" or "C".
func (l List) String() string {
	if l == ListB {
		return "B"
	}

	return "C"
}

// Element names one of the four terms of the proportion.
type Element uint8

// The four elements of a:b::c:d.
const (
	ElementA Element = iota
	ElementB
	ElementC
	ElementD
)

// String returns "A", "B", "C" or "D".
func (e Element) String() string {
	return string("ABCD"[e&3])
}

// Factor is one aligned item.
//
//	List B, straight: item of a and b (AB)
//	List B, crossed:  item of b and d (BD)
//	List C, straight: item of c and d (CD)
//	List C, crossed:  item of a and c (AC)
type Factor[E any] struct {
	List    List
	Crossed bool
	Item    E
}

// In reports whether the factor's item belongs to element el.
func (f Factor[E]) In(el Element) bool {
	switch el {
	case ElementA:
		return f.List == ListB && !f.Crossed || f.List == ListC && f.Crossed
	case ElementB:
		return f.List == ListB
	case ElementC:
		return f.List == ListC
	default:
		return f.List == ListC && !f.Crossed || f.List == ListB && f.Crossed
	}
}

// factorNode is a cell of the persistent factor list. Extensions share
// their prefix with the factorization they were built from.
type factorNode[E comparable] struct {
	factor Factor[E]
	prev   *factorNode[E]
}

// Factorization is the immutable history of a reading head: its factors
// in order and the degree they account for. The zero value is an empty
// factorization counted with DegreeRuns.
type Factorization[E comparable] struct {
	mode        DegreeMode
	last        *factorNode[E]
	length      int
	degree      int
	fingerprint uint64
}

// NewFactorization returns an empty factorization of degree 0.
func NewFactorization[E comparable](mode DegreeMode) Factorization[E] {
	return Factorization[E]{mode: mode}
}

// Len returns the number of factors.
func (f Factorization[E]) Len() int { return f.length }

// Degree returns the number of runs of the factorization.
// Extending a factorization never lowers it.
func (f Factorization[E]) Degree() int { return f.degree }

// Mode returns the degree measure in use.
func (f Factorization[E]) Mode() DegreeMode { return f.mode }

// Extend returns f with one more factor appended.
func (f Factorization[E]) Extend(list List, crossed bool, item E) Factorization[E] {
	next := Factor[E]{List: list, Crossed: crossed, Item: item}
	ext := Factorization[E]{
		mode:        f.mode,
		last:        &factorNode[E]{factor: next, prev: f.last},
		length:      f.length + 1,
		degree:      f.degree,
		fingerprint: mix(f.fingerprint, next),
	}
	if f.last == nil || f.breaksRun(f.last.factor, next) {
		ext.degree++
	}

	return ext
}

// breaksRun reports whether next starts a new run after prev.
func (f Factorization[E]) breaksRun(prev, next Factor[E]) bool {
	if prev.Crossed != next.Crossed {
		return true
	}

	return f.mode == DegreeRuns && prev.List != next.List
}

// Factors returns the factors in order.
func (f Factorization[E]) Factors() []Factor[E] {
	out := make([]Factor[E], f.length)
	i := f.length - 1
	for n := f.last; n != nil; n = n.prev {
		out[i] = n.factor
		i--
	}

	return out
}

// Extract returns, in order, the items belonging to element el.
// Extract(ElementD) is the solution value; the other elements reproduce
// the consumed prefixes of a, b and c.
func (f Factorization[E]) Extract(el Element) []E {
	out := make([]E, 0, f.length)
	for _, fc := range f.Factors() {
		if fc.In(el) {
			out = append(out, fc.Item)
		}
	}

	return out
}

// Equal reports structural equality: same mode and same factors in order.
func (f Factorization[E]) Equal(o Factorization[E]) bool {
	if f.mode != o.mode || f.length != o.length || f.degree != o.degree || f.fingerprint != o.fingerprint {
		return false
	}
	for x, y := f.last, o.last; x != y; x, y = x.prev, y.prev {
		if x.factor != y.factor {
			return false
		}
	}

	return true
}

// Fingerprint returns a structural hash of the factors; equal
// factorizations have equal fingerprints.
func (f Factorization[E]) Fingerprint() uint64 { return f.fingerprint }

// Format renders the factorization as a chain of proportion factors, one
// per orientation run, e.g. ⟨ab:ab::xb:xb⟩⟨c:d::c:d⟩. Items are rendered
// by item and joined with sep.
func (f Factorization[E]) Format(sep string, item func(E) string) string {
	var sb strings.Builder
	factors := f.Factors()
	for start := 0; start < len(factors); {
		end := start + 1
		for end < len(factors) && factors[end].Crossed == factors[start].Crossed {
			end++
		}
		run := factors[start:end]
		sb.WriteString("⟨")
		for i, el := range []Element{ElementA, ElementB, ElementC, ElementD} {
			if i > 0 {
				sb.WriteString([]string{":", "::", ":"}[i-1])
			}
			first := true
			for _, fc := range run {
				if !fc.In(el) {
					continue
				}
				if !first {
					sb.WriteString(sep)
				}
				first = false
				sb.WriteString(item(fc.Item))
			}
		}
		sb.WriteString("⟩")
		start = end
	}

	return sb.String()
}

// String renders the factorization with fmt.Sprint items separated by spaces.
func (f Factorization[E]) String() string {
	return f.Format(" ", func(e E) string { return fmt.Sprint(e) })
}

// fnvPrime is the 64-bit FNV prime, used to chain factor hashes.
const fnvPrime = 1099511628211

// mix chains the hash of fc onto an existing fingerprint. A factor that
// cannot be hashed contributes only its position; Equal still walks the
// factors, so this weakens deduplication speed, never correctness.
func mix[E comparable](fp uint64, fc Factor[E]) uint64 {
	h, err := hashstructure.Hash(fc, hashstructure.FormatV2, nil)
	if err != nil {
		h = 0
	}

	return (fp ^ h) * fnvPrime
}

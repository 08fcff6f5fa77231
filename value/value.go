package value

import (
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Kind tags the shape of a Value.
type Kind int

const (
	// KindAtom tags Atom.
	KindAtom Kind = iota
	// KindSequence tags Sequence.
	KindSequence
	// KindSet tags Set.
	KindSet
	// KindTuple tags Tuple.
	KindTuple
)

// String returns "atom", "sequence", "set" or "tuple".
func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindSequence:
		return "sequence"
	case KindSet:
		return "set"
	case KindTuple:
		return "tuple"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an analogy operand. The interface is sealed: only the types
// of this package implement it.
type Value interface {
	// Kind reports the shape.
	Kind() Kind
	// Key is a canonical encoding: two values are equal iff their keys are.
	Key() string
	// String renders the value for display.
	String() string

	isValue()
}

// Atom is an indivisible token.
type Atom string

// Kind returns KindAtom.
func (Atom) Kind() Kind { return KindAtom }

// Key quotes the token.
func (a Atom) Key() string { return "a" + strconv.Quote(string(a)) }

// String returns the token.
func (a Atom) String() string { return string(a) }

func (Atom) isValue() {}

// Sequence is an ordered list of values. Sep joins the items in String.
type Sequence struct {
	items []Value
	sep   string
}

// Seq returns the sequence of items rendered with sep.
func Seq(sep string, items ...Value) Sequence {
	return Sequence{items: slices.Clone(items), sep: sep}
}

// Chars splits s into single-rune atoms.
func Chars(s string) Sequence {
	items := make([]Value, 0, len(s))
	for _, r := range s {
		items = append(items, Atom(string(r)))
	}

	return Sequence{items: items}
}

// Words splits s around runs of white space.
func Words(s string) Sequence {
	return Atoms(strings.Fields(s)...)
}

// Atoms returns the sequence of the given atoms, rendered space-separated.
func Atoms(words ...string) Sequence {
	items := make([]Value, len(words))
	for i, w := range words {
		items[i] = Atom(w)
	}

	return Sequence{items: items, sep: " "}
}

// Kind returns KindSequence.
func (Sequence) Kind() Kind { return KindSequence }

// Len returns the number of items.
func (s Sequence) Len() int { return len(s.items) }

// Items returns a copy of the items.
func (s Sequence) Items() []Value { return slices.Clone(s.items) }

// Sep returns the rendering separator.
func (s Sequence) Sep() string { return s.sep }

// Key lists the item keys in order; the separator is not part of it.
func (s Sequence) Key() string {
	var sb strings.Builder
	sb.WriteString("q[")
	for i, v := range s.items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.Key())
	}
	sb.WriteByte(']')

	return sb.String()
}

// String joins the rendered items with the separator.
func (s Sequence) String() string {
	parts := make([]string, len(s.items))
	for i, v := range s.items {
		parts[i] = v.String()
	}

	return strings.Join(parts, s.sep)
}

func (Sequence) isValue() {}

// Set is an unordered collection of distinct values.
type Set struct {
	items map[string]Value
}

// NewSet returns the set of items; duplicates by Key collapse.
func NewSet(items ...Value) Set {
	m := make(map[string]Value, len(items))
	for _, v := range items {
		m[v.Key()] = v
	}

	return Set{items: m}
}

// Kind returns KindSet.
func (Set) Kind() Kind { return KindSet }

// Len returns the number of items.
func (s Set) Len() int { return len(s.items) }

// Items returns the items ordered by Key.
func (s Set) Items() []Value {
	out := make([]Value, 0, len(s.items))
	for _, k := range slices.Sorted(maps.Keys(s.items)) {
		out = append(out, s.items[k])
	}

	return out
}

// Key lists the sorted item keys.
func (s Set) Key() string {
	return "s{" + strings.Join(slices.Sorted(maps.Keys(s.items)), ",") + "}"
}

// String renders the items sorted, as {a, b}.
func (s Set) String() string {
	parts := make([]string, 0, len(s.items))
	for _, v := range s.items {
		parts = append(parts, v.String())
	}
	sort.Strings(parts)

	return "{" + strings.Join(parts, ", ") + "}"
}

func (Set) isValue() {}

// Tuple maps field names to values.
type Tuple struct {
	fields map[string]Value
}

// NewTuple returns the tuple of fields. The map is copied.
func NewTuple(fields map[string]Value) Tuple {
	return Tuple{fields: maps.Clone(fields)}
}

// Kind returns KindTuple.
func (Tuple) Kind() Kind { return KindTuple }

// Len returns the number of fields.
func (t Tuple) Len() int { return len(t.fields) }

// Field returns the value of name.
func (t Tuple) Field(name string) (Value, bool) {
	v, ok := t.fields[name]
	return v, ok
}

// Names returns the sorted field names.
func (t Tuple) Names() []string { return slices.Sorted(maps.Keys(t.fields)) }

// Fields returns a copy of the fields.
func (t Tuple) Fields() map[string]Value { return maps.Clone(t.fields) }

// Key lists name=key pairs by sorted name.
func (t Tuple) Key() string {
	var sb strings.Builder
	sb.WriteString("t{")
	for i, name := range t.Names() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(name))
		sb.WriteByte('=')
		sb.WriteString(t.fields[name].Key())
	}
	sb.WriteByte('}')

	return sb.String()
}

// String renders the fields by sorted name, as (x=1, y=2).
func (t Tuple) String() string {
	names := t.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + t.fields[name].String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func (Tuple) isValue() {}

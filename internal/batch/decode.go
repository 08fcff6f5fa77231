package batch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/analogy/value"
	"gopkg.in/yaml.v3"
)

// SetTag marks a YAML sequence as a set.
const SetTag = "!set"

// Sentinel errors for malformed batch files.
var (
	ErrBadSplit   = errors.New("batch: unknown split mode")
	ErrBadNode    = errors.New("batch: unsupported YAML node")
	ErrNoOperand  = errors.New("batch: missing operand")
	ErrNoEquation = errors.New("batch: no equations")
)

// Split selects how scalar operands become values.
type Split string

const (
	SplitChars Split = "chars"
	SplitWords Split = "words"
	SplitNone  Split = "none"
)

// ParseSplit validates s; the empty string means SplitChars.
func ParseSplit(s string) (Split, error) {
	switch Split(strings.ToLower(strings.TrimSpace(s))) {
	case "", SplitChars:
		return SplitChars, nil
	case SplitWords:
		return SplitWords, nil
	case SplitNone, "atom":
		return SplitNone, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadSplit, s)
	}
}

// Scalar converts s according to split.
func (sp Split) Scalar(s string) value.Value {
	switch sp {
	case SplitWords:
		return value.Words(s)
	case SplitNone:
		return value.Atom(s)
	default:
		return value.Chars(s)
	}
}

// File is a parsed batch file.
type File struct {
	Defaults  Settings `yaml:"defaults"`
	Equations []Entry  `yaml:"equations"`
}

// Entry is one equation of a batch file. Split overrides the default.
type Entry struct {
	Name  string    `yaml:"name"`
	Split string    `yaml:"split"`
	A     yaml.Node `yaml:"a"`
	B     yaml.Node `yaml:"b"`
	C     yaml.Node `yaml:"c"`
}

// Parse reads a batch file from r.
func Parse(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoEquation
		}
		return nil, fmt.Errorf("batch: decode: %w", err)
	}
	if len(f.Equations) == 0 {
		return nil, ErrNoEquation
	}
	for i := range f.Equations {
		if f.Equations[i].Name == "" {
			f.Equations[i].Name = fmt.Sprintf("#%d", i+1)
		}
	}

	return &f, nil
}

// Operands decodes the entry's operands, splitting scalars by its own
// split or else by def.
func (e *Entry) Operands(def string) (a, b, c value.Value, err error) {
	mode := e.Split
	if mode == "" {
		mode = def
	}
	sp, err := ParseSplit(mode)
	if err != nil {
		return nil, nil, nil, err
	}
	out := make([]value.Value, 3)
	for i, n := range []*yaml.Node{&e.A, &e.B, &e.C} {
		if n.Kind == 0 {
			return nil, nil, nil, fmt.Errorf("%w: %c in %s", ErrNoOperand, 'a'+i, e.Name)
		}
		if out[i], err = Decode(n, sp); err != nil {
			return nil, nil, nil, fmt.Errorf("%s.%c: %w", e.Name, 'a'+i, err)
		}
	}

	return out[0], out[1], out[2], nil
}

// Decode converts a YAML node to a value. Top-level and tuple-field
// scalars are split by sp; items of sequences and sets are decoded with
// SplitNone, so scalar items are atoms.
func Decode(n *yaml.Node, sp Split) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return nil, fmt.Errorf("%w: empty document", ErrBadNode)
		}
		return Decode(n.Content[0], sp)

	case yaml.AliasNode:
		return Decode(n.Alias, sp)

	case yaml.ScalarNode:
		return sp.Scalar(n.Value), nil

	case yaml.SequenceNode:
		items := make([]value.Value, len(n.Content))
		for i, c := range n.Content {
			v, err := Decode(c, SplitNone)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		if n.Tag == SetTag {
			return value.NewSet(items...), nil
		}
		return value.Seq(" ", items...), nil

	case yaml.MappingNode:
		fields := make(map[string]value.Value, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: non-scalar key at line %d", ErrBadNode, k.Line)
			}
			v, err := Decode(n.Content[i+1], sp)
			if err != nil {
				return nil, err
			}
			fields[k.Value] = v
		}
		return value.NewTuple(fields), nil

	default:
		return nil, fmt.Errorf("%w: kind %d at line %d", ErrBadNode, n.Kind, n.Line)
	}
}

package sequence

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/analogy/equation"
)

// Equation is an analogical equation a:b::c:? over sequences of E whose
// solutions are rebuilt into S.
type Equation[E comparable, S any] struct {
	equation.Triple[[]E]
	rebuilder Rebuilder[E, S]
	opts      Options
}

// New builds the equation a:b::c:? . The operands are copied.
// Returns ErrNilRebuilder for a nil rebuilder and ErrOptionViolation for
// invalid options.
func New[E comparable, S any](a, b, c []E, rb Rebuilder[E, S], opts ...Option) (*Equation[E, S], error) {
	if rb == nil {
		return nil, ErrNilRebuilder
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Equation[E, S]{
		Triple:    equation.NewTriple(slices.Clone(a), slices.Clone(b), slices.Clone(c)),
		rebuilder: rb,
		opts:      o,
	}, nil
}

// Strings builds the equation a:b::c:? over the runes of three strings.
func Strings(a, b, c string, opts ...Option) (*Equation[rune, string], error) {
	return New([]rune(a), []rune(b), []rune(c), StringRebuilder(), opts...)
}

// Slices builds the equation a:b::c:? whose solutions are plain slices.
func Slices[E comparable](a, b, c []E, opts ...Option) (*Equation[E, []E], error) {
	return New(a, b, c, SliceRebuilder[E](), opts...)
}

// Dual returns the equation a:c::b:? with the same rebuilder and options.
func (e *Equation[E, S]) Dual() *Equation[E, S] {
	return &Equation[E, S]{Triple: e.Swapped(), rebuilder: e.rebuilder, opts: e.opts}
}

// A returns a copy of the first operand.
func (e *Equation[E, S]) A() []E { return slices.Clone(e.Triple.A()) }

// B returns a copy of the second operand.
func (e *Equation[E, S]) B() []E { return slices.Clone(e.Triple.B()) }

// C returns a copy of the third operand.
func (e *Equation[E, S]) C() []E { return slices.Clone(e.Triple.C()) }

// Operands returns copies of (a, b, c).
func (e *Equation[E, S]) Operands() ([]E, []E, []E) { return e.A(), e.B(), e.C() }

// Feasible runs the count pre-check on the operands.
func (e *Equation[E, S]) Feasible() bool {
	a, b, c := e.Triple.Operands()

	return Feasible(a, b, c)
}

// Feasible is a necessary condition for a:b::c:? to have a solution:
// a is not longer than b and c together, and no item occurs in a more
// often than in b and c combined. It runs in O(|a|+|b|+|c|).
func Feasible[E comparable](a, b, c []E) bool {
	if len(a)-len(b)-len(c) > 0 {
		return false
	}
	balance := make(map[E]int, len(a))
	for _, x := range a {
		balance[x]++
	}
	for _, x := range b {
		balance[x]--
	}
	for _, x := range c {
		balance[x]--
	}
	for _, n := range balance {
		if n > 0 {
			return false
		}
	}

	return true
}

// Alignment is a solution together with the factorization that produced it.
type Alignment[E comparable, S any] struct {
	Solution      equation.Solution[S]
	Factorization Factorization[E]
}

// Solve starts a fresh enumeration of the solutions, in non-decreasing
// degree order.
func (e *Equation[E, S]) Solve() equation.Iterator[S] {
	return solutions[E, S]{search: e.Alignments()}
}

// Alignments starts a fresh enumeration yielding each solution with its
// factorization.
func (e *Equation[E, S]) Alignments() *Alignments[E, S] {
	s := &Alignments[E, S]{eq: e, reg: newRegister[E]()}
	log := e.opts.Logger
	a, b, c := e.Triple.Operands()
	if !Feasible(a, b, c) {
		log.Debug("sequence: rejected by count pre-check",
			slog.Int("len_a", len(a)), slog.Int("len_b", len(b)), slog.Int("len_c", len(c)))
		s.done = true
		return s
	}
	s.reg.push(NewReadingHead(a, b, c, e.opts.DegreeMode))

	return s
}

// Alignments is the lazy best-first search over the lattice of one
// equation. It owns its frontier and is not safe for concurrent use.
type Alignments[E comparable, S any] struct {
	eq         *Equation[E, S]
	reg        *register[E]
	expansions int
	done       bool
	err        error
}

// Expansions returns the number of heads expanded so far.
func (s *Alignments[E, S]) Expansions() int { return s.expansions }

// Err returns the failure that ended the search, if any.
func (s *Alignments[E, S]) Err() error { return s.err }

// Next runs the search until the next finished head and returns its
// alignment. It reports false once the frontier is exhausted or the
// search failed.
func (s *Alignments[E, S]) Next() (Alignment[E, S], bool) {
	o := &s.eq.opts
	for !s.done {
		if err := o.Ctx.Err(); err != nil {
			s.fail(err)
			break
		}
		h, degree, ok := s.reg.pop()
		if !ok {
			s.done = true
			o.Logger.Debug("sequence: search exhausted", slog.Int("expansions", s.expansions))
			break
		}

		if h.IsFinished() {
			value, err := s.eq.rebuilder.Rebuild(h.fact.Extract(ElementD))
			if err != nil {
				s.fail(fmt.Errorf("%w: %w", ErrRebuild, err))
				break
			}
			o.OnSolution(degree)
			o.Logger.Debug("sequence: solution", slog.Int("degree", degree), slog.Any("alignment", h.fact))

			return Alignment[E, S]{Solution: equation.NewSolution(value, degree), Factorization: h.fact}, true
		}

		if o.MaxExpansions > 0 && s.expansions >= o.MaxExpansions {
			s.fail(fmt.Errorf("%w: %d expansions", ErrBudgetExhausted, s.expansions))
			break
		}
		if err := s.expand(h, degree); err != nil {
			s.fail(err)
			break
		}
	}

	return Alignment[E, S]{}, false
}

// expand files every successor of h in the register.
func (s *Alignments[E, S]) expand(h *ReadingHead[E], degree int) error {
	o := &s.eq.opts
	s.expansions++
	o.OnExpand(h.posA, h.posB, h.posC, degree)
	for _, step := range TrialOrder {
		if !h.CanStep(step) {
			continue
		}
		next, err := h.MakeStep(step, o.FastForward)
		if err != nil {
			return err
		}
		if next.Degree() < degree {
			return fmt.Errorf("%w: %s from (%d,%d,%d)", ErrDegreeRegression, step, h.posA, h.posB, h.posC)
		}
		s.reg.push(next)
	}

	return nil
}

func (s *Alignments[E, S]) fail(err error) {
	s.done = true
	s.err = err
	s.eq.opts.Logger.Debug("sequence: search aborted", slog.Any("error", err))
}

// solutions adapts Alignments to equation.Iterator.
type solutions[E comparable, S any] struct {
	search *Alignments[E, S]
}

func (it solutions[E, S]) Next() (equation.Solution[S], bool) {
	a, ok := it.search.Next()
	return a.Solution, ok
}

func (it solutions[E, S]) Err() error { return it.search.Err() }

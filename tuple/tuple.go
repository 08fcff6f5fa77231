package tuple

import (
	"cmp"
	"container/heap"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/analogy/equation"
)

// Solver solves one component equation a:b::c:? .
type Solver[V any] func(a, b, c V) equation.Iterator[V]

// Equation is the tuple equation a:b::c:? .
type Equation[K cmp.Ordered, V any] struct {
	equation.Triple[map[K]V]
	solve Solver[V]
}

// New builds the equation a:b::c:? solving components with solve.
// The maps are copied.
func New[K cmp.Ordered, V any](a, b, c map[K]V, solve Solver[V]) *Equation[K, V] {
	return &Equation[K, V]{
		Triple: equation.NewTriple(maps.Clone(a), maps.Clone(b), maps.Clone(c)),
		solve:  solve,
	}
}

// Dual returns the equation a:c::b:? .
func (e *Equation[K, V]) Dual() *Equation[K, V] {
	return &Equation[K, V]{Triple: e.Swapped(), solve: e.solve}
}

// A returns a copy of the first operand.
func (e *Equation[K, V]) A() map[K]V { return maps.Clone(e.Triple.A()) }

// B returns a copy of the second operand.
func (e *Equation[K, V]) B() map[K]V { return maps.Clone(e.Triple.B()) }

// C returns a copy of the third operand.
func (e *Equation[K, V]) C() map[K]V { return maps.Clone(e.Triple.C()) }

// Operands returns copies of (a, b, c).
func (e *Equation[K, V]) Operands() (map[K]V, map[K]V, map[K]V) { return e.A(), e.B(), e.C() }

// Keys returns the shared sorted key set, or false when the operands
// disagree on their keys.
func (e *Equation[K, V]) Keys() ([]K, bool) {
	a, b, c := e.Triple.Operands()
	if len(a) != len(b) || len(a) != len(c) {
		return nil, false
	}
	for k := range a {
		_, inB := b[k]
		_, inC := c[k]
		if !inB || !inC {
			return nil, false
		}
	}

	return slices.Sorted(maps.Keys(a)), true
}

// Solve starts a fresh enumeration of the combinations.
func (e *Equation[K, V]) Solve() equation.Iterator[map[K]V] {
	keys, ok := e.Keys()
	if !ok {
		return equation.Empty[map[K]V]()
	}
	a, b, c := e.Triple.Operands()
	p := &product[K, V]{keys: keys, seen: make(map[string]struct{})}
	for _, k := range keys {
		p.streams = append(p.streams, &memo[V]{it: e.solve(a[k], b[k], c[k])})
	}

	return p
}

// memo caches the pulled prefix of a component stream.
type memo[V any] struct {
	it    equation.Iterator[V]
	cache []equation.Solution[V]
	done  bool
}

// at returns the i-th solution, pulling as needed.
func (m *memo[V]) at(i int) (equation.Solution[V], bool, error) {
	for len(m.cache) <= i && !m.done {
		s, ok := m.it.Next()
		if !ok {
			m.done = true
			if err := m.it.Err(); err != nil {
				return equation.Solution[V]{}, false, err
			}
			break
		}
		m.cache = append(m.cache, s)
	}
	if i < len(m.cache) {
		return m.cache[i], true, nil
	}

	return equation.Solution[V]{}, false, nil
}

// product walks index vectors into the component streams by total degree.
type product[K cmp.Ordered, V any] struct {
	keys     []K
	streams  []*memo[V]
	frontier comboPQ
	seen     map[string]struct{}
	seq      int
	started  bool
	done     bool
	err      error
}

func (p *product[K, V]) Err() error { return p.err }

func (p *product[K, V]) Next() (equation.Solution[map[K]V], bool) {
	if !p.started {
		p.started = true
		p.push(make([]int, len(p.streams)))
	}
	for !p.done && p.frontier.Len() > 0 {
		c := heap.Pop(&p.frontier).(*combo)
		d := make(map[K]V, len(p.keys))
		for i, k := range p.keys {
			s, _, _ := p.streams[i].at(c.idx[i])
			d[k] = s.Value()
		}
		for i := range c.idx {
			next := slices.Clone(c.idx)
			next[i]++
			p.push(next)
		}

		return equation.NewSolution(d, c.degree), true
	}
	p.done = true

	return equation.Solution[map[K]V]{}, false
}

// push files idx unless seen or out of range of a component stream.
func (p *product[K, V]) push(idx []int) {
	if p.done {
		return
	}
	key := encode(idx)
	if _, ok := p.seen[key]; ok {
		return
	}
	degree := 0
	for i, j := range idx {
		s, ok, err := p.streams[i].at(j)
		if err != nil {
			p.done, p.err = true, err
			return
		}
		if !ok {
			return
		}
		degree += s.Degree()
	}
	p.seen[key] = struct{}{}
	p.seq++
	heap.Push(&p.frontier, &combo{idx: idx, degree: degree, seq: p.seq})
}

func encode(idx []int) string {
	var sb strings.Builder
	for i, j := range idx {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(j))
	}

	return sb.String()
}

// combo is one index vector with its total degree.
type combo struct {
	idx    []int
	degree int
	seq    int
}

// comboPQ is a min-heap of combos by degree, then insertion order.
type comboPQ []*combo

func (pq comboPQ) Len() int { return len(pq) }

func (pq comboPQ) Less(i, j int) bool {
	if pq[i].degree != pq[j].degree {
		return pq[i].degree < pq[j].degree
	}

	return pq[i].seq < pq[j].seq
}

func (pq comboPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *comboPQ) Push(x any) { *pq = append(*pq, x.(*combo)) }

func (pq *comboPQ) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}

package sequence

import "container/heap"

// headKey buckets heads for structural deduplication; heads sharing a key
// are told apart by ReadingHead.Equal.
type headKey struct {
	a, b, c int
	fp      uint64
}

func keyOf[E comparable](h *ReadingHead[E]) headKey {
	return headKey{a: h.posA, b: h.posB, c: h.posC, fp: h.fact.Fingerprint()}
}

// bucket is the FIFO frontier of one degree, without duplicates.
type bucket[E comparable] struct {
	queue   []*ReadingHead[E]
	front   int
	members map[headKey][]*ReadingHead[E]
}

func newBucket[E comparable]() *bucket[E] {
	return &bucket[E]{members: make(map[headKey][]*ReadingHead[E])}
}

func (b *bucket[E]) len() int { return len(b.queue) - b.front }

// add enqueues h unless an equal head is already waiting.
func (b *bucket[E]) add(h *ReadingHead[E]) bool {
	k := keyOf(h)
	for _, other := range b.members[k] {
		if other.Equal(h) {
			return false
		}
	}
	b.members[k] = append(b.members[k], h)
	b.queue = append(b.queue, h)

	return true
}

// take dequeues the oldest head.
func (b *bucket[E]) take() *ReadingHead[E] {
	h := b.queue[b.front]
	b.queue[b.front] = nil
	b.front++
	if b.front > len(b.queue)/2 {
		b.queue = append(b.queue[:0], b.queue[b.front:]...)
		b.front = 0
	}

	k := keyOf(h)
	same := b.members[k]
	for i, other := range same {
		if other == h {
			same = append(same[:i], same[i+1:]...)
			break
		}
	}
	if len(same) == 0 {
		delete(b.members, k)
	} else {
		b.members[k] = same
	}

	return h
}

// register maps degree → frontier bucket and always serves the lowest
// populated degree first.
type register[E comparable] struct {
	degrees degreePQ
	buckets map[int]*bucket[E]
	size    int
}

func newRegister[E comparable]() *register[E] {
	r := &register[E]{buckets: make(map[int]*bucket[E])}
	heap.Init(&r.degrees)

	return r
}

// Len returns the number of waiting heads.
func (r *register[E]) Len() int { return r.size }

// push files h under its degree. It reports false for a duplicate.
func (r *register[E]) push(h *ReadingHead[E]) bool {
	d := h.Degree()
	b, ok := r.buckets[d]
	if !ok {
		b = newBucket[E]()
		r.buckets[d] = b
		heap.Push(&r.degrees, d)
	}
	if !b.add(h) {
		return false
	}
	r.size++

	return true
}

// pop removes a head of the lowest degree, oldest first.
func (r *register[E]) pop() (*ReadingHead[E], int, bool) {
	if r.size == 0 {
		return nil, 0, false
	}
	d := r.degrees[0]
	b := r.buckets[d]
	h := b.take()
	r.size--
	if b.len() == 0 {
		delete(r.buckets, d)
		heap.Pop(&r.degrees)
	}

	return h, d, true
}

// degreePQ is a min-heap of the populated degrees.
type degreePQ []int

func (pq degreePQ) Len() int           { return len(pq) }
func (pq degreePQ) Less(i, j int) bool { return pq[i] < pq[j] }
func (pq degreePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *degreePQ) Push(x any) { *pq = append(*pq, x.(int)) }

func (pq *degreePQ) Pop() any {
	old := *pq
	n := len(old)
	d := old[n-1]
	*pq = old[:n-1]

	return d
}

package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegister_OrderAndDedup serves the lowest degree first, FIFO within a
// degree, and merges structurally equal heads.
func TestRegister_OrderAndDedup(t *testing.T) {
	root := NewReadingHead([]rune("ab"), []rune("ab"), []rune("pq"), DegreeRuns)
	ab, err := root.MakeStep(StepAB, false) // degree 1
	require.NoError(t, err)
	cd, err := root.MakeStep(StepCD, false) // degree 1
	require.NoError(t, err)
	abcd, err := ab.MakeStep(StepCD, false) // degree 2
	require.NoError(t, err)
	dup, err := root.MakeStep(StepAB, false)
	require.NoError(t, err)

	r := newRegister[rune]()
	assert.True(t, r.push(abcd))
	assert.True(t, r.push(ab))
	assert.True(t, r.push(cd))
	assert.False(t, r.push(dup), "equal head already waiting")
	assert.Equal(t, 3, r.Len())

	h, d, ok := r.pop()
	require.True(t, ok)
	assert.Equal(t, 1, d)
	assert.Same(t, ab, h)

	assert.True(t, r.push(dup), "equal head no longer waiting")

	h, _, _ = r.pop()
	assert.Same(t, cd, h)
	h, _, _ = r.pop()
	assert.Same(t, dup, h)
	h, d, _ = r.pop()
	assert.Same(t, abcd, h)
	assert.Equal(t, 2, d)

	_, _, ok = r.pop()
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

// TestBucket_Compaction keeps FIFO order across queue compaction.
func TestBucket_Compaction(t *testing.T) {
	root := NewReadingHead([]rune("aaaaaaaa"), []rune("aaaaaaaa"), nil, DegreeRuns)
	b := newBucket[rune]()
	var heads []*ReadingHead[rune]
	h := root
	for range 8 {
		next, err := h.MakeStep(StepAB, false)
		require.NoError(t, err)
		heads = append(heads, next)
		require.True(t, b.add(next))
		h = next
	}
	for i := range heads {
		assert.Same(t, heads[i], b.take(), "position %d", i)
	}
	assert.Zero(t, b.len())
	assert.Empty(t, b.members)
}

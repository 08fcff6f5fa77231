package sequence_test

import (
	"github.com/katalvlaran/analogy/sequence"
)

// oracle enumerates every step sequence through the lattice of a:b::c
// without fast-forward and returns, per produced d, the lowest degree.
// Degrees are recomputed here from scratch, independently of Factorization.
func oracle(a, b, c string, mode sequence.DegreeMode) map[string]int {
	ra, rb, rc := []rune(a), []rune(b), []rune(c)
	best := make(map[string]int)

	type tag struct {
		list    sequence.List
		crossed bool
	}
	var walk func(i, j, k int, d []rune, tags []tag)
	walk = func(i, j, k int, d []rune, tags []tag) {
		if i == len(ra) && j == len(rb) && k == len(rc) {
			deg := 0
			for n, t := range tags {
				if n == 0 {
					deg = 1
					continue
				}
				prev := tags[n-1]
				if prev.crossed != t.crossed || mode == sequence.DegreeRuns && prev.list != t.list {
					deg++
				}
			}
			if old, ok := best[string(d)]; !ok || deg < old {
				best[string(d)] = deg
			}
			return
		}
		if i < len(ra) && j < len(rb) && ra[i] == rb[j] {
			walk(i+1, j+1, k, d, append(tags[:len(tags):len(tags)], tag{sequence.ListB, false}))
		}
		if i < len(ra) && k < len(rc) && ra[i] == rc[k] {
			walk(i+1, j, k+1, d, append(tags[:len(tags):len(tags)], tag{sequence.ListC, true}))
		}
		if k < len(rc) {
			walk(i, j, k+1, append(d[:len(d):len(d)], rc[k]), append(tags[:len(tags):len(tags)], tag{sequence.ListC, false}))
		}
		if j < len(rb) {
			walk(i, j+1, k, append(d[:len(d):len(d)], rb[j]), append(tags[:len(tags):len(tags)], tag{sequence.ListB, true}))
		}
	}
	walk(0, 0, 0, nil, nil)

	return best
}

// words enumerates every string over alphabet of length 0..maxLen.
func words(alphabet string, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for l := 1; l <= maxLen; l++ {
		var next []string
		for _, w := range frontier {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}

	return out
}

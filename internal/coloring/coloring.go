// Package coloring checks whether a position-parity coloring survives sorting.
package coloring

import (
	"cmp"
	"slices"
)

type tagged struct {
	value int
	tag   int // parity of the 1-based input position
}

// Consistent tags every element with the parity of its 1-based position,
// sorts by value and reports whether each interleaved class (odd and even
// positions of the sorted order) carries a single tag.
//
// Equal values are ordered by tag, even-position elements first, so the
// answer depends only on the multiset of (value, tag) pairs.
func Consistent(values []int) bool {
	pairs := make([]tagged, len(values))
	for i, v := range values {
		pairs[i] = tagged{value: v, tag: (i + 1) % 2}
	}
	slices.SortFunc(pairs, func(a, b tagged) int {
		if c := cmp.Compare(a.value, b.value); c != 0 {
			return c
		}
		return cmp.Compare(a.tag, b.tag)
	})

	return uniformFrom(pairs, 0) && uniformFrom(pairs, 1)
}

// uniformFrom reports whether pairs[start], pairs[start+2], ... share a tag.
func uniformFrom(pairs []tagged, start int) bool {
	if start >= len(pairs) {
		return true
	}
	want := pairs[start].tag
	for i := start; i < len(pairs); i += 2 {
		if pairs[i].tag != want {
			return false
		}
	}
	return true
}

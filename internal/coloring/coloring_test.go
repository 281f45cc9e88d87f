package coloring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsistent(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   bool
	}{
		{"single", []int{7}, true},
		{"pair reversed", []int{2, 1}, true},
		{"already sorted", []int{1, 2, 3, 4}, true},
		{"alternating high low", []int{2, 1, 2, 1}, false},
		{"alternating low high", []int{1, 2, 1, 2}, false},
		{"ties resolved by parity", []int{1, 1, 2, 2}, true},
		{"odd length", []int{3, 1, 2}, false},
		{"all equal", []int{5, 5, 5, 5, 5}, false},
		{"swap within parity", []int{3, 2, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Consistent(tt.values))
		})
	}
}

func TestConsistent_DoesNotMutate(t *testing.T) {
	in := []int{4, 3, 2, 1}
	Consistent(in)
	assert.Equal(t, []int{4, 3, 2, 1}, in)
}

// Permuting values among positions of the same parity keeps the (value, tag)
// multiset and therefore the verdict.
func TestConsistent_ParityPermutationInvariant(t *testing.T) {
	base := []int{5, 2, 9, 2, 1, 7, 5, 3}
	want := Consistent(base)

	permuted := []int{1, 7, 5, 3, 9, 2, 5, 2}
	assert.Equal(t, want, Consistent(permuted))

	permuted = []int{9, 3, 1, 2, 5, 2, 5, 7}
	assert.Equal(t, want, Consistent(permuted))
}

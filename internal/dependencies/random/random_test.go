package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandomIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(52), b.Intn(52))
	}
	assert.Equal(t, a.String(12, "ABC123"), b.String(12, "ABC123"))
}

func TestStringUsesAlphabetAndLength(t *testing.T) {
	const alphabet = "XYZ"
	got := New().String(16, alphabet)

	assert.Len(t, got, 16)
	for _, r := range got {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestShuffleIsAPermutation(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rnd := NewSeeded(1)
	rnd.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	seen := make(map[int]bool)
	for _, v := range values {
		seen[v] = true
	}
	assert.Len(t, seen, 10)
}

package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DeterministicForSameSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestShuffle_PermutesAllElements(t *testing.T) {
	s := New(7)
	p := PermN(100, s)
	seen := make(map[int]bool, 100)
	for _, v := range p {
		assert.False(t, seen[v], "duplicate value %d in permutation", v)
		seen[v] = true
	}
	assert.Len(t, seen, 100)
}

func TestShuffle_SingleAndEmptyAreNoops(t *testing.T) {
	s := New(1)
	empty := []int{}
	s.Shuffle(empty)
	assert.Empty(t, empty)

	single := []int{42}
	s.Shuffle(single)
	assert.Equal(t, []int{42}, single)
}

func TestDerive_ProducesDifferentStreams(t *testing.T) {
	s := New(1)
	d1 := s.Derive(1)
	d2 := s.Derive(2)
	assert.NotEqual(t, d1.IntN(1<<30), d2.IntN(1<<30))
}

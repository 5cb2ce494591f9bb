package tetris

import "math/rand/v2"

// Randomizer picks the next spawn index. IntN must return a value in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// NewRandom returns a PCG-backed randomizer. Equal seeds produce equal piece
// sequences.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence replays a fixed list of spawn indices, starting over once the list
// is exhausted. Indices are reduced modulo n so any list is valid.
type Sequence struct {
	indices []int
	next    int
}

// NewSequence creates a Sequence. An empty list always yields 0.
func NewSequence(indices ...int) *Sequence {
	return &Sequence{indices: indices}
}

// SequenceOf is a convenience for replaying piece kinds instead of indices.
func SequenceOf(kinds ...Cell) *Sequence {
	indices := make([]int, 0, len(kinds))
	for _, kind := range kinds {
		indices = append(indices, int(kind)-1)
	}
	return NewSequence(indices...)
}

func (s *Sequence) IntN(n int) int {
	if len(s.indices) == 0 || n <= 0 {
		return 0
	}
	v := s.indices[s.next%len(s.indices)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

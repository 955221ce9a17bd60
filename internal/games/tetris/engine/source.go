package engine

import "math/rand"

// ShapeSource produces the next shape to enqueue.
// The engine only ever asks for one shape at a time.
type ShapeSource interface {
	Next() Shape
}

// RandomSource picks uniformly from the catalog. Repeats are allowed.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen catalog shape.
func (r *RandomSource) Next() Shape {
	return catalog[r.rng.Intn(len(catalog))]
}

// SequenceSource replays a fixed list of kinds, wrapping around at the end.
// Used for deterministic games and tests.
type SequenceSource struct {
	kinds []Kind
	pos   int
}

// NewSequenceSource creates a source cycling through kinds.
// An empty list yields I shapes forever.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	if len(kinds) == 0 {
		kinds = []Kind{KindI}
	}
	return &SequenceSource{kinds: kinds}
}

// Next returns the next shape in the sequence.
func (s *SequenceSource) Next() Shape {
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return ShapeOf(k)
}

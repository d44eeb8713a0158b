package behavior

import "math/rand"

// Option is one weighted entry in a Table.
type Option[T any] struct {
	Value  T
	Weight float64
}

// Table picks among a small fixed set of options with explicit weights.
// Options with a non-positive weight are never picked.
type Table[T any] struct {
	options []Option[T]
	total   float64
}

// NewTable builds a Table from opts.
func NewTable[T any](opts ...Option[T]) Table[T] {
	t := Table[T]{}
	for _, o := range opts {
		if o.Weight <= 0 {
			continue
		}
		t.options = append(t.options, o)
		t.total += o.Weight
	}
	return t
}

// Len returns the number of pickable options.
func (t Table[T]) Len() int {
	return len(t.options)
}

// Pick draws one option. An empty table returns the zero value.
func (t Table[T]) Pick(rng *rand.Rand) T {
	var zero T
	if len(t.options) == 0 {
		return zero
	}
	r := rng.Float64() * t.total
	for _, o := range t.options {
		if r < o.Weight {
			return o.Value
		}
		r -= o.Weight
	}
	// Float rounding can leave r at the very end of the range.
	return t.options[len(t.options)-1].Value
}

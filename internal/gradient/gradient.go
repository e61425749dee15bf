// Package gradient maps a normalized scalar in [0, 1] onto a discrete value
// (a glyph, a color) through an ordered table of breakpoints.
package gradient

import (
	"cmp"
	"math"
	"slices"
)

// Entry is a single breakpoint: inputs up to and including T map to Value.
type Entry[T any] struct {
	T     float64
	Value T
}

// Gradient is an immutable step function over [0, 1].
// It is safe to share between particle systems and goroutines.
type Gradient[T any] struct {
	entries []Entry[T]
}

// New builds a gradient from breakpoints given in any order.
// Entries are sorted by threshold. New panics if entries is empty or
// a threshold is NaN; both are programming errors in a scene definition.
func New[T any](entries []Entry[T]) *Gradient[T] {
	if len(entries) == 0 {
		panic("gradient: no entries")
	}
	sorted := make([]Entry[T], len(entries))
	copy(sorted, entries)
	for _, e := range sorted {
		if math.IsNaN(e.T) {
			panic("gradient: NaN threshold")
		}
	}
	slices.SortStableFunc(sorted, func(a, b Entry[T]) int {
		return cmp.Compare(a.T, b.T)
	})
	return &Gradient[T]{entries: sorted}
}

// EqualSpacing assigns thresholds i/n (i = 1..n) to values in order,
// producing n equal-width buckets covering (0, 1].
// EqualSpacing panics if values is empty.
func EqualSpacing[T any](values ...T) *Gradient[T] {
	if len(values) == 0 {
		panic("gradient: no values")
	}
	n := float64(len(values))
	entries := make([]Entry[T], len(values))
	for i, v := range values {
		entries[i] = Entry[T]{T: float64(i+1) / n, Value: v}
	}
	return New(entries)
}

// Value returns the value of the first breakpoint whose threshold is >= t,
// or the last breakpoint's value when t is above every threshold.
// No interpolation is performed.
func (g *Gradient[T]) Value(t float64) T {
	i, _ := slices.BinarySearchFunc(g.entries, t, func(e Entry[T], t float64) int {
		return cmp.Compare(e.T, t)
	})
	if i >= len(g.entries) {
		i = len(g.entries) - 1
	}
	return g.entries[i].Value
}

// Len returns the number of breakpoints.
func (g *Gradient[T]) Len() int {
	return len(g.entries)
}

// Entries returns a copy of the breakpoints in ascending threshold order.
func (g *Gradient[T]) Entries() []Entry[T] {
	return slices.Clone(g.entries)
}

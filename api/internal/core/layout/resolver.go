// Package layout turns ordered identifier lists into render sequences.
package layout

// Renderer produces one piece of output. It reports false when there is
// nothing to show (hidden block, empty subtitle, and so on).
type Renderer[T any] func() (T, bool)

// Table maps identifiers to their renderers.
type Table[K comparable, T any] map[K]Renderer[T]

// Resolve walks order and collects the output of each identifier's renderer.
// Identifiers without an entry, with a nil renderer, or whose renderer reports
// false are skipped. Duplicated identifiers render twice.
func Resolve[K comparable, T any](order []K, table Table[K, T]) []T {
	out := make([]T, 0, len(order))
	for _, id := range order {
		render, ok := table[id]
		if !ok || render == nil {
			continue
		}
		if v, ok := render(); ok {
			out = append(out, v)
		}
	}
	return out
}

// Show wraps a precomputed value.
func Show[T any](v T) Renderer[T] {
	return func() (T, bool) { return v, true }
}

// When renders v only if cond holds.
func When[T any](cond bool, v func() T) Renderer[T] {
	return func() (T, bool) {
		if !cond {
			var zero T
			return zero, false
		}
		return v(), true
	}
}

// Filter keeps the identifiers of order that belong to group, preserving order.
func Filter[K comparable](order []K, group ...K) []K {
	out := make([]K, 0, len(order))
	for _, id := range order {
		for _, g := range group {
			if id == g {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

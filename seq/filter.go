package seq

// Filter returns the items for which pred returns true, in their
// original order. The result is empty, not nil, when nothing matches.
func Filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, v := range items {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// FilterNot returns the items for which pred returns false.
func FilterNot[T any](items []T, pred func(T) bool) []T {
	return Filter(items, func(v T) bool { return !pred(v) })
}

// FilterIsInstance returns the items whose dynamic type is U.
func FilterIsInstance[U any](items []any) []U {
	out := make([]U, 0, len(items))
	for _, v := range items {
		if u, ok := v.(U); ok {
			out = append(out, u)
		}
	}
	return out
}

// FilterRunes returns s with only the runes for which keep returns true.
func FilterRunes(s string, keep func(rune) bool) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if keep(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// Find returns the first item matching pred.
func Find[T any](items []T, pred func(T) bool) (T, bool) {
	for _, v := range items {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// All reports whether every item matches pred. It is true for an empty slice.
func All[T any](items []T, pred func(T) bool) bool {
	for _, v := range items {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether at least one item matches pred.
func Any[T any](items []T, pred func(T) bool) bool {
	_, ok := Find(items, pred)
	return ok
}

// Count returns the number of items matching pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, v := range items {
		if pred(v) {
			n++
		}
	}
	return n
}

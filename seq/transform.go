package seq

// Map calls fn for each item and returns the results in order.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i := range items {
		out[i] = fn(items[i])
	}
	return out
}

// FlatMap calls fn for each item and concatenates the returned slices.
func FlatMap[T, U any](items []T, fn func(T) []U) []U {
	out := make([]U, 0, len(items))
	for _, v := range items {
		out = append(out, fn(v)...)
	}
	return out
}

// Flatten concatenates the inner slices of items.
func Flatten[T any](items [][]T) []T {
	return FlatMap(items, func(inner []T) []T { return inner })
}

// ToSet drops repeated items, keeping the first occurrence of each.
func ToSet[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, v := range items {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// CopyInto appends src to *dst.
func CopyInto[T any](dst *[]T, src []T) {
	*dst = append(*dst, src...)
}

// Indexed pairs an item with its position.
type Indexed[T any] struct {
	Index int
	Value T
}

// WithIndex returns each item alongside its index.
func WithIndex[T any](items []T) []Indexed[T] {
	out := make([]Indexed[T], len(items))
	for i, v := range items {
		out[i] = Indexed[T]{Index: i, Value: v}
	}
	return out
}

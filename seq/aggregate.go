package seq

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// MaxBy returns the first item with the greatest key.
func MaxBy[T any, K cmp.Ordered](items []T, key func(T) K) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	bestKey := key(best)
	for _, v := range items[1:] {
		if k := key(v); k > bestKey {
			best, bestKey = v, k
		}
	}
	return best, true
}

// MinBy returns the first item with the smallest key.
func MinBy[T any, K cmp.Ordered](items []T, key func(T) K) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	bestKey := key(best)
	for _, v := range items[1:] {
		if k := key(v); k < bestKey {
			best, bestKey = v, k
		}
	}
	return best, true
}

func Sum[N Number](items []N) N {
	var total N
	for _, v := range items {
		total += v
	}
	return total
}

// Average returns the arithmetic mean, or NaN for an empty slice.
func Average[N Number](items []N) float64 {
	if len(items) == 0 {
		return math.NaN()
	}
	var total float64
	for _, v := range items {
		total += float64(v)
	}
	return total / float64(len(items))
}

package seq

import "iter"

// Values yields the items of a slice. Nothing is copied.
func Values[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// MapSeq transforms each element as it is pulled.
func MapSeq[T, U any](s iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// FilterSeq yields only the elements matching pred.
func FilterSeq[T any](s iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// FlatMapSeq yields the elements of fn(v) for each v.
func FlatMapSeq[T, U any](s iter.Seq[T], fn func(T) []U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			for _, u := range fn(v) {
				if !yield(u) {
					return
				}
			}
		}
	}
}

// Take yields at most n elements.
func Take[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range s {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Collect drains s into a slice.
func Collect[T any](s iter.Seq[T]) []T {
	out := []T{}
	for v := range s {
		out = append(out, v)
	}
	return out
}

// FindSeq returns the first element matching pred and stops pulling
// from s once it is found.
func FindSeq[T any](s iter.Seq[T], pred func(T) bool) (T, bool) {
	for v := range s {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

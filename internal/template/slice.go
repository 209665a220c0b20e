package template

import "github.com/scritchley/seqgen/seq"

// T__Slice is a slice of T__.
type T__Slice []T__

// Filter returns the elements of t for which fn returns true.
func (t T__Slice) Filter(fn func(T__) bool) T__Slice {
	return seq.Filter(t, fn)
}

// Map calls fn for each element in t and returns a new T__Slice.
func (t T__Slice) Map(fn func(T__) T__) T__Slice {
	return seq.Map(t, fn)
}

// FlatMap concatenates the results of fn for each element in t.
func (t T__Slice) FlatMap(fn func(T__) []T__) T__Slice {
	return seq.FlatMap(t, fn)
}

// GroupBy groups the elements of t by the key returned by fn.
func (t T__Slice) GroupBy(fn func(T__) string) *seq.Groups[string, T__] {
	return seq.GroupBy(t, fn)
}

// JoinToString renders t as a single string.
func (t T__Slice) JoinToString(opts ...seq.JoinOption[T__]) string {
	return seq.JoinToString(t, opts...)
}

// Slice returns the elements of t within r.
func (t T__Slice) Slice(r seq.Range) (T__Slice, error) {
	out, err := seq.Slice(t, r)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Find returns the first element of t for which fn returns true.
func (t T__Slice) Find(fn func(T__) bool) (T__, bool) {
	return seq.Find(t, fn)
}

// All reports whether fn returns true for every element of t.
func (t T__Slice) All(fn func(T__) bool) bool {
	return seq.All(t, fn)
}

// Any reports whether fn returns true for at least one element of t.
func (t T__Slice) Any(fn func(T__) bool) bool {
	return seq.Any(t, fn)
}

// Package seq provides generic helpers for slices and iter.Seq values:
// joining, filtering, flattening, grouping and range slicing.
//
// Every function is pure. Inputs are never modified and results never
// alias the input backing array, so callers may share a slice between
// goroutines as long as nobody writes to it.
//
// Functions passed in by the caller are invoked synchronously. A panic
// raised by one of them propagates unchanged.
package seq

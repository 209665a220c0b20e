// Package template holds the source that seqgen instantiates for each
// marked type. Every identifier containing T__ is rewritten to the
// target type name; T__Slice becomes the generated slice type.
package template

import _ "embed"

// T__ stands in for the target type so the template compiles.
type T__ struct{}

// Source is the contents of slice.go.
//
//go:embed slice.go
var Source []byte

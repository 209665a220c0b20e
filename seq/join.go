package seq

import (
	"fmt"
	"strings"
)

// JoinConfig lists every option understood by JoinToString.
type JoinConfig[T any] struct {
	Separator string
	Prefix    string
	Postfix   string
	Transform func(T) string
}

// DefaultJoinConfig returns a config with separator "," and no prefix or
// postfix. Items are rendered with fmt.Sprint.
func DefaultJoinConfig[T any]() JoinConfig[T] {
	return JoinConfig[T]{
		Separator: ",",
		Transform: func(v T) string { return fmt.Sprint(v) },
	}
}

// JoinOption modifies a JoinConfig.
type JoinOption[T any] func(*JoinConfig[T])

func WithSeparator[T any](sep string) JoinOption[T] {
	return func(c *JoinConfig[T]) { c.Separator = sep }
}

func WithPrefix[T any](prefix string) JoinOption[T] {
	return func(c *JoinConfig[T]) { c.Prefix = prefix }
}

func WithPostfix[T any](postfix string) JoinOption[T] {
	return func(c *JoinConfig[T]) { c.Postfix = postfix }
}

// WithTransform sets the function used to render each item. A nil fn
// keeps the default.
func WithTransform[T any](fn func(T) string) JoinOption[T] {
	return func(c *JoinConfig[T]) {
		if fn != nil {
			c.Transform = fn
		}
	}
}

// JoinToString renders items as prefix, the transformed items separated
// by the separator, then postfix. An empty slice yields prefix+postfix.
func JoinToString[T any](items []T, opts ...JoinOption[T]) string {
	var sb strings.Builder
	JoinTo(&sb, items, opts...)
	return sb.String()
}

// JoinTo is JoinToString writing into sb instead of a new string.
func JoinTo[T any](sb *strings.Builder, items []T, opts ...JoinOption[T]) {
	c := DefaultJoinConfig[T]()
	for _, opt := range opts {
		opt(&c)
	}
	sb.WriteString(c.Prefix)
	for i, v := range items {
		if i > 0 {
			sb.WriteString(c.Separator)
		}
		sb.WriteString(c.Transform(v))
	}
	sb.WriteString(c.Postfix)
}

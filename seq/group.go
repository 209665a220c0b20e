package seq

import (
	"iter"
	"maps"
	"slices"
)

// Groups maps keys to the items that produced them. Keys are kept in the
// order they were first seen in the source.
type Groups[K comparable, T any] struct {
	keys  []K
	items map[K][]T
	count int
}

// GroupBy partitions items by key. Items sharing a key keep their source
// order within the group.
func GroupBy[T any, K comparable](items []T, key func(T) K) *Groups[K, T] {
	g := &Groups[K, T]{items: make(map[K][]T)}
	for _, v := range items {
		k := key(v)
		group, ok := g.items[k]
		if !ok {
			g.keys = append(g.keys, k)
		}
		g.items[k] = append(group, v)
		g.count++
	}
	return g
}

// Keys returns the keys in first-occurrence order.
func (g *Groups[K, T]) Keys() []K {
	return slices.Clone(g.keys)
}

// Get returns the group for k.
func (g *Groups[K, T]) Get(k K) ([]T, bool) {
	group, ok := g.items[k]
	if !ok {
		return nil, false
	}
	return slices.Clone(group), true
}

// Len returns the number of groups.
func (g *Groups[K, T]) Len() int { return len(g.keys) }

// Count returns the number of items across all groups.
func (g *Groups[K, T]) Count() int { return g.count }

// All yields each key with its group, in key order.
func (g *Groups[K, T]) All() iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		for _, k := range g.keys {
			if !yield(k, slices.Clone(g.items[k])) {
				return
			}
		}
	}
}

// Map returns the groups as a plain map. The map has no key order.
func (g *Groups[K, T]) Map() map[K][]T {
	m := maps.Clone(g.items)
	for k, v := range m {
		m[k] = slices.Clone(v)
	}
	return m
}

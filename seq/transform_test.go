package seq

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type book struct {
	Title   string
	Authors []string
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "4", "9"}, Map([]int{1, 2, 3}, func(n int) string { return strconv.Itoa(n * n) }))
	assert.Empty(t, Map([]int(nil), strconv.Itoa))
}

func TestFlatMap(t *testing.T) {
	t.Run("runes", func(t *testing.T) {
		got := FlatMap([]string{"abc", "def"}, func(s string) []rune { return []rune(s) })
		assert.Equal(t, []rune("abcdef"), got)
	})

	t.Run("authors to set", func(t *testing.T) {
		books := []book{
			{Title: "Thursday Next", Authors: []string{"Jasper Fforde"}},
			{Title: "Mort", Authors: []string{"Terry Pratchett"}},
			{Title: "Good Omens", Authors: []string{"Terry Pratchett", "Neil Gaiman"}},
		}
		got := ToSet(FlatMap(books, func(b book) []string { return b.Authors }))
		assert.Equal(t, []string{"Jasper Fforde", "Terry Pratchett", "Neil Gaiman"}, got)
	})

	t.Run("empty mapper results", func(t *testing.T) {
		got := FlatMap([]int{1, 2}, func(int) []int { return nil })
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Flatten([][]int{{1}, {}, {2, 3}}))
}

func TestCopyInto(t *testing.T) {
	target := []int{4}
	CopyInto(&target, []int{1, 2, 3})
	assert.Equal(t, []int{4, 1, 2, 3}, target)

	var empty []string
	CopyInto(&empty, []string{"a"})
	assert.Equal(t, []string{"a"}, empty)
}

func TestWithIndex(t *testing.T) {
	got := WithIndex([]string{"10", "11", "12"})
	assert.Equal(t, []Indexed[string]{{0, "10"}, {1, "11"}, {2, "12"}}, got)
}

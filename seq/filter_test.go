package seq

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

type issue struct {
	ID       string
	Project  string
	Type     string
	Priority string
}

func importantIssue(project string) func(issue) bool {
	return func(i issue) bool {
		return i.Project == project && i.Type == "Bug" &&
			(i.Priority == "Major" || i.Priority == "Critical")
	}
}

func TestFilter(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		got := Filter([]int{5, 2, 8, 1, 4}, func(n int) bool { return n%2 == 0 })
		assert.Equal(t, []int{2, 8, 4}, got)
	})

	t.Run("no match is empty not nil", func(t *testing.T) {
		got := Filter([]int{1, 3}, func(n int) bool { return n > 10 })
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("does not touch input", func(t *testing.T) {
		in := []int{1, 2, 3}
		out := Filter(in, func(int) bool { return true })
		out[0] = 100
		assert.Equal(t, []int{1, 2, 3}, in)
	})

	t.Run("predicate type", func(t *testing.T) {
		issues := []issue{
			{ID: "IDEA-154446", Project: "IDEA", Type: "Bug", Priority: "Major"},
			{ID: "KT-12183", Project: "Kotlin", Type: "Feature", Priority: "Normal"},
		}
		got := Map(Filter(issues, importantIssue("IDEA")), func(i issue) string { return i.ID })
		assert.Equal(t, []string{"IDEA-154446"}, got)
	})
}

func TestFilterNot(t *testing.T) {
	assert.Equal(t, []int{1, 3}, FilterNot([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 }))
}

func TestFilterIsInstance(t *testing.T) {
	items := []any{"one", 2, "three", 4.0, nil}
	assert.Equal(t, []string{"one", "three"}, FilterIsInstance[string](items))
	assert.Equal(t, []int{2}, FilterIsInstance[int](items))
	assert.Empty(t, FilterIsInstance[bool](items))
}

func TestFilterRunes(t *testing.T) {
	assert.Equal(t, "abc", FilterRunes("a1b2c3", unicode.IsLetter))
	assert.Equal(t, "한글", FilterRunes("한-글!", unicode.IsLetter))
	assert.Equal(t, "", FilterRunes("", unicode.IsLetter))
}

func TestFindAllAnyCount(t *testing.T) {
	ages := []int{29, 31, 33}

	v, ok := Find(ages, func(a int) bool { return a <= 31 })
	assert.True(t, ok)
	assert.Equal(t, 29, v)

	_, ok = Find(ages, func(a int) bool { return a > 40 })
	assert.False(t, ok)

	assert.False(t, All(ages, func(a int) bool { return a <= 31 }))
	assert.True(t, All([]int{}, func(int) bool { return false }))
	assert.True(t, Any(ages, func(a int) bool { return a == 33 }))
	assert.False(t, Any([]int{}, func(int) bool { return true }))
	assert.Equal(t, 2, Count(ages, func(a int) bool { return a > 30 }))
}

package seq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type visit struct {
	Path     string
	Duration float64
	OS       string
}

func TestMaxBy(t *testing.T) {
	people := []person{{"Alice", 29}, {"Bob", 31}, {"Carol", 31}}
	p, ok := MaxBy(people, func(p person) int { return p.Age })
	assert.True(t, ok)
	assert.Equal(t, "Bob", p.Name)

	_, ok = MaxBy([]person{}, func(p person) int { return p.Age })
	assert.False(t, ok)
}

func TestMinBy(t *testing.T) {
	p, ok := MinBy([]person{{"Lee", 0}, {"Kim", 29}}, func(p person) string { return p.Name })
	assert.True(t, ok)
	assert.Equal(t, "Kim", p.Name)
}

func TestSumAverage(t *testing.T) {
	assert.Equal(t, 15, Sum([]int{1, 2, 3, 4, 5}))
	assert.InDelta(t, 6.6, Sum([]float64{1.1, 2.2, 3.3}), 1e-9)
	assert.Equal(t, 2.5, Average([]int{1, 2, 3, 4}))
	assert.True(t, math.IsNaN(Average([]int{})))
}

func TestAverageDurationFor(t *testing.T) {
	log := []visit{
		{"/", 30.0, "Windows"},
		{"/", 31.0, "MacOS"},
		{"/", 32.0, "Linux"},
		{"/", 33.0, "Linux"},
		{"/signup", 34.0, "Linux"},
	}
	durations := func(pred func(visit) bool) []float64 {
		return Map(Filter(log, pred), func(v visit) float64 { return v.Duration })
	}

	assert.Equal(t, 33.0, Average(durations(func(v visit) bool { return v.OS == "Linux" })))
	assert.Equal(t, 31.0, Average(durations(func(v visit) bool { return v.OS == "MacOS" })))
	assert.Equal(t, 34.0, Average(durations(func(v visit) bool {
		return v.OS == "Linux" && v.Path == "/signup"
	})))
}

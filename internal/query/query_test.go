package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pobsd/internal/parser"
)

func TestNew_SortsAndCounts(t *testing.T) {
	res := New([]int{3, 1, 2}, func(a, b int) int { return a - b })

	assert.Equal(t, 3, res.Count)
	assert.Equal(t, []int{1, 2, 3}, res.Items)
}

func TestNew_Stable(t *testing.T) {
	games := []parser.Game{
		{Name: "beta", Year: "1"},
		{Name: "Alpha", Year: "2"},
		{Name: "BETA", Year: "3"},
		{Name: "alpha", Year: "4"},
	}

	res := New(games, ByName)

	var years []string
	for _, g := range res.Items {
		years = append(years, g.Year)
	}
	assert.Equal(t, []string{"2", "4", "1", "3"}, years)
	assert.Equal(t, 4, res.Count)
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	in := []string{"c", "a", "b"}
	res := New(in, strings.Compare)

	assert.Equal(t, []string{"c", "a", "b"}, in)
	assert.Equal(t, []string{"a", "b", "c"}, res.Items)
}

func TestNew_Empty(t *testing.T) {
	res := New[int](nil, func(a, b int) int { return a - b })
	assert.Equal(t, 0, res.Count)
	assert.Empty(t, res.Items)
}

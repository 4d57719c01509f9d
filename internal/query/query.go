package query

import (
	"slices"
	"strings"

	"pobsd/internal/parser"
)

// Result is a sorted list of items together with its length.
type Result[T any] struct {
	Count int `json:"count" yaml:"count"`
	Items []T `json:"items" yaml:"items"`
}

// New sorts a copy of items with cmp, keeping equal items in their original order.
func New[T any](items []T, cmp func(a, b T) int) Result[T] {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, cmp)
	return Result[T]{
		Count: len(sorted),
		Items: sorted,
	}
}

// ByName orders games by name, ignoring case.
func ByName(a, b parser.Game) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

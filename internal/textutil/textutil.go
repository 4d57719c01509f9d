package textutil

import (
	"strings"
	"unicode/utf8"
)

// SplitList splits s on sep and returns the trimmed, non-empty items in order.
// An empty sep splits on runs of whitespace.
func SplitList(s, sep string) []string {
	var parts []string
	if sep == "" {
		parts = strings.Fields(s)
	} else {
		parts = strings.Split(s, sep)
	}

	var items []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// ContainsFold reports whether any item equals target, ignoring case.
func ContainsFold(items []string, target string) bool {
	for _, it := range items {
		if strings.EqualFold(it, target) {
			return true
		}
	}
	return false
}

// Truncate shortens a string to maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return string(r[:maxLen]) + "..."
}

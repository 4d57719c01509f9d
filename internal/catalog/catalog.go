// Package catalog provides read-only lookups over a parsed games database.
package catalog

import (
	"strings"

	"pobsd/internal/parser"
	"pobsd/internal/query"
	"pobsd/internal/textutil"
)

// Entry is a game together with its 1-based position in the database.
type Entry struct {
	ID          int `json:"id" yaml:"id"`
	parser.Game `yaml:",inline"`
}

// Facet is a distinct tag or genre and the number of games carrying it.
type Facet struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// Catalog is immutable after New and safe for concurrent readers.
type Catalog struct {
	entries []Entry
}

// New numbers games in input order, starting at 1.
func New(games []parser.Game) *Catalog {
	entries := make([]Entry, len(games))
	for i, g := range games {
		entries[i] = Entry{ID: i + 1, Game: g}
	}
	return &Catalog{entries: entries}
}

func (c *Catalog) Len() int { return len(c.entries) }

// GameByID returns the entry with the given id.
func (c *Catalog) GameByID(id int) (Entry, bool) {
	if id < 1 || id > len(c.entries) {
		return Entry{}, false
	}
	return c.entries[id-1], true
}

// All returns every entry sorted by name.
func (c *Catalog) All() query.Result[Entry] {
	return query.New(c.entries, byName)
}

// GamesByName returns the entries whose name contains s, ignoring case.
func (c *Catalog) GamesByName(s string) query.Result[Entry] {
	needle := strings.ToLower(s)
	return c.filter(func(e Entry) bool {
		return strings.Contains(strings.ToLower(e.Name), needle)
	})
}

func (c *Catalog) GamesByTag(tag string) query.Result[Entry] {
	return c.filter(func(e Entry) bool { return textutil.ContainsFold(e.Tags, tag) })
}

func (c *Catalog) GamesByGenre(genre string) query.Result[Entry] {
	return c.filter(func(e Entry) bool { return textutil.ContainsFold(e.Genres, genre) })
}

func (c *Catalog) GamesByYear(year string) query.Result[Entry] {
	return c.filter(func(e Entry) bool { return strings.EqualFold(e.Year, year) })
}

func (c *Catalog) GamesByEngine(engine string) query.Result[Entry] {
	return c.filter(func(e Entry) bool { return strings.EqualFold(e.Engine, engine) })
}

func (c *Catalog) GamesByStatus(status string) query.Result[Entry] {
	return c.filter(func(e Entry) bool { return strings.EqualFold(e.Status, status) })
}

// Tags returns the distinct tags, sorted, with the number of games using each.
func (c *Catalog) Tags() []Facet {
	return c.facets(func(e Entry) []string { return e.Tags })
}

// Genres returns the distinct genres, sorted, with the number of games using each.
func (c *Catalog) Genres() []Facet {
	return c.facets(func(e Entry) []string { return e.Genres })
}

func (c *Catalog) filter(keep func(Entry) bool) query.Result[Entry] {
	var matched []Entry
	for _, e := range c.entries {
		if keep(e) {
			matched = append(matched, e)
		}
	}
	return query.New(matched, byName)
}

// facets groups values case-insensitively; the first spelling seen wins.
func (c *Catalog) facets(values func(Entry) []string) []Facet {
	index := make(map[string]int)
	var out []Facet
	for _, e := range c.entries {
		seen := make(map[string]bool)
		for _, v := range values(e) {
			key := strings.ToLower(v)
			if seen[key] {
				continue
			}
			seen[key] = true

			if i, ok := index[key]; ok {
				out[i].Count++
				continue
			}
			index[key] = len(out)
			out = append(out, Facet{Value: v, Count: 1})
		}
	}
	return query.New(out, func(a, b Facet) int {
		return strings.Compare(strings.ToLower(a.Value), strings.ToLower(b.Value))
	}).Items
}

func byName(a, b Entry) int {
	return query.ByName(a.Game, b.Game)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pobsd/internal/parser"
)

func sampleCatalog() *Catalog {
	return New([]parser.Game{
		{Name: "Stardew Valley", Engine: "XNA", Genres: []string{"RPG", "Simulation"}, Tags: []string{"farming", "pixel art"}, Year: "2016", Status: "completable"},
		{Name: "Celeste", Engine: "FNA", Genres: []string{"Platformer"}, Tags: []string{"Pixel Art", "difficult"}, Year: "2018", Status: "completable"},
		{Name: "airships", Engine: "FNA", Genres: []string{"Strategy", "rpg"}, Year: "2016", Status: "launches"},
	})
}

func names(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestGameByID(t *testing.T) {
	c := sampleCatalog()
	require.Equal(t, 3, c.Len())

	e, ok := c.GameByID(2)
	require.True(t, ok)
	assert.Equal(t, 2, e.ID)
	assert.Equal(t, "Celeste", e.Name)

	_, ok = c.GameByID(0)
	assert.False(t, ok)
	_, ok = c.GameByID(4)
	assert.False(t, ok)
}

func TestAll_SortedByName(t *testing.T) {
	res := sampleCatalog().All()
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, []string{"airships", "Celeste", "Stardew Valley"}, names(res.Items))
	assert.Equal(t, 3, res.Items[0].ID)
}

func TestLookups(t *testing.T) {
	c := sampleCatalog()

	tests := []struct {
		name string
		got  []Entry
		want []string
	}{
		{name: "by name substring", got: c.GamesByName("VALLEY").Items, want: []string{"Stardew Valley"}},
		{name: "by tag", got: c.GamesByTag("pixel art").Items, want: []string{"Celeste", "Stardew Valley"}},
		{name: "by genre", got: c.GamesByGenre("RPG").Items, want: []string{"airships", "Stardew Valley"}},
		{name: "by year", got: c.GamesByYear("2016").Items, want: []string{"airships", "Stardew Valley"}},
		{name: "by engine", got: c.GamesByEngine("fna").Items, want: []string{"airships", "Celeste"}},
		{name: "by status", got: c.GamesByStatus("launches").Items, want: []string{"airships"}},
		{name: "no match", got: c.GamesByTag("roguelike").Items, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(tt.got))
		})
	}
}

func TestFacets(t *testing.T) {
	c := sampleCatalog()

	assert.Equal(t, []Facet{
		{Value: "difficult", Count: 1},
		{Value: "farming", Count: 1},
		{Value: "pixel art", Count: 2},
	}, c.Tags())

	assert.Equal(t, []Facet{
		{Value: "Platformer", Count: 1},
		{Value: "RPG", Count: 2},
		{Value: "Simulation", Count: 1},
		{Value: "Strategy", Count: 1},
	}, c.Genres())
}

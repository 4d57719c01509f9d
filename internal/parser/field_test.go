package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		line   string
		want   Value
		wantOK bool
	}{
		{name: "scalar", pos: PosName, line: "Game\tFoo Bar", want: Value{Text: "Foo Bar"}, wantOK: true},
		{name: "scalar trimmed", pos: PosYear, line: "Year\t  2011 ", want: Value{Text: "2011"}, wantOK: true},
		{name: "name alias", pos: PosName, line: "Name\tFoo", want: Value{Text: "Foo"}, wantOK: true},
		{name: "publisher alias", pos: PosPublisher, line: "Publisher\tAcme", want: Value{Text: "Acme"}, wantOK: true},
		{name: "empty value", pos: PosEngine, line: "Engine\t", want: Value{}, wantOK: true},
		{name: "marker only", pos: PosEngine, line: "Engine", want: Value{}, wantOK: true},
		{name: "tab inside value", pos: PosSetup, line: "Setup\tstep one\tstep two", want: Value{Text: "step one\tstep two"}, wantOK: true},
		{
			name:   "stores split on whitespace",
			pos:    PosStore,
			line:   "Store\thttps://a.example https://b.example",
			want:   Value{Items: []string{"https://a.example", "https://b.example"}},
			wantOK: true,
		},
		{name: "genres split on comma", pos: PosGenre, line: "Genre\tRPG, Puzzle", want: Value{Items: []string{"RPG", "Puzzle"}}, wantOK: true},
		{name: "tags drop empties", pos: PosTags, line: "Tags\tindie,,  ,retro", want: Value{Items: []string{"indie", "retro"}}, wantOK: true},
		{name: "hints list", pos: PosHints, line: "Hints\tuse -w, disable vsync", want: Value{Items: []string{"use -w", "disable vsync"}}, wantOK: true},
		{name: "wrong field", pos: PosCover, line: "Engine\tFNA", wantOK: false},
		{name: "marker is case sensitive", pos: PosCover, line: "cover\tfoo.png", wantOK: false},
		{name: "marker must match whole", pos: PosGenre, line: "Genres\tRPG", wantOK: false},
		{name: "blank line", pos: PosName, line: "", wantOK: false},
		{name: "error position", pos: PosError, line: "Game\tFoo", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Interpret(tt.pos, tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

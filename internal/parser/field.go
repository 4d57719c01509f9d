package parser

import (
	"strings"

	"pobsd/internal/textutil"
)

// fieldRule describes how a line is recognised and normalised for one position.
type fieldRule struct {
	markers []string
	list    bool
	sep     string // list separator; empty splits on whitespace
}

var fieldRules = [fieldCount]fieldRule{
	PosName:      {markers: []string{"Game", "Name"}},
	PosCover:     {markers: []string{"Cover"}},
	PosEngine:    {markers: []string{"Engine"}},
	PosSetup:     {markers: []string{"Setup"}},
	PosRuntime:   {markers: []string{"Runtime"}},
	PosStore:     {markers: []string{"Store"}, list: true},
	PosHints:     {markers: []string{"Hints"}, list: true, sep: ","},
	PosGenre:     {markers: []string{"Genre"}, list: true, sep: ","},
	PosTags:      {markers: []string{"Tags"}, list: true, sep: ","},
	PosYear:      {markers: []string{"Year"}},
	PosDev:       {markers: []string{"Dev"}},
	PosPublisher: {markers: []string{"Pub", "Publisher"}},
	PosVersion:   {markers: []string{"Version"}},
	PosStatus:    {markers: []string{"Status"}},
	PosAdded:     {markers: []string{"Added"}},
	PosUpdated:   {markers: []string{"Updated"}},
}

// Interpret decides whether line carries the field expected at pos and extracts its value.
// The marker is the text before the first tab; a line without a tab is a marker with an
// empty value. PosError accepts nothing.
func Interpret(pos Position, line string) (Value, bool) {
	if pos < PosName || pos >= PosError {
		return Value{}, false
	}

	marker, rest, _ := strings.Cut(line, "\t")
	marker = strings.TrimSpace(marker)

	rule := fieldRules[pos]
	if !matchesMarker(rule.markers, marker) {
		return Value{}, false
	}

	if rule.list {
		return Value{Items: textutil.SplitList(rest, rule.sep)}, true
	}
	return Value{Text: strings.TrimSpace(rest)}, true
}

func matchesMarker(markers []string, marker string) bool {
	for _, m := range markers {
		if m == marker {
			return true
		}
	}
	return false
}

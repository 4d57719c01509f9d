package parser

import (
	"fmt"
	"strings"
)

// Game is one entry of the PlayOnBSD database.
type Game struct {
	// Name is the title of the game.
	Name string `json:"name" yaml:"name"`
	// Cover is the path of the cover image.
	Cover string `json:"cover,omitempty" yaml:"cover,omitempty"`
	// Engine is the engine the game runs on.
	Engine string `json:"engine,omitempty" yaml:"engine,omitempty"`
	// Setup holds the installation notes.
	Setup string `json:"setup,omitempty" yaml:"setup,omitempty"`
	// Runtime is the runtime used to launch the game.
	Runtime string `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	// Stores are the shop URLs where the game can be bought.
	Stores []string `json:"stores,omitempty" yaml:"stores,omitempty"`
	// Hints are free-form remarks about running the game.
	Hints []string `json:"hints,omitempty" yaml:"hints,omitempty"`
	Genres []string `json:"genres,omitempty" yaml:"genres,omitempty"`
	Tags   []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	// Year is the release year.
	Year      string `json:"year,omitempty" yaml:"year,omitempty"`
	Dev       string `json:"dev,omitempty" yaml:"dev,omitempty"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Version   string `json:"version,omitempty" yaml:"version,omitempty"`
	Status    string `json:"status,omitempty" yaml:"status,omitempty"`
	// Added and Updated are the dates the entry was created and last changed.
	Added   string `json:"added,omitempty" yaml:"added,omitempty"`
	Updated string `json:"updated,omitempty" yaml:"updated,omitempty"`
}

// Mode selects how the parser reacts to a line that does not match the expected field.
type Mode int

const (
	// Relaxed skips rejected lines and keeps parsing.
	Relaxed Mode = iota
	// Strict stops at the first rejected line.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "relaxed"
}

// ParseMode converts "strict" or "relaxed" (any case) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "relaxed", "":
		return Relaxed, nil
	default:
		return Relaxed, fmt.Errorf("unknown parsing mode %q", s)
	}
}

// Result holds the output of a completed parse.
type Result struct {
	// Games are the completed records in input order.
	Games []Game
	// ErrorLines are the 1-based line numbers where a run of rejected lines began.
	// Nil when every consumed line was accepted.
	ErrorLines []int
}

// HasErrors reports whether any line was rejected.
func (r Result) HasErrors() bool {
	return len(r.ErrorLines) > 0
}

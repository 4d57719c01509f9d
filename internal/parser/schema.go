package parser

// Position is the field the parser expects the next line to supply.
type Position int

const (
	PosName Position = iota
	PosCover
	PosEngine
	PosSetup
	PosRuntime
	PosStore
	PosHints
	PosGenre
	PosTags
	PosYear
	PosDev
	PosPublisher
	PosVersion
	PosStatus
	PosAdded
	PosUpdated
	// PosError is entered when a line is rejected. It has no successor.
	PosError
)

// fieldCount is the number of positions in one record cycle.
const fieldCount = int(PosError)

var positionNames = [...]string{
	PosName:      "Game",
	PosCover:     "Cover",
	PosEngine:    "Engine",
	PosSetup:     "Setup",
	PosRuntime:   "Runtime",
	PosStore:     "Store",
	PosHints:     "Hints",
	PosGenre:     "Genre",
	PosTags:      "Tags",
	PosYear:      "Year",
	PosDev:       "Dev",
	PosPublisher: "Pub",
	PosVersion:   "Version",
	PosStatus:    "Status",
	PosAdded:     "Added",
	PosUpdated:   "Updated",
	PosError:     "Error",
}

// String returns the line marker of the field.
func (p Position) String() string {
	if p < PosName || p > PosError {
		return "Unknown"
	}
	return positionNames[p]
}

// Next returns the position following p in the record cycle. Updated wraps to Name.
func (p Position) Next() Position {
	if p < PosName || p >= PosError {
		return PosError
	}
	return Position((int(p) + 1) % fieldCount)
}

// Value is what the field interpreter extracted from one line.
type Value struct {
	Text  string
	Items []string
}

// setter stores an extracted value onto the game under construction.
type setter func(g *Game, v Value)

// transitions is indexed by Position. Entry p stores the value of the field at p;
// the successor is always p.Next().
var transitions = [fieldCount]setter{
	PosName:      func(g *Game, v Value) { g.Name = v.Text },
	PosCover:     func(g *Game, v Value) { g.Cover = v.Text },
	PosEngine:    func(g *Game, v Value) { g.Engine = v.Text },
	PosSetup:     func(g *Game, v Value) { g.Setup = v.Text },
	PosRuntime:   func(g *Game, v Value) { g.Runtime = v.Text },
	PosStore:     func(g *Game, v Value) { g.Stores = v.Items },
	PosHints:     func(g *Game, v Value) { g.Hints = v.Items },
	PosGenre:     func(g *Game, v Value) { g.Genres = v.Items },
	PosTags:      func(g *Game, v Value) { g.Tags = v.Items },
	PosYear:      func(g *Game, v Value) { g.Year = v.Text },
	PosDev:       func(g *Game, v Value) { g.Dev = v.Text },
	PosPublisher: func(g *Game, v Value) { g.Publisher = v.Text },
	PosVersion:   func(g *Game, v Value) { g.Version = v.Text },
	PosStatus:    func(g *Game, v Value) { g.Status = v.Text },
	PosAdded:     func(g *Game, v Value) { g.Added = v.Text },
	PosUpdated:   func(g *Game, v Value) { g.Updated = v.Text },
}

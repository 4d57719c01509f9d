package parser

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// ErrNotAFile is returned when the database path is not a regular file.
	ErrNotAFile = errors.New("not a regular file")
	// ErrIO is returned when the database file cannot be read.
	ErrIO = errors.New("read database file")
)

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for parsing diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// Parser turns the PlayOnBSD text database into games. A Parser consumes exactly one
// input; it is exhausted afterwards.
type Parser struct {
	mode     Mode
	logger   zerolog.Logger
	pos      Position
	current  Game
	games    []Game
	consumed bool
}

// New creates a parser positioned at the start of a record.
func New(mode Mode, opts ...Option) *Parser {
	p := &Parser{
		mode:   mode,
		logger: log.Logger,
		pos:    PosName,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ConsumeFile reads the whole file at path and parses it.
func (p *Parser) ConsumeFile(path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrNotAFile, path, err)
	}
	if !info.Mode().IsRegular() {
		return Result{}, fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	return p.ConsumeString(string(data)), nil
}

// ConsumeString parses every line of text. Line-level problems never produce an error;
// they are reported through Result.ErrorLines.
func (p *Parser) ConsumeString(text string) Result {
	if p.consumed {
		p.logger.Warn().Msg("Parser already consumed its input")
		return Result{}
	}
	p.consumed = true

	var errorLines []int
	erroring := false
	lineNum := 0

	scanner := bufio.NewScanner(strings.NewReader(text))
	// A single line can never exceed the whole input, so Scan cannot fail.
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)

	for scanner.Scan() {
		lineNum++
		expected := p.pos
		p.feed(scanner.Text())

		if p.pos != PosError {
			erroring = false
			continue
		}

		if !erroring {
			errorLines = append(errorLines, lineNum)
			p.logger.Warn().Int("line", lineNum).Str("expected", expected.String()).Msg("Parsing error")
		}
		erroring = true

		if p.mode == Strict {
			break
		}
		// Leave the rejected field at its default and carry on with the next one.
		p.moveTo(expected.Next())
	}

	if p.pos != PosName {
		p.logger.Debug().
			Str("name", p.current.Name).
			Str("next_field", p.pos.String()).
			Msg("Discarding incomplete trailing record")
	}

	return Result{Games: p.games, ErrorLines: errorLines}
}

// feed hands one line to the field interpreter for the current position.
func (p *Parser) feed(line string) {
	v, ok := Interpret(p.pos, line)
	if !ok {
		p.pos = PosError
		return
	}
	transitions[p.pos](&p.current, v)
	p.moveTo(p.pos.Next())
}

// moveTo sets the cursor. Wrapping to Name finalizes the game under construction.
func (p *Parser) moveTo(next Position) {
	if next == PosName {
		p.games = append(p.games, p.current)
		p.current = Game{}
	}
	p.pos = next
}

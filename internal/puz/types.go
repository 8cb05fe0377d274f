package puz

import (
	"fmt"
	"unicode/utf8"
)

type Direction string

const (
	DirectionAcross Direction = "Across"
	DirectionDown   Direction = "Down"
)

type CellKind uint8

const (
	CellLetter CellKind = iota
	CellBlock
)

// Cell is one square of the solution grid.
type Cell struct {
	Kind   CellKind
	Letter rune
}

func (c Cell) IsBlock() bool {
	return c.Kind == CellBlock
}

// String renders a block as "." and a letter as itself.
func (c Cell) String() string {
	if c.IsBlock() {
		return "."
	}
	return string(c.Letter)
}

func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cell) UnmarshalText(b []byte) error {
	if string(b) == "." {
		*c = Cell{Kind: CellBlock}
		return nil
	}
	r, n := utf8.DecodeRune(b)
	if n == 0 || n != len(b) || r == utf8.RuneError {
		return fmt.Errorf("puz: cell %q is not a single letter", b)
	}
	*c = Cell{Kind: CellLetter, Letter: r}
	return nil
}

type Clue struct {
	Number    int       `json:"number"`
	Direction Direction `json:"direction"`
	Text      string    `json:"clue"`
	Answer    string    `json:"answer"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
}

// RebusTable maps rebus squares to their replacement strings. Keys holds one
// entry per cell in row-major order, 0 meaning no rebus. Entries is keyed by
// the table's own key plus one, which is the value the key grid stores.
type RebusTable struct {
	Keys    []int          `json:"keys"`
	Entries map[int]string `json:"entries"`
}

// Puzzle is the decoded content of one container.
type Puzzle struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Copyright string `json:"copyright"`
	Notepad   string `json:"notepad"`
	Clues     []Clue `json:"clues"`

	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Locked         bool   `json:"locked"`
	ManuallySolved bool   `json:"manuallySolved"`
	Version        string `json:"version,omitempty"`
	DeclaredClues  int    `json:"declaredClues"`

	// Row-major, Width*Height long.
	Cells   []Cell      `json:"cells"`
	Numbers []int       `json:"numbers"`
	Circles []bool      `json:"circles,omitempty"`
	Rebus   *RebusTable `json:"rebus,omitempty"`

	// Set when the file carries a RUSR section. Its contents are not read.
	HasUserRebus bool `json:"hasUserRebus,omitempty"`
}

// CellAt returns the cell at row r, column c.
func (p *Puzzle) CellAt(r, c int) Cell {
	return p.Cells[r*p.Width+c]
}

// RebusAt returns the replacement string for the cell at row r, column c.
func (p *Puzzle) RebusAt(r, c int) (string, bool) {
	if p.Rebus == nil {
		return "", false
	}
	return p.Rebus.lookup(r*p.Width + c)
}

// Circled reports whether the cell at row r, column c carries a circle.
func (p *Puzzle) Circled(r, c int) bool {
	return p.Circles != nil && p.Circles[r*p.Width+c]
}

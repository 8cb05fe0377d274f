package puz

import "fmt"

// Decode parses a complete .puz container. No partial result is returned on
// error.
func Decode(data []byte) (*Puzzle, error) {
	h, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}

	g, manual, err := decodeGrid(data, h)
	if err != nil {
		return nil, err
	}
	numbers := g.number()

	// Strings follow both grid regions.
	cur := newCursor(data, offsetGrid+2*h.gridSize())
	var meta [3]string
	for i, field := range []string{"title", "author", "copyright"} {
		if meta[i], err = cur.cstring(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", field, err)
		}
	}

	var clues []Clue
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			n := numbers[g.index(r, c)]
			if n == 0 {
				continue
			}
			if g.startsAcross(r, c) {
				text, err := cur.cstring()
				if err != nil {
					return nil, fmt.Errorf("reading clue %d %s: %w", n, DirectionAcross, err)
				}
				clues = append(clues, Clue{Number: n, Direction: DirectionAcross, Text: text, Row: r, Col: c})
			}
			if g.startsDown(r, c) {
				text, err := cur.cstring()
				if err != nil {
					return nil, fmt.Errorf("reading clue %d %s: %w", n, DirectionDown, err)
				}
				clues = append(clues, Clue{Number: n, Direction: DirectionDown, Text: text, Row: r, Col: c})
			}
		}
	}

	notepad, err := cur.cstring()
	if err != nil {
		return nil, fmt.Errorf("reading notepad: %w", err)
	}

	// Extension sections sit after the strings.
	rebus, err := decodeRebus(data, cur.pos, h.gridSize())
	if err != nil {
		return nil, err
	}
	circles, err := decodeCircles(data, cur.pos, h.gridSize())
	if err != nil {
		return nil, err
	}
	_, userRebus := findMarker(data, MarkerUserRebus, cur.pos, h.gridSize())

	for i := range clues {
		cl := &clues[i]
		if cl.Answer, err = g.answer(cl.Row, cl.Col, cl.Direction, rebus); err != nil {
			return nil, err
		}
	}

	return &Puzzle{
		Title:          meta[0],
		Author:         meta[1],
		Copyright:      meta[2],
		Notepad:        notepad,
		Clues:          clues,
		Width:          h.width,
		Height:         h.height,
		Locked:         h.locked,
		ManuallySolved: manual,
		Version:        h.version,
		DeclaredClues:  h.declaredClues,
		Cells:          g.cells,
		Numbers:        numbers,
		Circles:        circles,
		Rebus:          rebus,
		HasUserRebus:   userRebus,
	}, nil
}

package puz

import "fmt"

const (
	byteBlock       = '.'
	byteBlockSolved = ':'
	byteEmpty       = '-'
)

type grid struct {
	width  int
	height int
	cells  []Cell
}

func (g *grid) index(r, c int) int {
	return r*g.width + c
}

func (g *grid) isBlock(r, c int) bool {
	return g.cells[g.index(r, c)].IsBlock()
}

// decodeGrid reconstructs the solution grid. The container holds the
// published solution followed by the player grid; when the player grid holds
// anything other than empty squares the puzzle was solved by hand and that
// region is read instead. The second return value reports that case.
func decodeGrid(data []byte, h header) (*grid, bool, error) {
	size := h.gridSize()
	primary := offsetGrid
	secondary := offsetGrid + size

	if len(data) < secondary {
		return nil, false, fmt.Errorf("%w: %dx%d grid needs %d bytes from 0x%X, have %d",
			ErrTruncatedGrid, h.width, h.height, size, primary, len(data)-primary)
	}

	start := primary
	manual := false
	if len(data) >= secondary+size {
		i := secondary
		for i < secondary+size && (data[i] == byteBlock || data[i] == byteBlockSolved) {
			i++
		}
		if i < secondary+size && data[i] != byteEmpty {
			manual = true
			start = secondary
		}
	}

	g := &grid{width: h.width, height: h.height, cells: make([]Cell, size)}
	cur := newCursor(data, start)
	raw, _ := cur.take(size)
	for i, b := range raw {
		if b == byteBlock || b == byteBlockSolved {
			g.cells[i] = Cell{Kind: CellBlock}
			continue
		}
		g.cells[i] = Cell{Kind: CellLetter, Letter: latin1Rune(b)}
	}
	return g, manual, nil
}

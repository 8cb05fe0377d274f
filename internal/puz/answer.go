package puz

import (
	"fmt"
	"strings"
)

// answer walks from (r, c) in direction dir until a block or the grid edge,
// substituting rebus strings where the key grid has an entry.
func (g *grid) answer(r, c int, dir Direction, rebus *RebusTable) (string, error) {
	dr, dc := 0, 1
	if dir == DirectionDown {
		dr, dc = 1, 0
	}

	var sb strings.Builder
	for r < g.height && c < g.width && !g.isBlock(r, c) {
		i := g.index(r, c)
		if rebus != nil && rebus.Keys[i] > 0 {
			s, ok := rebus.lookup(i)
			if !ok {
				return "", fmt.Errorf("%w: no entry for key %d at (%d,%d)", ErrMalformedRebusTable, rebus.Keys[i]-1, r, c)
			}
			sb.WriteString(s)
		} else {
			sb.WriteRune(g.cells[i].Letter)
		}
		r += dr
		c += dc
	}
	return sb.String(), nil
}

package puz

func (g *grid) startsAcross(r, c int) bool {
	return (c == 0 || g.isBlock(r, c-1)) && c != g.width-1 && !g.isBlock(r, c+1)
}

func (g *grid) startsDown(r, c int) bool {
	return (r == 0 || g.isBlock(r-1, c)) && r != g.height-1 && !g.isBlock(r+1, c)
}

// number assigns one shared clue number to every open cell that starts an
// across or a down entry, in row-major order. Unnumbered cells hold 0.
func (g *grid) number() []int {
	numbers := make([]int, len(g.cells))
	next := 1
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.isBlock(r, c) {
				continue
			}
			if g.startsAcross(r, c) {
				numbers[g.index(r, c)] = next
				next++
			} else if g.startsDown(r, c) {
				numbers[g.index(r, c)] = next
				next++
			}
		}
	}
	return numbers
}

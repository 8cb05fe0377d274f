package puz

import (
	"testing"
)

func gridFromRows(rows ...string) *grid {
	g := &grid{width: len(rows[0]), height: len(rows)}
	for _, row := range rows {
		for i := 0; i < len(row); i++ {
			if row[i] == '#' {
				g.cells = append(g.cells, Cell{Kind: CellBlock})
			} else {
				g.cells = append(g.cells, Cell{Kind: CellLetter, Letter: rune(row[i])})
			}
		}
	}
	return g
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []int
	}{
		{
			name: "block in the middle",
			rows: []string{"ABC", "D#F", "GHI"},
			// 1 . 2
			// . # .
			// 3 . .
			want: []int{1, 0, 2, 0, 0, 0, 3, 0, 0},
		},
		{
			name: "open grid",
			rows: []string{"ABC", "DEF", "GHI"},
			want: []int{1, 2, 3, 4, 0, 0, 5, 0, 0},
		},
		{
			name: "lonely letters get no number",
			rows: []string{"A#C", "###", "GHI"},
			want: []int{0, 0, 0, 0, 0, 0, 1, 0, 0},
		},
		{
			name: "down-only start",
			rows: []string{"A#", "B#"},
			want: []int{1, 0, 0, 0},
		},
		{
			name: "single column",
			rows: []string{"A", "B", "C"},
			want: []int{1, 0, 0},
		},
		{
			name: "single cell",
			rows: []string{"A"},
			want: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromRows(tt.rows...)
			got := g.number()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d numbers, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("cell (%d,%d): expected %d, got %d", i/g.width, i%g.width, tt.want[i], got[i])
				}
			}
		})
	}
}

// Every numbered cell must start an entry, every start must be numbered, and
// numbers must increase by one in scan order.
func TestNumber_Properties(t *testing.T) {
	g := gridFromRows(
		"ABCD#",
		"E#FGH",
		"IJK#L",
		"#MNOP",
		"QR#ST",
	)
	numbers := g.number()

	last := 0
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			n := numbers[g.index(r, c)]
			starts := !g.isBlock(r, c) && (g.startsAcross(r, c) || g.startsDown(r, c))
			if starts && n == 0 {
				t.Errorf("(%d,%d) starts an entry but has no number", r, c)
			}
			if !starts && n != 0 {
				t.Errorf("(%d,%d) has number %d but starts no entry", r, c, n)
			}
			if n != 0 {
				if n != last+1 {
					t.Errorf("(%d,%d): expected %d, got %d", r, c, last+1, n)
				}
				last = n
			}
		}
	}
}

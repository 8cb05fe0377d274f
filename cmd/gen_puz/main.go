package main

import (
	"log"
	"os"

	"puz_shelf/internal/puz/puztest"
)

func main() {
	sample := puztest.Puzzle{
		Title:     "Sample Title",
		Author:    "Sample Author",
		Copyright: "Sample Copyright",
		Notepad:   "Notes",
		Solution: []string{
			"ABCDE",
			"F.G.H",
			"IJKLM",
			"N.O.P",
			"QRSTU",
		},
		Clues: []string{
			"Start of the alphabet",
			"Left column",
			"Middle column",
			"Right column",
			"Middle row",
			"Bottom row, going up",
		},
		RebusKeys: []byte{
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 1,
		},
		RebusTable: " 0:UP;",
		Circles: []byte{
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
			0, 0, 0x80, 0, 0,
			0, 0, 0, 0, 0,
			0, 0, 0, 0, 0,
		},
	}

	if err := os.WriteFile("internal/app/testdata/sample.puz", sample.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
}

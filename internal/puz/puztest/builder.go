// Package puztest lays out .puz container bytes for tests and fixtures.
package puztest

import (
	"bytes"
	"encoding/binary"
	"strings"
)

// Puzzle describes a container to lay out. Strings are written byte for
// byte, so Latin-1 text should be given as raw bytes ("caf\xe9").
type Puzzle struct {
	Title     string
	Author    string
	Copyright string
	Notepad   string
	Clues     []string

	// Solution rows; '.' marks a block.
	Solution []string
	// Player grid rows. Empty means every open square is unfilled ('-').
	State []string

	Locked bool

	// RebusKeys is the row-major GRBS grid (table key + 1, 0 for none).
	RebusKeys  []byte
	RebusTable string

	// Circles is the row-major GEXT overlay.
	Circles []byte
}

func (p Puzzle) width() int {
	if len(p.Solution) == 0 {
		return 0
	}
	return len(p.Solution[0])
}

// Bytes returns the encoded container.
func (p Puzzle) Bytes() []byte {
	var buf bytes.Buffer
	w, h := p.width(), len(p.Solution)

	buf.Write([]byte{0, 0})             // checksum
	buf.WriteString("ACROSS&DOWN\x00")  // magic
	buf.Write([]byte{0, 0})             // CIB checksum
	buf.Write(make([]byte, 8))          // masked checksums
	buf.WriteString("1.3\x00")          // version
	buf.Write(make([]byte, 2))          // reserved
	buf.Write(make([]byte, 2))          // scrambled checksum
	buf.Write(make([]byte, 12))         // reserved
	buf.Write([]byte{byte(w), byte(h)}) // width, height
	binary.Write(&buf, binary.LittleEndian, uint16(len(p.Clues)))
	buf.Write([]byte{1, 0}) // puzzle type
	if p.Locked {
		buf.Write([]byte{0x04, 0x00})
	} else {
		buf.Write([]byte{0, 0})
	}

	buf.WriteString(strings.Join(p.Solution, ""))
	if len(p.State) > 0 {
		buf.WriteString(strings.Join(p.State, ""))
	} else {
		buf.WriteString(EmptyState(p.Solution))
	}

	for _, s := range []string{p.Title, p.Author, p.Copyright} {
		writeString(&buf, s)
	}
	for _, c := range p.Clues {
		writeString(&buf, c)
	}
	writeString(&buf, p.Notepad)

	if p.RebusKeys != nil {
		writeSection(&buf, "GRBS", p.RebusKeys)
		writeSection(&buf, "RTBL", []byte(p.RebusTable))
	}
	if p.Circles != nil {
		writeSection(&buf, "GEXT", p.Circles)
	}
	return buf.Bytes()
}

// EmptyState returns an unfilled player grid matching solution.
func EmptyState(solution []string) string {
	var sb strings.Builder
	for _, row := range solution {
		for i := 0; i < len(row); i++ {
			if row[i] == '.' {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('-')
			}
		}
	}
	return sb.String()
}

func writeString(buf *bytes.Buffer, s string) {
	buf.WriteString(s)
	buf.WriteByte(0)
}

func writeSection(buf *bytes.Buffer, tag string, data []byte) {
	buf.WriteString(tag)
	binary.Write(buf, binary.LittleEndian, uint16(len(data)))
	binary.Write(buf, binary.LittleEndian, uint16(0)) // checksum
	buf.Write(data)
	buf.WriteByte(0)
}

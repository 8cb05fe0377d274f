package puz

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// cursor reads forward through the container from an explicit position.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte, pos int) *cursor {
	return &cursor{data: data, pos: pos}
}

// take returns the next n bytes and advances past them.
func (c *cursor) take(n int) ([]byte, bool) {
	if n < 0 || c.pos < 0 || c.pos+n > len(c.data) {
		return nil, false
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, true
}

func (c *cursor) skip(n int) {
	c.pos += n
}

// cstring reads a NUL-terminated Latin-1 string and leaves the cursor on the
// byte after the terminator.
func (c *cursor) cstring() (string, error) {
	if c.pos < 0 || c.pos >= len(c.data) {
		return "", fmt.Errorf("%w: string starts at 0x%X past end of buffer (%d bytes)", ErrTruncatedStringTable, c.pos, len(c.data))
	}
	end := bytes.IndexByte(c.data[c.pos:], 0)
	if end < 0 {
		return "", fmt.Errorf("%w: no terminator after 0x%X", ErrTruncatedStringTable, c.pos)
	}
	s := latin1(c.data[c.pos : c.pos+end])
	c.pos += end + 1
	return s, nil
}

func latin1(b []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// every byte is defined in ISO-8859-1
		return string(b)
	}
	return string(decoded)
}

func latin1Rune(b byte) rune {
	return charmap.ISO8859_1.DecodeByte(b)
}

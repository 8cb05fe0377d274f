package puz

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	offsetMagic     = 0x02
	offsetVersion   = 0x18
	offsetColumns   = 0x2C
	offsetRows      = 0x2D
	offsetClueCount = 0x2E
	offsetLock      = 0x32
	offsetGrid      = 0x34
)

var magic = []byte("ACROSS&DOWN\x00")

// HasMagic reports whether data carries the Across Lite file magic. Decode
// does not require it; it is only useful for sniffing the format.
func HasMagic(data []byte) bool {
	return len(data) >= offsetMagic+len(magic) && bytes.Equal(data[offsetMagic:offsetMagic+len(magic)], magic)
}

type header struct {
	width         int
	height        int
	locked        bool
	version       string
	declaredClues int
}

func (h header) gridSize() int {
	return h.width * h.height
}

func decodeHeader(data []byte) (header, error) {
	if len(data) < offsetGrid {
		return header{}, fmt.Errorf("%w: need %d bytes, have %d", ErrMalformedHeader, offsetGrid, len(data))
	}

	version := data[offsetVersion : offsetVersion+4]
	if i := bytes.IndexByte(version, 0); i >= 0 {
		version = version[:i]
	}

	return header{
		width:         int(data[offsetColumns]),
		height:        int(data[offsetRows]),
		locked:        data[offsetLock] != 0 || data[offsetLock+1] != 0,
		version:       latin1(version),
		declaredClues: int(binary.LittleEndian.Uint16(data[offsetClueCount:])),
	}, nil
}

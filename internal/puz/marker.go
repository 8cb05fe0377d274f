package puz

import "bytes"

// Marker is the 4-byte tag that introduces an extension section.
type Marker [4]byte

var (
	MarkerCircles   = Marker{'G', 'E', 'X', 'T'}
	MarkerRebus     = Marker{'G', 'R', 'B', 'S'}
	MarkerUserRebus = Marker{'R', 'U', 'S', 'R'} // presence only, see Puzzle.HasUserRebus
)

// markerHeaderLen covers the tag, the section length and its checksum.
const markerHeaderLen = 8

// findMarker scans forward from start for marker, leaving a trailing
// grid-sized region out of the scan range. It returns the offset of the
// payload that follows the section header.
func findMarker(data []byte, m Marker, start, gridSize int) (int, bool) {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(data)-gridSize; i++ {
		if i+len(m) > len(data) {
			break
		}
		if bytes.Equal(data[i:i+len(m)], m[:]) {
			return i + markerHeaderLen, true
		}
	}
	return 0, false
}

func (m Marker) String() string {
	return string(m[:])
}

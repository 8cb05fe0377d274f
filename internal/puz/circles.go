package puz

import "fmt"

const (
	circleByte            = 0x80
	circleDiagramlessByte = 0xC0
)

// decodeCircles reads the GEXT overlay. It returns nil when the section is
// missing or flags no circled square.
func decodeCircles(data []byte, start int, size int) ([]bool, error) {
	payload, ok := findMarker(data, MarkerCircles, start, size)
	if !ok {
		return nil, nil
	}

	raw, ok := newCursor(data, payload).take(size)
	if !ok {
		return nil, fmt.Errorf("%w: %s overlay at 0x%X", ErrTruncatedExtension, MarkerCircles, payload)
	}

	circles := make([]bool, size)
	found := false
	for i, b := range raw {
		if b == circleByte || b == circleDiagramlessByte {
			circles[i] = true
			found = true
		}
	}
	if !found {
		return nil, nil
	}
	return circles, nil
}

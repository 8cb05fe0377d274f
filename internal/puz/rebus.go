package puz

import (
	"fmt"
	"strconv"
	"strings"
)

// rebusTableSkip separates the end of the key grid from the substring table:
// the key grid's terminator plus the RTBL section header.
const rebusTableSkip = 1 + markerHeaderLen

func (t *RebusTable) lookup(i int) (string, bool) {
	if t == nil || i < 0 || i >= len(t.Keys) || t.Keys[i] == 0 {
		return "", false
	}
	s, ok := t.Entries[t.Keys[i]]
	return s, ok
}

// decodeRebus returns nil when there is no GRBS section or when its key grid
// is all zero.
func decodeRebus(data []byte, start int, size int) (*RebusTable, error) {
	payload, ok := findMarker(data, MarkerRebus, start, size)
	if !ok {
		return nil, nil
	}

	cur := newCursor(data, payload)
	raw, ok := cur.take(size)
	if !ok {
		return nil, fmt.Errorf("%w: %s key grid at 0x%X", ErrTruncatedExtension, MarkerRebus, payload)
	}

	keys := make([]int, size)
	found := false
	for i, b := range raw {
		keys[i] = int(b)
		if b > 0 {
			found = true
		}
	}
	if !found {
		return nil, nil
	}

	cur.skip(rebusTableSkip)
	table, err := cur.cstring()
	if err != nil {
		return nil, fmt.Errorf("reading rebus table: %w", err)
	}

	entries, err := parseRebusTable(table)
	if err != nil {
		return nil, err
	}

	for i, k := range keys {
		if k == 0 {
			continue
		}
		if _, ok := entries[k]; !ok {
			return nil, fmt.Errorf("%w: cell %d references key %d with no entry", ErrMalformedRebusTable, i, k-1)
		}
	}

	return &RebusTable{Keys: keys, Entries: entries}, nil
}

// parseRebusTable parses "key:text;" segments such as " 0:HEART; 1:AT;".
// Entries are stored under key+1.
func parseRebusTable(s string) (map[int]string, error) {
	entries := make(map[int]string)
	for _, seg := range strings.Split(s, ";") {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		k, text, ok := strings.Cut(seg, ":")
		if !ok {
			return nil, fmt.Errorf("%w: segment %q has no ':'", ErrMalformedRebusTable, seg)
		}
		n, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad key %q", ErrMalformedRebusTable, k)
		}
		entries[n+1] = text
	}
	return entries, nil
}

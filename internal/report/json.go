package report

import (
	"encoding/json"
	"io"
)

// JSONWriter writes a single puzzle as an object and several as an array of
// {path, puzzle} pairs.
type JSONWriter struct {
	output io.Writer
	pretty bool
}

func (w *JSONWriter) Write(results []Result) error {
	enc := json.NewEncoder(w.output)
	if w.pretty {
		enc.SetIndent("", "  ")
	}
	if len(results) == 1 {
		return enc.Encode(results[0].Puzzle)
	}
	return enc.Encode(results)
}

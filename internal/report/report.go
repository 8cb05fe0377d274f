// Package report renders decoded puzzles for the command line.
package report

import (
	"fmt"
	"io"

	"puz_shelf/internal/puz"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Result is one decoded file.
type Result struct {
	Path   string      `json:"path"`
	Puzzle *puz.Puzzle `json:"puzzle"`
}

type Writer interface {
	Write(results []Result) error
}

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatMarkdown:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want json or markdown)", s)
}

func NewWriter(format Format, out io.Writer, pretty bool) (Writer, error) {
	switch format {
	case FormatJSON:
		return &JSONWriter{output: out, pretty: pretty}, nil
	case FormatMarkdown:
		return &MarkdownWriter{output: out}, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

package report

import (
	"io"
	"strconv"
	"strings"

	"puz_shelf/internal/puz"

	"github.com/nao1215/markdown"
)

type MarkdownWriter struct {
	output io.Writer
}

func (w *MarkdownWriter) Write(results []Result) error {
	md := markdown.NewMarkdown(w.output)
	for _, r := range results {
		writePuzzle(md, r)
	}
	return md.Build()
}

func writePuzzle(md *markdown.Markdown, r Result) {
	p := r.Puzzle
	title := p.Title
	if title == "" {
		title = r.Path
	}

	md.H1(title)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"File", "`" + cellText(r.Path) + "`"},
			{"Author", cellText(p.Author)},
			{"Copyright", cellText(p.Copyright)},
			{"Size", strconv.Itoa(p.Width) + "x" + strconv.Itoa(p.Height)},
			{"Locked", strconv.FormatBool(p.Locked)},
			{"Rebus", strconv.FormatBool(p.Rebus != nil)},
		},
	})
	md.PlainText("")

	md.H2("Grid")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlight("text"), gridText(p))
	md.PlainText("")

	for _, dir := range []puz.Direction{puz.DirectionAcross, puz.DirectionDown} {
		md.H2(string(dir))
		md.PlainText("")
		var rows [][]string
		for _, c := range p.Clues {
			if c.Direction == dir {
				rows = append(rows, []string{strconv.Itoa(c.Number), cellText(c.Text), cellText(c.Answer)})
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"#", "Clue", "Answer"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if p.Notepad != "" {
		md.H2("Notepad")
		md.PlainText("")
		md.PlainText(p.Notepad)
		md.PlainText("")
	}
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// cellText keeps free text inside a single table cell.
func cellText(s string) string {
	return cellReplacer.Replace(s)
}

// gridText draws the solution with circled squares in lower case.
func gridText(p *puz.Puzzle) string {
	var sb strings.Builder
	for r := 0; r < p.Height; r++ {
		for c := 0; c < p.Width; c++ {
			s := p.CellAt(r, c).String()
			if p.Circled(r, c) {
				s = strings.ToLower(s)
			}
			sb.WriteString(s)
		}
		if r < p.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"puz_shelf/internal/db"
)

var ErrNotFound = errors.New("puzzle not found")

type CellView struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Char    string `json:"char"`
	IsBlock bool   `json:"isBlock"`
	Circled bool   `json:"circled,omitempty"`
	Rebus   string `json:"rebus,omitempty"`
	Number  int    `json:"number,omitempty"`
}

type ClueView struct {
	Number    int    `json:"number"`
	Direction string `json:"direction"`
	Text      string `json:"clue"`
	Answer    string `json:"answer"`
}

// PuzzleView is a stored puzzle with its grid and clues.
type PuzzleView struct {
	ID             string     `json:"id"`
	Filename       string     `json:"filename"`
	Title          string     `json:"title"`
	Author         string     `json:"author"`
	Copyright      string     `json:"copyright"`
	Notepad        string     `json:"notepad"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	Locked         bool       `json:"locked"`
	ManuallySolved bool       `json:"manuallySolved"`
	CreatedAt      time.Time  `json:"createdAt"`
	Grid           []string   `json:"grid"`
	Cells          []CellView `json:"cells"`
	Clues          []ClueView `json:"clues"`
}

func (s *Service) GetPuzzle(ctx context.Context, id string) (*PuzzleView, error) {
	s.cacheMu.Lock()
	v, ok := s.cache.Get(id)
	s.cacheMu.Unlock()
	if ok {
		return v, nil
	}

	p, err := s.Queries.GetPuzzle(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	cells, err := s.Queries.GetCells(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading cells: %w", err)
	}
	clues, err := s.Queries.GetClues(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading clues: %w", err)
	}

	v = buildView(&p, cells, clues)

	s.cacheMu.Lock()
	s.cache.Add(id, v)
	s.cacheMu.Unlock()

	return v, nil
}

func buildView(p *db.Puzzle, cells []db.Cell, clues []db.Clue) *PuzzleView {
	v := &PuzzleView{
		ID:             p.ID,
		Filename:       p.Filename,
		Title:          p.Title,
		Author:         p.Author,
		Copyright:      p.Copyright,
		Notepad:        p.Notepad,
		Width:          int(p.Width),
		Height:         int(p.Height),
		Locked:         p.Locked,
		ManuallySolved: p.ManuallySolved,
		CreatedAt:      p.CreatedAt,
		Cells:          make([]CellView, 0, len(cells)),
		Clues:          make([]ClueView, 0, len(clues)),
	}

	rows := make([]strings.Builder, v.Height)
	for _, c := range cells {
		v.Cells = append(v.Cells, CellView{
			X:       int(c.X),
			Y:       int(c.Y),
			Char:    c.Solution,
			IsBlock: c.IsBlock,
			Circled: c.IsCircled,
			Rebus:   c.Rebus,
			Number:  int(c.Number),
		})
		if int(c.Y) >= len(rows) {
			continue
		}
		if c.IsBlock {
			rows[c.Y].WriteByte('.')
		} else {
			rows[c.Y].WriteString(c.Solution)
		}
	}
	for i := range rows {
		v.Grid = append(v.Grid, rows[i].String())
	}

	for _, c := range clues {
		v.Clues = append(v.Clues, ClueView{
			Number:    int(c.Number),
			Direction: c.Direction,
			Text:      c.Text,
			Answer:    c.Answer,
		})
	}
	return v
}

func (s *Service) ListPuzzles(ctx context.Context, limit, offset int) ([]db.Puzzle, error) {
	return s.Queries.ListPuzzles(ctx, db.ListPuzzlesParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
}

func (s *Service) CountPuzzles(ctx context.Context) (int64, error) {
	return s.Queries.CountPuzzles(ctx)
}

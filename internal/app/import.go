package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"puz_shelf/internal/db"
	"puz_shelf/internal/puz"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrHashConflict      = errors.New("content hash matches a different puzzle")
)

func ParsePuzzleFile(filename string, data []byte) (*puz.Puzzle, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".puz" {
		return puz.Decode(data)
	}

	// Fallback check magic bytes for .puz
	if puz.HasMagic(data) {
		return puz.Decode(data)
	}

	return nil, ErrUnsupportedFormat
}

// ContentHash identifies an upload by its bytes.
func ContentHash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// maxFilenameLen bounds stored filenames, in bytes.
const maxFilenameLen = 100

func normalizeFilename(name string) string {
	name = strings.Join(strings.Fields(filepath.Base(name)), " ")
	if name == "." || name == string(filepath.Separator) {
		name = ""
	}
	if len(name) > maxFilenameLen {
		cut := maxFilenameLen
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	if name == "" {
		name = fmt.Sprintf("upload_%v.puz", time.Now().UTC().Round(0).Unix())
	}
	return name
}

// samePuzzle guards hash-based dedupe against xxhash collisions.
func samePuzzle(stored *db.Puzzle, p *puz.Puzzle) bool {
	return stored.Width == int64(p.Width) &&
		stored.Height == int64(p.Height) &&
		stored.Title == p.Title &&
		stored.Author == p.Author
}

// ImportPuzzle decodes data and stores it. When the same bytes were imported
// before, the existing puzzle is returned and created is false.
func (s *Service) ImportPuzzle(ctx context.Context, filename string, data []byte) (p *db.Puzzle, created bool, err error) {
	parsed, err := ParsePuzzleFile(filename, data)
	if err != nil {
		return nil, false, err
	}
	hash := ContentHash(data)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()
	qtx := s.Queries.WithTx(tx)

	existing, err := qtx.GetPuzzleByHash(ctx, hash)
	if err == nil {
		if !samePuzzle(&existing, parsed) {
			return nil, false, fmt.Errorf("%w: %s", ErrHashConflict, existing.ID)
		}
		return &existing, false, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	stored, err := qtx.CreatePuzzle(ctx, db.CreatePuzzleParams{
		ID:             uuid.NewString(),
		ContentHash:    hash,
		Filename:       normalizeFilename(filename),
		Title:          parsed.Title,
		Author:         parsed.Author,
		Copyright:      parsed.Copyright,
		Notepad:        parsed.Notepad,
		Width:          int64(parsed.Width),
		Height:         int64(parsed.Height),
		Locked:         parsed.Locked,
		ManuallySolved: parsed.ManuallySolved,
		CreatedAt:      time.Now().UTC().Round(0),
	})
	if err != nil {
		return nil, false, fmt.Errorf("creating puzzle: %w", err)
	}

	for y := 0; y < parsed.Height; y++ {
		for x := 0; x < parsed.Width; x++ {
			cell := parsed.CellAt(y, x)
			solution := ""
			if !cell.IsBlock() {
				solution = string(cell.Letter)
			}
			rebus, _ := parsed.RebusAt(y, x)

			err := qtx.InsertCell(ctx, db.InsertCellParams{
				PuzzleID:  stored.ID,
				X:         int64(x),
				Y:         int64(y),
				Solution:  solution,
				IsBlock:   cell.IsBlock(),
				IsCircled: parsed.Circled(y, x),
				Rebus:     rebus,
				Number:    int64(parsed.Numbers[y*parsed.Width+x]),
			})
			if err != nil {
				return nil, false, fmt.Errorf("storing cell (%d,%d): %w", x, y, err)
			}
		}
	}

	for i, c := range parsed.Clues {
		err := qtx.InsertClue(ctx, db.InsertClueParams{
			PuzzleID:  stored.ID,
			Position:  int64(i),
			Number:    int64(c.Number),
			Direction: string(c.Direction),
			Text:      c.Text,
			Answer:    c.Answer,
		})
		if err != nil {
			return nil, false, fmt.Errorf("storing clue %d %s: %w", c.Number, c.Direction, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}

	s.BroadcastImport(&stored)
	return &stored, true, nil
}

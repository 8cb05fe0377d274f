package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"puz_shelf/sql/schema"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// every pooled connection would get its own in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatal(err)
	}

	goose.SetBaseFS(schema.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatal(err)
	}
	if err := goose.Up(db, "."); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestCreatePuzzle(t *testing.T) {
	q := New(openTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC().Round(0)

	p, err := q.CreatePuzzle(ctx, CreatePuzzleParams{
		ID:          "puzzle-1",
		ContentHash: "00ff",
		Filename:    "sample.puz",
		Title:       "Sample",
		Author:      "alice",
		Width:       5,
		Height:      5,
		Locked:      true,
		CreatedAt:   now,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p.ID != "puzzle-1" {
		t.Errorf("expected id puzzle-1, got: %v", p.ID)
	}
	if !p.Locked {
		t.Errorf("expected locked puzzle")
	}
	if !p.CreatedAt.Equal(now) {
		t.Errorf("expected timestamp of createdAt to match %v, got: %v", now, p.CreatedAt)
	}

	byHash, err := q.GetPuzzleByHash(ctx, "00ff")
	if err != nil {
		t.Fatal(err)
	}
	if byHash.ID != p.ID {
		t.Errorf("expected %s by hash, got %s", p.ID, byHash.ID)
	}

	_, err = q.CreatePuzzle(ctx, CreatePuzzleParams{ID: "puzzle-2", ContentHash: "00ff", CreatedAt: now})
	if err == nil {
		t.Error("expected unique constraint on content hash")
	}
}

func TestCellsAndClues(t *testing.T) {
	q := New(openTestDB(t))
	ctx := context.Background()

	if _, err := q.CreatePuzzle(ctx, CreatePuzzleParams{ID: "p", ContentHash: "h", Width: 2, Height: 1, CreatedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}

	for x, ch := range []string{"A", "B"} {
		err := q.InsertCell(ctx, InsertCellParams{PuzzleID: "p", X: int64(x), Y: 0, Solution: ch, Number: int64(1 - x)})
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := q.InsertClue(ctx, InsertClueParams{PuzzleID: "p", Position: 0, Number: 1, Direction: "Across", Text: "letters", Answer: "AB"}); err != nil {
		t.Fatal(err)
	}

	cells, err := q.GetCells(ctx, "p")
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 2 || cells[0].Solution != "A" || cells[0].Number != 1 {
		t.Errorf("unexpected cells: %+v", cells)
	}

	clues, err := q.GetClues(ctx, "p")
	if err != nil {
		t.Fatal(err)
	}
	if len(clues) != 1 || clues[0].Answer != "AB" {
		t.Errorf("unexpected clues: %+v", clues)
	}

	if err := q.DeletePuzzle(ctx, "p"); err != nil {
		t.Fatal(err)
	}
	if _, err := q.GetPuzzle(ctx, "p"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}
	cells, _ = q.GetCells(ctx, "p")
	if len(cells) != 0 {
		t.Errorf("expected cells to cascade, got %d", len(cells))
	}
}

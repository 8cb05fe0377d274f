package app

import (
	"context"
	"os"
	"testing"
	"time"

	"puz_shelf/internal/db"
	"puz_shelf/internal/puz"
	"puz_shelf/internal/puz/puztest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportPuzzle(t *testing.T) {
	svc, queries, _ := SetupTestService(t)
	ctx := context.Background()

	data, err := os.ReadFile("testdata/sample.puz")
	require.NoError(t, err)

	var id string

	t.Run("Import .puz", func(t *testing.T) {
		p, created, err := svc.ImportPuzzle(ctx, "sample.puz", data)
		require.NoError(t, err)
		assert.True(t, created)
		id = p.ID

		assert.Equal(t, "Sample Title", p.Title)
		assert.Equal(t, "Sample Author", p.Author)
		assert.Equal(t, int64(5), p.Width)
		assert.Equal(t, int64(5), p.Height)
		assert.Equal(t, ContentHash(data), p.ContentHash)

		cells, err := queries.GetCells(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, 25, len(cells))
		assert.Equal(t, "A", cells[0].Solution)
		assert.Equal(t, int64(1), cells[0].Number)
		assert.True(t, cells[6].IsBlock)
		assert.True(t, cells[12].IsCircled)
		assert.Equal(t, "UP", cells[24].Rebus)

		clues, err := queries.GetClues(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, clues, 6)
		assert.Equal(t, "Start of the alphabet", clues[0].Text)
		assert.Equal(t, "ABCDE", clues[0].Answer)
		assert.Equal(t, "EHMPUP", clues[3].Answer)
		assert.Equal(t, "QRSTUP", clues[5].Answer)
	})

	t.Run("duplicate upload returns the stored puzzle", func(t *testing.T) {
		p, created, err := svc.ImportPuzzle(ctx, "renamed.puz", data)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, id, p.ID)
		assert.Equal(t, "sample.puz", p.Filename)

		n, err := svc.CountPuzzles(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("malformed upload stores nothing", func(t *testing.T) {
		_, _, err := svc.ImportPuzzle(ctx, "broken.puz", data[:0x40])
		assert.ErrorIs(t, err, puz.ErrTruncatedGrid)

		n, err := svc.CountPuzzles(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, _, err := svc.ImportPuzzle(ctx, "puzzle.ipuz", []byte(`{"version":"http://ipuz.org/v2"}`))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestImportPuzzle_PublishesEvent(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	ctx := context.Background()

	events := make(chan ImportEvent, 1)
	unsubscribe, err := svc.SubscribeImports(func(ev ImportEvent) {
		events <- ev
	})
	require.NoError(t, err)
	defer unsubscribe()

	data := puztest.Puzzle{
		Title:    "Event",
		Author:   "bob",
		Solution: []string{"AB", "CD"},
		Clues:    []string{"1a", "1d", "2d", "3a"},
	}.Bytes()

	p, created, err := svc.ImportPuzzle(ctx, "event.puz", data)
	require.NoError(t, err)
	require.True(t, created)

	select {
	case ev := <-events:
		assert.Equal(t, ImportEvent{ID: p.ID, Title: "Event", Author: "bob"}, ev)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for import event")
	}
}

func TestImportPuzzle_HashConflict(t *testing.T) {
	svc, queries, _ := SetupTestService(t)
	ctx := context.Background()

	data := puztest.Puzzle{
		Title:    "Real",
		Author:   "alice",
		Solution: []string{"AB", "CD"},
		Clues:    []string{"1a", "1d", "2d", "3a"},
	}.Bytes()

	// a different puzzle already stored under the same hash
	_, err := queries.CreatePuzzle(ctx, db.CreatePuzzleParams{
		ID:          "other",
		ContentHash: ContentHash(data),
		Filename:    "other.puz",
		Title:       "Other",
		Width:       2,
		Height:      2,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)

	_, created, err := svc.ImportPuzzle(ctx, "real.puz", data)
	assert.ErrorIs(t, err, ErrHashConflict)
	assert.False(t, created)

	n, err := svc.CountPuzzles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

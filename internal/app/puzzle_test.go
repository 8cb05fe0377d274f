package app

import (
	"context"
	"fmt"
	"testing"

	"puz_shelf/internal/puz/puztest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPuzzle(t *testing.T) {
	svc, queries, _ := SetupTestService(t)
	ctx := context.Background()

	data := puztest.Puzzle{
		Title:     "View",
		Copyright: "(c) nobody",
		Notepad:   "hello",
		Solution:  []string{"AB.", "CDE"},
		Clues:     []string{"1a", "1d", "2d", "3a"},
	}.Bytes()
	p, _, err := svc.ImportPuzzle(ctx, "view.puz", data)
	require.NoError(t, err)

	v, err := svc.GetPuzzle(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "View", v.Title)
	assert.Equal(t, "hello", v.Notepad)
	assert.Equal(t, []string{"AB.", "CDE"}, v.Grid)
	require.Len(t, v.Cells, 6)
	assert.True(t, v.Cells[2].IsBlock)
	assert.Equal(t, 1, v.Cells[0].Number)

	want := []ClueView{
		{Number: 1, Direction: "Across", Text: "1a", Answer: "AB"},
		{Number: 1, Direction: "Down", Text: "1d", Answer: "AC"},
		{Number: 2, Direction: "Down", Text: "2d", Answer: "BD"},
		{Number: 3, Direction: "Across", Text: "3a", Answer: "CDE"},
	}
	assert.Equal(t, want, v.Clues)

	t.Run("served from cache", func(t *testing.T) {
		require.NoError(t, queries.DeletePuzzle(ctx, p.ID))

		cached, err := svc.GetPuzzle(ctx, p.ID)
		require.NoError(t, err)
		assert.Same(t, v, cached)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetPuzzle(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListPuzzles(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		data := puztest.Puzzle{
			Title:    fmt.Sprintf("Puzzle %d", i),
			Solution: []string{"AB", "CD"},
			Clues:    []string{"1a", "1d", "2d", "3a"},
		}.Bytes()
		_, created, err := svc.ImportPuzzle(ctx, "p.puz", data)
		require.NoError(t, err)
		require.True(t, created)
	}

	page1, err := svc.ListPuzzles(ctx, 3, 0)
	require.NoError(t, err)
	assert.Len(t, page1, 3)

	page2, err := svc.ListPuzzles(ctx, 3, 3)
	require.NoError(t, err)
	assert.Len(t, page2, 1)

	seen := map[string]bool{}
	for _, p := range append(page1, page2...) {
		seen[p.ID] = true
	}
	assert.Len(t, seen, 4)
}

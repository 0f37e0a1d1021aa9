package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JustBeyond/packedbubble/pkg/chart"
)

func floatPtr(v float64) *float64 { return &v }

func testChart(title string) *Chart {
	return NewChart(title,
		chart.Dataset{
			Title: title,
			Series: []chart.Series{
				{ID: "fruit", Points: []chart.Point{{Name: "Apples", Value: floatPtr(5)}}},
			},
		},
		chart.Layout{
			Title: title, Width: 400, Height: 400,
			Bubbles: []chart.Bubble{
				{SeriesID: "fruit", Index: 0, Label: "Apples", Value: 5, X: 200, Y: 200, R: 100},
			},
			Converged: true, Iterations: 2,
		})
}

func TestNewChart(t *testing.T) {
	c := testChart("Fruit")

	require.NotEmpty(t, c.ID, "NewChart should assign an ID")
	require.Len(t, c.ID, 36, "IDs should be canonical UUID strings")
	require.Equal(t, "Fruit", c.Title)
	require.False(t, c.CreatedAt.IsZero(), "CreatedAt should be set")
	require.Equal(t, c.CreatedAt, c.UpdatedAt, "a fresh chart has matching timestamps")

	other := testChart("Fruit")
	require.NotEqual(t, c.ID, other.ID, "every chart gets its own ID")
}

func TestMemoryStoreSaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	c := testChart("Fruit")
	require.NoError(t, s.SaveChart(ctx, c))

	got, err := s.GetChart(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, got.ID)
	require.Equal(t, "Fruit", got.Title)
	require.Len(t, got.Layout.Bubbles, 1, "layout should round-trip")
	require.Equal(t, 100.0, got.Layout.Bubbles[0].R)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetChart(ctx, "no-such-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	c := testChart("Fruit")
	require.NoError(t, s.SaveChart(ctx, c))
	created := c.UpdatedAt

	c.Title = "Fruit v2"
	require.NoError(t, s.SaveChart(ctx, c))

	got, err := s.GetChart(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Fruit v2", got.Title, "save should replace the stored chart")
	require.False(t, got.UpdatedAt.Before(created), "UpdatedAt should be refreshed on save")

	all, err := s.ListCharts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1, "replacing must not duplicate the chart")
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	c := testChart("Fruit")
	require.NoError(t, s.SaveChart(ctx, c))

	got, err := s.GetChart(ctx, c.ID)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := s.GetChart(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Fruit", again.Title, "callers must not be able to mutate stored charts")
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	oldest := testChart("oldest")
	oldest.CreatedAt = time.Now().UTC().Add(-2 * time.Hour)
	middle := testChart("middle")
	middle.CreatedAt = time.Now().UTC().Add(-1 * time.Hour)
	newest := testChart("newest")

	for _, c := range []*Chart{oldest, newest, middle} {
		require.NoError(t, s.SaveChart(ctx, c))
	}

	all, err := s.ListCharts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "newest", all[0].Title, "lists are newest-first")
	require.Equal(t, "middle", all[1].Title)
	require.Equal(t, "oldest", all[2].Title)

	limited, err := s.ListCharts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2, "limit should cap the result")
	require.Equal(t, "newest", limited[0].Title)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	c := testChart("Fruit")
	require.NoError(t, s.SaveChart(ctx, c))
	require.NoError(t, s.DeleteChart(ctx, c.ID))

	_, err := s.GetChart(ctx, c.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, s.DeleteChart(ctx, c.ID), ErrNotFound, "deleting twice should report not found")
}

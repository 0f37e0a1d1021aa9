// Package store persists charts for the HTTP API.
//
// A stored chart bundles the input dataset with its computed layout so the
// API can re-render any format without re-packing. The Store interface has
// two implementations:
//   - memory: in-process storage for development and tests
//   - mongo: MongoDB-backed storage for deployments
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// Deployment
//	st, err := store.NewMongoStore(ctx, store.MongoOptions{
//	    URI: "mongodb://localhost:27017",
//	})
//
// Persist and retrieve:
//
//	c := store.NewChart("Fruit", dataset, layout)
//	if err := st.SaveChart(ctx, c); err != nil {
//	    return err
//	}
//	got, err := st.GetChart(ctx, c.ID)
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JustBeyond/packedbubble/pkg/chart"
	"github.com/JustBeyond/packedbubble/pkg/errors"
)

// ErrNotFound is returned when no chart exists under the requested ID.
var ErrNotFound = errors.New(errors.ErrCodeChartNotFound, "chart not found")

// Chart is one persisted chart: the dataset it was built from, the computed
// layout, and bookkeeping timestamps. IDs are UUID strings.
type Chart struct {
	ID        string        `json:"id" bson:"_id"`
	Title     string        `json:"title,omitempty" bson:"title,omitempty"`
	Dataset   chart.Dataset `json:"dataset" bson:"dataset"`
	Layout    chart.Layout  `json:"layout" bson:"layout"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

// NewChart builds a chart document with a fresh ID and timestamps.
func NewChart(title string, d chart.Dataset, l chart.Layout) *Chart {
	now := time.Now().UTC()
	return &Chart{
		ID:        uuid.NewString(),
		Title:     title,
		Dataset:   d,
		Layout:    l,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for chart storage backends.
type Store interface {
	// SaveChart inserts the chart, or replaces the chart with the same ID.
	// UpdatedAt is refreshed on every save.
	SaveChart(ctx context.Context, c *Chart) error

	// GetChart retrieves a chart by ID. Returns ErrNotFound if no chart
	// exists under the ID.
	GetChart(ctx context.Context, id string) (*Chart, error)

	// ListCharts returns charts newest-first. A limit of 0 or less returns
	// all charts.
	ListCharts(ctx context.Context, limit int) ([]*Chart, error)

	// DeleteChart removes a chart. Returns ErrNotFound if no chart exists
	// under the ID.
	DeleteChart(ctx context.Context, id string) error

	// Close releases the backend connection.
	Close(ctx context.Context) error
}

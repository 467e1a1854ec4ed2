package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citypulse/backend/internal/domain"
)

func TestEventRepository_CreateUnknownRegion(t *testing.T) {
	conn := newTestDB(t)
	repos := NewRepositories(conn)
	ctx := context.Background()

	err := repos.Events.Create(ctx, &domain.Event{
		ID:             uuid.New(),
		RegionID:       uuid.New(),
		Timestamp:      time.Now().UTC(),
		Category:       "heatwave",
		SentimentScore: 0.5,
		SourceURL:      "https://example.com",
		Title:          "t",
		Summary:        "s",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The failed insert must not leave a row behind.
	var count int
	require.NoError(t, conn.Get(&count, `SELECT COUNT(*) FROM events`))
	assert.Zero(t, count)
}

func TestEventRepository_FilterByCategory(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()

	region := mustCreateRegion(t, repos, "North Park", "north-park")
	mustCreateEvent(t, repos, region.ID, "heatwave", 0.8, time.Now().UTC())
	mustCreateEvent(t, repos, region.ID, "heatwave", 0.4, time.Now().UTC())
	mustCreateEvent(t, repos, region.ID, "traffic", -0.2, time.Now().UTC())

	category := "heatwave"
	events, err := repos.Events.GetAll(ctx, &EventFilters{Category: &category})
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, "heatwave", event.Category)
	}
}

func TestEventRepository_FilterByRegion(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()

	first := mustCreateRegion(t, repos, "North Park", "north-park")
	second := mustCreateRegion(t, repos, "Hillcrest", "hillcrest")
	mustCreateEvent(t, repos, first.ID, "heatwave", 0.8, time.Now().UTC())
	mustCreateEvent(t, repos, second.ID, "heatwave", 0.4, time.Now().UTC())

	events, err := repos.Events.GetAll(ctx, &EventFilters{RegionID: &first.ID})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, first.ID, events[0].RegionID)
}

func TestEventRepository_RawDataRoundTrip(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()

	region := mustCreateRegion(t, repos, "North Park", "north-park")
	event := &domain.Event{
		ID:             uuid.New(),
		RegionID:       region.ID,
		Timestamp:      time.Now().UTC(),
		Category:       "heatwave",
		SentimentScore: 0.7,
		SourceURL:      "https://example.com",
		RawData:        domain.RawData{"temp_f": float64(102), "source": "noaa"},
		Title:          "record heat",
		Summary:        "hot",
	}
	require.NoError(t, repos.Events.Create(ctx, event))

	fetched, err := repos.Events.GetOneByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.RawData, fetched.RawData)
}

func TestEventRepository_GetOneNotFound(t *testing.T) {
	repos := NewRepositories(newTestDB(t))

	_, err := repos.Events.GetOneByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

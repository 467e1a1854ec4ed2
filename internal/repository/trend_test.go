package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendRepository_CountAndMean(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()

	region := mustCreateRegion(t, repos, "North Park", "north-park")
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mustCreateEvent(t, repos, region.ID, "heatwave", 0.8, base)
	latest := mustCreateEvent(t, repos, region.ID, "heatwave", 0.4, base.Add(time.Hour))

	slug := "north-park"
	category := "heatwave"
	groups, err := repos.Trends.Aggregate(ctx, TrendQuery{RegionSlug: &slug, Category: &category, Limit: 10})
	require.NoError(t, err)
	require.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "heatwave", group.Topic)
	assert.Equal(t, "north-park", group.RegionSlug)
	assert.Equal(t, int64(2), group.EventCount)
	assert.InDelta(t, 0.6, group.AvgSentiment, 1e-9)
	assert.Equal(t, latest.Title, group.SampleTitle)
	assert.Equal(t, latest.SourceURL, group.SampleSourceURL)
}

func TestTrendRepository_LimitCapsGroups(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()

	region := mustCreateRegion(t, repos, "North Park", "north-park")
	now := time.Now().UTC()
	for _, category := range []string{"heatwave", "traffic", "wildfire", "flooding"} {
		mustCreateEvent(t, repos, region.ID, category, 0.1, now)
	}

	groups, err := repos.Trends.Aggregate(ctx, TrendQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestTrendRepository_OrderingAndTiebreak(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()

	region := mustCreateRegion(t, repos, "North Park", "north-park")
	now := time.Now().UTC()
	// traffic has two events, the rest one each; ties order by topic.
	mustCreateEvent(t, repos, region.ID, "traffic", 0.1, now)
	mustCreateEvent(t, repos, region.ID, "traffic", 0.3, now)
	mustCreateEvent(t, repos, region.ID, "wildfire", 0.2, now)
	mustCreateEvent(t, repos, region.ID, "heatwave", 0.9, now)

	groups, err := repos.Trends.Aggregate(ctx, TrendQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "traffic", groups[0].Topic)
	assert.Equal(t, int64(2), groups[0].EventCount)
	assert.Equal(t, "heatwave", groups[1].Topic)
	assert.Equal(t, "wildfire", groups[2].Topic)
}

func TestTrendRepository_GroupsSplitByRegion(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()

	first := mustCreateRegion(t, repos, "North Park", "north-park")
	second := mustCreateRegion(t, repos, "Hillcrest", "hillcrest")
	now := time.Now().UTC()
	mustCreateEvent(t, repos, first.ID, "heatwave", 0.8, now)
	mustCreateEvent(t, repos, second.ID, "heatwave", 0.2, now)

	category := "heatwave"
	groups, err := repos.Trends.Aggregate(ctx, TrendQuery{Category: &category, Limit: 10})
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.NotEqual(t, groups[0].RegionSlug, groups[1].RegionSlug)
}

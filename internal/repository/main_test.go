package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/citypulse/backend/internal/db"
	"github.com/citypulse/backend/internal/domain"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", ":memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	require.NoError(t, db.InitSchema(context.Background(), conn))
	return conn
}

func mustCreateRegion(t *testing.T, repos *Repositories, name, slug string) *domain.Region {
	t.Helper()
	region := &domain.Region{
		ID:        uuid.New(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repos.Regions.Create(context.Background(), region))
	return region
}

func mustCreateUser(t *testing.T, repos *Repositories, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: "Test User",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repos.Users.Create(context.Background(), user))
	return user
}

func mustCreateEvent(t *testing.T, repos *Repositories, regionID uuid.UUID, category string, sentiment float64, ts time.Time) *domain.Event {
	t.Helper()
	event := &domain.Event{
		ID:             uuid.New(),
		RegionID:       regionID,
		Timestamp:      ts,
		Category:       category,
		SentimentScore: sentiment,
		SourceURL:      "https://example.com/article",
		Title:          category + " report",
		Summary:        "summary",
	}
	require.NoError(t, repos.Events.Create(context.Background(), event))
	return event
}

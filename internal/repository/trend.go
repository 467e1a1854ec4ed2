package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/citypulse/backend/internal/domain"
)

type trendRepository struct {
	db *sqlx.DB
}

func newTrendRepository(db *sqlx.DB) *trendRepository {
	return &trendRepository{
		db: db,
	}
}

// Aggregate groups events by (category, region), computing count and mean
// sentiment. Ordering is event_count DESC with (topic, region_slug) ASC as
// the deterministic tiebreak. Each group is then annotated with the title
// and source URL of its most recent event.
func (r *trendRepository) Aggregate(ctx context.Context, q TrendQuery) ([]domain.TrendGroup, error) {
	query := `
	SELECT
		e.category AS topic,
		r.slug AS region_slug,
		COUNT(*) AS event_count,
		AVG(e.sentiment_score) AS avg_sentiment
	FROM events e
	JOIN regions r ON r.id = e.region_id
	WHERE 1=1`
	args := []interface{}{}

	if q.RegionSlug != nil {
		query += ` AND r.slug = ?`
		args = append(args, *q.RegionSlug)
	}
	if q.Category != nil {
		query += ` AND e.category = ?`
		args = append(args, *q.Category)
	}

	query += `
	GROUP BY e.category, r.slug
	ORDER BY event_count DESC, topic ASC, region_slug ASC
	LIMIT ?`
	args = append(args, q.Limit)

	var groups []domain.TrendGroup
	if err := r.db.SelectContext(ctx, &groups, query, args...); err != nil {
		return nil, fmt.Errorf("trend aggregation failed: %w", err)
	}

	for i := range groups {
		if err := r.annotateSample(ctx, &groups[i]); err != nil {
			return nil, err
		}
	}

	return groups, nil
}

func (r *trendRepository) annotateSample(ctx context.Context, group *domain.TrendGroup) error {
	const query = `
	SELECT e.title, e.source_url
	FROM events e
	JOIN regions r ON r.id = e.region_id
	WHERE e.category = ? AND r.slug = ?
	ORDER BY e.timestamp DESC, e.id ASC
	LIMIT 1;
	`
	var sample struct {
		Title     string `db:"title"`
		SourceURL string `db:"source_url"`
	}
	if err := r.db.GetContext(ctx, &sample, query, group.Topic, group.RegionSlug); err != nil {
		return fmt.Errorf("trend sample lookup failed: %w", err)
	}
	group.SampleTitle = sample.Title
	group.SampleSourceURL = sample.SourceURL
	return nil
}

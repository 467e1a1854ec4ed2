package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/citypulse/backend/internal/db"
	"github.com/citypulse/backend/internal/domain"
)

const eventColumns = `id, region_id, timestamp, category, sentiment_score, source_url, raw_data, title, summary`

type eventRepository struct {
	db *sqlx.DB
}

func newEventRepository(db *sqlx.DB) *eventRepository {
	return &eventRepository{
		db: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	const query = `
	INSERT INTO events (id, region_id, timestamp, category, sentiment_score, source_url, raw_data, title, summary)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.RegionID,
		event.Timestamp,
		event.Category,
		event.SentimentScore,
		event.SourceURL,
		event.RawData,
		event.Title,
		event.Summary,
	)
	if err != nil {
		// Referenced region does not exist.
		if db.IsForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("db insert event: %w", err)
	}
	return nil
}

func (r *eventRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = ?;`, eventColumns)

	var event domain.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from events by id failed: %w", err)
	}
	return &event, nil
}

func (r *eventRepository) GetAll(ctx context.Context, filters *EventFilters) ([]domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE 1=1`, eventColumns)
	args := []interface{}{}

	if filters != nil {
		if filters.RegionID != nil {
			query += ` AND region_id = ?`
			args = append(args, *filters.RegionID)
		}
		if filters.Category != nil {
			query += ` AND category = ?`
			args = append(args, *filters.Category)
		}
	}

	query += ` ORDER BY timestamp DESC, id ASC`

	var events []domain.Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("select events failed: %w", err)
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	const query = `
	UPDATE events SET category = ?, sentiment_score = ?, title = ?, summary = ? WHERE id = ?;
	`
	_, err := r.db.ExecContext(ctx, query,
		event.Category,
		event.SentimentScore,
		event.Title,
		event.Summary,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("update event by id failed: %w", err)
	}
	return nil
}

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

type interactionRepository struct {
	db *sqlx.DB
}

func newInteractionRepository(db *sqlx.DB) *interactionRepository {
	return &interactionRepository{
		db: db,
	}
}

func (r *interactionRepository) AddLike(ctx context.Context, like *domain.EventLike) error {
	const query = `
	INSERT INTO event_likes (id, user_id, event_id) VALUES (?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query, like.ID, like.UserID, like.EventID)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		if db.IsForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("db insert event like: %w", err)
	}
	return nil
}

func (r *interactionRepository) RemoveLike(ctx context.Context, eventID, userID uuid.UUID) error {
	const query = `
	DELETE FROM event_likes WHERE event_id = ? AND user_id = ?;
	`
	return r.removeOne(ctx, query, eventID, userID)
}

func (r *interactionRepository) AddComment(ctx context.Context, comment *domain.EventComment) error {
	const query = `
	INSERT INTO event_comments (id, user_id, event_id, text, created_at) VALUES (?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query, comment.ID, comment.UserID, comment.EventID, comment.Text, comment.CreatedAt)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("db insert event comment: %w", err)
	}
	return nil
}

func (r *interactionRepository) GetComment(ctx context.Context, id uuid.UUID) (*domain.EventComment, error) {
	const query = `
	SELECT id, user_id, event_id, text, created_at FROM event_comments WHERE id = ?;
	`
	var comment domain.EventComment
	if err := r.db.GetContext(ctx, &comment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select comment by id failed: %w", err)
	}
	return &comment, nil
}

func (r *interactionRepository) RemoveComment(ctx context.Context, id uuid.UUID) error {
	const query = `
	DELETE FROM event_comments WHERE id = ?;
	`
	return r.removeOne(ctx, query, id)
}

func (r *interactionRepository) AddAttending(ctx context.Context, attending *domain.EventAttending) error {
	const query = `
	INSERT INTO event_attending (id, user_id, event_id) VALUES (?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query, attending.ID, attending.UserID, attending.EventID)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		if db.IsForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("db insert event attending: %w", err)
	}
	return nil
}

func (r *interactionRepository) RemoveAttending(ctx context.Context, eventID, userID uuid.UUID) error {
	const query = `
	DELETE FROM event_attending WHERE event_id = ? AND user_id = ?;
	`
	return r.removeOne(ctx, query, eventID, userID)
}

func (r *interactionRepository) CommentsByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.EventComment, error) {
	const query = `
	SELECT id, user_id, event_id, text, created_at
	FROM event_comments WHERE event_id = ? ORDER BY created_at ASC, id ASC;
	`
	var comments []domain.EventComment
	if err := r.db.SelectContext(ctx, &comments, query, eventID); err != nil {
		return nil, fmt.Errorf("select comments by event failed: %w", err)
	}
	return comments, nil
}

func (r *interactionRepository) CountsByEvent(ctx context.Context, eventID uuid.UUID) (likes, comments, attendance int, err error) {
	const query = `
	SELECT
		(SELECT COUNT(*) FROM event_likes WHERE event_id = ?) AS likes,
		(SELECT COUNT(*) FROM event_comments WHERE event_id = ?) AS comments,
		(SELECT COUNT(*) FROM event_attending WHERE event_id = ?) AS attendance;
	`
	var counts struct {
		Likes      int `db:"likes"`
		Comments   int `db:"comments"`
		Attendance int `db:"attendance"`
	}
	if err := r.db.GetContext(ctx, &counts, query, eventID, eventID, eventID); err != nil {
		return 0, 0, 0, fmt.Errorf("select interaction counts failed: %w", err)
	}
	return counts.Likes, counts.Comments, counts.Attendance, nil
}

func (r *interactionRepository) removeOne(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db delete interaction: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

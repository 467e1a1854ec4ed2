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

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
	INSERT INTO users (id, email, display_name, created_at)
	VALUES (?, ?, ?, ?);
	`
	result, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.DisplayName, user.CreatedAt)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
	SELECT id, email, display_name, created_at FROM users WHERE id = ?;
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from users by id failed: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	const query = `
	SELECT id, email, display_name, created_at FROM users ORDER BY created_at ASC, id ASC;
	`
	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("select all users failed: %w", err)
	}
	return users, nil
}

func (r *userRepository) GetByRegion(ctx context.Context, regionID uuid.UUID) ([]domain.User, error) {
	const query = `
	SELECT u.id, u.email, u.display_name, u.created_at
	FROM users u
	JOIN user_regions ur ON ur.user_id = u.id
	WHERE ur.region_id = ?
	ORDER BY u.created_at ASC, u.id ASC;
	`
	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, query, regionID); err != nil {
		return nil, fmt.Errorf("select users by region failed: %w", err)
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
	UPDATE users SET email = ?, display_name = ? WHERE id = ?;
	`
	_, err := r.db.ExecContext(ctx, query, user.Email, user.DisplayName, user.ID)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("update user by id failed: %w", err)
	}
	return nil
}

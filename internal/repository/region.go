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

type regionRepository struct {
	db *sqlx.DB
}

func newRegionRepository(db *sqlx.DB) *regionRepository {
	return &regionRepository{
		db: db,
	}
}

func (r *regionRepository) Create(ctx context.Context, region *domain.Region) error {
	const query = `
	INSERT INTO regions (id, name, slug, created_at)
	VALUES (?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query, region.ID, region.Name, region.Slug, region.CreatedAt)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert region: %w", err)
	}
	return nil
}

func (r *regionRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	const query = `
	SELECT id, name, slug, created_at FROM regions WHERE id = ?;
	`
	var region domain.Region
	if err := r.db.GetContext(ctx, &region, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from regions by id failed: %w", err)
	}
	return &region, nil
}

func (r *regionRepository) GetBySlug(ctx context.Context, slug string) (*domain.Region, error) {
	const query = `
	SELECT id, name, slug, created_at FROM regions WHERE slug = ?;
	`
	var region domain.Region
	if err := r.db.GetContext(ctx, &region, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from regions by slug failed: %w", err)
	}
	return &region, nil
}

func (r *regionRepository) GetAll(ctx context.Context) ([]domain.Region, error) {
	const query = `
	SELECT id, name, slug, created_at FROM regions ORDER BY slug ASC;
	`
	var regions []domain.Region
	if err := r.db.SelectContext(ctx, &regions, query); err != nil {
		return nil, fmt.Errorf("select all regions failed: %w", err)
	}
	return regions, nil
}

func (r *regionRepository) AddMember(ctx context.Context, userID, regionID uuid.UUID) error {
	const query = `
	INSERT INTO user_regions (user_id, region_id) VALUES (?, ?);
	`
	_, err := r.db.ExecContext(ctx, query, userID, regionID)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		if db.IsForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("db insert user_regions: %w", err)
	}
	return nil
}

package repository

import (
	"context"

	"github.com/citypulse/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users        Users
	Regions      Regions
	Events       Events
	Trends       Trends
	Interactions Interactions
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:        newUserRepository(db),
		Regions:      newRegionRepository(db),
		Events:       newEventRepository(db),
		Trends:       newTrendRepository(db),
		Interactions: newInteractionRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByRegion(ctx context.Context, regionID uuid.UUID) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type Regions interface {
	Create(ctx context.Context, region *domain.Region) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Region, error)
	GetAll(ctx context.Context) ([]domain.Region, error)
	AddMember(ctx context.Context, userID, regionID uuid.UUID) error
}

// EventFilters narrows event listings; nil fields are ignored.
type EventFilters struct {
	RegionID *uuid.UUID
	Category *string
}

type Events interface {
	Create(ctx context.Context, event *domain.Event) error
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetAll(ctx context.Context, filters *EventFilters) ([]domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
}

// TrendQuery scopes the aggregation; nil fields are ignored.
type TrendQuery struct {
	RegionSlug *string
	Category   *string
	Limit      int
}

type Trends interface {
	Aggregate(ctx context.Context, query TrendQuery) ([]domain.TrendGroup, error)
}

type Interactions interface {
	AddLike(ctx context.Context, like *domain.EventLike) error
	RemoveLike(ctx context.Context, eventID, userID uuid.UUID) error
	AddComment(ctx context.Context, comment *domain.EventComment) error
	GetComment(ctx context.Context, id uuid.UUID) (*domain.EventComment, error)
	RemoveComment(ctx context.Context, id uuid.UUID) error
	AddAttending(ctx context.Context, attending *domain.EventAttending) error
	RemoveAttending(ctx context.Context, eventID, userID uuid.UUID) error
	CommentsByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.EventComment, error)
	CountsByEvent(ctx context.Context, eventID uuid.UUID) (likes, comments, attendance int, err error)
}

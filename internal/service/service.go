package service

import (
	"context"
	"time"

	"github.com/citypulse/backend/internal/config"
	"github.com/citypulse/backend/internal/domain"
	"github.com/citypulse/backend/internal/repository"

	"github.com/google/uuid"
)

type Services struct {
	Users        Users
	Regions      Regions
	Events       Events
	Trends       Trends
	Interactions Interactions
}

type Deps struct {
	Config *config.Config
	Repos  *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Users:        newUserService(deps.Repos.Users),
		Regions:      newRegionService(deps.Repos.Regions, deps.Repos.Users, deps.Repos.Events),
		Events:       newEventService(deps.Repos.Events, deps.Repos.Regions),
		Trends:       newTrendService(deps.Repos.Trends, deps.Repos.Regions),
		Interactions: newInteractionService(deps.Repos.Interactions, deps.Repos.Events, deps.Repos.Users),
	}
}

type UpdateUserInput struct {
	Email       *string
	DisplayName *string
}

type Users interface {
	Create(ctx context.Context, email, displayName string) (*domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
}

type Regions interface {
	Create(ctx context.Context, name, slug string) (*domain.Region, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error)
	GetAll(ctx context.Context, slug *string) ([]domain.Region, error)
	EventsIn(ctx context.Context, regionID uuid.UUID) ([]domain.Event, error)
	UsersIn(ctx context.Context, regionID uuid.UUID) ([]domain.User, error)
	AddMember(ctx context.Context, regionID, userID uuid.UUID) error
}

type CreateEventInput struct {
	RegionID       uuid.UUID
	Timestamp      time.Time
	Category       string
	SentimentScore float64
	SourceURL      string
	RawData        domain.RawData
	Title          string
	Summary        string
}

type UpdateEventInput struct {
	Category       *string
	SentimentScore *float64
	Title          *string
	Summary        *string
}

type Events interface {
	Create(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	GetAll(ctx context.Context, filters *repository.EventFilters) ([]domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateEventInput) (*domain.Event, error)
}

type TrendParams struct {
	RegionSlug *string
	Category   *string
	Limit      int
}

type Trends interface {
	Get(ctx context.Context, params TrendParams) ([]domain.TrendGroup, error)
}

type Interactions interface {
	List(ctx context.Context, regionID *uuid.UUID) ([]domain.EventInteractions, error)
	AddLike(ctx context.Context, eventID, userID uuid.UUID) error
	RemoveLike(ctx context.Context, eventID, userID uuid.UUID) error
	AddComment(ctx context.Context, eventID, userID uuid.UUID, text string) (*domain.EventComment, error)
	RemoveComment(ctx context.Context, eventID, commentID, userID uuid.UUID) error
	AddAttending(ctx context.Context, eventID, userID uuid.UUID) error
	RemoveAttending(ctx context.Context, eventID, userID uuid.UUID) error
}

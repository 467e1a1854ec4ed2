package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/citypulse/backend/internal/domain"
	"github.com/citypulse/backend/internal/repository"
)

// MockUserRepository is a mock implementation of repository.Users
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByRegion(ctx context.Context, regionID uuid.UUID) ([]domain.User, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockRegionRepository is a mock implementation of repository.Regions
type MockRegionRepository struct {
	mock.Mock
}

func (m *MockRegionRepository) Create(ctx context.Context, region *domain.Region) error {
	args := m.Called(ctx, region)
	return args.Error(0)
}

func (m *MockRegionRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Region), args.Error(1)
}

func (m *MockRegionRepository) GetBySlug(ctx context.Context, slug string) (*domain.Region, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Region), args.Error(1)
}

func (m *MockRegionRepository) GetAll(ctx context.Context) ([]domain.Region, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Region), args.Error(1)
}

func (m *MockRegionRepository) AddMember(ctx context.Context, userID, regionID uuid.UUID) error {
	args := m.Called(ctx, userID, regionID)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of repository.Events
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) GetAll(ctx context.Context, filters *repository.EventFilters) ([]domain.Event, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockTrendRepository is a mock implementation of repository.Trends
type MockTrendRepository struct {
	mock.Mock
}

func (m *MockTrendRepository) Aggregate(ctx context.Context, query repository.TrendQuery) ([]domain.TrendGroup, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrendGroup), args.Error(1)
}

// MockInteractionRepository is a mock implementation of repository.Interactions
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) AddLike(ctx context.Context, like *domain.EventLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockInteractionRepository) RemoveLike(ctx context.Context, eventID, userID uuid.UUID) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) AddComment(ctx context.Context, comment *domain.EventComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockInteractionRepository) GetComment(ctx context.Context, id uuid.UUID) (*domain.EventComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventComment), args.Error(1)
}

func (m *MockInteractionRepository) RemoveComment(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInteractionRepository) AddAttending(ctx context.Context, attending *domain.EventAttending) error {
	args := m.Called(ctx, attending)
	return args.Error(0)
}

func (m *MockInteractionRepository) RemoveAttending(ctx context.Context, eventID, userID uuid.UUID) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockInteractionRepository) CommentsByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.EventComment, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventComment), args.Error(1)
}

func (m *MockInteractionRepository) CountsByEvent(ctx context.Context, eventID uuid.UUID) (int, int, int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Int(1), args.Int(2), args.Error(3)
}

package v1

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/citypulse/backend/internal/domain"
	"github.com/citypulse/backend/internal/repository"
	"github.com/citypulse/backend/internal/service"
)

// MockUsersService is a mock implementation of service.Users
type MockUsersService struct {
	mock.Mock
}

func (m *MockUsersService) Create(ctx context.Context, email, displayName string) (*domain.User, error) {
	args := m.Called(ctx, email, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUsersService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUsersService) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUsersService) Update(ctx context.Context, id uuid.UUID, input service.UpdateUserInput) (*domain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockRegionsService is a mock implementation of service.Regions
type MockRegionsService struct {
	mock.Mock
}

func (m *MockRegionsService) Create(ctx context.Context, name, slug string) (*domain.Region, error) {
	args := m.Called(ctx, name, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Region), args.Error(1)
}

func (m *MockRegionsService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Region), args.Error(1)
}

func (m *MockRegionsService) GetAll(ctx context.Context, slug *string) ([]domain.Region, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Region), args.Error(1)
}

func (m *MockRegionsService) EventsIn(ctx context.Context, regionID uuid.UUID) ([]domain.Event, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockRegionsService) UsersIn(ctx context.Context, regionID uuid.UUID) ([]domain.User, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRegionsService) AddMember(ctx context.Context, regionID, userID uuid.UUID) error {
	args := m.Called(ctx, regionID, userID)
	return args.Error(0)
}

// MockEventsService is a mock implementation of service.Events
type MockEventsService struct {
	mock.Mock
}

func (m *MockEventsService) Create(ctx context.Context, input service.CreateEventInput) (*domain.Event, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventsService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventsService) GetAll(ctx context.Context, filters *repository.EventFilters) ([]domain.Event, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventsService) Update(ctx context.Context, id uuid.UUID, input service.UpdateEventInput) (*domain.Event, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

// MockTrendsService is a mock implementation of service.Trends
type MockTrendsService struct {
	mock.Mock
}

func (m *MockTrendsService) Get(ctx context.Context, params service.TrendParams) ([]domain.TrendGroup, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrendGroup), args.Error(1)
}

// MockInteractionsService is a mock implementation of service.Interactions
type MockInteractionsService struct {
	mock.Mock
}

func (m *MockInteractionsService) List(ctx context.Context, regionID *uuid.UUID) ([]domain.EventInteractions, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventInteractions), args.Error(1)
}

func (m *MockInteractionsService) AddLike(ctx context.Context, eventID, userID uuid.UUID) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockInteractionsService) RemoveLike(ctx context.Context, eventID, userID uuid.UUID) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockInteractionsService) AddComment(ctx context.Context, eventID, userID uuid.UUID, text string) (*domain.EventComment, error) {
	args := m.Called(ctx, eventID, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventComment), args.Error(1)
}

func (m *MockInteractionsService) RemoveComment(ctx context.Context, eventID, commentID, userID uuid.UUID) error {
	args := m.Called(ctx, eventID, commentID, userID)
	return args.Error(0)
}

func (m *MockInteractionsService) AddAttending(ctx context.Context, eventID, userID uuid.UUID) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockInteractionsService) RemoveAttending(ctx context.Context, eventID, userID uuid.UUID) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

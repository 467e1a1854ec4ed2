package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"

	"github.com/citypulse/backend/internal/domain"
	"github.com/citypulse/backend/internal/repository"
)

type regionService struct {
	regionRepository repository.Regions
	userRepository   repository.Users
	eventRepository  repository.Events
}

func newRegionService(regionRepository repository.Regions, userRepository repository.Users, eventRepository repository.Events) *regionService {
	return &regionService{
		regionRepository: regionRepository,
		userRepository:   userRepository,
		eventRepository:  eventRepository,
	}
}

func (s *regionService) Create(ctx context.Context, name, slug string) (*domain.Region, error) {
	region := &domain.Region{
		ID:        uuid.New(),
		Name:      name,
		Slug:      strings.ToLower(strings.TrimSpace(slug)),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.regionRepository.Create(ctx, region); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrSlugTaken
		}
		return nil, pkgErrors.Wrap(err, "create region")
	}

	return region, nil
}

func (s *regionService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	region, err := s.regionRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, pkgErrors.Wrap(err, "get region")
	}
	return region, nil
}

// GetAll lists regions, narrowed to an exact slug match when slug is set.
func (s *regionService) GetAll(ctx context.Context, slug *string) ([]domain.Region, error) {
	if slug == nil {
		return s.regionRepository.GetAll(ctx)
	}

	region, err := s.regionRepository.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(*slug)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []domain.Region{}, nil
		}
		return nil, pkgErrors.Wrap(err, "get region by slug")
	}
	return []domain.Region{*region}, nil
}

func (s *regionService) EventsIn(ctx context.Context, regionID uuid.UUID) ([]domain.Event, error) {
	if _, err := s.GetOneByID(ctx, regionID); err != nil {
		return nil, err
	}
	return s.eventRepository.GetAll(ctx, &repository.EventFilters{RegionID: &regionID})
}

func (s *regionService) UsersIn(ctx context.Context, regionID uuid.UUID) ([]domain.User, error) {
	if _, err := s.GetOneByID(ctx, regionID); err != nil {
		return nil, err
	}
	return s.userRepository.GetByRegion(ctx, regionID)
}

// AddMember links a user to a region. Adding an existing membership is a
// no-op success; the unique pair constraint guarantees a single row.
func (s *regionService) AddMember(ctx context.Context, regionID, userID uuid.UUID) error {
	if _, err := s.GetOneByID(ctx, regionID); err != nil {
		return err
	}
	if _, err := s.userRepository.GetOneByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return pkgErrors.Wrap(err, "get user")
	}

	if err := s.regionRepository.AddMember(ctx, userID, regionID); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil
		}
		return pkgErrors.Wrap(err, "add member")
	}
	return nil
}

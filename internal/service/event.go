package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	pkgErrors "github.com/pkg/errors"

	"github.com/citypulse/backend/internal/domain"
	"github.com/citypulse/backend/internal/repository"
)

type eventService struct {
	eventRepository  repository.Events
	regionRepository repository.Regions
}

func newEventService(eventRepository repository.Events, regionRepository repository.Regions) *eventService {
	return &eventService{
		eventRepository:  eventRepository,
		regionRepository: regionRepository,
	}
}

func (s *eventService) Create(ctx context.Context, input CreateEventInput) (*domain.Event, error) {
	if _, err := s.regionRepository.GetOneByID(ctx, input.RegionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, pkgErrors.Wrap(err, "get region")
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	event := &domain.Event{
		ID:             uuid.New(),
		RegionID:       input.RegionID,
		Timestamp:      timestamp,
		Category:       input.Category,
		SentimentScore: input.SentimentScore,
		SourceURL:      input.SourceURL,
		RawData:        input.RawData,
		Title:          input.Title,
		Summary:        input.Summary,
	}

	if err := s.eventRepository.Create(ctx, event); err != nil {
		// FK race between the region check and the insert.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRegionNotFound
		}
		return nil, pkgErrors.Wrap(err, "create event")
	}

	return event, nil
}

func (s *eventService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	event, err := s.eventRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, pkgErrors.Wrap(err, "get event")
	}
	return event, nil
}

func (s *eventService) GetAll(ctx context.Context, filters *repository.EventFilters) ([]domain.Event, error) {
	return s.eventRepository.GetAll(ctx, filters)
}

func (s *eventService) Update(ctx context.Context, id uuid.UUID, input UpdateEventInput) (*domain.Event, error) {
	event, err := s.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		event.Category = *input.Category
	}
	if input.SentimentScore != nil {
		event.SentimentScore = *input.SentimentScore
	}
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Summary != nil {
		event.Summary = *input.Summary
	}

	if err := s.eventRepository.Update(ctx, event); err != nil {
		return nil, pkgErrors.Wrap(err, "update event")
	}

	return event, nil
}

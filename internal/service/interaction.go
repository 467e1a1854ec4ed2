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

type interactionService struct {
	interactionRepository repository.Interactions
	eventRepository       repository.Events
	userRepository        repository.Users
}

func newInteractionService(interactionRepository repository.Interactions, eventRepository repository.Events, userRepository repository.Users) *interactionService {
	return &interactionService{
		interactionRepository: interactionRepository,
		eventRepository:       eventRepository,
		userRepository:        userRepository,
	}
}

func (s *interactionService) List(ctx context.Context, regionID *uuid.UUID) ([]domain.EventInteractions, error) {
	events, err := s.eventRepository.GetAll(ctx, &repository.EventFilters{RegionID: regionID})
	if err != nil {
		return nil, pkgErrors.Wrap(err, "list events")
	}

	out := make([]domain.EventInteractions, 0, len(events))
	for _, event := range events {
		likes, comments, attendance, err := s.interactionRepository.CountsByEvent(ctx, event.ID)
		if err != nil {
			return nil, pkgErrors.Wrap(err, "interaction counts")
		}
		commentRows, err := s.interactionRepository.CommentsByEvent(ctx, event.ID)
		if err != nil {
			return nil, pkgErrors.Wrap(err, "event comments")
		}
		if commentRows == nil {
			commentRows = []domain.EventComment{}
		}
		out = append(out, domain.EventInteractions{
			Event:           event,
			LikesCount:      likes,
			CommentsCount:   comments,
			AttendanceCount: attendance,
			Comments:        commentRows,
		})
	}
	return out, nil
}

// AddLike is idempotent: liking an already-liked event succeeds without a
// second row.
func (s *interactionService) AddLike(ctx context.Context, eventID, userID uuid.UUID) error {
	if err := s.checkEventAndUser(ctx, eventID, userID); err != nil {
		return err
	}

	like := &domain.EventLike{ID: uuid.New(), UserID: userID, EventID: eventID}
	if err := s.interactionRepository.AddLike(ctx, like); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil
		}
		return pkgErrors.Wrap(err, "add like")
	}
	return nil
}

func (s *interactionService) RemoveLike(ctx context.Context, eventID, userID uuid.UUID) error {
	if err := s.interactionRepository.RemoveLike(ctx, eventID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrLikeNotFound
		}
		return pkgErrors.Wrap(err, "remove like")
	}
	return nil
}

func (s *interactionService) AddComment(ctx context.Context, eventID, userID uuid.UUID, text string) (*domain.EventComment, error) {
	if err := s.checkEventAndUser(ctx, eventID, userID); err != nil {
		return nil, err
	}

	comment := &domain.EventComment{
		ID:        uuid.New(),
		UserID:    userID,
		EventID:   eventID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.interactionRepository.AddComment(ctx, comment); err != nil {
		return nil, pkgErrors.Wrap(err, "add comment")
	}
	return comment, nil
}

// RemoveComment deletes a comment; only its author may do so.
func (s *interactionService) RemoveComment(ctx context.Context, eventID, commentID, userID uuid.UUID) error {
	comment, err := s.interactionRepository.GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrCommentNotFound
		}
		return pkgErrors.Wrap(err, "get comment")
	}
	if comment.EventID != eventID {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return ErrNotCommentOwner
	}

	if err := s.interactionRepository.RemoveComment(ctx, commentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrCommentNotFound
		}
		return pkgErrors.Wrap(err, "remove comment")
	}
	return nil
}

// AddAttending is idempotent, same contract as AddLike.
func (s *interactionService) AddAttending(ctx context.Context, eventID, userID uuid.UUID) error {
	if err := s.checkEventAndUser(ctx, eventID, userID); err != nil {
		return err
	}

	attending := &domain.EventAttending{ID: uuid.New(), UserID: userID, EventID: eventID}
	if err := s.interactionRepository.AddAttending(ctx, attending); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil
		}
		return pkgErrors.Wrap(err, "add attending")
	}
	return nil
}

func (s *interactionService) RemoveAttending(ctx context.Context, eventID, userID uuid.UUID) error {
	if err := s.interactionRepository.RemoveAttending(ctx, eventID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrAttendanceNotFound
		}
		return pkgErrors.Wrap(err, "remove attending")
	}
	return nil
}

func (s *interactionService) checkEventAndUser(ctx context.Context, eventID, userID uuid.UUID) error {
	if _, err := s.eventRepository.GetOneByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrEventNotFound
		}
		return pkgErrors.Wrap(err, "get event")
	}
	if _, err := s.userRepository.GetOneByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return pkgErrors.Wrap(err, "get user")
	}
	return nil
}

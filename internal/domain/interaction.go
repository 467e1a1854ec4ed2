package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventLike records that a user liked an event. One row per (user_id, event_id).
type EventLike struct {
	ID      uuid.UUID `db:"id" json:"id"`
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	EventID uuid.UUID `db:"event_id" json:"event_id"`
}

type EventComment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	Text      string    `db:"text" json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// EventAttending records that a user is attending an event. One row per (user_id, event_id).
type EventAttending struct {
	ID      uuid.UUID `db:"id" json:"id"`
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	EventID uuid.UUID `db:"event_id" json:"event_id"`
}

// EventInteractions is an event together with its interaction counts and comments.
type EventInteractions struct {
	Event
	LikesCount      int            `json:"likes_count"`
	CommentsCount   int            `json:"comments_count"`
	AttendanceCount int            `json:"attendance_count"`
	Comments        []EventComment `json:"comments"`
}

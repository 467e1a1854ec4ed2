package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Email       string    `db:"email" json:"email"`
	DisplayName string    `db:"display_name" json:"display_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// UserRegion is the membership row linking a user to a region.
// The (user_id, region_id) pair is unique; there is no other identity.
type UserRegion struct {
	UserID   uuid.UUID `db:"user_id" json:"user_id"`
	RegionID uuid.UUID `db:"region_id" json:"region_id"`
}

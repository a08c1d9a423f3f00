package model

import (
	"time"

	"github.com/google/uuid"
)

// Model holds the columns every table shares.
type Model struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Deleted reports whether the row was soft deleted.
func (m Model) Deleted() bool {
	return m.DeletedAt != nil
}

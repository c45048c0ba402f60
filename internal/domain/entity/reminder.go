// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a user-scheduled reminder that is dispatched as a push
// notification once its due time passes.
type Reminder struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	DueAt        time.Time  `json:"due_at"`
	DispatchedAt *time.Time `json:"dispatched_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsDispatched reports whether the reminder has already been sent.
func (r *Reminder) IsDispatched() bool {
	return r.DispatchedAt != nil
}

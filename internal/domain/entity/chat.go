// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Thread is a shared conversation between two or more users.
type Thread struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	CreatedBy uuid.UUID   `json:"created_by"`
	MemberIDs []uuid.UUID `json:"member_ids"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// HasMember reports whether the given user participates in the thread.
func (t *Thread) HasMember(userID uuid.UUID) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}

	return false
}

// Message is a single message inside a thread. Seq is a monotonically
// increasing sequence assigned by the database; the live feed uses it as
// its watermark so every message is delivered exactly once per stream.
type Message struct {
	ID        uuid.UUID `json:"id"`
	ThreadID  uuid.UUID `json:"thread_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Body      string    `json:"body"`
	Seq       int64     `json:"seq"`
	CreatedAt time.Time `json:"created_at"`
}

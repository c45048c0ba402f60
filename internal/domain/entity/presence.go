// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PresenceStatus is one user's liveness as observed by the presence tracker.
// Online means a heartbeat was seen within the liveness window; LastSeen is
// the timestamp of that heartbeat and is zero when no record survives.
type PresenceStatus struct {
	UserID   uuid.UUID
	Online   bool
	LastSeen time.Time
}

// MarshalJSON renders LastSeen as epoch milliseconds. The field is omitted
// when no heartbeat record survives, so clients never see a fake timestamp.
func (p PresenceStatus) MarshalJSON() ([]byte, error) {
	out := struct {
		UserID         uuid.UUID `json:"user_id"`
		Online         bool      `json:"online"`
		LastSeenMillis int64     `json:"last_seen_millis,omitempty"`
	}{
		UserID: p.UserID,
		Online: p.Online,
	}
	if !p.LastSeen.IsZero() {
		out.LastSeenMillis = p.LastSeen.UnixMilli()
	}

	return json.Marshal(out)
}

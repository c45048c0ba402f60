package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceStatus_MarshalJSON_EpochMillis(t *testing.T) {
	status := PresenceStatus{
		UserID:   uuid.New(),
		Online:   true,
		LastSeen: time.UnixMilli(1714000000123),
	}

	payload, err := json.Marshal(status)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, status.UserID.String(), decoded["user_id"])
	assert.Equal(t, true, decoded["online"])
	assert.Equal(t, float64(1714000000123), decoded["last_seen_millis"])
	assert.NotContains(t, string(payload), "last_seen\"")
}

func TestPresenceStatus_MarshalJSON_OfflineOmitsLastSeen(t *testing.T) {
	status := PresenceStatus{UserID: uuid.New()}

	payload, err := json.Marshal(status)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, false, decoded["online"])
	assert.NotContains(t, decoded, "last_seen_millis")
}

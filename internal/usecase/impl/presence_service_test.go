package impl

import (
	"context"
	"strconv"
	"testing"
	"time"

	mockService "horizon/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPresenceService(t *testing.T) (*presenceService, *mockService.MockEphemeralStore) {
	t.Helper()

	store := mockService.NewMockEphemeralStore(t)
	service := NewPresenceService(PresenceServiceParams{
		Store:  store,
		Config: newTestConfig(0),
		Logger: newDiscardLogger(),
	})

	return service.(*presenceService), store
}

func TestPresenceService_Touch_WritesTimestampWithTTL(t *testing.T) {
	service, store := newPresenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	store.EXPECT().
		SetWithTTL(ctx, "presence:"+userID.String(), mock.MatchedBy(func(value []byte) bool {
			millis, err := strconv.ParseInt(string(value), 10, 64)
			return err == nil && millis > 0
		}), 90*time.Second).
		Return(nil)

	err := service.Touch(ctx, userID)

	require.NoError(t, err)
}

func TestPresenceService_GetPresence_PreservesInputOrder(t *testing.T) {
	service, store := newPresenceService(t)
	ctx := context.Background()

	online := uuid.New()
	offline := uuid.New()
	alsoOnline := uuid.New()

	lastSeen := time.Now().Add(-10 * time.Second).Truncate(time.Millisecond)
	value := []byte(strconv.FormatInt(lastSeen.UnixMilli(), 10))

	store.EXPECT().
		GetMulti(ctx, []string{
			"presence:" + online.String(),
			"presence:" + offline.String(),
			"presence:" + alsoOnline.String(),
		}).
		Return(map[string][]byte{
			"presence:" + online.String():     value,
			"presence:" + alsoOnline.String(): value,
		}, nil)

	statuses, err := service.GetPresence(ctx, []uuid.UUID{online, offline, alsoOnline})

	require.NoError(t, err)
	require.Len(t, statuses, 3)

	assert.Equal(t, online, statuses[0].UserID)
	assert.True(t, statuses[0].Online)
	assert.Equal(t, lastSeen.UnixMilli(), statuses[0].LastSeen.UnixMilli())

	assert.Equal(t, offline, statuses[1].UserID)
	assert.False(t, statuses[1].Online)
	assert.True(t, statuses[1].LastSeen.IsZero())

	assert.Equal(t, alsoOnline, statuses[2].UserID)
	assert.True(t, statuses[2].Online)
}

func TestPresenceService_GetPresence_MalformedEntryStillOnline(t *testing.T) {
	service, store := newPresenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	store.EXPECT().
		GetMulti(ctx, []string{"presence:" + userID.String()}).
		Return(map[string][]byte{"presence:" + userID.String(): []byte("garbage")}, nil)

	statuses, err := service.GetPresence(ctx, []uuid.UUID{userID})

	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Online)
	assert.True(t, statuses[0].LastSeen.IsZero())
}

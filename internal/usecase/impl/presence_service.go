package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"horizon/config"
	deliverycontext "horizon/internal/delivery/context"
	"horizon/internal/domain/entity"
	"horizon/internal/domain/service"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// presenceKeyPrefix namespaces the ephemeral store so presence entries
// cannot collide with other users of the same store.
const presenceKeyPrefix = "presence:"

// presenceService implements the PresenceUsecase interface on top of an
// EphemeralStore. Entries are written with the liveness TTL and simply fall
// out of the store; no sweeper is needed.
type presenceService struct {
	store  service.EphemeralStore
	ttl    time.Duration
	logger *slog.Logger
}

// PresenceServiceParams holds dependencies for PresenceService, injected by Fx.
type PresenceServiceParams struct {
	fx.In

	Store  service.EphemeralStore
	Config *config.Config
	Logger *slog.Logger
}

// NewPresenceService is the constructor for presenceService.
func NewPresenceService(params PresenceServiceParams) usecase.PresenceUsecase {
	return &presenceService{
		store:  params.Store,
		ttl:    params.Config.Presence.TTL,
		logger: params.Logger,
	}
}

func (srv *presenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Touch records that the user is online right now. The entry value is the
// heartbeat timestamp in unix milliseconds; the last writer wins.
func (srv *presenceService) Touch(ctx context.Context, userID uuid.UUID) error {
	value := strconv.AppendInt(nil, time.Now().UnixMilli(), 10)

	if err := srv.store.SetWithTTL(ctx, presenceKey(userID), value, srv.ttl); err != nil {
		srv.log(ctx).Error("Failed to record heartbeat", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to record heartbeat")
	}

	return nil
}

// GetPresence reports liveness for the given users, in input order. Users
// with no live entry are offline with a zero LastSeen; that is a normal
// result, not an error.
func (srv *presenceService) GetPresence(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PresenceStatus, error) {
	keys := make([]string, len(userIDs))
	for i, userID := range userIDs {
		keys[i] = presenceKey(userID)
	}

	values, err := srv.store.GetMulti(ctx, keys)
	if err != nil {
		srv.log(ctx).Error("Failed to read presence entries", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to read presence entries")
	}

	statuses := make([]*entity.PresenceStatus, len(userIDs))
	for i, userID := range userIDs {
		status := &entity.PresenceStatus{UserID: userID}

		if raw, ok := values[keys[i]]; ok {
			status.Online = true

			millis, parseErr := strconv.ParseInt(string(raw), 10, 64)
			if parseErr != nil {
				// A corrupt entry still proves a recent heartbeat; report
				// online without a timestamp rather than failing the batch.
				srv.log(ctx).Warn("Malformed presence entry", slog.Any("userID", userID))
			} else {
				status.LastSeen = time.UnixMilli(millis)
			}
		}

		statuses[i] = status
	}

	return statuses, nil
}

func presenceKey(userID uuid.UUID) string {
	return presenceKeyPrefix + userID.String()
}

package ephemeral

import (
	"log/slog"

	"horizon/internal/domain/service"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the EphemeralStore, injected by Fx.
type StoreParams struct {
	fx.In

	Logger *slog.Logger

	// Redis is optional: nil when no Redis is configured.
	Redis *goredis.Client `optional:"true"`
}

// NewStore selects the EphemeralStore implementation based on whether a
// shared Redis instance is available. Presence written through either
// implementation behaves identically from the caller's point of view; only
// cross-instance visibility differs.
func NewStore(params StoreParams) service.EphemeralStore {
	if params.Redis != nil {
		params.Logger.Info("Using Redis-backed ephemeral store")

		return NewRedisStore(params.Redis)
	}

	params.Logger.Info("Redis not configured, using in-process ephemeral store")

	return NewLocalStore()
}

// Module provides the ephemeral store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)

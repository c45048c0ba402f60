package impl

import (
	"io"
	"log/slog"
	"time"

	"horizon/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
		Session: &config.SessionConfig{
			CookieName:       "horizon_session",
			TTL:              30 * 24 * time.Hour,
			MagicLinkTTL:     15 * time.Minute,
			ResetTTL:         30 * time.Minute,
			MagicLinkBaseURL: "https://app.example.com",
		},
		Presence: &config.PresenceConfig{
			TTL: 90 * time.Second,
		},
		Cache: &config.CacheConfig{
			TTL: 3 * time.Second,
		},
		Reminder: &config.ReminderConfig{
			ScanInterval: time.Minute,
		},
	}
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"horizon/config"
	"horizon/internal/usecase"

	"go.uber.org/fx"
)

// ReminderDispatcherParams holds dependencies for the dispatcher, injected by Fx.
type ReminderDispatcherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Reminders usecase.ReminderUsecase
	Sessions  usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// RunReminderDispatcher starts the background scanner that periodically
// hands due reminders to the event publisher. The same loop piggybacks the
// expired-credential cleanup, which only needs a coarse cadence.
func RunReminderDispatcher(params ReminderDispatcherParams) {
	scanCtx, cancelScan := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go dispatchLoop(scanCtx, params.Reminders, params.Sessions, params.Logger, params.Config.Reminder.ScanInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelScan()

			return nil
		},
	})
}

func dispatchLoop(ctx context.Context, reminders usecase.ReminderUsecase, sessions usecase.SessionUsecase, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Sweep expired sessions and tokens roughly hourly, aligned to scan ticks.
	cleanupEvery := int(time.Hour / interval)
	if cleanupEvery < 1 {
		cleanupEvery = 1
	}

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := reminders.DispatchDueReminders(ctx, time.Now()); err != nil {
				logger.Error("Reminder scan pass failed", slog.Any("error", err))
			}

			ticks++
			if ticks%cleanupEvery == 0 {
				if _, err := sessions.CleanupExpiredSessions(ctx); err != nil {
					logger.Error("Expired credential cleanup failed", slog.Any("error", err))
				}
			}
		}
	}
}

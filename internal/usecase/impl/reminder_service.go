package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "horizon/internal/delivery/context"
	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	"horizon/internal/domain/repository"
	"horizon/internal/domain/service"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dispatchBatchLimit caps how many due reminders one scan pass hands off.
// A backlog larger than this drains over successive passes.
const dispatchBatchLimit = 100

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	reminderRepo   repository.ReminderRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ReminderRepo   repository.ReminderRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo:   params.ReminderRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReminder schedules a reminder for the user.
func (srv *reminderService) CreateReminder(ctx context.Context, userID uuid.UUID, input *usecase.CreateReminderInput) (*entity.Reminder, error) {
	reminder := &entity.Reminder{
		UserID: userID,
		Title:  input.Title,
		Body:   input.Body,
		DueAt:  input.DueAt,
	}

	if err := srv.reminderRepo.CreateReminder(ctx, reminder); err != nil {
		srv.log(ctx).Error("Failed to create reminder", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to create reminder")
	}

	return reminder, nil
}

// GetReminder retrieves one of the user's reminders.
func (srv *reminderService) GetReminder(ctx context.Context, userID, reminderID uuid.UUID) (*entity.Reminder, error) {
	return srv.loadOwnedReminder(ctx, userID, reminderID)
}

// ListReminders retrieves the user's reminders, soonest due first.
func (srv *reminderService) ListReminders(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error) {
	reminders, err := srv.reminderRepo.FindRemindersByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list reminders", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to list reminders")
	}

	return reminders, nil
}

// UpdateReminder reschedules a reminder. Changing the due time clears the
// dispatched mark, so a reminder that already fired fires again at the new
// time.
func (srv *reminderService) UpdateReminder(ctx context.Context, userID, reminderID uuid.UUID, input *usecase.UpdateReminderInput) (*entity.Reminder, error) {
	reminder, err := srv.loadOwnedReminder(ctx, userID, reminderID)
	if err != nil {
		return nil, err
	}

	if !reminder.DueAt.Equal(input.DueAt) {
		reminder.DispatchedAt = nil
	}
	reminder.Title = input.Title
	reminder.Body = input.Body
	reminder.DueAt = input.DueAt

	if err := srv.reminderRepo.UpdateReminder(ctx, reminder); err != nil {
		srv.log(ctx).Error("Failed to update reminder", slog.Any("error", err), slog.Any("reminderID", reminderID))

		return nil, errors.Wrap(err, "failed to update reminder")
	}

	return reminder, nil
}

// DeleteReminder removes one of the user's reminders.
func (srv *reminderService) DeleteReminder(ctx context.Context, userID, reminderID uuid.UUID) error {
	if _, err := srv.loadOwnedReminder(ctx, userID, reminderID); err != nil {
		return err
	}

	if err := srv.reminderRepo.DeleteReminder(ctx, reminderID); err != nil {
		srv.log(ctx).Error("Failed to delete reminder", slog.Any("error", err), slog.Any("reminderID", reminderID))

		return errors.Wrap(err, "failed to delete reminder")
	}

	return nil
}

// DispatchDueReminders scans for due, undispatched reminders, publishes a
// due event for each and marks it dispatched. Publish failures leave the
// reminder unmarked; the next pass retries it. The mark itself is guarded
// in the repository, so a concurrent scanner never double-counts.
func (srv *reminderService) DispatchDueReminders(ctx context.Context, now time.Time) (int, error) {
	due, err := srv.reminderRepo.FindDueReminders(ctx, now, dispatchBatchLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to scan due reminders", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to scan due reminders")
	}

	dispatched := 0
	for _, reminder := range due {
		event := &service.ReminderDueEvent{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			ReminderID: reminder.ID.String(),
			UserID:     reminder.UserID.String(),
			Title:      reminder.Title,
			Body:       reminder.Body,
			DueAt:      reminder.DueAt.Format(time.RFC3339),
		}

		if err := srv.eventPublisher.PublishReminderDue(ctx, event); err != nil {
			srv.log(ctx).Error("Failed to publish due reminder",
				slog.Any("error", err),
				slog.Any("reminderID", reminder.ID),
			)

			continue
		}

		if err := srv.reminderRepo.MarkDispatched(ctx, reminder.ID, now); err != nil {
			// Already marked by a concurrent scanner, or the row vanished.
			// The event went out either way; the worker deduplicates on
			// delivery, so just log.
			if !errors.Is(err, repository.ErrReminderNotFound) {
				srv.log(ctx).Warn("Failed to mark reminder dispatched",
					slog.Any("error", err),
					slog.Any("reminderID", reminder.ID),
				)
			}

			continue
		}

		dispatched++
	}

	if dispatched > 0 {
		srv.log(ctx).Info("Due reminders dispatched", slog.Int("count", dispatched))
	}

	return dispatched, nil
}

// loadOwnedReminder loads a reminder and verifies it belongs to the user.
func (srv *reminderService) loadOwnedReminder(ctx context.Context, userID, reminderID uuid.UUID) (*entity.Reminder, error) {
	reminder, err := srv.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "reminder not found")
		}

		return nil, errors.Wrap(err, "failed to find reminder")
	}

	if reminder.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "reminder belongs to another user")
	}

	return reminder, nil
}

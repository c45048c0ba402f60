package usecase

import (
	"context"
	"time"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReminderInput defines the data required to schedule a reminder.
type CreateReminderInput struct {
	Title string
	Body  string
	DueAt time.Time
}

// UpdateReminderInput defines the data required to reschedule a reminder.
type UpdateReminderInput struct {
	Title string
	Body  string
	DueAt time.Time
}

// ReminderUsecase defines the interface for reminder management use cases.
type ReminderUsecase interface {
	// CreateReminder schedules a reminder for the user.
	CreateReminder(ctx context.Context, userID uuid.UUID, input *CreateReminderInput) (*entity.Reminder, error)

	// GetReminder retrieves one of the user's reminders.
	GetReminder(ctx context.Context, userID, reminderID uuid.UUID) (*entity.Reminder, error)

	// ListReminders retrieves the user's reminders, soonest due first.
	ListReminders(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error)

	// UpdateReminder reschedules a reminder; moving the due time forward
	// re-arms a reminder that already fired.
	UpdateReminder(ctx context.Context, userID, reminderID uuid.UUID, input *UpdateReminderInput) (*entity.Reminder, error)

	// DeleteReminder removes one of the user's reminders.
	DeleteReminder(ctx context.Context, userID, reminderID uuid.UUID) error

	// DispatchDueReminders scans for due, undispatched reminders, publishes
	// a due event for each and marks it dispatched. Returns the number of
	// reminders handed off. Called by the background scanner.
	DispatchDueReminders(ctx context.Context, now time.Time) (int, error)
}

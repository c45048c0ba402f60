// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"horizon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrReminderNotFound is returned when a reminder is not found.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderRepository defines the interface for reminder persistence.
type ReminderRepository interface {
	// CreateReminder persists a new reminder.
	CreateReminder(ctx context.Context, reminder *entity.Reminder) error

	// FindReminderByID retrieves a reminder by its unique ID.
	FindReminderByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error)

	// FindRemindersByUser retrieves all reminders for a user, soonest due first.
	FindRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error)

	// FindDueReminders retrieves undispatched reminders whose due time is at
	// or before the given instant.
	FindDueReminders(ctx context.Context, due time.Time, limit int) ([]*entity.Reminder, error)

	// MarkDispatched records that the reminder was handed to the notification
	// pipeline, preventing duplicate dispatch.
	MarkDispatched(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdateReminder modifies an existing reminder.
	UpdateReminder(ctx context.Context, reminder *entity.Reminder) error

	// DeleteReminder removes a reminder by its ID.
	DeleteReminder(ctx context.Context, id uuid.UUID) error
}

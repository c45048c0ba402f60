package service

import (
	"context"
)

// ReminderDueEvent represents a due reminder handed off to the worker for
// push delivery.
type ReminderDueEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	ReminderID string `json:"reminder_id"`
	UserID     string `json:"user_id"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	DueAt      string `json:"due_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReminderDue publishes a due-reminder event for async processing
	PublishReminderDue(ctx context.Context, event *ReminderDueEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package handler

import (
	"testing"

	"horizon/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestBuildReminderNotification_UsesEventText(t *testing.T) {
	event := &service.ReminderDueEvent{
		ReminderID: "r-1",
		UserID:     "u-1",
		Title:      "買牛奶",
		Body:       "回家路上順便",
		DueAt:      "2026-08-31T10:00:00Z",
	}

	title, body, data := buildReminderNotification(event)

	assert.Equal(t, "買牛奶", title)
	assert.Equal(t, "回家路上順便", body)
	assert.Equal(t, "reminder_due", data["type"])
	assert.Equal(t, "r-1", data["reminder_id"])
	assert.Equal(t, "u-1", data["user_id"])
	assert.Equal(t, "2026-08-31T10:00:00Z", data["due_at"])
}

func TestBuildReminderNotification_EmptyBodyQuotesTitle(t *testing.T) {
	title, body, _ := buildReminderNotification(&service.ReminderDueEvent{Title: "買牛奶"})

	assert.Equal(t, "買牛奶", title)
	assert.Equal(t, "「買牛奶」時間到了", body)
}

func TestBuildReminderNotification_EmptyTitleSkipsQuotes(t *testing.T) {
	title, body, _ := buildReminderNotification(&service.ReminderDueEvent{})

	assert.Equal(t, "提醒事項", title)
	assert.Equal(t, "提醒時間到了", body)
	assert.NotContains(t, body, "「")
}

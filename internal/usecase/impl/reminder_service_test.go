package impl

import (
	"context"
	"testing"
	"time"

	"horizon/internal/domain/entity"
	"horizon/internal/domain/service"
	mockRepo "horizon/internal/mocks/repository"
	mockService "horizon/internal/mocks/service"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReminderService(t *testing.T) (*reminderService, *mockRepo.MockReminderRepository, *mockService.MockEventPublisher) {
	t.Helper()

	reminderRepo := mockRepo.NewMockReminderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewReminderService(ReminderServiceParams{
		ReminderRepo:   reminderRepo,
		EventPublisher: publisher,
		Logger:         newDiscardLogger(),
	})

	return svc.(*reminderService), reminderRepo, publisher
}

func TestReminderService_UpdateReminder_ReschedulingRearms(t *testing.T) {
	svc, reminderRepo, _ := newReminderService(t)
	ctx := context.Background()
	userID := uuid.New()
	reminderID := uuid.New()

	firedAt := time.Now().Add(-time.Hour)
	newDue := time.Now().Add(2 * time.Hour)

	reminderRepo.EXPECT().
		FindReminderByID(ctx, reminderID).
		Return(&entity.Reminder{
			ID:           reminderID,
			UserID:       userID,
			Title:        "water plants",
			DueAt:        firedAt,
			DispatchedAt: &firedAt,
		}, nil)
	reminderRepo.EXPECT().
		UpdateReminder(ctx, mock.MatchedBy(func(reminder *entity.Reminder) bool {
			return reminder.DispatchedAt == nil && reminder.DueAt.Equal(newDue)
		})).
		Return(nil)

	updated, err := svc.UpdateReminder(ctx, userID, reminderID, &usecase.UpdateReminderInput{
		Title: "water plants",
		DueAt: newDue,
	})

	require.NoError(t, err)
	assert.Nil(t, updated.DispatchedAt)
}

func TestReminderService_DispatchDueReminders_PublishesAndMarks(t *testing.T) {
	svc, reminderRepo, publisher := newReminderService(t)
	ctx := context.Background()
	now := time.Now()

	first := &entity.Reminder{ID: uuid.New(), UserID: uuid.New(), Title: "a", DueAt: now.Add(-time.Minute)}
	second := &entity.Reminder{ID: uuid.New(), UserID: uuid.New(), Title: "b", DueAt: now.Add(-time.Second)}

	reminderRepo.EXPECT().
		FindDueReminders(ctx, now, dispatchBatchLimit).
		Return([]*entity.Reminder{first, second}, nil)

	publisher.EXPECT().
		PublishReminderDue(ctx, mock.MatchedBy(func(event *service.ReminderDueEvent) bool {
			return event.ReminderID == first.ID.String()
		})).
		Return(nil)
	publisher.EXPECT().
		PublishReminderDue(ctx, mock.MatchedBy(func(event *service.ReminderDueEvent) bool {
			return event.ReminderID == second.ID.String()
		})).
		Return(nil)

	reminderRepo.EXPECT().MarkDispatched(ctx, first.ID, now).Return(nil)
	reminderRepo.EXPECT().MarkDispatched(ctx, second.ID, now).Return(nil)

	dispatched, err := svc.DispatchDueReminders(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 2, dispatched)
}

func TestReminderService_DispatchDueReminders_PublishFailureLeavesUnmarked(t *testing.T) {
	svc, reminderRepo, publisher := newReminderService(t)
	ctx := context.Background()
	now := time.Now()

	broken := &entity.Reminder{ID: uuid.New(), UserID: uuid.New(), Title: "a", DueAt: now.Add(-time.Minute)}
	healthy := &entity.Reminder{ID: uuid.New(), UserID: uuid.New(), Title: "b", DueAt: now.Add(-time.Second)}

	reminderRepo.EXPECT().
		FindDueReminders(ctx, now, dispatchBatchLimit).
		Return([]*entity.Reminder{broken, healthy}, nil)

	publisher.EXPECT().
		PublishReminderDue(ctx, mock.MatchedBy(func(event *service.ReminderDueEvent) bool {
			return event.ReminderID == broken.ID.String()
		})).
		Return(errors.New("broker unavailable"))
	publisher.EXPECT().
		PublishReminderDue(ctx, mock.MatchedBy(func(event *service.ReminderDueEvent) bool {
			return event.ReminderID == healthy.ID.String()
		})).
		Return(nil)

	// Only the successfully published reminder is marked; the other retries
	// on the next scan pass.
	reminderRepo.EXPECT().MarkDispatched(ctx, healthy.ID, now).Return(nil)

	dispatched, err := svc.DispatchDueReminders(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)
}

func TestReminderService_CreateReminder_Success(t *testing.T) {
	svc, reminderRepo, _ := newReminderService(t)
	ctx := context.Background()
	userID := uuid.New()
	dueAt := time.Now().Add(time.Hour)

	reminderRepo.EXPECT().
		CreateReminder(ctx, mock.AnythingOfType("*entity.Reminder")).
		Run(func(ctx context.Context, reminder *entity.Reminder) {
			reminder.ID = uuid.New()
		}).
		Return(nil)

	reminder, err := svc.CreateReminder(ctx, userID, &usecase.CreateReminderInput{
		Title: "standup",
		DueAt: dueAt,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, reminder.UserID)
	assert.Nil(t, reminder.DispatchedAt)
}

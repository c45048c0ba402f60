package postgres

import (
	"context"
	"time"

	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	"horizon/internal/domain/repository"
	"horizon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reminderRepository implements the domain.ReminderRepository interface using GORM.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// CreateReminder persists a new reminder.
func (repo *reminderRepository) CreateReminder(ctx context.Context, reminder *entity.Reminder) error {
	reminderM := fromReminderDomain(reminder)

	if err := repo.db.WithContext(ctx).Create(reminderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required reminder fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reminder")
	}

	reminder.ID = reminderM.ID
	reminder.CreatedAt = reminderM.CreatedAt
	reminder.UpdatedAt = reminderM.UpdatedAt

	return nil
}

// FindReminderByID retrieves a reminder by its unique ID.
func (repo *reminderRepository) FindReminderByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error) {
	var reminderM model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reminderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder by id")
	}

	return toReminderDomain(&reminderM), nil
}

// FindRemindersByUser retrieves all reminders for a user, soonest due first.
func (repo *reminderRepository) FindRemindersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error) {
	var reminderMs []model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_at ASC").
		Find(&reminderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reminders by user")
	}

	reminders := make([]*entity.Reminder, 0, len(reminderMs))
	for i := range reminderMs {
		reminders = append(reminders, toReminderDomain(&reminderMs[i]))
	}

	return reminders, nil
}

// FindDueReminders retrieves undispatched reminders whose due time is at or
// before the given instant, oldest first so backlogs drain in order.
func (repo *reminderRepository) FindDueReminders(ctx context.Context, due time.Time, limit int) ([]*entity.Reminder, error) {
	var reminderMs []model.ReminderModel

	if err := repo.db.WithContext(ctx).
		Where("due_at <= ? AND dispatched_at IS NULL", due).
		Order("due_at ASC").
		Limit(limit).
		Find(&reminderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due reminders")
	}

	reminders := make([]*entity.Reminder, 0, len(reminderMs))
	for i := range reminderMs {
		reminders = append(reminders, toReminderDomain(&reminderMs[i]))
	}

	return reminders, nil
}

// MarkDispatched records that the reminder was handed to the notification
// pipeline. The dispatched_at IS NULL guard makes the mark idempotent under
// concurrent scanners.
func (repo *reminderRepository) MarkDispatched(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("id = ? AND dispatched_at IS NULL", id).
		Update("dispatched_at", at)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark reminder dispatched")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// UpdateReminder modifies an existing reminder. Rescheduling clears the
// dispatch mark so the reminder fires again at its new due time.
func (repo *reminderRepository) UpdateReminder(ctx context.Context, reminder *entity.Reminder) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReminderModel{}).
		Where("id = ?", reminder.ID).
		Updates(map[string]any{
			"title":         reminder.Title,
			"body":          reminder.Body,
			"due_at":        reminder.DueAt,
			"dispatched_at": reminder.DispatchedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reminder")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// DeleteReminder removes a reminder by its ID.
func (repo *reminderRepository) DeleteReminder(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReminderModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reminder")
	}

	if result.RowsAffected == 0 {
		return repository.ErrReminderNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toReminderDomain(data *model.ReminderModel) *entity.Reminder {
	if data == nil {
		return nil
	}

	return &entity.Reminder{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Body:         data.Body,
		DueAt:        data.DueAt,
		DispatchedAt: data.DispatchedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromReminderDomain(data *entity.Reminder) *model.ReminderModel {
	if data == nil {
		return nil
	}

	return &model.ReminderModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Body:         data.Body,
		DueAt:        data.DueAt,
		DispatchedAt: data.DispatchedAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

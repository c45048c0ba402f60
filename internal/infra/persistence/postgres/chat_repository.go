package postgres

import (
	"context"

	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	"horizon/internal/domain/repository"
	"horizon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements the domain.ChatRepository interface using GORM.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// CreateThread persists a new thread together with its memberships.
// GORM inserts the Members association rows in the same statement batch.
func (repo *chatRepository) CreateThread(ctx context.Context, thread *entity.Thread) error {
	threadM := fromThreadDomain(thread)

	if err := repo.db.WithContext(ctx).Create(threadM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("thread member does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create thread")
	}

	thread.ID = threadM.ID
	thread.CreatedAt = threadM.CreatedAt
	thread.UpdatedAt = threadM.UpdatedAt

	return nil
}

// FindThreadByID retrieves a thread with its member list.
func (repo *chatRepository) FindThreadByID(ctx context.Context, id uuid.UUID) (*entity.Thread, error) {
	var threadM model.ThreadModel

	if err := repo.db.WithContext(ctx).
		Preload("Members").
		Where("id = ?", id).
		First(&threadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to find thread by id")
	}

	return toThreadDomain(&threadM), nil
}

// FindThreadsByUser retrieves all threads the user participates in,
// most recently updated first.
func (repo *chatRepository) FindThreadsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Thread, error) {
	var threadMs []model.ThreadModel

	if err := repo.db.WithContext(ctx).
		Preload("Members").
		Joins("JOIN thread_members ON thread_members.thread_id = threads.id").
		Where("thread_members.user_id = ?", userID).
		Order("threads.updated_at DESC").
		Find(&threadMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find threads by user")
	}

	threads := make([]*entity.Thread, 0, len(threadMs))
	for i := range threadMs {
		threads = append(threads, toThreadDomain(&threadMs[i]))
	}

	return threads, nil
}

// CreateMessage persists a new message. PostgreSQL assigns the sequence
// number; GORM writes it back into the model so the caller sees the final
// watermark position of the message.
func (repo *chatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("thread does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.Seq = messageM.Seq
	message.CreatedAt = messageM.CreatedAt

	// Touch the thread so recency ordering follows the latest message.
	repo.db.WithContext(ctx).
		Model(&model.ThreadModel{}).
		Where("id = ?", message.ThreadID).
		Update("updated_at", messageM.CreatedAt)

	return nil
}

// FindMessagesAfter retrieves up to limit messages whose sequence number is
// strictly greater than afterSeq, in ascending sequence order.
func (repo *chatRepository) FindMessagesAfter(ctx context.Context, threadID uuid.UUID, afterSeq int64, limit int) ([]*entity.Message, error) {
	var messageMs []model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("thread_id = ? AND seq > ?", threadID, afterSeq).
		Order("seq ASC").
		Limit(limit).
		Find(&messageMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages after seq")
	}

	messages := make([]*entity.Message, 0, len(messageMs))
	for i := range messageMs {
		messages = append(messages, toMessageDomain(&messageMs[i]))
	}

	return messages, nil
}

// LatestSeq returns the highest sequence number in the thread, or zero when
// the thread has no messages.
func (repo *chatRepository) LatestSeq(ctx context.Context, threadID uuid.UUID) (int64, error) {
	var latest int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("thread_id = ?", threadID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&latest).Error; err != nil {
		return 0, errors.Wrap(err, "failed to query latest seq")
	}

	return latest, nil
}

// --- Mapper Functions ---

func toThreadDomain(data *model.ThreadModel) *entity.Thread {
	if data == nil {
		return nil
	}

	memberIDs := make([]uuid.UUID, 0, len(data.Members))
	for _, m := range data.Members {
		memberIDs = append(memberIDs, m.UserID)
	}

	return &entity.Thread{
		ID:        data.ID,
		Title:     data.Title,
		CreatedBy: data.CreatedBy,
		MemberIDs: memberIDs,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromThreadDomain(data *entity.Thread) *model.ThreadModel {
	if data == nil {
		return nil
	}

	members := make([]model.ThreadMemberModel, 0, len(data.MemberIDs))
	for _, id := range data.MemberIDs {
		members = append(members, model.ThreadMemberModel{UserID: id})
	}

	return &model.ThreadModel{
		ID:        data.ID,
		Title:     data.Title,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Members:   members,
	}
}

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:        data.ID,
		ThreadID:  data.ThreadID,
		SenderID:  data.SenderID,
		Body:      data.Body,
		Seq:       data.Seq,
		CreatedAt: data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:        data.ID,
		ThreadID:  data.ThreadID,
		SenderID:  data.SenderID,
		Body:      data.Body,
		CreatedAt: data.CreatedAt,
	}
}

package impl

import (
	"context"
	"testing"

	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	"horizon/internal/domain/repository"
	mockRepo "horizon/internal/mocks/repository"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChatService(t *testing.T) (*chatService, *mockRepo.MockChatRepository) {
	t.Helper()

	chatRepo := mockRepo.NewMockChatRepository(t)
	service := NewChatService(ChatServiceParams{
		ChatRepo: chatRepo,
		Logger:   newDiscardLogger(),
	})

	return service.(*chatService), chatRepo
}

func TestChatService_CreateThread_CreatorAlwaysMember(t *testing.T) {
	service, chatRepo := newChatService(t)
	ctx := context.Background()
	creator := uuid.New()
	friend := uuid.New()

	chatRepo.EXPECT().
		CreateThread(ctx, mock.AnythingOfType("*entity.Thread")).
		Run(func(ctx context.Context, thread *entity.Thread) {
			thread.ID = uuid.New()
		}).
		Return(nil)

	// The creator appears in the input list too; membership must not duplicate.
	thread, err := service.CreateThread(ctx, creator, &usecase.CreateThreadInput{
		Title:     "weekend plans",
		MemberIDs: []uuid.UUID{friend, creator},
	})

	require.NoError(t, err)
	assert.Equal(t, creator, thread.CreatedBy)
	assert.ElementsMatch(t, []uuid.UUID{creator, friend}, thread.MemberIDs)
}

func TestChatService_PostMessage_NonMemberForbidden(t *testing.T) {
	service, chatRepo := newChatService(t)
	ctx := context.Background()
	threadID := uuid.New()

	chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(&entity.Thread{ID: threadID, MemberIDs: []uuid.UUID{uuid.New()}}, nil)

	_, err := service.PostMessage(ctx, uuid.New(), threadID, &usecase.PostMessageInput{Body: "hi"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestChatService_PostMessage_MissingThreadSameError(t *testing.T) {
	service, chatRepo := newChatService(t)
	ctx := context.Background()
	threadID := uuid.New()

	chatRepo.EXPECT().FindThreadByID(ctx, threadID).Return(nil, repository.ErrThreadNotFound)

	_, err := service.PostMessage(ctx, uuid.New(), threadID, &usecase.PostMessageInput{Body: "hi"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestChatService_PostMessage_Success(t *testing.T) {
	service, chatRepo := newChatService(t)
	ctx := context.Background()
	userID := uuid.New()
	threadID := uuid.New()

	chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(&entity.Thread{ID: threadID, MemberIDs: []uuid.UUID{userID}}, nil)
	chatRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(ctx context.Context, message *entity.Message) {
			message.ID = uuid.New()
			message.Seq = 7
		}).
		Return(nil)

	message, err := service.PostMessage(ctx, userID, threadID, &usecase.PostMessageInput{Body: "hi"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), message.Seq)
	assert.Equal(t, userID, message.SenderID)
}

func TestChatService_ListMessagesAfter_Success(t *testing.T) {
	service, chatRepo := newChatService(t)
	ctx := context.Background()
	userID := uuid.New()
	threadID := uuid.New()

	chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(&entity.Thread{ID: threadID, MemberIDs: []uuid.UUID{userID}}, nil)
	chatRepo.EXPECT().
		FindMessagesAfter(ctx, threadID, int64(5), 50).
		Return([]*entity.Message{
			{ID: uuid.New(), ThreadID: threadID, Seq: 6},
			{ID: uuid.New(), ThreadID: threadID, Seq: 7},
		}, nil)

	messages, err := service.ListMessagesAfter(ctx, userID, threadID, 5, 50)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, int64(6), messages[0].Seq)
}

func TestChatService_LatestSeq_Success(t *testing.T) {
	service, chatRepo := newChatService(t)
	ctx := context.Background()
	userID := uuid.New()
	threadID := uuid.New()

	chatRepo.EXPECT().
		FindThreadByID(ctx, threadID).
		Return(&entity.Thread{ID: threadID, MemberIDs: []uuid.UUID{userID}}, nil)
	chatRepo.EXPECT().LatestSeq(ctx, threadID).Return(int64(42), nil)

	seq, err := service.LatestSeq(ctx, userID, threadID)

	require.NoError(t, err)
	assert.Equal(t, int64(42), seq)
}

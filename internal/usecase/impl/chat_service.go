package impl

import (
	"context"
	"log/slog"

	deliverycontext "horizon/internal/delivery/context"
	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	"horizon/internal/domain/repository"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface. Every operation on an
// existing thread starts with a membership check; non-members get the same
// ErrForbidden regardless of whether the thread exists.
type chatService struct {
	chatRepo repository.ChatRepository
	logger   *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo repository.ChatRepository
	Logger   *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo: params.ChatRepo,
		logger:   params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateThread opens a thread; the creator is always a member even when
// absent from the input list.
func (srv *chatService) CreateThread(ctx context.Context, userID uuid.UUID, input *usecase.CreateThreadInput) (*entity.Thread, error) {
	memberIDs := make([]uuid.UUID, 0, len(input.MemberIDs)+1)
	seen := map[uuid.UUID]bool{}
	for _, id := range append([]uuid.UUID{userID}, input.MemberIDs...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		memberIDs = append(memberIDs, id)
	}

	thread := &entity.Thread{
		Title:     input.Title,
		CreatedBy: userID,
		MemberIDs: memberIDs,
	}

	if err := srv.chatRepo.CreateThread(ctx, thread); err != nil {
		srv.log(ctx).Error("Failed to create thread", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to create thread")
	}
	srv.log(ctx).Info("Thread created", slog.Any("threadID", thread.ID), slog.Int("members", len(memberIDs)))

	return thread, nil
}

// GetThread retrieves a thread the user is a member of.
func (srv *chatService) GetThread(ctx context.Context, userID, threadID uuid.UUID) (*entity.Thread, error) {
	return srv.loadMemberThread(ctx, userID, threadID)
}

// ListThreads retrieves the user's threads, most recently active first.
func (srv *chatService) ListThreads(ctx context.Context, userID uuid.UUID) ([]*entity.Thread, error) {
	threads, err := srv.chatRepo.FindThreadsByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list threads", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to list threads")
	}

	return threads, nil
}

// PostMessage appends a message to a thread the user is a member of.
func (srv *chatService) PostMessage(ctx context.Context, userID, threadID uuid.UUID, input *usecase.PostMessageInput) (*entity.Message, error) {
	if _, err := srv.loadMemberThread(ctx, userID, threadID); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ThreadID: threadID,
		SenderID: userID,
		Body:     input.Body,
	}

	if err := srv.chatRepo.CreateMessage(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to post message", slog.Any("error", err), slog.Any("threadID", threadID))

		return nil, errors.Wrap(err, "failed to post message")
	}

	return message, nil
}

// ListMessagesAfter retrieves up to limit messages newer than afterSeq.
func (srv *chatService) ListMessagesAfter(ctx context.Context, userID, threadID uuid.UUID, afterSeq int64, limit int) ([]*entity.Message, error) {
	if _, err := srv.loadMemberThread(ctx, userID, threadID); err != nil {
		return nil, err
	}

	messages, err := srv.chatRepo.FindMessagesAfter(ctx, threadID, afterSeq, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list messages", slog.Any("error", err), slog.Any("threadID", threadID))

		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// LatestSeq returns the thread's current high-water sequence number.
func (srv *chatService) LatestSeq(ctx context.Context, userID, threadID uuid.UUID) (int64, error) {
	if _, err := srv.loadMemberThread(ctx, userID, threadID); err != nil {
		return 0, err
	}

	seq, err := srv.chatRepo.LatestSeq(ctx, threadID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read latest sequence")
	}

	return seq, nil
}

// loadMemberThread loads a thread and verifies the user's membership.
// A missing thread and a foreign thread produce the same error so the
// endpoint cannot be used to probe which threads exist.
func (srv *chatService) loadMemberThread(ctx context.Context, userID, threadID uuid.UUID) (*entity.Thread, error) {
	thread, err := srv.chatRepo.FindThreadByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "not a thread member")
		}

		return nil, errors.Wrap(err, "failed to find thread")
	}

	if !thread.HasMember(userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a thread member")
	}

	return thread, nil
}

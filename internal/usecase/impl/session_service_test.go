package impl

import (
	"context"
	"testing"
	"time"

	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	"horizon/internal/domain/repository"
	mockRepo "horizon/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (*sessionService, *mockRepo.MockTransactionManager, *mockRepo.MockSessionRepository, *mockRepo.MockActionTokenRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	actionTokenRepo := mockRepo.NewMockActionTokenRepository(t)

	service := NewSessionService(SessionServiceParams{
		TxManager:       txManager,
		SessionRepo:     sessionRepo,
		ActionTokenRepo: actionTokenRepo,
		Logger:          newDiscardLogger(),
	})

	return service.(*sessionService), txManager, sessionRepo, actionTokenRepo
}

func TestSessionService_GetActiveSessions_Success(t *testing.T) {
	service, _, sessionRepo, _ := newSessionService(t)
	ctx := context.Background()
	userID := uuid.New()

	stored := []*entity.Session{
		{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(2 * time.Hour)},
	}
	sessionRepo.EXPECT().FindSessionsByUserID(ctx, userID).Return(stored, nil)

	sessions, err := service.GetActiveSessions(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	service, txManager, _, _ := newSessionService(t)
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().
				FindSessionByID(ctx, sessionID).
				Return(&entity.Session{ID: sessionID, UserID: userID}, nil)
			mockSessionRepo.EXPECT().DeleteSession(ctx, sessionID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := service.RevokeSession(ctx, userID, sessionID)

	require.NoError(t, err)
}

func TestSessionService_RevokeSession_ForeignSessionForbidden(t *testing.T) {
	service, txManager, _, _ := newSessionService(t)
	ctx := context.Background()
	sessionID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().
				FindSessionByID(ctx, sessionID).
				Return(&entity.Session{ID: sessionID, UserID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrForbidden)

	err := service.RevokeSession(ctx, uuid.New(), sessionID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSessionService_RevokeAllOtherSessions_KeepsCurrent(t *testing.T) {
	service, _, sessionRepo, _ := newSessionService(t)
	ctx := context.Background()
	userID := uuid.New()
	currentID := uuid.New()
	otherID := uuid.New()

	sessionRepo.EXPECT().FindSessionsByUserID(ctx, userID).Return([]*entity.Session{
		{ID: currentID, UserID: userID},
		{ID: otherID, UserID: userID},
	}, nil)
	sessionRepo.EXPECT().DeleteSession(ctx, otherID).Return(nil)

	err := service.RevokeAllOtherSessions(ctx, userID, currentID)

	require.NoError(t, err)
}

func TestSessionService_CleanupExpiredSessions_SumsBothStores(t *testing.T) {
	service, _, sessionRepo, actionTokenRepo := newSessionService(t)
	ctx := context.Background()

	sessionRepo.EXPECT().DeleteExpiredSessions(ctx).Return(int64(3), nil)
	actionTokenRepo.EXPECT().DeleteExpiredActionTokens(ctx).Return(int64(2), nil)

	total, err := service.CleanupExpiredSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

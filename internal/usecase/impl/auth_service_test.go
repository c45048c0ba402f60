package impl

import (
	"context"
	"testing"
	"time"

	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	"horizon/internal/domain/repository"
	mockRepo "horizon/internal/mocks/repository"
	mockService "horizon/internal/mocks/service"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager       *mockRepo.MockTransactionManager
	userRepo        *mockRepo.MockUserRepository
	sessionRepo     *mockRepo.MockSessionRepository
	actionTokenRepo *mockRepo.MockActionTokenRepository
	hasher          *mockService.MockPasswordHasher
	googleAuth      *mockService.MockOAuthAuthService
	mailSender      *mockService.MockMailSender
	qrcode          *mockService.MockQRCodeService
}

func newAuthService(t *testing.T, maxActiveSessions int) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	mocks := &authServiceMocks{
		txManager:       mockRepo.NewMockTransactionManager(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
		sessionRepo:     mockRepo.NewMockSessionRepository(t),
		actionTokenRepo: mockRepo.NewMockActionTokenRepository(t),
		hasher:          mockService.NewMockPasswordHasher(t),
		googleAuth:      mockService.NewMockOAuthAuthService(t),
		mailSender:      mockService.NewMockMailSender(t),
		qrcode:          mockService.NewMockQRCodeService(t),
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:         mocks.txManager,
		UserRepo:          mocks.userRepo,
		SessionRepo:       mocks.sessionRepo,
		ActionTokenRepo:   mocks.actionTokenRepo,
		Hasher:            mocks.hasher,
		GoogleAuthService: mocks.googleAuth,
		MailSender:        mocks.mailSender,
		QRCodeService:     mocks.qrcode,
		Config:            newTestConfig(maxActiveSessions),
		Logger:            newDiscardLogger(),
	})

	return service, mocks
}

func TestAuthService_Register_Success(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()

	mocks.hasher.EXPECT().ValidatePasswordStrength("Sup3r-secret").Return(nil)
	mocks.hasher.EXPECT().Hash("Sup3r-secret").Return("hashed", nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "amy@example.com").
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
					assert.Equal(t, "hashed", auth.PasswordHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Amy",
		Email:    "amy@example.com",
		Password: "Sup3r-secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "amy@example.com", output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_Register_EmailAlreadyTaken(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()

	mocks.hasher.EXPECT().ValidatePasswordStrength("Sup3r-secret").Return(nil)
	mocks.hasher.EXPECT().Hash("Sup3r-secret").Return("hashed", nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "amy@example.com").
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserAlreadyExists)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Amy",
		Email:    "amy@example.com",
		Password: "Sup3r-secret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()

	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed",
	}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "amy@example.com").
				Return(authRecord, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	mocks.hasher.EXPECT().Check("nope", "hashed").Return(false)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "amy@example.com", Password: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@example.com").
				Return(nil, repository.ErrAuthNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrInvalidCredentials)

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_SessionLimitExceeded(t *testing.T) {
	service, mocks := newAuthService(t, 2)
	ctx := context.Background()
	userID := uuid.New()

	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed",
	}
	user := &entity.User{ID: userID, Email: "amy@example.com"}

	callCount := 0
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			callCount++
			mockFactory := mockRepo.NewMockRepositoryFactory(t)

			switch callCount {
			case 1:
				mockAuthRepo := mockRepo.NewMockAuthRepository(t)
				mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
				mockAuthRepo.EXPECT().
					FindAuthentication(ctx, entity.ProviderTypeEmail, "amy@example.com").
					Return(authRecord, nil)
			case 2:
				mockUserRepo := mockRepo.NewMockUserRepository(t)
				mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
				mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			}

			_ = fn(mockFactory)
		}).
		Return(nil).
		Times(2)

	mocks.hasher.EXPECT().Check("Sup3r-secret", "hashed").Return(true)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			callCount++
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(2, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrSessionLimitExceeded).
		Once()

	_, err := service.Login(ctx, &usecase.LoginInput{Email: "amy@example.com", Password: "Sup3r-secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestAuthService_ResolveSession_Success(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	rawToken, err := newOpaqueToken()
	require.NoError(t, err)

	storedSession := &entity.Session{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &entity.User{ID: userID, Email: "amy@example.com"}

	mocks.sessionRepo.EXPECT().FindSessionByTokenHash(ctx, hashToken(rawToken)).Return(storedSession, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	resolvedUser, resolvedSession, err := service.ResolveSession(ctx, rawToken)

	require.NoError(t, err)
	assert.Equal(t, userID, resolvedUser.ID)
	assert.Equal(t, storedSession.ID, resolvedSession.ID)
}

func TestAuthService_ResolveSession_FailuresCollapseToUnauthenticated(t *testing.T) {
	tests := []struct {
		name     string
		rawToken string
		repoErr  error
	}{
		{name: "empty token", rawToken: ""},
		{name: "unknown token", rawToken: "deadbeef", repoErr: repository.ErrSessionNotFound},
		{name: "expired token", rawToken: "deadbeef", repoErr: repository.ErrSessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mocks := newAuthService(t, 0)
			ctx := context.Background()

			if tt.repoErr != nil {
				mocks.sessionRepo.EXPECT().
					FindSessionByTokenHash(ctx, hashToken(tt.rawToken)).
					Return(nil, tt.repoErr)
			}

			_, _, err := service.ResolveSession(ctx, tt.rawToken)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()

	mocks.sessionRepo.EXPECT().
		DeleteSessionByTokenHash(ctx, hashToken("already-gone")).
		Return(repository.ErrSessionNotFound)

	err := service.Logout(ctx, "already-gone")

	require.NoError(t, err)
}

func TestAuthService_Logout_EmptyTokenIsNoop(t *testing.T) {
	service, _ := newAuthService(t, 0)

	require.NoError(t, service.Logout(context.Background(), ""))
}

func TestAuthService_RequestMagicLink_UnknownEmailReportsSuccess(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := service.RequestMagicLink(ctx, "ghost@example.com")

	require.NoError(t, err)
}

func TestAuthService_RequestMagicLink_IssuesAndMails(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "amy@example.com"}

	mocks.userRepo.EXPECT().FindByEmail(ctx, "amy@example.com").Return(user, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockActionTokenRepository(t)

			mockFactory.EXPECT().ActionTokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().
				DeleteActionTokensByUserID(ctx, userID, entity.TokenPurposeMagicLink).
				Return(nil)
			mockTokenRepo.EXPECT().
				CreateActionToken(ctx, mock.AnythingOfType("*entity.ActionToken")).
				Run(func(ctx context.Context, token *entity.ActionToken) {
					assert.Equal(t, userID, token.UserID)
					assert.Equal(t, entity.TokenPurposeMagicLink, token.Purpose)
					assert.NotEmpty(t, token.TokenHash)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	mocks.mailSender.EXPECT().
		Send(ctx, "amy@example.com", mock.AnythingOfType("string"), mock.MatchedBy(func(body string) bool {
			return len(body) > 0
		})).
		Return(nil)

	err := service.RequestMagicLink(ctx, "amy@example.com")

	require.NoError(t, err)
}

func TestAuthService_ConsumeMagicLink_Success(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	rawToken, err := newOpaqueToken()
	require.NoError(t, err)

	consumedToken := &entity.ActionToken{
		UserID:    userID,
		TokenHash: hashToken(rawToken),
		Purpose:   entity.TokenPurposeMagicLink,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	user := &entity.User{ID: userID, Email: "amy@example.com"}

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockActionTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().ActionTokenRepo().Return(mockTokenRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockTokenRepo.EXPECT().
				ConsumeActionToken(ctx, hashToken(rawToken), entity.TokenPurposeMagicLink).
				Return(consumedToken, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockSessionRepo.EXPECT().
				CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := service.ConsumeMagicLink(ctx, rawToken)

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
	assert.NotEmpty(t, output.RawToken)
}

func TestAuthService_ConsumeMagicLink_FailuresCollapseToInvalid(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "unknown or already consumed", repoErr: repository.ErrActionTokenNotFound},
		{name: "expired", repoErr: repository.ErrActionTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mocks := newAuthService(t, 0)
			ctx := context.Background()

			mocks.txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					mockTokenRepo := mockRepo.NewMockActionTokenRepository(t)

					mockFactory.EXPECT().ActionTokenRepo().Return(mockTokenRepo)
					mockTokenRepo.EXPECT().
						ConsumeActionToken(ctx, hashToken("stale"), entity.TokenPurposeMagicLink).
						Return(nil, tt.repoErr)

					_ = fn(mockFactory)
				}).
				Return(domainerrors.ErrActionTokenInvalid)

			_, err := service.ConsumeMagicLink(ctx, "stale")

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrActionTokenInvalid)
		})
	}
}

func TestAuthService_ConsumeMagicLink_SecondUseOfSameTokenIsInvalid(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	rawToken, err := newOpaqueToken()
	require.NoError(t, err)

	consumedToken := &entity.ActionToken{
		UserID:    userID,
		TokenHash: hashToken(rawToken),
		Purpose:   entity.TokenPurposeMagicLink,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	user := &entity.User{ID: userID, Email: "amy@example.com"}

	// First use: the consuming read deletes the row as it validates it.
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockActionTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().ActionTokenRepo().Return(mockTokenRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockTokenRepo.EXPECT().
				ConsumeActionToken(ctx, hashToken(rawToken), entity.TokenPurposeMagicLink).
				Return(consumedToken, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockSessionRepo.EXPECT().
				CreateSession(ctx, mock.AnythingOfType("*entity.Session")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()

	// Second use of the identical token: the row is gone, and the outcome is
	// indistinguishable from a token that never existed.
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockActionTokenRepository(t)

			mockFactory.EXPECT().ActionTokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().
				ConsumeActionToken(ctx, hashToken(rawToken), entity.TokenPurposeMagicLink).
				Return(nil, repository.ErrActionTokenNotFound)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrActionTokenInvalid).
		Once()

	output, err := service.ConsumeMagicLink(ctx, rawToken)
	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)

	_, err = service.ConsumeMagicLink(ctx, rawToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrActionTokenInvalid)
}

func TestAuthService_ConfirmPasswordReset_Success(t *testing.T) {
	service, mocks := newAuthService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	rawToken, err := newOpaqueToken()
	require.NoError(t, err)

	consumedToken := &entity.ActionToken{
		UserID:    userID,
		TokenHash: hashToken(rawToken),
		Purpose:   entity.TokenPurposePasswordReset,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	authRecord := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "old-hash",
	}

	mocks.hasher.EXPECT().ValidatePasswordStrength("N3w-secret!").Return(nil)
	mocks.hasher.EXPECT().Hash("N3w-secret!").Return("new-hash", nil)

	callCount := 0
	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			callCount++
			mockFactory := mockRepo.NewMockRepositoryFactory(t)

			if callCount == 1 {
				mockTokenRepo := mockRepo.NewMockActionTokenRepository(t)
				mockFactory.EXPECT().ActionTokenRepo().Return(mockTokenRepo)
				mockTokenRepo.EXPECT().
					ConsumeActionToken(ctx, hashToken(rawToken), entity.TokenPurposePasswordReset).
					Return(consumedToken, nil)
			} else {
				mockAuthRepo := mockRepo.NewMockAuthRepository(t)
				mockSessionRepo := mockRepo.NewMockSessionRepository(t)
				mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
				mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

				mockAuthRepo.EXPECT().
					FindAuthenticationByUserIDAndProvider(ctx, userID, entity.ProviderTypeEmail).
					Return(authRecord, nil)
				mockAuthRepo.EXPECT().
					UpdateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
						return auth.PasswordHash == "new-hash"
					})).
					Return(nil)
				mockSessionRepo.EXPECT().DeleteSessionsByUserID(ctx, userID).Return(nil)
			}

			_ = fn(mockFactory)
		}).
		Return(nil).
		Times(2)

	err = service.ConfirmPasswordReset(ctx, &usecase.ConfirmPasswordResetInput{
		RawToken:    rawToken,
		NewPassword: "N3w-secret!",
	})

	require.NoError(t, err)
}

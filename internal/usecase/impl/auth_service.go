package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"horizon/config"
	deliverycontext "horizon/internal/delivery/context"
	"horizon/internal/domain/entity"
	domainerrors "horizon/internal/domain/errors"
	"horizon/internal/domain/repository"
	"horizon/internal/domain/service"
	"horizon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	sessionRepo       repository.SessionRepository
	actionTokenRepo   repository.ActionTokenRepository
	hasher            service.PasswordHasher
	googleAuthService service.OAuthAuthService
	mailSender        service.MailSender
	qrcodeService     service.QRCodeService
	sessionCfg        *config.SessionConfig
	maxActiveSessions int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	SessionRepo       repository.SessionRepository
	ActionTokenRepo   repository.ActionTokenRepository
	Hasher            service.PasswordHasher
	GoogleAuthService service.OAuthAuthService
	MailSender        service.MailSender
	QRCodeService     service.QRCodeService
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		sessionRepo:       params.SessionRepo,
		actionTokenRepo:   params.ActionTokenRepo,
		hasher:            params.Hasher,
		googleAuthService: params.GoogleAuthService,
		mailSender:        params.MailSender,
		qrcodeService:     params.QRCodeService,
		sessionCfg:        params.Config.Session,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account with email/password credentials.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet security requirements")
	}

	// bcrypt is CPU-bound, hash outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}

		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies email/password credentials and opens a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	authRecord, err := srv.loadLoginAuth(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return nil, errors.Wrap(err, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load login authentication from primary")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, err := srv.loadLoginUser(ctx, authRecord.UserID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login user from primary")
	}

	output, err := srv.openSession(ctx, loggedInUser)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return output, nil
}

func (srv *authService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Load authentication from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		var findAuthErr error
		authRecord, findAuthErr = authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findAuthErr != nil {
			if errors.Is(findAuthErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findAuthErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login auth transaction")
	}

	return authRecord, nil
}

func (srv *authService) loadLoginUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var loggedInUser *entity.User

	// Load user data from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var findUserErr error
		loggedInUser, findUserErr = userRepo.FindByID(ctx, userID)
		if findUserErr != nil {
			return errors.Wrap(findUserErr, "failed to find user by id")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login user transaction")
	}

	return loggedInUser, nil
}

// GoogleLogin verifies a Google ID token and opens a session, creating the
// account on first sight.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Handling Google sign-in")

	// 1. Verify the ID token with Google.
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "failed to verify Google ID token")
	}

	var loggedInUser *entity.User
	var rawToken string
	var expiresAt time.Time

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)
		if err != nil {
			return err
		}
		loggedInUser = user

		rawToken, expiresAt, err = srv.storeSession(ctx, repoFactory.SessionRepo(), user.ID)

		return err
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Google sign-in transaction")
	}

	return &usecase.SessionOutput{
		RawToken:  rawToken,
		ExpiresAt: expiresAt,
		User:      loggedInUser,
	}, nil
}

// findOrCreateGoogleUser finds existing user or creates new one for Google authentication
func (srv *authService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	// Try to find existing authentication record
	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err != nil && !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// If user doesn't exist, create new one
	if errors.Is(err, repository.ErrAuthNotFound) {
		return srv.createGoogleUser(ctx, userRepo, authRepo, oauthUser)
	}

	// If user exists, fetch their data
	user, err := userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id for google auth")
	}

	return user, nil
}

// createGoogleUser creates a new user for Google authentication
func (srv *authService) createGoogleUser(ctx context.Context, userRepo repository.UserRepository, authRepo repository.AuthRepository, oauthUser *service.OAuthUser) (*entity.User, error) {
	srv.log(ctx).Info("Google user not found, creating new user", slog.String("email", oauthUser.Email))

	newUser := &entity.User{
		Name:  oauthUser.Name,
		Email: oauthUser.Email,
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for Google authentication")
	}

	newAuth := &entity.Authentication{
		UserID:         newUser.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}

	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create Google authentication")
	}

	return newUser, nil
}

// ResolveSession maps a raw session token to its user.
// Missing, unknown and expired tokens all collapse to ErrUnauthenticated so
// responses cannot be used to probe which failure occurred. Store failures
// fail closed.
func (srv *authService) ResolveSession(ctx context.Context, rawToken string) (*entity.User, *entity.Session, error) {
	if rawToken == "" {
		return nil, nil, errors.Wrap(domainerrors.ErrUnauthenticated, "no session token")
	}

	session, err := srv.sessionRepo.FindSessionByTokenHash(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session not resolvable")
		}

		return nil, nil, errors.Wrap(err, "failed to resolve session")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Session outlived its user; treat as unauthenticated.
			return nil, nil, errors.Wrap(domainerrors.ErrUnauthenticated, "session user gone")
		}

		return nil, nil, errors.Wrap(err, "failed to load session user")
	}

	return user, session, nil
}

// Logout revokes the session behind the raw token. Idempotent.
func (srv *authService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	srv.log(ctx).Info("Attempting to log out")

	if err := srv.sessionRepo.DeleteSessionByTokenHash(ctx, hashToken(rawToken)); err != nil {
		// A missing row means the session was already gone; logout succeeded.
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// RequestMagicLink issues a magic-link token and mails the login link.
// Always reports success so the endpoint is not an account-existence oracle.
func (srv *authService) RequestMagicLink(ctx context.Context, email string) error {
	consumeURL, err := srv.issueActionLink(ctx, email, entity.TokenPurposeMagicLink, srv.sessionCfg.MagicLinkTTL)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Magic link requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to issue magic link")
	}

	body := fmt.Sprintf("點擊以下連結登入：\n\n%s\n\n此連結 %s 內有效，且只能使用一次。", consumeURL, srv.sessionCfg.MagicLinkTTL)
	if err := srv.mailSender.Send(ctx, email, "登入連結", body); err != nil {
		// Fire and forget: the token is issued either way, mail transport
		// problems must not reveal anything to the caller.
		srv.log(ctx).Error("Failed to send magic link mail", slog.Any("error", err))
	}

	return nil
}

// MagicLinkQR issues a magic-link token and renders the consume URL as a
// PNG QR code, so a second device can scan it to log in.
func (srv *authService) MagicLinkQR(ctx context.Context, email string) ([]byte, error) {
	consumeURL, err := srv.issueActionLink(ctx, email, entity.TokenPurposeMagicLink, srv.sessionCfg.MagicLinkTTL)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "no account for email")
		}

		return nil, errors.Wrap(err, "failed to issue magic link")
	}

	png, err := srv.qrcodeService.GenerateLoginQR(consumeURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render magic link QR")
	}

	return png, nil
}

// issueActionLink issues a fresh single-use token for the account with that
// email and returns the consume URL carrying the raw token. Older
// outstanding tokens of the same purpose are invalidated first.
func (srv *authService) issueActionLink(ctx context.Context, email string, purpose entity.TokenPurpose, ttl time.Duration) (string, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	rawToken, err := newOpaqueToken()
	if err != nil {
		return "", err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.ActionTokenRepo()

		// A new link supersedes previous ones of the same purpose.
		if err := tokenRepo.DeleteActionTokensByUserID(ctx, user.ID, purpose); err != nil {
			return errors.Wrap(err, "failed to invalidate previous tokens")
		}

		token := &entity.ActionToken{
			UserID:    user.ID,
			TokenHash: hashToken(rawToken),
			Purpose:   purpose,
			ExpiresAt: time.Now().Add(ttl),
		}

		return tokenRepo.CreateActionToken(ctx, token)
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to execute action token transaction")
	}

	var path string
	switch purpose {
	case entity.TokenPurposeMagicLink:
		path = "/auth/magic-link/consume"
	case entity.TokenPurposePasswordReset:
		path = "/auth/password-reset/confirm"
	}

	return fmt.Sprintf("%s%s?token=%s", srv.sessionCfg.MagicLinkBaseURL, path, rawToken), nil
}

// ConsumeMagicLink destroys the single-use token and, when it was live,
// opens a session for its user. Unknown, expired and reused tokens all
// collapse to ErrActionTokenInvalid.
func (srv *authService) ConsumeMagicLink(ctx context.Context, rawToken string) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Consuming magic link")

	var user *entity.User
	var sessionToken string
	var expiresAt time.Time

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		token, err := repoFactory.ActionTokenRepo().ConsumeActionToken(ctx, hashToken(rawToken), entity.TokenPurposeMagicLink)
		if err != nil {
			if errors.Is(err, repository.ErrActionTokenNotFound) || errors.Is(err, repository.ErrActionTokenExpired) {
				return errors.Wrap(domainerrors.ErrActionTokenInvalid, "magic link not consumable")
			}

			return errors.Wrap(err, "failed to consume magic link token")
		}

		user, err = repoFactory.UserRepo().FindByID(ctx, token.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load magic link user")
		}

		sessionToken, expiresAt, err = srv.storeSession(ctx, repoFactory.SessionRepo(), user.ID)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Magic link consumption failed", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Magic link consumed", slog.Any("userID", user.ID))

	return &usecase.SessionOutput{
		RawToken:  sessionToken,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// RequestPasswordReset issues a reset token and mails the link, with the
// same anti-oracle behavior as RequestMagicLink.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	consumeURL, err := srv.issueActionLink(ctx, email, entity.TokenPurposePasswordReset, srv.sessionCfg.ResetTTL)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to issue password reset")
	}

	body := fmt.Sprintf("點擊以下連結重設密碼：\n\n%s\n\n此連結 %s 內有效，且只能使用一次。", consumeURL, srv.sessionCfg.ResetTTL)
	if err := srv.mailSender.Send(ctx, email, "重設密碼", body); err != nil {
		srv.log(ctx).Error("Failed to send password reset mail", slog.Any("error", err))
	}

	return nil
}

// ConfirmPasswordReset destroys the reset token, updates the password hash
// and revokes every session of the user. The token is destroyed even when
// the subsequent steps fail: a link that has been seen is never valid again.
func (srv *authService) ConfirmPasswordReset(ctx context.Context, input *usecase.ConfirmPasswordResetInput) error {
	srv.log(ctx).Info("Confirming password reset")

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		// Validation rejection must not burn the token, so consume only the
		// cheap checks before touching the store.
		return errors.Wrap(domainerrors.ErrValidationFailed, "password does not meet security requirements")
	}

	// bcrypt outside the transaction.
	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	// The token burn commits even when the password update below fails:
	// a first transaction consumes, a second applies.
	var userID uuid.UUID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		token, err := repoFactory.ActionTokenRepo().ConsumeActionToken(ctx, hashToken(input.RawToken), entity.TokenPurposePasswordReset)
		if err != nil {
			if errors.Is(err, repository.ErrActionTokenNotFound) || errors.Is(err, repository.ErrActionTokenExpired) {
				return errors.Wrap(domainerrors.ErrActionTokenInvalid, "reset token not consumable")
			}

			return errors.Wrap(err, "failed to consume reset token")
		}
		userID = token.UserID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthenticationByUserIDAndProvider(ctx, userID, entity.ProviderTypeEmail)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrActionTokenInvalid, "no password credential for user")
			}

			return errors.Wrap(err, "failed to load password credential")
		}

		authRecord.PasswordHash = hashedPassword
		if err := authRepo.UpdateAuthentication(ctx, authRecord); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		// A reset means the old password may be compromised; end every
		// session so stolen cookies die with it.
		if err := repoFactory.SessionRepo().DeleteSessionsByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions after reset")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to apply password reset", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to apply password reset")
	}
	srv.log(ctx).Info("Password reset completed", slog.Any("userID", userID))

	return nil
}

// GetUser loads the current user's identity.
func (srv *authService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// openSession creates a session for the user, honoring the active-session
// limit when one is configured.
func (srv *authService) openSession(ctx context.Context, user *entity.User) (*usecase.SessionOutput, error) {
	var rawToken string
	var expiresAt time.Time

	if srv.maxActiveSessions > 0 {
		// When session limit is enabled, keep count/insert in one short transaction.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var err error
			rawToken, expiresAt, err = srv.storeSession(ctx, repoFactory.SessionRepo(), user.ID)

			return err
		}); err != nil {
			return nil, errors.Wrap(err, "failed to execute session transaction")
		}
	} else {
		// No session limit: direct insert avoids unnecessary transaction overhead.
		var err error
		rawToken, expiresAt, err = srv.storeSession(ctx, srv.sessionRepo, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &usecase.SessionOutput{
		RawToken:  rawToken,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// storeSession generates a raw token and persists its hash. The caller
// receives the only copy of the raw token that will ever exist.
func (srv *authService) storeSession(ctx context.Context, sessionRepo repository.SessionRepository, userID uuid.UUID) (string, time.Time, error) {
	// Defensive: check maxActiveSessions here because storeSession is called
	// from multiple sites (login, Google sign-in, magic link), not only openSession.
	if srv.maxActiveSessions > 0 {
		activeSessions, err := sessionRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return "", time.Time{}, errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return "", time.Time{}, errors.Wrap(
				domainerrors.ErrSessionLimitExceeded,
				"active session limit exceeded",
			)
		}
	}

	rawToken, err := newOpaqueToken()
	if err != nil {
		return "", time.Time{}, err
	}

	expiresAt := time.Now().Add(srv.sessionCfg.TTL)
	newSession := &entity.Session{
		UserID:    userID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: expiresAt,
	}

	if err := sessionRepo.CreateSession(ctx, newSession); err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to store session")
	}

	return rawToken, expiresAt, nil
}

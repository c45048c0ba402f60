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

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager       repository.TransactionManager
	sessionRepo     repository.SessionRepository
	actionTokenRepo repository.ActionTokenRepository
	logger          *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	SessionRepo     repository.SessionRepository
	ActionTokenRepo repository.ActionTokenRepository
	Logger          *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:       params.TxManager,
		sessionRepo:     params.SessionRepo,
		actionTokenRepo: params.ActionTokenRepo,
		logger:          params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetActiveSessions lists the user's live sessions, newest first.
func (srv *sessionService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	sessions, err := srv.sessionRepo.FindSessionsByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to get active sessions", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to get active sessions")
	}

	return sessions, nil
}

// RevokeSession ends one session after verifying it belongs to the user.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		session, err := sessionRepo.FindSessionByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		// Ownership check: a user may only revoke their own sessions.
		if session.UserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "session belongs to another user")
		}

		if err := sessionRepo.DeleteSession(ctx, sessionID); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to revoke session",
			slog.Any("error", err),
			slog.Any("userID", userID),
			slog.Any("sessionID", sessionID),
		)

		return err
	}
	srv.log(ctx).Info("Session revoked", slog.Any("userID", userID), slog.Any("sessionID", sessionID))

	return nil
}

// RevokeAllSessions ends every session of the user (logout everywhere).
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	if err := srv.sessionRepo.DeleteSessionsByUserID(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to revoke all sessions", slog.Any("error", err), slog.Any("userID", userID))

		return errors.Wrap(err, "failed to revoke all sessions")
	}
	srv.log(ctx).Info("All sessions revoked", slog.Any("userID", userID))

	return nil
}

// RevokeAllOtherSessions ends every session except the current one.
func (srv *sessionService) RevokeAllOtherSessions(ctx context.Context, userID uuid.UUID, currentSessionID uuid.UUID) error {
	sessions, err := srv.sessionRepo.FindSessionsByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to list sessions")
	}

	for _, session := range sessions {
		if session.ID == currentSessionID {
			continue
		}

		if err := srv.sessionRepo.DeleteSession(ctx, session.ID); err != nil {
			// Keep going: a session that vanished mid-loop is already revoked.
			srv.log(ctx).Warn("Failed to revoke session during bulk revoke",
				slog.Any("error", err),
				slog.Any("sessionID", session.ID),
			)
		}
	}
	srv.log(ctx).Info("Other sessions revoked", slog.Any("userID", userID), slog.Any("currentSessionID", currentSessionID))

	return nil
}

// CleanupExpiredSessions removes expired sessions and action tokens.
// Intended for periodic invocation; returns the number of rows removed.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int, error) {
	sessionCount, err := srv.sessionRepo.DeleteExpiredSessions(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to clean up expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to clean up expired sessions")
	}

	tokenCount, err := srv.actionTokenRepo.DeleteExpiredActionTokens(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to clean up expired action tokens", slog.Any("error", err))

		return int(sessionCount), errors.Wrap(err, "failed to clean up expired action tokens")
	}

	total := int(sessionCount + tokenCount)
	if total > 0 {
		srv.log(ctx).Info("Expired credentials cleaned up",
			slog.Int64("sessions", sessionCount),
			slog.Int64("actionTokens", tokenCount),
		)
	}

	return total, nil
}

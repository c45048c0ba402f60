package impl

import (
	"context"
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

// noteService implements the NoteUsecase interface. List reads go through
// the short-TTL request cache; every mutation invalidates the owner's
// cached entries.
type noteService struct {
	noteRepo repository.NoteRepository
	cache    service.RequestCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NoteServiceParams holds dependencies for NoteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	NoteRepo repository.NoteRepository
	Cache    service.RequestCache
	Config   *config.Config
	Logger   *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		noteRepo: params.NoteRepo,
		cache:    params.Cache,
		cacheTTL: params.Config.Cache.TTL,
		logger:   params.Logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateNote creates a note owned by the user.
func (srv *noteService) CreateNote(ctx context.Context, userID uuid.UUID, input *usecase.CreateNoteInput) (*entity.Note, error) {
	note := &entity.Note{
		UserID: userID,
		Title:  input.Title,
		Body:   input.Body,
		Pinned: input.Pinned,
	}

	if err := srv.noteRepo.CreateNote(ctx, note); err != nil {
		srv.log(ctx).Error("Failed to create note", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to create note")
	}

	srv.cache.InvalidatePrefix(noteCachePrefix(userID))

	return note, nil
}

// GetNote retrieves one of the user's notes.
func (srv *noteService) GetNote(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error) {
	return srv.loadOwnedNote(ctx, userID, noteID)
}

// ListNotes retrieves the user's notes, pinned first then newest first.
func (srv *noteService) ListNotes(ctx context.Context, userID uuid.UUID) ([]*entity.Note, error) {
	cacheKey := noteCachePrefix(userID)

	if cached, ok := srv.cache.Get(cacheKey, srv.cacheTTL); ok {
		if notes, ok := cached.([]*entity.Note); ok {
			return notes, nil
		}
	}

	notes, err := srv.noteRepo.FindNotesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list notes", slog.Any("error", err), slog.Any("userID", userID))

		return nil, errors.Wrap(err, "failed to list notes")
	}

	srv.cache.Set(cacheKey, notes)

	return notes, nil
}

// UpdateNote modifies one of the user's notes.
func (srv *noteService) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, input *usecase.UpdateNoteInput) (*entity.Note, error) {
	note, err := srv.loadOwnedNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	note.Title = input.Title
	note.Body = input.Body
	note.Pinned = input.Pinned

	if err := srv.noteRepo.UpdateNote(ctx, note); err != nil {
		srv.log(ctx).Error("Failed to update note", slog.Any("error", err), slog.Any("noteID", noteID))

		return nil, errors.Wrap(err, "failed to update note")
	}

	srv.cache.InvalidatePrefix(noteCachePrefix(userID))

	return note, nil
}

// DeleteNote removes one of the user's notes.
func (srv *noteService) DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error {
	if _, err := srv.loadOwnedNote(ctx, userID, noteID); err != nil {
		return err
	}

	if err := srv.noteRepo.DeleteNote(ctx, noteID); err != nil {
		srv.log(ctx).Error("Failed to delete note", slog.Any("error", err), slog.Any("noteID", noteID))

		return errors.Wrap(err, "failed to delete note")
	}

	srv.cache.InvalidatePrefix(noteCachePrefix(userID))

	return nil
}

// loadOwnedNote loads a note and verifies it belongs to the user.
func (srv *noteService) loadOwnedNote(ctx context.Context, userID, noteID uuid.UUID) (*entity.Note, error) {
	note, err := srv.noteRepo.FindNoteByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "note not found")
		}

		return nil, errors.Wrap(err, "failed to find note")
	}

	if note.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "note belongs to another user")
	}

	return note, nil
}

func noteCachePrefix(userID uuid.UUID) string {
	return "notes:" + userID.String()
}

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

func newNoteService(t *testing.T) (*noteService, *mockRepo.MockNoteRepository, *mockService.MockRequestCache) {
	t.Helper()

	noteRepo := mockRepo.NewMockNoteRepository(t)
	cache := mockService.NewMockRequestCache(t)

	service := NewNoteService(NoteServiceParams{
		NoteRepo: noteRepo,
		Cache:    cache,
		Config:   newTestConfig(0),
		Logger:   newDiscardLogger(),
	})

	return service.(*noteService), noteRepo, cache
}

func TestNoteService_ListNotes_CacheMissThenStore(t *testing.T) {
	service, noteRepo, cache := newNoteService(t)
	ctx := context.Background()
	userID := uuid.New()
	cacheKey := "notes:" + userID.String()

	notes := []*entity.Note{
		{ID: uuid.New(), UserID: userID, Title: "pinned", Pinned: true},
		{ID: uuid.New(), UserID: userID, Title: "recent"},
	}

	cache.EXPECT().Get(cacheKey, 3*time.Second).Return(nil, false)
	noteRepo.EXPECT().FindNotesByUser(ctx, userID).Return(notes, nil)
	cache.EXPECT().Set(cacheKey, mock.Anything)

	listed, err := service.ListNotes(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestNoteService_ListNotes_CacheHitSkipsRepository(t *testing.T) {
	service, _, cache := newNoteService(t)
	ctx := context.Background()
	userID := uuid.New()
	cacheKey := "notes:" + userID.String()

	cached := []*entity.Note{{ID: uuid.New(), UserID: userID, Title: "cached"}}
	cache.EXPECT().Get(cacheKey, 3*time.Second).Return(cached, true)

	listed, err := service.ListNotes(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "cached", listed[0].Title)
}

func TestNoteService_CreateNote_InvalidatesUserCache(t *testing.T) {
	service, noteRepo, cache := newNoteService(t)
	ctx := context.Background()
	userID := uuid.New()

	noteRepo.EXPECT().
		CreateNote(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(ctx context.Context, note *entity.Note) {
			note.ID = uuid.New()
		}).
		Return(nil)
	cache.EXPECT().InvalidatePrefix("notes:" + userID.String())

	note, err := service.CreateNote(ctx, userID, &usecase.CreateNoteInput{Title: "todo", Body: "buy milk"})

	require.NoError(t, err)
	assert.Equal(t, userID, note.UserID)
	assert.NotEqual(t, uuid.Nil, note.ID)
}

func TestNoteService_GetNote_ForeignNoteForbidden(t *testing.T) {
	service, noteRepo, _ := newNoteService(t)
	ctx := context.Background()
	noteID := uuid.New()

	noteRepo.EXPECT().
		FindNoteByID(ctx, noteID).
		Return(&entity.Note{ID: noteID, UserID: uuid.New()}, nil)

	_, err := service.GetNote(ctx, uuid.New(), noteID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNoteService_GetNote_MissingNote(t *testing.T) {
	service, noteRepo, _ := newNoteService(t)
	ctx := context.Background()
	noteID := uuid.New()

	noteRepo.EXPECT().FindNoteByID(ctx, noteID).Return(nil, repository.ErrNoteNotFound)

	_, err := service.GetNote(ctx, uuid.New(), noteID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestNoteService_DeleteNote_InvalidatesUserCache(t *testing.T) {
	service, noteRepo, cache := newNoteService(t)
	ctx := context.Background()
	userID := uuid.New()
	noteID := uuid.New()

	noteRepo.EXPECT().
		FindNoteByID(ctx, noteID).
		Return(&entity.Note{ID: noteID, UserID: userID}, nil)
	noteRepo.EXPECT().DeleteNote(ctx, noteID).Return(nil)
	cache.EXPECT().InvalidatePrefix("notes:" + userID.String())

	err := service.DeleteNote(ctx, userID, noteID)

	require.NoError(t, err)
}

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
	"gorm.io/plugin/dbresolver"
)

// noteRepository implements the domain.NoteRepository interface using GORM.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{
		db: db,
	}
}

// CreateNote persists a new note.
func (repo *noteRepository) CreateNote(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("user does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required note fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// FindNoteByID retrieves a note by its unique ID.
func (repo *noteRepository) FindNoteByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	var noteM model.NoteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&noteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note by id")
	}

	return toNoteDomain(&noteM), nil
}

// FindNotesByUser retrieves all notes for a user, pinned first then newest first.
// The list is read-heavy and tolerates replica lag, so it is routed to a
// read replica when one is configured.
func (repo *noteRepository) FindNotesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Note, error) {
	var noteMs []model.NoteModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ?", userID).
		Order("pinned DESC, updated_at DESC").
		Find(&noteMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notes by user")
	}

	notes := make([]*entity.Note, 0, len(noteMs))
	for i := range noteMs {
		notes = append(notes, toNoteDomain(&noteMs[i]))
	}

	return notes, nil
}

// UpdateNote modifies an existing note.
func (repo *noteRepository) UpdateNote(ctx context.Context, note *entity.Note) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ?", note.ID).
		Updates(map[string]any{
			"title":  note.Title,
			"body":   note.Body,
			"pinned": note.Pinned,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// DeleteNote removes a note by its ID.
func (repo *noteRepository) DeleteNote(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.NoteModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNoteDomain(data *model.NoteModel) *entity.Note {
	if data == nil {
		return nil
	}

	return &entity.Note{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Pinned:    data.Pinned,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromNoteDomain(data *entity.Note) *model.NoteModel {
	if data == nil {
		return nil
	}

	return &model.NoteModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Pinned:    data.Pinned,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

package database

import (
	"contentpilot/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentPieceRepo struct {
	db *gorm.DB
}

func NewContentPieceRepo(db *gorm.DB) *ContentPieceRepo {
	return &ContentPieceRepo{db}
}

// FindByWorkspace returns all content pieces in a workspace, newest first.
// When status is non-empty the result is filtered to that status.
func (r *ContentPieceRepo) FindByWorkspace(workspaceID, status string) ([]*models.ContentPiece, error) {
	query := r.db.Where("workspace_id = ?", workspaceID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var pieces []*models.ContentPiece
	err := query.Order("created_at DESC").Find(&pieces).Error
	return pieces, err
}

// FindByID returns a content piece by its ID
func (r *ContentPieceRepo) FindByID(id uuid.UUID) (*models.ContentPiece, error) {
	var piece models.ContentPiece
	err := r.db.First(&piece, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &piece, nil
}

// Add inserts a new content piece into the database
func (r *ContentPieceRepo) Add(piece *models.ContentPiece) error {
	return r.db.Create(piece).Error
}

// Update updates an existing content piece in the database
func (r *ContentPieceRepo) Update(piece *models.ContentPiece) error {
	return r.db.Save(piece).Error
}

// Delete removes a content piece from the database by id
func (r *ContentPieceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ContentPiece{}, "id = ?", id).Error
}

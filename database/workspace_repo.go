package database

import (
	"contentpilot/models"

	"gorm.io/gorm"
)

type WorkspaceRepo struct {
	db *gorm.DB
}

func NewWorkspaceRepo(db *gorm.DB) *WorkspaceRepo {
	return &WorkspaceRepo{db}
}

// FindByUserID returns the workspace owned by the given user, or
// gorm.ErrRecordNotFound when none exists yet.
func (r *WorkspaceRepo) FindByUserID(userID string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := r.db.Where("user_id = ?", userID).First(&workspace).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// FindByID returns a workspace by its ID
func (r *WorkspaceRepo) FindByID(id string) (*models.Workspace, error) {
	var workspace models.Workspace
	err := r.db.First(&workspace, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

// Add inserts a new workspace into the database
func (r *WorkspaceRepo) Add(workspace *models.Workspace) error {
	return r.db.Create(workspace).Error
}

// Update updates an existing workspace in the database
func (r *WorkspaceRepo) Update(workspace *models.Workspace) error {
	return r.db.Save(workspace).Error
}

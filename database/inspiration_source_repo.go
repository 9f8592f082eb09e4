package database

import (
	"time"

	"contentpilot/models"

	"gorm.io/gorm"
)

type InspirationSourceRepo struct {
	db *gorm.DB
}

func NewInspirationSourceRepo(db *gorm.DB) *InspirationSourceRepo {
	return &InspirationSourceRepo{db}
}

// FindByWorkspace returns all inspiration sources in a workspace, newest first
func (r *InspirationSourceRepo) FindByWorkspace(workspaceID string) ([]*models.InspirationSource, error) {
	var sources []*models.InspirationSource
	err := r.db.Where("workspace_id = ?", workspaceID).Order("created_at DESC").Find(&sources).Error
	return sources, err
}

// FindActiveByWorkspace returns the workspace's sources that are enabled for scraping
func (r *InspirationSourceRepo) FindActiveByWorkspace(workspaceID string) ([]*models.InspirationSource, error) {
	var sources []*models.InspirationSource
	err := r.db.Where("workspace_id = ? AND is_active = ?", workspaceID, true).Order("created_at ASC").Find(&sources).Error
	return sources, err
}

// FindAllActive returns every active source across all workspaces, used by the
// auto-refresh scheduler.
func (r *InspirationSourceRepo) FindAllActive() ([]*models.InspirationSource, error) {
	var sources []*models.InspirationSource
	err := r.db.Where("is_active = ?", true).Order("workspace_id ASC, created_at ASC").Find(&sources).Error
	return sources, err
}

// FindByID returns an inspiration source by its ID
func (r *InspirationSourceRepo) FindByID(id string) (*models.InspirationSource, error) {
	var source models.InspirationSource
	err := r.db.First(&source, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// Add inserts a new inspiration source into the database
func (r *InspirationSourceRepo) Add(source *models.InspirationSource) error {
	return r.db.Create(source).Error
}

// Update updates an existing inspiration source in the database
func (r *InspirationSourceRepo) Update(source *models.InspirationSource) error {
	return r.db.Save(source).Error
}

// MarkScraped stamps the source's last_scraped time
func (r *InspirationSourceRepo) MarkScraped(id string, at time.Time) error {
	return r.db.Model(&models.InspirationSource{}).Where("id = ?", id).Update("last_scraped", at).Error
}

// Delete removes an inspiration source from the database by id
func (r *InspirationSourceRepo) Delete(id string) error {
	return r.db.Delete(&models.InspirationSource{}, "id = ?", id).Error
}

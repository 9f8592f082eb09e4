package database

import (
	"time"

	"contentpilot/models"

	"gorm.io/gorm"
)

type SocialProfileRepo struct {
	db *gorm.DB
}

func NewSocialProfileRepo(db *gorm.DB) *SocialProfileRepo {
	return &SocialProfileRepo{db}
}

// FindByWorkspace returns all social profiles in a workspace in creation order
func (r *SocialProfileRepo) FindByWorkspace(workspaceID string) ([]*models.SocialProfile, error) {
	var profiles []*models.SocialProfile
	err := r.db.Where("workspace_id = ?", workspaceID).Order("created_at ASC").Find(&profiles).Error
	return profiles, err
}

// FindByID returns a social profile by its ID
func (r *SocialProfileRepo) FindByID(id string) (*models.SocialProfile, error) {
	var profile models.SocialProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByGroup returns the profiles that make up one writing profile: rows
// sharing the group id, or the single row whose own id matches.
func (r *SocialProfileRepo) FindByGroup(workspaceID, groupID string) ([]*models.SocialProfile, error) {
	var profiles []*models.SocialProfile
	err := r.db.Where("workspace_id = ? AND (profile_group = ? OR id = ?)", workspaceID, groupID, groupID).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

// Add inserts a new social profile into the database
func (r *SocialProfileRepo) Add(profile *models.SocialProfile) error {
	return r.db.Create(profile).Error
}

// AddAll inserts a batch of social profiles in one statement
func (r *SocialProfileRepo) AddAll(profiles []*models.SocialProfile) error {
	if len(profiles) == 0 {
		return nil
	}
	return r.db.Create(profiles).Error
}

// Update updates an existing social profile in the database
func (r *SocialProfileRepo) Update(profile *models.SocialProfile) error {
	return r.db.Save(profile).Error
}

// MarkAnalyzed stamps last_analyzed on every profile in the given group
func (r *SocialProfileRepo) MarkAnalyzed(workspaceID, groupID string, at time.Time) error {
	return r.db.Model(&models.SocialProfile{}).
		Where("workspace_id = ? AND (profile_group = ? OR id = ?)", workspaceID, groupID, groupID).
		Update("last_analyzed", at).Error
}

// Delete removes a social profile from the database by id
func (r *SocialProfileRepo) Delete(id string) error {
	return r.db.Delete(&models.SocialProfile{}, "id = ?", id).Error
}

// DeleteByGroup removes every profile belonging to a writing profile group
func (r *SocialProfileRepo) DeleteByGroup(workspaceID, groupID string) (int64, error) {
	result := r.db.Delete(&models.SocialProfile{}, "workspace_id = ? AND (profile_group = ? OR id = ?)", workspaceID, groupID, groupID)
	return result.RowsAffected, result.Error
}

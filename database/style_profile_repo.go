package database

import (
	"contentpilot/models"

	"gorm.io/gorm"
)

type StyleProfileRepo struct {
	db *gorm.DB
}

func NewStyleProfileRepo(db *gorm.DB) *StyleProfileRepo {
	return &StyleProfileRepo{db}
}

// FindLatestByProfileID returns the most recent style profile recorded for the
// given anchor profile, or gorm.ErrRecordNotFound when it was never analyzed.
func (r *StyleProfileRepo) FindLatestByProfileID(profileID string) (*models.StyleProfile, error) {
	var profile models.StyleProfile
	err := r.db.Where("profile_id = ?", profileID).Order("created_at DESC").First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindLatestByProfileIDs returns the newest style profile per anchor id, for
// loading many writing profiles in one pass.
func (r *StyleProfileRepo) FindLatestByProfileIDs(profileIDs []string) (map[string]*models.StyleProfile, error) {
	latest := make(map[string]*models.StyleProfile, len(profileIDs))
	if len(profileIDs) == 0 {
		return latest, nil
	}
	var profiles []*models.StyleProfile
	err := r.db.Where("profile_id IN ?", profileIDs).Order("created_at ASC").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		latest[p.ProfileID] = p
	}
	return latest, nil
}

// Add inserts a new style profile into the database
func (r *StyleProfileRepo) Add(profile *models.StyleProfile) error {
	return r.db.Create(profile).Error
}

// DeleteByProfileID removes every style profile recorded for an anchor profile
func (r *StyleProfileRepo) DeleteByProfileID(profileID string) error {
	return r.db.Delete(&models.StyleProfile{}, "profile_id = ?", profileID).Error
}

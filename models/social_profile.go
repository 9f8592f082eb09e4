package models

import (
	"time"
)

// SocialProfile is one social-media source belonging to a writing profile.
// Rows sharing a ProfileGroup are analyzed together as one person's voice;
// rows without a group stand alone.
type SocialProfile struct {
	ID           string     `json:"id" db:"id" gorm:"type:text;primaryKey"`
	WorkspaceID  string     `json:"workspaceId" db:"workspace_id" gorm:"type:text;not null;index"`
	Platform     Platform   `json:"platform" db:"platform" gorm:"type:text;not null"`
	ProfileURL   string     `json:"profileUrl" db:"profile_url" gorm:"type:text;not null"`
	Username     string     `json:"username" db:"username" gorm:"type:text"`
	ProfileName  string     `json:"profileName,omitempty" db:"profile_name" gorm:"type:text"`
	ProfileGroup string     `json:"profileGroup,omitempty" db:"profile_group" gorm:"type:text;index"`
	IsActive     bool       `json:"isActive" db:"is_active" gorm:"not null;default:true"`
	LastAnalyzed *time.Time `json:"lastAnalyzed,omitempty" db:"last_analyzed" gorm:"type:timestamp"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// GroupKey returns the key this profile is grouped under when writing profiles
// are reconstructed: the shared ProfileGroup, or the row's own id for
// ungrouped rows.
func (p SocialProfile) GroupKey() string {
	if p.ProfileGroup != "" {
		return p.ProfileGroup
	}
	return p.ID
}

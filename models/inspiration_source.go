package models

import (
	"time"
)

// InspirationSource is an external profile (competitor or role model) tracked
// for trend discovery. Username is derived from ProfileURL when the caller
// doesn't supply one.
type InspirationSource struct {
	ID          string     `json:"id" db:"id" gorm:"type:text;primaryKey"`
	WorkspaceID string     `json:"workspaceId" db:"workspace_id" gorm:"type:text;not null;index"`
	Platform    Platform   `json:"platform" db:"platform" gorm:"type:text;not null"`
	ProfileURL  string     `json:"profileUrl" db:"profile_url" gorm:"type:text;not null"`
	Username    string     `json:"username" db:"username" gorm:"type:text"`
	IsActive    bool       `json:"isActive" db:"is_active" gorm:"not null;default:true"`
	LastScraped *time.Time `json:"lastScraped,omitempty" db:"last_scraped" gorm:"type:timestamp"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

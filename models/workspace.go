package models

import (
	"time"
)

// Workspace is the top-level tenant; every other record is scoped to one
// workspace via WorkspaceID. Each user has exactly one, created lazily on the
// first authenticated request.
type Workspace struct {
	ID        string    `json:"id" db:"id" gorm:"type:text;primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	UserID    string    `json:"userId" db:"user_id" gorm:"type:text;not null;index"`
	Plan      string    `json:"plan" db:"plan" gorm:"type:text;not null;default:'free'"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

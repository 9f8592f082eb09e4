package models

import (
	"time"
)

// WritingProfile is a view-model, never a table: it is reconstructed on every
// load by grouping SocialProfile rows that share a ProfileGroup. Deleting a
// writing profile means deleting its underlying source rows.
type WritingProfile struct {
	ID           string          `json:"id"`
	WorkspaceID  string          `json:"workspaceId"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Sources      []SocialProfile `json:"sources"`
	StyleProfile *StyleProfile   `json:"styleProfile,omitempty"`
	IsActive     bool            `json:"isActive"`
	LastAnalyzed *time.Time      `json:"lastAnalyzed,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

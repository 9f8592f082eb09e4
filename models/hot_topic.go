package models

import (
	"time"

	"gorm.io/datatypes"
)

// HotTopic is a trending subject extracted by the AI from scraped profile
// content. EngagementScore comes straight from the model's answer and is not
// independently verified.
type HotTopic struct {
	ID              string                       `json:"id" db:"id" gorm:"type:text;primaryKey"`
	WorkspaceID     string                       `json:"workspaceId" db:"workspace_id" gorm:"type:text;not null;index"`
	Title           string                       `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string                       `json:"description" db:"description" gorm:"type:text"`
	EngagementScore float64                      `json:"engagementScore" db:"engagement_score" gorm:"not null;default:0"`
	SourceURLs      datatypes.JSONSlice[string]  `json:"sourceUrls" db:"source_urls"`
	Keywords        datatypes.JSONSlice[string]  `json:"keywords,omitempty" db:"keywords"`
	RawContent      string                       `json:"rawContent,omitempty" db:"raw_content" gorm:"type:text"`
	IsSelected      bool                         `json:"isSelected" db:"is_selected" gorm:"not null;default:false"`
	Priority        int                          `json:"priority" db:"priority" gorm:"not null;default:0"`
	CreatedAt       time.Time                    `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

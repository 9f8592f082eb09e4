package models

import (
	"time"

	"github.com/google/uuid"
)

// Content piece statuses. The status field is free to move between these from
// the API; there is no enforced transition machine.
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

// EngagementStats holds post-publication metrics reported for a piece.
type EngagementStats struct {
	Likes    int `json:"likes"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
}

// ContentPiece is a generated social post tied to a topic and platform.
// Generation persists one as a draft; scheduling and publication only change
// the status field.
type ContentPiece struct {
	ID              uuid.UUID        `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	WorkspaceID     string           `json:"workspaceId" db:"workspace_id" gorm:"type:text;not null;index"`
	TopicID         string           `json:"topicId" db:"topic_id" gorm:"type:text;not null"`
	Platform        Platform         `json:"platform" db:"platform" gorm:"type:text;not null"`
	Title           string           `json:"title" db:"title" gorm:"type:text"`
	Content         string           `json:"content" db:"content" gorm:"type:text;not null"`
	Status          string           `json:"status" db:"status" gorm:"type:text;not null;default:'draft'"`
	ScheduledFor    *time.Time       `json:"scheduledFor,omitempty" db:"scheduled_for" gorm:"type:timestamp"`
	PublishedAt     *time.Time       `json:"publishedAt,omitempty" db:"published_at" gorm:"type:timestamp"`
	EngagementStats *EngagementStats `json:"engagementStats,omitempty" db:"engagement_stats" gorm:"serializer:json"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

package models

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// StyleProfile is the AI-derived description of one writing profile's voice.
// ProfileID references the first SocialProfile of the analyzed group.
// Embedding is filled best-effort when an embedder is configured.
type StyleProfile struct {
	ID                     string                      `json:"id" db:"id" gorm:"type:text;primaryKey"`
	ProfileID              string                      `json:"profileId" db:"profile_id" gorm:"type:text;not null;index"`
	Tone                   string                      `json:"tone" db:"tone" gorm:"type:text"`
	AvgSentenceLength      float64                     `json:"avgSentenceLength" db:"avg_sentence_length"`
	EmojiUsage             float64                     `json:"emojiUsage" db:"emoji_usage"`
	HashtagPattern         string                      `json:"hashtagPattern" db:"hashtag_pattern" gorm:"type:text"`
	CtaPatterns            datatypes.JSONSlice[string] `json:"ctaPatterns" db:"cta_patterns"`
	KeyPhrases             datatypes.JSONSlice[string] `json:"keyPhrases,omitempty" db:"key_phrases"`
	WritingCharacteristics string                      `json:"writingCharacteristics,omitempty" db:"writing_characteristics" gorm:"type:text"`
	RawContent             string                      `json:"rawContent,omitempty" db:"raw_content" gorm:"type:text"`
	Embedding              *pgvector.Vector            `json:"embedding,omitempty" db:"embedding" gorm:"type:vector(1536)"`
	CreatedAt              time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"contentpilot/errs"
	"contentpilot/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GenTopicStore is the topic lookup surface the generator needs.
type GenTopicStore interface {
	FindByID(id string) (*models.HotTopic, error)
}

// StyleFinder loads the newest style profile for an anchor social profile.
type StyleFinder interface {
	FindLatestByProfileID(profileID string) (*models.StyleProfile, error)
}

// PieceStore persists generated drafts.
type PieceStore interface {
	Add(piece *models.ContentPiece) error
}

// GenerateRequest is one content-generation call. StyleProfileID optionally
// names the anchor social profile whose voice should shape the output.
type GenerateRequest struct {
	TopicID        string `json:"topicId"`
	Platform       string `json:"platform"`
	Tone           string `json:"tone"`
	Language       string `json:"language"`
	Model          string `json:"model"`
	StyleProfileID string `json:"styleProfileId"`
}

// GeneratorService turns a hot topic plus platform guidelines and an optional
// writing style into a persisted draft content piece.
type GeneratorService struct {
	topics GenTopicStore
	styles StyleFinder
	pieces PieceStore
	llm    LLM
}

func NewGeneratorService(topics GenTopicStore, styles StyleFinder, pieces PieceStore, llm LLM) *GeneratorService {
	return &GeneratorService{topics: topics, styles: styles, pieces: pieces, llm: llm}
}

// Generate validates the request, composes the prompt and saves the model's
// answer as a draft. Validation failures never reach the AI provider.
func (s *GeneratorService) Generate(ctx context.Context, workspaceID string, req GenerateRequest) (*models.ContentPiece, error) {
	if req.TopicID == "" {
		return nil, errs.NewMissingRequiredFieldError("topicId")
	}
	if req.Platform == "" {
		return nil, errs.NewMissingRequiredFieldError("platform")
	}
	platform := models.Platform(req.Platform)
	guideline, ok := GuidelineFor(platform)
	if !ok {
		return nil, errs.NewUnsupportedPlatformError(req.Platform)
	}
	model := req.Model
	if model == "" {
		model = DefaultModel
	}
	if _, _, ok := ResolveModel(model); !ok {
		return nil, errs.NewUnsupportedModelError(model)
	}

	topic, err := s.topics.FindByID(req.TopicID)
	if err != nil || topic.WorkspaceID != workspaceID {
		return nil, errs.NewNotFound("hot topic")
	}

	tone := req.Tone
	if tone == "" {
		tone = "professional"
	}

	var styleContext string
	if req.StyleProfileID != "" {
		style, err := s.styles.FindLatestByProfileID(req.StyleProfileID)
		if err != nil {
			log.Warn().Err(err).Str("styleProfileId", req.StyleProfileID).Msg("Style profile unavailable, generating without it")
		} else {
			styleContext = formatStyleContext(style)
		}
	}

	prompt := composeGenerationPrompt(topic, platform, guideline, tone, req.Language, styleContext)

	text, err := s.llm.Complete(ctx, CompletionRequest{Prompt: prompt, Model: model})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	piece := &models.ContentPiece{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		TopicID:     topic.ID,
		Platform:    platform,
		Title:       topic.Title,
		Content:     text,
		Status:      models.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.pieces.Add(piece); err != nil {
		return nil, errs.NewDatabaseError("create", "content piece", err)
	}

	log.Info().
		Str("pieceId", piece.ID.String()).
		Str("topicId", topic.ID).
		Str("platform", string(platform)).
		Str("model", model).
		Msg("Generated content draft")
	return piece, nil
}

func formatStyleContext(style *models.StyleProfile) string {
	return fmt.Sprintf(`

User's Writing Style:
- Tone: %s
- Average sentence length: %.0f words
- Emoji usage: %d%%
- Hashtag pattern: %s
- Common CTAs: %s
- Writing characteristics: %s`,
		style.Tone,
		style.AvgSentenceLength,
		int(math.Round(style.EmojiUsage*100)),
		style.HashtagPattern,
		strings.Join(style.CtaPatterns, ", "),
		style.WritingCharacteristics)
}

func composeGenerationPrompt(topic *models.HotTopic, platform models.Platform, guideline PlatformGuideline, tone, language, styleContext string) string {
	context := topic.RawContent
	if context == "" {
		context = "General trending topic in the industry"
	}

	return fmt.Sprintf(`Create engaging social media content for %s about the topic: "%s"

Topic Details:
- Title: %s
- Description: %s
- Engagement Score: %g/10
- Context: %s

Platform Guidelines:
- Platform: %s
- Max Length: %d characters
- Style: %s
- Format: %s

Content Requirements:
- Tone: %s
- Language: %s
- Make it engaging and valuable to the audience
- Include relevant hashtags appropriate for the platform
- Add a call-to-action to encourage engagement%s

Generate content that would perform well on %s and matches the user's writing style if provided.`,
		platform.DisplayName(), topic.Title,
		topic.Title,
		topic.Description,
		topic.EngagementScore,
		context,
		platform.DisplayName(),
		guideline.MaxLength,
		guideline.Style,
		guideline.Format,
		tone,
		LanguageName(language),
		styleContext,
		platform.DisplayName())
}

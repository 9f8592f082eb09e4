package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"contentpilot/errs"
	"contentpilot/models"

	"github.com/pgvector/pgvector-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// Markdown artifacts stripped from scraped pages before analysis.
var (
	reExtraNewlines = regexp.MustCompile(`\n{3,}`)
	reListMarkers   = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	reHeaders       = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	reLinks         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// ProfileStore is the social-profile persistence surface the analyzer needs.
type ProfileStore interface {
	FindByGroup(workspaceID, groupID string) ([]*models.SocialProfile, error)
	MarkAnalyzed(workspaceID, groupID string, at time.Time) error
}

// StyleStore persists finished style profiles.
type StyleStore interface {
	Add(profile *models.StyleProfile) error
}

// SourceSummary records how one source contributed to an analysis run.
type SourceSummary struct {
	Platform      models.Platform `json:"platform"`
	URL           string          `json:"url"`
	ContentLength int             `json:"contentLength"`
	Fallback      bool            `json:"fallback"`
}

// AnalyzeOutcome is the typed result of a style analysis. Degraded means the
// voice was analyzed but one or more persistence steps failed; Warnings names
// them so callers and tests can assert on the degraded path.
type AnalyzeOutcome struct {
	Profile  *models.StyleProfile `json:"styleProfile"`
	Sources  []SourceSummary      `json:"sources"`
	Degraded bool                 `json:"degraded"`
	Warnings []string             `json:"warnings,omitempty"`
}

// StyleService scrapes every source of a writing profile, accumulates the
// cleaned text and asks the model to describe the author's voice.
type StyleService struct {
	profiles    ProfileStore
	styles      StyleStore
	scraper     Scraper
	llm         LLM
	embedder    Embedder
	scrapeDelay time.Duration
}

func NewStyleService(profiles ProfileStore, styles StyleStore, scraper Scraper, llm LLM, embedder Embedder) *StyleService {
	return &StyleService{
		profiles:    profiles,
		styles:      styles,
		scraper:     scraper,
		llm:         llm,
		embedder:    embedder,
		scrapeDelay: time.Second,
	}
}

// AnalyzeGroup analyzes the writing profile identified by groupID. Scraping is
// best-effort per source; only a corpus below MinScrapedContentChars is a hard
// stop, reported before any model call.
func (s *StyleService) AnalyzeGroup(ctx context.Context, workspaceID, groupID string) (*AnalyzeOutcome, error) {
	sources, err := s.profiles.FindByGroup(workspaceID, groupID)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "social profiles", err)
	}
	if len(sources) == 0 {
		return nil, errs.NewNotFound("writing profile")
	}

	logger := log.With().Str("profileGroup", groupID).Int("sources", len(sources)).Logger()

	var corpus strings.Builder
	summaries := make([]SourceSummary, 0, len(sources))

	for i, source := range sources {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.scrapeDelay):
			}
		}

		result, err := s.scraper.Scrape(ctx, source.ProfileURL)
		if err != nil {
			logger.Warn().Err(err).Str("platform", string(source.Platform)).Msg("Source scrape failed, using placeholder")
			placeholder := StylePlaceholderFor(source.Platform)
			fmt.Fprintf(&corpus, "\n\n=== %s CONTENT (SAMPLE) ===\n%s", strings.ToUpper(string(source.Platform)), placeholder)
			summaries = append(summaries, SourceSummary{
				Platform:      source.Platform,
				URL:           source.ProfileURL,
				ContentLength: len(placeholder),
				Fallback:      true,
			})
			continue
		}

		clean := CleanScrapedText(result.Content)
		if len(clean) <= MinStyleSourceChars {
			logger.Info().Str("platform", string(source.Platform)).Int("chars", len(clean)).Msg("Dropping thin source section")
			continue
		}
		fmt.Fprintf(&corpus, "\n\n=== %s CONTENT ===\n%s", strings.ToUpper(string(source.Platform)), clean)
		summaries = append(summaries, SourceSummary{
			Platform:      source.Platform,
			URL:           source.ProfileURL,
			ContentLength: len(clean),
		})
	}

	content := corpus.String()
	if len(content) < MinScrapedContentChars {
		return nil, errs.NewInsufficientContentError(len(content), MinScrapedContentChars)
	}

	analysis, err := s.analyzeVoice(ctx, content)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	outcome := &AnalyzeOutcome{
		Profile: &models.StyleProfile{
			ID:                     models.NewID("style"),
			ProfileID:              sources[0].ID,
			Tone:                   analysis.Tone,
			AvgSentenceLength:      analysis.AvgSentenceLength,
			EmojiUsage:             analysis.EmojiUsage,
			HashtagPattern:         analysis.HashtagPattern,
			CtaPatterns:            datatypes.NewJSONSlice(analysis.CtaPatterns),
			KeyPhrases:             datatypes.NewJSONSlice(analysis.KeyPhrases),
			WritingCharacteristics: analysis.WritingCharacteristics,
			RawContent:             describeRun(len(content), summaries),
			CreatedAt:              now,
		},
		Sources: summaries,
	}

	if s.embedder != nil {
		if vec, err := s.embedder.Embed(ctx, analysis.WritingCharacteristics); err != nil {
			outcome.warn(logger, "style embedding failed", err)
		} else {
			v := pgvector.NewVector(vec)
			outcome.Profile.Embedding = &v
		}
	}

	// Persistence is best-effort from here: the analysis itself succeeded
	if err := s.styles.Add(outcome.Profile); err != nil {
		outcome.warn(logger, "style profile save failed", err)
	}
	if err := s.profiles.MarkAnalyzed(workspaceID, groupID, now); err != nil {
		outcome.warn(logger, "last_analyzed update failed", err)
	}

	logger.Info().Bool("degraded", outcome.Degraded).Str("tone", analysis.Tone).Msg("Style analysis finished")
	return outcome, nil
}

func (o *AnalyzeOutcome) warn(logger zerolog.Logger, msg string, err error) {
	o.Degraded = true
	o.Warnings = append(o.Warnings, fmt.Sprintf("%s: %v", msg, err))
	logger.Warn().Err(err).Msg(msg)
}

// CleanScrapedText strips markdown artifacts so the model sees prose rather
// than page chrome.
func CleanScrapedText(raw string) string {
	clean := reExtraNewlines.ReplaceAllString(raw, "\n\n")
	clean = reListMarkers.ReplaceAllString(clean, "")
	clean = reHeaders.ReplaceAllString(clean, "")
	clean = reLinks.ReplaceAllString(clean, "$1")
	return strings.TrimSpace(clean)
}

func describeRun(totalChars int, summaries []SourceSummary) string {
	parts := make([]string, 0, len(summaries))
	for _, s := range summaries {
		label := string(s.Platform)
		if s.Fallback {
			label += " (sample)"
		}
		parts = append(parts, label)
	}
	return fmt.Sprintf("Analyzed %d characters from %d sources: %s", totalChars, len(summaries), strings.Join(parts, ", "))
}

type voiceAnalysis struct {
	Tone                   string   `json:"tone"`
	AvgSentenceLength      float64  `json:"avgSentenceLength"`
	EmojiUsage             float64  `json:"emojiUsage"`
	HashtagPattern         string   `json:"hashtagPattern"`
	CtaPatterns            []string `json:"ctaPatterns"`
	KeyPhrases             []string `json:"keyPhrases"`
	WritingCharacteristics string   `json:"writingCharacteristics"`
}

func (s *StyleService) analyzeVoice(ctx context.Context, content string) (*voiceAnalysis, error) {
	prompt := fmt.Sprintf(`Analyze the writing style from this social media content and extract key characteristics:

CONTENT TO ANALYZE:
%s

Please analyze the writing style and provide detailed insights about:
1. Overall tone and voice
2. Average sentence length patterns
3. Emoji usage frequency
4. Hashtag usage patterns
5. Common call-to-action phrases
6. Key phrases and vocabulary
7. Writing characteristics and personality

Focus on patterns that appear consistently across the content.

Respond with JSON only, shaped as:
{"tone": string, "avgSentenceLength": number, "emojiUsage": number between 0 and 1, "hashtagPattern": "none"|"light"|"moderate"|"heavy", "ctaPatterns": [string], "keyPhrases": [string], "writingCharacteristics": string}`, content)

	answer, err := s.llm.Complete(ctx, CompletionRequest{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	var analysis voiceAnalysis
	if err := DecodeModelJSON(answer, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

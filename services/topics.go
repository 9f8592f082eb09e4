package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"contentpilot/errs"
	"contentpilot/models"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const (
	// extractionPromptChars caps how much scraped text goes into the prompt.
	extractionPromptChars = 4000
	// rawContextChars caps the fallback raw-content snippet stored per topic.
	rawContextChars = 500
)

// SourceStore is the inspiration-source persistence surface the pipeline needs.
type SourceStore interface {
	FindActiveByWorkspace(workspaceID string) ([]*models.InspirationSource, error)
	FindAllActive() ([]*models.InspirationSource, error)
	FindByID(id string) (*models.InspirationSource, error)
	MarkScraped(id string, at time.Time) error
}

// TopicStore is the hot-topic persistence surface the pipeline needs.
type TopicStore interface {
	AddAll(topics []*models.HotTopic) error
}

// ContentAnalysis is the optional aggregate the model reports alongside topics.
type ContentAnalysis struct {
	TotalPostsFound   int     `json:"totalPostsFound"`
	AvgEngagement     float64 `json:"avgEngagement"`
	TopPerformingPost string  `json:"topPerformingPost"`
}

// ScrapeOutcome reports what one scrape-and-extract run produced.
type ScrapeOutcome struct {
	SourceID    string             `json:"sourceId"`
	Username    string             `json:"username"`
	Platform    models.Platform    `json:"platform"`
	UsedSample  bool               `json:"usedSampleContent"`
	Topics      []*models.HotTopic `json:"topics"`
	Analysis    *ContentAnalysis   `json:"contentAnalysis,omitempty"`
	ScrapedAt   time.Time          `json:"scrapedAt"`
	ContentSize int                `json:"contentSize"`
}

// SourceResult pairs a source with its outcome or failure inside a batch run.
type SourceResult struct {
	SourceID string         `json:"sourceId"`
	Outcome  *ScrapeOutcome `json:"outcome,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// TopicService runs the scrape-and-extract pipeline: fetch a profile page,
// substitute sample text when the page yields too little, then ask the model
// for evidence-backed trending topics and persist them.
type TopicService struct {
	sources     SourceStore
	topics      TopicStore
	scraper     Scraper
	llm         LLM
	archiver    Archiver
	scrapeDelay time.Duration
}

func NewTopicService(sources SourceStore, topics TopicStore, scraper Scraper, llm LLM, archiver Archiver) *TopicService {
	if archiver == nil {
		archiver = NoopArchiver{}
	}
	return &TopicService{
		sources:     sources,
		topics:      topics,
		scraper:     scraper,
		llm:         llm,
		archiver:    archiver,
		scrapeDelay: time.Second,
	}
}

// ScrapeSource scrapes one source and persists the topics extracted from it.
// A failed page fetch aborts; a fetch that merely yields thin content is
// replaced by the platform's sample block so the pipeline still completes.
func (s *TopicService) ScrapeSource(ctx context.Context, workspaceID, sourceID string) (*ScrapeOutcome, error) {
	source, err := s.sources.FindByID(sourceID)
	if err != nil {
		return nil, errs.NewNotFound("inspiration source")
	}
	if source.WorkspaceID != workspaceID {
		return nil, errs.NewNotFound("inspiration source")
	}

	logger := log.With().
		Str("sourceId", source.ID).
		Str("platform", string(source.Platform)).
		Str("username", source.Username).
		Logger()

	result, err := s.scraper.Scrape(ctx, source.ProfileURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Scrape failed")
		return nil, err
	}

	if archiveErr := s.archiver.ArchiveScrape(ctx, workspaceID, source.ID, result.Content); archiveErr != nil {
		logger.Warn().Err(archiveErr).Msg("Failed to archive scrape snapshot")
	}

	content := result.Content
	usedSample := false
	if len(content) < MinScrapedContentChars {
		logger.Info().Int("chars", len(content)).Msg("Thin scrape result, substituting sample content")
		content = SampleContentFor(source.Platform)
		usedSample = true
	}

	extraction, err := s.extractTopics(ctx, source, content)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	outcome := &ScrapeOutcome{
		SourceID:    source.ID,
		Username:    source.Username,
		Platform:    source.Platform,
		UsedSample:  usedSample,
		Topics:      []*models.HotTopic{},
		Analysis:    extraction.ContentAnalysis,
		ScrapedAt:   now,
		ContentSize: len(content),
	}

	for _, t := range extraction.Topics {
		rawContent := t.SourcePost
		if rawContent == "" {
			rawContent = truncate(content, rawContextChars)
		}
		keywords := t.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		outcome.Topics = append(outcome.Topics, &models.HotTopic{
			ID:              models.NewID("topic"),
			WorkspaceID:     workspaceID,
			Title:           t.Title,
			Description:     t.Description,
			EngagementScore: t.EngagementScore,
			SourceURLs:      datatypes.NewJSONSlice([]string{source.ProfileURL}),
			Keywords:        datatypes.NewJSONSlice(keywords),
			RawContent:      rawContent,
			IsSelected:      false,
			Priority:        0,
			CreatedAt:       now,
		})
	}

	// Zero extracted topics is a terminal outcome, not an error
	if len(outcome.Topics) > 0 {
		if err := s.topics.AddAll(outcome.Topics); err != nil {
			return nil, errs.NewDatabaseError("create", "hot topics", err)
		}
	}

	if err := s.sources.MarkScraped(source.ID, now); err != nil {
		logger.Warn().Err(err).Msg("Failed to stamp last_scraped")
	}

	logger.Info().Int("topics", len(outcome.Topics)).Bool("usedSample", usedSample).Msg("Scrape pipeline finished")
	return outcome, nil
}

// ScrapeAll runs the pipeline for every active source in the workspace,
// sequentially with a pause between scrapes. One source failing never stops
// the rest; each result carries its own outcome or error.
func (s *TopicService) ScrapeAll(ctx context.Context, workspaceID string) ([]SourceResult, error) {
	sources, err := s.sources.FindActiveByWorkspace(workspaceID)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "inspiration sources", err)
	}

	results := make([]SourceResult, 0, len(sources))
	for i, source := range sources {
		if i > 0 {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			case <-time.After(s.scrapeDelay):
			}
		}

		outcome, err := s.ScrapeSource(ctx, workspaceID, source.ID)
		if err != nil {
			log.Warn().Err(err).Str("sourceId", source.ID).Msg("Batch scrape: source failed")
			results = append(results, SourceResult{SourceID: source.ID, Error: err.Error()})
			continue
		}
		results = append(results, SourceResult{SourceID: source.ID, Outcome: outcome})
	}
	return results, nil
}

// RefreshAll re-runs the pipeline for every active source in every workspace.
// Driven by the scheduler; failures are per-source and logged, never fatal.
func (s *TopicService) RefreshAll(ctx context.Context) error {
	sources, err := s.sources.FindAllActive()
	if err != nil {
		return errs.NewDatabaseError("list", "inspiration sources", err)
	}

	var failed int
	for i, source := range sources {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.scrapeDelay):
			}
		}
		if _, err := s.ScrapeSource(ctx, source.WorkspaceID, source.ID); err != nil {
			failed++
			log.Warn().Err(err).Str("sourceId", source.ID).Msg("Auto-refresh: source failed")
		}
	}

	log.Info().Int("sources", len(sources)).Int("failed", failed).Msg("Auto-refresh finished")
	return nil
}

type extractedTopic struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	EngagementScore float64  `json:"engagementScore"`
	Keywords        []string `json:"keywords"`
	SourcePost      string   `json:"sourcePost"`
}

type topicExtraction struct {
	Topics          []extractedTopic `json:"topics"`
	ContentAnalysis *ContentAnalysis `json:"contentAnalysis"`
}

func (s *TopicService) extractTopics(ctx context.Context, source *models.InspirationSource, content string) (*topicExtraction, error) {
	prompt := fmt.Sprintf(`You are analyzing REAL scraped content from a %s profile (@%s).

SCRAPED CONTENT:
%s

TASK: Extract the ACTUAL trending topics from this real content. Look for:
1. Posts with high engagement indicators (likes, comments, shares mentioned)
2. Recurring themes and subjects the person posts about
3. Topics that generated discussion or controversy
4. Content that got significant attention

For each REAL topic you find, provide:
- title: The actual topic/theme from their posts
- description: What they specifically said about this topic
- engagementScore: Based on actual engagement indicators you see (1-10)
- keywords: Actual keywords/hashtags they used
- sourcePost: A snippet of the actual post that shows this topic

Only extract topics that you can clearly see evidence for in the scraped content. Do not make up generic topics.

Respond with JSON only, shaped as:
{"topics": [{"title": string, "description": string, "engagementScore": number, "keywords": [string], "sourcePost": string}], "contentAnalysis": {"totalPostsFound": number, "avgEngagement": number, "topPerformingPost": string}}`,
		source.Platform, source.Username, truncate(content, extractionPromptChars))

	answer, err := s.llm.Complete(ctx, CompletionRequest{Prompt: prompt})
	if err != nil {
		return nil, err
	}

	var extraction topicExtraction
	if err := DecodeModelJSON(answer, &extraction); err != nil {
		return nil, err
	}
	return &extraction, nil
}

// truncate cuts s to at most max bytes without splitting a UTF-8 sequence.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}

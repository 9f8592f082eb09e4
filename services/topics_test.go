package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"contentpilot/errs"
	"contentpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const extractionAnswer = "```json\n" + `{
  "topics": [
    {
      "title": "AI-assisted code review",
      "description": "They argue review bots catch style issues so humans can focus on design.",
      "engagementScore": 8.5,
      "keywords": ["ai", "codereview"],
      "sourcePost": "Our review bot caught 40 issues last sprint."
    },
    {
      "title": "Hiring for curiosity",
      "description": "Recurring theme about hiring generalists.",
      "engagementScore": 6,
      "keywords": [],
      "sourcePost": ""
    }
  ],
  "contentAnalysis": {"totalPostsFound": 12, "avgEngagement": 7.1, "topPerformingPost": "Our review bot caught 40 issues last sprint."}
}` + "\n```"

func newTestSource(id, workspaceID string) *models.InspirationSource {
	return &models.InspirationSource{
		ID:          id,
		WorkspaceID: workspaceID,
		Platform:    models.PlatformLinkedIn,
		ProfileURL:  "https://www.linkedin.com/in/janedoe",
		Username:    "janedoe",
		IsActive:    true,
	}
}

func TestScrapeSourcePersistsExtractedTopics(t *testing.T) {
	source := newTestSource("source_1", "workspace_1")
	sources := &fakeSourceStore{sources: map[string]*models.InspirationSource{source.ID: source}}
	topics := &fakeTopicStore{}
	scraper := &fakeScraper{results: map[string]*ScrapeResult{
		source.ProfileURL: {URL: source.ProfileURL, Title: "Jane Doe", Content: strings.Repeat("Shipped a new release and shared lessons learned. ", 10)},
	}}
	llm := &fakeLLM{answer: extractionAnswer}
	archiver := &fakeArchiver{}

	svc := NewTopicService(sources, topics, scraper, llm, archiver)

	outcome, err := svc.ScrapeSource(context.Background(), "workspace_1", source.ID)
	require.NoError(t, err)

	assert.False(t, outcome.UsedSample)
	assert.Equal(t, 1, archiver.calls)
	require.Len(t, outcome.Topics, 2)
	require.Len(t, topics.added, 1)
	assert.Equal(t, outcome.Topics, topics.added[0])

	first := outcome.Topics[0]
	assert.Equal(t, "AI-assisted code review", first.Title)
	assert.Equal(t, 8.5, first.EngagementScore)
	assert.Equal(t, []string{source.ProfileURL}, []string(first.SourceURLs))
	assert.Equal(t, []string{"ai", "codereview"}, []string(first.Keywords))
	assert.Equal(t, "Our review bot caught 40 issues last sprint.", first.RawContent)
	assert.False(t, first.IsSelected)
	assert.Zero(t, first.Priority)
	assert.True(t, strings.HasPrefix(first.ID, "topic_"))

	// Topics without a source post fall back to a scraped-content snippet
	second := outcome.Topics[1]
	assert.NotEmpty(t, second.RawContent)
	assert.Equal(t, []string{}, []string(second.Keywords))

	// The source is stamped as scraped
	_, stamped := sources.scraped[source.ID]
	assert.True(t, stamped)

	// The prompt carries the platform, handle and scraped content
	require.Len(t, llm.calls, 1)
	prompt := llm.calls[0].Prompt
	assert.Contains(t, prompt, "linkedin profile (@janedoe)")
	assert.Contains(t, prompt, "Shipped a new release")
}

func TestScrapeSourceSubstitutesSampleForThinContent(t *testing.T) {
	source := newTestSource("source_1", "workspace_1")
	sources := &fakeSourceStore{sources: map[string]*models.InspirationSource{source.ID: source}}
	scraper := &fakeScraper{results: map[string]*ScrapeResult{
		source.ProfileURL: {URL: source.ProfileURL, Content: "Sign in to continue"},
	}}
	llm := &fakeLLM{answer: extractionAnswer}

	svc := NewTopicService(sources, &fakeTopicStore{}, scraper, llm, nil)

	outcome, err := svc.ScrapeSource(context.Background(), "workspace_1", source.ID)
	require.NoError(t, err)

	assert.True(t, outcome.UsedSample)
	assert.NotEmpty(t, outcome.Topics, "sample substitution still yields topics end to end")
	assert.Equal(t, len(SampleContentFor(models.PlatformLinkedIn)), outcome.ContentSize)
	require.Len(t, llm.calls, 1)
	assert.Contains(t, llm.calls[0].Prompt, "Small batches beat big launches")
	assert.NotContains(t, llm.calls[0].Prompt, "Sign in to continue")

	encoded, err := json.Marshal(outcome)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"usedSampleContent":true`)
}

func TestScrapeSourceAbortsOnScrapeFailure(t *testing.T) {
	source := newTestSource("source_1", "workspace_1")
	sources := &fakeSourceStore{sources: map[string]*models.InspirationSource{source.ID: source}}
	topics := &fakeTopicStore{}
	scraper := &fakeScraper{errs: map[string]error{
		source.ProfileURL: errs.NewScrapeError(source.ProfileURL, assert.AnError),
	}}
	llm := &fakeLLM{answer: extractionAnswer}

	svc := NewTopicService(sources, topics, scraper, llm, nil)

	_, err := svc.ScrapeSource(context.Background(), "workspace_1", source.ID)
	require.Error(t, err)
	assert.True(t, errs.IsScrapeError(err))
	assert.Empty(t, llm.calls)
	assert.Empty(t, topics.added)
	assert.Empty(t, sources.scraped)
}

func TestScrapeSourceRejectsForeignWorkspace(t *testing.T) {
	source := newTestSource("source_1", "workspace_1")
	sources := &fakeSourceStore{sources: map[string]*models.InspirationSource{source.ID: source}}
	svc := NewTopicService(sources, &fakeTopicStore{}, &fakeScraper{}, &fakeLLM{}, nil)

	_, err := svc.ScrapeSource(context.Background(), "workspace_2", source.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	_, err = svc.ScrapeSource(context.Background(), "workspace_1", "source_missing")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestScrapeSourceWithZeroTopicsIsNotAnError(t *testing.T) {
	source := newTestSource("source_1", "workspace_1")
	sources := &fakeSourceStore{sources: map[string]*models.InspirationSource{source.ID: source}}
	topics := &fakeTopicStore{}
	scraper := &fakeScraper{results: map[string]*ScrapeResult{
		source.ProfileURL: {URL: source.ProfileURL, Content: strings.Repeat("Nothing noteworthy here today. ", 10)},
	}}
	llm := &fakeLLM{answer: `{"topics": [], "contentAnalysis": null}`}

	svc := NewTopicService(sources, topics, scraper, llm, nil)

	outcome, err := svc.ScrapeSource(context.Background(), "workspace_1", source.ID)
	require.NoError(t, err)
	assert.Empty(t, outcome.Topics)
	assert.Empty(t, topics.added, "no batch insert for zero topics")

	// Still stamped: the pipeline ran to completion
	_, stamped := sources.scraped[source.ID]
	assert.True(t, stamped)
}

func TestScrapeAllIsolatesSourceFailures(t *testing.T) {
	good := newTestSource("source_good", "workspace_1")
	bad := newTestSource("source_bad", "workspace_1")
	bad.ProfileURL = "https://www.linkedin.com/in/broken"

	sources := &fakeSourceStore{
		sources: map[string]*models.InspirationSource{good.ID: good, bad.ID: bad},
		active:  []*models.InspirationSource{bad, good},
	}
	scraper := &fakeScraper{
		results: map[string]*ScrapeResult{
			good.ProfileURL: {URL: good.ProfileURL, Content: strings.Repeat("Great post about shipping. ", 10)},
		},
		errs: map[string]error{
			bad.ProfileURL: errs.NewScrapeTimeoutError(bad.ProfileURL),
		},
	}

	svc := NewTopicService(sources, &fakeTopicStore{}, scraper, &fakeLLM{answer: extractionAnswer}, nil)
	svc.scrapeDelay = 0

	results, err := svc.ScrapeAll(context.Background(), "workspace_1")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, bad.ID, results[0].SourceID)
	assert.Nil(t, results[0].Outcome)
	assert.NotEmpty(t, results[0].Error)

	assert.Equal(t, good.ID, results[1].SourceID)
	require.NotNil(t, results[1].Outcome)
	assert.Empty(t, results[1].Error)
}

func TestScrapeAllStopsOnCancelledContext(t *testing.T) {
	first := newTestSource("source_1", "workspace_1")
	second := newTestSource("source_2", "workspace_1")
	second.ProfileURL = "https://www.linkedin.com/in/other"

	sources := &fakeSourceStore{
		sources: map[string]*models.InspirationSource{first.ID: first, second.ID: second},
		active:  []*models.InspirationSource{first, second},
	}
	scraper := &fakeScraper{results: map[string]*ScrapeResult{
		first.ProfileURL:  {Content: strings.Repeat("Post one content for the pipeline. ", 5)},
		second.ProfileURL: {Content: strings.Repeat("Post two content for the pipeline. ", 5)},
	}}

	svc := NewTopicService(sources, &fakeTopicStore{}, scraper, &fakeLLM{answer: extractionAnswer}, nil)
	svc.scrapeDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The first source runs before any delay; cancellation hits at the pause
	results, err := svc.ScrapeAll(ctx, "workspace_1")
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 1)
}

func TestRefreshAllCoversEveryWorkspace(t *testing.T) {
	one := newTestSource("source_1", "workspace_1")
	two := newTestSource("source_2", "workspace_2")
	two.ProfileURL = "https://www.linkedin.com/in/other"

	sources := &fakeSourceStore{
		sources: map[string]*models.InspirationSource{one.ID: one, two.ID: two},
		active:  []*models.InspirationSource{one, two},
	}
	scraper := &fakeScraper{results: map[string]*ScrapeResult{
		one.ProfileURL: {Content: strings.Repeat("Workspace one post. ", 10)},
		two.ProfileURL: {Content: strings.Repeat("Workspace two post. ", 10)},
	}}
	topics := &fakeTopicStore{}

	svc := NewTopicService(sources, topics, scraper, &fakeLLM{answer: extractionAnswer}, nil)
	svc.scrapeDelay = 0

	require.NoError(t, svc.RefreshAll(context.Background()))
	assert.Len(t, topics.added, 2)
	assert.Len(t, sources.scraped, 2)
}

func TestTruncateKeepsValidUTF8(t *testing.T) {
	s := strings.Repeat("é", 10)
	cut := truncate(s, 5)
	assert.LessOrEqual(t, len(cut), 5)
	assert.True(t, strings.HasPrefix(s, cut))
	assert.Equal(t, "éé", cut)
}

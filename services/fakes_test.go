package services

import (
	"context"
	"time"

	"contentpilot/models"

	"gorm.io/gorm"
)

type fakeScraper struct {
	results map[string]*ScrapeResult
	errs    map[string]error
	calls   []string
}

func (f *fakeScraper) Scrape(_ context.Context, url string) (*ScrapeResult, error) {
	f.calls = append(f.calls, url)
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	if result, ok := f.results[url]; ok {
		return result, nil
	}
	return &ScrapeResult{URL: url}, nil
}

type fakeLLM struct {
	answer string
	err    error
	calls  []CompletionRequest
}

func (f *fakeLLM) Complete(_ context.Context, req CompletionRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type fakeEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

type fakeArchiver struct {
	calls int
	err   error
}

func (f *fakeArchiver) ArchiveScrape(_ context.Context, _, _, _ string) error {
	f.calls++
	return f.err
}

type fakeSourceStore struct {
	sources map[string]*models.InspirationSource
	active  []*models.InspirationSource
	scraped map[string]time.Time
	markErr error
}

func (f *fakeSourceStore) FindActiveByWorkspace(workspaceID string) ([]*models.InspirationSource, error) {
	var out []*models.InspirationSource
	for _, s := range f.active {
		if s.WorkspaceID == workspaceID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSourceStore) FindAllActive() ([]*models.InspirationSource, error) {
	return f.active, nil
}

func (f *fakeSourceStore) FindByID(id string) (*models.InspirationSource, error) {
	if s, ok := f.sources[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSourceStore) MarkScraped(id string, at time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	if f.scraped == nil {
		f.scraped = make(map[string]time.Time)
	}
	f.scraped[id] = at
	return nil
}

type fakeTopicStore struct {
	added [][]*models.HotTopic
	err   error
}

func (f *fakeTopicStore) AddAll(topics []*models.HotTopic) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, topics)
	return nil
}

type fakeProfileStore struct {
	groups   map[string][]*models.SocialProfile
	analyzed map[string]time.Time
	markErr  error
}

func (f *fakeProfileStore) FindByGroup(_, groupID string) ([]*models.SocialProfile, error) {
	return f.groups[groupID], nil
}

func (f *fakeProfileStore) MarkAnalyzed(_, groupID string, at time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	if f.analyzed == nil {
		f.analyzed = make(map[string]time.Time)
	}
	f.analyzed[groupID] = at
	return nil
}

type fakeStyleStore struct {
	added []*models.StyleProfile
	err   error
}

func (f *fakeStyleStore) Add(profile *models.StyleProfile) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, profile)
	return nil
}

type fakeGenTopicStore struct {
	topics map[string]*models.HotTopic
}

func (f *fakeGenTopicStore) FindByID(id string) (*models.HotTopic, error) {
	if t, ok := f.topics[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeStyleFinder struct {
	style *models.StyleProfile
	err   error
	calls int
}

func (f *fakeStyleFinder) FindLatestByProfileID(_ string) (*models.StyleProfile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.style, nil
}

type fakePieceStore struct {
	added []*models.ContentPiece
	err   error
}

func (f *fakePieceStore) Add(piece *models.ContentPiece) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, piece)
	return nil
}

type fakeWorkspaceStore struct {
	byUser    map[string]*models.Workspace
	addErr    error
	afterAdd  *models.Workspace
	addCalls  int
	findCalls int
}

func (f *fakeWorkspaceStore) FindByUserID(userID string) (*models.Workspace, error) {
	f.findCalls++
	if w, ok := f.byUser[userID]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorkspaceStore) Add(workspace *models.Workspace) error {
	f.addCalls++
	if f.addErr != nil {
		// Simulate a concurrent insert winning the race
		if f.afterAdd != nil {
			if f.byUser == nil {
				f.byUser = make(map[string]*models.Workspace)
			}
			f.byUser[f.afterAdd.UserID] = f.afterAdd
		}
		return f.addErr
	}
	if f.byUser == nil {
		f.byUser = make(map[string]*models.Workspace)
	}
	f.byUser[workspace.UserID] = workspace
	return nil
}

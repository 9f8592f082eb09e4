package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"contentpilot/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newHandlerRequest builds a request carrying a resolved workspace and chi
// route params, the shape handlers see behind the middleware chain.
func newHandlerRequest(t *testing.T, method, target string, body any, params map[string]string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	r := httptest.NewRequest(method, target, reader)
	ctx := ctxWithWorkspace(r.Context(), &models.Workspace{ID: "workspace_1", UserID: "user-1", Name: "My Workspace", Plan: "free"})

	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

	return r.WithContext(ctx)
}

type fakeSourceRepo struct {
	sources map[string]*models.InspirationSource
}

func (f *fakeSourceRepo) FindByWorkspace(workspaceID string) ([]*models.InspirationSource, error) {
	var out []*models.InspirationSource
	for _, s := range f.sources {
		if s.WorkspaceID == workspaceID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSourceRepo) FindByID(id string) (*models.InspirationSource, error) {
	if s, ok := f.sources[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSourceRepo) Add(source *models.InspirationSource) error {
	if f.sources == nil {
		f.sources = make(map[string]*models.InspirationSource)
	}
	f.sources[source.ID] = source
	return nil
}

func (f *fakeSourceRepo) Update(source *models.InspirationSource) error {
	f.sources[source.ID] = source
	return nil
}

func (f *fakeSourceRepo) Delete(id string) error {
	delete(f.sources, id)
	return nil
}

func TestUpdateSourceToggleActiveTwiceRestoresOriginal(t *testing.T) {
	repo := &fakeSourceRepo{sources: map[string]*models.InspirationSource{
		"source_1": {
			ID:          "source_1",
			WorkspaceID: "workspace_1",
			Platform:    models.PlatformLinkedIn,
			ProfileURL:  "https://www.linkedin.com/in/janedoe",
			Username:    "janedoe",
			IsActive:    true,
		},
	}}
	h := newSourceHandler(repo, nil)

	put := func(active bool) *models.InspirationSource {
		r := newHandlerRequest(t, http.MethodPut, "/source/source_1",
			updateSourceRequest{IsActive: &active}, map[string]string{"sourceID": "source_1"})
		w := httptest.NewRecorder()

		h.updateSource().ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.InspirationSource
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		return &got
	}

	deactivated := put(false)
	assert.False(t, deactivated.IsActive)
	assert.False(t, repo.sources["source_1"].IsActive)

	restored := put(true)
	assert.True(t, restored.IsActive)
	assert.True(t, repo.sources["source_1"].IsActive)

	// Nothing else on the row drifted across the round trip
	assert.Equal(t, "janedoe", restored.Username)
	assert.Equal(t, models.PlatformLinkedIn, restored.Platform)
}

func TestUpdateSourceUnknownOrForeignSource(t *testing.T) {
	repo := &fakeSourceRepo{sources: map[string]*models.InspirationSource{
		"source_other": {ID: "source_other", WorkspaceID: "workspace_2", Platform: models.PlatformTwitter, IsActive: true},
	}}
	h := newSourceHandler(repo, nil)
	active := false

	tests := []struct {
		name     string
		sourceID string
	}{
		{"missing source", "source_missing"},
		{"source in another workspace", "source_other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newHandlerRequest(t, http.MethodPut, "/source/"+tt.sourceID,
				updateSourceRequest{IsActive: &active}, map[string]string{"sourceID": tt.sourceID})
			w := httptest.NewRecorder()

			h.updateSource().ServeHTTP(w, r)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}

	// The foreign row is untouched
	assert.True(t, repo.sources["source_other"].IsActive)
}

func TestCreateSourceValidation(t *testing.T) {
	tests := []struct {
		name string
		req  createSourceRequest
	}{
		{"missing platform", createSourceRequest{ProfileURL: "https://twitter.com/janedoe"}},
		{"missing profileUrl", createSourceRequest{Platform: "twitter"}},
		{"unknown platform", createSourceRequest{Platform: "myspace", ProfileURL: "https://myspace.com/janedoe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSourceRepo{}
			h := newSourceHandler(repo, nil)

			r := newHandlerRequest(t, http.MethodPost, "/source", tt.req, nil)
			w := httptest.NewRecorder()

			h.createSource().ServeHTTP(w, r)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, repo.sources)
		})
	}
}

func TestCreateSourceDerivesUsername(t *testing.T) {
	repo := &fakeSourceRepo{}
	h := newSourceHandler(repo, nil)

	r := newHandlerRequest(t, http.MethodPost, "/source",
		createSourceRequest{Platform: "tiktok", ProfileURL: "https://www.tiktok.com/@janedoe"}, nil)
	w := httptest.NewRecorder()

	h.createSource().ServeHTTP(w, r)
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.InspirationSource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "janedoe", got.Username)
	assert.Equal(t, "workspace_1", got.WorkspaceID)
	assert.True(t, got.IsActive)
	require.Len(t, repo.sources, 1)
}

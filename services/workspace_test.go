package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"contentpilot/errs"
	"contentpilot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequiresUserID(t *testing.T) {
	svc := NewWorkspaceService(&fakeWorkspaceStore{})

	_, err := svc.Resolve(context.Background(), "")
	require.Error(t, err)

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestResolveReturnsExistingWorkspace(t *testing.T) {
	existing := &models.Workspace{ID: "workspace_1", UserID: "user-1", Name: "My Workspace", Plan: "free"}
	store := &fakeWorkspaceStore{byUser: map[string]*models.Workspace{"user-1": existing}}
	svc := NewWorkspaceService(store)

	workspace, err := svc.Resolve(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, existing, workspace)
	assert.Zero(t, store.addCalls)
}

func TestResolveCreatesDefaultWorkspace(t *testing.T) {
	store := &fakeWorkspaceStore{}
	svc := NewWorkspaceService(store)

	workspace, err := svc.Resolve(context.Background(), "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, workspace.ID)
	assert.Equal(t, "user-1", workspace.UserID)
	assert.Equal(t, "My Workspace", workspace.Name)
	assert.Equal(t, "free", workspace.Plan)
	assert.WithinDuration(t, time.Now().UTC(), workspace.CreatedAt, time.Minute)
	assert.Equal(t, 1, store.addCalls)

	// Second resolve finds the created row instead of creating again
	again, err := svc.Resolve(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, workspace.ID, again.ID)
	assert.Equal(t, 1, store.addCalls)
}

func TestResolveRecoversFromCreateRace(t *testing.T) {
	winner := &models.Workspace{ID: "workspace_winner", UserID: "user-1", Name: "My Workspace", Plan: "free"}
	store := &fakeWorkspaceStore{
		addErr:   errors.New("duplicate key value violates unique constraint"),
		afterAdd: winner,
	}
	svc := NewWorkspaceService(store)

	workspace, err := svc.Resolve(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "workspace_winner", workspace.ID)
}

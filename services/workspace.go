package services

import (
	"context"
	"errors"
	"time"

	"contentpilot/errs"
	"contentpilot/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// WorkspaceStore is the persistence surface the workspace service needs.
type WorkspaceStore interface {
	FindByUserID(userID string) (*models.Workspace, error)
	Add(workspace *models.Workspace) error
}

// WorkspaceService resolves the caller's workspace, creating it on first
// contact. Concurrent requests from the same user are collapsed through
// singleflight so a burst of first requests creates exactly one workspace.
type WorkspaceService struct {
	store  WorkspaceStore
	flight singleflight.Group
}

func NewWorkspaceService(store WorkspaceStore) *WorkspaceService {
	return &WorkspaceService{store: store}
}

// Resolve returns the user's workspace, creating a default one when none
// exists yet.
func (s *WorkspaceService) Resolve(ctx context.Context, userID string) (*models.Workspace, error) {
	if userID == "" {
		return nil, errs.NewUnauthorizedError("user identity required")
	}

	result, err, _ := s.flight.Do(userID, func() (any, error) {
		return s.resolve(userID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Workspace), nil
}

func (s *WorkspaceService) resolve(userID string) (*models.Workspace, error) {
	workspace, err := s.store.FindByUserID(userID)
	if err == nil {
		return workspace, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewDatabaseError("find", "workspace", err)
	}

	now := time.Now().UTC()
	workspace = &models.Workspace{
		ID:        models.NewID("workspace"),
		Name:      "My Workspace",
		UserID:    userID,
		Plan:      "free",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Add(workspace); err != nil {
		// Lost a create race against another instance; the row is there now
		if existing, findErr := s.store.FindByUserID(userID); findErr == nil {
			return existing, nil
		}
		return nil, errs.NewDatabaseError("create", "workspace", err)
	}

	log.Info().Str("workspaceId", workspace.ID).Str("userId", userID).Msg("Created workspace")
	return workspace, nil
}

package api

import (
	"context"
	"errors"

	"contentpilot/models"
)

type keyType string

const (
	userIDKey    keyType = "userID"
	workspaceKey keyType = "workspace"
)

// ctxWithUserID adds a user ID to the context
func ctxWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ctxGetUserID retrieves a user ID from the context
func ctxGetUserID(ctx context.Context) (string, error) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return "", errors.New("user ID not found in context")
	}
	userID, ok := value.(string)
	if !ok {
		return "", errors.New("user ID is not of type `string`")
	}
	return userID, nil
}

// ctxWithWorkspace adds the caller's resolved workspace to the context
func ctxWithWorkspace(ctx context.Context, workspace *models.Workspace) context.Context {
	return context.WithValue(ctx, workspaceKey, workspace)
}

// ctxGetWorkspace retrieves the resolved workspace from the context
func ctxGetWorkspace(ctx context.Context) (*models.Workspace, error) {
	value := ctx.Value(workspaceKey)
	if value == nil {
		return nil, errors.New("workspace not found in context")
	}
	workspace, ok := value.(*models.Workspace)
	if !ok {
		return nil, errors.New("workspace is not of type `*models.Workspace`")
	}
	return workspace, nil
}

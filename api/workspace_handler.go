package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type workspaceHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newWorkspaceHandler() workspaceHandler {
	logger := log.With().Str("handlerName", "workspaceHandler").Logger()

	return workspaceHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// getWorkspace returns the caller's workspace
// @Summary Get workspace
// @Description Returns the caller's workspace, creating it on first request
// @Tags Workspace
// @Produce json
// @Success 200 {object} models.Workspace "Workspace"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /workspace [get]
func (h workspaceHandler) getWorkspace() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Resolution handled by middleware; this just echoes the result
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, workspace)
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"time"

	"contentpilot/errs"
	"contentpilot/models"
	"contentpilot/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// sourceStore is the persistence surface the handler needs; satisfied by
// *database.InspirationSourceRepo.
type sourceStore interface {
	FindByWorkspace(workspaceID string) ([]*models.InspirationSource, error)
	FindByID(id string) (*models.InspirationSource, error)
	Add(source *models.InspirationSource) error
	Update(source *models.InspirationSource) error
	Delete(id string) error
}

type sourceHandler struct {
	responder  Responder
	logger     zerolog.Logger
	sourceRepo sourceStore
	topics     *services.TopicService
}

func newSourceHandler(sourceRepo sourceStore, topics *services.TopicService) sourceHandler {
	logger := log.With().Str("handlerName", "sourceHandler").Logger()

	return sourceHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		sourceRepo: sourceRepo,
		topics:     topics,
	}
}

type createSourceRequest struct {
	Platform   string `json:"platform"`
	ProfileURL string `json:"profileUrl"`
	Username   string `json:"username"`
}

type updateSourceRequest struct {
	IsActive *bool   `json:"isActive"`
	Username *string `json:"username"`
}

// getAllSources retrieves every inspiration source in the workspace
// @Summary Get all inspiration sources
// @Tags Inspiration Sources
// @Produce json
// @Success 200 {array} models.InspirationSource "List of inspiration sources"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /sources [get]
func (h sourceHandler) getAllSources() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		sources, err := h.sourceRepo.FindByWorkspace(workspace.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "inspiration sources", err))
			return
		}

		h.responder.WriteJSON(w, sources)
	}
}

// createSource registers a new inspiration source
// @Summary Create inspiration source
// @Description Registers a competitor or role-model profile for trend tracking
// @Tags Inspiration Sources
// @Accept json
// @Produce json
// @Param source body createSourceRequest true "Source to create"
// @Success 201 {object} models.InspirationSource "Created source"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /source [post]
func (h sourceHandler) createSource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req createSourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if req.Platform == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("platform"))
			return
		}
		if req.ProfileURL == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("profileUrl"))
			return
		}
		platform := models.Platform(req.Platform)
		if !platform.Valid() {
			h.responder.WriteError(w, errs.NewUnsupportedPlatformError(req.Platform))
			return
		}

		username := req.Username
		if username == "" {
			username = services.ExtractUsernameFromURL(req.ProfileURL, platform)
		}

		source := &models.InspirationSource{
			ID:          models.NewID("source"),
			WorkspaceID: workspace.ID,
			Platform:    platform,
			ProfileURL:  req.ProfileURL,
			Username:    username,
			IsActive:    true,
			CreatedAt:   time.Now().UTC(),
		}

		if err := h.sourceRepo.Add(source); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "inspiration source", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, source)
	}
}

// updateSource toggles or renames an existing source
// @Summary Update inspiration source
// @Tags Inspiration Sources
// @Accept json
// @Produce json
// @Param sourceID path string true "Source ID"
// @Param source body updateSourceRequest true "Fields to update"
// @Success 200 {object} models.InspirationSource "Updated source"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /source/{sourceID} [put]
func (h sourceHandler) updateSource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		sourceID := chi.URLParam(r, "sourceID")
		if sourceID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing sourceID"))
			return
		}

		source, err := h.sourceRepo.FindByID(sourceID)
		if err != nil || source.WorkspaceID != workspace.ID {
			h.responder.WriteError(w, errs.NewNotFound("inspiration source"))
			return
		}

		var req updateSourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.IsActive != nil {
			source.IsActive = *req.IsActive
		}
		if req.Username != nil {
			source.Username = *req.Username
		}

		if err := h.sourceRepo.Update(source); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "inspiration source", err))
			return
		}

		h.responder.WriteJSON(w, source)
	}
}

// deleteSource removes an inspiration source
// @Summary Delete inspiration source
// @Tags Inspiration Sources
// @Param sourceID path string true "Source ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /source/{sourceID} [delete]
func (h sourceHandler) deleteSource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		sourceID := chi.URLParam(r, "sourceID")
		source, err := h.sourceRepo.FindByID(sourceID)
		if err != nil || source.WorkspaceID != workspace.ID {
			h.responder.WriteError(w, errs.NewNotFound("inspiration source"))
			return
		}

		if err := h.sourceRepo.Delete(sourceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "inspiration source", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// scrapeSource runs the scrape-and-extract pipeline for one source
// @Summary Scrape source and extract topics
// @Description Scrapes the profile page and persists AI-extracted hot topics
// @Tags Inspiration Sources
// @Produce json
// @Param sourceID path string true "Source ID"
// @Success 200 {object} services.ScrapeOutcome "Scrape outcome"
// @Failure 502 {object} ErrorResponse "Scrape or AI provider failure"
// @Router /source/{sourceID}/scrape [post]
func (h sourceHandler) scrapeSource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		sourceID := chi.URLParam(r, "sourceID")
		if sourceID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing sourceID"))
			return
		}

		outcome, err := h.topics.ScrapeSource(r.Context(), workspace.ID, sourceID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, outcome)
	}
}

// scrapeAllSources runs the pipeline for every active source in the workspace
// @Summary Scrape all active sources
// @Description Sequentially scrapes every active source; failures are isolated per source
// @Tags Inspiration Sources
// @Produce json
// @Success 200 {array} services.SourceResult "Per-source results"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /sources/scrape-all [post]
func (h sourceHandler) scrapeAllSources() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		results, err := h.topics.ScrapeAll(r.Context(), workspace.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, results)
	}
}

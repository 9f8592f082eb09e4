package api

import (
	"encoding/json"
	"net/http"
	"time"

	"contentpilot/database"
	"contentpilot/errs"
	"contentpilot/models"
	"contentpilot/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.SocialProfileRepo
	styleRepo   *database.StyleProfileRepo
	style       *services.StyleService
}

func newProfileHandler(profileRepo *database.SocialProfileRepo, styleRepo *database.StyleProfileRepo, style *services.StyleService) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		styleRepo:   styleRepo,
		style:       style,
	}
}

type profileSourceRequest struct {
	Platform   string `json:"platform"`
	ProfileURL string `json:"profileUrl"`
	Username   string `json:"username"`
}

type createProfileRequest struct {
	Name    string                 `json:"name"`
	Sources []profileSourceRequest `json:"sources"`
}

// getAllProfiles returns the workspace's writing profiles, reconstructed by
// grouping social profile rows
// @Summary Get all writing profiles
// @Tags Writing Profiles
// @Produce json
// @Success 200 {array} models.WritingProfile "Writing profiles with style data"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /writing-profiles [get]
func (h profileHandler) getAllProfiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		rows, err := h.profileRepo.FindByWorkspace(workspace.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "social profiles", err))
			return
		}

		ids := make([]string, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
		}
		styles, err := h.styleRepo.FindLatestByProfileIDs(ids)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "style profiles", err))
			return
		}

		h.responder.WriteJSON(w, services.GroupWritingProfiles(rows, styles))
	}
}

// createProfile creates a writing profile: a named group of social sources
// @Summary Create writing profile
// @Tags Writing Profiles
// @Accept json
// @Produce json
// @Param profile body createProfileRequest true "Profile to create"
// @Success 201 {object} models.WritingProfile "Created profile"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Router /writing-profile [post]
func (h profileHandler) createProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req createProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		valid := make([]profileSourceRequest, 0, len(req.Sources))
		for _, src := range req.Sources {
			if src.Platform != "" && src.ProfileURL != "" {
				valid = append(valid, src)
			}
		}
		if len(valid) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithDetails("invalid profile", "at least one source with platform and profileUrl is required"))
			return
		}

		groupID := models.NewID("profile")
		now := time.Now().UTC()
		rows := make([]*models.SocialProfile, 0, len(valid))
		for _, src := range valid {
			platform := models.Platform(src.Platform)
			if !platform.Valid() {
				h.responder.WriteError(w, errs.NewUnsupportedPlatformError(src.Platform))
				return
			}
			username := src.Username
			if username == "" {
				username = services.ExtractUsernameFromURL(src.ProfileURL, platform)
			}
			rows = append(rows, &models.SocialProfile{
				ID:           models.NewID("source"),
				WorkspaceID:  workspace.ID,
				Platform:     platform,
				ProfileURL:   src.ProfileURL,
				Username:     username,
				ProfileName:  req.Name,
				ProfileGroup: groupID,
				IsActive:     true,
				CreatedAt:    now,
			})
		}

		if err := h.profileRepo.AddAll(rows); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "social profiles", err))
			return
		}

		profiles := services.GroupWritingProfiles(rows, nil)
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, profiles[0])
	}
}

// deleteProfile removes a writing profile and its style history
// @Summary Delete writing profile
// @Tags Writing Profiles
// @Param groupID path string true "Profile group ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /writing-profile/{groupID} [delete]
func (h profileHandler) deleteProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		groupID := chi.URLParam(r, "groupID")
		rows, err := h.profileRepo.FindByGroup(workspace.ID, groupID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "social profiles", err))
			return
		}
		if len(rows) == 0 {
			h.responder.WriteError(w, errs.NewNotFound("writing profile"))
			return
		}

		// Clear style history before the source rows it anchors to
		for _, row := range rows {
			if err := h.styleRepo.DeleteByProfileID(row.ID); err != nil {
				h.logger.Warn().Err(err).Str("profileId", row.ID).Msg("Failed to delete style history")
			}
		}

		if _, err := h.profileRepo.DeleteByGroup(workspace.ID, groupID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "social profiles", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// analyzeProfile scrapes the profile's sources and derives a style profile
// @Summary Analyze writing style
// @Description Scrapes each source, accumulates cleaned content and asks the AI to describe the voice
// @Tags Writing Profiles
// @Produce json
// @Param groupID path string true "Profile group ID"
// @Success 200 {object} services.AnalyzeOutcome "Analysis outcome, possibly degraded"
// @Failure 422 {object} ErrorResponse "Insufficient content to analyze"
// @Router /writing-profile/{groupID}/analyze [post]
func (h profileHandler) analyzeProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		groupID := chi.URLParam(r, "groupID")
		if groupID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing groupID"))
			return
		}

		outcome, err := h.style.AnalyzeGroup(r.Context(), workspace.ID, groupID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, outcome)
	}
}

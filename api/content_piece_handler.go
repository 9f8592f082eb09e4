package api

import (
	"encoding/json"
	"net/http"
	"time"

	"contentpilot/database"
	"contentpilot/errs"
	"contentpilot/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contentPieceHandler struct {
	responder Responder
	logger    zerolog.Logger
	pieceRepo *database.ContentPieceRepo
}

func newContentPieceHandler(pieceRepo *database.ContentPieceRepo) contentPieceHandler {
	logger := log.With().Str("handlerName", "contentPieceHandler").Logger()

	return contentPieceHandler{
		responder: NewResponder(logger),
		logger:    logger,
		pieceRepo: pieceRepo,
	}
}

type updateContentPieceRequest struct {
	Title           *string                 `json:"title"`
	Content         *string                 `json:"content"`
	Status          *string                 `json:"status"`
	ScheduledFor    *time.Time              `json:"scheduledFor"`
	PublishedAt     *time.Time              `json:"publishedAt"`
	EngagementStats *models.EngagementStats `json:"engagementStats"`
}

var validStatuses = map[string]bool{
	models.StatusDraft:     true,
	models.StatusScheduled: true,
	models.StatusPublished: true,
	models.StatusFailed:    true,
}

// getAllContentPieces lists the workspace's content pieces
// @Summary Get all content pieces
// @Tags Content Pieces
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} models.ContentPiece "Content pieces, newest first"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /content-pieces [get]
func (h contentPieceHandler) getAllContentPieces() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		status := r.URL.Query().Get("status")
		if status != "" && !validStatuses[status] {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown status"))
			return
		}

		pieces, err := h.pieceRepo.FindByWorkspace(workspace.ID, status)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "content pieces", err))
			return
		}

		h.responder.WriteJSON(w, pieces)
	}
}

// getContentPiece retrieves one content piece
// @Summary Get content piece
// @Tags Content Pieces
// @Produce json
// @Param pieceID path string true "Content piece ID" format(uuid)
// @Success 200 {object} models.ContentPiece "Content piece"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /content-piece/{pieceID} [get]
func (h contentPieceHandler) getContentPiece() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		piece, err := h.loadPiece(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, piece)
	}
}

// updateContentPiece edits content, status or scheduling of a piece
// @Summary Update content piece
// @Tags Content Pieces
// @Accept json
// @Produce json
// @Param pieceID path string true "Content piece ID" format(uuid)
// @Param piece body updateContentPieceRequest true "Fields to update"
// @Success 200 {object} models.ContentPiece "Updated piece"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /content-piece/{pieceID} [put]
func (h contentPieceHandler) updateContentPiece() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		piece, err := h.loadPiece(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req updateContentPieceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Status != nil {
			if !validStatuses[*req.Status] {
				h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown status"))
				return
			}
			piece.Status = *req.Status
		}
		if req.Title != nil {
			piece.Title = *req.Title
		}
		if req.Content != nil {
			piece.Content = *req.Content
		}
		if req.ScheduledFor != nil {
			piece.ScheduledFor = req.ScheduledFor
		}
		if req.PublishedAt != nil {
			piece.PublishedAt = req.PublishedAt
		}
		if req.EngagementStats != nil {
			piece.EngagementStats = req.EngagementStats
		}
		piece.UpdatedAt = time.Now().UTC()

		if err := h.pieceRepo.Update(piece); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "content piece", err))
			return
		}

		h.responder.WriteJSON(w, piece)
	}
}

// deleteContentPiece removes a content piece
// @Summary Delete content piece
// @Tags Content Pieces
// @Param pieceID path string true "Content piece ID" format(uuid)
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /content-piece/{pieceID} [delete]
func (h contentPieceHandler) deleteContentPiece() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		piece, err := h.loadPiece(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.pieceRepo.Delete(piece.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "content piece", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// loadPiece parses the path ID and enforces workspace ownership
func (h contentPieceHandler) loadPiece(r *http.Request) (*models.ContentPiece, error) {
	workspace, err := ctxGetWorkspace(r.Context())
	if err != nil {
		return nil, err
	}

	pieceID, err := uuid.Parse(chi.URLParam(r, "pieceID"))
	if err != nil {
		return nil, errs.NewBadRequestError("invalid pieceID")
	}

	piece, err := h.pieceRepo.FindByID(pieceID)
	if err != nil || piece.WorkspaceID != workspace.ID {
		return nil, errs.NewNotFound("content piece")
	}

	return piece, nil
}

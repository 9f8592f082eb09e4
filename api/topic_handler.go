package api

import (
	"encoding/json"
	"net/http"

	"contentpilot/errs"
	"contentpilot/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// topicStore is the persistence surface the handler needs; satisfied by
// *database.HotTopicRepo.
type topicStore interface {
	FindByWorkspace(workspaceID string) ([]*models.HotTopic, error)
	FindByID(id string) (*models.HotTopic, error)
	Update(topic *models.HotTopic) error
	Delete(id string) error
	DeleteByWorkspace(workspaceID string) (int64, error)
}

type topicHandler struct {
	responder Responder
	logger    zerolog.Logger
	topicRepo topicStore
}

func newTopicHandler(topicRepo topicStore) topicHandler {
	logger := log.With().Str("handlerName", "topicHandler").Logger()

	return topicHandler{
		responder: NewResponder(logger),
		logger:    logger,
		topicRepo: topicRepo,
	}
}

type updateTopicRequest struct {
	IsSelected *bool `json:"isSelected"`
	Priority   *int  `json:"priority"`
}

// getAllTopics retrieves every hot topic in the workspace
// @Summary Get all hot topics
// @Tags Hot Topics
// @Produce json
// @Success 200 {array} models.HotTopic "Topics ordered by engagement score"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /topics [get]
func (h topicHandler) getAllTopics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		topics, err := h.topicRepo.FindByWorkspace(workspace.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "hot topics", err))
			return
		}

		h.responder.WriteJSON(w, topics)
	}
}

// updateTopic toggles selection or changes priority of a topic
// @Summary Update hot topic
// @Tags Hot Topics
// @Accept json
// @Produce json
// @Param topicID path string true "Topic ID"
// @Param topic body updateTopicRequest true "Fields to update"
// @Success 200 {object} models.HotTopic "Updated topic"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /topic/{topicID} [put]
func (h topicHandler) updateTopic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		topicID := chi.URLParam(r, "topicID")
		topic, err := h.topicRepo.FindByID(topicID)
		if err != nil || topic.WorkspaceID != workspace.ID {
			h.responder.WriteError(w, errs.NewNotFound("hot topic"))
			return
		}

		var req updateTopicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.IsSelected != nil {
			topic.IsSelected = *req.IsSelected
		}
		if req.Priority != nil {
			topic.Priority = *req.Priority
		}

		if err := h.topicRepo.Update(topic); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "hot topic", err))
			return
		}

		h.responder.WriteJSON(w, topic)
	}
}

// deleteTopic removes one topic
// @Summary Delete hot topic
// @Tags Hot Topics
// @Param topicID path string true "Topic ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Not Found"
// @Router /topic/{topicID} [delete]
func (h topicHandler) deleteTopic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		topicID := chi.URLParam(r, "topicID")
		topic, err := h.topicRepo.FindByID(topicID)
		if err != nil || topic.WorkspaceID != workspace.ID {
			h.responder.WriteError(w, errs.NewNotFound("hot topic"))
			return
		}

		if err := h.topicRepo.Delete(topicID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "hot topic", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// deleteSelectedTopics removes every topic currently marked selected
// @Summary Delete selected hot topics
// @Tags Hot Topics
// @Produce json
// @Success 200 {object} map[string]int "Count of deleted topics"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /topics/selected [delete]
func (h topicHandler) deleteSelectedTopics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		topics, err := h.topicRepo.FindByWorkspace(workspace.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "hot topics", err))
			return
		}

		deleted := 0
		for _, topic := range topics {
			if !topic.IsSelected {
				continue
			}
			if err := h.topicRepo.Delete(topic.ID); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("delete", "hot topic", err))
				return
			}
			deleted++
		}

		h.responder.WriteJSON(w, map[string]int{"deleted": deleted})
	}
}

// deleteAllTopics clears every topic in the workspace
// @Summary Delete all hot topics
// @Tags Hot Topics
// @Produce json
// @Success 200 {object} map[string]int64 "Count of deleted topics"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /topics [delete]
func (h topicHandler) deleteAllTopics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.topicRepo.DeleteByWorkspace(workspace.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "hot topics", err))
			return
		}

		h.responder.WriteJSON(w, map[string]int64{"deleted": deleted})
	}
}

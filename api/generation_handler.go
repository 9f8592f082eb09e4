package api

import (
	"encoding/json"
	"net/http"

	"contentpilot/errs"
	"contentpilot/services"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type generationHandler struct {
	responder Responder
	logger    zerolog.Logger
	generator *services.GeneratorService
}

func newGenerationHandler(generator *services.GeneratorService) generationHandler {
	logger := log.With().Str("handlerName", "generationHandler").Logger()

	return generationHandler{
		responder: NewResponder(logger),
		logger:    logger,
		generator: generator,
	}
}

// generateContent creates a platform-tailored draft from a hot topic
// @Summary Generate content
// @Description Generates a platform-tailored post from a topic and optional writing style, persisted as a draft
// @Tags Content Generation
// @Accept json
// @Produce json
// @Param request body services.GenerateRequest true "Generation request"
// @Success 201 {object} models.ContentPiece "Persisted draft"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 502 {object} ErrorResponse "AI provider failure"
// @Router /generate [post]
func (h generationHandler) generateContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workspace, err := ctxGetWorkspace(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req services.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		piece, err := h.generator.Generate(r.Context(), workspace.ID, req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, piece)
	}
}

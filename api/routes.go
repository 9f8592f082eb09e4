package api

import (
	"net/http"
	"time"

	"contentpilot/database"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupFrontendRoutes sets up all routes with authentication
func setupFrontendRoutes(r chi.Router, db database.Database, handlers *routeHandlers, authMiddleware authMiddleware, workspaceMiddleware workspaceMiddleware, startupTime time.Time) {
	r.Get("/health", healthHandler(db, startupTime))

	// Authenticated, workspace-scoped routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(workspaceMiddleware.resolve)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Workspace Handler endpoints
		r.Get("/workspace", handlers.workspaceHandler.getWorkspace())

		// Inspiration Source Handler endpoints
		r.Get("/sources", handlers.sourceHandler.getAllSources())
		r.Post("/source", handlers.sourceHandler.createSource())
		r.Put("/source/{sourceID}", handlers.sourceHandler.updateSource())
		r.Delete("/source/{sourceID}", handlers.sourceHandler.deleteSource())
		r.Post("/source/{sourceID}/scrape", handlers.sourceHandler.scrapeSource())
		r.Post("/sources/scrape-all", handlers.sourceHandler.scrapeAllSources())

		// Hot Topic Handler endpoints
		r.Get("/topics", handlers.topicHandler.getAllTopics())
		r.Put("/topic/{topicID}", handlers.topicHandler.updateTopic())
		r.Delete("/topic/{topicID}", handlers.topicHandler.deleteTopic())
		r.Delete("/topics/selected", handlers.topicHandler.deleteSelectedTopics())
		r.Delete("/topics", handlers.topicHandler.deleteAllTopics())

		// Writing Profile Handler endpoints
		r.Get("/writing-profiles", handlers.profileHandler.getAllProfiles())
		r.Post("/writing-profile", handlers.profileHandler.createProfile())
		r.Delete("/writing-profile/{groupID}", handlers.profileHandler.deleteProfile())
		r.Post("/writing-profile/{groupID}/analyze", handlers.profileHandler.analyzeProfile())

		// Content Generation endpoint
		r.Post("/generate", handlers.generationHandler.generateContent())

		// Content Piece Handler endpoints
		r.Get("/content-pieces", handlers.contentPieceHandler.getAllContentPieces())
		r.Get("/content-piece/{pieceID}", handlers.contentPieceHandler.getContentPiece())
		r.Put("/content-piece/{pieceID}", handlers.contentPieceHandler.updateContentPiece())
		r.Delete("/content-piece/{pieceID}", handlers.contentPieceHandler.deleteContentPiece())
	})
}

func healthHandler(db database.Database, startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthHandler").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		dbStatus := "ok"
		if err := db.Ping(); err != nil {
			log.Error().Err(err).Msg("Database ping failed")
			status = "degraded"
			dbStatus = "unreachable"
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		responder.WriteJSON(w, map[string]any{
			"status":   status,
			"database": dbStatus,
			"uptime":   time.Since(startupTime).String(),
		})
	}
}

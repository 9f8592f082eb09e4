package api

import (
	"contentpilot/database"
	"contentpilot/services"
)

// Services bundles the domain services the API depends on.
type Services struct {
	Workspace *services.WorkspaceService
	Topics    *services.TopicService
	Style     *services.StyleService
	Generator *services.GeneratorService
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, svcs Services) *routeHandlers {
	return &routeHandlers{
		workspaceHandler:    newWorkspaceHandler(),
		sourceHandler:       newSourceHandler(database.InspirationSourceRepo(), svcs.Topics),
		topicHandler:        newTopicHandler(database.HotTopicRepo()),
		profileHandler:      newProfileHandler(database.SocialProfileRepo(), database.StyleProfileRepo(), svcs.Style),
		generationHandler:   newGenerationHandler(svcs.Generator),
		contentPieceHandler: newContentPieceHandler(database.ContentPieceRepo()),
	}
}

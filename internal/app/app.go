// internal/app/app.go
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/lesanlabs/SpeechExplorer/internal/api"
	"github.com/lesanlabs/SpeechExplorer/internal/config"
	"github.com/lesanlabs/SpeechExplorer/internal/services"
)

// App is the application context: every service wired once at startup and
// passed down explicitly. There are no process-wide singletons.
type App struct {
	Config         *config.Config
	SessionService *services.SessionService
	SearchService  *services.SearchService
	ExportService  *services.ExportService
	Handler        *api.Handler
}

// New builds the application context from configuration, in dependency
// order: storage-backed services first, then the request handler.
func New(cfg *config.Config) (*App, error) {
	sessionService, err := services.NewSessionService(cfg.SpeechDir())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session service: %w", err)
	}

	exportService, err := services.NewExportService(cfg.ExportDir())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize export service: %w", err)
	}

	searchService := services.NewSearchService()

	handler := api.NewHandler(sessionService, searchService, exportService)

	return &App{
		Config:         cfg,
		SessionService: sessionService,
		SearchService:  searchService,
		ExportService:  exportService,
		Handler:        handler,
	}, nil
}

// Router builds the HTTP router for this application context.
func (a *App) Router() *gin.Engine {
	return api.SetupRouter(a.Handler, api.RouterConfig{
		StaticDir:    a.Config.StaticDir,
		TemplatesDir: a.Config.TemplatesDir,
		DebugMode:    a.Config.DebugMode,
	})
}

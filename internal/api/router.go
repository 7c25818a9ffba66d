// internal/api/router.go
package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// RouterConfig carries the paths the router needs from the application.
type RouterConfig struct {
	StaticDir    string
	TemplatesDir string
	DebugMode    bool
}

// SetupRouter configures the HTTP routes on a fresh gin engine. The handler
// is passed in explicitly; no process-wide state is consulted.
func SetupRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(corsMiddleware())

	r.Static("/static", cfg.StaticDir)
	r.LoadHTMLGlob(filepath.Join(cfg.TemplatesDir, "*.html"))

	// Page routes
	r.GET("/", handler.IndexPage)
	r.GET("/explorer", handler.ExplorerPage)
	r.GET("/sessions/:id", handler.SessionPage)
	r.GET("/sessions/:id/download", handler.DownloadTranscript)

	// API routes
	api := r.Group("/api")
	{
		api.GET("/segments", handler.ListSegments)

		sessionsGroup := api.Group("/sessions")
		{
			sessionsGroup.GET("/:id", handler.GetSession)
			sessionsGroup.GET("/:id/export", handler.ExportSession)
		}
	}

	return r
}

// corsMiddleware implements cross-origin resource sharing.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AliAmouz/rustyPromodo/internal/handler"
	"github.com/AliAmouz/rustyPromodo/internal/middleware"
)

// New builds the gin engine for the read-only history API.
func New(sessionHandler *handler.SessionHandler, corsOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery(), middleware.CORS(corsOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.GET("/sessions", sessionHandler.ListSessions)
	api.GET("/stats", sessionHandler.GetStats)
	api.GET("/export", sessionHandler.ExportSessions)

	return engine
}

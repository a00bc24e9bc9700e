package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/AliAmouz/rustyPromodo/internal/errors"
	"github.com/AliAmouz/rustyPromodo/internal/service"
)

// SessionHandler serves the read-only history API.
type SessionHandler struct {
	sessionService *service.SessionService
}

func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	limit := 50
	rawLimit := c.Query("limit")
	if rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			writeError(c, apperrors.BadRequest("invalid_limit", "limit must be an integer"))
			return
		}
		limit = parsed
	}

	sessions, err := h.sessionService.History(c.Request.Context(), limit)
	if err != nil {
		writeError(c, apperrors.Internal("failed to list sessions"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *SessionHandler) GetStats(c *gin.Context) {
	stats, err := h.sessionService.Stats(c.Request.Context())
	if err != nil {
		writeError(c, apperrors.Internal("failed to compute stats"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (h *SessionHandler) ExportSessions(c *gin.Context) {
	sessions, err := h.sessionService.Export(c.Request.Context())
	if err != nil {
		writeError(c, apperrors.Internal("failed to export sessions"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

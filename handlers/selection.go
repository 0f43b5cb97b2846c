package handlers

import (
	"errors"
	"net/http"

	"modernschedule/models"
	"modernschedule/services/selection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SelectionHandler reads and writes the session's transient cursors.
type SelectionHandler struct {
	Service selection.SelectionService
}

func NewSelectionHandler(svc selection.SelectionService) *SelectionHandler {
	return &SelectionHandler{Service: svc}
}

// GetSelectionHandler handles GET /api/selection.
func (h *SelectionHandler) GetSelectionHandler(c *gin.Context) {
	logger := getLogger(c)

	sel, err := h.Service.Get(c.Request.Context(), c.GetString("sessionID"))
	if err != nil {
		logger.Error("Failed to load selection", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load selection", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sel)
}

// SetSelectionHandler handles PUT /api/selection/:cursor.
func (h *SelectionHandler) SetSelectionHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing value in request body"})
		return
	}

	cursor := models.SelectionCursor(c.Param("cursor"))
	sel, err := h.Service.Set(c.Request.Context(), c.GetString("sessionID"), cursor, req.Value)
	if err != nil {
		if errors.Is(err, selection.ErrUnknownCursor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown cursor, expected date, time or day"})
			return
		}
		logger.Error("Failed to set selection", zap.String("cursor", string(cursor)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set selection", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sel)
}

// ClearSelectionHandler handles DELETE /api/selection/:cursor.
func (h *SelectionHandler) ClearSelectionHandler(c *gin.Context) {
	logger := getLogger(c)

	cursor := models.SelectionCursor(c.Param("cursor"))
	sel, err := h.Service.Clear(c.Request.Context(), c.GetString("sessionID"), cursor)
	if err != nil {
		if errors.Is(err, selection.ErrUnknownCursor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown cursor, expected date, time or day"})
			return
		}
		logger.Error("Failed to clear selection", zap.String("cursor", string(cursor)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear selection", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sel)
}

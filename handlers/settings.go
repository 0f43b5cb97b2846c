package handlers

import (
	"net/http"
	"regexp"

	"modernschedule/services/settings"

	"github.com/gin-gonic/gin"
)

var slotShape = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// SettingsHandler manages the global bookable slot list.
type SettingsHandler struct {
	Slots settings.SlotSettingsService
}

func NewSettingsHandler(slots settings.SlotSettingsService) *SettingsHandler {
	return &SettingsHandler{Slots: slots}
}

// ListSlotsHandler handles GET /api/settings/slots.
func (h *SettingsHandler) ListSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": h.Slots.ListSlots()})
}

// ToggleSlotHandler handles POST /api/settings/slots.
func (h *SettingsHandler) ToggleSlotHandler(c *gin.Context) {
	var req struct {
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot in request body"})
		return
	}
	if !slotShape.MatchString(req.Slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slot must be HH:MM"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeSlots": h.Slots.ToggleSlot(req.Slot)})
}

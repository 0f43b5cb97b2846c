package handlers

import (
	"net/http"

	"modernschedule/models"
	"modernschedule/services/booking"
	"modernschedule/services/settings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the client booking flow.
type BookingHandler struct {
	Service booking.BookingService
	Slots   settings.SlotSettingsService
}

func NewBookingHandler(svc booking.BookingService, slots settings.SlotSettingsService) *BookingHandler {
	return &BookingHandler{Service: svc, Slots: slots}
}

// GetTimeSlotsHandler handles GET /api/booking/slots.
func (h *BookingHandler) GetTimeSlotsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": h.Slots.ListSlots()})
}

// CreateBookingHandler handles POST /api/booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	record, result := h.Service.Book(req)
	if !result.Valid {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Appointment booked successfully!",
		"booking": record,
	})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	availabilityRepo "modernschedule/database/repository/availability"
	"modernschedule/models"
	"modernschedule/services/availability"
	"modernschedule/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the per-day time range editor.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func availabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, availability.ErrInvalidDate),
		errors.Is(err, availability.ErrInvalidTime),
		errors.Is(err, availabilityRepo.ErrRangeField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, availabilityRepo.ErrDayNotFound),
		errors.Is(err, availabilityRepo.ErrRangeIndex):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability", "message": err.Error()})
	}
}

// GetWeekHandler handles GET /api/availability/week.
func (h *AvailabilityHandler) GetWeekHandler(c *gin.Context) {
	ref := time.Now()
	if raw := c.Query("ref"); raw != "" {
		parsed, err := time.Parse(schedule.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ref date, expected YYYY-MM-DD"})
			return
		}
		ref = parsed
	}
	c.JSON(http.StatusOK, gin.H{"days": h.Service.Week(ref)})
}

// GetDayHandler handles GET /api/availability/day/:date.
func (h *AvailabilityHandler) GetDayHandler(c *gin.Context) {
	entry, err := h.Service.Day(c.Param("date"))
	if err != nil {
		availabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// AddRangeHandler handles POST /api/availability/day/:date/ranges.
func (h *AvailabilityHandler) AddRangeHandler(c *gin.Context) {
	entry, err := h.Service.AddRange(c.Param("date"))
	if err != nil {
		availabilityError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateRangeHandler handles PUT /api/availability/day/:date/ranges/:index.
func (h *AvailabilityHandler) UpdateRangeHandler(c *gin.Context) {
	logger := getLogger(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid range index"})
		return
	}

	var req models.UpdateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid range update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	entry, err := h.Service.UpdateRange(c.Param("date"), index, req.Field, req.Value)
	if err != nil {
		availabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// RemoveRangeHandler handles DELETE /api/availability/day/:date/ranges/:index.
func (h *AvailabilityHandler) RemoveRangeHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid range index"})
		return
	}

	entry, err := h.Service.RemoveRange(c.Param("date"), index)
	if err != nil {
		availabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// SaveHandler handles POST /api/availability/day/:date/save.
func (h *AvailabilityHandler) SaveHandler(c *gin.Context) {
	entry, err := h.Service.Save(c.Param("date"))
	if err != nil {
		availabilityError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability saved successfully!", "day": entry})
}

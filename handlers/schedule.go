package handlers

import (
	"net/http"
	"time"

	"modernschedule/services/schedule"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the calendar views: the booking flow's month grid
// and the management flow's week strip.
type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// parseNavigation reads the optional "ref" (YYYY-MM-DD, default today) and
// "direction" (forward|back) query parameters and returns the resulting
// reference date.
func parseNavigation(c *gin.Context, unit schedule.Unit) (time.Time, bool) {
	ref := time.Now()
	if raw := c.Query("ref"); raw != "" {
		parsed, err := time.Parse(schedule.DateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ref date, expected YYYY-MM-DD"})
			return time.Time{}, false
		}
		ref = parsed
	}

	switch dir := c.Query("direction"); dir {
	case "":
	case string(schedule.DirectionForward), string(schedule.DirectionBack):
		ref = schedule.Advance(ref, unit, schedule.Direction(dir))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid direction, expected forward or back"})
		return time.Time{}, false
	}
	return ref, true
}

// MonthHandler handles GET /api/schedule/month.
func (h *ScheduleHandler) MonthHandler(c *gin.Context) {
	ref, ok := parseNavigation(c, schedule.UnitMonth)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, schedule.MonthGrid(ref))
}

// WeekHandler handles GET /api/schedule/week.
func (h *ScheduleHandler) WeekHandler(c *gin.Context) {
	ref, ok := parseNavigation(c, schedule.UnitWeek)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, schedule.WeekStrip(ref))
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	availabilityRepo "modernschedule/database/repository/availability"
	"modernschedule/handlers"
	"modernschedule/models"
	"modernschedule/routes"
	"modernschedule/services/auth"
	availabilitySvc "modernschedule/services/availability"
	"modernschedule/services/booking"
	"modernschedule/services/notification"
	"modernschedule/services/selection"
	"modernschedule/services/settings"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	mr := miniredis.RunT(t)
	sessions := redis.NewClient(&redis.Options{Addr: mr.Addr(), DB: 0})
	cursors := redis.NewClient(&redis.Options{Addr: mr.Addr(), DB: 1})

	logger := zap.NewNop()
	notifier := notification.NewLogNotifier(logger)

	authenticator, err := auth.NewStaticAuthenticator("admin", "password", sessions, time.Hour)
	require.NoError(t, err)

	availRepo := availabilityRepo.NewMemoryAvailabilityRepo(models.TimeRange{StartTime: "09:00", EndTime: "17:00"})
	availabilityService := &availabilitySvc.DefaultAvailabilityService{Repo: availRepo, Notifier: notifier}
	bookingService := &booking.DefaultBookingService{Logger: logger, Notifier: notifier}
	slotSettings := settings.NewSlotSettings([]string{"09:00", "10:00", "11:00"})
	selectionService := selection.NewRedisSelectionService(cursors, time.Hour)

	bundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(authenticator, notifier),
		Schedule:     handlers.NewScheduleHandler(),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Booking:      handlers.NewBookingHandler(bookingService, slotSettings),
		Settings:     handlers.NewSettingsHandler(slotSettings),
		Selection:    handlers.NewSelectionHandler(selectionService),
		Sessions:     sessions,
	}

	router := gin.New()
	routes.RegisterRoutes(router, bundle)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin", "password": "password"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials. Please try again.")

	// Still logged out: the management screens stay closed.
	w = doJSON(t, router, http.MethodGet, "/api/availability/week", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout_RevokesSession(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The token is still well-formed but the session behind it is gone.
	w = doJSON(t, router, http.MethodGet, "/api/availability/week", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScheduleViews(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/schedule/month?ref=2025-08-20", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var grid models.MonthGrid
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grid))
	assert.Equal(t, "August", grid.Month)
	assert.Len(t, grid.Cells, 36) // 5 placeholders + 31 days

	w = doJSON(t, router, http.MethodGet, "/api/schedule/week?ref=2025-06-15&direction=forward", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var strip models.WeekStrip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &strip))
	require.Len(t, strip.Days, 7)
	assert.Equal(t, "2025-06-16", strip.Days[0])

	w = doJSON(t, router, http.MethodGet, "/api/schedule/month?direction=sideways", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityEditorFlow(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router)

	// Add two ranges to a day.
	w := doJSON(t, router, http.MethodPost, "/api/availability/day/2025-06-09/ranges", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doJSON(t, router, http.MethodPost, "/api/availability/day/2025-06-09/ranges", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Edit the second one.
	w = doJSON(t, router, http.MethodPut, "/api/availability/day/2025-06-09/ranges/1", token,
		models.UpdateRangeRequest{Field: models.RangeFieldEnd, Value: "12:30"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var entry models.DayAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	require.Len(t, entry.TimeRanges, 2)
	assert.Equal(t, "12:30", entry.TimeRanges[1].EndTime)

	// Remove the first; the edited one survives at index 0.
	w = doJSON(t, router, http.MethodDelete, "/api/availability/day/2025-06-09/ranges/0", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	require.Len(t, entry.TimeRanges, 1)
	assert.Equal(t, "12:30", entry.TimeRanges[0].EndTime)

	// Week view shows the edited day.
	w = doJSON(t, router, http.MethodGet, "/api/availability/week?ref=2025-06-09", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var week struct {
		Days []models.WeekDay `json:"days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &week))
	require.Len(t, week.Days, 7)
	assert.Len(t, week.Days[0].TimeRanges, 1)

	// Save logs and confirms.
	w = doJSON(t, router, http.MethodPost, "/api/availability/day/2025-06-09/save", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Availability saved successfully!")
}

func TestAvailability_ErrorMapping(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodPut, "/api/availability/day/2025-06-09/ranges/0", token,
		models.UpdateRangeRequest{Field: models.RangeFieldStart, Value: "10:00"})
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/availability/day/not-a-date/ranges", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	doJSON(t, router, http.MethodPost, "/api/availability/day/2025-06-09/ranges", token, nil)
	w = doJSON(t, router, http.MethodPut, "/api/availability/day/2025-06-09/ranges/0", token,
		models.UpdateRangeRequest{Field: models.RangeFieldStart, Value: "25:99"})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodDelete, "/api/availability/day/2025-06-09/ranges/9", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
}

func TestBookingFlow(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/booking/slots", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "09:00")

	w = doJSON(t, router, http.MethodPost, "/api/booking", token,
		models.BookingRequest{Name: "Alice", Email: "not-an-email", Date: "2025-06-09", Time: "10:00"})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Email is invalid")

	w = doJSON(t, router, http.MethodPost, "/api/booking", token,
		models.BookingRequest{Name: "Alice", Email: "a@b.com", Date: "2025-06-09", Time: "10:00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Message string         `json:"message"`
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Appointment booked successfully!", resp.Message)
	assert.NotEmpty(t, resp.Booking.ID)
}

func TestSettings_ToggleSlot(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/settings/slots", token, gin.H{"slot": "10:00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "10:00")

	w = doJSON(t, router, http.MethodPost, "/api/settings/slots", token, gin.H{"slot": "10:00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "10:00")

	// The booking view reads the same list.
	w = doJSON(t, router, http.MethodGet, "/api/booking/slots", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "10:00")

	w = doJSON(t, router, http.MethodPost, "/api/settings/slots", token, gin.H{"slot": "later"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectionCursors(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodPut, "/api/selection/date", token, gin.H{"value": "2025-06-09"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, router, http.MethodPut, "/api/selection/time", token, gin.H{"value": "10:00"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/selection", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var sel models.Selection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sel))
	assert.Equal(t, "2025-06-09", sel.SelectedDate)
	assert.Equal(t, "10:00", sel.SelectedTime)

	w = doJSON(t, router, http.MethodDelete, "/api/selection/date", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sel))
	assert.Empty(t, sel.SelectedDate)
	assert.Equal(t, "10:00", sel.SelectedTime)

	w = doJSON(t, router, http.MethodPut, "/api/selection/week", token, gin.H{"value": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestManagementRequiresAuth(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{
		"/api/availability/week",
		"/api/schedule/month",
		"/api/booking/slots",
		"/api/settings/slots",
		"/api/selection",
	} {
		w := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "path %s", path)
	}

	w := doJSON(t, router, http.MethodGet, "/api/availability/week", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionsAreIsolatedPerLogin(t *testing.T) {
	router := setupRouter(t)
	a := login(t, router)
	b := login(t, router)
	require.NotEqual(t, a, b)

	// Each login carries its own selection cursors.
	w := doJSON(t, router, http.MethodPut, "/api/selection/date", a, gin.H{"value": "2025-06-09"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/selection", b, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sel models.Selection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sel))
	assert.Empty(t, sel.SelectedDate, fmt.Sprintf("session b sees a's cursor: %+v", sel))
}

package routes

import (
	"net/http"
	"time"

	"modernschedule/handlers"
	"modernschedule/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the login gate.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)

		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterScheduleRoutes registers the calendar views.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("/month", hb.Schedule.MonthHandler)
		api.GET("/week", hb.Schedule.WeekHandler)
	}
}

// RegisterBookingRoutes registers the client booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("/slots", hb.Booking.GetTimeSlotsHandler)
		api.POST("", hb.Booking.CreateBookingHandler)
	}
}

// RegisterManagementRoutes registers the availability editor and settings.
func RegisterManagementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("/week", hb.Availability.GetWeekHandler)
		api.GET("/day/:date", hb.Availability.GetDayHandler)
		api.POST("/day/:date/ranges", hb.Availability.AddRangeHandler)
		api.PUT("/day/:date/ranges/:index", hb.Availability.UpdateRangeHandler)
		api.DELETE("/day/:date/ranges/:index", hb.Availability.RemoveRangeHandler)
		api.POST("/day/:date/save", hb.Availability.SaveHandler)
	}

	settingsGroup := r.Group("/api/settings")
	{
		settingsGroup.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		settingsGroup.GET("/slots", hb.Settings.ListSlotsHandler)
		settingsGroup.POST("/slots", hb.Settings.ToggleSlotHandler)
	}
}

// RegisterSelectionRoutes registers the session cursor endpoints.
func RegisterSelectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/selection")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.GET("", hb.Selection.GetSelectionHandler)
		api.PUT("/:cursor", hb.Selection.SetSelectionHandler)
		api.DELETE("/:cursor", hb.Selection.ClearSelectionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ModernSchedule"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterManagementRoutes(r, hb)
	RegisterSelectionRoutes(r, hb)
	RegisterHealthRoute(r)
}

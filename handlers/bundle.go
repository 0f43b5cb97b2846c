package handlers

import (
	"github.com/go-redis/redis/v8"
)

// HandlerBundle gathers all handlers plus the session store the route
// middleware needs.
type HandlerBundle struct {
	Auth         *AuthHandler
	Schedule     *ScheduleHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Settings     *SettingsHandler
	Selection    *SelectionHandler

	Sessions *redis.Client
}

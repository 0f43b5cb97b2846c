package booking

import (
	"modernschedule/models"
	"modernschedule/services/notification"

	"go.uber.org/zap"
)

// BookingService validates booking intake and records accepted bookings.
type BookingService interface {
	// Validate checks the name/email pair and reports per-field errors.
	Validate(name, email string) models.ValidationResult

	// Book validates the request and, when valid, records the booking:
	// it is assigned an ID, logged, and returned. Nothing persists it.
	// An invalid request returns a nil booking and the failed result.
	Book(req models.BookingRequest) (*models.Booking, models.ValidationResult)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Logger   *zap.Logger
	Notifier notification.Notifier
}

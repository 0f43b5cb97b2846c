package models

import "time"

// Booking represents a recorded booking attempt. Bookings are transient:
// they are logged when made and returned to the caller, never stored.
type Booking struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"` // "YYYY-MM-DD"
	Time      string    `json:"time"` // "HH:MM"
	CreatedAt time.Time `json:"createdAt"`
}

// BookingRequest is the intake payload for a new booking.
type BookingRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
}

// ValidationErrors carries per-field intake failures.
type ValidationErrors struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// ValidationResult is the outcome of booking intake validation.
type ValidationResult struct {
	Valid  bool             `json:"valid"`
	Errors ValidationErrors `json:"errors,omitzero"`
}

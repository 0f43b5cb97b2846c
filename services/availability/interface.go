package availability

import (
	"time"

	availabilityRepo "modernschedule/database/repository/availability"
	"modernschedule/models"
	"modernschedule/services/notification"
)

// AvailabilityService exposes the per-day time range editor backing the
// management screen.
type AvailabilityService interface {
	// Day returns the entry for a "YYYY-MM-DD" date.
	Day(date string) (models.DayAvailability, error)

	// Week returns the 7 days of the week containing ref (Monday first),
	// each zipped with its availability entry.
	Week(ref time.Time) []models.WeekDay

	// AddRange appends the default time range to the date's entry.
	AddRange(date string) (models.DayAvailability, error)

	// UpdateRange replaces the start or end of the range at index.
	UpdateRange(date string, index int, field models.RangeField, value string) (models.DayAvailability, error)

	// RemoveRange deletes the range at index.
	RemoveRange(date string, index int) (models.DayAvailability, error)

	// Save records the day's entry and notifies. The store is in-memory,
	// so this logs the snapshot rather than persisting it.
	Save(date string) (models.DayAvailability, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo     availabilityRepo.AvailabilityRepository
	Notifier notification.Notifier
}

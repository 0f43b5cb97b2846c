// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"errors"

	"modernschedule/models"
)

var (
	// ErrDayNotFound is returned when a mutation targets a date with no entry.
	ErrDayNotFound = errors.New("availability: no entry for date")
	// ErrRangeIndex is returned when a range index is out of bounds.
	ErrRangeIndex = errors.New("availability: range index out of bounds")
	// ErrRangeField is returned when an update names neither range field.
	ErrRangeField = errors.New("availability: unknown range field")
)

// AvailabilityRepository is the store of editable per-day time ranges.
// Entries are created lazily by AddRange and never removed; emptying a
// day's range list leaves the entry in place. Reads never create entries.
//
// Mutations replace the entry's range slice wholesale, so a previously
// returned DayAvailability never observes a partial write.
type AvailabilityRepository interface {
	// Get returns the entry for date, or a synthesized empty entry when
	// absent. TimeRanges is never nil, so an absent day and an emptied
	// day are indistinguishable. It never fails and has no side effects.
	Get(date string) models.DayAvailability

	// AddRange appends the default time range to date's entry, creating
	// the entry if absent, and returns the updated entry.
	AddRange(date string) models.DayAvailability

	// UpdateRange replaces one field of the range at index.
	UpdateRange(date string, index int, field models.RangeField, value string) (models.DayAvailability, error)

	// RemoveRange deletes the range at index, preserving the order of the
	// remaining ranges.
	RemoveRange(date string, index int) (models.DayAvailability, error)
}

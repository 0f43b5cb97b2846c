// File: database/repository/availability/memory.go
package availabilityRepo

import (
	"sync"

	"modernschedule/models"
)

// memoryAvailabilityRepo keeps availability in process memory. The data is
// process-lifetime only; a restart discards it.
type memoryAvailabilityRepo struct {
	mu           sync.RWMutex
	days         map[string][]models.TimeRange
	defaultRange models.TimeRange
}

// NewMemoryAvailabilityRepo constructs an empty in-memory store.
// defaultRange is the range AddRange appends.
func NewMemoryAvailabilityRepo(defaultRange models.TimeRange) AvailabilityRepository {
	return &memoryAvailabilityRepo{
		days:         make(map[string][]models.TimeRange),
		defaultRange: defaultRange,
	}
}

func (r *memoryAvailabilityRepo) Get(date string) models.DayAvailability {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// Always a non-nil copy: an absent day and an emptied day present the
	// same empty range list, and callers never alias the stored slice.
	return models.DayAvailability{Date: date, TimeRanges: append([]models.TimeRange{}, r.days[date]...)}
}

func (r *memoryAvailabilityRepo) AddRange(date string) models.DayAvailability {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.days[date]
	updated := make([]models.TimeRange, 0, len(existing)+1)
	updated = append(updated, existing...)
	updated = append(updated, r.defaultRange)
	r.days[date] = updated

	return models.DayAvailability{Date: date, TimeRanges: updated}
}

func (r *memoryAvailabilityRepo) UpdateRange(date string, index int, field models.RangeField, value string) (models.DayAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.days[date]
	if !ok {
		return models.DayAvailability{}, ErrDayNotFound
	}
	if index < 0 || index >= len(existing) {
		return models.DayAvailability{}, ErrRangeIndex
	}

	updated := make([]models.TimeRange, len(existing))
	copy(updated, existing)
	switch field {
	case models.RangeFieldStart:
		updated[index].StartTime = value
	case models.RangeFieldEnd:
		updated[index].EndTime = value
	default:
		return models.DayAvailability{}, ErrRangeField
	}
	r.days[date] = updated

	return models.DayAvailability{Date: date, TimeRanges: updated}, nil
}

func (r *memoryAvailabilityRepo) RemoveRange(date string, index int) (models.DayAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.days[date]
	if !ok {
		return models.DayAvailability{}, ErrDayNotFound
	}
	if index < 0 || index >= len(existing) {
		return models.DayAvailability{}, ErrRangeIndex
	}

	// The entry survives even when this empties its range list.
	updated := make([]models.TimeRange, 0, len(existing)-1)
	updated = append(updated, existing[:index]...)
	updated = append(updated, existing[index+1:]...)
	r.days[date] = updated

	return models.DayAvailability{Date: date, TimeRanges: updated}, nil
}

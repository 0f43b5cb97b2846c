package availability

import (
	"errors"
	"regexp"
	"time"

	"modernschedule/models"
	"modernschedule/services/schedule"
	"modernschedule/utils"

	"go.uber.org/zap"
)

var (
	// ErrInvalidDate is returned when a date is not "YYYY-MM-DD".
	ErrInvalidDate = errors.New("availability: date must be YYYY-MM-DD")
	// ErrInvalidTime is returned when a range value is not a 24-hour "HH:MM".
	ErrInvalidTime = errors.New("availability: time must be HH:MM")
)

// Only the shape of values is checked. Inverted (start >= end) and
// overlapping ranges are accepted; the editor surfaces whatever was typed.
var timeOfDay = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func validDate(date string) bool {
	_, err := time.Parse(schedule.DateLayout, date)
	return err == nil
}

func (s *DefaultAvailabilityService) Day(date string) (models.DayAvailability, error) {
	if !validDate(date) {
		return models.DayAvailability{}, ErrInvalidDate
	}
	return s.Repo.Get(date), nil
}

func (s *DefaultAvailabilityService) Week(ref time.Time) []models.WeekDay {
	days := schedule.WeekOf(ref)
	out := make([]models.WeekDay, len(days))
	for i, d := range days {
		entry := s.Repo.Get(d.Format(schedule.DateLayout))
		out[i] = models.WeekDay{
			Date:       entry.Date,
			Weekday:    d.Weekday().String(),
			TimeRanges: entry.TimeRanges,
		}
	}
	return out
}

func (s *DefaultAvailabilityService) AddRange(date string) (models.DayAvailability, error) {
	if !validDate(date) {
		return models.DayAvailability{}, ErrInvalidDate
	}
	return s.Repo.AddRange(date), nil
}

func (s *DefaultAvailabilityService) UpdateRange(date string, index int, field models.RangeField, value string) (models.DayAvailability, error) {
	if !validDate(date) {
		return models.DayAvailability{}, ErrInvalidDate
	}
	if !timeOfDay.MatchString(value) {
		return models.DayAvailability{}, ErrInvalidTime
	}
	return s.Repo.UpdateRange(date, index, field, value)
}

func (s *DefaultAvailabilityService) RemoveRange(date string, index int) (models.DayAvailability, error) {
	if !validDate(date) {
		return models.DayAvailability{}, ErrInvalidDate
	}
	return s.Repo.RemoveRange(date, index)
}

func (s *DefaultAvailabilityService) Save(date string) (models.DayAvailability, error) {
	if !validDate(date) {
		return models.DayAvailability{}, ErrInvalidDate
	}
	entry := s.Repo.Get(date)
	utils.GetLogger().Info("Saving availability",
		zap.String("date", entry.Date),
		zap.Int("ranges", len(entry.TimeRanges)),
		zap.Any("timeRanges", entry.TimeRanges),
	)
	if s.Notifier != nil {
		s.Notifier.Success("Availability saved successfully!")
	}
	return entry, nil
}

package schedule

import (
	"time"

	"modernschedule/models"
)

const DateLayout = "2006-01-02"

// Unit is the display unit a navigation step moves by.
type Unit string

const (
	UnitMonth Unit = "month"
	UnitWeek  Unit = "week"
)

// Direction of a navigation step.
type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionBack    Direction = "back"
)

// Advance moves the reference date by one display unit. Navigation is
// unbounded in both directions; year boundaries roll naturally.
//
// A month step lands on day 1 of the adjacent month, so day-of-month is
// never carried across months of different lengths (advancing from
// Jan 31 yields Feb 1, not a rolled-over March date).
func Advance(ref time.Time, unit Unit, dir Direction) time.Time {
	step := 1
	if dir == DirectionBack {
		step = -1
	}
	if unit == UnitMonth {
		return time.Date(ref.Year(), ref.Month()+time.Month(step), 1, 0, 0, 0, 0, ref.Location())
	}
	return ref.AddDate(0, 0, 7*step)
}

// MonthGrid lays out the month containing ref for display: a leading run
// of empty cells equal to the weekday index of day 1 (weeks start Sunday),
// then every date of the month in order.
func MonthGrid(ref time.Time) models.MonthGrid {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	cells := make([]models.CalendarCell, 0, int(first.Weekday())+last.Day())
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, models.CalendarCell{Empty: true})
	}
	for day := 1; day <= last.Day(); day++ {
		date := time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, ref.Location())
		cells = append(cells, models.CalendarCell{Date: date.Format(DateLayout), Day: day})
	}

	return models.MonthGrid{
		Reference: first.Format(DateLayout),
		Year:      first.Year(),
		Month:     first.Month().String(),
		Cells:     cells,
	}
}

// WeekOf returns the 7 days of the week containing ref, starting from
// Monday. Sunday belongs to the week that began six days earlier, not the
// week starting the next day.
func WeekOf(ref time.Time) []time.Time {
	offset := (int(ref.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	start := ref.AddDate(0, 0, -offset)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekStrip formats WeekOf for display.
func WeekStrip(ref time.Time) models.WeekStrip {
	days := WeekOf(ref)
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Format(DateLayout)
	}
	return models.WeekStrip{Reference: ref.Format(DateLayout), Days: out}
}

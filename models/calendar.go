package models

// CalendarCell is one cell of the month grid. Leading cells before the
// first day of the month are empty placeholders with no date.
type CalendarCell struct {
	Date  string `json:"date,omitempty"` // "YYYY-MM-DD"
	Day   int    `json:"day,omitempty"`  // day of month, 0 for placeholders
	Empty bool   `json:"empty,omitempty"`
}

// MonthGrid is the full month view for a reference date: weekday-aligned
// cells from Sunday of the first week through the last day of the month.
type MonthGrid struct {
	Reference string         `json:"reference"` // first of the month, "YYYY-MM-DD"
	Year      int            `json:"year"`
	Month     string         `json:"month"` // e.g. "January"
	Cells     []CalendarCell `json:"cells"`
}

// WeekStrip is the 7-day management view for a reference date, Monday first.
type WeekStrip struct {
	Reference string   `json:"reference"` // the reference date, "YYYY-MM-DD"
	Days      []string `json:"days"`      // 7 dates, "YYYY-MM-DD"
}

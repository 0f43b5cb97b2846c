package models

// Selection holds the three independent cursors a client carries while
// using the app: the booking flow's date and time, and the management
// flow's day under edit. Setting one cursor never clears another.
type Selection struct {
	SelectedDate string `json:"selectedDate,omitempty"` // booking flow, "YYYY-MM-DD"
	SelectedTime string `json:"selectedTime,omitempty"` // booking flow, "HH:MM"
	SelectedDay  string `json:"selectedDay,omitempty"`  // management flow, "YYYY-MM-DD"
}

// SelectionCursor names one of the three cursors.
type SelectionCursor string

const (
	CursorDate SelectionCursor = "date"
	CursorTime SelectionCursor = "time"
	CursorDay  SelectionCursor = "day"
)

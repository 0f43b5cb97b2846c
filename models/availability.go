package models

// TimeRange is one contiguous block of availability within a single date.
// Start and end are wall-clock "HH:MM" strings; the store does not require
// start < end, nor that ranges within a day are disjoint.
type TimeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RangeField names the TimeRange field targeted by an update.
type RangeField string

const (
	RangeFieldStart RangeField = "startTime"
	RangeFieldEnd   RangeField = "endTime"
)

// DayAvailability holds the editable time ranges for one calendar date.
// Date is the identity key, formatted "YYYY-MM-DD". TimeRanges keep
// insertion order, which is also display order.
type DayAvailability struct {
	Date       string      `json:"date"`
	TimeRanges []TimeRange `json:"timeRanges"`
}

// WeekDay is one cell of the management week strip: a date zipped with its
// availability entry.
type WeekDay struct {
	Date       string      `json:"date"`
	Weekday    string      `json:"weekday"`
	TimeRanges []TimeRange `json:"timeRanges"`
}

// UpdateRangeRequest is the payload for editing one field of a time range.
type UpdateRangeRequest struct {
	Field RangeField `json:"field" binding:"required"`
	Value string     `json:"value" binding:"required"`
}

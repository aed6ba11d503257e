package models

// Slot is a concrete open window on a concrete date.
type Slot struct {
	Date      string `json:"date"` // "YYYY-MM-DD"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DayAvailability groups the open slots of one day. Days with no open
// slots are never emitted.
type DayAvailability struct {
	Date    string `json:"date"`
	DayName string `json:"dayName"` // "Monday", ...
	Slots   []Slot `json:"slots"`
}

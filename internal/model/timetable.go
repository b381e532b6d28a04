package model

// Weekday names accepted in a timetable grid. Sunday is not scheduled.
var TimetableDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// TimetableEntry is one cell of a faculty member's weekly grid, keyed by
// (day, slot). Writing an occupied cell replaces it.
type TimetableEntry struct {
	ID        string `json:"id"`
	FacultyID string `json:"faculty_id"`
	Day       string `json:"day"`
	Slot      string `json:"slot"`
	Subject   string `json:"subject"`
}

// PutTimetableEntryRequest upserts a single grid cell.
type PutTimetableEntryRequest struct {
	Day     string `json:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	Slot    string `json:"slot" binding:"required,min=1,max=30"`
	Subject string `json:"subject" binding:"required,min=1,max=100"`
}

package model

import "time"

// ExamType classifies an uploaded exam schedule.
type ExamType string

const (
	ExamTypeMids         ExamType = "mids"
	ExamTypeLabInternals ExamType = "lab_internals"
	ExamTypeSemester     ExamType = "semester"
	ExamTypePlacements   ExamType = "placements"
)

// ExamSchedule is a published schedule document (PDF) browsable by faculty.
type ExamSchedule struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	ExamType   ExamType  `json:"exam_type"`
	PdfURL     string    `json:"pdf_url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// CreateExamScheduleRequest registers an uploaded schedule PDF.
type CreateExamScheduleRequest struct {
	Title    string   `json:"title" binding:"required,min=3,max=200"`
	ExamType ExamType `json:"exam_type" binding:"required,oneof=mids lab_internals semester placements"`
	PdfURL   string   `json:"pdf_url" binding:"required,max=500"`
}

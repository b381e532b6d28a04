package model

import "time"

// LeaveStatus is the lifecycle state of a leave request. A request starts
// pending and moves exactly once to approved or rejected.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest is a faculty absence request awaiting an HOD decision.
// Requester fields are denormalized onto the record so lists render without
// a directory join.
type LeaveRequest struct {
	ID           string      `json:"id"`
	FacultyID    string      `json:"faculty_id"`
	FacultyName  string      `json:"faculty_name"`
	FacultyEmail string      `json:"faculty_email"`
	FacultyErpID string      `json:"faculty_erp_id"`
	Department   Department  `json:"department"`
	Reason       string      `json:"reason"`
	FromDate     time.Time   `json:"from_date"`
	ToDate       time.Time   `json:"to_date"`
	Status       LeaveStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// SubmitLeaveRequest is the payload for applying for leave. Dates are
// calendar dates without time zone handling.
type SubmitLeaveRequest struct {
	Reason   string `json:"reason" binding:"required,min=3,max=500"`
	FromDate string `json:"from_date" binding:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date" binding:"required,datetime=2006-01-02"`
}

// DecideLeaveRequest is the payload for an HOD decision.
type DecideLeaveRequest struct {
	Decision LeaveStatus `json:"decision" binding:"required,oneof=approved rejected"`
}

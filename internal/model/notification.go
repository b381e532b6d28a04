package model

import "time"

// Notification is a per-recipient message record. Department-wide admin
// notifications carry an empty ToEmail; faculty notifications are addressed
// by email.
type Notification struct {
	ID           string     `json:"id"`
	ToRole       Role       `json:"to_role"`
	ToDepartment Department `json:"to_department"`
	ToEmail      string     `json:"to_email,omitempty"`
	Message      string     `json:"message"`
	Read         bool       `json:"read"`
	CreatedAt    time.Time  `json:"created_at"`
}

// BroadcastRequest is the payload for notifying every approved faculty member.
type BroadcastRequest struct {
	Message string `json:"message" binding:"required,min=1,max=500"`
}

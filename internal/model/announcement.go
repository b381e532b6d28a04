package model

import "time"

// Priority ranks an announcement for display.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Announcement is a college-wide notice visible to every signed-in user.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Priority  Priority  `json:"priority"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateAnnouncementRequest is the payload for posting an announcement.
type CreateAnnouncementRequest struct {
	Title    string   `json:"title" binding:"required,min=3,max=200"`
	Message  string   `json:"message" binding:"required,min=3,max=2000"`
	Priority Priority `json:"priority" binding:"required,oneof=low medium high"`
}

package model

import "time"

// Event is a college event with an optional attached PDF (circular, poster).
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	PdfURL      string    `json:"pdf_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateEventRequest is the payload for publishing an event.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required,min=3,max=2000"`
	EventDate   string `json:"event_date" binding:"required,datetime=2006-01-02"`
	PdfURL      string `json:"pdf_url" binding:"omitempty,max=500"`
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/edusync/edusync-backend/internal/model"
)

// EventStore is the persistence capability set for college events.
type EventStore interface {
	Create(ctx context.Context, e *model.Event) error
	List(ctx context.Context) ([]model.Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService handles college events with optional attached PDFs.
type EventService struct {
	store EventStore
}

// NewEventService creates a new EventService.
func NewEventService(store EventStore) *EventService {
	return &EventService{store: store}
}

// Create publishes a new event.
func (s *EventService) Create(ctx context.Context, req *model.CreateEventRequest) (*model.Event, error) {
	date, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("parse event_date: %w", err)
	}

	e := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   date,
		PdfURL:      req.PdfURL,
	}
	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns all events, upcoming first.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.store.List(ctx)
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

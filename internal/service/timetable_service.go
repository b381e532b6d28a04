package service

import (
	"context"

	"github.com/edusync/edusync-backend/internal/model"
)

// TimetableStore is the persistence capability set for timetable grids.
type TimetableStore interface {
	Put(ctx context.Context, e *model.TimetableEntry) error
	ListByFaculty(ctx context.Context, facultyID string) ([]model.TimetableEntry, error)
	Delete(ctx context.Context, facultyID, day, slot string) error
}

// TimetableService manages each faculty member's weekly grid.
type TimetableService struct {
	store TimetableStore
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(store TimetableStore) *TimetableService {
	return &TimetableService{store: store}
}

// Put upserts one grid cell for the calling faculty member.
func (s *TimetableService) Put(ctx context.Context, facultyID string, req *model.PutTimetableEntryRequest) (*model.TimetableEntry, error) {
	e := &model.TimetableEntry{
		FacultyID: facultyID,
		Day:       req.Day,
		Slot:      req.Slot,
		Subject:   req.Subject,
	}
	if err := s.store.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// List returns the caller's full grid.
func (s *TimetableService) List(ctx context.Context, facultyID string) ([]model.TimetableEntry, error) {
	return s.store.ListByFaculty(ctx, facultyID)
}

// Clear removes one grid cell. Only the owner's cells are reachable since
// facultyID comes from the caller's claims.
func (s *TimetableService) Clear(ctx context.Context, facultyID, day, slot string) error {
	return s.store.Delete(ctx, facultyID, day, slot)
}

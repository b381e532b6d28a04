package service

import (
	"context"

	"github.com/edusync/edusync-backend/internal/model"
)

// ExamScheduleStore is the persistence capability set for exam schedules.
type ExamScheduleStore interface {
	Create(ctx context.Context, s *model.ExamSchedule) error
	List(ctx context.Context, examType *model.ExamType) ([]model.ExamSchedule, error)
	Delete(ctx context.Context, id string) error
}

// ExamScheduleService registers and lists uploaded schedule documents.
type ExamScheduleService struct {
	store ExamScheduleStore
}

// NewExamScheduleService creates a new ExamScheduleService.
func NewExamScheduleService(store ExamScheduleStore) *ExamScheduleService {
	return &ExamScheduleService{store: store}
}

// Create registers an uploaded schedule PDF.
func (s *ExamScheduleService) Create(ctx context.Context, req *model.CreateExamScheduleRequest) (*model.ExamSchedule, error) {
	schedule := &model.ExamSchedule{
		Title:    req.Title,
		ExamType: req.ExamType,
		PdfURL:   req.PdfURL,
	}
	if err := s.store.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// List returns schedules, optionally filtered by exam type.
func (s *ExamScheduleService) List(ctx context.Context, examType *model.ExamType) ([]model.ExamSchedule, error) {
	return s.store.List(ctx, examType)
}

// Delete removes a schedule.
func (s *ExamScheduleService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

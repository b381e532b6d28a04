package service

import (
	"context"

	"github.com/edusync/edusync-backend/internal/model"
)

// AnnouncementStore is the persistence capability set for announcements.
type AnnouncementStore interface {
	Create(ctx context.Context, a *model.Announcement) error
	List(ctx context.Context) ([]model.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// AnnouncementService handles college-wide notices.
type AnnouncementService struct {
	store AnnouncementStore
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(store AnnouncementStore) *AnnouncementService {
	return &AnnouncementService{store: store}
}

// Create posts a new announcement attributed to the creating admin.
func (s *AnnouncementService) Create(ctx context.Context, createdBy string, req *model.CreateAnnouncementRequest) (*model.Announcement, error) {
	a := &model.Announcement{
		Title:     req.Title,
		Message:   req.Message,
		Priority:  req.Priority,
		CreatedBy: createdBy,
	}
	if err := s.store.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns all announcements, newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]model.Announcement, error) {
	return s.store.List(ctx)
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

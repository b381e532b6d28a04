package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Leave workflow errors.
var (
	ErrDateRangeInverted = errors.New("from date is after to date")
	ErrWrongDepartment   = errors.New("request belongs to a different department")
	ErrAlreadyDecided    = errors.New("leave request is already decided")
)

// LeaveStore is the persistence capability set for leave requests.
type LeaveStore interface {
	Create(ctx context.Context, lr *model.LeaveRequest) error
	GetByID(ctx context.Context, id string) (*model.LeaveRequest, error)
	ListByDepartment(ctx context.Context, department model.Department) ([]model.LeaveRequest, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]model.LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status model.LeaveStatus) error
}

// LeaveService runs the leave request lifecycle: submit → pending →
// approved/rejected, with notification fanout on both transitions.
type LeaveService struct {
	store         LeaveStore
	users         UserStore
	notifications *NotificationService
	log           zerolog.Logger
}

// NewLeaveService creates a new LeaveService.
func NewLeaveService(store LeaveStore, users UserStore, notifications *NotificationService, log zerolog.Logger) *LeaveService {
	return &LeaveService{
		store:         store,
		users:         users,
		notifications: notifications,
		log:           log.With().Str("component", "leave_service").Logger(),
	}
}

// dateLayout is a bare calendar date. Leave dates carry no time zone.
const dateLayout = "2006-01-02"

// Submit creates a pending leave request for the calling faculty member and
// notifies the department's admins. The date range is validated before any
// record is created.
func (s *LeaveService) Submit(ctx context.Context, requester *Claims, req *model.SubmitLeaveRequest) (*model.LeaveRequest, error) {
	from, err := time.Parse(dateLayout, req.FromDate)
	if err != nil {
		return nil, fmt.Errorf("parse from_date: %w", err)
	}
	to, err := time.Parse(dateLayout, req.ToDate)
	if err != nil {
		return nil, fmt.Errorf("parse to_date: %w", err)
	}
	if from.After(to) {
		return nil, ErrDateRangeInverted
	}

	requesterProfile, err := s.requesterErpID(ctx, requester)
	if err != nil {
		return nil, err
	}

	lr := &model.LeaveRequest{
		FacultyID:    requester.UserID,
		FacultyName:  requester.Name,
		FacultyEmail: requester.Email,
		FacultyErpID: requesterProfile,
		Department:   requester.Department,
		Reason:       req.Reason,
		FromDate:     from,
		ToDate:       to,
		Status:       model.LeaveStatusPending,
	}
	if err := s.store.Create(ctx, lr); err != nil {
		return nil, err
	}

	// Submit-then-notify is two independent writes; a crash in between
	// leaves the request pending without an admin notification.
	message := fmt.Sprintf("%s applied for leave from %s to %s", requester.Name, req.FromDate, req.ToDate)
	if _, err := s.notifications.Notify(ctx, model.RoleAdmin, requester.Department, message, ""); err != nil {
		s.log.Error().Err(err).Str("leave_id", lr.ID).Msg("Notify admins of new leave request failed")
	}

	return lr, nil
}

// ListByDepartment returns a department's leave requests, newest first.
func (s *LeaveService) ListByDepartment(ctx context.Context, department model.Department) ([]model.LeaveRequest, error) {
	if err := model.ValidateDepartment(department); err != nil {
		return nil, err
	}
	return s.store.ListByDepartment(ctx, department)
}

// ListByRequester returns a faculty member's own requests, newest first.
func (s *LeaveService) ListByRequester(ctx context.Context, facultyID string) ([]model.LeaveRequest, error) {
	return s.store.ListByFaculty(ctx, facultyID)
}

// Decide transitions a pending request to approved or rejected. The decider
// must be an admin of the request's department. Re-deciding a resolved
// request returns ErrAlreadyDecided and changes nothing.
func (s *LeaveService) Decide(ctx context.Context, decider *Claims, requestID string, decision model.LeaveStatus) (*model.LeaveRequest, error) {
	if decision != model.LeaveStatusApproved && decision != model.LeaveStatusRejected {
		return nil, fmt.Errorf("invalid decision %q", decision)
	}

	lr, err := s.store.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if lr.Department != decider.Department {
		return nil, ErrWrongDepartment
	}

	if err := s.store.UpdateStatus(ctx, requestID, decision); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The row exists but was no longer pending.
			return nil, ErrAlreadyDecided
		}
		return nil, err
	}
	lr.Status = decision

	message := fmt.Sprintf("Your leave request (%s to %s) was %s",
		lr.FromDate.Format(dateLayout), lr.ToDate.Format(dateLayout), decision)
	if _, err := s.notifications.Notify(ctx, model.RoleFaculty, lr.Department, message, lr.FacultyEmail); err != nil {
		s.log.Error().Err(err).Str("leave_id", lr.ID).Msg("Notify requester of decision failed")
	}

	s.log.Info().Str("leave_id", lr.ID).Str("decision", string(decision)).Msg("Leave request decided")
	return lr, nil
}

// requesterErpID looks up the requester's ERP ID for display on the record.
// The claim does not carry it, so a directory read is needed.
func (s *LeaveService) requesterErpID(ctx context.Context, requester *Claims) (string, error) {
	u, err := s.users.GetByID(ctx, requester.UserID)
	if err != nil {
		return "", fmt.Errorf("lookup requester: %w", err)
	}
	return u.ErpID, nil
}

package service

import (
	"context"
	"errors"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ErrEmailTaken is returned when a self-signup targets an email that already
// has an account. Admin provisioning upserts instead; signup must never let a
// stranger overwrite an existing identity.
var ErrEmailTaken = errors.New("an account with this email already exists")

// UserStore is the directory capability set required by workflows. The pgx
// repository satisfies it; tests inject in-memory fakes.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Upsert(ctx context.Context, u *model.User) error
	UpdateProfile(ctx context.Context, id, name, phone string) error
	Approve(ctx context.Context, id string, department model.Department) error
	ListFaculty(ctx context.Context, department *model.Department, pendingOnly bool) ([]model.User, error)
	ListApprovedFaculty(ctx context.Context) ([]model.User, error)
}

// DirectoryService provisions and approves accounts. Role and department
// validation happen here, before any store write; the caller's admin role is
// enforced by the route middleware.
type DirectoryService struct {
	users UserStore
	auth  *AuthService
	log   zerolog.Logger
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(users UserStore, auth *AuthService, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{
		users: users,
		auth:  auth,
		log:   log.With().Str("component", "directory_service").Logger(),
	}
}

// CreateAdmin provisions a department admin account. Idempotent on email:
// an existing identity gets its password and claims refreshed instead of
// erroring.
func (s *DirectoryService) CreateAdmin(ctx context.Context, req *model.CreateAdminRequest) (*model.User, error) {
	if err := model.ValidateDepartment(req.Department); err != nil {
		return nil, err
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         model.RoleAdmin,
		Department:   req.Department,
		Approved:     true,
		PasswordHash: hash,
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info().Str("uid", u.ID).Str("department", string(u.Department)).Msg("Admin provisioned")
	return u, nil
}

// CreateFaculty provisions a faculty account with approved=false. Idempotent
// on email; re-provisioning resets the approval flag.
func (s *DirectoryService) CreateFaculty(ctx context.Context, req *model.CreateFacultyRequest) (*model.User, error) {
	if err := model.ValidateDepartment(req.Department); err != nil {
		return nil, err
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         model.RoleFaculty,
		Department:   req.Department,
		ErpID:        req.ErpID,
		Approved:     false,
		PasswordHash: hash,
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info().Str("uid", u.ID).Str("erp_id", u.ErpID).Msg("Faculty provisioned, awaiting approval")
	return u, nil
}

// SignupFaculty registers a faculty account from the public signup form.
// Unlike admin provisioning it is not an upsert: a taken email is rejected
// with ErrEmailTaken. The account awaits HOD approval before it can log in.
func (s *DirectoryService) SignupFaculty(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	if err := model.ValidateDepartment(req.Department); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         model.RoleFaculty,
		Department:   req.Department,
		ErpID:        req.ErpID,
		Approved:     false,
		PasswordHash: hash,
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info().Str("uid", u.ID).Str("erp_id", u.ErpID).Msg("Faculty signed up, awaiting approval")
	return u, nil
}

// UpdateProfile edits the caller's own display fields (name, phone) and
// returns the refreshed profile. Role, department, and approval are only
// mutable through admin operations.
func (s *DirectoryService) UpdateProfile(ctx context.Context, uid string, req *model.UpdateProfileRequest) (*model.User, error) {
	if err := s.users.UpdateProfile(ctx, uid, req.Name, req.Phone); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, uid)
}

// ApproveFaculty marks a pending faculty account approved, reasserting role
// and department claims.
func (s *DirectoryService) ApproveFaculty(ctx context.Context, uid string, department model.Department) (*model.User, error) {
	if err := model.ValidateDepartment(department); err != nil {
		return nil, err
	}

	if err := s.users.Approve(ctx, uid, department); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("uid", uid).Str("department", string(department)).Msg("Faculty approved")
	return u, nil
}

// ListFaculty returns faculty profiles, optionally scoped to a department
// and to pending (unapproved) accounts.
func (s *DirectoryService) ListFaculty(ctx context.Context, department *model.Department, pendingOnly bool) ([]model.User, error) {
	if department != nil {
		if err := model.ValidateDepartment(*department); err != nil {
			return nil, err
		}
	}
	return s.users.ListFaculty(ctx, department, pendingOnly)
}

// GetByID returns a single profile.
func (s *DirectoryService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByEmail returns a single profile by email.
func (s *DirectoryService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.GetByEmail(ctx, email)
}

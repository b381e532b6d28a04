package service

import (
	"context"
	"testing"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectoryService(users UserStore) *DirectoryService {
	return NewDirectoryService(users, NewAuthService(testConfig()), zerolog.Nop())
}

func TestCreateAdminIsApprovedImmediately(t *testing.T) {
	users := newFakeUserStore()
	svc := newDirectoryService(users)

	u, err := svc.CreateAdmin(context.Background(), &model.CreateAdminRequest{
		Email:      "hod.ece@edusync.com",
		Password:   "Admin@123",
		Department: model.DepartmentECE,
		Name:       "HOD ECE",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)
	assert.True(t, u.Approved)
	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestCreateFacultyAwaitsApproval(t *testing.T) {
	users := newFakeUserStore()
	svc := newDirectoryService(users)

	u, err := svc.CreateFaculty(context.Background(), &model.CreateFacultyRequest{
		Email:      "faculty1@edusync.com",
		Password:   "Faculty@123",
		Department: model.DepartmentCSE,
		Name:       "Faculty One",
		ErpID:      "ERP001",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleFaculty, u.Role)
	assert.False(t, u.Approved)
	assert.Equal(t, "ERP001", u.ErpID)
}

func TestProvisioningIsIdempotentOnEmail(t *testing.T) {
	users := newFakeUserStore()
	svc := newDirectoryService(users)
	ctx := context.Background()

	req := &model.CreateFacultyRequest{
		Email:      "faculty2@edusync.com",
		Password:   "Faculty@123",
		Department: model.DepartmentCSEAIML,
		Name:       "Faculty Two",
		ErpID:      "ERP002",
	}

	first, err := svc.CreateFaculty(ctx, req)
	require.NoError(t, err)

	// Approve, then provision the same email again: same identity, but the
	// approval flag resets and the profile is refreshed.
	_, err = svc.ApproveFaculty(ctx, first.ID, model.DepartmentCSEAIML)
	require.NoError(t, err)

	req.Name = "Faculty Two (Updated)"
	second, err := svc.CreateFaculty(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.Approved)

	stored, err := users.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Faculty Two (Updated)", stored.Name)
	assert.False(t, stored.Approved)
}

func TestSignupCreatesPendingFaculty(t *testing.T) {
	users := newFakeUserStore()
	svc := newDirectoryService(users)

	u, err := svc.SignupFaculty(context.Background(), &model.SignupRequest{
		Email:      "newhire@edusync.com",
		Password:   "Faculty@123",
		Department: model.DepartmentCSEDS,
		Name:       "New Hire",
		ErpID:      "ERP200",
		Phone:      "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleFaculty, u.Role)
	assert.False(t, u.Approved)
	assert.Equal(t, "9876543210", u.Phone)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestSignupRejectsTakenEmail(t *testing.T) {
	users := newFakeUserStore()
	svc := newDirectoryService(users)
	ctx := context.Background()

	existing, err := svc.CreateFaculty(ctx, &model.CreateFacultyRequest{
		Email:      "taken@edusync.com",
		Password:   "Faculty@123",
		Department: model.DepartmentCSE,
		Name:       "Original Owner",
		ErpID:      "ERP201",
	})
	require.NoError(t, err)

	// A stranger signing up with the same email must not take the account over.
	_, err = svc.SignupFaculty(ctx, &model.SignupRequest{
		Email:      "taken@edusync.com",
		Password:   "Hijack@123",
		Department: model.DepartmentECE,
		Name:       "Impostor",
		ErpID:      "ERP999",
	})
	require.ErrorIs(t, err, ErrEmailTaken)

	stored, err := users.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original Owner", stored.Name)
	assert.Equal(t, model.DepartmentCSE, stored.Department)
}

func TestUpdateProfileEditsDisplayFieldsOnly(t *testing.T) {
	users := newFakeUserStore()
	svc := newDirectoryService(users)
	ctx := context.Background()

	created, err := svc.SignupFaculty(ctx, &model.SignupRequest{
		Email:      "editor@edusync.com",
		Password:   "Faculty@123",
		Department: model.DepartmentHS,
		Name:       "Before Edit",
		ErpID:      "ERP202",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, created.ID, &model.UpdateProfileRequest{
		Name:  "After Edit",
		Phone: "1234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, "After Edit", updated.Name)
	assert.Equal(t, "1234567890", updated.Phone)

	// Claims and credentials stay as provisioned.
	assert.Equal(t, model.RoleFaculty, updated.Role)
	assert.Equal(t, model.DepartmentHS, updated.Department)
	assert.Equal(t, "ERP202", updated.ErpID)
	assert.False(t, updated.Approved)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := newDirectoryService(newFakeUserStore())

	_, err := svc.UpdateProfile(context.Background(), "no-such-uid", &model.UpdateProfileRequest{
		Name: "Ghost",
	})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestApproveFacultySetsClaims(t *testing.T) {
	users := newFakeUserStore()
	svc := newDirectoryService(users)
	ctx := context.Background()

	created, err := svc.CreateFaculty(ctx, &model.CreateFacultyRequest{
		Email:      "faculty3@edusync.com",
		Password:   "Faculty@123",
		Department: model.DepartmentHS,
		Name:       "Faculty Three",
		ErpID:      "ERP003",
	})
	require.NoError(t, err)

	approved, err := svc.ApproveFaculty(ctx, created.ID, model.DepartmentHS)
	require.NoError(t, err)
	assert.True(t, approved.Approved)
	assert.Equal(t, model.DepartmentHS, approved.Department)
}

func TestInvalidDepartmentNamesAllowedSet(t *testing.T) {
	svc := newDirectoryService(newFakeUserStore())

	_, err := svc.CreateAdmin(context.Background(), &model.CreateAdminRequest{
		Email:      "hod.eee@edusync.com",
		Password:   "Admin@123",
		Department: "EEE",
	})
	require.ErrorIs(t, err, model.ErrInvalidDepartment)
	assert.Contains(t, err.Error(), "CSE, CSE_AIML, CSE_AIDS, CSE_DS, ECE, HS")
}

func TestListFacultyFilters(t *testing.T) {
	users := newFakeUserStore()
	svc := newDirectoryService(users)
	ctx := context.Background()

	one, err := svc.CreateFaculty(ctx, &model.CreateFacultyRequest{
		Email: "a@edusync.com", Password: "Faculty@123",
		Department: model.DepartmentCSE, Name: "A", ErpID: "ERP100",
	})
	require.NoError(t, err)
	_, err = svc.CreateFaculty(ctx, &model.CreateFacultyRequest{
		Email: "b@edusync.com", Password: "Faculty@123",
		Department: model.DepartmentECE, Name: "B", ErpID: "ERP101",
	})
	require.NoError(t, err)

	_, err = svc.ApproveFaculty(ctx, one.ID, model.DepartmentCSE)
	require.NoError(t, err)

	cse := model.DepartmentCSE
	byDept, err := svc.ListFaculty(ctx, &cse, false)
	require.NoError(t, err)
	assert.Len(t, byDept, 1)

	pending, err := svc.ListFaculty(ctx, nil, true)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b@edusync.com", pending[0].Email)
}

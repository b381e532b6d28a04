package service

import (
	"context"
	"testing"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaveFixture struct {
	svc           *LeaveService
	store         *fakeLeaveStore
	users         *fakeUserStore
	notifications *fakeNotificationStore
	requester     *Claims
}

func newLeaveFixture(t *testing.T) *leaveFixture {
	t.Helper()

	users := newFakeUserStore()
	faculty := &model.User{
		Name:       "Faculty One",
		Email:      "faculty1@edusync.com",
		Role:       model.RoleFaculty,
		Department: model.DepartmentCSE,
		ErpID:      "ERP001",
		Approved:   true,
	}
	require.NoError(t, users.Upsert(context.Background(), faculty))

	notifStore := newFakeNotificationStore()
	notifications := NewNotificationService(notifStore, users, nil, zerolog.Nop())
	store := newFakeLeaveStore()

	return &leaveFixture{
		svc:           NewLeaveService(store, users, notifications, zerolog.Nop()),
		store:         store,
		users:         users,
		notifications: notifStore,
		requester: &Claims{
			UserID:     faculty.ID,
			Name:       faculty.Name,
			Email:      faculty.Email,
			Role:       model.RoleFaculty,
			Department: model.DepartmentCSE,
			Approved:   true,
		},
	}
}

func adminClaims(department model.Department) *Claims {
	return &Claims{
		UserID:     "admin-1",
		Name:       "HOD",
		Email:      "hod@edusync.com",
		Role:       model.RoleAdmin,
		Department: department,
		Approved:   true,
	}
}

func TestSubmitCreatesPendingAndNotifiesAdmins(t *testing.T) {
	f := newLeaveFixture(t)

	lr, err := f.svc.Submit(context.Background(), f.requester, &model.SubmitLeaveRequest{
		Reason:   "Medical leave",
		FromDate: "2026-09-01",
		ToDate:   "2026-09-03",
	})
	require.NoError(t, err)

	assert.Equal(t, model.LeaveStatusPending, lr.Status)
	assert.Equal(t, "ERP001", lr.FacultyErpID)
	assert.Equal(t, model.DepartmentCSE, lr.Department)

	require.Len(t, f.notifications.created, 1)
	n := f.notifications.created[0]
	assert.Equal(t, model.RoleAdmin, n.ToRole)
	assert.Equal(t, model.DepartmentCSE, n.ToDepartment)
	assert.Contains(t, n.Message, "Faculty One")
	assert.Contains(t, n.Message, "2026-09-01")
}

func TestSubmitRejectsInvertedDateRange(t *testing.T) {
	f := newLeaveFixture(t)

	_, err := f.svc.Submit(context.Background(), f.requester, &model.SubmitLeaveRequest{
		Reason:   "Backwards",
		FromDate: "2026-09-10",
		ToDate:   "2026-09-05",
	})
	require.ErrorIs(t, err, ErrDateRangeInverted)

	// Nothing written, nobody notified.
	assert.Empty(t, f.store.leaves)
	assert.Empty(t, f.notifications.created)
}

func TestSubmitAcceptsSingleDayRange(t *testing.T) {
	f := newLeaveFixture(t)

	lr, err := f.svc.Submit(context.Background(), f.requester, &model.SubmitLeaveRequest{
		Reason:   "One day",
		FromDate: "2026-09-07",
		ToDate:   "2026-09-07",
	})
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusPending, lr.Status)
}

func TestDecideApprovesAndNotifiesRequester(t *testing.T) {
	f := newLeaveFixture(t)
	ctx := context.Background()

	lr, err := f.svc.Submit(ctx, f.requester, &model.SubmitLeaveRequest{
		Reason:   "Conference",
		FromDate: "2026-09-01",
		ToDate:   "2026-09-02",
	})
	require.NoError(t, err)

	decided, err := f.svc.Decide(ctx, adminClaims(model.DepartmentCSE), lr.ID, model.LeaveStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusApproved, decided.Status)

	stored, err := f.store.GetByID(ctx, lr.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusApproved, stored.Status)

	// Submission notification plus the decision notification.
	require.Len(t, f.notifications.created, 2)
	n := f.notifications.created[1]
	assert.Equal(t, model.RoleFaculty, n.ToRole)
	assert.Equal(t, "faculty1@edusync.com", n.ToEmail)
	assert.Contains(t, n.Message, "approved")
}

func TestDecideRejectsCrossDepartmentAdmin(t *testing.T) {
	f := newLeaveFixture(t)
	ctx := context.Background()

	lr, err := f.svc.Submit(ctx, f.requester, &model.SubmitLeaveRequest{
		Reason:   "Personal",
		FromDate: "2026-09-01",
		ToDate:   "2026-09-02",
	})
	require.NoError(t, err)

	_, err = f.svc.Decide(ctx, adminClaims(model.DepartmentECE), lr.ID, model.LeaveStatusRejected)
	require.ErrorIs(t, err, ErrWrongDepartment)

	stored, err := f.store.GetByID(ctx, lr.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusPending, stored.Status)
}

func TestDecideIsOneWay(t *testing.T) {
	f := newLeaveFixture(t)
	ctx := context.Background()
	admin := adminClaims(model.DepartmentCSE)

	lr, err := f.svc.Submit(ctx, f.requester, &model.SubmitLeaveRequest{
		Reason:   "Travel",
		FromDate: "2026-09-01",
		ToDate:   "2026-09-02",
	})
	require.NoError(t, err)

	_, err = f.svc.Decide(ctx, admin, lr.ID, model.LeaveStatusRejected)
	require.NoError(t, err)

	_, err = f.svc.Decide(ctx, admin, lr.ID, model.LeaveStatusApproved)
	require.ErrorIs(t, err, ErrAlreadyDecided)

	stored, err := f.store.GetByID(ctx, lr.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LeaveStatusRejected, stored.Status)
}

func TestDecideRejectsInvalidDecision(t *testing.T) {
	f := newLeaveFixture(t)

	_, err := f.svc.Decide(context.Background(), adminClaims(model.DepartmentCSE), "leave-1", model.LeaveStatusPending)
	assert.Error(t, err)
}

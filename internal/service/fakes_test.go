package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
)

// fakeUserStore is an in-memory UserStore keyed the same way the SQL
// repository is: id lookups and an email uniqueness constraint.
type fakeUserStore struct {
	mu      sync.Mutex
	users   map[string]*model.User // by id
	nextID  int
	upserts int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) Upsert(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	for id, existing := range f.users {
		if existing.Email == u.Email {
			u.ID = id
			cp := *u
			f.users[id] = &cp
			return nil
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("uid-%d", f.nextID)
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id, name, phone string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Name = name
	u.Phone = phone
	return nil
}

func (f *fakeUserStore) Approve(_ context.Context, id string, department model.Department) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Role = model.RoleFaculty
	u.Department = department
	u.Approved = true
	return nil
}

func (f *fakeUserStore) ListFaculty(_ context.Context, department *model.Department, pendingOnly bool) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.User
	for _, u := range f.users {
		if u.Role != model.RoleFaculty {
			continue
		}
		if department != nil && u.Department != *department {
			continue
		}
		if pendingOnly && u.Approved {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) ListApprovedFaculty(_ context.Context) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.User
	for _, u := range f.users {
		if u.Role == model.RoleFaculty && u.Approved {
			out = append(out, *u)
		}
	}
	return out, nil
}

// fakeLeaveStore mirrors the conditional-update semantics of the SQL
// repository: UpdateStatus succeeds only while the row is still pending.
type fakeLeaveStore struct {
	mu     sync.Mutex
	leaves map[string]*model.LeaveRequest
	nextID int
}

func newFakeLeaveStore() *fakeLeaveStore {
	return &fakeLeaveStore{leaves: map[string]*model.LeaveRequest{}}
}

func (f *fakeLeaveStore) Create(_ context.Context, lr *model.LeaveRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	lr.ID = fmt.Sprintf("leave-%d", f.nextID)
	cp := *lr
	f.leaves[lr.ID] = &cp
	return nil
}

func (f *fakeLeaveStore) GetByID(_ context.Context, id string) (*model.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lr, ok := f.leaves[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *lr
	return &cp, nil
}

func (f *fakeLeaveStore) ListByDepartment(_ context.Context, department model.Department) ([]model.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.LeaveRequest
	for _, lr := range f.leaves {
		if lr.Department == department {
			out = append(out, *lr)
		}
	}
	return out, nil
}

func (f *fakeLeaveStore) ListByFaculty(_ context.Context, facultyID string) ([]model.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.LeaveRequest
	for _, lr := range f.leaves {
		if lr.FacultyID == facultyID {
			out = append(out, *lr)
		}
	}
	return out, nil
}

func (f *fakeLeaveStore) UpdateStatus(_ context.Context, id string, status model.LeaveStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	lr, ok := f.leaves[id]
	if !ok || lr.Status != model.LeaveStatusPending {
		return repository.ErrNotFound
	}
	lr.Status = status
	return nil
}

// fakeNotificationStore records created notifications in order.
type fakeNotificationStore struct {
	mu            sync.Mutex
	notifications map[string]*model.Notification
	created       []model.Notification
	nextID        int
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{notifications: map[string]*model.Notification{}}
}

func (f *fakeNotificationStore) Create(_ context.Context, n *model.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	n.ID = fmt.Sprintf("notif-%d", f.nextID)
	cp := *n
	f.notifications[n.ID] = &cp
	f.created = append(f.created, cp)
	return nil
}

func (f *fakeNotificationStore) GetByID(_ context.Context, id string) (*model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNotificationStore) ListForAdmin(_ context.Context, department model.Department) ([]model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Notification
	for _, n := range f.notifications {
		if n.ToRole == model.RoleAdmin && n.ToDepartment == department {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) ListForFaculty(_ context.Context, email string) ([]model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Notification
	for _, n := range f.notifications {
		if n.ToRole == model.RoleFaculty && n.ToEmail == email {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) MarkRead(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.notifications[id]
	if !ok {
		return repository.ErrNotFound
	}
	n.Read = true
	return nil
}

func (f *fakeNotificationStore) MarkAllReadForFaculty(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.notifications {
		if n.ToRole == model.RoleFaculty && n.ToEmail == email {
			n.Read = true
		}
	}
	return nil
}

func (f *fakeNotificationStore) MarkAllReadForAdmin(_ context.Context, department model.Department) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.notifications {
		if n.ToRole == model.RoleAdmin && n.ToDepartment == department {
			n.Read = true
		}
	}
	return nil
}

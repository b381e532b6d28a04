package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/edusync/edusync-backend/internal/config"
	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func newNotificationService(t *testing.T, users UserStore) (*NotificationService, *fakeNotificationStore, *redis.Client) {
	t.Helper()

	rdb := newTestRedis(t)
	store := newFakeNotificationStore()
	return NewNotificationService(store, users, rdb, zerolog.Nop()), store, rdb
}

func seedApprovedFaculty(t *testing.T, users *fakeUserStore, emails ...string) {
	t.Helper()
	for i, email := range emails {
		u := &model.User{
			Name:       email,
			Email:      email,
			Role:       model.RoleFaculty,
			Department: model.AllDepartments[i%len(model.AllDepartments)],
			Approved:   true,
		}
		require.NoError(t, users.Upsert(context.Background(), u))
	}
}

func TestBroadcastCreatesOneRecordPerApprovedFaculty(t *testing.T) {
	users := newFakeUserStore()
	seedApprovedFaculty(t, users, "f1@edusync.com", "f2@edusync.com", "f3@edusync.com")

	// A pending account must not receive broadcasts.
	require.NoError(t, users.Upsert(context.Background(), &model.User{
		Email: "pending@edusync.com", Role: model.RoleFaculty,
		Department: model.DepartmentCSE, Approved: false,
	}))

	svc, store, _ := newNotificationService(t, users)

	created, err := svc.BroadcastToAllFaculty(context.Background(), "Campus closed tomorrow")
	require.NoError(t, err)
	assert.Equal(t, 3, created)
	require.Len(t, store.created, 3)

	for _, n := range store.created {
		assert.Equal(t, model.RoleFaculty, n.ToRole)
		assert.False(t, n.Read)
		assert.Equal(t, "Campus closed tomorrow", n.Message)
		assert.NotEmpty(t, n.ToEmail)
	}
}

func TestEnqueueBroadcastPushesPayload(t *testing.T) {
	svc, _, rdb := newNotificationService(t, newFakeUserStore())
	ctx := context.Background()

	require.NoError(t, svc.EnqueueBroadcast(ctx, "Staff meeting at 4pm", "hod.cse@edusync.com"))

	raw, err := rdb.LPop(ctx, config.WorkerKey.BroadcastQueue).Result()
	require.NoError(t, err)

	var payload BroadcastPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	assert.Equal(t, "Staff meeting at 4pm", payload.Message)
	assert.Equal(t, "hod.cse@edusync.com", payload.RequestedBy)
}

func TestMarkReadEnforcesOwnership(t *testing.T) {
	svc, store, _ := newNotificationService(t, newFakeUserStore())
	ctx := context.Background()

	n := &model.Notification{
		ToRole:       model.RoleFaculty,
		ToDepartment: model.DepartmentCSE,
		ToEmail:      "owner@edusync.com",
		Message:      "Yours",
	}
	require.NoError(t, store.Create(ctx, n))

	owner := &Claims{Role: model.RoleFaculty, Email: "owner@edusync.com", Department: model.DepartmentCSE}
	stranger := &Claims{Role: model.RoleFaculty, Email: "other@edusync.com", Department: model.DepartmentCSE}

	require.ErrorIs(t, svc.MarkRead(ctx, n.ID, stranger), ErrNotOwner)

	got, err := store.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, got.Read)

	require.NoError(t, svc.MarkRead(ctx, n.ID, owner))
	got, err = store.GetByID(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)
}

func TestMarkReadUnknownID(t *testing.T) {
	svc, _, _ := newNotificationService(t, newFakeUserStore())

	err := svc.MarkRead(context.Background(), "missing", &Claims{Role: model.RoleFaculty, Email: "x@edusync.com"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListForSplitsByRole(t *testing.T) {
	svc, store, _ := newNotificationService(t, newFakeUserStore())
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &model.Notification{
		ToRole: model.RoleAdmin, ToDepartment: model.DepartmentCSE, Message: "leave submitted",
	}))
	require.NoError(t, store.Create(ctx, &model.Notification{
		ToRole: model.RoleFaculty, ToDepartment: model.DepartmentCSE,
		ToEmail: "f1@edusync.com", Message: "leave approved",
	}))

	adminFeed, err := svc.ListFor(ctx, &Claims{Role: model.RoleAdmin, Department: model.DepartmentCSE})
	require.NoError(t, err)
	require.Len(t, adminFeed, 1)
	assert.Equal(t, "leave submitted", adminFeed[0].Message)

	facultyFeed, err := svc.ListFor(ctx, &Claims{Role: model.RoleFaculty, Email: "f1@edusync.com"})
	require.NoError(t, err)
	require.Len(t, facultyFeed, 1)
	assert.Equal(t, "leave approved", facultyFeed[0].Message)
}

func TestNotifyPublishesToFeedChannel(t *testing.T) {
	svc, _, rdb := newNotificationService(t, newFakeUserStore())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := rdb.Subscribe(ctx, config.CacheKey.AdminFeedChannel(string(model.DepartmentCSE)))
	defer sub.Close()
	_, err := sub.Receive(ctx) // wait for the subscription to be live
	require.NoError(t, err)

	_, err = svc.Notify(ctx, model.RoleAdmin, model.DepartmentCSE, "new leave request", "")
	require.NoError(t, err)

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)

	var n model.Notification
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &n))
	assert.Equal(t, "new leave request", n.Message)
	assert.Equal(t, model.RoleAdmin, n.ToRole)
}

func TestFeedChannelPerRole(t *testing.T) {
	admin := &Claims{Role: model.RoleAdmin, Department: model.DepartmentECE}
	faculty := &Claims{Role: model.RoleFaculty, Email: "f1@edusync.com"}

	assert.Equal(t, "feed:admin:ECE", FeedChannel(admin))
	assert.Equal(t, "feed:faculty:f1@edusync.com", FeedChannel(faculty))
}

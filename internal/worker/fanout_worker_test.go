package worker

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/edusync/edusync-backend/internal/config"
	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/edusync/edusync-backend/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	mu      sync.Mutex
	created []model.Notification
}

func (r *recordingStore) Create(_ context.Context, n *model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, *n)
	return nil
}

func (r *recordingStore) GetByID(context.Context, string) (*model.Notification, error) {
	return nil, repository.ErrNotFound
}

func (r *recordingStore) ListForAdmin(context.Context, model.Department) ([]model.Notification, error) {
	return nil, nil
}

func (r *recordingStore) ListForFaculty(context.Context, string) ([]model.Notification, error) {
	return nil, nil
}

func (r *recordingStore) MarkRead(context.Context, string) error { return nil }

func (r *recordingStore) MarkAllReadForFaculty(context.Context, string) error { return nil }

func (r *recordingStore) MarkAllReadForAdmin(context.Context, model.Department) error { return nil }

type staticDirectory struct {
	faculty []model.User
}

func (d *staticDirectory) GetByID(context.Context, string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func (d *staticDirectory) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func (d *staticDirectory) Upsert(context.Context, *model.User) error { return nil }

func (d *staticDirectory) UpdateProfile(context.Context, string, string, string) error { return nil }

func (d *staticDirectory) Approve(context.Context, string, model.Department) error { return nil }

func (d *staticDirectory) ListFaculty(context.Context, *model.Department, bool) ([]model.User, error) {
	return d.faculty, nil
}

func (d *staticDirectory) ListApprovedFaculty(context.Context) ([]model.User, error) {
	return d.faculty, nil
}

func newWorkerFixture(t *testing.T) (*FanoutWorker, *recordingStore, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := &recordingStore{}
	directory := &staticDirectory{faculty: []model.User{
		{Email: "f1@edusync.com", Department: model.DepartmentCSE, Role: model.RoleFaculty, Approved: true},
		{Email: "f2@edusync.com", Department: model.DepartmentECE, Role: model.RoleFaculty, Approved: true},
	}}

	notifications := service.NewNotificationService(store, directory, rdb, zerolog.Nop())
	return NewFanoutWorker(notifications, rdb, zerolog.Nop()), store, rdb
}

func enqueue(t *testing.T, rdb *redis.Client, message string) {
	t.Helper()
	payload, err := json.Marshal(service.BroadcastPayload{Message: message, RequestedBy: "hod.cse@edusync.com"})
	require.NoError(t, err)
	require.NoError(t, rdb.LPush(context.Background(), config.WorkerKey.BroadcastQueue, payload).Err())
}

func TestProcessNextDeliversBroadcast(t *testing.T) {
	w, store, rdb := newWorkerFixture(t)
	ctx := context.Background()

	enqueue(t, rdb, "Campus closed tomorrow")
	w.processNext(ctx)

	require.Len(t, store.created, 2)
	for _, n := range store.created {
		assert.Equal(t, "Campus closed tomorrow", n.Message)
		assert.Equal(t, model.RoleFaculty, n.ToRole)
	}

	// Queue is consumed.
	length, err := rdb.LLen(ctx, config.WorkerKey.BroadcastQueue).Result()
	require.NoError(t, err)
	assert.Zero(t, length)
}

func TestDrainConsumesBacklog(t *testing.T) {
	w, store, rdb := newWorkerFixture(t)
	ctx := context.Background()

	enqueue(t, rdb, "first")
	enqueue(t, rdb, "second")

	w.drain(ctx)

	// Two recipients per broadcast.
	assert.Len(t, store.created, 4)
}

func TestMalformedPayloadIsDropped(t *testing.T) {
	w, store, rdb := newWorkerFixture(t)
	ctx := context.Background()

	require.NoError(t, rdb.LPush(ctx, config.WorkerKey.BroadcastQueue, "not json").Err())
	w.processNext(ctx)

	assert.Empty(t, store.created)
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/edusync/edusync-backend/internal/config"
	"github.com/edusync/edusync-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrNotOwner is returned when a caller operates on a notification that is
// not addressed to them.
var ErrNotOwner = errors.New("notification does not belong to the caller")

// NotificationStore is the persistence capability set for notifications.
type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
	GetByID(ctx context.Context, id string) (*model.Notification, error)
	ListForAdmin(ctx context.Context, department model.Department) ([]model.Notification, error)
	ListForFaculty(ctx context.Context, email string) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllReadForFaculty(ctx context.Context, email string) error
	MarkAllReadForAdmin(ctx context.Context, department model.Department) error
}

// BroadcastPayload is the queue message consumed by the fanout worker.
type BroadcastPayload struct {
	Message     string `json:"message"`
	RequestedBy string `json:"requested_by"`
}

// NotificationService creates per-recipient notification records and pushes
// live updates over Redis PubSub. Fanout across recipients is a series of
// independent writes with no transaction: a failure partway leaves earlier
// recipients notified.
type NotificationService struct {
	store NotificationStore
	users UserStore
	rdb   *redis.Client
	log   zerolog.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(store NotificationStore, users UserStore, rdb *redis.Client, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		store: store,
		users: users,
		rdb:   rdb,
		log:   log.With().Str("component", "notification_service").Logger(),
	}
}

// Notify creates one notification record and publishes it to the recipient's
// live feed channel.
func (s *NotificationService) Notify(ctx context.Context, toRole model.Role, toDepartment model.Department, message, toEmail string) (*model.Notification, error) {
	if err := model.ValidateDepartment(toDepartment); err != nil {
		return nil, err
	}

	n := &model.Notification{
		ToRole:       toRole,
		ToDepartment: toDepartment,
		ToEmail:      toEmail,
		Message:      message,
	}
	if err := s.store.Create(ctx, n); err != nil {
		return nil, err
	}

	s.publish(ctx, n)
	return n, nil
}

// ListFor returns the caller's own feed: admins see their department's admin
// notifications, faculty see those addressed to their email. Newest first,
// unbounded.
func (s *NotificationService) ListFor(ctx context.Context, claims *Claims) ([]model.Notification, error) {
	if claims.Role == model.RoleAdmin {
		return s.store.ListForAdmin(ctx, claims.Department)
	}
	return s.store.ListForFaculty(ctx, claims.Email)
}

// MarkRead flips the read flag on a notification owned by the caller.
// Ownership is enforced here: a reference to the id alone is not enough.
func (s *NotificationService) MarkRead(ctx context.Context, id string, claims *Claims) error {
	n, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.owns(n, claims) {
		return ErrNotOwner
	}
	return s.store.MarkRead(ctx, id)
}

// MarkAllRead flips every unread notification in the caller's feed.
func (s *NotificationService) MarkAllRead(ctx context.Context, claims *Claims) error {
	if claims.Role == model.RoleAdmin {
		return s.store.MarkAllReadForAdmin(ctx, claims.Department)
	}
	return s.store.MarkAllReadForFaculty(ctx, claims.Email)
}

// EnqueueBroadcast pushes a broadcast job onto the fanout queue. The worker
// performs the per-recipient writes so the HTTP call returns immediately.
func (s *NotificationService) EnqueueBroadcast(ctx context.Context, message, requestedBy string) error {
	payload, err := json.Marshal(BroadcastPayload{Message: message, RequestedBy: requestedBy})
	if err != nil {
		return err
	}
	return s.rdb.LPush(ctx, config.WorkerKey.BroadcastQueue, payload).Err()
}

// BroadcastToAllFaculty fetches every approved faculty profile and creates
// one unread notification per profile. Partial completion on failure is
// possible and not rolled back.
func (s *NotificationService) BroadcastToAllFaculty(ctx context.Context, message string) (int, error) {
	faculty, err := s.users.ListApprovedFaculty(ctx)
	if err != nil {
		return 0, fmt.Errorf("list faculty: %w", err)
	}

	created := 0
	for i := range faculty {
		f := &faculty[i]
		n := &model.Notification{
			ToRole:       model.RoleFaculty,
			ToDepartment: f.Department,
			ToEmail:      f.Email,
			Message:      message,
		}
		if err := s.store.Create(ctx, n); err != nil {
			return created, fmt.Errorf("notify %s: %w", f.Email, err)
		}
		created++
		s.publish(ctx, n)
	}

	return created, nil
}

// FeedChannel returns the PubSub channel carrying a caller's live feed.
func FeedChannel(claims *Claims) string {
	if claims.Role == model.RoleAdmin {
		return config.CacheKey.AdminFeedChannel(string(claims.Department))
	}
	return config.CacheKey.FacultyFeedChannel(claims.Email)
}

func (s *NotificationService) owns(n *model.Notification, claims *Claims) bool {
	if n.ToRole != claims.Role {
		return false
	}
	if n.ToRole == model.RoleAdmin {
		return n.ToDepartment == claims.Department
	}
	return n.ToEmail == claims.Email
}

// publish is best-effort: the record is already durable, so a PubSub failure
// only delays the live feed until the next list refresh.
func (s *NotificationService) publish(ctx context.Context, n *model.Notification) {
	if s.rdb == nil {
		return
	}

	var channel string
	if n.ToRole == model.RoleAdmin {
		channel = config.CacheKey.AdminFeedChannel(string(n.ToDepartment))
	} else {
		channel = config.CacheKey.FacultyFeedChannel(n.ToEmail)
	}

	payload, err := json.Marshal(n)
	if err != nil {
		s.log.Error().Err(err).Msg("Marshal notification for publish")
		return
	}
	if err := s.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		s.log.Warn().Err(err).Str("channel", channel).Msg("Publish live notification failed")
	}
}

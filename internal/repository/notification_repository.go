package repository

import (
	"context"
	"errors"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationColumns = `id, to_role, to_department, COALESCE(to_email, ''), message, read, created_at`

// NotificationRepository handles notification data access.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Create inserts a single unread notification record.
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	var email interface{}
	if n.ToEmail != "" {
		email = n.ToEmail
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO notifications (to_role, to_department, to_email, message, read)
		 VALUES ($1, $2, $3, $4, FALSE)
		 RETURNING id, created_at`,
		n.ToRole, n.ToDepartment, email, n.Message,
	).Scan(&n.ID, &n.CreatedAt)
}

// GetByID retrieves a notification by ID.
func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	n := &model.Notification{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id,
	).Scan(&n.ID, &n.ToRole, &n.ToDepartment, &n.ToEmail, &n.Message, &n.Read, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// ListForAdmin retrieves a department's admin notifications, newest first.
func (r *NotificationRepository) ListForAdmin(ctx context.Context, department model.Department) ([]model.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+` FROM notifications
		 WHERE to_role = $1 AND to_department = $2 ORDER BY created_at DESC`,
		model.RoleAdmin, department)
}

// ListForFaculty retrieves a faculty member's notifications, newest first.
func (r *NotificationRepository) ListForFaculty(ctx context.Context, email string) ([]model.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+` FROM notifications
		 WHERE to_role = $1 AND to_email = $2 ORDER BY created_at DESC`,
		model.RoleFaculty, email)
}

// MarkRead flips the read flag on a single notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkAllReadForFaculty flips every unread notification addressed to an email.
func (r *NotificationRepository) MarkAllReadForFaculty(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE
		 WHERE to_role = $1 AND to_email = $2 AND read = FALSE`,
		model.RoleFaculty, email)
	return err
}

// MarkAllReadForAdmin flips every unread notification for a department's admins.
func (r *NotificationRepository) MarkAllReadForAdmin(ctx context.Context, department model.Department) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notifications SET read = TRUE
		 WHERE to_role = $1 AND to_department = $2 AND read = FALSE`,
		model.RoleAdmin, department)
	return err
}

func (r *NotificationRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Notification, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.ToRole, &n.ToDepartment, &n.ToEmail, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

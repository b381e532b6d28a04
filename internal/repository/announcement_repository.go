package repository

import (
	"context"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnnouncementRepository handles announcement data access.
type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository.
func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{pool: pool}
}

// Create inserts a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, a *model.Announcement) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO announcements (title, message, priority, created_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.Title, a.Message, a.Priority, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
}

// List retrieves all announcements, newest first.
func (r *AnnouncementRepository) List(ctx context.Context) ([]model.Announcement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, message, priority, created_by, created_at
		 FROM announcements ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []model.Announcement
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Message, &a.Priority, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

// Delete removes an announcement by ID.
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

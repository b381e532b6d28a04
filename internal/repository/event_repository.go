package repository

import (
	"context"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository handles college event data access.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	var pdfURL interface{}
	if e.PdfURL != "" {
		pdfURL = e.PdfURL
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO events (title, description, event_date, pdf_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		e.Title, e.Description, e.EventDate, pdfURL,
	).Scan(&e.ID, &e.CreatedAt)
}

// List retrieves all events, upcoming first.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, event_date, COALESCE(pdf_url, ''), created_at
		 FROM events ORDER BY event_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.EventDate, &e.PdfURL, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Delete removes an event by ID.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

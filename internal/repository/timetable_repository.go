package repository

import (
	"context"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TimetableRepository handles weekly timetable grid data access.
type TimetableRepository struct {
	pool *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(pool *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{pool: pool}
}

// Put upserts a grid cell keyed by (faculty_id, day, slot).
func (r *TimetableRepository) Put(ctx context.Context, e *model.TimetableEntry) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO timetable_entries (faculty_id, day, slot, subject)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (faculty_id, day, slot) DO UPDATE SET subject = EXCLUDED.subject
		 RETURNING id`,
		e.FacultyID, e.Day, e.Slot, e.Subject,
	).Scan(&e.ID)
}

// ListByFaculty retrieves a faculty member's full grid.
func (r *TimetableRepository) ListByFaculty(ctx context.Context, facultyID string) ([]model.TimetableEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, faculty_id, day, slot, subject
		 FROM timetable_entries WHERE faculty_id = $1 ORDER BY day, slot`, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.TimetableEntry
	for rows.Next() {
		var e model.TimetableEntry
		if err := rows.Scan(&e.ID, &e.FacultyID, &e.Day, &e.Slot, &e.Subject); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete clears a single grid cell belonging to a faculty member.
func (r *TimetableRepository) Delete(ctx context.Context, facultyID, day, slot string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM timetable_entries WHERE faculty_id = $1 AND day = $2 AND slot = $3`,
		facultyID, day, slot)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

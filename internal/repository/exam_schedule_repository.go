package repository

import (
	"context"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExamScheduleRepository handles exam schedule data access.
type ExamScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewExamScheduleRepository creates a new ExamScheduleRepository.
func NewExamScheduleRepository(pool *pgxpool.Pool) *ExamScheduleRepository {
	return &ExamScheduleRepository{pool: pool}
}

// Create registers a new schedule document.
func (r *ExamScheduleRepository) Create(ctx context.Context, s *model.ExamSchedule) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO exam_schedules (title, exam_type, pdf_url)
		 VALUES ($1, $2, $3)
		 RETURNING id, uploaded_at`,
		s.Title, s.ExamType, s.PdfURL,
	).Scan(&s.ID, &s.UploadedAt)
}

// List retrieves schedules, optionally filtered by exam type, newest first.
func (r *ExamScheduleRepository) List(ctx context.Context, examType *model.ExamType) ([]model.ExamSchedule, error) {
	query := `SELECT id, title, exam_type, pdf_url, uploaded_at FROM exam_schedules`
	var args []interface{}
	if examType != nil {
		query += ` WHERE exam_type = $1`
		args = append(args, *examType)
	}
	query += ` ORDER BY uploaded_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []model.ExamSchedule
	for rows.Next() {
		var s model.ExamSchedule
		if err := rows.Scan(&s.ID, &s.Title, &s.ExamType, &s.PdfURL, &s.UploadedAt); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// Delete removes a schedule by ID.
func (r *ExamScheduleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exam_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

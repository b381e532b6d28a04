package repository

import (
	"context"
	"errors"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const leaveColumns = `id, faculty_id, faculty_name, faculty_email, faculty_erp_id, department, reason, from_date, to_date, status, created_at`

// LeaveRepository handles leave request data access.
type LeaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository creates a new LeaveRepository.
func NewLeaveRepository(pool *pgxpool.Pool) *LeaveRepository {
	return &LeaveRepository{pool: pool}
}

// Create inserts a new pending leave request.
func (r *LeaveRepository) Create(ctx context.Context, lr *model.LeaveRequest) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO leave_requests (faculty_id, faculty_name, faculty_email, faculty_erp_id, department, reason, from_date, to_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		lr.FacultyID, lr.FacultyName, lr.FacultyEmail, lr.FacultyErpID,
		lr.Department, lr.Reason, lr.FromDate, lr.ToDate, lr.Status,
	).Scan(&lr.ID, &lr.CreatedAt)
}

// GetByID retrieves a leave request by ID.
func (r *LeaveRepository) GetByID(ctx context.Context, id string) (*model.LeaveRequest, error) {
	lr := &model.LeaveRequest{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1`, id,
	).Scan(&lr.ID, &lr.FacultyID, &lr.FacultyName, &lr.FacultyEmail, &lr.FacultyErpID,
		&lr.Department, &lr.Reason, &lr.FromDate, &lr.ToDate, &lr.Status, &lr.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return lr, nil
}

// ListByDepartment retrieves a department's leave requests, newest first.
// No pagination: callers must handle unbounded result sets.
func (r *LeaveRepository) ListByDepartment(ctx context.Context, department model.Department) ([]model.LeaveRequest, error) {
	return r.list(ctx,
		`SELECT `+leaveColumns+` FROM leave_requests WHERE department = $1 ORDER BY created_at DESC`,
		department)
}

// ListByFaculty retrieves a requester's own leave requests, newest first.
func (r *LeaveRepository) ListByFaculty(ctx context.Context, facultyID string) ([]model.LeaveRequest, error) {
	return r.list(ctx,
		`SELECT `+leaveColumns+` FROM leave_requests WHERE faculty_id = $1 ORDER BY created_at DESC`,
		facultyID)
}

// UpdateStatus transitions a pending request to a terminal status. The
// conditional WHERE enforces the one-way pending→terminal lifecycle: deciding
// an already-resolved request affects no rows and returns ErrNotFound.
func (r *LeaveRepository) UpdateStatus(ctx context.Context, id string, status model.LeaveStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE leave_requests SET status = $1 WHERE id = $2 AND status = $3`,
		status, id, model.LeaveStatusPending,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LeaveRepository) list(ctx context.Context, query string, arg interface{}) ([]model.LeaveRequest, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []model.LeaveRequest
	for rows.Next() {
		var lr model.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.FacultyID, &lr.FacultyName, &lr.FacultyEmail, &lr.FacultyErpID,
			&lr.Department, &lr.Reason, &lr.FromDate, &lr.ToDate, &lr.Status, &lr.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

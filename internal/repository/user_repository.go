package repository

import (
	"context"
	"errors"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, phone, role, department, erp_id, approved, password_hash, created_at, updated_at`

// UserRepository handles directory profile data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Department,
		&u.ErpID, &u.Approved, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByEmail retrieves a user by their unique email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// Upsert creates a user keyed by email, or refreshes the existing row's
// password, role, department, and profile fields. Provisioning is idempotent:
// calling twice with the same email never creates two identities.
func (r *UserRepository) Upsert(ctx context.Context, u *model.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, phone, role, department, erp_id, approved, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (email) DO UPDATE SET
		   name = EXCLUDED.name,
		   phone = EXCLUDED.phone,
		   role = EXCLUDED.role,
		   department = EXCLUDED.department,
		   erp_id = EXCLUDED.erp_id,
		   approved = EXCLUDED.approved,
		   password_hash = EXCLUDED.password_hash,
		   updated_at = CURRENT_TIMESTAMP
		 RETURNING id, approved, created_at, updated_at`,
		u.Name, u.Email, u.Phone, u.Role, u.Department, u.ErpID, u.Approved, u.PasswordHash,
	).Scan(&u.ID, &u.Approved, &u.CreatedAt, &u.UpdatedAt)
	return err
}

// UpdateProfile edits the self-service display fields, leaving credentials
// and claims untouched.
func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, phone string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET name = $1, phone = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		name, phone, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Approve marks a faculty account approved, reasserting role and department.
func (r *UserRepository) Approve(ctx context.Context, id string, department model.Department) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET role = $1, department = $2, approved = TRUE, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		model.RoleFaculty, department, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListFaculty retrieves faculty profiles, optionally filtered by department
// and approval state, ordered by name.
func (r *UserRepository) ListFaculty(ctx context.Context, department *model.Department, pendingOnly bool) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1`
	args := []interface{}{model.RoleFaculty}

	if department != nil {
		query += ` AND department = $2`
		args = append(args, *department)
	}
	if pendingOnly {
		query += ` AND approved = FALSE`
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Department,
			&u.ErpID, &u.Approved, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListApprovedFaculty retrieves every approved faculty profile. Used by the
// broadcast fanout; the result set is unbounded.
func (r *UserRepository) ListApprovedFaculty(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 AND approved = TRUE ORDER BY name`,
		model.RoleFaculty,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Department,
			&u.ErpID, &u.Approved, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

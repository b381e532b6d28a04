package model

import "time"

// Role determines which operations an identity may invoke.
type Role string

const (
	// RoleAdmin is a department head (HOD).
	RoleAdmin Role = "admin"
	// RoleFaculty is a teaching staff member.
	RoleFaculty Role = "faculty"
)

// User is a directory profile: one row per identity. Faculty rows carry an
// ERP ID and an approval flag; rows are never hard-deleted.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	Role         Role       `json:"role"`
	Department   Department `json:"department"`
	ErpID        string     `json:"erp_id,omitempty"`
	Approved     bool       `json:"approved"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// CreateAdminRequest is the payload for provisioning a department admin.
type CreateAdminRequest struct {
	Email      string     `json:"email" binding:"required,email,max=255"`
	Password   string     `json:"password" binding:"required,min=6,max=128"`
	Department Department `json:"department" binding:"required"`
	Name       string     `json:"name" binding:"omitempty,max=100"`
}

// CreateFacultyRequest is the payload for provisioning a faculty account.
// The account is created with approved=false and must be approved before use.
type CreateFacultyRequest struct {
	Email      string     `json:"email" binding:"required,email,max=255"`
	Password   string     `json:"password" binding:"required,min=6,max=128"`
	Department Department `json:"department" binding:"required"`
	Name       string     `json:"name" binding:"required,min=2,max=100"`
	ErpID      string     `json:"erp_id" binding:"required,min=2,max=20"`
	Phone      string     `json:"phone" binding:"omitempty,max=20"`
}

// SignupRequest is the payload for faculty self-registration. The account
// starts with approved=false and cannot log in until the department HOD
// approves it.
type SignupRequest struct {
	Email      string     `json:"email" binding:"required,email,max=255"`
	Password   string     `json:"password" binding:"required,min=6,max=128"`
	Department Department `json:"department" binding:"required"`
	Name       string     `json:"name" binding:"required,min=2,max=100"`
	ErpID      string     `json:"erp_id" binding:"required,min=2,max=20"`
	Phone      string     `json:"phone" binding:"omitempty,max=20"`
}

// UpdateProfileRequest is the payload for editing one's own profile. Only
// display fields are editable; credentials and claims stay admin-controlled.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Phone string `json:"phone" binding:"omitempty,max=20"`
}

// ApproveFacultyRequest reasserts role and department while approving.
type ApproveFacultyRequest struct {
	Department Department `json:"department" binding:"required"`
}

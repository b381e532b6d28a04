package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDepartment marks a department outside the closed set.
var ErrInvalidDepartment = errors.New("invalid department")

// Department is the fixed classification attached to every user, leave
// request, and notification. It is the primary authorization and filtering
// scope: an HOD may only act on records carrying their own department.
type Department string

const (
	DepartmentCSE     Department = "CSE"
	DepartmentCSEAIML Department = "CSE_AIML"
	DepartmentCSEAIDS Department = "CSE_AIDS"
	DepartmentCSEDS   Department = "CSE_DS"
	DepartmentECE     Department = "ECE"
	DepartmentHS      Department = "HS"
)

// AllDepartments lists every recognized department.
var AllDepartments = []Department{
	DepartmentCSE,
	DepartmentCSEAIML,
	DepartmentCSEAIDS,
	DepartmentCSEDS,
	DepartmentECE,
	DepartmentHS,
}

// Valid reports whether d is a member of the closed department set.
func (d Department) Valid() bool {
	for _, dep := range AllDepartments {
		if d == dep {
			return true
		}
	}
	return false
}

// ValidateDepartment rejects any department outside the closed set, naming
// the allowed values in the error.
func ValidateDepartment(d Department) error {
	if !d.Valid() {
		return fmt.Errorf("%w %q, must be one of: %s", ErrInvalidDepartment, d, DepartmentList())
	}
	return nil
}

// DepartmentList returns the allowed departments as a comma-separated string.
func DepartmentList() string {
	names := make([]string, len(AllDepartments))
	for i, d := range AllDepartments {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}

package repository

import "errors"

// ErrNotFound is returned by all repositories when the requested record does
// not exist. Store implementations map driver-level failures onto it so
// services never inspect pgx errors.
var ErrNotFound = errors.New("record not found")

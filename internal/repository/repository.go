// Package repository selects a StudentRepository backend.
// The backends live in memrepo (flat file) and dynamorepo (DynamoDB).
package repository

import "github.com/mrled/suns/roster/internal/model"

// Re-exported so callers of the factory need not import model for error checks
var (
	ErrNotFound      = model.ErrNotFound
	ErrAlreadyExists = model.ErrAlreadyExists
)

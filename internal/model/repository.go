package model

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("student not found")
	ErrAlreadyExists = errors.New("student with this roll already exists")
	ErrMissingField  = errors.New("missing required field")
)

// WriteResult reports the outcome of a mutating repository call
type WriteResult struct {
	// Changed is true when the collection was mutated
	Changed bool

	// PersistErr is set when the collection was mutated but writing it out failed.
	// The mutation is not rolled back.
	PersistErr error
}

// Persisted reports whether the call mutated the collection and the mutation reached storage
func (r WriteResult) Persisted() bool {
	return r.Changed && r.PersistErr == nil
}

// StudentRepository defines the interface for storing and retrieving students
type StudentRepository interface {
	// Add appends a student
	Add(ctx context.Context, s Student) (WriteResult, error)

	// Remove deletes the first student whose roll matches, ignoring case.
	// WriteResult.Changed is false when nothing matched.
	Remove(ctx context.Context, roll string) (WriteResult, error)

	// Find returns the first student whose roll matches, ignoring case, or ErrNotFound
	Find(ctx context.Context, roll string) (Student, error)

	// All returns a copy of every student in insertion order
	All(ctx context.Context) ([]Student, error)
}

package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mrled/suns/roster/internal/model"
)

// RosterUseCase handles the user-facing roster operations: it trims and
// checks input before handing it to the repository
type RosterUseCase struct {
	repo model.StudentRepository
	log  *slog.Logger
}

// NewRosterUseCase creates a new roster use case
func NewRosterUseCase(repo model.StudentRepository, log *slog.Logger) *RosterUseCase {
	if log == nil {
		log = slog.Default()
	}
	return &RosterUseCase{
		repo: repo,
		log:  log,
	}
}

// ListOptions selects and orders the students returned by List
type ListOptions struct {
	Filter model.StudentFilter
	SortBy model.SortBy
}

// Enroll adds a student. All four fields are trimmed and must be non-empty.
func (uc *RosterUseCase) Enroll(ctx context.Context, name, roll, grade, email string) (model.Student, model.WriteResult, error) {
	s := model.NewStudent(
		strings.TrimSpace(name),
		strings.TrimSpace(roll),
		strings.TrimSpace(grade),
		strings.TrimSpace(email),
	)
	if err := s.Validate(); err != nil {
		return model.Student{}, model.WriteResult{}, err
	}

	result, err := uc.repo.Add(ctx, s)
	if err != nil {
		return model.Student{}, result, fmt.Errorf("failed to add student %s: %w", s.Roll, err)
	}

	uc.log.Info("Added student", slog.String("roll", s.Roll), slog.Bool("persisted", result.Persisted()))
	return s, result, nil
}

// Lookup finds a student by roll, ignoring case
func (uc *RosterUseCase) Lookup(ctx context.Context, roll string) (model.Student, error) {
	roll, err := requireRoll(roll)
	if err != nil {
		return model.Student{}, err
	}
	return uc.repo.Find(ctx, roll)
}

// Withdraw removes the first student with the given roll, ignoring case.
// WriteResult.Changed is false when no student matched.
func (uc *RosterUseCase) Withdraw(ctx context.Context, roll string) (model.WriteResult, error) {
	roll, err := requireRoll(roll)
	if err != nil {
		return model.WriteResult{}, err
	}

	result, err := uc.repo.Remove(ctx, roll)
	if err != nil {
		return result, fmt.Errorf("failed to remove student %s: %w", roll, err)
	}

	if result.Changed {
		uc.log.Info("Removed student", slog.String("roll", roll), slog.Bool("persisted", result.Persisted()))
	}
	return result, nil
}

// List returns students, optionally filtered and sorted. With zero options
// every student is returned in insertion order.
func (uc *RosterUseCase) List(ctx context.Context, opts ListOptions) ([]model.Student, error) {
	students, err := uc.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	students = model.FilterStudents(students, opts.Filter)
	model.SortStudents(students, opts.SortBy)
	return students, nil
}

// Import adds every student in order and returns how many were added.
// Students with an empty field are skipped with a warning.
// It stops at the first repository error; a persistence failure stops it too,
// since every following write would fail the same way.
func (uc *RosterUseCase) Import(ctx context.Context, students []model.Student) (int, error) {
	added := 0
	for i, s := range students {
		if err := s.Validate(); err != nil {
			uc.log.Warn("Skipping incomplete student",
				slog.Int("index", i),
				slog.String("roll", s.Roll),
				slog.String("error", err.Error()))
			continue
		}

		result, err := uc.repo.Add(ctx, s)
		if err != nil {
			return added, fmt.Errorf("failed to import student %s: %w", s.Roll, err)
		}
		added++
		if result.PersistErr != nil {
			return added, result.PersistErr
		}
	}
	return added, nil
}

func requireRoll(roll string) (string, error) {
	roll = strings.TrimSpace(roll)
	if roll == "" {
		return "", fmt.Errorf("%w: roll", model.ErrMissingField)
	}
	return roll, nil
}

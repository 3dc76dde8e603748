package memrepo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/mrled/suns/roster/internal/model"
)

// DefaultPath is the backing file used when no path is configured
const DefaultPath = "students.txt"

// Config holds configuration for a file-backed MemoryRepository
type Config struct {
	// Path of the flat backing file
	Path string

	// RejectDuplicateRolls makes Add fail with model.ErrAlreadyExists when a
	// student with the same roll (ignoring case) is already present
	RejectDuplicateRolls bool

	// Logger receives load and persist failures. Defaults to slog.Default().
	Logger *slog.Logger
}

// MemoryRepository is an ordered in-memory implementation of StudentRepository
// optionally backed by a flat text file that is rewritten after every mutation
type MemoryRepository struct {
	mu               sync.RWMutex
	students         []model.Student
	filePath         string
	rejectDuplicates bool
	log              *slog.Logger
	loadErr          error
}

// NewMemoryRepository creates a new in-memory repository without persistence.
// Data is stored only in memory and will be lost when the process terminates.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		log: slog.Default(),
	}
}

// NewMemoryRepositoryWithPersistence creates a new in-memory repository backed by a flat file.
// Existing well-formed lines are loaded on initialization; a missing file means no students.
// A failure reading an existing file is logged and kept in LoadErr; whatever was read
// before the failure stays loaded, and later writes report a PersistErr instead of
// overwriting the file.
func NewMemoryRepositoryWithPersistence(cfg Config) *MemoryRepository {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	repo := &MemoryRepository{
		filePath:         path,
		rejectDuplicates: cfg.RejectDuplicateRolls,
		log:              log.With(slog.String("path", path)),
	}

	if err := repo.load(); err != nil {
		repo.loadErr = fmt.Errorf("failed to load %s: %w", path, err)
		repo.log.Error("Failed to load students", slog.String("error", err.Error()))
	}

	return repo
}

// NewMemoryRepositoryFromReader creates a new in-memory repository initialized with
// backing-file content read from r. The repository is not backed by a file.
func NewMemoryRepositoryFromReader(r io.Reader) (*MemoryRepository, error) {
	repo := NewMemoryRepository()
	students, err := model.ReadLines(r)
	if err != nil {
		return nil, err
	}
	repo.students = students
	return repo, nil
}

// LoadErr returns the error encountered while loading the backing file, if any
func (r *MemoryRepository) LoadErr() error {
	return r.loadErr
}

// Path returns the backing file path, or "" for a memory-only repository
func (r *MemoryRepository) Path() string {
	return r.filePath
}

// load reads the backing file and populates the in-memory data
func (r *MemoryRepository) load() error {
	file, err := os.Open(r.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	students, err := model.ReadLines(file)
	r.students = students
	if err == nil {
		r.log.Debug("Loaded students", slog.Int("count", len(students)))
	}
	return err
}

// save truncates the backing file and writes every student to it in order.
// If filePath is empty, this is a no-op. A file that failed to load is never
// overwritten, since the records that could not be read would be lost.
func (r *MemoryRepository) save() error {
	if r.filePath == "" {
		return nil
	}
	if r.loadErr != nil {
		return fmt.Errorf("refusing to overwrite unreadable file: %w", r.loadErr)
	}

	file, err := os.Create(r.filePath)
	if err != nil {
		return err
	}

	if err := model.WriteLines(file, r.students); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// persist saves and turns a failure into a logged WriteResult
func (r *MemoryRepository) persist() model.WriteResult {
	result := model.WriteResult{Changed: true}
	if err := r.save(); err != nil {
		result.PersistErr = fmt.Errorf("failed to write %s: %w", r.filePath, err)
		r.log.Error("Failed to persist students",
			slog.String("error", err.Error()),
			slog.Int("count", len(r.students)))
	}
	return result
}

func (r *MemoryRepository) indexOf(roll string) int {
	return slices.IndexFunc(r.students, func(s model.Student) bool {
		return s.MatchesRoll(roll)
	})
}

// Add appends a student and rewrites the backing file
func (r *MemoryRepository) Add(ctx context.Context, s model.Student) (model.WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rejectDuplicates && r.indexOf(s.Roll) >= 0 {
		return model.WriteResult{}, fmt.Errorf("%w: %s", model.ErrAlreadyExists, s.Roll)
	}

	r.students = append(r.students, s)
	return r.persist(), nil
}

// Remove deletes the first student whose roll matches and rewrites the backing file.
// Nothing is written when no student matches.
func (r *MemoryRepository) Remove(ctx context.Context, roll string) (model.WriteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(roll)
	if i < 0 {
		return model.WriteResult{}, nil
	}

	r.students = slices.Delete(r.students, i, i+1)
	return r.persist(), nil
}

// Find retrieves the first student whose roll matches
func (r *MemoryRepository) Find(ctx context.Context, roll string) (model.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(roll)
	if i < 0 {
		return model.Student{}, model.ErrNotFound
	}

	return r.students[i], nil
}

// All retrieves a copy of every student in insertion order
func (r *MemoryRepository) All(ctx context.Context) ([]model.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Student, len(r.students))
	copy(result, r.students)
	return result, nil
}

var _ model.StudentRepository = (*MemoryRepository)(nil)

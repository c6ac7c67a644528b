package repository

import (
	"context"
	"slices"

	"github.com/spec-kit/staff-directory/internal/domain"
	apperrors "github.com/spec-kit/staff-directory/pkg/util/errorutil"
)

// DirectoryRepository stores employee names grouped by department.
type DirectoryRepository interface {
	// Add appends name to department, creating the department if needed.
	// It reports whether the department was created by this call.
	Add(ctx context.Context, name, department string) (bool, error)
	// ListDepartment returns a sorted copy of the department's employees or a
	// NOT_FOUND domain error.
	ListDepartment(ctx context.Context, department string) ([]string, error)
	// ListAll returns every department in name order, employees sorted.
	ListAll(ctx context.Context) ([]domain.Department, error)
}

// directoryRepository keeps the directory in process memory. It is owned by a
// single console session and is not safe for concurrent use.
type directoryRepository struct {
	departments map[string][]string
}

// NewDirectoryRepository builds an empty in-memory repository.
func NewDirectoryRepository() DirectoryRepository {
	return &directoryRepository{departments: make(map[string][]string)}
}

func (r *directoryRepository) Add(_ context.Context, name, department string) (bool, error) {
	employees, exists := r.departments[department]
	r.departments[department] = append(employees, name)
	return !exists, nil
}

func (r *directoryRepository) ListDepartment(_ context.Context, department string) ([]string, error) {
	employees, ok := r.departments[department]
	if !ok {
		return nil, apperrors.NewNotFound("department", map[string]any{"department": department})
	}
	return sortedCopy(employees), nil
}

func (r *directoryRepository) ListAll(_ context.Context) ([]domain.Department, error) {
	names := make([]string, 0, len(r.departments))
	for name := range r.departments {
		names = append(names, name)
	}
	slices.Sort(names)

	result := make([]domain.Department, 0, len(names))
	for _, name := range names {
		result = append(result, domain.Department{
			Name:      name,
			Employees: sortedCopy(r.departments[name]),
		})
	}
	return result, nil
}

func sortedCopy(names []string) []string {
	out := slices.Clone(names)
	slices.Sort(out)
	return out
}

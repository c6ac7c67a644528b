package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/domain"
	"github.com/spec-kit/staff-directory/internal/events"
	"github.com/spec-kit/staff-directory/internal/repository"
	apperrors "github.com/spec-kit/staff-directory/pkg/util/errorutil"
)

// DirectoryService applies directory commands to the repository.
type DirectoryService struct {
	directory  repository.DirectoryRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	sessionID  string
}

// DirectoryDependencies encapsulates collaborators of the directory service.
type DirectoryDependencies struct {
	DirectoryRepo repository.DirectoryRepository
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
	SessionID     string
}

// NewDirectoryService constructs the service.
func NewDirectoryService(deps DirectoryDependencies) *DirectoryService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{
		directory:  deps.DirectoryRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		sessionID:  deps.SessionID,
	}
}

// AddEmployee adds name to department. Both values must be non-empty.
func (s *DirectoryService) AddEmployee(ctx context.Context, name, department string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(department) == "" {
		return apperrors.NewValidationError("name and department required", map[string]any{
			"name":       name,
			"department": department,
		})
	}

	created, err := s.directory.Add(ctx, name, department)
	if err != nil {
		return apperrors.MapError(err)
	}

	s.publishEmployeeAdded(ctx, events.EmployeeAddedPayload{
		Name:              name,
		Department:        department,
		DepartmentCreated: created,
	})
	return nil
}

// Department returns the sorted employees of one department.
func (s *DirectoryService) Department(ctx context.Context, department string) ([]string, error) {
	employees, err := s.directory.ListDepartment(ctx, department)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return employees, nil
}

// Departments returns all departments sorted by name.
func (s *DirectoryService) Departments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.directory.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return departments, nil
}

func (s *DirectoryService) publishEmployeeAdded(ctx context.Context, payload events.EmployeeAddedPayload) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEmployeeAdded,
		SessionID: s.sessionID,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

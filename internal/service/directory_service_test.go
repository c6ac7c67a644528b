package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/staff-directory/internal/domain"
	"github.com/spec-kit/staff-directory/internal/events"
	"github.com/spec-kit/staff-directory/internal/observability"
	"github.com/spec-kit/staff-directory/internal/repository"
	apperrors "github.com/spec-kit/staff-directory/pkg/util/errorutil"
)

func newTestService(t *testing.T) (*DirectoryService, events.Dispatcher) {
	t.Helper()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewDirectoryService(DirectoryDependencies{
		DirectoryRepo: repository.NewDirectoryRepository(),
		Dispatcher:    dispatcher,
		SessionID:     "session-1",
	})
	return svc, dispatcher
}

func TestAddEmployeePublishesEvent(t *testing.T) {
	ctx := context.Background()
	svc, dispatcher := newTestService(t)

	var got []events.Event
	dispatcher.Subscribe(events.EventEmployeeAdded, func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})

	require.NoError(t, svc.AddEmployee(ctx, "Sally", "Engineering"))
	require.NoError(t, svc.AddEmployee(ctx, "Omar", "Engineering"))

	require.Len(t, got, 2)
	assert.NotEmpty(t, got[0].ID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.Equal(t, "session-1", got[0].SessionID)
	assert.Equal(t, events.EmployeeAddedPayload{Name: "Sally", Department: "Engineering", DepartmentCreated: true}, got[0].Payload)
	assert.Equal(t, events.EmployeeAddedPayload{Name: "Omar", Department: "Engineering", DepartmentCreated: false}, got[1].Payload)
}

func TestAddEmployeeRejectsEmptyValues(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	err := svc.AddEmployee(ctx, "", "Engineering")
	assert.True(t, apperrors.IsValidation(err))

	err = svc.AddEmployee(ctx, "Sally", "  ")
	assert.True(t, apperrors.IsValidation(err))

	departments, err := svc.Departments(ctx)
	require.NoError(t, err)
	assert.Empty(t, departments)
}

func TestAddEmployeeSurvivesFailingHandler(t *testing.T) {
	ctx := context.Background()
	svc, dispatcher := newTestService(t)
	dispatcher.Subscribe(events.EventEmployeeAdded, func(context.Context, events.Event) error {
		return errors.New("handler down")
	})

	require.NoError(t, svc.AddEmployee(ctx, "Sally", "Engineering"))
	employees, err := svc.Department(ctx, "Engineering")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sally"}, employees)
}

func TestDepartmentNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Department(context.Background(), "Marketing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDepartmentsSorted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	require.NoError(t, svc.AddEmployee(ctx, "Amir", "Sales"))
	require.NoError(t, svc.AddEmployee(ctx, "Sally", "Engineering"))

	got, err := svc.Departments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Department{
		{Name: "Engineering", Employees: []string{"Sally"}},
		{Name: "Sales", Employees: []string{"Amir"}},
	}, got)
}

func TestAuditServiceRecordsEmployeeAdded(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	metrics := observability.NewMetrics()

	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(dispatcher, zap.New(core), metrics).RegisterHandlers()
	svc := NewDirectoryService(DirectoryDependencies{
		DirectoryRepo: repository.NewDirectoryRepository(),
		Dispatcher:    dispatcher,
	})

	require.NoError(t, svc.AddEmployee(ctx, "Sally", "Engineering"))
	require.NoError(t, svc.AddEmployee(ctx, "Omar", "Engineering"))

	assert.Equal(t, int64(2), metrics.Outcomes(observability.OutcomeEmployeeAdded))
	assert.Equal(t, int64(1), metrics.Outcomes(observability.OutcomeDeptCreated))

	entries := logs.FilterMessage("EmployeeAdded").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Sally", entries[0].ContextMap()["name"])
	assert.Equal(t, "Engineering", entries[0].ContextMap()["department"])
	assert.Equal(t, true, entries[0].ContextMap()["department_created"])
}

func TestAuditServiceRejectsUnknownPayload(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(dispatcher, nil, nil).RegisterHandlers()

	err := dispatcher.Publish(context.Background(), events.Event{Type: events.EventEmployeeAdded, Payload: "oops"})
	assert.Error(t, err)
}

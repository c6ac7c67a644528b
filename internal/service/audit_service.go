package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/events"
	"github.com/spec-kit/staff-directory/internal/observability"
)

// AuditService records directory events in the log and session counters.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventEmployeeAdded, a.handleEmployeeAdded)
}

func (a *AuditService) handleEmployeeAdded(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.EmployeeAddedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}

	a.metrics.RecordOutcome(observability.OutcomeEmployeeAdded)
	if payload.DepartmentCreated {
		a.metrics.RecordOutcome(observability.OutcomeDeptCreated)
	}

	a.logger.Debug("EmployeeAdded",
		zap.String("event_id", event.ID),
		zap.String("department", payload.Department),
		zap.String("name", payload.Name),
		zap.Bool("department_created", payload.DepartmentCreated))
	return nil
}

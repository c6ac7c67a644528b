package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeAdded EventType = "employee_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeeAddedPayload payload.
type EmployeeAddedPayload struct {
	Name              string `json:"name"`
	Department        string `json:"department"`
	DepartmentCreated bool   `json:"department_created"`
}

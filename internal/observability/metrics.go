package observability

// Metrics provides basic in-memory counters for one console session.
// The session is single-threaded, so the counters are not synchronized.
type Metrics struct {
	commandCount map[string]int64
	outcomeCount map[string]int64
}

// Outcome labels recorded next to command kinds.
const (
	OutcomeNotFound      = "not_found"
	OutcomeInvalid       = "invalid"
	OutcomeEmployeeAdded = "employee_added"
	OutcomeDeptCreated   = "department_created"
)

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		commandCount: make(map[string]int64),
		outcomeCount: make(map[string]int64),
	}
}

// RecordCommand increments the counter for a dispatched command kind.
func (m *Metrics) RecordCommand(kind string) {
	if m == nil {
		return
	}
	m.commandCount[kind]++
}

// RecordOutcome increments an outcome counter.
func (m *Metrics) RecordOutcome(outcome string) {
	if m == nil {
		return
	}
	m.outcomeCount[outcome]++
}

// Commands returns the number of commands recorded for kind.
func (m *Metrics) Commands(kind string) int64 {
	if m == nil {
		return 0
	}
	return m.commandCount[kind]
}

// Outcomes returns the number of times outcome was recorded.
func (m *Metrics) Outcomes(outcome string) int64 {
	if m == nil {
		return 0
	}
	return m.outcomeCount[outcome]
}

// Snapshot copies all counters into a single map keyed by "commands.<kind>" and "outcomes.<name>".
func (m *Metrics) Snapshot() map[string]int64 {
	out := make(map[string]int64)
	if m == nil {
		return out
	}
	for kind, n := range m.commandCount {
		out["commands."+kind] = n
	}
	for outcome, n := range m.outcomeCount {
		out["outcomes."+outcome] = n
	}
	return out
}

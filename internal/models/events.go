package models

// EventAction is the closed set of calendar-changing actions broadcast on
// the event bus.
type EventAction string

const (
	ActionAssignmentDeleted EventAction = "assignment_deleted"
	ActionRunCompleted      EventAction = "run_completed"
	ActionChainSaved        EventAction = "chain_saved"
)

// CalendarEvent announces that vehicle activity changed for an office, so
// listeners can drop cached metrics and run results for it.
type CalendarEvent struct {
	Office   string      `json:"office"`
	PersonID int64       `json:"partner_id,omitempty"`
	VIN      string      `json:"vin,omitempty"`
	Action   EventAction `json:"action"`
	Count    int         `json:"count"`
}

package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

const (
	EmployeeCreated = "employee_created"
	EmployeeUpdated = "employee_updated"
	EmployeeDeleted = "employee_deleted"
)

// EmployeeLifecycleEvent is published by the HR service whenever a master record changes.
type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

package employee

// RosterEntry is one employee as the payroll engine sees them. Salary is nil when HR has not set one.
type RosterEntry struct {
	EmployeeID string   `json:"employee_id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Salary     *float64 `json:"salary"`
}

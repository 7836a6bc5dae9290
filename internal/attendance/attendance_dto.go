package attendance

type AttendanceResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	AttendanceDate string   `json:"attendance_date"`
	CheckIn        string   `json:"check_in"`
	CheckOut       *string  `json:"check_out,omitempty"`
	Duration       *string  `json:"duration,omitempty"`
	Hours          *float64 `json:"hours,omitempty"`
	Status         string   `json:"status"`
}

// MonthlySummary is the per employee tally for one month. Present and absent are fractional.
type MonthlySummary struct {
	EmployeeID string  `json:"employee_id"`
	Present    float64 `json:"present"`
	Absent     float64 `json:"absent"`
	TotalDays  int     `json:"total_days"`
}

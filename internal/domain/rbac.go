package domain

// EnforceRequest asks whether a role may perform action on resource inside a company.
type EnforceRequest struct {
	Role      string `json:"role" binding:"required"`
	CompanyID string `json:"company_id" binding:"required"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
)

const (
	ResourcePayroll    = "payroll"
	ResourceAttendance = "attendance"
	ResourceHoliday    = "holiday"
	ResourceEmployee   = "employee"
	ResourceLoan       = "loan"
)

const (
	ActionRead      = "read"
	ActionWrite     = "write"
	ActionCalculate = "calculate"
	ActionSelf      = "self"
)

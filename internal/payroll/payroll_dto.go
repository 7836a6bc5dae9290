package payroll

import "time"

// PayrollLineItem is one employee's computed payroll row. Fields that only the ESI/PF category
// produces are pointers and omitted for the other categories.
type PayrollLineItem struct {
	EmployeeID      string   `json:"employee_id"`
	EmployeeName    string   `json:"employee_name,omitempty"`
	Category        string   `json:"category"`
	Leave           float64  `json:"leave"`
	Grace           float64  `json:"grace"`
	WorkingDays     int      `json:"working_days"`
	PresentDays     float64  `json:"present_days"`
	SalaryInput     float64  `json:"salary_input"`
	MonthlySalary   *float64 `json:"monthly_salary,omitempty"`
	Basic           *float64 `json:"basic,omitempty"`
	HRA             *float64 `json:"hra,omitempty"`
	Conveyance      *float64 `json:"conveyance,omitempty"`
	BasicConveyance *float64 `json:"basic_conveyance,omitempty"`
	RestrictedBasic *float64 `json:"restricted_basic,omitempty"`
	PF              *float64 `json:"pf,omitempty"`
	ESI             *float64 `json:"esi,omitempty"`
	SalaryPayable   *float64 `json:"salary_payable,omitempty"`
	Loan            float64  `json:"loan"`
	TDS             *float64 `json:"tds,omitempty"`
	PTax            *float64 `json:"ptax,omitempty"`
	TotalDeduction  float64  `json:"total_deduction"`
	NetSalary       float64  `json:"net_salary"`
}

// EmployeeInput carries what the operator typed for one employee in this run.
type EmployeeInput struct {
	EmployeeID  string   `json:"employee_id" binding:"required"`
	SalaryInput *float64 `json:"salary_input"`
	Grace       float64  `json:"grace"`
	TDS         float64  `json:"tds"`
	PTax        float64  `json:"ptax"`
}

type CalculateRequest struct {
	Category string          `json:"category" binding:"required"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	Inputs   []EmployeeInput `json:"inputs" binding:"omitempty,dive"`
}

type CalculateResponse struct {
	Category     string            `json:"category"`
	Month        int               `json:"month"`
	Year         int               `json:"year"`
	Records      []PayrollLineItem `json:"records"`
	Warnings     []string          `json:"warnings"`
	CalculatedAt time.Time         `json:"calculated_at"`
}

type SaveReportRequest struct {
	Category string            `json:"category" binding:"required"`
	Month    int               `json:"month"`
	Year     int               `json:"year"`
	Records  []PayrollLineItem `json:"records"`
}

type SaveReportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

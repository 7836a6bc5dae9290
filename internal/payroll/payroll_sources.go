package payroll

import (
	"context"

	"go-erp/internal/shared/period"
)

// RosterEntry is the slice of the employee master the engine needs.
type RosterEntry struct {
	EmployeeID string
	Name       string
	Category   string
	Salary     *float64
}

type AbsenceEntry struct {
	EmployeeID string
	Present    float64
	Absent     float64
}

type LoanEntry struct {
	EmployeeID string
	Amount     float64
}

//go:generate mockgen -source=payroll_sources.go -destination=mock/payroll_sources_mock.go -package=mock
type RosterSource interface {
	Roster(ctx context.Context, companyID string) ([]RosterEntry, error)
}

type AttendanceSource interface {
	Absences(ctx context.Context, companyID string, p period.Period) ([]AbsenceEntry, error)
}

type LoanSource interface {
	Loans(ctx context.Context, companyID string) ([]LoanEntry, error)
}

// Sources are the three reads a calculation depends on. A nil source reads as empty.
type Sources struct {
	Roster     RosterSource
	Attendance AttendanceSource
	Loans      LoanSource
}

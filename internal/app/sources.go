package app

import (
	"context"

	"go-erp/internal/attendance"
	"go-erp/internal/employee"
	"go-erp/internal/loan"
	"go-erp/internal/payroll"
	"go-erp/internal/shared/period"
	"go-erp/internal/upstream"

	"go.uber.org/zap"
)

// rosterSource reads the roster from the local employee module.
type rosterSource struct {
	employees employee.Service
}

func (s rosterSource) Roster(ctx context.Context, companyID string) ([]payroll.RosterEntry, error) {
	rows, err := s.employees.GetRoster(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]payroll.RosterEntry, len(rows))
	for i, r := range rows {
		out[i] = payroll.RosterEntry{EmployeeID: r.EmployeeID, Name: r.Name, Category: r.Category, Salary: r.Salary}
	}
	return out, nil
}

// EmployeeIDs lets the attendance summary include employees who never checked in.
func (s rosterSource) EmployeeIDs(ctx context.Context, companyID string) ([]string, error) {
	rows, err := s.employees.GetRoster(ctx, companyID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.EmployeeID
	}
	return ids, nil
}

type attendanceSource struct {
	attendance attendance.Service
}

func (s attendanceSource) Absences(ctx context.Context, companyID string, p period.Period) ([]payroll.AbsenceEntry, error) {
	rows, err := s.attendance.MonthlySummary(ctx, companyID, p)
	if err != nil {
		return nil, err
	}
	out := make([]payroll.AbsenceEntry, len(rows))
	for i, r := range rows {
		out[i] = payroll.AbsenceEntry{EmployeeID: r.EmployeeID, Present: r.Present, Absent: r.Absent}
	}
	return out, nil
}

type loanSource struct {
	loans loan.Service
}

func (s loanSource) Loans(ctx context.Context, companyID string) ([]payroll.LoanEntry, error) {
	rows, err := s.loans.GetLedger(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]payroll.LoanEntry, len(rows))
	for i, r := range rows {
		out[i] = payroll.LoanEntry{EmployeeID: r.EmployeeID, Amount: r.Amount}
	}
	return out, nil
}

func localSources(employees employee.Service, att attendance.Service, loans loan.Service) payroll.Sources {
	return payroll.Sources{
		Roster:     rosterSource{employees: employees},
		Attendance: attendanceSource{attendance: att},
		Loans:      loanSource{loans: loans},
	}
}

// selectSources prefers the remote HR service when one is configured.
func selectSources(opts upstream.Options, local payroll.Sources, logger *zap.Logger) (payroll.Sources, error) {
	if opts.BaseURL == "" {
		logger.Info("payroll sources: in-process modules")
		return local, nil
	}
	client, err := upstream.NewClient(opts, logger)
	if err != nil {
		return payroll.Sources{}, err
	}
	logger.Info("payroll sources: upstream", zap.String("base_url", opts.BaseURL))
	return payroll.Sources{Roster: client, Attendance: client, Loans: client}, nil
}

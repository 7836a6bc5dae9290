package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollReport is the header of a saved report. One per (company, category, month, year).
type PayrollReport struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_report_period"`
	Category  string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_payroll_report_period"`
	Month     int       `gorm:"not null;uniqueIndex:uq_payroll_report_period"`
	Year      int       `gorm:"not null;uniqueIndex:uq_payroll_report_period"`
	SavedBy   string    `gorm:"type:varchar(120)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []PayrollReportItem `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

type PayrollReportItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReportID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Position     int       `gorm:"not null"`
	EmployeeID   string    `gorm:"type:varchar(160);not null;index"`
	EmployeeName string    `gorm:"type:varchar(160)"`

	Leave       decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	Grace       decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	WorkingDays int             `gorm:"not null"`
	PresentDays decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	SalaryInput decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	// ESI/PF breakdown, null for the other categories.
	MonthlySalary   decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Basic           decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	HRA             decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Conveyance      decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	BasicConveyance decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	RestrictedBasic decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	PF              decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	ESI             decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	TDS             decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	PTax            decimal.NullDecimal `gorm:"type:numeric(14,2)"`

	SalaryPayable  decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Loan           decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeduction decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0"`
	NetSalary      decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time
}

func (i PayrollReportItem) toLineItem(category string) PayrollLineItem {
	return PayrollLineItem{
		EmployeeID:      i.EmployeeID,
		EmployeeName:    i.EmployeeName,
		Category:        category,
		Leave:           i.Leave.InexactFloat64(),
		Grace:           i.Grace.InexactFloat64(),
		WorkingDays:     i.WorkingDays,
		PresentDays:     i.PresentDays.InexactFloat64(),
		SalaryInput:     i.SalaryInput.InexactFloat64(),
		MonthlySalary:   fromNull(i.MonthlySalary),
		Basic:           fromNull(i.Basic),
		HRA:             fromNull(i.HRA),
		Conveyance:      fromNull(i.Conveyance),
		BasicConveyance: fromNull(i.BasicConveyance),
		RestrictedBasic: fromNull(i.RestrictedBasic),
		PF:              fromNull(i.PF),
		ESI:             fromNull(i.ESI),
		SalaryPayable:   fromNull(i.SalaryPayable),
		Loan:            i.Loan.InexactFloat64(),
		TDS:             fromNull(i.TDS),
		PTax:            fromNull(i.PTax),
		TotalDeduction:  i.TotalDeduction.InexactFloat64(),
		NetSalary:       i.NetSalary.InexactFloat64(),
	}
}

func newReportItem(position int, item PayrollLineItem) PayrollReportItem {
	return PayrollReportItem{
		Position:        position,
		EmployeeID:      item.EmployeeID,
		EmployeeName:    item.EmployeeName,
		Leave:           decimal.NewFromFloat(item.Leave),
		Grace:           decimal.NewFromFloat(item.Grace),
		WorkingDays:     item.WorkingDays,
		PresentDays:     decimal.NewFromFloat(item.PresentDays),
		SalaryInput:     decimal.NewFromFloat(item.SalaryInput),
		MonthlySalary:   toNull(item.MonthlySalary),
		Basic:           toNull(item.Basic),
		HRA:             toNull(item.HRA),
		Conveyance:      toNull(item.Conveyance),
		BasicConveyance: toNull(item.BasicConveyance),
		RestrictedBasic: toNull(item.RestrictedBasic),
		PF:              toNull(item.PF),
		ESI:             toNull(item.ESI),
		SalaryPayable:   toNull(item.SalaryPayable),
		Loan:            decimal.NewFromFloat(item.Loan),
		TDS:             toNull(item.TDS),
		PTax:            toNull(item.PTax),
		TotalDeduction:  decimal.NewFromFloat(item.TotalDeduction),
		NetSalary:       decimal.NewFromFloat(item.NetSalary),
	}
}

func toNull(v *float64) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromFloat(*v))
}

func fromNull(v decimal.NullDecimal) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Decimal.InexactFloat64()
	return &f
}

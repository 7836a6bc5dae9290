package payroll

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	esiPresentDaysBase = 32
	restrictedBasicCap = 15000
)

var (
	basicShare      = decimal.RequireFromString("0.50")
	hraShare        = decimal.RequireFromString("0.40")
	conveyanceShare = decimal.RequireFromString("0.10")
	pfRate          = decimal.RequireFromString("0.12")
	esiRate         = decimal.RequireFromString("0.0075")
)

// CalculationInput is everything one line item depends on. The calculator reads nothing else.
type CalculationInput struct {
	Category Category
	Baseline float64
	Present  float64
	Absent   float64
	Grace    float64
	Loan     float64
	TDS      float64
	PTax     float64
}

// Calculate computes the earnings and deductions breakdown for one employee.
// Intermediates keep full precision and only the returned fields are rounded to 2 places.
// Present is carried for reference, present days are derived from the category basis and the effective absence.
func Calculate(in CalculationInput) PayrollLineItem {
	in = in.sanitize()

	baseline := decimal.NewFromFloat(in.Baseline)
	grace := decimal.NewFromFloat(in.Grace)
	loan := decimal.NewFromFloat(in.Loan)
	effectiveAbsent := decimal.Max(decimal.Zero, decimal.NewFromFloat(in.Absent).Sub(grace))
	basis := in.Category.WorkingDaysBasis()

	item := PayrollLineItem{
		Category:    string(in.Category),
		Leave:       round(effectiveAbsent),
		Grace:       round(grace),
		WorkingDays: basis,
		SalaryInput: round(baseline),
		Loan:        round(loan),
	}

	switch in.Category {
	case CategoryESIPF:
		tds := decimal.NewFromFloat(in.TDS)
		ptax := decimal.NewFromFloat(in.PTax)

		presentDays := decimal.NewFromInt(esiPresentDaysBase).Sub(effectiveAbsent)
		monthly := baseline.Div(decimal.NewFromInt(int64(basis))).Mul(presentDays)
		basic := monthly.Mul(basicShare)
		hra := monthly.Mul(hraShare)
		conveyance := monthly.Mul(conveyanceShare)
		basicConveyance := basic.Add(conveyance)
		restricted := decimal.Min(basicConveyance, decimal.NewFromInt(restrictedBasicCap))
		pf := restricted.Mul(pfRate)
		esi := basic.Add(hra).Add(conveyance).Mul(esiRate)
		total := pf.Add(esi).Add(loan).Add(tds).Add(ptax)

		item.PresentDays = round(presentDays)
		item.MonthlySalary = roundPtr(monthly)
		item.Basic = roundPtr(basic)
		item.HRA = roundPtr(hra)
		item.Conveyance = roundPtr(conveyance)
		item.BasicConveyance = roundPtr(basicConveyance)
		item.RestrictedBasic = roundPtr(restricted)
		item.PF = roundPtr(pf)
		item.ESI = roundPtr(esi)
		item.TDS = roundPtr(tds)
		item.PTax = roundPtr(ptax)
		item.TotalDeduction = round(total)
		item.NetSalary = round(monthly.Sub(total))

	case CategoryNoESIPF, CategoryCasualLabour:
		days := decimal.NewFromInt(int64(basis))
		presentDays := days.Sub(effectiveAbsent)
		payable := baseline.Div(days).Mul(presentDays)

		item.PresentDays = round(presentDays)
		item.SalaryPayable = roundPtr(payable)
		item.TotalDeduction = round(loan)
		item.NetSalary = round(payable.Sub(loan))
	}

	return item
}

func (in CalculationInput) sanitize() CalculationInput {
	in.Baseline = finite(in.Baseline)
	in.Present = finite(in.Present)
	in.Absent = finite(in.Absent)
	in.Grace = nonNegative(in.Grace)
	in.Loan = nonNegative(in.Loan)
	in.TDS = nonNegative(in.TDS)
	in.PTax = nonNegative(in.PTax)
	return in
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegative(v float64) float64 {
	v = finite(v)
	if v < 0 {
		return 0
	}
	return v
}

func round(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func roundPtr(d decimal.Decimal) *float64 {
	v := round(d)
	return &v
}

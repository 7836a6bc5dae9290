// Package period models the (month, year) payroll cycle that every report and summary is keyed by.
package period

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-erp/internal/shared/apperror"
)

const minYear = 1900

var (
	ErrPeriodRequired = apperror.New(
		apperror.CodeInvalidInput,
		"month and year must be selected",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year is out of range",
		http.StatusBadRequest,
	)
)

type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func New(month, year int) Period {
	return Period{Month: month, Year: year}
}

// Parse reads month/year query values. Empty values mean the operator has not selected a period yet.
func Parse(month, year string) (Period, error) {
	if month == "" || year == "" {
		return Period{}, ErrPeriodRequired
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return Period{}, ErrInvalidMonth
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return Period{}, ErrInvalidYear
	}
	p := New(m, y)
	return p, p.Validate()
}

func (p Period) Validate() error {
	if p.Month == 0 && p.Year == 0 {
		return ErrPeriodRequired
	}
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidMonth
	}
	if p.Year < minYear {
		return ErrInvalidYear
	}
	return nil
}

func (p Period) DaysInMonth() int {
	// day 0 of the next month is the last day of this one
	return time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (p Period) Date(day int) time.Time {
	return time.Date(p.Year, time.Month(p.Month), day, 0, 0, 0, 0, time.UTC)
}

func (p Period) Start() time.Time {
	return p.Date(1)
}

// End is the first instant of the following month, for half-open range queries.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

func (p Period) Contains(t time.Time) bool {
	t = t.UTC()
	return t.Year() == p.Year && int(t.Month()) == p.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

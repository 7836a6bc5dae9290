package payroll

import (
	"context"
	"math"

	"go-erp/internal/shared/period"

	"go.uber.org/zap"
)

const historyLookbackMonths = 12

type BaselineSource string

const (
	SourceDirect  BaselineSource = "direct"
	SourceHistory BaselineSource = "history"
	SourceMaster  BaselineSource = "master"
	SourceNone    BaselineSource = "none"
)

type Resolution struct {
	Value  float64
	Source BaselineSource
}

// History looks up the salary input an employee had in a saved report of a category and month.
type History interface {
	SalaryInput(ctx context.Context, companyID string, category Category, employeeID string, p period.Period) (float64, bool, error)
}

type Resolver struct {
	history      History
	carryForward map[Category]bool
	logger       *zap.Logger
}

// NewResolver builds a resolver that walks saved history only for the carry-forward categories.
func NewResolver(history History, carryForward []Category, logger ...*zap.Logger) *Resolver {
	l := zap.L().Named("payroll.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.resolver")
	}

	cf := make(map[Category]bool, len(carryForward))
	for _, c := range carryForward {
		cf[c] = true
	}
	return &Resolver{history: history, carryForward: cf, logger: l}
}

// Resolve picks the baseline salary: operator input, then the most recent saved month within a year,
// then the employee master salary, then zero. History lookup errors count as a miss.
func (r *Resolver) Resolve(
	ctx context.Context,
	companyID string,
	category Category,
	employeeID string,
	p period.Period,
	direct *float64,
	master *float64,
) Resolution {
	if usable(direct) {
		return Resolution{Value: *direct, Source: SourceDirect}
	}

	if r.history != nil && r.carryForward[category] {
		cursor := p
		for i := 0; i < historyLookbackMonths; i++ {
			cursor = cursor.Previous()
			value, found, err := r.history.SalaryInput(ctx, companyID, category, employeeID, cursor)
			if err != nil {
				r.logger.Warn("salary history lookup failed",
					zap.String("employee_id", employeeID),
					zap.String("period", cursor.String()),
					zap.Error(err),
				)
				break
			}
			if found {
				return Resolution{Value: value, Source: SourceHistory}
			}
		}
	}

	if usable(master) {
		return Resolution{Value: *master, Source: SourceMaster}
	}

	return Resolution{Value: 0, Source: SourceNone}
}

func usable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

type historyKey struct {
	category   Category
	employeeID string
	period     period.Period
}

// HistoryIndex is an in-memory History over reports already loaded for one company.
// Only positive salary inputs count as found.
type HistoryIndex struct {
	entries map[historyKey]float64
}

func NewHistoryIndex() *HistoryIndex {
	return &HistoryIndex{entries: make(map[historyKey]float64)}
}

func (h *HistoryIndex) Add(category Category, p period.Period, items []PayrollLineItem) {
	for _, item := range items {
		if item.EmployeeID == "" || item.SalaryInput <= 0 {
			continue
		}
		h.entries[historyKey{category: category, employeeID: item.EmployeeID, period: p}] = item.SalaryInput
	}
}

func (h *HistoryIndex) Len() int {
	return len(h.entries)
}

func (h *HistoryIndex) SalaryInput(_ context.Context, _ string, category Category, employeeID string, p period.Period) (float64, bool, error) {
	v, ok := h.entries[historyKey{category: category, employeeID: employeeID, period: p}]
	return v, ok, nil
}

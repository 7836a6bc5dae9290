package loan

import (
	"context"

	loanerrors "go-erp/internal/loan/errors"

	"go.uber.org/zap"
)

type Service interface {
	GetLedger(ctx context.Context, companyID string) ([]LedgerEntry, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("loan.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("loan.service")
	}
	return &service{repo: repo, logger: l}
}

// GetLedger returns one row per loan. Callers sum rows of the same employee.
func (s *service) GetLedger(ctx context.Context, companyID string) ([]LedgerEntry, error) {
	rows, err := s.repo.FindLedger(ctx, companyID)
	if err != nil {
		s.logger.Error("load loan ledger failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, loanerrors.ErrLedgerUnavailable.WithCause(err)
	}

	res := make([]LedgerEntry, 0, len(rows))
	for _, r := range rows {
		if r.EmployeeID == "" || r.Amount.IsNegative() {
			continue
		}
		res = append(res, LedgerEntry{EmployeeID: r.EmployeeID, Amount: r.Amount.Round(2).InexactFloat64()})
	}
	return res, nil
}
